package handler

import (
	"errors"
	"net/http"

	"dokan/internal/apierror"
	"dokan/internal/dto"
	"dokan/internal/service"

	"github.com/gin-gonic/gin"
)

type DuesHandler struct{ svc service.DueService }

func NewDuesHandler(svc service.DueService) *DuesHandler { return &DuesHandler{svc: svc} }

// Create godoc
// @Summary      Open a due against a sale
// @Description  A sale carries at most one due; pending starts equal to the total.
// @Tags         dues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateDueRequest true "Due"
// @Success      201  {object} dto.DueResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/dues [post]
func (h *DuesHandler) Create(c *gin.Context) {
	var req dto.CreateDueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateDue(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Fetch one due with its payment history
// @Tags         dues
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Due UUID"
// @Success      200 {object} dto.DueResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/dues/{id} [get]
func (h *DuesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetDue(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List dues
// @Tags         dues
// @Produce      json
// @Security     BearerAuth
// @Param        status     query string false "pending | partial | paid"
// @Param        customerId query string false "Customer UUID"
// @Success      200 {array} dto.DueResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/dues [get]
func (h *DuesHandler) List(c *gin.Context) {
	var filter dto.DueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListDues(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list dues"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update a due's total or notes
// @Description  Pending is recomputed as max(0, newTotal − paid) and the status rederived.
// @Tags         dues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "Due UUID"
// @Param        body body dto.UpdateDueRequest true "Fields to update"
// @Success      200  {object} dto.DueResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/dues/{id} [put]
func (h *DuesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateDue(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrDueNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a due and its payments
// @Tags         dues
// @Security     BearerAuth
// @Param        id path string true "Due UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/dues/{id} [delete]
func (h *DuesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDue(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDueNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPayment godoc
// @Summary      Record a payment against a due
// @Description  Rejects overpayment; paid/pending/status are recomputed in the same transaction.
// @Tags         dues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "Due UUID"
// @Param        body body dto.AddPaymentRequest  true "Payment"
// @Success      201  {object} dto.AddDuePaymentResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/dues/{id}/payments [post]
func (h *DuesHandler) AddPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AddPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrDueNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
