package handler

import (
	"errors"
	"net/http"

	"dokan/internal/apierror"
	"dokan/internal/dto"
	"dokan/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// Create godoc
// @Summary      Record a supplier purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePurchaseRequest true "Purchase"
// @Success      201  {object} dto.PurchaseResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/purchases [post]
func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Fetch one purchase with its payment history
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase UUID"
// @Success      200 {object} dto.PurchaseResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purchases/{id} [get]
func (h *PurchasesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PurchaseResponse
// @Router       /v1/purchases [get]
func (h *PurchasesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListPurchases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list purchases"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a purchase and its payments
// @Tags         purchases
// @Security     BearerAuth
// @Param        id path string true "Purchase UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purchases/{id} [delete]
func (h *PurchasesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePurchase(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPayment godoc
// @Summary      Record a payment against a purchase
// @Description  Same ledger rules as dues: overpayment rejected, totals recomputed transactionally.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "Purchase UUID"
// @Param        body body dto.AddPaymentRequest true "Payment"
// @Success      201  {object} dto.AddPurchasePaymentResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/purchases/{id}/payments [post]
func (h *PurchasesHandler) AddPayment(c *gin.Context) {
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
		if errors.Is(err, service.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
