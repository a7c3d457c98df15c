package handler

import (
	"errors"
	"net/http"

	"dokan/internal/apierror"
	"dokan/internal/dto"
	"dokan/internal/service"

	"github.com/gin-gonic/gin"
)

// HRHandler manages the employee register. Employees are staff records, not
// login accounts.
type HRHandler struct{ svc service.EmployeeService }

func NewHRHandler(svc service.EmployeeService) *HRHandler { return &HRHandler{svc: svc} }

// Create godoc
// @Summary      Register an employee
// @Tags         hr
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateEmployeeRequest true "Employee"
// @Success      201  {object} dto.EmployeeResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/employees [post]
func (h *HRHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List employees
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EmployeeResponse
// @Router       /v1/employees [get]
func (h *HRHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list employees"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update an employee record
// @Tags         hr
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Employee UUID"
// @Param        body body dto.UpdateEmployeeRequest true "Fields to update"
// @Success      200  {object} dto.EmployeeResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/employees/{id} [put]
func (h *HRHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Remove an employee record
// @Tags         hr
// @Security     BearerAuth
// @Param        id path string true "Employee UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/employees/{id} [delete]
func (h *HRHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
