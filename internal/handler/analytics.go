package handler

import (
	"net/http"
	"strconv"

	"dokan/internal/apierror"
	"dokan/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Yearly dashboard aggregates
// @Description  Monthly sales/expense/profit series, category revenue shares, recent transactions and totals for one calendar year.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        year query int false "Calendar year (default: current)"
// @Success      200  {object} dto.AnalyticsResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2000 || v > 2100 {
			c.JSON(http.StatusBadRequest, apierror.New("invalid year"))
			return
		}
		year = v
	}
	resp, err := h.svc.Dashboard(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build analytics"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
