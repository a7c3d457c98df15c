package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dokan/internal/apierror"
	"dokan/internal/infra"
	"dokan/internal/repository"

	"github.com/gin-gonic/gin"
)

// ReportsHandler exports ledger data as spreadsheets.
type ReportsHandler struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

func NewReportsHandler(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) *ReportsHandler {
	return &ReportsHandler{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// SalesReport godoc
// @Summary      Download the yearly sales report as an .xlsx workbook
// @Description  One row per sale line item plus a summary sheet of monthly totals.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        year query int false "Calendar year (default: current)"
// @Success      200 {file} file
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reports/sales [get]
func (h *ReportsHandler) SalesReport(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2000 || v > 2100 {
			c.JSON(http.StatusBadRequest, apierror.New("invalid year"))
			return
		}
		year = v
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	sales, err := h.saleRepo.ListByYear(c.Request.Context(), from, from.AddDate(1, 0, 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load sales"))
		return
	}
	expenses, err := h.expenseRepo.ListByYear(c.Request.Context(), from, from.AddDate(1, 0, 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load expenses"))
		return
	}

	f, err := infra.BuildSalesReport(sales, expenses, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("sales_report_%d.xlsx", year)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
