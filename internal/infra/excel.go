package infra

// excel.go — yearly sales report workbook built with excelize.
// Sheet "Sales": one row per sale line item. Sheet "Summary": monthly totals
// of sales revenue and expenses.

import (
	"fmt"
	"time"

	"dokan/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// BuildSalesReport assembles the report workbook in memory. The caller owns
// the returned file and must Close it.
func BuildSalesReport(sales []model.Sale, expenses []model.Expense, year int) (*excelize.File, error) {
	f := excelize.NewFile()

	const salesSheet = "Sales"
	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		f.Close()
		return nil, err
	}

	headers := []string{"Date", "Sale ID", "Customer", "Product", "Quantity", "Unit Price", "Subtotal", "Sale Total", "Discount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(salesSheet, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	row := 2
	for _, sale := range sales {
		customer := ""
		if sale.Customer != nil {
			if sale.Customer.Name != nil {
				customer = *sale.Customer.Name
			} else {
				customer = sale.Customer.Phone
			}
		}
		for _, item := range sale.Items {
			product := ""
			if item.Product != nil {
				product = item.Product.Name
			}
			subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			values := []interface{}{
				sale.CreatedAt.Format("2006-01-02 15:04"),
				sale.ID.String(),
				customer,
				product,
				item.Quantity,
				item.Price.InexactFloat64(),
				subtotal.InexactFloat64(),
				sale.Total.InexactFloat64(),
				sale.Discount.InexactFloat64(),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(salesSheet, cell, v); err != nil {
					f.Close()
					return nil, err
				}
			}
			row++
		}
	}

	if err := writeSummarySheet(f, sales, expenses, year); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, sales []model.Sale, expenses []model.Expense, year int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var monthlySales, monthlyExpenses [12]decimal.Decimal
	for _, s := range sales {
		monthlySales[s.CreatedAt.Month()-1] = monthlySales[s.CreatedAt.Month()-1].Add(s.Total)
	}
	for _, e := range expenses {
		monthlyExpenses[e.CreatedAt.Month()-1] = monthlyExpenses[e.CreatedAt.Month()-1].Add(e.Amount)
	}

	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("Year %d", year)); err != nil {
		return err
	}
	for i, h := range []string{"Month", "Sales", "Expenses"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for m := 0; m < 12; m++ {
		rowVals := []interface{}{
			time.Month(m + 1).String(),
			monthlySales[m].InexactFloat64(),
			monthlyExpenses[m].InexactFloat64(),
		}
		for i, v := range rowVals {
			cell, _ := excelize.CoordinatesToCellName(i+1, m+3)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
