package service

import (
	"context"
	"sort"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/shopspring/decimal"
)

const uncategorized = "Uncategorized"

type AnalyticsService interface {
	Dashboard(ctx context.Context, year int) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

func NewAnalyticsService(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) AnalyticsService {
	return &analyticsService{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// Dashboard aggregates one calendar year of sales and expenses into the
// monthly series, category revenue shares, recent transactions and totals.
func (s *analyticsService) Dashboard(ctx context.Context, year int) (*dto.AnalyticsResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	sales, err := s.saleRepo.ListByYear(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByYear(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{
		MonthlyData:        monthlySeries(sales, expenses),
		CategoryData:       categoryShares(sales),
		RecentTransactions: recentTransactions(sales, 10),
		Year:               year,
	}
	for _, m := range resp.MonthlyData {
		resp.Totals.Sales = resp.Totals.Sales.Add(m.Sales)
		resp.Totals.Expenses = resp.Totals.Expenses.Add(m.Expenses)
		resp.Totals.Profit = resp.Totals.Profit.Add(m.Profit)
	}
	return resp, nil
}

// monthlySeries builds twelve rows Jan..Dec. Profit is gross margin: for each
// item, (sale price − purchase price) × quantity, using the product's current
// purchase price. Expenses are not subtracted from profit; they are a separate
// column.
func monthlySeries(sales []model.Sale, expenses []model.Expense) []dto.MonthlyData {
	rows := make([]dto.MonthlyData, 12)
	for i := range rows {
		rows[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, sale := range sales {
		m := int(sale.CreatedAt.Month()) - 1
		rows[m].Sales = rows[m].Sales.Add(sale.Total)
		for _, item := range sale.Items {
			if item.Product == nil {
				continue
			}
			margin := item.Price.Sub(item.Product.PurchasePrice).
				Mul(decimal.NewFromInt(int64(item.Quantity)))
			rows[m].Profit = rows[m].Profit.Add(margin)
		}
	}
	for _, e := range expenses {
		m := int(e.CreatedAt.Month()) - 1
		rows[m].Expenses = rows[m].Expenses.Add(e.Amount)
	}

	hundred := decimal.NewFromInt(100)
	for i := range rows {
		if rows[i].Sales.GreaterThan(decimal.Zero) {
			rows[i].ProfitPercentage = rows[i].Profit.Div(rows[i].Sales).Mul(hundred).Round(2)
		}
	}
	return rows
}

// categoryShares splits yearly revenue across product categories. Value is the
// integer-rounded percentage of total revenue; ordering is by raw amount,
// largest first.
func categoryShares(sales []model.Sale) []dto.CategoryShare {
	byCategory := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, sale := range sales {
		for _, item := range sale.Items {
			name := uncategorized
			if item.Product != nil && item.Product.Category != nil {
				name = item.Product.Category.Name
			}
			amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			byCategory[name] = byCategory[name].Add(amount)
			total = total.Add(amount)
		}
	}

	shares := make([]dto.CategoryShare, 0, len(byCategory))
	hundred := decimal.NewFromInt(100)
	for name, amount := range byCategory {
		value := 0
		if total.GreaterThan(decimal.Zero) {
			value = int(amount.Div(total).Mul(hundred).Round(0).IntPart())
		}
		shares = append(shares, dto.CategoryShare{Name: name, Value: value, Amount: amount})
	}
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})
	return shares
}

// recentTransactions returns the latest n sales. ListByYear orders newest
// first, so this is a prefix take.
func recentTransactions(sales []model.Sale, n int) []dto.RecentTransaction {
	if len(sales) < n {
		n = len(sales)
	}
	recent := make([]dto.RecentTransaction, 0, n)
	for _, sale := range sales[:n] {
		customer := "Customer"
		if sale.Customer != nil && sale.Customer.Name != nil && *sale.Customer.Name != "" {
			customer = *sale.Customer.Name
		}
		userName := ""
		if sale.User != nil {
			userName = sale.User.Name
		}
		recent = append(recent, dto.RecentTransaction{
			ID:          sale.ID.String(),
			Type:        "sale",
			Description: "Sale to " + customer,
			Amount:      sale.Total,
			User:        userName,
			Date:        sale.CreatedAt.Format(time.RFC3339),
		})
	}
	return recent
}
