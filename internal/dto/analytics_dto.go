package dto

import "github.com/shopspring/decimal"

// MonthlyData is one dashboard row per calendar month.
type MonthlyData struct {
	Month            string          `json:"month"` // "Jan" … "Dec"
	Sales            decimal.Decimal `json:"sales"`
	Expenses         decimal.Decimal `json:"expenses"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
}

// CategoryShare is a category's slice of yearly revenue. Value is the rounded
// integer percentage; Amount the raw revenue used for sorting.
type CategoryShare struct {
	Name   string          `json:"name"`
	Value  int             `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

type RecentTransaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"` // always "sale"
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	User        string          `json:"user"`
	Date        string          `json:"date"`
}

type AnalyticsTotals struct {
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

type AnalyticsResponse struct {
	MonthlyData        []MonthlyData       `json:"monthlyData"`
	CategoryData       []CategoryShare     `json:"categoryData"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
	Totals             AnalyticsTotals     `json:"totals"`
	Year               int                 `json:"year"`
}
