package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dokan/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSale() *dto.SaleResponse {
	price := decimal.RequireFromString("250.00")
	return &dto.SaleResponse{
		ID:     uuid.NewString(),
		UserID: uuid.NewString(),
		Items: []dto.SaleItemResponse{
			{
				ProductID: uuid.NewString(),
				Product:   "Soda 500ml",
				Quantity:  3,
				Price:     price,
				Subtotal:  price.Mul(decimal.NewFromInt(3)),
			},
		},
		Total:     decimal.RequireFromString("750.00"),
		Discount:  decimal.Zero,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	dir := t.TempDir()
	sale := sampleSale()

	path, err := GenerateReceiptPDF(sale, "Dokan Test", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "receipt_"+sale.ID+".pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateReceiptPDFWithDiscountAndCustomer(t *testing.T) {
	dir := t.TempDir()
	sale := sampleSale()
	sale.Discount = decimal.RequireFromString("50.00")
	name := "Karim"
	sale.Customer = &dto.SaleCustomerResponse{
		ID:    uuid.NewString(),
		Name:  &name,
		Phone: "01711000000",
	}

	path, err := GenerateReceiptPDF(sale, "Dokan Test", dir)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestGenerateReceiptPDFCreatesStorageDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")

	path, err := GenerateReceiptPDF(sampleSale(), "Dokan Test", dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.FileExists(t, path)
}
