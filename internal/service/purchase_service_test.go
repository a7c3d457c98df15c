package service

import (
	"context"
	"testing"

	"dokan/internal/dto"
	"dokan/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPurchaseSvc() (PurchaseService, *stubPurchaseRepo, *stubSupplierRepo) {
	purchases := newStubPurchaseRepo()
	suppliers := newStubSupplierRepo()
	return NewPurchaseService(purchases, suppliers), purchases, suppliers
}

func seedSupplier(t *testing.T, suppliers *stubSupplierRepo, name string) uuid.UUID {
	t.Helper()
	s := &model.Supplier{Name: name}
	require.NoError(t, suppliers.Create(context.Background(), s))
	return s.ID
}

func TestCreatePurchaseStartsPending(t *testing.T) {
	svc, _, suppliers := buildPurchaseSvc()
	supplierID := seedSupplier(t, suppliers, "Acme Wholesale")

	resp, err := svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:   supplierID.String(),
		TotalAmount:  dec("2500.00"),
		PurchaseDate: "2026-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, resp.Status)
	assert.True(t, resp.PendingAmount.Equal(dec("2500.00")))
	assert.True(t, resp.PaidAmount.IsZero())
	assert.Equal(t, "2026-02-10", resp.PurchaseDate)
}

func TestCreatePurchaseRequiresSupplier(t *testing.T) {
	svc, _, _ := buildPurchaseSvc()
	_, err := svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:  uuid.NewString(),
		TotalAmount: dec("100.00"),
	})
	require.Error(t, err)
	assert.Equal(t, "supplier not found", err.Error())
}

func TestCreatePurchaseRejectsNonPositiveTotal(t *testing.T) {
	svc, _, suppliers := buildPurchaseSvc()
	supplierID := seedSupplier(t, suppliers, "Acme Wholesale")

	_, err := svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:  supplierID.String(),
		TotalAmount: dec("0"),
	})
	require.Error(t, err)
	assert.Equal(t, "total amount must be greater than 0", err.Error())
}

func TestPurchaseAddPaymentMirrorsDueLedger(t *testing.T) {
	svc, purchases, suppliers := buildPurchaseSvc()
	supplierID := seedSupplier(t, suppliers, "Acme Wholesale")

	resp, err := svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:  supplierID.String(),
		TotalAmount: dec("600.00"),
	})
	require.NoError(t, err)
	purchaseID := uuid.MustParse(resp.ID)

	out, err := svc.AddPayment(context.Background(), purchaseID, dto.AddPaymentRequest{
		Amount: dec("200.00"), PaymentDate: "2026-02-15", PaymentMethod: "bank",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPartial, out.Purchase.Status)
	assert.True(t, out.Purchase.PendingAmount.Equal(dec("400.00")))
	assert.Equal(t, "bank", out.Payment.PaymentMethod)

	// Overpaying the remaining balance is rejected without side effects.
	_, err = svc.AddPayment(context.Background(), purchaseID, dto.AddPaymentRequest{
		Amount: dec("700.00"), PaymentDate: "2026-02-16",
	})
	require.Error(t, err)
	assert.Equal(t, "payment amount cannot exceed pending balance of 400.00", err.Error())
	assert.Len(t, purchases.payments, 1)

	out, err = svc.AddPayment(context.Background(), purchaseID, dto.AddPaymentRequest{
		Amount: dec("400.00"), PaymentDate: "2026-02-17",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, out.Purchase.Status)
	assert.True(t, out.Purchase.PendingAmount.IsZero())
}

func TestDeletePurchase(t *testing.T) {
	svc, purchases, suppliers := buildPurchaseSvc()
	supplierID := seedSupplier(t, suppliers, "Acme Wholesale")

	resp, err := svc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:  supplierID.String(),
		TotalAmount: dec("100.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchase(context.Background(), uuid.MustParse(resp.ID)))
	assert.Empty(t, purchases.purchases)

	assert.ErrorIs(t, svc.DeletePurchase(context.Background(), uuid.New()), ErrPurchaseNotFound)
}
