package service

import (
	"context"
	"testing"

	"dokan/internal/dto"
	"dokan/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildSaleSvc() (SaleService, *stubSaleRepo, *stubProductRepo, *stubDueRepo) {
	products := newStubProductRepo()
	sales := newStubSaleRepo(products)
	dues := newStubDueRepo()
	return NewSaleService(sales, products, dues), sales, products, dues
}

func seedProduct(products *stubProductRepo, name string, price string, stock int) *model.Product {
	return products.add(&model.Product{
		Name:          name,
		PurchasePrice: dec(price).Div(decimal.NewFromInt(2)),
		SellingPrice:  dec(price),
		Stock:         stock,
		MinStock:      5,
		Active:        true,
	})
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()
	rice := seedProduct(products, "Rice 5kg", "10.00", 20)
	oil := seedProduct(products, "Oil 1L", "50.00", 8)
	userID := uuid.New()

	resp, err := svc.CreateSale(context.Background(), userID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: rice.ID.String(), Quantity: 3, Price: dec("10.00")},
			{ProductID: oil.ID.String(), Quantity: 1, Price: dec("50.00")},
		},
		Total: dec("80.00"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, userID.String(), resp.UserID)
	assert.True(t, resp.Total.Equal(dec("80.00")))
	assert.Equal(t, "Rice 5kg", resp.Items[0].Product)
	assert.True(t, resp.Items[0].Subtotal.Equal(dec("30.00")))
	assert.True(t, resp.Items[1].Subtotal.Equal(dec("50.00")))

	assert.Equal(t, 17, rice.Stock)
	assert.Equal(t, 7, oil.Stock)
	assert.Len(t, sales.sales, 1)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()
	rice := seedProduct(products, "Rice 5kg", "10.00", 2)

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: rice.ID.String(), Quantity: 3, Price: dec("10.00")}},
		Total: dec("30.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock for Rice 5kg")

	// Nothing committed, nothing decremented.
	assert.Empty(t, sales.sales)
	assert.Equal(t, 2, rice.Stock)
}

func TestCreateSaleProductNotFound(t *testing.T) {
	svc, _, _, _ := buildSaleSvc()

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: uuid.NewString(), Quantity: 1, Price: dec("5.00")}},
		Total: dec("5.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}

func TestCreateSaleRejectsNonPositiveTotal(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()
	p := seedProduct(products, "Soap", "3.00", 10)

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1, Price: dec("3.00")}},
		Total: decimal.Zero,
	})
	require.Error(t, err)
	assert.Equal(t, "invalid total amount", err.Error())
}

func TestCreateSaleWithWalkInCustomer(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()
	p := seedProduct(products, "Soap", "3.00", 10)
	name := "Karim"

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items:    []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 2, Price: dec("3.00")}},
		Total:    dec("6.00"),
		Customer: &dto.CustomerRequest{Phone: " 01711000000 ", Name: &name},
	})
	require.NoError(t, err)
	require.Len(t, sales.customers, 1)
	assert.Equal(t, "01711000000", sales.customers[0].Phone)
	require.NotNil(t, resp)

	// Phone is mandatory when the customer block is present.
	_, err = svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items:    []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1, Price: dec("3.00")}},
		Total:    dec("3.00"),
		Customer: &dto.CustomerRequest{Phone: "   "},
	})
	require.Error(t, err)
	assert.Equal(t, "customer phone is required", err.Error())
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()
	rice := seedProduct(products, "Rice 5kg", "10.00", 20)

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: rice.ID.String(), Quantity: 4, Price: dec("10.00")}},
		Total: dec("40.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 16, rice.Stock)

	saleID := uuid.MustParse(resp.ID)
	require.NoError(t, svc.DeleteSale(context.Background(), saleID))
	assert.Equal(t, 20, rice.Stock)
	assert.Empty(t, sales.sales)
}

func TestDeleteSaleBlockedByDue(t *testing.T) {
	svc, _, products, dues := buildSaleSvc()
	rice := seedProduct(products, "Rice 5kg", "10.00", 20)

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: rice.ID.String(), Quantity: 1, Price: dec("10.00")}},
		Total: dec("10.00"),
	})
	require.NoError(t, err)
	saleID := uuid.MustParse(resp.ID)

	require.NoError(t, dues.Create(context.Background(), &model.Due{
		SaleID:        saleID,
		TotalAmount:   dec("10.00"),
		PendingAmount: dec("10.00"),
		Status:        model.StatusPending,
	}))

	err = svc.DeleteSale(context.Background(), saleID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outstanding due")
	assert.Equal(t, 19, rice.Stock)
}

func TestDeleteSaleNotFound(t *testing.T) {
	svc, _, _, _ := buildSaleSvc()
	err := svc.DeleteSale(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestGetSaleNotFound(t *testing.T) {
	svc, _, _, _ := buildSaleSvc()
	_, err := svc.GetSale(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestListSalesDefaultsPagination(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()
	p := seedProduct(products, "Soap", "3.00", 10)
	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1, Price: dec("3.00")}},
		Total: dec("3.00"),
	})
	require.NoError(t, err)

	list, err := svc.ListSales(context.Background(), dto.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 50, list.Limit)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Data, 1)
}
