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

func buildProductSvc() (ProductService, *stubProductRepo, *stubSaleRepo) {
	products := newStubProductRepo()
	sales := newStubSaleRepo(products)
	return NewProductService(products, sales), products, sales
}

func TestCreateProductDefaults(t *testing.T) {
	svc, _, _ := buildProductSvc()

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "  Rice 5kg  ",
		PurchasePrice: dec("8.00"),
		SellingPrice:  dec("10.00"),
		Stock:         30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rice 5kg", resp.Name)
	assert.Equal(t, 30, resp.Stock)
	assert.Equal(t, 30, resp.InitialStock)
	assert.Equal(t, 5, resp.MinStock)
	assert.True(t, resp.Active)
}

func TestCreateProductRejectsDuplicates(t *testing.T) {
	svc, _, _ := buildProductSvc()
	barcode := "8901234567890"

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Rice 5kg", SellingPrice: dec("10.00"), Barcode: &barcode,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Rice 5kg", SellingPrice: dec("10.00"),
	})
	require.Error(t, err)
	assert.Equal(t, "a product with this name already exists", err.Error())

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Rice 10kg", SellingPrice: dec("19.00"), Barcode: &barcode,
	})
	require.Error(t, err)
	assert.Equal(t, "a product with this barcode already exists", err.Error())
}

func TestDeleteProductBlockedBySales(t *testing.T) {
	svc, products, sales := buildProductSvc()
	p := seedProduct(products, "Rice 5kg", "10.00", 20)

	sale := &model.Sale{
		UserID: uuid.New(),
		Total:  dec("10.00"),
		Items:  []model.SaleItem{{ProductID: p.ID, Quantity: 1, Price: dec("10.00")}},
	}
	require.NoError(t, sales.Create(context.Background(), nil, sale))

	err := svc.Delete(context.Background(), p.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
	assert.Contains(t, err.Error(), "deactivating")
	assert.Contains(t, products.products, p.ID)
}

func TestDeleteProductWithoutSales(t *testing.T) {
	svc, products, _ := buildProductSvc()
	p := seedProduct(products, "Rice 5kg", "10.00", 20)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.NotContains(t, products.products, p.ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrProductNotFound)
}

func TestDeactivateReactivateProduct(t *testing.T) {
	svc, products, _ := buildProductSvc()
	p := seedProduct(products, "Rice 5kg", "10.00", 20)

	require.NoError(t, svc.Deactivate(context.Background(), p.ID))
	assert.False(t, p.Active)

	require.NoError(t, svc.Reactivate(context.Background(), p.ID))
	assert.True(t, p.Active)

	assert.ErrorIs(t, svc.Deactivate(context.Background(), uuid.New()), ErrProductNotFound)
}

func TestUpdateProductRejectsTakenName(t *testing.T) {
	svc, products, _ := buildProductSvc()
	seedProduct(products, "Rice 5kg", "10.00", 20)
	other := seedProduct(products, "Rice 10kg", "19.00", 10)

	taken := "Rice 5kg"
	_, err := svc.Update(context.Background(), other.ID, dto.UpdateProductRequest{Name: &taken})
	require.Error(t, err)
	assert.Equal(t, "a product with this name already exists", err.Error())

	fresh := "Rice 10kg Premium"
	newPrice := dec("21.00")
	resp, err := svc.Update(context.Background(), other.ID, dto.UpdateProductRequest{
		Name: &fresh, SellingPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rice 10kg Premium", resp.Name)
	assert.True(t, resp.SellingPrice.Equal(dec("21.00")))
}
