package service

import (
	"context"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = gorm.ErrRecordNotFound

// ── Product stub ─────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Active = active
	return nil
}

func (r *stubProductRepo) ListBelowMinStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return repository.ErrStockConflict
	}
	p.Stock -= qty
	return nil
}

func (r *stubProductRepo) IncrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Stock += qty
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Sale stub ────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales        map[uuid.UUID]*model.Sale
	customers    []*model.Customer
	productIndex *stubProductRepo // resolves Items.Product on FindByID
}

func newStubSaleRepo(products *stubProductRepo) *stubSaleRepo {
	return &stubSaleRepo{
		sales:        make(map[uuid.UUID]*model.Sale),
		productIndex: products,
	}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) CreateCustomerTx(_ *gorm.DB, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers = append(r.customers, c)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	if r.productIndex != nil {
		for i := range s.Items {
			if p, ok := r.productIndex.products[s.Items[i].ProductID]; ok {
				s.Items[i].Product = p
			}
		}
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) ListByYear(_ context.Context, from, to time.Time) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			if r.productIndex != nil {
				for i := range s.Items {
					if p, ok := r.productIndex.products[s.Items[i].ProductID]; ok {
						s.Items[i].Product = p
					}
				}
			}
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return errNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) CountByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	for _, s := range r.sales {
		for _, item := range s.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Due stub ─────────────────────────────────────────────────────────────────

type stubDueRepo struct {
	dues     map[uuid.UUID]*model.Due
	payments []model.DuePayment
}

func newStubDueRepo() *stubDueRepo {
	return &stubDueRepo{dues: make(map[uuid.UUID]*model.Due)}
}

func (r *stubDueRepo) Create(_ context.Context, d *model.Due) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now()
	r.dues[d.ID] = d
	return nil
}

func (r *stubDueRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Due, error) {
	d, ok := r.dues[id]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (r *stubDueRepo) FindBySaleID(_ context.Context, saleID uuid.UUID) (*model.Due, error) {
	for _, d := range r.dues {
		if d.SaleID == saleID {
			return d, nil
		}
	}
	return nil, errNotFound
}

func (r *stubDueRepo) List(_ context.Context, filter dto.DueFilter) ([]model.Due, error) {
	var out []model.Due
	for _, d := range r.dues {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDueRepo) Update(_ context.Context, d *model.Due) error {
	if _, ok := r.dues[d.ID]; !ok {
		return errNotFound
	}
	r.dues[d.ID] = d
	return nil
}

func (r *stubDueRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.dues, id)
	return nil
}

func (r *stubDueRepo) SumPayments(_ context.Context, id uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.DueID == id {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *stubDueRepo) CreatePaymentTx(_ *gorm.DB, p *model.DuePayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *stubDueRepo) UpdateTx(_ *gorm.DB, d *model.Due) error {
	r.dues[d.ID] = d
	return nil
}

func (r *stubDueRepo) DB() *gorm.DB { return nil }

var _ repository.DueRepository = (*stubDueRepo)(nil)

// ── Purchase stub ────────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
	payments  []model.PurchasePayment
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPurchaseRepo) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if p.SupplierID == supplierID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

func (r *stubPurchaseRepo) CreatePaymentTx(_ *gorm.DB, p *model.PurchasePayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *stubPurchaseRepo) UpdateTx(_ *gorm.DB, p *model.Purchase) error {
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── Supplier stub ────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers     map[uuid.UUID]*model.Supplier
	purchaseCount map[uuid.UUID]int64
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{
		suppliers:     make(map[uuid.UUID]*model.Supplier),
		purchaseCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *stubSupplierRepo) CountPurchases(_ context.Context, id uuid.UUID) (int64, error) {
	return r.purchaseCount[id], nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Category stub ────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories   map[uuid.UUID]*model.Category
	productCount map[uuid.UUID]int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories:   make(map[uuid.UUID]*model.Category),
		productCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountProducts(_ context.Context, id uuid.UUID) (int64, error) {
	return r.productCount[id], nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── Expense stub ─────────────────────────────────────────────────────────────

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[uuid.UUID]*model.Expense)}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubExpenseRepo) List(_ context.Context) ([]model.Expense, error) {
	out := make([]model.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubExpenseRepo) ListByYear(_ context.Context, from, to time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, e *model.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

// ── Employee stub ────────────────────────────────────────────────────────────

type stubEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.employees, id)
	return nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)
