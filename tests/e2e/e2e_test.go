//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dokan/internal/config"
	"dokan/internal/infra"
	"dokan/internal/model"
	"dokan/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Suite setup ──────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("dokan_test"),
		tcPostgres.WithUsername("dokan"),
		tcPostgres.WithPassword("dokan"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		ReceiptStoragePath: t.TempDir(),
		ShopName:           "Dokan Test",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("dokan2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Name:         "Admin E2E",
		Email:        "admin@e2e.test",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Status:       model.UserActive,
	}).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "password": "dokan2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

func createProduct(t *testing.T, env *testEnv, name, barcode string, stock int) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{
			"name":          name,
			"barcode":       barcode,
			"purchasePrice": "150.00",
			"sellingPrice":  "250.00",
			"stock":         stock,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &prod)
	return prod.ID
}

func getProductStock(t *testing.T, env *testEnv, id string) int {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/products/"+id, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod struct {
		Stock int `json:"stock"`
	}
	decodeJSON(t, resp, &prod)
	return prod.Stock
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullSaleCycle(t *testing.T) {
	env := setupTestEnv(t)
	productID := createProduct(t, env, "Soda 500ml", "7890001000001", 20)

	saleResp := do(t, env.server, "POST", "/v1/sales",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"productId": productID, "quantity": 3, "price": "250.00"},
			},
			"total": "750.00",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)
	var sale struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	decodeJSON(t, saleResp, &sale)
	assert.Equal(t, "750", sale.Total)

	assert.Equal(t, 17, getProductStock(t, env, productID))

	listResp := do(t, env.server, "GET", "/v1/sales", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.EqualValues(t, 1, list.Total)
}

func TestE2E_SaleRejectsInsufficientStock(t *testing.T) {
	env := setupTestEnv(t)
	productID := createProduct(t, env, "Soda 500ml", "7890001000002", 2)

	resp := do(t, env.server, "POST", "/v1/sales",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"productId": productID, "quantity": 5, "price": "250.00"},
			},
			"total": "1250.00",
		}),
		env.token,
	)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 2, getProductStock(t, env, productID))
}

func TestE2E_DeleteSaleRestoresStock(t *testing.T) {
	env := setupTestEnv(t)
	productID := createProduct(t, env, "Soda 500ml", "7890001000003", 10)

	saleResp := do(t, env.server, "POST", "/v1/sales",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"productId": productID, "quantity": 4, "price": "250.00"},
			},
			"total": "1000.00",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)
	var sale struct {
		ID string `json:"id"`
	}
	decodeJSON(t, saleResp, &sale)
	require.Equal(t, 6, getProductStock(t, env, productID))

	delResp := do(t, env.server, "DELETE", "/v1/sales/"+sale.ID, nil, env.token)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	assert.Equal(t, 10, getProductStock(t, env, productID))
}

func TestE2E_DueLedger(t *testing.T) {
	env := setupTestEnv(t)
	productID := createProduct(t, env, "Soda 500ml", "7890001000004", 10)

	saleResp := do(t, env.server, "POST", "/v1/sales",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"productId": productID, "quantity": 4, "price": "250.00"},
			},
			"total":    "1000.00",
			"customer": map[string]any{"phone": "01711000000", "name": "Karim"},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)
	var sale struct {
		ID string `json:"id"`
	}
	decodeJSON(t, saleResp, &sale)

	dueResp := do(t, env.server, "POST", "/v1/dues",
		jsonBody(t, map[string]any{"saleId": sale.ID, "totalAmount": "1000.00"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, dueResp.StatusCode)
	var due struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, dueResp, &due)
	assert.Equal(t, "pending", due.Status)

	// The sale is now locked behind its due.
	delResp := do(t, env.server, "DELETE", "/v1/sales/"+sale.ID, nil, env.token)
	assert.Equal(t, http.StatusBadRequest, delResp.StatusCode)
	delResp.Body.Close()

	payResp := do(t, env.server, "POST", "/v1/dues/"+due.ID+"/payments",
		jsonBody(t, map[string]any{"amount": "400.00", "paymentDate": "2026-03-15"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, payResp.StatusCode)
	var pay struct {
		Due struct {
			Status        string `json:"status"`
			PendingAmount string `json:"pendingAmount"`
		} `json:"due"`
	}
	decodeJSON(t, payResp, &pay)
	assert.Equal(t, "partial", pay.Due.Status)
	assert.Equal(t, "600", pay.Due.PendingAmount)

	// Overpaying the remaining balance is rejected.
	overResp := do(t, env.server, "POST", "/v1/dues/"+due.ID+"/payments",
		jsonBody(t, map[string]any{"amount": "700.00", "paymentDate": "2026-03-16"}),
		env.token,
	)
	assert.Equal(t, http.StatusBadRequest, overResp.StatusCode)
	overResp.Body.Close()

	settle := do(t, env.server, "POST", "/v1/dues/"+due.ID+"/payments",
		jsonBody(t, map[string]any{"amount": "600.00", "paymentDate": "2026-03-17"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, settle.StatusCode)
	decodeJSON(t, settle, &pay)
	assert.Equal(t, "paid", pay.Due.Status)
}

func TestE2E_PublicPriceCheck(t *testing.T) {
	env := setupTestEnv(t)
	createProduct(t, env, "Soda 500ml", "7890001000005", 10)

	// No token: the price check endpoint is public.
	resp := do(t, env.server, "GET", "/v1/price/7890001000005", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var price struct {
		Name         string `json:"name"`
		SellingPrice string `json:"sellingPrice"`
	}
	decodeJSON(t, resp, &price)
	assert.Equal(t, "Soda 500ml", price.Name)
	assert.Equal(t, "250", price.SellingPrice)

	miss := do(t, env.server, "GET", "/v1/price/0000000000000", nil, "")
	assert.Equal(t, http.StatusNotFound, miss.StatusCode)
	miss.Body.Close()
}
