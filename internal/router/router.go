package router

import (
	"time"

	"dokan/internal/config"
	"dokan/internal/handler"
	"dokan/internal/middleware"
	"dokan/internal/model"
	"dokan/internal/repository"
	"dokan/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	dueRepo := repository.NewDueRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	saleSvc := service.NewSaleService(saleRepo, productRepo, dueRepo)
	dueSvc := service.NewDueService(dueRepo, saleRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo)
	productSvc := service.NewProductService(productRepo, saleRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	analyticsSvc := service.NewAnalyticsService(saleRepo, expenseRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	salesH := handler.NewSalesHandler(saleSvc, cfg.ShopName, cfg.ReceiptStoragePath)
	duesH := handler.NewDuesHandler(dueSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	inventoryH := handler.NewInventoryHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	hrH := handler.NewHRHandler(employeeSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	reportsH := handler.NewReportsHandler(saleRepo, expenseRepo)
	priceH := handler.NewPriceCheckHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required, read-only
	r.GET("/v1/price/:barcode", priceH.GetPriceByBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleUser)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Sales — any authenticated role sells; deletion is admin-only
		v1.POST("/sales", anyRole, salesH.Create)
		v1.GET("/sales", anyRole, salesH.List)
		v1.GET("/sales/:id", anyRole, salesH.Get)
		v1.GET("/sales/:id/receipt", anyRole, salesH.Receipt)
		v1.DELETE("/sales/:id", adminOnly, salesH.Delete)

		// Dues — customer credit ledger
		v1.GET("/dues", anyRole, duesH.List)
		v1.GET("/dues/:id", anyRole, duesH.Get)
		dues := v1.Group("/dues", adminOnly)
		{
			dues.POST("", duesH.Create)
			dues.PUT("/:id", duesH.Update)
			dues.DELETE("/:id", duesH.Delete)
			dues.POST("/:id/payments", duesH.AddPayment)
		}

		// Purchases — supplier credit ledger
		v1.GET("/purchases", anyRole, purchasesH.List)
		v1.GET("/purchases/:id", anyRole, purchasesH.Get)
		purchases := v1.Group("/purchases", adminOnly)
		{
			purchases.POST("", purchasesH.Create)
			purchases.DELETE("/:id", purchasesH.Delete)
			purchases.POST("/:id/payments", purchasesH.AddPayment)
		}

		// Inventory — any role reads the catalog, admin writes
		v1.GET("/products", anyRole, inventoryH.List)
		v1.GET("/products/:id", anyRole, inventoryH.Get)
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", inventoryH.Create)
			products.PUT("/:id", inventoryH.Update)
			products.DELETE("/:id", inventoryH.Delete)
			products.POST("/:id/deactivate", inventoryH.Deactivate)
			products.POST("/:id/reactivate", inventoryH.Reactivate)
		}

		v1.GET("/categories", anyRole, categoriesH.List)
		categories := v1.Group("/categories", adminOnly)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		suppliers := v1.Group("/suppliers", adminOnly)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		// Expenses — any role records, admin edits and deletes
		v1.POST("/expenses", anyRole, expensesH.Create)
		v1.GET("/expenses", anyRole, expensesH.List)
		v1.PUT("/expenses/:id", adminOnly, expensesH.Update)
		v1.DELETE("/expenses/:id", adminOnly, expensesH.Delete)

		employees := v1.Group("/employees", adminOnly)
		{
			employees.POST("", hrH.Create)
			employees.GET("", hrH.List)
			employees.PUT("/:id", hrH.Update)
			employees.DELETE("/:id", hrH.Delete)
		}

		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		v1.GET("/analytics", adminOnly, analyticsH.Dashboard)
		v1.GET("/reports/sales", adminOnly, reportsH.SalesReport)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
