package router

import (
	"time"

	"sobanhang/internal/config"
	"sobanhang/internal/handler"
	"sobanhang/internal/infra"
	"sobanhang/internal/middleware"
	"sobanhang/internal/repository"
	"sobanhang/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← StateStorage ← KVStore
func New(cfg *config.Config, state *repository.State, storage repository.StateStorage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins...))
	r.Use(middleware.ErrorHandler())
	if cfg.RateLimitPerMinute > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute).Middleware())
	}

	// ── Services ─────────────────────────────────────────────────────────────
	shop := infra.ShopInfo{Name: cfg.ShopName, Address: cfg.ShopAddress}
	productSvc := service.NewProductService(state.Catalog, cfg.SearchLimit)
	customerSvc := service.NewCustomerService(state.Customers)
	saleSvc := service.NewSaleService(state.Catalog, state.Customers, state.Sales, shop)
	reportSvc := service.NewReportService(state.Sales, cfg.TopProductsLimit)
	themeSvc := service.NewThemeService(storage, cfg.DefaultTheme)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	themeH := handler.NewThemeHandler(themeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(storage, cfg.StorageDriver))

	v1 := r.Group("/v1")
	{
		prods := v1.Group("/products")
		{
			prods.GET("", productsH.List)
			prods.GET("/barcode/:code", productsH.ScanBarcode)
			prods.GET("/:id", productsH.GetByID)
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
		}

		custs := v1.Group("/customers")
		{
			custs.GET("", customersH.List)
			custs.GET("/:id", customersH.GetByID)
			custs.POST("", customersH.Create)
			custs.PUT("/:id", customersH.Update)
			custs.DELETE("/:id", customersH.Delete)
			custs.POST("/:id/debt", customersH.AdjustDebt)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("/quote", salesH.Quote)
			sales.POST("", salesH.Checkout)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.GetByID)
			sales.GET("/:id/receipt.pdf", salesH.Receipt)
		}

		v1.GET("/reports/summary", reportsH.Summary)

		theme := v1.Group("/theme")
		{
			theme.GET("", themeH.Get)
			theme.PUT("", themeH.Set)
			theme.POST("/toggle", themeH.Toggle)
		}
	}

	return r
}
