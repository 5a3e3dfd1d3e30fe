package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calderasoft/erp-backend/api/controllers"
	"github.com/calderasoft/erp-backend/api/middleware"
	"github.com/calderasoft/erp-backend/internal/analytics"
	"github.com/calderasoft/erp-backend/internal/dashboard"
	"github.com/calderasoft/erp-backend/internal/finance"
	"github.com/calderasoft/erp-backend/internal/inventory"
	"github.com/calderasoft/erp-backend/internal/mrp"
	"github.com/calderasoft/erp-backend/internal/procurement"
	"github.com/calderasoft/erp-backend/internal/projects"
	"github.com/calderasoft/erp-backend/internal/sales"
	"github.com/calderasoft/erp-backend/pkg/config"
	"github.com/calderasoft/erp-backend/pkg/logger"
	"github.com/calderasoft/erp-backend/pkg/metrics"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Finance     finance.Service
	Inventory   inventory.Service
	Sales       sales.Service
	Procurement procurement.Service
	Projects    projects.Service
	MRP         mrp.Service
	Analytics   analytics.Service
	Dashboard   dashboard.Service
}

// NewRouter assembles the full HTTP surface: health and metrics endpoints
// plus the versioned API. Nil pingers are skipped by the readiness probe.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	deps map[string]controllers.Pinger,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/finance", func(r chi.Router) {
			r.Get("/accounts", controllers.FinanceListAccounts(svcs.Finance, logg))
			r.Post("/accounts", controllers.FinanceCreateAccount(svcs.Finance, logg))
			r.Get("/transactions", controllers.FinanceListTransactions(svcs.Finance, logg))
			r.Post("/transactions", controllers.FinanceCreateTransaction(svcs.Finance, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/products", controllers.InventoryListProducts(svcs.Inventory, logg))
			r.Post("/products", controllers.InventoryCreateProduct(svcs.Inventory, logg))
			r.Get("/movements", controllers.InventoryListMovements(svcs.Inventory, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/orders", controllers.SalesListOrders(svcs.Sales, logg))
			r.Post("/orders", controllers.SalesCreateOrder(svcs.Sales, logg))
			r.Get("/orders/{orderId}", controllers.SalesGetOrder(svcs.Sales, logg))
			r.Put("/orders/{orderId}/status", controllers.SalesUpdateOrderStatus(svcs.Sales, logg))
		})

		r.Route("/procurement", func(r chi.Router) {
			r.Get("/suppliers", controllers.ProcurementListSuppliers(svcs.Procurement, logg))
			r.Get("/purchase-orders", controllers.ProcurementListPurchaseOrders(svcs.Procurement, logg))
			r.Post("/purchase-orders", controllers.ProcurementCreatePurchaseOrder(svcs.Procurement, logg))
			r.Put("/purchase-orders/{purchaseOrderId}/status", controllers.ProcurementUpdatePurchaseOrderStatus(svcs.Procurement, logg))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", controllers.ProjectsList(svcs.Projects, logg))
			r.Post("/", controllers.ProjectsCreate(svcs.Projects, logg))
		})

		r.Route("/mrp", func(r chi.Router) {
			r.Get("/bom", controllers.MRPListBOMItems(svcs.MRP, logg))
			r.Post("/bom", controllers.MRPCreateBOMItem(svcs.MRP, logg))
		})

		r.Get("/analytics", controllers.AnalyticsReport(svcs.Analytics, logg))
		r.Get("/dashboard", controllers.DashboardSummary(svcs.Dashboard, logg))
	})

	return r
}
