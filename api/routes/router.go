package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marcusvales/shoplane-backend/api/controllers"
	"github.com/marcusvales/shoplane-backend/api/middleware"
	"github.com/marcusvales/shoplane-backend/internal/analytics"
	authsvc "github.com/marcusvales/shoplane-backend/internal/auth"
	"github.com/marcusvales/shoplane-backend/internal/cart"
	"github.com/marcusvales/shoplane-backend/internal/catalog"
	"github.com/marcusvales/shoplane-backend/internal/orders"
	"github.com/marcusvales/shoplane-backend/internal/wishlist"
	pkgAuth "github.com/marcusvales/shoplane-backend/pkg/auth"
	"github.com/marcusvales/shoplane-backend/pkg/auth/session"
	"github.com/marcusvales/shoplane-backend/pkg/config"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
	"github.com/marcusvales/shoplane-backend/pkg/metrics"
)

// RouterParams collects everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	SessionChecker session.AccessSessionChecker
	Registry       *prometheus.Registry
	HTTPMetrics    *metrics.HTTPMetrics

	AuthService     authsvc.Service
	RefreshService  authsvc.RefreshService
	RegisterService authsvc.RegisterService
	CatalogService  catalog.Service
	CartService     cart.Service
	WishlistService wishlist.Service
	OrdersService   orders.Service
	Analytics       analytics.Service
}

// NewRouter assembles the chi router with the full middleware chain and all
// routes. Trailing slashes are stripped, so /api/cart/ and /api/cart match
// the same handler.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
	)
	if p.HTTPMetrics != nil {
		r.Use(middleware.Metrics(p.HTTPMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisPinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", controllers.Register(p.RegisterService, logg))
		r.Post("/token", controllers.TokenObtain(p.AuthService, logg))
		r.Post("/token/refresh", controllers.TokenRefresh(p.RefreshService, logg))

		r.Get("/categories", controllers.CategoriesList(p.CatalogService, logg))
		r.Get("/categories/{id}", controllers.CategoriesGet(p.CatalogService, logg))
		r.Get("/products", controllers.ProductsList(p.CatalogService, logg))
		r.Get("/products/{id}", controllers.ProductsGet(p.CatalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

			r.Get("/cart", controllers.CartGet(p.CartService, logg))
			r.Post("/cart", controllers.CartAddItem(p.CartService, logg))
			r.Delete("/cart/item/{id}", controllers.CartRemoveItem(p.CartService, logg))

			r.Get("/wishlist", controllers.WishlistGet(p.WishlistService, logg))
			r.Post("/wishlist", controllers.WishlistReplace(p.WishlistService, logg))

			r.Get("/orders", controllers.OrdersList(p.OrdersService, logg))
			r.Post("/orders", controllers.OrdersPlace(p.OrdersService, logg))
			r.Get("/orders/{id}", controllers.OrdersGet(p.OrdersService, logg))
			r.Post("/orders/{id}/pay", controllers.OrdersPay(p.OrdersService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(pkgAuth.RoleAdmin, logg))

				r.Post("/categories", controllers.CategoriesCreate(p.CatalogService, logg))
				r.Patch("/categories/{id}", controllers.CategoriesUpdate(p.CatalogService, logg))
				r.Delete("/categories/{id}", controllers.CategoriesDelete(p.CatalogService, logg))
				r.Post("/products", controllers.ProductsCreate(p.CatalogService, logg))
				r.Patch("/products/{id}", controllers.ProductsUpdate(p.CatalogService, logg))
				r.Delete("/products/{id}", controllers.ProductsDelete(p.CatalogService, logg))

				r.Get("/admin/analytics", controllers.AnalyticsSummary(p.Analytics, logg))
			})
		})
	})

	return r
}
