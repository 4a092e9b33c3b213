package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jordanhale/lapstore-backend/api/controllers"
	"github.com/jordanhale/lapstore-backend/api/middleware"
	"github.com/jordanhale/lapstore-backend/internal/authz"
	"github.com/jordanhale/lapstore-backend/internal/cart"
	"github.com/jordanhale/lapstore-backend/internal/catalog"
	"github.com/jordanhale/lapstore-backend/internal/chatbot"
	"github.com/jordanhale/lapstore-backend/internal/orders"
	"github.com/jordanhale/lapstore-backend/internal/wishlist"
	"github.com/jordanhale/lapstore-backend/pkg/config"
	"github.com/jordanhale/lapstore-backend/pkg/db"
	"github.com/jordanhale/lapstore-backend/pkg/logger"
	"github.com/jordanhale/lapstore-backend/pkg/metrics"
)

// Services bundles the domain layer the router exposes.
type Services struct {
	Catalog  catalog.Service
	Cart     cart.Service
	Orders   orders.Service
	Wishlist wishlist.Service
	Chatbot  chatbot.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTP,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public storefront reads.
		r.Get("/laptops", controllers.LaptopsList(svcs.Catalog, logg))
		r.Get("/laptops/{laptopId}", controllers.LaptopsGet(svcs.Catalog, logg))
		r.Get("/categories", controllers.CategoriesList(svcs.Catalog, logg))
		r.Get("/banners", controllers.BannersList(svcs.Catalog, logg))
		r.Post("/chat", controllers.Chat(svcs.Chatbot, logg))

		// Everything below requires an authenticated caller.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(svcs.Cart, logg))
				r.Delete("/", controllers.CartClear(svcs.Cart, logg))
				r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
				r.Put("/items/{itemId}", controllers.CartUpdateItem(svcs.Cart, logg))
				r.Delete("/items/{itemId}", controllers.CartRemoveItem(svcs.Cart, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.OrdersCreate(svcs.Orders, logg))
				r.Get("/", controllers.OrdersList(svcs.Orders, logg))
				r.Get("/{orderId}", controllers.OrdersGet(svcs.Orders, logg))

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(authz.CapManageOrders, logg))
					r.Put("/{orderId}/status", controllers.OrdersUpdateStatus(svcs.Orders, logg))
					r.Delete("/{orderId}", controllers.OrdersDelete(svcs.Orders, logg))
					r.Get("/status/{status}", controllers.OrdersListByStatus(svcs.Orders, logg))
					r.Get("/stats/overview", controllers.OrdersStats(svcs.Orders, logg))
				})
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(svcs.Wishlist, logg))
				r.Delete("/", controllers.WishlistClear(svcs.Wishlist, logg))
				r.Post("/{productId}", controllers.WishlistAdd(svcs.Wishlist, logg))
				r.Delete("/{productId}", controllers.WishlistRemove(svcs.Wishlist, logg))
				r.Get("/check/{productId}", controllers.WishlistCheck(svcs.Wishlist, logg))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireCapability(authz.CapManageCatalog, logg))

				r.Post("/laptops", controllers.AdminLaptopsCreate(svcs.Catalog, logg))
				r.Put("/laptops/{laptopId}", controllers.AdminLaptopsUpdate(svcs.Catalog, logg))
				r.Delete("/laptops/{laptopId}", controllers.AdminLaptopsDelete(svcs.Catalog, logg))
				r.Post("/categories", controllers.AdminCategoriesCreate(svcs.Catalog, logg))
				r.Delete("/categories/{categoryId}", controllers.AdminCategoriesDelete(svcs.Catalog, logg))
				r.Post("/banners", controllers.AdminBannersCreate(svcs.Catalog, logg))
				r.Delete("/banners/{bannerId}", controllers.AdminBannersDelete(svcs.Catalog, logg))
			})
		})
	})

	return r
}
