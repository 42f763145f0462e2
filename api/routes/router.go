package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anandmehra/dailybasket-backend/api/controllers"
	"github.com/anandmehra/dailybasket-backend/api/middleware"
	"github.com/anandmehra/dailybasket-backend/internal/cart"
	"github.com/anandmehra/dailybasket-backend/internal/catalog"
	"github.com/anandmehra/dailybasket-backend/internal/orders"
	"github.com/anandmehra/dailybasket-backend/internal/payments"
	"github.com/anandmehra/dailybasket-backend/pkg/config"
	"github.com/anandmehra/dailybasket-backend/pkg/db"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
	pkgredis "github.com/anandmehra/dailybasket-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	gatherer prometheus.Gatherer,
	catalogSvc *catalog.Service,
	cartSvc cart.Service,
	ordersSvc orders.Service,
	paymentsSvc payments.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	// Typed nils must not reach the interface-valued middleware.
	var cachePinger controllers.Pinger
	var idemStore pkgredis.IdempotencyStore
	if redisClient != nil {
		cachePinger = redisClient
		idemStore = redisClient
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cachePinger))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.ListCatalog(catalogSvc, logg))
		r.Get("/delivery-slots", controllers.ListDeliverySlots(catalogSvc, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg))
			r.Use(middleware.Idempotency(idemStore, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartSvc, logg))
				r.Get("/preview", controllers.PreviewCart(cartSvc, logg))
				r.Put("/items", controllers.UpsertCartItem(cartSvc, logg))
				r.Delete("/items/{productId}", controllers.RemoveCartItem(cartSvc, logg))
			})

			r.Post("/checkout", controllers.Checkout(ordersSvc, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.ListOrders(ordersSvc, logg))
				r.Get("/{orderId}", controllers.OrderDetail(ordersSvc, logg))
				r.Post("/{orderId}/pay", controllers.PayOrder(paymentsSvc, logg))
				r.Post("/{orderId}/items/{itemIndex}/cancel", controllers.CancelOrderItem(ordersSvc, logg))
				r.Post("/{orderId}/items/{itemIndex}/deliver", controllers.DeliverOrderItem(ordersSvc, logg))
				r.Post("/{orderId}/items/{itemIndex}/return", controllers.ReturnOrderItem(ordersSvc, logg))
			})
		})
	})

	return r
}
