package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmfuentes/smartcart-backend/api/controllers"
	"github.com/dmfuentes/smartcart-backend/api/middleware"
	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/internal/deals"
	"github.com/dmfuentes/smartcart-backend/internal/list"
	"github.com/dmfuentes/smartcart-backend/internal/planner"
	"github.com/dmfuentes/smartcart-backend/internal/quantity"
	"github.com/dmfuentes/smartcart-backend/internal/retailers"
	"github.com/dmfuentes/smartcart-backend/pkg/config"
	"github.com/dmfuentes/smartcart-backend/pkg/db"
	"github.com/dmfuentes/smartcart-backend/pkg/logger"
	"github.com/dmfuentes/smartcart-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	metricsGatherer prometheus.Gatherer,
	catalogService *catalog.Service,
	quantityService *quantity.Service,
	listService list.Service,
	retailerService retailers.Service,
	dealService deals.Service,
	plannerService planner.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/lists", func(r chi.Router) {
			r.Post("/", controllers.CreateList(listService, logg))
			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", controllers.GetList(listService, logg))
				r.Delete("/", controllers.DeleteList(listService, logg))
				r.Post("/plans", controllers.GeneratePlan(plannerService, logg))
				r.Route("/items", func(r chi.Router) {
					r.Get("/", controllers.ListItems(listService, logg))
					r.Post("/", controllers.AddItem(listService, logg))
					r.Patch("/{itemID}", controllers.UpdateItem(listService, logg))
					r.Delete("/{itemID}", controllers.DeleteItem(listService, logg))
				})
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categorize", controllers.CategorizeItem(catalogService, logg))
			r.Get("/normalize-quantity", controllers.NormalizeQuantity(quantityService, logg))
		})

		r.Route("/retailers", func(r chi.Router) {
			r.Get("/", controllers.ListRetailers(retailerService, logg))
			r.Get("/{retailerID}", controllers.GetRetailer(retailerService, logg))
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", controllers.ListDeals(dealService, logg))
			r.Post("/", controllers.CreateDeal(dealService, logg))
		})
	})

	return r
}
