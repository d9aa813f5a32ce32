package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockroomhq/inventory-backend/api/controllers"
	"github.com/stockroomhq/inventory-backend/api/middleware"
	"github.com/stockroomhq/inventory-backend/api/responses"
	"github.com/stockroomhq/inventory-backend/internal/inventory"
	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
	"github.com/stockroomhq/inventory-backend/pkg/metrics"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Inventory inventory.Service
	Logger    *logger.Logger
	Registry  *prometheus.Registry
}

// New assembles the HTTP surface. Record ids are constrained to digits
// at the route level, so a non-numeric id is a plain 404.
func New(deps Deps) http.Handler {
	logg := deps.Logger
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(httpMetrics))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "The requested URL was not found on the server."))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "The method is not allowed for the requested URL."))
	})

	r.Get("/", controllers.Index())
	r.Get("/health", controllers.Health())
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", controllers.ListInventory(deps.Inventory, logg))
		r.Post("/", controllers.CreateInventory(deps.Inventory, logg))

		r.Route("/{recordID:[0-9]+}", func(r chi.Router) {
			r.Get("/", controllers.GetInventory(deps.Inventory, logg))
			r.Put("/", controllers.UpdateInventory(deps.Inventory, logg))
			r.Delete("/", controllers.DeleteInventory(deps.Inventory, logg))
			r.Put("/restock", controllers.RestockInventory(deps.Inventory, logg))
		})
	})

	return r
}
