package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wallprints/catalog-backend/api/controllers"
	"github.com/wallprints/catalog-backend/api/middleware"
	"github.com/wallprints/catalog-backend/internal/resolution"
	"github.com/wallprints/catalog-backend/pkg/config"
	"github.com/wallprints/catalog-backend/pkg/logger"
)

// RouterParams carries the wired dependencies of the HTTP surface.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Cache    controllers.Pinger
	Products controllers.ProductLoader

	LayoutCache     controllers.LayoutCache
	CatalogResolver resolution.Service
	AdhocResolver   resolution.Service
}

func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(params.Logger),
		middleware.RequestID(params.Logger),
		middleware.Logging(params.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(params.Config))
		r.Get("/ready", controllers.HealthReady(params.Config, params.Logger, params.DB, params.Cache))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products/{sku}/layouts", controllers.ProductLayouts(
			params.Products,
			params.CatalogResolver,
			params.LayoutCache,
			params.Config.Resolution.CacheTTL,
			params.Logger,
		))
		r.Post("/layouts/resolve", controllers.ResolveLayouts(params.AdhocResolver, params.Logger))
	})

	return r
}
