package controllers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/wallprints/catalog-backend/api/responses"
	"github.com/wallprints/catalog-backend/pkg/config"
	pkgerrors "github.com/wallprints/catalog-backend/pkg/errors"
	"github.com/wallprints/catalog-backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WallPrints-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency and aggregates the failures so a
// single probe reports all unhealthy backends at once.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WallPrints-Env", cfg.App.Env)
		ctx := r.Context()

		var errs []error
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("postgres: %w", err))
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("redis: %w", err))
			}
		}

		if combined := multierr.Combine(errs...); combined != nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
