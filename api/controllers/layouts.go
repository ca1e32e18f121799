package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wallprints/catalog-backend/api/responses"
	"github.com/wallprints/catalog-backend/internal/resolution"
	"github.com/wallprints/catalog-backend/pkg/db/models"
	pkgerrors "github.com/wallprints/catalog-backend/pkg/errors"
	"github.com/wallprints/catalog-backend/pkg/logger"
	"github.com/wallprints/catalog-backend/pkg/redis"
)

// ProductLoader loads catalog products by SKU.
type ProductLoader interface {
	ProductBySKU(ctx context.Context, sku string) (*models.Product, error)
}

// LayoutCache caches serialized resolution output per SKU.
type LayoutCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ResolutionKey(sku string) string
}

// ProductLayouts resolves the layouts of a persisted product. Resolution
// output is cached per SKU; cache failures degrade to a fresh resolution.
func ProductLayouts(products ProductLoader, resolver resolution.Service, cache LayoutCache, ttl time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sku := chi.URLParam(r, "sku")
		if sku == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sku is required"))
			return
		}
		ctx = logg.WithSKU(ctx, sku)

		if cache != nil {
			cached, err := cache.Get(ctx, cache.ResolutionKey(sku))
			switch {
			case err == nil:
				responses.WriteSuccess(w, json.RawMessage(cached))
				return
			case !redis.IsNil(err):
				logg.Warn(logg.WithField(ctx, "error", err.Error()), "layout cache read failed")
			}
		}

		product, err := products.ProductBySKU(ctx, sku)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		layouts, err := resolver.ResolveLayouts(ctx, product)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if cache != nil {
			if raw, err := json.Marshal(layouts); err == nil {
				if err := cache.Set(ctx, cache.ResolutionKey(sku), raw, ttl); err != nil {
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "layout cache write failed")
				}
			}
		}
		responses.WriteSuccess(w, layouts)
	}
}
