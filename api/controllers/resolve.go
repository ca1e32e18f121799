package controllers

import (
	"net/http"

	"github.com/lib/pq"

	"github.com/wallprints/catalog-backend/api/responses"
	"github.com/wallprints/catalog-backend/api/validators"
	"github.com/wallprints/catalog-backend/internal/resolution"
	"github.com/wallprints/catalog-backend/pkg/db/models"
	"github.com/wallprints/catalog-backend/pkg/logger"
)

type resolveVariantPayload struct {
	Option1       string `json:"option1" validate:"required"`
	Option2       string `json:"option2" validate:"required"`
	ShopVariantID int64  `json:"shop_variant_id" validate:"required"`
	ImageURL      string `json:"image_url"`
	Position      int    `json:"position"`
}

type resolveRequest struct {
	SKU      string                  `json:"sku" validate:"required"`
	URL      string                  `json:"url" validate:"required,url"`
	ImageURL string                  `json:"image_url"`
	Layouts  []string                `json:"layouts" validate:"required,min=1,dive,required"`
	Variants []resolveVariantPayload `json:"variants" validate:"dive"`
}

// ResolveLayouts resolves an ad-hoc product payload without persisting it,
// used by catalog tooling to preview resolution output before import.
func ResolveLayouts(resolver resolution.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req resolveRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product := &models.Product{
			SKU:      req.SKU,
			URL:      req.URL,
			ImageURL: req.ImageURL,
			Layouts:  pq.StringArray(req.Layouts),
		}
		for _, variant := range req.Variants {
			product.Variants = append(product.Variants, models.ProductVariant{
				ShopVariantID: variant.ShopVariantID,
				Option1:       variant.Option1,
				Option2:       variant.Option2,
				ImageURL:      variant.ImageURL,
				Position:      variant.Position,
			})
		}

		layouts, err := resolver.ResolveLayouts(ctx, product)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, layouts)
	}
}
