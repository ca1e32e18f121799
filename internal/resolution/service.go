package resolution

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/wallprints/catalog-backend/internal/reference"
	"github.com/wallprints/catalog-backend/pkg/db/models"
	pkgerrors "github.com/wallprints/catalog-backend/pkg/errors"
	"github.com/wallprints/catalog-backend/pkg/logger"
	"github.com/wallprints/catalog-backend/pkg/metrics"
)

const hexagonPieces = 7

// Service resolves a product's nominal layouts into purchase metadata.
type Service interface {
	ResolveLayouts(ctx context.Context, product *models.Product) ([]ResolvedLayout, error)
}

// ServiceParams configures a resolution service instance.
type ServiceParams struct {
	Store   reference.Store
	Logger  *logger.Logger
	Metrics *metrics.ResolutionMetrics
	Source  string
}

// NewService constructs a resolution service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("reference store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	source := params.Source
	if source == "" {
		source = "catalog"
	}
	return &service{
		store:   params.Store,
		rooms:   &roomResolver{store: params.Store},
		logg:    params.Logger,
		metrics: params.Metrics,
		source:  source,
	}, nil
}

type service struct {
	store   reference.Store
	rooms   *roomResolver
	logg    *logger.Logger
	metrics *metrics.ResolutionMetrics
	source  string
}

type optionPair struct {
	option1 string
	option2 string
}

// ResolveLayouts derives one ResolvedLayout per purchasable layout name on the
// product, preserving the order of product.Layouts. Layouts without a matching
// purchasable variant are dropped from the output. The three independent
// reference fetches are issued concurrently and awaited before the per-layout
// loop; a store failure aborts the whole call.
func (s *service) ResolveLayouts(ctx context.Context, product *models.Product) ([]ResolvedLayout, error) {
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product required")
	}
	start := time.Now()
	ctx = s.logg.WithSKU(ctx, product.SKU)

	var (
		prices  map[string][]models.VariantPriceEntry
		preview *models.ProductPreview
		handles map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prices, err = s.store.VariantPriceEntries(gctx, product.Layouts, true)
		return err
	})
	g.Go(func() error {
		var err error
		preview, err = s.store.ProductPreview(gctx, product.SKU)
		return err
	})
	g.Go(func() error {
		var err error
		handles, err = s.store.VariantConfigHandles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	previewByName := make(map[string]*models.ProductPreviewLayout)
	if preview != nil {
		for i := range preview.Layouts {
			layout := &preview.Layouts[i]
			if _, ok := previewByName[layout.LayoutName]; !ok {
				previewByName[layout.LayoutName] = layout
			}
		}
	}

	variantByOptions := make(map[optionPair]*models.ProductVariant, len(product.Variants))
	for i := range product.Variants {
		variant := &product.Variants[i]
		key := optionPair{variant.Option1, variant.Option2}
		if _, ok := variantByOptions[key]; !ok {
			variantByOptions[key] = variant
		}
	}

	resolved := make([]ResolvedLayout, 0, len(product.Layouts))
	dropped := 0
	seen := make(map[string]struct{}, len(product.Layouts))

	for _, name := range product.Layouts {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		var available []models.VariantPriceEntry
		var availableVariants []*models.ProductVariant
		for _, entry := range prices[name] {
			variant, ok := variantByOptions[optionPair{entry.Option1, entry.Option2}]
			if !ok {
				continue
			}
			available = append(available, entry)
			availableVariants = append(availableVariants, variant)
		}
		if len(available) == 0 {
			dropped++
			continue
		}

		// The canonical representative is the first available entry in the
		// pre-sorted position order, never the cheapest one.
		rep := available[0]
		repVariant := availableVariants[0]
		if repVariant.ShopVariantID == 0 {
			dropped++
			continue
		}

		pieces := PieceCount(name)
		previewLayout := previewByName[name]

		var rooms []ResolvedRoom
		if pieces == hexagonPieces {
			imageURL := repVariant.ImageURL
			if imageURL == "" {
				imageURL = product.ImageURL
			}
			rooms = []ResolvedRoom{syntheticRoom(imageURL)}
		} else {
			var err error
			rooms, err = s.rooms.resolve(ctx, previewLayout, true)
			if err != nil {
				return nil, err
			}
		}

		layout := ResolvedLayout{
			Name:           name,
			FormatLabel:    rep.Option1,
			MasterHandle:   handles[name],
			Pieces:         pieces,
			Shape:          ClassifyShape(name),
			FormatType:     ClassifyFormatType(rep.Option1),
			PurchaseURL:    purchaseURL(product.URL, repVariant.ShopVariantID),
			Sizes:          availableSizes(available),
			Rooms:          rooms,
			Price:          parsePrice(rep.Price),
			CompareAtPrice: parsePrice(rep.CompareAtPrice),
		}
		if previewLayout != nil {
			if previewLayout.Preview3DCDNURL != "" {
				layout.Preview3DURL = previewLayout.Preview3DCDNURL
			} else {
				layout.Preview3DURL = previewLayout.Preview3DURL
			}
		}
		resolved = append(resolved, layout)
	}

	s.metrics.ObserveDuration(s.source, time.Since(start))
	s.metrics.AddResolved(s.source, len(resolved))
	s.metrics.AddDropped(s.source, dropped)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"resolved": len(resolved),
		"dropped":  dropped,
	})
	s.logg.Debug(ctx, "layout resolution complete")

	return resolved, nil
}

// availableSizes lists the size labels of the available entries in position
// order, first occurrence wins on duplicates.
func availableSizes(available []models.VariantPriceEntry) []string {
	sizes := make([]string, 0, len(available))
	seen := make(map[string]struct{}, len(available))
	for _, entry := range available {
		if _, ok := seen[entry.Option2]; ok {
			continue
		}
		seen[entry.Option2] = struct{}{}
		sizes = append(sizes, entry.Option2)
	}
	return sizes
}

func purchaseURL(productURL string, shopVariantID int64) string {
	separator := "?"
	if strings.Contains(productURL, "?") {
		separator = "&"
	}
	return productURL + separator + "variant=" + strconv.FormatInt(shopVariantID, 10)
}

// parsePrice converts a decimal price string to a float. Absent or unparsable
// values coerce to zero.
func parsePrice(raw *string) float64 {
	if raw == nil {
		return 0
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return 0
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}
	result, _ := parsed.Float64()
	return result
}
