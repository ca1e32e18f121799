package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/wallprints/catalog-backend/pkg/db/models"
	pkgerrors "github.com/wallprints/catalog-backend/pkg/errors"
)

// Store exposes the read-only reference datasets consumed by layout resolution.
type Store interface {
	VariantPriceEntries(ctx context.Context, layoutKeys []string, includePricing bool) (map[string][]models.VariantPriceEntry, error)
	ProductPreview(ctx context.Context, sku string) (*models.ProductPreview, error)
	VariantConfigHandles(ctx context.Context) (map[string]string, error)
	RoomImages(ctx context.Context, ids []string) ([]models.RoomImage, error)
	RoomImageByURLSuffix(ctx context.Context, id string) (*models.RoomImage, error)
}

// Repository reads the four reference datasets from Postgres.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// VariantPriceEntries batch-loads price rows for the given layout keys, grouped
// by layout key and sorted by position ascending. When includePricing is false
// the price columns are left unselected and come back zero-valued.
func (r *Repository) VariantPriceEntries(ctx context.Context, layoutKeys []string, includePricing bool) (map[string][]models.VariantPriceEntry, error) {
	grouped := make(map[string][]models.VariantPriceEntry, len(layoutKeys))
	if len(layoutKeys) == 0 {
		return grouped, nil
	}

	qb := r.db.WithContext(ctx).
		Where("layout_key IN ?", layoutKeys).
		Order("position ASC").
		Order("created_at ASC")
	if !includePricing {
		qb = qb.Select("id", "layout_key", "option1", "option2", "position", "created_at")
	}

	var rows []models.VariantPriceEntry
	if err := qb.Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("fetch variant price entries (%d layout keys)", len(layoutKeys)),
		)
	}
	for _, row := range rows {
		grouped[row.LayoutKey] = append(grouped[row.LayoutKey], row)
	}
	return grouped, nil
}

// ProductPreview loads the preview record for a SKU with its layouts in
// position order. A product without a preview record returns nil, not an error.
func (r *Repository) ProductPreview(ctx context.Context, sku string) (*models.ProductPreview, error) {
	var preview models.ProductPreview
	err := r.db.WithContext(ctx).
		Preload("Layouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&preview, "sku = ?", sku).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("fetch product preview (sku=%s)", sku),
		)
	}
	return &preview, nil
}

// VariantConfigHandles scans the full handle table into a layout key keyed map.
func (r *Repository) VariantConfigHandles(ctx context.Context) (map[string]string, error) {
	var rows []models.VariantConfigHandle
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch variant config handles")
	}
	handles := make(map[string]string, len(rows))
	for _, row := range rows {
		handles[row.LayoutKey] = row.MasterHandle
	}
	return handles, nil
}

// RoomImages batch-loads room records whose URL embeds one of the given ids.
func (r *Repository) RoomImages(ctx context.Context, ids []string) ([]models.RoomImage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	patterns := make([]string, 0, len(ids)*2)
	for _, id := range ids {
		patterns = append(patterns, "%rooms/"+id+"%", "%Rooms/"+id+"%")
	}

	var rows []models.RoomImage
	err := r.db.WithContext(ctx).
		Where("url LIKE ANY (?)", pq.Array(patterns)).
		Find(&rows).
		Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("fetch room images (%d ids)", len(ids)),
		)
	}
	return rows, nil
}

// RoomImageByURLSuffix fetches a single room record by the id embedded in its
// URL. A room with no metadata record returns nil, not an error.
func (r *Repository) RoomImageByURLSuffix(ctx context.Context, id string) (*models.RoomImage, error) {
	var room models.RoomImage
	err := r.db.WithContext(ctx).
		Where("url LIKE ? OR url LIKE ?", "%rooms/"+id+"%", "%Rooms/"+id+"%").
		First(&room).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
			fmt.Sprintf("fetch room image (id=%s)", id),
		)
	}
	return &room, nil
}
