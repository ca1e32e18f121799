package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductPreview holds the visual-preview record for a product SKU, one child
// row per layout name.
type ProductPreview struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU       string                 `gorm:"column:sku;not null;uniqueIndex"`
	Layouts   []ProductPreviewLayout `gorm:"foreignKey:PreviewID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductPreviewLayout is the per-layout preview data: an ordered image
// sequence, optionally pre-chosen room identifiers, and optional 3D preview
// URLs where the CDN-hosted override wins when present.
type ProductPreviewLayout struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PreviewID       uuid.UUID      `gorm:"column:preview_id;type:uuid;not null;index"`
	LayoutName      string         `gorm:"column:layout_name;not null"`
	Images          []PreviewImage `gorm:"column:images;type:jsonb;serializer:json"`
	ChosenRoomIDs   pq.StringArray `gorm:"column:chosen_room_ids;type:text[];not null;default:ARRAY[]::text[]"`
	Preview3DURL    string         `gorm:"column:preview_3d_url;not null;default:''"`
	Preview3DCDNURL string         `gorm:"column:preview_3d_cdn_url;not null;default:''"`
	Position        int            `gorm:"column:position;not null;default:0"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// PreviewImage is a single staged room rendering. CDNURL overrides URL for
// serving when set.
type PreviewImage struct {
	URL    string `json:"url"`
	CDNURL string `json:"cdn_url,omitempty"`
}
