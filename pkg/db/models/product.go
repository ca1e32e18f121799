package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a catalog item. Layouts holds the nominal layout names in display
// order; a layout name need not have a purchasable variant.
type Product struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU       string           `gorm:"column:sku;not null;uniqueIndex"`
	Title     string           `gorm:"column:title;not null"`
	URL       string           `gorm:"column:url;not null"`
	ImageURL  string           `gorm:"column:image_url"`
	Layouts   pq.StringArray   `gorm:"column:layouts;type:text[];not null;default:ARRAY[]::text[]"`
	Variants  []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductVariant is one purchasable (format, size) combination of a product.
// ShopVariantID is the storefront purchase identifier appended to the product
// URL at checkout.
type ProductVariant struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	ShopVariantID int64     `gorm:"column:shop_variant_id;not null"`
	Option1       string    `gorm:"column:option1;not null"`
	Option2       string    `gorm:"column:option2;not null"`
	ImageURL      string    `gorm:"column:image_url"`
	Position      int       `gorm:"column:position;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
