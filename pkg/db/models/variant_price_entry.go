package models

import (
	"time"

	"github.com/google/uuid"
)

// VariantPriceEntry is one row of the layout price table: a (layout key, size)
// pair with its catalog display position and optional decimal price strings.
// Rows for a layout key are consumed sorted by Position ascending.
type VariantPriceEntry struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LayoutKey      string    `gorm:"column:layout_key;not null;index"`
	Option1        string    `gorm:"column:option1;not null"`
	Option2        string    `gorm:"column:option2;not null"`
	Position       int       `gorm:"column:position;not null;default:0"`
	Price          *string   `gorm:"column:price"`
	CompareAtPrice *string   `gorm:"column:compare_at_price"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
