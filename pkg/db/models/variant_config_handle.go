package models

import (
	"time"

	"github.com/google/uuid"
)

// VariantConfigHandle maps a layout key to a human-readable master handle slug
// used for cross-linking. Many layout keys carry no handle.
type VariantConfigHandle struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LayoutKey    string    `gorm:"column:layout_key;not null;uniqueIndex"`
	MasterHandle string    `gorm:"column:master_handle;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
