package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoomImage is a staged room photograph. Its identifier is embedded in the URL
// as the last path segment of a rooms/<id> or Rooms/<id> shape; Tags carry the
// free-text vocabulary terms (room type, style, color, uniqueness).
type RoomImage struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	URL       string         `gorm:"column:url;not null;index"`
	Tags      pq.StringArray `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}
