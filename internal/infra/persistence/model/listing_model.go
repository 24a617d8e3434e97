package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. Events and sites share the
// table, discriminated by the kind column.
type ListingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Kind         string    `gorm:"type:varchar(20);not null;index:idx_listings_kind_created_at,priority:1"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	Tagline      string    `gorm:"type:varchar(255)"`
	Date         *time.Time
	ExternalLink string     `gorm:"type:varchar(2048)"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time  `gorm:"index:idx_listings_kind_created_at,priority:2,sort:desc"`
	UpdatedAt    time.Time

	MediaItems []MediaItemModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// MediaItemModel mirrors the 'media_items' table. Position preserves the
// order media was attached in.
type MediaItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	URL       string    `gorm:"type:varchar(2048);not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaItemModel) TableName() string {
	return "media_items"
}
