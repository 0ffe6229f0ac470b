package entity

import (
	"time"

	"github.com/google/uuid"
)

// Banner is an admin-managed storefront hero banner, optionally tied to a
// drop. Only active banners are served to the storefront, ordered by
// SortOrder.
type Banner struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string
	LinkURL   string // Destination when the banner is tapped (optional).
	DropCode  int    // Associated drop code (0 = none).
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
