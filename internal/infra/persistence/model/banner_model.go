package model

import (
	"time"

	"github.com/google/uuid"
)

// BannerModel mirrors the 'banners' table.
type BannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Title     string    `gorm:"type:varchar(255);not null"`
	ImageURL  string    `gorm:"type:varchar(500);not null"`
	LinkURL   string    `gorm:"type:varchar(500)"`
	DropCode  int       `gorm:"index"`
	IsActive  bool      `gorm:"not null;default:false;index"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}
