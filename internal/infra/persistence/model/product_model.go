// Package model defines the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Sizes and colorways are stored
// as JSONB documents; they are read and replaced whole, never queried into.
type ProductModel struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key"`
	Name        string                `gorm:"type:varchar(255);not null"`
	Slug        string                `gorm:"type:varchar(255);unique;not null"`
	Description string                `gorm:"type:text"`
	Price       int64                 `gorm:"not null"`
	Category    string                `gorm:"type:varchar(100);index"`
	SubCategory string                `gorm:"type:varchar(100)"`
	Sizes       []string              `gorm:"serializer:json;type:jsonb"`
	Colors      []entity.ColorVariant `gorm:"serializer:json;type:jsonb"`
	Stock       int                   `gorm:"not null;default:0;check:stock >= 0"`
	DropCode    int                   `gorm:"index"`
	Bestseller  bool                  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
