// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListProductsInput defines the storefront catalog filters.
type ListProductsInput struct {
	Category    string `query:"category"`
	SubCategory string `query:"subCategory"`
	DropCode    int    `query:"drop"`
	Bestseller  *bool  `query:"bestseller"`
	Query       string `query:"q"`
	Page        int    `query:"page"`
	PageSize    int    `query:"pageSize"`
}

// ColorVariantInput defines one colorway of a product being saved.
type ColorVariantInput struct {
	Name   string   `json:"name" validate:"required"`
	Hex    string   `json:"hex" validate:"required,hexcolor"`
	Images []string `json:"images" validate:"required,min=1,dive,url"`
}

// SaveProductInput defines the data required to create or update a product.
type SaveProductInput struct {
	Name        string              `json:"name" validate:"required"`
	Slug        string              `json:"slug" validate:"required"`
	Description string              `json:"description"`
	Price       int64               `json:"price" validate:"required,gt=0"`
	Category    string              `json:"category" validate:"required"`
	SubCategory string              `json:"subCategory"`
	Sizes       []string            `json:"sizes" validate:"required,min=1"`
	Colors      []ColorVariantInput `json:"colors" validate:"required,min=1,dive"`
	Stock       int                 `json:"stock" validate:"gte=0"`
	DropCode    int                 `json:"dropCode"`
	Bestseller  bool                `json:"bestseller"`
}

// CatalogUsecase defines the interface for catalog browsing and admin
// product management.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *SaveProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *SaveProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
