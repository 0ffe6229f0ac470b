package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveBannerInput defines the data required to create or update a banner.
type SaveBannerInput struct {
	Title     string `json:"title" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required,url"`
	LinkURL   string `json:"linkUrl"`
	DropCode  int    `json:"dropCode"`
	IsActive  bool   `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
}

// BannerUsecase defines the interface for storefront banner management.
type BannerUsecase interface {
	ListActiveBanners(ctx context.Context) ([]*entity.Banner, error)
	ListBanners(ctx context.Context) ([]*entity.Banner, error)
	CreateBanner(ctx context.Context, input *SaveBannerInput) (*entity.Banner, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, input *SaveBannerInput) (*entity.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}
