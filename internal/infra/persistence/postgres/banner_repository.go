package postgres

import (
	"context"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bannerRepository implements the domain's BannerRepository interface using GORM.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{db: db}
}

// ListActive retrieves the banners served to the storefront, in sort order.
func (repo *bannerRepository) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	var models []model.BannerModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active banners")
	}

	return toBannerDomainSlice(models), nil
}

// List retrieves every banner for the admin panel.
func (repo *bannerRepository) List(ctx context.Context) ([]*entity.Banner, error) {
	var models []model.BannerModel
	err := repo.db.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return toBannerDomainSlice(models), nil
}

// FindByID retrieves a single banner by its unique ID.
func (repo *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var bannerM model.BannerModel
	if err := repo.db.WithContext(ctx).First(&bannerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find banner by id")
	}

	return toBannerDomain(&bannerM), nil
}

// Create persists a new banner.
func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return errors.Wrap(err, "failed to create banner")
	}

	banner.CreatedAt = bannerM.CreatedAt
	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

// Update replaces a banner's fields.
func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	result := repo.db.WithContext(ctx).Model(&model.BannerModel{}).
		Where("id = ?", banner.ID).
		Select("*").Omit("id", "created_at").
		Updates(bannerM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

// Delete removes a banner row.
func (repo *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BannerModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

func toBannerDomainSlice(models []model.BannerModel) []*entity.Banner {
	banners := make([]*entity.Banner, 0, len(models))
	for i := range models {
		banners = append(banners, toBannerDomain(&models[i]))
	}

	return banners
}

func toBannerDomain(m *model.BannerModel) *entity.Banner {
	return &entity.Banner{
		ID:        m.ID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		LinkURL:   m.LinkURL,
		DropCode:  m.DropCode,
		IsActive:  m.IsActive,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromBannerDomain(b *entity.Banner) *model.BannerModel {
	return &model.BannerModel{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		DropCode:  b.DropCode,
		IsActive:  b.IsActive,
		SortOrder: b.SortOrder,
	}
}
