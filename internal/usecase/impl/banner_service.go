package impl

import (
	"context"
	"log/slog"

	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bannerService implements the BannerUsecase interface.
type bannerService struct {
	bannerRepo repository.BannerRepository
	logger     *slog.Logger
}

// BannerServiceParams holds dependencies for bannerService, injected by Fx.
type BannerServiceParams struct {
	fx.In

	BannerRepo repository.BannerRepository
	Logger     *slog.Logger
}

// NewBannerService is the constructor for bannerService.
func NewBannerService(params BannerServiceParams) usecase.BannerUsecase {
	return &bannerService{
		bannerRepo: params.BannerRepo,
		logger:     params.Logger,
	}
}

func (srv *bannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActiveBanners returns the banners shown on the storefront, in sort order.
func (srv *bannerService) ListActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := srv.bannerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active banners")
	}

	return banners, nil
}

// ListBanners returns every banner for the admin panel.
func (srv *bannerService) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := srv.bannerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}

// CreateBanner adds a storefront banner.
func (srv *bannerService) CreateBanner(ctx context.Context, input *usecase.SaveBannerInput) (*entity.Banner, error) {
	banner := bannerFromInput(uuid.New(), input)

	if err := srv.bannerRepo.Create(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}

	srv.log(ctx).Info("Banner created", slog.String("bannerId", banner.ID.String()))

	return banner, nil
}

// UpdateBanner replaces a banner's fields.
func (srv *bannerService) UpdateBanner(ctx context.Context, id uuid.UUID, input *usecase.SaveBannerInput) (*entity.Banner, error) {
	existing, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("banner does not exist")
		}

		return nil, errors.Wrap(err, "failed to load banner")
	}

	banner := bannerFromInput(existing.ID, input)
	if err := srv.bannerRepo.Update(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to update banner")
	}

	return banner, nil
}

// DeleteBanner removes a banner.
func (srv *bannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if err := srv.bannerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("banner does not exist")
		}

		return errors.Wrap(err, "failed to delete banner")
	}

	return nil
}

func bannerFromInput(id uuid.UUID, input *usecase.SaveBannerInput) *entity.Banner {
	return &entity.Banner{
		ID:        id,
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		LinkURL:   input.LinkURL,
		DropCode:  input.DropCode,
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}
}
