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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist returns the user's wishlist, newest first.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items, err := srv.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

// AddToWishlist saves a product on the user's wishlist. Adding a product
// that is already there is a no-op rather than an error.
func (srv *wishlistService) AddToWishlist(ctx context.Context, userID uuid.UUID, productID uuid.UUID) ([]*entity.WishlistItem, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	item := &entity.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := srv.wishlistRepo.Add(ctx, item); err != nil && !errors.Is(err, repository.ErrWishlistItemExists) {
		return nil, errors.Wrap(err, "failed to add wishlist item")
	}

	srv.log(ctx).Info("Wishlist item added", slog.String("productId", productID.String()))

	return srv.GetWishlist(ctx, userID)
}

// RemoveFromWishlist removes a product from the user's wishlist.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, productID uuid.UUID) ([]*entity.WishlistItem, error) {
	if err := srv.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return nil, domainerrors.ErrWishlistItemNotFound.WrapMessage("product is not on the wishlist")
		}

		return nil, errors.Wrap(err, "failed to remove wishlist item")
	}

	return srv.GetWishlist(ctx, userID)
}
