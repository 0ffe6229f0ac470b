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

// cartService implements the CartUsecase interface. The cart is a live
// view: prices come from the current product rows, and stock is only
// enforced at checkout.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, empty if they have none yet.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddToCart validates the requested variant against the live product and
// adds it to the cart. Adding a (product, size, color) tuple that is
// already present increments the existing line instead of duplicating it.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if !product.HasSize(input.Size) {
		return nil, domainerrors.ErrVariantUnavailable.WithDetails("size " + input.Size)
	}
	if !product.HasColor(input.Color) {
		return nil, domainerrors.ErrVariantUnavailable.WithDetails("color " + input.Color)
	}

	item := &entity.CartItem{
		ProductID: input.ProductID,
		Size:      input.Size,
		Color:     input.Color,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.AddItem(ctx, userID, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Info("Cart item added",
		slog.String("productId", input.ProductID.String()),
		slog.Int("quantity", input.Quantity))

	return srv.GetCart(ctx, userID)
}

// SetItemQuantity updates a line's quantity. Zero removes the line.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	if err := srv.cartRepo.SetItemQuantity(ctx, userID, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart item does not exist")
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem removes one line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*entity.Cart, error) {
	if err := srv.cartRepo.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart item does not exist")
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// ClearCart removes every line from the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.ClearItems(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
