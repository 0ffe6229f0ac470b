package impl

import (
	"context"
	"testing"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	mockRepo "capsule/internal/mocks/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
		Logger:       newDiscardLogger(),
	})

	return wishlistServiceFixtures{
		service:      svc,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func TestWishlistService_AddToWishlist_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(item *entity.WishlistItem) bool {
			return item.UserID == userID && item.ProductID == product.ID
		})).
		Return(nil)
	fx.wishlistRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.WishlistItem{
			{UserID: userID, ProductID: product.ID, Product: product},
		}, nil)

	items, err := fx.service.AddToWishlist(ctx, userID, product.ID)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistService_AddToWishlist_DuplicateIsNoop(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		Return(repository.ErrWishlistItemExists)
	fx.wishlistRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.WishlistItem{
			{UserID: userID, ProductID: product.ID, Product: product},
		}, nil)

	items, err := fx.service.AddToWishlist(ctx, userID, product.ID)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistService_AddToWishlist_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddToWishlist(ctx, uuid.New(), productID)

	assertAppErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestWishlistService_RemoveFromWishlist_NotSaved(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.wishlistRepo.EXPECT().
		Remove(ctx, userID, productID).
		Return(repository.ErrWishlistItemNotFound)

	_, err := fx.service.RemoveFromWishlist(ctx, userID, productID)

	assertAppErrorCode(t, err, "WISHLIST_ITEM_NOT_FOUND")
}
