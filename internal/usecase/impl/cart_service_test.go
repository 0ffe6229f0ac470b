package impl

import (
	"context"
	"testing"

	"capsule/internal/domain/entity"
	mockRepo "capsule/internal/mocks/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     svc,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:    uuid.New(),
		Name:  "Box Tee",
		Price: 3400,
		Sizes: []string{"S", "M", "L"},
		Colors: []entity.ColorVariant{
			{Name: "WHITE", Hex: "#FFFFFF", Images: []string{"img"}},
		},
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, userID, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ProductID == product.ID && item.Size == "M" &&
				item.Color == "WHITE" && item.Quantity == 2
		})).
		Return(nil)
	fx.cartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{
			UserID: userID,
			Items: []*entity.CartItem{
				{ProductID: product.ID, Size: "M", Color: "WHITE", Quantity: 2, Product: product},
			},
		}, nil)

	cart, err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{
		ProductID: product.ID,
		Size:      "M",
		Color:     "WHITE",
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(6800), cart.Subtotal())
}

func TestCartService_AddToCart_DuplicateTupleMergesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct()
	tuple := func(quantity int) interface{} {
		return mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ProductID == product.ID && item.Size == "M" &&
				item.Color == "WHITE" && item.Quantity == quantity
		})
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Twice()

	// The service hands the same (product, size, color) tuple to AddItem both
	// times; the repository's upsert merges them into one line.
	fx.cartRepo.EXPECT().AddItem(ctx, userID, tuple(2)).Return(nil).Once()
	fx.cartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{
			UserID: userID,
			Items: []*entity.CartItem{
				{ProductID: product.ID, Size: "M", Color: "WHITE", Quantity: 2, Product: product},
			},
		}, nil).
		Once()

	first, err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{
		ProductID: product.ID, Size: "M", Color: "WHITE", Quantity: 2,
	})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	fx.cartRepo.EXPECT().AddItem(ctx, userID, tuple(3)).Return(nil).Once()
	fx.cartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{
			UserID: userID,
			Items: []*entity.CartItem{
				{ProductID: product.ID, Size: "M", Color: "WHITE", Quantity: 5, Product: product},
			},
		}, nil).
		Once()

	second, err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{
		ProductID: product.ID, Size: "M", Color: "WHITE", Quantity: 3,
	})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, 5, second.Items[0].Quantity)
	assert.Equal(t, int64(17000), second.Subtotal())
}

func TestCartService_AddToCart_UnknownSize(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddToCart(ctx, uuid.New(), &usecase.AddToCartInput{
		ProductID: product.ID,
		Size:      "XXL",
		Color:     "WHITE",
		Quantity:  1,
	})

	assertAppErrorCode(t, err, "VARIANT_UNAVAILABLE")
}

func TestCartService_AddToCart_UnknownColor(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddToCart(ctx, uuid.New(), &usecase.AddToCartInput{
		ProductID: product.ID,
		Size:      "M",
		Color:     "NEON",
		Quantity:  1,
	})

	assertAppErrorCode(t, err, "VARIANT_UNAVAILABLE")
}

func TestCartService_SetItemQuantity_RejectsNegative(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.SetItemQuantity(context.Background(), uuid.New(), uuid.New(), -1)

	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCartService_SetItemQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().SetItemQuantity(ctx, userID, itemID, 0).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Cart{UserID: userID}, nil)

	cart, err := fx.service.SetItemQuantity(ctx, userID, itemID, 0)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_GetCart_EmptyForNewUser(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Cart{UserID: userID}, nil)

	cart, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Subtotal())
}
