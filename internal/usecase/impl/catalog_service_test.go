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

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{service: svc, productRepo: productRepo}
}

func TestCatalogService_ListProducts_DefaultsPaging(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{
			Category: "hoodies",
			Limit:    defaultPageSize,
			Offset:   0,
		}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "hoodies"})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_ListProducts_PageOffset(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{
			Limit:  20,
			Offset: 40,
		}).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: 3, PageSize: 20})

	require.NoError(t, err)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.SaveProductInput{
		Name:     "Core Hoodie",
		Slug:     "core-hoodie",
		Price:    8900,
		Category: "hoodies",
		Sizes:    []string{"M", "L"},
		Colors: []usecase.ColorVariantInput{
			{Name: "BLACK", Hex: "#111111", Images: []string{"img"}},
		},
		Stock: 50,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.Slug == "core-hoodie" && product.Stock == 50 &&
				len(product.Colors) == 1 && product.Colors[0].Name == "BLACK"
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, int64(8900), product.Price)
}

func TestCatalogService_CreateProduct_SlugTaken(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductSlugTaken)

	_, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{
		Name: "Core Hoodie", Slug: "core-hoodie", Price: 8900, Category: "hoodies",
		Sizes:  []string{"M"},
		Colors: []usecase.ColorVariantInput{{Name: "BLACK", Hex: "#111111", Images: []string{"img"}}},
	})

	assertAppErrorCode(t, err, "PRODUCT_SLUG_TAKEN")
}

func TestCatalogService_UpdateProduct_KeepsCreatedAt(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	existing := testProduct()

	fx.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ID == existing.ID && product.Name == "Box Tee v2"
		})).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, existing.ID, &usecase.SaveProductInput{
		Name: "Box Tee v2", Slug: "box-tee", Price: 3600, Category: "tees",
		Sizes:  []string{"S", "M"},
		Colors: []usecase.ColorVariantInput{{Name: "WHITE", Hex: "#FFFFFF", Images: []string{"img"}}},
	})

	require.NoError(t, err)
	assert.Equal(t, existing.CreatedAt, product.CreatedAt)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindBySlug(ctx, "gone").
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductBySlug(ctx, "gone")

	assertAppErrorCode(t, err, "PRODUCT_NOT_FOUND")
}
