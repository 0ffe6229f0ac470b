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

const defaultPageSize = 50

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the storefront catalog page for the given filters.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	pageSize := input.PageSize
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	filter := repository.ProductFilter{
		Category:    input.Category,
		SubCategory: input.SubCategory,
		DropCode:    input.DropCode,
		Bestseller:  input.Bestseller,
		Query:       input.Query,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProductBySlug returns a single product for the detail page.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no product with slug " + slug)
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	product := productFromInput(uuid.New(), input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductSlugTaken) {
			return nil, domainerrors.ErrProductSlugTaken.WithDetails(input.Slug)
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productId", product.ID.String()),
		slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct replaces a product's catalog fields, including its absolute
// stock level.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.SaveProductInput) (*entity.Product, error) {
	existing, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	product := productFromInput(existing.ID, input)
	product.CreatedAt = existing.CreatedAt

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductSlugTaken) {
			return nil, domainerrors.ErrProductSlugTaken.WithDetails(input.Slug)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Existing order line
// items keep their snapshot and are unaffected.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productId", id.String()))

	return nil
}

func productFromInput(id uuid.UUID, input *usecase.SaveProductInput) *entity.Product {
	colors := make([]entity.ColorVariant, 0, len(input.Colors))
	for _, c := range input.Colors {
		colors = append(colors, entity.ColorVariant{
			Name:   c.Name,
			Hex:    c.Hex,
			Images: c.Images,
		})
	}

	return &entity.Product{
		ID:          id,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Sizes:       input.Sizes,
		Colors:      colors,
		Stock:       input.Stock,
		DropCode:    input.DropCode,
		Bestseller:  input.Bestseller,
	}
}
