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

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single product by its URL slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products for the given ids, in no particular order.
// Missing ids are silently absent from the result.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

// List retrieves products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	q := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.SubCategory != "" {
		q = q.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.DropCode != 0 {
		q = q.Where("drop_code = ?", filter.DropCode)
	}
	if filter.Bestseller != nil {
		q = q.Where("bestseller = ?", *filter.Bestseller)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var models []model.ProductModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductSlugTaken
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update replaces a product's catalog fields, including the absolute stock
// value. Relative stock changes must go through AdjustStock.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").Omit("id", "created_at").
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrProductSlugTaken
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies a relative stock change as one conditional UPDATE.
// For decrements the WHERE clause guards against overselling: when the
// remaining stock is smaller than the requested quantity no row matches and
// ErrInsufficientStock is returned, leaving the counter untouched.
func (repo *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}

	q := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id)
	if delta < 0 {
		q = q.Where("stock >= ?", -delta)
	}

	result := q.Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust stock")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from an exhausted one.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		SubCategory: m.SubCategory,
		Sizes:       m.Sizes,
		Colors:      m.Colors,
		Stock:       m.Stock,
		DropCode:    m.DropCode,
		Bestseller:  m.Bestseller,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Stock:       p.Stock,
		DropCode:    p.DropCode,
		Bestseller:  p.Bestseller,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
