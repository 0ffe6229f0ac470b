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

// wishlistRepository implements the domain's WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// ListByUser retrieves the user's wishlist with product data, newest first.
func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var models []model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(models))
	for i := range models {
		items = append(items, toWishlistDomain(&models[i]))
	}

	return items, nil
}

// Add saves a product on the user's wishlist. A duplicate (user, product)
// pair yields ErrWishlistItemExists via the composite unique index.
func (repo *wishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWishlistItemExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to add wishlist item")
	}

	item.CreatedAt = itemM.CreatedAt

	return nil
}

// Remove deletes the entry for the given (user, product) pair.
func (repo *wishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func toWishlistDomain(m *model.WishlistItemModel) *entity.WishlistItem {
	item := &entity.WishlistItem{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		CreatedAt: m.CreatedAt,
	}
	if m.Product != nil {
		item.Product = toProductDomain(m.Product)
	}

	return item
}
