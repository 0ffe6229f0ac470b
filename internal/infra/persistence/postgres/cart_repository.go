package postgres

import (
	"context"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUser retrieves the user's cart with its lines and live product
// data. A user without a cart row gets an empty cart, not an error.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at ASC") }).
		Preload("Items.Product").
		First(&cartM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// AddItem inserts a cart line, or bumps the quantity when the same
// (product, size, color) tuple is already present. The upsert rides on the
// composite unique index, so two concurrent adds merge instead of erroring.
func (repo *cartRepository) AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error {
	cartID, err := repo.ensureCart(ctx, userID)
	if err != nil {
		return err
	}

	itemM := &model.CartItemModel{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Color:     item.Color,
		Quantity:  item.Quantity,
	}

	err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "product_id"}, {Name: "size"}, {Name: "color"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(itemM).Error
	if err != nil {
		return errors.Wrap(err, "failed to add cart item")
	}

	return nil
}

// SetItemQuantity sets a line's quantity; zero deletes the line.
func (repo *cartRepository) SetItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error {
	if quantity == 0 {
		return repo.RemoveItem(ctx, userID, itemID)
	}

	result := repo.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id IN (?)", itemID, repo.cartIDQuery(ctx, userID)).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes one line from the user's cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id IN (?)", itemID, repo.cartIDQuery(ctx, userID)).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems deletes every line in the user's cart. Clearing an already
// empty or missing cart succeeds.
func (repo *cartRepository) ClearItems(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id IN (?)", repo.cartIDQuery(ctx, userID)).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// ensureCart returns the user's cart id, creating the cart row on first use.
func (repo *cartRepository) ensureCart(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	cartM := &model.CartModel{ID: uuid.New(), UserID: userID}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(cartM).Error
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to ensure cart")
	}

	var existing model.CartModel
	if err := repo.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to load cart")
	}

	return existing.ID, nil
}

// cartIDQuery builds the subquery selecting the user's cart id.
func (repo *cartRepository) cartIDQuery(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.CartModel{}).
		Select("id").Where("user_id = ?", userID)
}

func toCartDomain(m *model.CartModel) *entity.Cart {
	items := make([]*entity.CartItem, 0, len(m.Items))
	for i := range m.Items {
		itemM := &m.Items[i]
		item := &entity.CartItem{
			ID:        itemM.ID,
			CartID:    itemM.CartID,
			ProductID: itemM.ProductID,
			Size:      itemM.Size,
			Color:     itemM.Color,
			Quantity:  itemM.Quantity,
			CreatedAt: itemM.CreatedAt,
			UpdatedAt: itemM.UpdatedAt,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		items = append(items, item)
	}

	return &entity.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
