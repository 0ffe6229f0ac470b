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

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order. A unique-constraint hit on order_number maps
// to ErrOrderNumberTaken so the caller can regenerate and retry.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberTaken
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate retrieves an order under FOR UPDATE. It only makes
// sense on a transaction-bound repository.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByProviderOrderID retrieves the user's order correlated with a
// payment gateway order/intent id.
func (repo *orderRepository) FindByProviderOrderID(ctx context.Context, userID uuid.UUID, providerOrderID string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		First(&orderM, "user_id = ? AND provider_order_id = ?", userID, providerOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by provider order id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var models []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(models), nil
}

// List retrieves orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	q := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", string(filter.PaymentStatus))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var models []model.OrderModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(models), nil
}

// Update writes the order's mutable fields. Snapshots (items, address) and
// identity columns are deliberately left out of the update set.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":            string(order.Status),
			"payment_status":    string(order.PaymentStatus),
			"provider_order_id": order.ProviderOrderID,
			"provider_pay_id":   order.ProviderPayID,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomainSlice(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		OrderNumber:     m.OrderNumber,
		Items:           m.Items,
		Subtotal:        m.Subtotal,
		ShippingFee:     m.ShippingFee,
		Tax:             m.Tax,
		Total:           m.Total,
		Address:         m.Address,
		Status:          entity.OrderStatus(m.Status),
		PaymentStatus:   entity.PaymentStatus(m.PaymentStatus),
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		ProviderOrderID: m.ProviderOrderID,
		ProviderPayID:   m.ProviderPayID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		Items:           o.Items,
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		Tax:             o.Tax,
		Total:           o.Total,
		Address:         o.Address,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		ProviderOrderID: o.ProviderOrderID,
		ProviderPayID:   o.ProviderPayID,
	}
}
