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

// addressRepository implements the domain's AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindByID retrieves a single address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// ListByUser retrieves the user's addresses, default first, then newest.
func (repo *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var models []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(models))
	for i := range models {
		addresses = append(addresses, toAddressDomain(&models[i]))
	}

	return addresses, nil
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update replaces an address's fields.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(addressM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address row. Orders keep their shipping snapshot.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// SetDefault flags one address as the user's default and clears the flag
// everywhere else, in a single transaction.
func (repo *addressRepository) SetDefault(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AddressModel{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to set default address")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAddressNotFound
		}

		err := tx.Model(&model.AddressModel{}).
			Where("user_id = ? AND id <> ? AND is_default = ?", userID, addressID, true).
			Update("is_default", false).Error
		if err != nil {
			return errors.Wrap(err, "failed to clear default address flags")
		}

		return nil
	})
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		Label:      m.Label,
		Recipient:  m.Recipient,
		Phone:      m.Phone,
		Line1:      m.Line1,
		Line2:      m.Line2,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		Country:    m.Country,
		IsDefault:  m.IsDefault,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         a.ID,
		UserID:     a.UserID,
		Label:      a.Label,
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
	}
}
