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

// dropRepository implements the domain's DropRepository interface using GORM.
type dropRepository struct {
	db *gorm.DB
}

// NewDropRepository is the constructor for dropRepository.
func NewDropRepository(db *gorm.DB) repository.DropRepository {
	return &dropRepository{db: db}
}

// FindByID retrieves a single drop by its unique ID.
func (repo *dropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Drop, error) {
	var dropM model.DropModel
	if err := repo.db.WithContext(ctx).First(&dropM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop by id")
	}

	return toDropDomain(&dropM), nil
}

// FindByCode retrieves a single drop by its stable integer code.
func (repo *dropRepository) FindByCode(ctx context.Context, code int) (*entity.Drop, error) {
	var dropM model.DropModel
	if err := repo.db.WithContext(ctx).First(&dropM, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop by code")
	}

	return toDropDomain(&dropM), nil
}

// FindCurrent retrieves the drop flagged as current.
func (repo *dropRepository) FindCurrent(ctx context.Context) (*entity.Drop, error) {
	var dropM model.DropModel
	if err := repo.db.WithContext(ctx).First(&dropM, "is_current = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find current drop")
	}

	return toDropDomain(&dropM), nil
}

// List retrieves all drops, newest release first.
func (repo *dropRepository) List(ctx context.Context) ([]*entity.Drop, error) {
	var models []model.DropModel
	if err := repo.db.WithContext(ctx).Order("released_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list drops")
	}

	drops := make([]*entity.Drop, 0, len(models))
	for i := range models {
		drops = append(drops, toDropDomain(&models[i]))
	}

	return drops, nil
}

// Create persists a new drop.
func (repo *dropRepository) Create(ctx context.Context, drop *entity.Drop) error {
	dropM := fromDropDomain(drop)

	if err := repo.db.WithContext(ctx).Create(dropM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDropCodeTaken
		}

		return errors.Wrap(err, "failed to create drop")
	}

	drop.CreatedAt = dropM.CreatedAt
	drop.UpdatedAt = dropM.UpdatedAt

	return nil
}

// Update replaces a drop's descriptive fields. The is_current flag is not
// part of the update set; SetCurrent owns it.
func (repo *dropRepository) Update(ctx context.Context, drop *entity.Drop) error {
	result := repo.db.WithContext(ctx).Model(&model.DropModel{}).
		Where("id = ?", drop.ID).
		Updates(map[string]interface{}{
			"code":        drop.Code,
			"name":        drop.Name,
			"description": drop.Description,
			"released_at": drop.ReleasedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDropCodeTaken
		}

		return errors.Wrap(result.Error, "failed to update drop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDropNotFound
	}

	return nil
}

// SetCurrent flags one drop as current. Clearing every other flag and
// setting the new one happen in a single transaction, so a torn state with
// zero or two current drops is never visible.
func (repo *dropRepository) SetCurrent(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.DropModel{}).
			Where("id = ?", id).
			Update("is_current", true)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to set current drop")
		}
		if result.RowsAffected == 0 {
			return repository.ErrDropNotFound
		}

		err := tx.Model(&model.DropModel{}).
			Where("id <> ? AND is_current = ?", id, true).
			Update("is_current", false).Error
		if err != nil {
			return errors.Wrap(err, "failed to clear current drop flags")
		}

		return nil
	})
}

func toDropDomain(m *model.DropModel) *entity.Drop {
	return &entity.Drop{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		ReleasedAt:  m.ReleasedAt,
		IsCurrent:   m.IsCurrent,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDropDomain(d *entity.Drop) *model.DropModel {
	return &model.DropModel{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		ReleasedAt:  d.ReleasedAt,
		IsCurrent:   d.IsCurrent,
	}
}
