package usecase

import (
	"context"
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveDropInput defines the data required to create or update a drop.
type SaveDropInput struct {
	Code        int       `json:"code" validate:"required,gt=0"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	ReleasedAt  time.Time `json:"releasedAt"`
}

// DropUsecase defines the interface for drop/capsule management.
type DropUsecase interface {
	ListDrops(ctx context.Context) ([]*entity.Drop, error)
	GetCurrentDrop(ctx context.Context) (*entity.Drop, error)
	CreateDrop(ctx context.Context, input *SaveDropInput) (*entity.Drop, error)
	UpdateDrop(ctx context.Context, id uuid.UUID, input *SaveDropInput) (*entity.Drop, error)

	// SetCurrentDrop makes the given drop the single current one; every
	// other drop's flag is cleared in the same logical operation.
	SetCurrentDrop(ctx context.Context, id uuid.UUID) (*entity.Drop, error)
}
