package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dropService implements the DropUsecase interface.
type dropService struct {
	dropRepo repository.DropRepository
	logger   *slog.Logger
}

// DropServiceParams holds dependencies for dropService, injected by Fx.
type DropServiceParams struct {
	fx.In

	DropRepo repository.DropRepository
	Logger   *slog.Logger
}

// NewDropService is the constructor for dropService.
func NewDropService(params DropServiceParams) usecase.DropUsecase {
	return &dropService{
		dropRepo: params.DropRepo,
		logger:   params.Logger,
	}
}

func (srv *dropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDrops returns all drops, newest release first.
func (srv *dropService) ListDrops(ctx context.Context) ([]*entity.Drop, error) {
	drops, err := srv.dropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drops")
	}

	return drops, nil
}

// GetCurrentDrop returns the drop flagged as current.
func (srv *dropService) GetCurrentDrop(ctx context.Context) (*entity.Drop, error) {
	drop, err := srv.dropRepo.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDropNotFound) {
			return nil, domainerrors.ErrDropNotFound.WrapMessage("no drop is marked current")
		}

		return nil, errors.Wrap(err, "failed to load current drop")
	}

	return drop, nil
}

// CreateDrop registers a new drop with a unique code.
func (srv *dropService) CreateDrop(ctx context.Context, input *usecase.SaveDropInput) (*entity.Drop, error) {
	drop := &entity.Drop{
		ID:          uuid.New(),
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		ReleasedAt:  input.ReleasedAt,
	}

	if err := srv.dropRepo.Create(ctx, drop); err != nil {
		if errors.Is(err, repository.ErrDropCodeTaken) {
			return nil, domainerrors.ErrDropCodeTaken.WithDetails(strconv.Itoa(input.Code))
		}

		return nil, errors.Wrap(err, "failed to create drop")
	}

	srv.log(ctx).Info("Drop created", slog.Int("code", drop.Code), slog.String("name", drop.Name))

	return drop, nil
}

// UpdateDrop replaces a drop's descriptive fields. The current flag is only
// changed through SetCurrentDrop.
func (srv *dropService) UpdateDrop(ctx context.Context, id uuid.UUID, input *usecase.SaveDropInput) (*entity.Drop, error) {
	drop, err := srv.dropRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDropNotFound) {
			return nil, domainerrors.ErrDropNotFound.WrapMessage("drop does not exist")
		}

		return nil, errors.Wrap(err, "failed to load drop")
	}

	drop.Code = input.Code
	drop.Name = input.Name
	drop.Description = input.Description
	drop.ReleasedAt = input.ReleasedAt

	if err := srv.dropRepo.Update(ctx, drop); err != nil {
		if errors.Is(err, repository.ErrDropCodeTaken) {
			return nil, domainerrors.ErrDropCodeTaken.WithDetails(strconv.Itoa(input.Code))
		}

		return nil, errors.Wrap(err, "failed to update drop")
	}

	return drop, nil
}

// SetCurrentDrop promotes the given drop to current. The repository clears
// every other drop's flag and sets this one in a single transaction, so at
// most one drop is ever current.
func (srv *dropService) SetCurrentDrop(ctx context.Context, id uuid.UUID) (*entity.Drop, error) {
	if err := srv.dropRepo.SetCurrent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDropNotFound) {
			return nil, domainerrors.ErrDropNotFound.WrapMessage("drop does not exist")
		}

		return nil, errors.Wrap(err, "failed to set current drop")
	}

	drop, err := srv.dropRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload drop")
	}

	srv.log(ctx).Info("Current drop changed", slog.Int("code", drop.Code))

	return drop, nil
}
