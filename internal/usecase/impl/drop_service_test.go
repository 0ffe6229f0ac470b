package impl

import (
	"context"
	"testing"
	"time"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	mockRepo "capsule/internal/mocks/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dropServiceFixtures struct {
	service  usecase.DropUsecase
	dropRepo *mockRepo.MockDropRepository
}

func createTestDropService(t *testing.T) dropServiceFixtures {
	dropRepo := mockRepo.NewMockDropRepository(t)

	svc := NewDropService(DropServiceParams{
		DropRepo: dropRepo,
		Logger:   newDiscardLogger(),
	})

	return dropServiceFixtures{service: svc, dropRepo: dropRepo}
}

func TestDropService_CreateDrop_Success(t *testing.T) {
	fx := createTestDropService(t)

	ctx := context.Background()
	released := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	fx.dropRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(drop *entity.Drop) bool {
			return drop.Code == 4 && drop.Name == "Night Shift" && !drop.IsCurrent
		})).
		Return(nil)

	drop, err := fx.service.CreateDrop(ctx, &usecase.SaveDropInput{
		Code:       4,
		Name:       "Night Shift",
		ReleasedAt: released,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, drop.Code)
	assert.Equal(t, released, drop.ReleasedAt)
}

func TestDropService_CreateDrop_CodeTaken(t *testing.T) {
	fx := createTestDropService(t)

	ctx := context.Background()

	fx.dropRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Drop")).
		Return(repository.ErrDropCodeTaken)

	_, err := fx.service.CreateDrop(ctx, &usecase.SaveDropInput{Code: 4, Name: "Night Shift"})

	assertAppErrorCode(t, err, "DROP_CODE_TAKEN")
}

func TestDropService_SetCurrentDrop_Success(t *testing.T) {
	fx := createTestDropService(t)

	ctx := context.Background()
	id := uuid.New()
	promoted := &entity.Drop{ID: id, Code: 4, Name: "Night Shift", IsCurrent: true}

	fx.dropRepo.EXPECT().SetCurrent(ctx, id).Return(nil)
	fx.dropRepo.EXPECT().FindByID(ctx, id).Return(promoted, nil)

	drop, err := fx.service.SetCurrentDrop(ctx, id)

	require.NoError(t, err)
	assert.True(t, drop.IsCurrent)
}

func TestDropService_SetCurrentDrop_NotFound(t *testing.T) {
	fx := createTestDropService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.dropRepo.EXPECT().SetCurrent(ctx, id).Return(repository.ErrDropNotFound)

	_, err := fx.service.SetCurrentDrop(ctx, id)

	assertAppErrorCode(t, err, "DROP_NOT_FOUND")
}

func TestDropService_GetCurrentDrop_NoneFlagged(t *testing.T) {
	fx := createTestDropService(t)

	ctx := context.Background()

	fx.dropRepo.EXPECT().FindCurrent(ctx).Return(nil, repository.ErrDropNotFound)

	_, err := fx.service.GetCurrentDrop(ctx)

	assertAppErrorCode(t, err, "DROP_NOT_FOUND")
}
