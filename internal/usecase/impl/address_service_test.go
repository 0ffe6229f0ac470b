package impl

import (
	"context"
	"testing"

	"capsule/internal/domain/entity"
	mockRepo "capsule/internal/mocks/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)

	svc := NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{service: svc, addressRepo: addressRepo}
}

func saveAddressInput(isDefault bool) *usecase.SaveAddressInput {
	return &usecase.SaveAddressInput{
		Label:      "Home",
		Recipient:  "Alex Chen",
		Phone:      "+886912345678",
		Line1:      "1 Demo Street",
		City:       "Taipei",
		PostalCode: "100",
		Country:    "TW",
		IsDefault:  isDefault,
	}
}

func TestAddressService_CreateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.addressRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(address *entity.Address) bool {
			return address.UserID == userID && address.Recipient == "Alex Chen"
		})).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, saveAddressInput(false))

	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.False(t, address.IsDefault)
}

func TestAddressService_CreateAddress_DefaultPromotes(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)
	fx.addressRepo.EXPECT().
		SetDefault(ctx, userID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	_, err := fx.service.CreateAddress(ctx, userID, saveAddressInput(true))

	require.NoError(t, err)
}

func TestAddressService_UpdateAddress_ForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	address := testAddress(uuid.New())

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	_, err := fx.service.UpdateAddress(ctx, uuid.New(), address.ID, saveAddressInput(false))

	assertAppErrorCode(t, err, "ADDRESS_OWNERSHIP_VIOLATION")
}

func TestAddressService_UpdateAddress_KeepsDefaultFlag(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := testAddress(userID)
	existing.IsDefault = true

	fx.addressRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.addressRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(address *entity.Address) bool {
			return address.ID == existing.ID && address.IsDefault
		})).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, existing.ID, saveAddressInput(false))

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
	fx.addressRepo.EXPECT().Delete(ctx, address.ID).Return(nil)

	err := fx.service.DeleteAddress(ctx, userID, address.ID)

	require.NoError(t, err)
}

func TestAddressService_SetDefaultAddress_ForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	address := testAddress(uuid.New())

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	err := fx.service.SetDefaultAddress(ctx, uuid.New(), address.ID)

	assertAppErrorCode(t, err, "ADDRESS_OWNERSHIP_VIOLATION")
}
