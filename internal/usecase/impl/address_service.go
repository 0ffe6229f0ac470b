package impl

import (
	"context"
	"log/slog"

	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's address book, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address to the user's address book.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.SaveAddressInput) (*entity.Address, error) {
	address := addressFromInput(uuid.New(), userID, input)

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	if input.IsDefault {
		if err := srv.addressRepo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, errors.Wrap(err, "failed to set default address")
		}
	}

	srv.log(ctx).Info("Address created", slog.String("addressId", address.ID.String()))

	return address, nil
}

// UpdateAddress replaces an address's fields after an ownership check.
func (srv *addressService) UpdateAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, input *usecase.SaveAddressInput) (*entity.Address, error) {
	existing, err := srv.loadOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address := addressFromInput(existing.ID, userID, input)
	address.CreatedAt = existing.CreatedAt
	address.IsDefault = existing.IsDefault

	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	if input.IsDefault && !existing.IsDefault {
		if err := srv.addressRepo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, errors.Wrap(err, "failed to set default address")
		}
		address.IsDefault = true
	}

	return address, nil
}

// DeleteAddress removes an address after an ownership check. Orders keep
// their shipping snapshot, so deleting an address never touches history.
func (srv *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error {
	if _, err := srv.loadOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress flags one address as the user's default, clearing the
// flag on every other address in the same operation.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error {
	if _, err := srv.loadOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.SetDefault(ctx, userID, addressID); err != nil {
		return errors.Wrap(err, "failed to set default address")
	}

	return nil
}

func (srv *addressService) loadOwnedAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound.WrapMessage("address does not exist")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressOwnershipViolation.WrapMessage("address belongs to another user")
	}

	return address, nil
}

func addressFromInput(id uuid.UUID, userID uuid.UUID, input *usecase.SaveAddressInput) *entity.Address {
	return &entity.Address{
		ID:         id,
		UserID:     userID,
		Label:      input.Label,
		Recipient:  input.Recipient,
		Phone:      input.Phone,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}
}
