package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveAddressInput defines the data required to create or update an address.
type SaveAddressInput struct {
	Label      string `json:"label"`
	Recipient  string `json:"recipient" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// AddressUsecase defines the interface for address-book operations. Every
// operation verifies the address belongs to the calling user.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input *SaveAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, input *SaveAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error
}
