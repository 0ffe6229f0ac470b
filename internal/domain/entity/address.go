package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is one saved entry in a user's address book. At checkout the
// chosen address is copied into the order as a ShippingAddress snapshot, so
// later edits here never touch historical orders.
type Address struct {
	ID         uuid.UUID // The unique identifier of the address.
	UserID     uuid.UUID // Owning user.
	Label      string    // User-defined label, e.g. "Home" or "Office".
	Recipient  string    // Name of the person receiving the parcel.
	Phone      string    // Contact phone number.
	Line1      string    // Street address, first line.
	Line2      string    // Street address, second line (optional).
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool // True for the single default address of the user.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot copies the sale-relevant fields into an order-embedded
// ShippingAddress.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
