package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "Order Placed"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is a known fulfillment status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod identifies how an order is settled.
type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodStripe   PaymentMethod = "stripe"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

// OrderLineItem is an immutable snapshot of a product's sale-relevant fields
// at order-creation time. Changing the underlying product later never alters
// a historical order.
type OrderLineItem struct {
	ProductID uuid.UUID // Reference back to the live product (may be deleted later).
	Name      string    // Product name at purchase time.
	UnitPrice int64     // Unit price at purchase time, in minor units.
	Quantity  int       // Ordered quantity, >= 1.
	Size      string    // Chosen size.
	Color     string    // Chosen colorway name.
	Image     string    // Thumbnail URL at purchase time.
	Category  string    // Category at purchase time.
}

// ShippingAddress is the address snapshot embedded in an order.
type ShippingAddress struct {
	Recipient  string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Order is the persisted record of a placed order. Line items and the
// shipping address are snapshots decoupled from live catalog and address
// data; the order itself is never hard-deleted, failed payments cancel it
// instead so the audit trail survives.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	OrderNumber     string // Human-readable number, e.g. "XND-260901-4821".
	Items           []OrderLineItem
	Subtotal        int64 // Sum of line totals, minor units.
	ShippingFee     int64
	Tax             int64
	Total           int64
	Address         ShippingAddress
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentMethod   PaymentMethod
	ProviderOrderID string // Gateway-side order/intent id (Razorpay order id, Stripe intent id).
	ProviderPayID   string // Gateway-side payment id, set once the payment settles.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MarkPaid records a settled payment and confirms the order. Calling it on
// an already-paid order is a no-op so duplicate gateway callbacks stay
// harmless.
func (o *Order) MarkPaid(providerPayID string) {
	if o.PaymentStatus == PaymentStatusPaid {
		return
	}
	o.PaymentStatus = PaymentStatusPaid
	o.Status = OrderStatusConfirmed
	if providerPayID != "" {
		o.ProviderPayID = providerPayID
	}
}

// MarkPaymentFailed records a declined payment and cancels the order.
func (o *Order) MarkPaymentFailed() {
	o.PaymentStatus = PaymentStatusFailed
	o.Status = OrderStatusCancelled
}

// IsCancelled reports whether the order sits on the cancelled side-branch.
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// StockDelta returns the inventory adjustment implied by a fulfillment
// status change: +1 per unit on entering Cancelled (restore), -1 per unit on
// leaving Cancelled (re-reserve), 0 otherwise. A same-status transition is
// always 0, which makes repeated admin updates idempotent in effect.
func (o *Order) StockDelta(next OrderStatus) int {
	if o.Status == next {
		return 0
	}
	if next == OrderStatusCancelled {
		return 1
	}
	if o.Status == OrderStatusCancelled {
		return -1
	}

	return 0
}
