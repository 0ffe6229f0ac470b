// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"capsule/config"
	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderNumberAttempts bounds the regenerate-and-retry loop for order number
// collisions. The 4-digit suffix collides rarely within a day; three tries
// is plenty.
const orderNumberAttempts = 3

// checkoutService implements the CheckoutUsecase interface. It is the single
// owner of stock adjustments: placement reserves stock, payment failure and
// cancellation restore it, and un-cancellation re-reserves it, each inside
// one database transaction.
type checkoutService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	addressRepo repository.AddressRepository
	gateways    map[entity.PaymentMethod]service.PaymentGateway
	publisher   service.EventPublisher
	pricing     config.PricingConfig
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	AddressRepo repository.AddressRepository
	Gateways    []service.PaymentGateway `group:"gateways"`
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	gateways := make(map[entity.PaymentMethod]service.PaymentGateway, len(params.Gateways))
	for _, gw := range params.Gateways {
		gateways[gw.Method()] = gw
	}

	pricing := config.PricingConfig{}
	if params.Config != nil && params.Config.Pricing != nil {
		pricing = *params.Config.Pricing
	}

	return &checkoutService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		addressRepo: params.AddressRepo,
		gateways:    gateways,
		publisher:   params.Publisher,
		pricing:     pricing,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder converts the user's live cart into a persisted order. Stock
// decrement, order insert and cart clearing run in a single transaction: a
// failed conditional decrement rolls everything back, so stock can never go
// negative and the cart survives a failed placement intact.
func (srv *checkoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	gateway, ok := srv.gateways[input.Method]
	if !ok {
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WrapMessage("no gateway registered for method " + string(input.Method))
	}

	address, err := srv.addressRepo.FindByID(ctx, input.AddressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound.WrapMessage("shipping address does not exist")
		}

		return nil, errors.Wrap(err, "failed to load shipping address")
	}
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressOwnershipViolation.WrapMessage("shipping address belongs to another user")
	}

	var order *entity.Order
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order, err = srv.placeOrderTx(ctx, userID, address, input.Method)
		if !errors.Is(err, repository.ErrOrderNumberTaken) {
			break
		}
		srv.log(ctx).Warn("Order number collision, regenerating", slog.Int("attempt", attempt+1))
	}
	if err != nil {
		return nil, err
	}

	intent, err := gateway.CreatePayment(ctx, order)
	if err != nil {
		// The provider never saw the order; release the reservation so the
		// stock is sellable again and the order does not dangle unpayable.
		srv.log(ctx).Error("Payment gateway rejected order, compensating",
			slog.String("orderNumber", order.OrderNumber), slog.Any("error", err))
		if cancelErr := srv.cancelOrderTx(ctx, order); cancelErr != nil {
			srv.log(ctx).Error("Failed to compensate after gateway failure",
				slog.String("orderNumber", order.OrderNumber), slog.Any("error", cancelErr))
		}

		return nil, domainerrors.ErrPaymentGatewayFailure.WrapMessage(err.Error())
	}

	if intent != nil && intent.ProviderOrderID != "" {
		order.ProviderOrderID = intent.ProviderOrderID
		if err := srv.orderRepo.Update(ctx, order); err != nil {
			return nil, errors.Wrap(err, "failed to store provider order id")
		}
	}

	srv.publish(ctx, service.OrderEventPlaced, order)
	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("method", string(input.Method)),
		slog.Int64("total", order.Total))

	return &usecase.PlaceOrderOutput{Order: order, Payment: intent}, nil
}

// placeOrderTx runs the reserve-snapshot-clear sequence in one transaction.
func (srv *checkoutService) placeOrderTx(ctx context.Context, userID uuid.UUID, address *entity.Address, method entity.PaymentMethod) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()
		productRepo := f.NewProductRepository()
		orderRepo := f.NewOrderRepository()

		cart, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrCartEmpty.WrapMessage("cannot place an order from an empty cart")
		}

		items := make([]entity.OrderLineItem, 0, len(cart.Items))
		var subtotal int64
		for _, line := range cart.Items {
			if line.Product == nil {
				return domainerrors.ErrProductNotFound.WrapMessage("cart references a removed product")
			}

			if err := productRepo.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(line.Product.Name)
				}

				return errors.Wrap(err, "failed to reserve stock")
			}

			items = append(items, entity.OrderLineItem{
				ProductID: line.ProductID,
				Name:      line.Product.Name,
				UnitPrice: line.Product.Price,
				Quantity:  line.Quantity,
				Size:      line.Size,
				Color:     line.Color,
				Image:     line.Product.PrimaryImage(line.Color),
				Category:  line.Product.Category,
			})
			subtotal += line.Product.Price * int64(line.Quantity)
		}

		shipping := srv.pricing.ShippingFee
		if srv.pricing.FreeShippingThreshold > 0 && subtotal >= srv.pricing.FreeShippingThreshold {
			shipping = 0
		}
		tax := subtotal * srv.pricing.TaxRateBps / 10000

		order = &entity.Order{
			ID:            uuid.New(),
			UserID:        userID,
			OrderNumber:   NewOrderNumber(),
			Items:         items,
			Subtotal:      subtotal,
			ShippingFee:   shipping,
			Tax:           tax,
			Total:         subtotal + shipping + tax,
			Address:       address.Snapshot(),
			Status:        entity.OrderStatusPlaced,
			PaymentStatus: entity.PaymentStatusPending,
			PaymentMethod: method,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		if err := cartRepo.ClearItems(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// cancelOrderTx restores every line's stock and cancels the order in one
// transaction. Used for declined payments and gateway failures.
func (srv *checkoutService) cancelOrderTx(ctx context.Context, order *entity.Order) error {
	return srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		orderRepo := f.NewOrderRepository()

		for _, line := range order.Items {
			if err := productRepo.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore stock")
			}
		}

		order.MarkPaymentFailed()

		return orderRepo.Update(ctx, order)
	})
}

// VerifyStripe resolves a Stripe payment attempt. Success marks the order
// paid and confirmed; failure restores stock and cancels the order instead
// of deleting it, keeping the audit trail. Both directions are idempotent,
// and a success callback cannot settle an order that was already cancelled.
func (srv *checkoutService) VerifyStripe(ctx context.Context, userID uuid.UUID, input *usecase.VerifyStripeInput) (*entity.Order, error) {
	order, err := srv.loadOwnedOrder(ctx, userID, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != entity.PaymentMethodStripe {
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WrapMessage("order was not placed with stripe")
	}

	if input.Success {
		if order.PaymentStatus == entity.PaymentStatusPaid {
			return order, nil
		}
		// The cancel path already released this order's stock. Marking it
		// paid here would confirm an order that holds no inventory, so a
		// cancelled order can only come back through the admin status
		// transition, which re-reserves stock.
		if order.IsCancelled() {
			return nil, domainerrors.ErrOrderCancelled.WrapMessage("cannot settle a cancelled order")
		}

		order.MarkPaid("")
		if err := srv.orderRepo.Update(ctx, order); err != nil {
			return nil, errors.Wrap(err, "failed to mark order paid")
		}
		srv.publish(ctx, service.OrderEventPaid, order)

		return order, nil
	}

	if order.IsCancelled() {
		return order, nil
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerrors.ErrOrderAlreadyPaid.WrapMessage("cannot fail a settled payment")
	}

	if err := srv.cancelOrderTx(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order after declined payment")
	}
	srv.publish(ctx, service.OrderEventCancelled, order)
	srv.log(ctx).Info("Order cancelled after declined payment", slog.String("orderNumber", order.OrderNumber))

	return order, nil
}

// VerifyRazorpay authenticates the checkout callback before touching any
// state: the signature is recomputed with the provider secret and compared
// in constant time. A tampered callback is rejected with no mutation.
func (srv *checkoutService) VerifyRazorpay(ctx context.Context, userID uuid.UUID, input *usecase.VerifyRazorpayInput) (*entity.Order, error) {
	gateway, ok := srv.gateways[entity.PaymentMethodRazorpay]
	if !ok {
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WrapMessage("razorpay gateway not configured")
	}

	callback := &service.RazorpayCallback{
		ProviderOrderID: input.ProviderOrderID,
		PaymentID:       input.PaymentID,
		Signature:       input.Signature,
	}
	if err := gateway.VerifySignature(callback); err != nil {
		srv.log(ctx).Warn("Razorpay signature mismatch",
			slog.String("providerOrderId", input.ProviderOrderID))

		return nil, domainerrors.ErrPaymentVerificationFailed.WrapMessage("signature mismatch")
	}

	order, err := srv.orderRepo.FindByProviderOrderID(ctx, userID, input.ProviderOrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order for this payment")
		}

		return nil, errors.Wrap(err, "failed to load order by provider order id")
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		return order, nil
	}
	if order.IsCancelled() {
		return nil, domainerrors.ErrOrderCancelled.WrapMessage("cannot settle a cancelled order")
	}

	order.MarkPaid(input.PaymentID)
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to mark order paid")
	}
	srv.publish(ctx, service.OrderEventPaid, order)
	srv.log(ctx).Info("Razorpay payment verified", slog.String("orderNumber", order.OrderNumber))

	return order, nil
}

// ListMyOrders returns the calling user's orders, newest first.
func (srv *checkoutService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order after verifying ownership.
func (srv *checkoutService) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.loadOwnedOrder(ctx, userID, orderID)
}

// ListOrders is the admin listing across all users.
func (srv *checkoutService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies an admin fulfillment transition. The row is
// locked for the duration of the transaction, so two concurrent updates on
// the same order serialize and the stock adjustment cannot double-apply.
// Entering Cancelled restores stock; leaving Cancelled re-reserves it and
// fails when the stock has been sold in the meantime.
func (srv *checkoutService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !entity.ValidOrderStatus(input.Status) {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown status " + string(input.Status))
	}

	var updated *entity.Order
	var changed bool
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()
		productRepo := f.NewProductRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("order does not exist")
			}

			return errors.Wrap(err, "failed to load order")
		}

		delta := order.StockDelta(input.Status)
		if delta == 0 && order.Status == input.Status {
			// Repeating the current status changes nothing.
			updated = order

			return nil
		}

		for _, line := range order.Items {
			if delta == 0 {
				break
			}
			if err := productRepo.AdjustStock(ctx, line.ProductID, delta*line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(line.Name)
				}

				return errors.Wrap(err, "failed to adjust stock for status change")
			}
		}

		order.Status = input.Status
		if input.Status == entity.OrderStatusCancelled && order.PaymentStatus == entity.PaymentStatusPaid {
			order.PaymentStatus = entity.PaymentStatusRefunded
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		updated = order
		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return updated, nil
	}

	if updated.Status == entity.OrderStatusCancelled {
		srv.publish(ctx, service.OrderEventCancelled, updated)
	}
	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", updated.OrderNumber),
		slog.String("status", string(updated.Status)))

	return updated, nil
}

// loadOwnedOrder fetches an order and verifies it belongs to the caller.
func (srv *checkoutService) loadOwnedOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order does not exist")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderOwnershipViolation.WrapMessage("order belongs to another user")
	}

	return order, nil
}

// publish sends an order lifecycle event. Publishing is best-effort: a
// failure is logged and never surfaces to the customer.
func (srv *checkoutService) publish(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   eventType,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		Total:       order.Total,
		Method:      string(order.PaymentMethod),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err))
	}
}
