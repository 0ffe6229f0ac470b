package impl

import (
	"context"
	"testing"

	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	mockRepo "capsule/internal/mocks/repository"
	mockSvc "capsule/internal/mocks/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	addressRepo *mockRepo.MockAddressRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T, method entity.PaymentMethod) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	gateway.EXPECT().Method().Return(method)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		AddressRepo: addressRepo,
		Gateways:    []service.PaymentGateway{gateway},
		Publisher:   publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:     svc,
		txManager:   txManager,
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		gateway:     gateway,
		publisher:   publisher,
	}
}

func testAddress(userID uuid.UUID) *entity.Address {
	return &entity.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Recipient:  "Alex Chen",
		Phone:      "+886912345678",
		Line1:      "1 Demo Street",
		City:       "Taipei",
		PostalCode: "100",
		Country:    "TW",
	}
}

func testCart(userID uuid.UUID, quantity int) *entity.Cart {
	productID := uuid.New()

	return &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Size:      "M",
				Color:     "BLACK",
				Quantity:  quantity,
				Product: &entity.Product{
					ID:       productID,
					Name:     "Core Hoodie",
					Price:    8900,
					Category: "hoodies",
					Sizes:    []string{"M"},
					Colors:   []entity.ColorVariant{{Name: "BLACK", Images: []string{"img"}}},
					Stock:    10,
				},
			},
		},
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)
	cart := testCart(userID, 2)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
			productRepo.EXPECT().AdjustStock(ctx, cart.Items[0].ProductID, -2).Return(nil)
			orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			cartRepo.EXPECT().ClearItems(ctx, userID).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(17800), output.Order.Subtotal)
	// Subtotal clears the free shipping threshold, so no fee.
	assert.Equal(t, int64(0), output.Order.ShippingFee)
	assert.Equal(t, int64(17800), output.Order.Total)
	assert.Equal(t, entity.OrderStatusPlaced, output.Order.Status)
	assert.Equal(t, entity.PaymentStatusPending, output.Order.PaymentStatus)
	assert.Equal(t, address.Recipient, output.Order.Address.Recipient)
	assert.Len(t, output.Order.Items, 1)
	assert.Equal(t, "Core Hoodie", output.Order.Items[0].Name)
}

func TestCheckoutService_PlaceOrder_ShippingFeeBelowThreshold(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)
	cart := testCart(userID, 1)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
			productRepo.EXPECT().AdjustStock(ctx, cart.Items[0].ProductID, -1).Return(nil)
			orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			cartRepo.EXPECT().ClearItems(ctx, userID).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8900), output.Order.Subtotal)
	assert.Equal(t, int64(500), output.Order.ShippingFee)
	assert.Equal(t, int64(9400), output.Order.Total)
}

func TestCheckoutService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)
	cart := testCart(userID, 5)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
			productRepo.EXPECT().
				AdjustStock(ctx, cart.Items[0].ProductID, -5).
				Return(repository.ErrInsufficientStock)

			return fn(factory)
		})

	output, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "INSUFFICIENT_STOCK")
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Cart{UserID: userID}, nil)

			return fn(factory)
		})

	_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	assertAppErrorCode(t, err, "CART_EMPTY")
}

func TestCheckoutService_PlaceOrder_UnsupportedMethod(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		AddressID: uuid.New(),
		Method:    entity.PaymentMethodStripe,
	})

	assertAppErrorCode(t, err, "UNSUPPORTED_PAYMENT_METHOD")
}

func TestCheckoutService_PlaceOrder_ForeignAddress(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(uuid.New())

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	assertAppErrorCode(t, err, "ADDRESS_OWNERSHIP_VIOLATION")
}

func TestCheckoutService_PlaceOrder_OrderNumberCollisionRetries(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)
	cart := testCart(userID, 1)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	// First two attempts collide with existing order numbers; the third
	// attempt succeeds with a fresh number.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrOrderNumberTaken).
		Twice()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
			productRepo.EXPECT().AdjustStock(ctx, cart.Items[0].ProductID, -1).Return(nil)
			orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			cartRepo.EXPECT().ClearItems(ctx, userID).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil).
		Once()

	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodCOD,
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestCheckoutService_PlaceOrder_GatewayFailureCompensates(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodRazorpay)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)
	cart := testCart(userID, 2)

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	// Placement transaction succeeds.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
			productRepo.EXPECT().AdjustStock(ctx, cart.Items[0].ProductID, -2).Return(nil)
			orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			cartRepo.EXPECT().ClearItems(ctx, userID).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil).
		Once()

	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil, errors.New("provider unreachable"))

	// Compensation restores the reserved stock and cancels the order.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			productRepo.EXPECT().AdjustStock(ctx, cart.Items[0].ProductID, 2).Return(nil)
			orderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(order *entity.Order) bool {
					return order.Status == entity.OrderStatusCancelled &&
						order.PaymentStatus == entity.PaymentStatusFailed
				})).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil).
		Once()

	output, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		AddressID: address.ID,
		Method:    entity.PaymentMethodRazorpay,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assertAppErrorCode(t, err, "PAYMENT_GATEWAY_FAILURE")
}

func TestCheckoutService_VerifyStripe_Success(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		OrderNumber:   "XND-260901-0001",
		Status:        entity.OrderStatusPlaced,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: entity.PaymentMethodStripe,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.PaymentStatus == entity.PaymentStatusPaid &&
				o.Status == entity.OrderStatusConfirmed
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
}

func TestCheckoutService_VerifyStripe_SuccessIsIdempotent(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: entity.PaymentMethodStripe,
	}

	// No Update expectation: a repeated success callback must not write.
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	updated, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
}

func TestCheckoutService_VerifyStripe_DeclineCancelsAndRestoresStock(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Items:         []entity.OrderLineItem{{ProductID: productID, Quantity: 3}},
		Status:        entity.OrderStatusPlaced,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: entity.PaymentMethodStripe,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			productRepo.EXPECT().AdjustStock(ctx, productID, 3).Return(nil)
			orderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
					return o.Status == entity.OrderStatusCancelled &&
						o.PaymentStatus == entity.PaymentStatusFailed
				})).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: false,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsCancelled())
}

func TestCheckoutService_VerifyStripe_DeclineOnSettledPayment(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: entity.PaymentMethodStripe,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: false,
	})

	assertAppErrorCode(t, err, "ORDER_ALREADY_PAID")
}

func TestCheckoutService_VerifyStripe_SuccessOnCancelledOrderRejected(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Items:         []entity.OrderLineItem{{ProductID: uuid.New(), Quantity: 2}},
		Status:        entity.OrderStatusCancelled,
		PaymentStatus: entity.PaymentStatusFailed,
		PaymentMethod: entity.PaymentMethodStripe,
	}

	// The decline path already restored this order's stock. A later success
	// callback must not bring the order back: no Update, no stock call.
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	updated, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: true,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assertAppErrorCode(t, err, "ORDER_CANCELLED")
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.Equal(t, entity.PaymentStatusFailed, order.PaymentStatus)
}

func TestCheckoutService_VerifyStripe_WrongMethod(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodStripe)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		PaymentMethod: entity.PaymentMethodCOD,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.VerifyStripe(ctx, userID, &usecase.VerifyStripeInput{
		OrderID: order.ID,
		Success: true,
	})

	assertAppErrorCode(t, err, "UNSUPPORTED_PAYMENT_METHOD")
}

func TestCheckoutService_VerifyRazorpay_Success(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodRazorpay)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          entity.OrderStatusPlaced,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentMethod:   entity.PaymentMethodRazorpay,
		ProviderOrderID: "order_abc123",
	}
	input := &usecase.VerifyRazorpayInput{
		ProviderOrderID: "order_abc123",
		PaymentID:       "pay_xyz789",
		Signature:       "deadbeef",
	}

	fx.gateway.EXPECT().
		VerifySignature(&service.RazorpayCallback{
			ProviderOrderID: input.ProviderOrderID,
			PaymentID:       input.PaymentID,
			Signature:       input.Signature,
		}).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByProviderOrderID(ctx, userID, "order_abc123").
		Return(order, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.PaymentStatus == entity.PaymentStatusPaid &&
				o.ProviderPayID == "pay_xyz789"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.VerifyRazorpay(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
}

func TestCheckoutService_VerifyRazorpay_TamperedSignatureMutatesNothing(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodRazorpay)

	ctx := context.Background()
	input := &usecase.VerifyRazorpayInput{
		ProviderOrderID: "order_abc123",
		PaymentID:       "pay_tampered",
		Signature:       "bad",
	}

	// Only the signature check runs; the order repo expects no calls at all.
	fx.gateway.EXPECT().
		VerifySignature(mock.AnythingOfType("*service.RazorpayCallback")).
		Return(errors.New("signature mismatch"))

	updated, err := fx.service.VerifyRazorpay(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assertAppErrorCode(t, err, "PAYMENT_VERIFICATION_FAILED")
}

func TestCheckoutService_VerifyRazorpay_SuccessOnCancelledOrderRejected(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodRazorpay)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          entity.OrderStatusCancelled,
		PaymentStatus:   entity.PaymentStatusFailed,
		PaymentMethod:   entity.PaymentMethodRazorpay,
		ProviderOrderID: "order_abc123",
	}
	input := &usecase.VerifyRazorpayInput{
		ProviderOrderID: "order_abc123",
		PaymentID:       "pay_late",
		Signature:       "deadbeef",
	}

	// Even a correctly signed callback cannot settle a cancelled order.
	fx.gateway.EXPECT().
		VerifySignature(mock.AnythingOfType("*service.RazorpayCallback")).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByProviderOrderID(ctx, userID, "order_abc123").
		Return(order, nil)

	updated, err := fx.service.VerifyRazorpay(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assertAppErrorCode(t, err, "ORDER_CANCELLED")
}

func TestCheckoutService_UpdateOrderStatus_CancelRestoresStockAndRefunds(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.OrderLineItem{{ProductID: productID, Name: "Core Hoodie", Quantity: 2}},
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: entity.PaymentMethodCOD,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)

			orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
			productRepo.EXPECT().AdjustStock(ctx, productID, 2).Return(nil)
			orderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(o *entity.Order) bool {
					return o.Status == entity.OrderStatusCancelled &&
						o.PaymentStatus == entity.PaymentStatusRefunded
				})).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, updated.PaymentStatus)
}

func TestCheckoutService_UpdateOrderStatus_UncancelFailsWhenStockSold(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.OrderLineItem{{ProductID: productID, Name: "Core Hoodie", Quantity: 2}},
		Status:        entity.OrderStatusCancelled,
		PaymentStatus: entity.PaymentStatusFailed,
		PaymentMethod: entity.PaymentMethodCOD,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)

			orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
			productRepo.EXPECT().
				AdjustStock(ctx, productID, -2).
				Return(repository.ErrInsufficientStock)

			return fn(factory)
		})

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusProcessing,
	})

	assertAppErrorCode(t, err, "INSUFFICIENT_STOCK")
}

func TestCheckoutService_UpdateOrderStatus_RecancelIsNoop(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.OrderLineItem{{ProductID: productID, Name: "Core Hoodie", Quantity: 2}},
		Status:        entity.OrderStatusCancelled,
		PaymentStatus: entity.PaymentStatusFailed,
		PaymentMethod: entity.PaymentMethodCOD,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)

			// Only the locked read runs. Stock was restored when the order
			// was first cancelled; repeating the cancel must not restore it
			// again, so no AdjustStock and no Update are expected.
			orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	// No publisher expectation either: a no-op emits no cancellation event.
	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentStatusFailed, updated.PaymentStatus)
}

func TestCheckoutService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus("Teleported"),
	})

	assertAppErrorCode(t, err, "INVALID_ORDER_STATUS")
}

func TestCheckoutService_GetOrder_ForeignOrder(t *testing.T) {
	fx := createTestCheckoutService(t, entity.PaymentMethodCOD)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assertAppErrorCode(t, err, "ORDER_OWNERSHIP_VIOLATION")
}
