package handler

import (
	"log/slog"
	"net/http"

	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/response"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Place converts the caller's cart into an order.
func (h *OrderHandler) Place(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}

// VerifyStripe resolves a Stripe payment attempt for an order.
func (h *OrderHandler) VerifyStripe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	var input usecase.VerifyStripeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.VerifyStripe(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Payment verification processed")
}

// VerifyRazorpay authenticates a Razorpay checkout callback.
func (h *OrderHandler) VerifyRazorpay(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	var input usecase.VerifyRazorpayInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.VerifyRazorpay(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Payment verified successfully")
}

// ListMine returns the caller's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one of the caller's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListAll returns orders across all users (admin only).
func (h *OrderHandler) ListAll(c echo.Context) error {
	filter := repository.OrderFilter{
		Status:        entity.OrderStatus(c.QueryParam("status")),
		PaymentStatus: entity.PaymentStatus(c.QueryParam("paymentStatus")),
		Limit:         parsePositiveInt(c.QueryParam("limit")),
		Offset:        parsePositiveInt(c.QueryParam("offset")),
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus applies an admin fulfillment transition (admin only).
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}
