package handler

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/middleware"
	"smartethnic/internal/domain/entity"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/logger"
	"smartethnic/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
	cartUseCase  *usecase.CartUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, cartUseCase *usecase.CartUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		cartUseCase:  cartUseCase,
	}
}

type placeOrderRequest struct {
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	PinCode string `json:"pin_code" validate:"required"`
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()

	// Checkout owns the pricing summary; the materializer records it as
	// passed.
	subtotal, err := h.cartUseCase.TotalPrice(ctx, sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}
	pricing := entity.ComputePricing(subtotal)

	order, err := h.orderUseCase.PlaceOrder(ctx, &sess.User, usecase.AddressInput{
		Address: req.Address,
		Phone:   req.Phone,
		PinCode: req.PinCode,
	}, pricing)
	if err != nil {
		return response.Error(c, err)
	}

	// The materializer does not clear the cart; checkout does, once the
	// order is safely persisted.
	if err := h.cartUseCase.Clear(ctx, sess.User.Email); err != nil {
		logger.Warn("Cart clear after order %s failed: %v", order.OrderID, err)
	}

	return response.Created(c, map[string]interface{}{
		"order_id": order.OrderID,
		"pricing":  order.Pricing,
		"status":   order.Status,
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	orders, err := h.orderUseCase.ListOrders(c.Request().Context(), sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	order, err := h.orderUseCase.GetUserOrder(c.Request().Context(), sess.User.Email, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
