package handler

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/response"
)

type AdminHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewAdminHandler(orderUseCase *usecase.OrderUseCase) *AdminHandler {
	return &AdminHandler{
		orderUseCase: orderUseCase,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"order_id": c.Param("id"),
		"status":   req.Status,
	})
}
