package handler

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/middleware"
	"smartethnic/internal/domain/entity"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"required,min=1"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Size      string `json:"size"`
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type removeItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

type cartResponse struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

func (h *CartHandler) cartBody(c echo.Context, email string) (*cartResponse, error) {
	items, err := h.cartUseCase.Items(c.Request().Context(), email)
	if err != nil {
		return nil, err
	}

	body := &cartResponse{Items: items}
	for _, it := range items {
		body.TotalItems += it.Quantity
		body.TotalPrice += it.Price * int64(it.Quantity)
	}
	return body, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	body, err := h.cartBody(c, sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, body)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.cartUseCase.AddItem(c.Request().Context(), sess.User.Email, entity.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Category:  req.Category,
		Size:      req.Size,
	})
	if err != nil {
		return response.Error(c, err)
	}

	body, err := h.cartBody(c, sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, body)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.cartUseCase.SetQuantity(c.Request().Context(), sess.User.Email, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	body, err := h.cartBody(c, sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, body)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var req removeItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.cartUseCase.RemoveItem(c.Request().Context(), sess.User.Email, req.ProductID, req.Size)
	if err != nil {
		return response.Error(c, err)
	}

	body, err := h.cartBody(c, sess.User.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, body)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	if err := h.cartUseCase.Clear(c.Request().Context(), sess.User.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}
