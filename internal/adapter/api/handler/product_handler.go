package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"smartethnic/internal/usecase"
	"smartethnic/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

func (h *ProductHandler) ListCollections(c echo.Context) error {
	collections, err := h.productUseCase.ListCollections(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, collections)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.productUseCase.ListProducts(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.productUseCase.TopProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}
