package handler

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/middleware"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
	}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	PinCode   string `json:"pin_code"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), sess, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		PinCode:   req.PinCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
