package handler

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/middleware"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/logger"
	"smartethnic/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cartUseCase *usecase.CartUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cartUseCase *usecase.CartUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cartUseCase: cartUseCase,
	}
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	PinCode   string `json:"pin_code"`
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	exists, err := h.authUseCase.SendCode(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"exists": exists,
	})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.VerifyCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return response.Error(c, err)
	}

	if result.NeedsSignup {
		return response.Success(c, map[string]interface{}{
			"needs_signup": true,
		})
	}

	// The cart loads once per login, not on every request.
	if err := h.cartUseCase.Attach(c.Request().Context(), result.User.Email); err != nil {
		logger.Warn("Cart attach failed for %s: %v", result.User.Email, err)
	}

	return response.Success(c, map[string]interface{}{
		"needs_signup": false,
		"token":        result.Session.Token,
		"user":         result.User,
	})
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.CompleteSignup(c.Request().Context(), req.Email, usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		PinCode:   req.PinCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.cartUseCase.Attach(c.Request().Context(), result.User.Email); err != nil {
		logger.Warn("Cart attach failed for %s: %v", result.User.Email, err)
	}

	return response.Created(c, map[string]interface{}{
		"token": result.Session.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	return response.Success(c, sess.User)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	if err := h.authUseCase.Logout(c.Request().Context(), sess.Token); err != nil {
		return response.Error(c, err)
	}

	// Drop the in-memory cart; the remote document keeps its last saved
	// state so it is waiting on the next login.
	h.cartUseCase.Detach(sess.User.Email)

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}
