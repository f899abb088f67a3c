// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bloom/internal/delivery/http/middleware"
	"bloom/internal/delivery/http/response"
	"bloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountView is the response shape for account data. The stored password
// hash never appears in a response.
type accountView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type signupRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// loginRequest accepts both the JSON field names and the OAuth2
// password-grant form field "username" carrying the email.
type loginRequest struct {
	Email    string `json:"email" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	account := output.Account

	return response.Success(c, http.StatusCreated, accountView{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
	}, "Signup successful")
}

// Login handles the login request and returns a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token": output.AccessToken,
		"token_type":   output.TokenType,
	}, "Login successful")
}

// Profile returns the authenticated account.
func (h *AccountHandler) Profile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.uc.Profile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountView{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
	}, "Profile retrieved successfully")
}
