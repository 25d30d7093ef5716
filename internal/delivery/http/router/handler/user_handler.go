// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"menubuilder/internal/delivery/http/middleware"
	"menubuilder/internal/delivery/http/response"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	OwnerName    string `json:"ownerName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Tagline      string `json:"tagline"`
	Services     string `json:"services"`
	SpecialNotes string `json:"specialNotes"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	OwnerName       *string `json:"ownerName"`
	BusinessName    *string `json:"businessName"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Tagline         *string `json:"tagline"`
	Services        *string `json:"services"`
	SpecialNotes    *string `json:"specialNotes"`
	LogoDataURL     *string `json:"logoDataUrl"`
	GanapatiDataURL *string `json:"ganapatiDataUrl"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		OwnerName:    req.OwnerName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Address:      req.Address,
		Tagline:      req.Tagline,
		Services:     req.Services,
		SpecialNotes: req.SpecialNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusCreated, "User created successfully", output.Account, output.Token)
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, "Login successful", output.Account, output.Token)
}

// CurrentUser returns the profile of the authenticated account.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.CurrentUser(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, account)
}

// UpdateProfile applies a partial branding-profile update.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), accountID, usecase.UpdateProfileInput{
		OwnerName:       req.OwnerName,
		BusinessName:    req.BusinessName,
		Phone:           req.Phone,
		Address:         req.Address,
		Tagline:         req.Tagline,
		Services:        req.Services,
		SpecialNotes:    req.SpecialNotes,
		LogoDataURL:     req.LogoDataURL,
		GanapatiDataURL: req.GanapatiDataURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    response.NewUserPayload(account),
	})
}

// Logout handles the logout request. Tokens are stateless, so this only
// confirms the client-side session teardown.
func (h *UserHandler) Logout(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// AccountID extracts the authenticated account id placed on the context by
// the auth middleware.
func AccountID(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return accountID, nil
}
