// Package response builds the JSON bodies of the public API.
package response

import (
	"fmt"
	"net/http"
	"time"

	"menubuilder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// UserPayload is the public view of an account. The credential hash is never
// part of it.
type UserPayload struct {
	ID              string             `json:"id"`
	Email           string             `json:"email"`
	OwnerName       string             `json:"ownerName"`
	BusinessName    string             `json:"businessName"`
	Phone           string             `json:"phone"`
	Address         string             `json:"address"`
	Tagline         string             `json:"tagline"`
	Services        string             `json:"services"`
	SpecialNotes    string             `json:"specialNotes"`
	LogoDataURL     string             `json:"logoDataUrl"`
	GanapatiDataURL string             `json:"ganapatiDataUrl"`
	Menus           []entity.SavedMenu `json:"menus"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// NewUserPayload maps an account to its public representation.
func NewUserPayload(account *entity.Account) UserPayload {
	menus := account.Menus
	if menus == nil {
		menus = []entity.SavedMenu{}
	}

	return UserPayload{
		ID:              account.ID.String(),
		Email:           account.Email,
		OwnerName:       account.OwnerName,
		BusinessName:    account.BusinessName,
		Phone:           account.Phone,
		Address:         account.Address,
		Tagline:         account.Tagline,
		Services:        account.Services,
		SpecialNotes:    account.SpecialNotes,
		LogoDataURL:     account.LogoDataURL,
		GanapatiDataURL: account.GanapatiDataURL,
		Menus:           menus,
		CreatedAt:       account.CreatedAt,
	}
}

// Auth responds with a session token alongside the account, as returned by
// registration and login.
func Auth(c echo.Context, statusCode int, message string, account *entity.Account, token string) error {
	return c.JSON(statusCode, map[string]any{
		"message": message,
		"user":    NewUserPayload(account),
		"token":   token,
	})
}

// User responds with the account alone.
func User(c echo.Context, account *entity.Account) error {
	return c.JSON(http.StatusOK, map[string]any{
		"user": NewUserPayload(account),
	})
}

// Message responds with a bare confirmation message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"message": message})
}

// Menu responds with a saved menu snapshot and a confirmation message.
func Menu(c echo.Context, statusCode int, message string, menu *entity.SavedMenu) error {
	return c.JSON(statusCode, map[string]any{
		"message": message,
		"menu":    menu,
	})
}

// Error responds with the flat error body every failure uses.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// PDF streams a finished document as a file download.
func PDF(c echo.Context, fileName string, pdf []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
