// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"menubuilder/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account. The
// profile fields are optional; blanks fall back to starter defaults so a
// fresh account can immediately preview a document.
type RegisterInput struct {
	Email    string
	Password string

	OwnerName    string
	BusinessName string
	Phone        string
	Address      string
	Tagline      string
	Services     string
	SpecialNotes string
}

// LoginInput defines the data required for an owner to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	OwnerName       *string
	BusinessName    *string
	Phone           *string
	Address         *string
	Tagline         *string
	Services        *string
	SpecialNotes    *string
	LogoDataURL     *string
	GanapatiDataURL *string
}

// --- Output DTOs ---

// AuthOutput returns the account and its fresh session token.
type AuthOutput struct {
	Token   string
	Account *entity.Account
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	CurrentUser(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input UpdateProfileInput) (*entity.Account, error)
	Logout(ctx context.Context, accountID uuid.UUID) error
}
