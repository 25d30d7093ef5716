package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/usecase"
)

func newUserService(t *testing.T) usecase.UserUsecase {
	t.Helper()

	store := newFakeStore(t)

	return NewUserService(UserServiceParams{
		TxManager:    store,
		AccountRepo:  store,
		Hasher:       stubHasher{},
		TokenService: stubTokenService{},
		Logger:       newDiscardLogger(),
	})
}

func TestUserService_Register(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	out, err := service.Register(ctx, usecase.RegisterInput{
		Email:        "Owner@Example.com",
		Password:     "secret123",
		BusinessName: "Spice Route",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "owner@example.com", out.Account.Email)
	assert.Equal(t, "Spice Route", out.Account.BusinessName)
	// Blank profile fields fall back to starter defaults.
	assert.Equal(t, entity.DefaultOwnerName, out.Account.OwnerName)
	assert.Equal(t, entity.DefaultTagline, out.Account.Tagline)
	assert.Equal(t, entity.DefaultServices, out.Account.Services)
	assert.Empty(t, out.Account.SpecialNotes)
	assert.NotEqual(t, uuid.Nil, out.Account.ID)
	// The password never round-trips in the clear.
	assert.NotEqual(t, "secret123", out.Account.PasswordHash)
}

func TestUserService_RegisterKeepsSubmittedProfile(t *testing.T) {
	service := newUserService(t)

	out, err := service.Register(context.Background(), usecase.RegisterInput{
		Email:        "owner@example.com",
		Password:     "secret123",
		Tagline:      "Flavors that travel",
		Services:     "Weddings\nCorporate",
		SpecialNotes: "• Jain options",
	})
	require.NoError(t, err)

	assert.Equal(t, "Flavors that travel", out.Account.Tagline)
	assert.Equal(t, "Weddings\nCorporate", out.Account.Services)
	assert.Equal(t, "• Jain options", out.Account.SpecialNotes)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, usecase.RegisterInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	// Same mailbox, different case.
	_, err = service.Register(ctx, usecase.RegisterInput{Email: "OWNER@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestUserService_RegisterWeakPassword(t *testing.T) {
	service := newUserService(t)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "12345",
	})
	assert.Error(t, err)
}

func TestUserService_Login(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, usecase.RegisterInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, out.Account.ID)
	assert.NotEmpty(t, out.Token)
}

func TestUserService_LoginIndistinguishableFailures(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, usecase.RegisterInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	// Unknown email and wrong password surface the identical error.
	_, unknownErr := service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})
	_, wrongErr := service.Login(ctx, usecase.LoginInput{Email: "owner@example.com", Password: "not-it"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_CurrentUser(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, usecase.RegisterInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	account, err := service.CurrentUser(ctx, registered.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", account.Email)

	_, err = service.CurrentUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, usecase.RegisterInput{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	tagline := "Flavors that travel"
	notes := "• Veg only"
	updated, err := service.UpdateProfile(ctx, registered.Account.ID, usecase.UpdateProfileInput{
		Tagline:      &tagline,
		SpecialNotes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, tagline, updated.Tagline)
	assert.Equal(t, notes, updated.SpecialNotes)
	// Untouched fields keep their values.
	assert.Equal(t, registered.Account.BusinessName, updated.BusinessName)

	_, err = service.UpdateProfile(ctx, uuid.New(), usecase.UpdateProfileInput{Tagline: &tagline})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Logout(t *testing.T) {
	service := newUserService(t)

	assert.NoError(t, service.Logout(context.Background(), uuid.New()))
}
