// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "menubuilder/internal/delivery/context"
	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/domain/service"
	"menubuilder/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs it in. Blank profile fields are
// replaced with starter defaults so the first preview never renders empty.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hashed,
		OwnerName:    defaulted(input.OwnerName, entity.DefaultOwnerName),
		BusinessName: defaulted(input.BusinessName, entity.DefaultRegisterBusiness),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Tagline:      defaulted(input.Tagline, entity.DefaultTagline),
		Services:     defaulted(input.Services, entity.DefaultServices),
		SpecialNotes: strings.TrimSpace(input.SpecialNotes),
		Menus:        []entity.SavedMenu{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// The unique index catches races, but checking first keeps the common
		// duplicate case off the error path.
		if _, err := accountRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrDuplicateEmail
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, Account: account}, nil
}

// Login verifies credentials and issues a fresh session token. A missing
// account and a wrong password report the same error.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, Account: account}, nil
}

// CurrentUser loads the authenticated account.
func (srv *userService) CurrentUser(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// UpdateProfile merges the submitted fields into the account's brand profile.
func (srv *userService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Account, error) {
	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load account")
		}

		applyIfSet(&account.OwnerName, input.OwnerName)
		applyIfSet(&account.BusinessName, input.BusinessName)
		applyIfSet(&account.Phone, input.Phone)
		applyIfSet(&account.Address, input.Address)
		applyIfSet(&account.Tagline, input.Tagline)
		applyIfSet(&account.Services, input.Services)
		applyIfSet(&account.SpecialNotes, input.SpecialNotes)
		applyIfSet(&account.LogoDataURL, input.LogoDataURL)
		applyIfSet(&account.GanapatiDataURL, input.GanapatiDataURL)

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", accountID))

	return updated, nil
}

// Logout is stateless on the server side; tokens simply age out. The call
// still exists so clients have a definite end-of-session signal.
func (srv *userService) Logout(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Logout", slog.Any("accountID", accountID))

	return nil
}

func defaulted(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimSpace(value)
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
