package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "menubuilder/internal/delivery/context"
	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/usecase"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	txManager repository.TransactionManager
	menuRepo  repository.MenuRepository
	logger    *slog.Logger
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MenuRepo  repository.MenuRepository
	Logger    *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		txManager: params.TxManager,
		menuRepo:  params.MenuRepo,
		logger:    params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveMenu appends a new snapshot built from the submitted document.
func (srv *menuService) SaveMenu(ctx context.Context, accountID uuid.UUID, doc usecase.MenuDocument) (*entity.SavedMenu, error) {
	if len(doc.MealTypes) == 0 && doc.Template == "" {
		return nil, domainerrors.ErrMissingMenuData
	}

	var stored *entity.SavedMenu
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stored, err = repoFactory.MenuRepo().Append(ctx, accountID, snapshotFromDocument(doc))

		return err
	})
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	srv.log(ctx).Info("Menu saved",
		slog.Any("accountID", accountID),
		slog.String("menuID", stored.ID))

	return stored, nil
}

// UpdateMenu replaces the content of an existing snapshot. An unknown menuID
// leaves everything untouched and returns (nil, nil).
func (srv *menuService) UpdateMenu(ctx context.Context, accountID uuid.UUID, menuID string, doc usecase.MenuDocument) (*entity.SavedMenu, error) {
	var stored *entity.SavedMenu
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stored, err = repoFactory.MenuRepo().Replace(ctx, accountID, menuID, snapshotFromDocument(doc))

		return err
	})
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	if stored == nil {
		srv.log(ctx).Debug("Menu update matched nothing",
			slog.Any("accountID", accountID),
			slog.String("menuID", menuID))
	}

	return stored, nil
}

// DeleteMenu removes a snapshot; unknown ids succeed silently.
func (srv *menuService) DeleteMenu(ctx context.Context, accountID uuid.UUID, menuID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MenuRepo().Remove(ctx, accountID, menuID)
	})
	if err != nil {
		return mapAccountLookupError(err)
	}

	return nil
}

// ListMenus returns the account's snapshots in saved order.
func (srv *menuService) ListMenus(ctx context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error) {
	menus, err := srv.menuRepo.List(ctx, accountID)
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	return menus, nil
}

func snapshotFromDocument(doc usecase.MenuDocument) *entity.SavedMenu {
	return &entity.SavedMenu{
		Brand:     doc.Brand,
		MealTypes: doc.MealTypes,
		Template:  entity.ParseTemplate(doc.Template),
	}
}

func mapAccountLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return err
}
