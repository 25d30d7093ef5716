// Package persistence selects and wires the configured storage backend.
package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"menubuilder/config"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/errors"
	"menubuilder/internal/infra/persistence/localfile"
	"menubuilder/internal/infra/persistence/postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Stores bundles the repository implementations of one backend.
type Stores struct {
	fx.Out

	TxManager repository.TransactionManager
	Accounts  repository.AccountRepository
	Menus     repository.MenuRepository
}

// New builds the storage backend named by storage.mode.
func New(params Params) (Stores, error) {
	switch params.Config.Storage.Mode {
	case "", "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			TxManager: postgres.NewTransactionManager(db),
			Accounts:  postgres.NewAccountRepository(db),
			Menus:     postgres.NewMenuRepository(db),
		}, nil

	case "localfile":
		store, err := localfile.New(params.Config.Storage.Path, params.Logger)
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			TxManager: store,
			Accounts:  store,
			Menus:     store,
		}, nil

	default:
		return Stores{}, errors.Errorf("unknown storage mode %q", params.Config.Storage.Mode)
	}
}
