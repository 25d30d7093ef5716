package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/infra/persistence/model"
)

// menuRepository implements the domain.MenuRepository interface over the
// JSONB menus column of the users table. Mutations load the whole snapshot
// list, edit it in memory, and write it back; callers run these inside a
// transaction when atomicity with other changes matters.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// Append stores a new snapshot under the account and returns it with its
// assigned id and timestamps.
func (repo *menuRepository) Append(ctx context.Context, accountID uuid.UUID, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	menus, err := repo.loadMenus(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *menu
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	menus = append(menus, stored)
	if err := repo.storeMenus(ctx, accountID, menus); err != nil {
		return nil, err
	}

	return &stored, nil
}

// Replace merges new content into the matching snapshot. An unknown menuID
// leaves the account untouched and returns (nil, nil).
func (repo *menuRepository) Replace(ctx context.Context, accountID uuid.UUID, menuID string, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	menus, err := repo.loadMenus(ctx, accountID)
	if err != nil {
		return nil, err
	}

	for i := range menus {
		if menus[i].ID != menuID {
			continue
		}

		menus[i].Brand = menu.Brand
		menus[i].MealTypes = menu.MealTypes
		menus[i].Template = menu.Template
		menus[i].UpdatedAt = time.Now().UTC()

		if err := repo.storeMenus(ctx, accountID, menus); err != nil {
			return nil, err
		}

		stored := menus[i]

		return &stored, nil
	}

	return nil, nil
}

// Remove deletes the matching snapshot; unknown ids are ignored.
func (repo *menuRepository) Remove(ctx context.Context, accountID uuid.UUID, menuID string) error {
	menus, err := repo.loadMenus(ctx, accountID)
	if err != nil {
		return err
	}

	kept := menus[:0]
	for _, m := range menus {
		if m.ID != menuID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(menus) {
		return nil
	}

	return repo.storeMenus(ctx, accountID, kept)
}

// List returns all snapshots stored under the account, in saved order.
func (repo *menuRepository) List(ctx context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error) {
	return repo.loadMenus(ctx, accountID)
}

func (repo *menuRepository) loadMenus(ctx context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Select("id", "menus").
		Where("id = ?", accountID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load saved menus")
	}

	var menus []entity.SavedMenu
	if len(accountM.Menus) > 0 {
		if err := json.Unmarshal(accountM.Menus, &menus); err != nil {
			return nil, errors.Wrap(err, "decode saved menus column")
		}
	}

	return menus, nil
}

func (repo *menuRepository) storeMenus(ctx context.Context, accountID uuid.UUID, menus []entity.SavedMenu) error {
	if menus == nil {
		menus = []entity.SavedMenu{}
	}

	encoded, err := json.Marshal(menus)
	if err != nil {
		return errors.Wrap(err, "encode saved menus column")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("menus", datatypes.JSON(encoded))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store saved menus")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
