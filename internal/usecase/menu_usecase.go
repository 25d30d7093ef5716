package usecase

import (
	"context"

	"github.com/google/uuid"

	"menubuilder/internal/domain/entity"
)

// MenuDocument is the client-submitted body of a menu snapshot. The template
// name is raw text; unknown values fall back to the festival template.
type MenuDocument struct {
	Brand     entity.Brand
	MealTypes []entity.MealType
	Template  string
}

// MenuUsecase manages the saved menu snapshots of an account.
type MenuUsecase interface {
	// SaveMenu appends a new snapshot and returns it with id and timestamps.
	SaveMenu(ctx context.Context, accountID uuid.UUID, doc MenuDocument) (*entity.SavedMenu, error)

	// UpdateMenu replaces the content of an existing snapshot. An unknown
	// menuID is a silent no-op returning (nil, nil).
	UpdateMenu(ctx context.Context, accountID uuid.UUID, menuID string, doc MenuDocument) (*entity.SavedMenu, error)

	// DeleteMenu removes a snapshot; deleting an unknown id succeeds.
	DeleteMenu(ctx context.Context, accountID uuid.UUID, menuID string) error

	// ListMenus returns the account's snapshots in saved order.
	ListMenus(ctx context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error)
}
