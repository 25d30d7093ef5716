package repository

import (
	"context"

	"menubuilder/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuRepository manages the saved menu snapshots held inside an account
// record. Each snapshot is treated as an opaque document: replacing one never
// touches its siblings.
type MenuRepository interface {
	// Append stores a new snapshot under the account, assigning it a fresh id
	// and creation/update timestamps, and returns the stored snapshot.
	Append(ctx context.Context, accountID uuid.UUID, menu *entity.SavedMenu) (*entity.SavedMenu, error)

	// Replace merges the given fields into the snapshot with the matching id,
	// refreshing updatedAt and leaving createdAt untouched. An unknown menuID
	// is a silent no-op: the account is left unchanged and (nil, nil) is
	// returned.
	Replace(ctx context.Context, accountID uuid.UUID, menuID string, menu *entity.SavedMenu) (*entity.SavedMenu, error)

	// Remove deletes the snapshot with the matching id. Removing a
	// non-existent id is not an error.
	Remove(ctx context.Context, accountID uuid.UUID, menuID string) error

	// List returns all snapshots stored under the account, in saved order.
	List(ctx context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error)
}
