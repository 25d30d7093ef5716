package usecase

import (
	"context"

	"github.com/google/uuid"

	"menubuilder/internal/domain/entity"
)

// ExportInput is an ad-hoc document to export: the current editor state, not
// necessarily a saved snapshot.
type ExportInput struct {
	Brand entity.Brand
	Menu  entity.Menu
}

// ExportOutput carries the finished PDF and its download file name.
type ExportOutput struct {
	FileName string
	PDF      []byte
}

// ExportUsecase builds PDF documents from menu content. Exports for the same
// target never run concurrently; a second request while one is in flight is
// rejected rather than queued.
type ExportUsecase interface {
	// ExportDocument renders the submitted document.
	ExportDocument(ctx context.Context, accountID uuid.UUID, input ExportInput) (*ExportOutput, error)

	// ExportSavedMenu renders a stored snapshot by id.
	ExportSavedMenu(ctx context.Context, accountID uuid.UUID, menuID string) (*ExportOutput, error)
}
