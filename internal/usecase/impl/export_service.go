package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"menubuilder/internal/compose"
	deliverycontext "menubuilder/internal/delivery/context"
	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/domain/service"
	"menubuilder/internal/infra/assemble"
	"menubuilder/internal/usecase"
)

// exportService implements the ExportUsecase interface. It composes pages,
// renders them one by one, and binds the images into a PDF. A per-target
// in-flight guard rejects concurrent exports of the same document instead of
// queueing them.
type exportService struct {
	renderer  service.PageRenderer
	assembler *assemble.PDFAssembler
	menuRepo  repository.MenuRepository
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// ExportServiceParams holds dependencies for exportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	Renderer  service.PageRenderer
	Assembler *assemble.PDFAssembler
	MenuRepo  repository.MenuRepository
	Logger    *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		renderer:  params.Renderer,
		assembler: params.Assembler,
		menuRepo:  params.MenuRepo,
		logger:    params.Logger,
		inFlight:  make(map[string]struct{}),
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportDocument renders the submitted editor state.
func (srv *exportService) ExportDocument(ctx context.Context, accountID uuid.UUID, input usecase.ExportInput) (*usecase.ExportOutput, error) {
	key := accountID.String() + "/current"
	if err := srv.acquire(key); err != nil {
		return nil, err
	}
	defer srv.release(key)

	return srv.export(ctx, input.Brand, input.Menu)
}

// ExportSavedMenu renders a stored snapshot by id.
func (srv *exportService) ExportSavedMenu(ctx context.Context, accountID uuid.UUID, menuID string) (*usecase.ExportOutput, error) {
	key := accountID.String() + "/" + menuID
	if err := srv.acquire(key); err != nil {
		return nil, err
	}
	defer srv.release(key)

	menus, err := srv.menuRepo.List(ctx, accountID)
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	for _, saved := range menus {
		if saved.ID == menuID {
			return srv.export(ctx, saved.Brand, saved.Document())
		}
	}

	return nil, domainerrors.ErrNotFound
}

// export runs the full pipeline. Pages render strictly in order; the first
// render failure aborts the document and nothing is returned.
func (srv *exportService) export(ctx context.Context, brand entity.Brand, menu entity.Menu) (*usecase.ExportOutput, error) {
	pages := compose.Compose(brand, menu)

	pdf, err := srv.assembler.Assemble(pages, srv.renderer.Render)
	if err != nil {
		srv.log(ctx).Error("Export failed", slog.Any("error", err))

		// The originating message travels in the details so the error
		// response can show the user what actually went wrong.
		return nil, domainerrors.ErrRenderFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Export completed",
		slog.Int("pages", len(pages)),
		slog.Int("bytes", len(pdf)))

	return &usecase.ExportOutput{
		FileName: assemble.FileName(brand.BusinessName),
		PDF:      pdf,
	}, nil
}

func (srv *exportService) acquire(key string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, busy := srv.inFlight[key]; busy {
		return domainerrors.ErrExportInProgress
	}
	srv.inFlight[key] = struct{}{}

	return nil
}

func (srv *exportService) release(key string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.inFlight, key)
}
