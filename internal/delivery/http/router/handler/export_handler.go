package handler

import (
	"log/slog"

	"menubuilder/internal/delivery/http/response"
	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for PDF export handlers.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: logger,
	}
}

type exportRequest struct {
	Brand     entity.Brand      `json:"brand"`
	MealTypes []entity.MealType `json:"mealTypes"`
	Template  string            `json:"template"`
}

// ExportDocument renders the submitted editor state to a PDF download
// without persisting anything.
func (h *ExportHandler) ExportDocument(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingMenuData
	}

	output, err := h.uc.ExportDocument(c.Request().Context(), accountID, usecase.ExportInput{
		Brand: req.Brand,
		Menu: entity.Menu{
			MealTypes: req.MealTypes,
			Template:  entity.ParseTemplate(req.Template),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PDF(c, output.FileName, output.PDF)
}

// ExportSavedMenu renders a stored snapshot to a PDF download.
func (h *ExportHandler) ExportSavedMenu(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ExportSavedMenu(c.Request().Context(), accountID, c.Param("menuId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PDF(c, output.FileName, output.PDF)
}
