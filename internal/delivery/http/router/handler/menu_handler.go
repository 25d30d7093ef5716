package handler

import (
	"log/slog"
	"net/http"

	"menubuilder/internal/delivery/http/response"
	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for saved-menu handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// menuDocument is the client-submitted body of one menu snapshot.
type menuDocument struct {
	Brand     entity.Brand      `json:"brand"`
	MealTypes []entity.MealType `json:"mealTypes"`
	Template  string            `json:"template"`
}

type menuRequest struct {
	MenuData *menuDocument `json:"menuData"`
}

func (r *menuRequest) document() usecase.MenuDocument {
	return usecase.MenuDocument{
		Brand:     r.MenuData.Brand,
		MealTypes: r.MenuData.MealTypes,
		Template:  r.MenuData.Template,
	}
}

// SaveMenu appends a new snapshot to the account.
func (h *MenuHandler) SaveMenu(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil || req.MenuData == nil {
		return domainerrors.ErrMissingMenuData
	}

	menu, err := h.uc.SaveMenu(c.Request().Context(), accountID, req.document())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Menu(c, http.StatusOK, "Menu saved successfully", menu)
}

// UpdateMenu replaces the content of an existing snapshot. Updating an
// unknown id reports success without changing anything.
func (h *MenuHandler) UpdateMenu(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil || req.MenuData == nil {
		return domainerrors.ErrMissingMenuData
	}

	if _, err := h.uc.UpdateMenu(c.Request().Context(), accountID, c.Param("menuId"), req.document()); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Menu updated successfully")
}

// DeleteMenu removes a snapshot; deleting an unknown id succeeds.
func (h *MenuHandler) DeleteMenu(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMenu(c.Request().Context(), accountID, c.Param("menuId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Menu deleted successfully")
}

// ListMenus returns the account's snapshots in saved order.
func (h *MenuHandler) ListMenus(c echo.Context) error {
	accountID, err := AccountID(c)
	if err != nil {
		return err
	}

	menus, err := h.uc.ListMenus(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	if menus == nil {
		menus = []entity.SavedMenu{}
	}

	return c.JSON(http.StatusOK, map[string]any{"menus": menus})
}
