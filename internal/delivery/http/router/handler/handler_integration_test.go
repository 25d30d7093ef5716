package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"menubuilder/config"
	"menubuilder/internal/compose"
	"menubuilder/internal/delivery/http/middleware"
	"menubuilder/internal/delivery/http/router"
	"menubuilder/internal/delivery/http/router/handler"
	"menubuilder/internal/delivery/http/validator"
	"menubuilder/internal/domain/service"
	"menubuilder/internal/infra/assemble"
	"menubuilder/internal/infra/auth"
	"menubuilder/internal/infra/persistence/localfile"
	"menubuilder/internal/infra/render"
	"menubuilder/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP surface over a file-backed store, with
// real hashing, tokens and rendering. A renderer override swaps in a stub
// for failure-path tests.
func newTestServer(t *testing.T, rendererOverride ...service.PageRenderer) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	cfg.Auth = &config.AuthConfig{MinPasswordLength: 6}
	cfg.Export = config.ExportConfig{Scale: 1, QRSize: 64}

	store, err := localfile.New(filepath.Join(t.TempDir(), "store.json"), logger)
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	var renderer service.PageRenderer
	if len(rendererOverride) > 0 {
		renderer = rendererOverride[0]
	} else {
		renderer, err = render.NewPageRenderer(cfg, logger)
		require.NoError(t, err)
	}

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    store,
		AccountRepo:  store,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	menuUC := impl.NewMenuService(impl.MenuServiceParams{
		TxManager: store,
		MenuRepo:  store,
		Logger:    logger,
	})
	exportUC := impl.NewExportService(impl.ExportServiceParams{
		Renderer:  renderer,
		Assembler: assemble.NewPDFAssembler(logger),
		MenuRepo:  store,
		Logger:    logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(userUC, logger),
		MenuHandler:    handler.NewMenuHandler(menuUC, logger),
		ExportHandler:  handler.NewExportHandler(exportUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func registerAccount(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]any{
		"email":        email,
		"password":     "secret123",
		"businessName": "Spice Route",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, ok := decodeBody(t, rec)["token"].(string)
	require.True(t, ok)

	return token
}

func sampleMenuData() map[string]any {
	return map[string]any{
		"brand": map[string]any{
			"businessName": "Spice Route",
			"specialNotes": "• Veg and vegan options",
		},
		"mealTypes": []map[string]any{
			{
				"id":   "mt-1",
				"name": "Lunch",
				"categories": []map[string]any{
					{"id": "1", "name": "Starters", "dishes": []string{"Samosa", "Kachori"}},
				},
			},
		},
		"template": "elegant",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]any{
		"email":    "owner@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", user["email"])
	assert.Equal(t, "Business Owner", user["ownerName"])
	assert.Equal(t, "Tasty catering & events", user["tagline"])
	assert.Equal(t, "Catering, Events, Celebrations", user["services"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	// Same email again, case-insensitively
	rec = doJSON(e, http.MethodPost, "/api/register", "", map[string]any{
		"email":    "OWNER@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists with this email", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "owner@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "owner@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decodeBody(t, rec)["message"])
}

func TestRegisterStoresSubmittedProfile(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]any{
		"email":        "owner@example.com",
		"password":     "secret123",
		"tagline":      "Flavors that travel",
		"services":     "Weddings\nCorporate",
		"specialNotes": "• Jain options",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "Flavors that travel", user["tagline"])
	assert.Equal(t, "Weddings\nCorporate", user["services"])
	assert.Equal(t, "• Jain options", user["specialNotes"])
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]any{
		"email":    "owner@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password must be at least 6 characters long", decodeBody(t, rec)["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodGet, "/api/user", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, rec)["error"])
}

func TestCurrentUserAndProfileUpdate(t *testing.T) {
	e := newTestServer(t)
	token := registerAccount(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "Spice Route", user["businessName"])

	rec = doJSON(e, http.MethodPut, "/api/profile", token, map[string]any{
		"tagline": "Authentic home-style catering",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "Authentic home-style catering", updated["tagline"])
	assert.Equal(t, "Spice Route", updated["businessName"])

	rec = doJSON(e, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeBody(t, rec)["message"])
}

func TestMenuLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := registerAccount(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodPost, "/api/menus", token, map[string]any{
		"menuData": sampleMenuData(),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Menu saved successfully", body["message"])

	menu := body["menu"].(map[string]any)
	menuID, ok := menu["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, menuID)

	rec = doJSON(e, http.MethodPut, "/api/menus/"+menuID, token, map[string]any{
		"menuData": sampleMenuData(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Menu updated successfully", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/api/menus", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	menus := decodeBody(t, rec)["menus"].([]any)
	assert.Len(t, menus, 1)

	rec = doJSON(e, http.MethodDelete, "/api/menus/"+menuID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Menu deleted successfully", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/api/menus", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["menus"])
}

func TestSaveMenuRequiresMenuData(t *testing.T) {
	e := newTestServer(t)
	token := registerAccount(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodPost, "/api/menus", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Menu data is required", decodeBody(t, rec)["error"])
}

func TestExportEndpoints(t *testing.T) {
	e := newTestServer(t)
	token := registerAccount(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodPost, "/api/export", token, sampleMenuData())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `"Spice Route.pdf"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = doJSON(e, http.MethodPost, "/api/menus", token, map[string]any{
		"menuData": sampleMenuData(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	menuID := decodeBody(t, rec)["menu"].(map[string]any)["id"].(string)

	rec = doJSON(e, http.MethodGet, "/api/menus/"+menuID+"/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = doJSON(e, http.MethodGet, "/api/menus/does-not-exist/export", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decodeBody(t, rec)["error"])
}

// brokenRenderer fails every page so export failure responses can be checked.
type brokenRenderer struct{}

func (brokenRenderer) Render(compose.Page) (image.Image, error) {
	return nil, errors.New("glyph table corrupted")
}

func TestExportFailureSurfacesRenderError(t *testing.T) {
	e := newTestServer(t, brokenRenderer{})
	token := registerAccount(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodPost, "/api/export", token, sampleMenuData())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The response carries the originating failure reason, not just the
	// generic render-failure message.
	message, ok := decodeBody(t, rec)["error"].(string)
	require.True(t, ok)
	assert.Contains(t, message, "Failed to render menu pages")
	assert.Contains(t, message, "glyph table corrupted")
}
