package impl

import (
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"menubuilder/internal/compose"
	"menubuilder/internal/domain/service"
	"menubuilder/internal/infra/persistence/localfile"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFakeStore backs tests with the real localfile store, which implements
// every repository interface in memory-speed fashion.
func newFakeStore(t *testing.T) *localfile.Store {
	t.Helper()

	store, err := localfile.New(filepath.Join(t.TempDir(), "store.json"), newDiscardLogger())
	require.NoError(t, err)

	return store
}

// stubHasher is a deterministic PasswordHasher for tests.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (stubHasher) ValidatePassword(password string) error {
	if len(password) < 6 {
		return errWeakPasswordStub
	}

	return nil
}

var errWeakPasswordStub = errStub("password too short")

type errStub string

func (e errStub) Error() string { return string(e) }

// stubTokenService issues predictable tokens.
type stubTokenService struct{}

func (stubTokenService) Generate(userID uuid.UUID, email string) (string, error) {
	return "token-" + userID.String(), nil
}

func (stubTokenService) Validate(tokenString string) (*service.Claims, error) {
	id, err := uuid.Parse(strings.TrimPrefix(tokenString, "token-"))
	if err != nil {
		return nil, err
	}

	return &service.Claims{UserID: id}, nil
}

// stubRenderer returns a fixed image for every page, optionally failing on a
// chosen page kind.
type stubRenderer struct {
	failOn  compose.PageKind
	started chan struct{}
	block   chan struct{}
}

func (r *stubRenderer) Render(page compose.Page) (image.Image, error) {
	if r.started != nil {
		select {
		case r.started <- struct{}{}:
		default:
		}
	}
	if r.block != nil {
		<-r.block
	}
	if r.failOn != "" && page.Kind == r.failOn {
		return nil, errStub("render " + string(page.Kind) + " failed")
	}

	return image.NewRGBA(image.Rect(0, 0, 10, 14)), nil
}
