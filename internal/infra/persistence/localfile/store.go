// Package localfile persists accounts and their saved menus in a single JSON
// file. It backs development and single-user deployments where running
// PostgreSQL would be overkill, and implements the same repository contracts
// as the postgres package.
package localfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
)

// Store is a mutex-guarded JSON file store. One mutex covers every operation,
// so "transactions" are trivially serializable: Execute holds the lock for
// the whole callback and writes the file once on success.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

type storeData struct {
	Accounts []entity.Account `json:"accounts"`
}

// New opens (or prepares to create) the store file at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("localfile storage path must be configured")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create storage directory")
		}
	}

	store := &Store{path: path, logger: logger}

	// Fail fast on an unreadable or corrupt file instead of at first request.
	if _, err := store.load(); err != nil {
		return nil, err
	}

	return store, nil
}

// Execute runs fn while holding the store lock, committing the mutated state
// to disk only when fn succeeds.
func (s *Store) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	sess := &session{data: data}
	if err := fn(&sessionFactory{sess: sess}); err != nil {
		return err
	}

	return s.save(data)
}

// FindByID retrieves a single account by its unique ID.
func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	return (&session{data: data}).findByID(id)
}

// FindByEmail retrieves a single account by email, compared case-insensitively.
func (s *Store) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	return (&session{data: data}).findByEmail(email)
}

// Create persists a new account.
func (s *Store) Create(_ context.Context, account *entity.Account) error {
	return s.mutate(func(sess *session) error {
		return sess.create(account)
	})
}

// Update modifies an existing account.
func (s *Store) Update(_ context.Context, account *entity.Account) error {
	return s.mutate(func(sess *session) error {
		return sess.update(account)
	})
}

// Append stores a new menu snapshot under the account.
func (s *Store) Append(_ context.Context, accountID uuid.UUID, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	var stored *entity.SavedMenu
	err := s.mutate(func(sess *session) error {
		var err error
		stored, err = sess.appendMenu(accountID, menu)

		return err
	})

	return stored, err
}

// Replace merges new content into the matching snapshot. An unknown menuID is
// a silent no-op returning (nil, nil).
func (s *Store) Replace(_ context.Context, accountID uuid.UUID, menuID string, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	var stored *entity.SavedMenu
	err := s.mutate(func(sess *session) error {
		var err error
		stored, err = sess.replaceMenu(accountID, menuID, menu)

		return err
	})

	return stored, err
}

// Remove deletes the matching snapshot; unknown ids are ignored.
func (s *Store) Remove(_ context.Context, accountID uuid.UUID, menuID string) error {
	return s.mutate(func(sess *session) error {
		return sess.removeMenu(accountID, menuID)
	})
}

// List returns all snapshots stored under the account, in saved order.
func (s *Store) List(_ context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	account, err := (&session{data: data}).findByID(accountID)
	if err != nil {
		return nil, err
	}

	return account.Menus, nil
}

func (s *Store) mutate(fn func(sess *session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(&session{data: data}); err != nil {
		return err
	}

	return s.save(data)
}

func (s *Store) load() (*storeData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeData{}, nil
		}

		return nil, domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	data := &storeData{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, domainerrors.ErrStorageUnavailable.WrapMessage("corrupt store file: " + err.Error())
		}
	}

	return data, nil
}

// save writes through a temp file and rename so a crash mid-write never
// truncates the store.
func (s *Store) save(data *storeData) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store file")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	s.logger.Debug("store file written",
		slog.String("path", s.path),
		slog.Int("accounts", len(data.Accounts)))

	return nil
}

// session edits one loaded copy of the store data. It holds no lock itself;
// callers guarantee exclusive access.
type session struct {
	data *storeData
}

// sessionFactory hands out the session as both repository kinds.
type sessionFactory struct {
	sess *session
}

func (f *sessionFactory) AccountRepo() repository.AccountRepository {
	return &sessionAccountRepo{sess: f.sess}
}

func (f *sessionFactory) MenuRepo() repository.MenuRepository {
	return &sessionMenuRepo{sess: f.sess}
}

type sessionAccountRepo struct {
	sess *session
}

func (r *sessionAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.sess.findByID(id)
}

func (r *sessionAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	return r.sess.findByEmail(email)
}

func (r *sessionAccountRepo) Create(_ context.Context, account *entity.Account) error {
	return r.sess.create(account)
}

func (r *sessionAccountRepo) Update(_ context.Context, account *entity.Account) error {
	return r.sess.update(account)
}

type sessionMenuRepo struct {
	sess *session
}

func (r *sessionMenuRepo) Append(_ context.Context, accountID uuid.UUID, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	return r.sess.appendMenu(accountID, menu)
}

func (r *sessionMenuRepo) Replace(_ context.Context, accountID uuid.UUID, menuID string, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	return r.sess.replaceMenu(accountID, menuID, menu)
}

func (r *sessionMenuRepo) Remove(_ context.Context, accountID uuid.UUID, menuID string) error {
	return r.sess.removeMenu(accountID, menuID)
}

func (r *sessionMenuRepo) List(_ context.Context, accountID uuid.UUID) ([]entity.SavedMenu, error) {
	account, err := r.sess.findByID(accountID)
	if err != nil {
		return nil, err
	}

	return account.Menus, nil
}

func (s *session) findByID(id uuid.UUID) (*entity.Account, error) {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID == id {
			account := s.data.Accounts[i]

			return &account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *session) findByEmail(email string) (*entity.Account, error) {
	needle := entity.NormalizeEmail(email)
	for i := range s.data.Accounts {
		if entity.NormalizeEmail(s.data.Accounts[i].Email) == needle {
			account := s.data.Accounts[i]

			return &account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *session) create(account *entity.Account) error {
	if _, err := s.findByEmail(account.Email); err == nil {
		return domainerrors.ErrDuplicateEmail
	}

	now := time.Now().UTC()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.Menus == nil {
		account.Menus = []entity.SavedMenu{}
	}

	s.data.Accounts = append(s.data.Accounts, *account)

	return nil
}

func (s *session) update(account *entity.Account) error {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID != account.ID {
			continue
		}

		account.CreatedAt = s.data.Accounts[i].CreatedAt
		account.UpdatedAt = time.Now().UTC()
		s.data.Accounts[i] = *account

		return nil
	}

	return repository.ErrAccountNotFound
}

func (s *session) appendMenu(accountID uuid.UUID, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	account := s.lookup(accountID)
	if account == nil {
		return nil, repository.ErrAccountNotFound
	}

	now := time.Now().UTC()
	stored := *menu
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	account.Menus = append(account.Menus, stored)
	account.UpdatedAt = now

	return &stored, nil
}

func (s *session) replaceMenu(accountID uuid.UUID, menuID string, menu *entity.SavedMenu) (*entity.SavedMenu, error) {
	account := s.lookup(accountID)
	if account == nil {
		return nil, repository.ErrAccountNotFound
	}

	for i := range account.Menus {
		if account.Menus[i].ID != menuID {
			continue
		}

		account.Menus[i].Brand = menu.Brand
		account.Menus[i].MealTypes = menu.MealTypes
		account.Menus[i].Template = menu.Template
		account.Menus[i].UpdatedAt = time.Now().UTC()

		stored := account.Menus[i]

		return &stored, nil
	}

	return nil, nil
}

func (s *session) removeMenu(accountID uuid.UUID, menuID string) error {
	account := s.lookup(accountID)
	if account == nil {
		return repository.ErrAccountNotFound
	}

	kept := account.Menus[:0]
	for _, m := range account.Menus {
		if m.ID != menuID {
			kept = append(kept, m)
		}
	}
	account.Menus = kept

	return nil
}

// lookup returns a pointer into the session data for in-place mutation.
func (s *session) lookup(accountID uuid.UUID) *entity.Account {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID == accountID {
			return &s.data.Accounts[i]
		}
	}

	return nil
}
