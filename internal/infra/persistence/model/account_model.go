// Package model contains the GORM persistence models and their mapping to
// domain entities.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"menubuilder/internal/domain/entity"
)

// AccountModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Saved menus live in a single JSONB column; each entry
// is an opaque snapshot the database never inspects.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	OwnerName    string `gorm:"type:varchar(100)"`
	BusinessName string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	Tagline      string `gorm:"type:text"`
	Services     string `gorm:"type:text"`
	SpecialNotes string `gorm:"type:text"`

	// Embedded data URL images can be large, so they are stored as text.
	Logo     string `gorm:"type:text"`
	Ganapati string `gorm:"type:text"`

	Menus datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// ToAccountDomain maps the persistence model back to a pure domain entity.
func ToAccountDomain(m *AccountModel) (*entity.Account, error) {
	var menus []entity.SavedMenu
	if len(m.Menus) > 0 {
		if err := json.Unmarshal(m.Menus, &menus); err != nil {
			return nil, errors.Wrap(err, "decode saved menus column")
		}
	}

	return &entity.Account{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		OwnerName:       m.OwnerName,
		BusinessName:    m.BusinessName,
		Phone:           m.Phone,
		Address:         m.Address,
		Tagline:         m.Tagline,
		Services:        m.Services,
		SpecialNotes:    m.SpecialNotes,
		LogoDataURL:     m.Logo,
		GanapatiDataURL: m.Ganapati,
		Menus:           menus,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// FromAccountDomain maps a domain entity to its persistence model.
func FromAccountDomain(account *entity.Account) (*AccountModel, error) {
	menus := account.Menus
	if menus == nil {
		menus = []entity.SavedMenu{}
	}

	encoded, err := json.Marshal(menus)
	if err != nil {
		return nil, errors.Wrap(err, "encode saved menus column")
	}

	return &AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		OwnerName:    account.OwnerName,
		BusinessName: account.BusinessName,
		Phone:        account.Phone,
		Address:      account.Address,
		Tagline:      account.Tagline,
		Services:     account.Services,
		SpecialNotes: account.SpecialNotes,
		Logo:         account.LogoDataURL,
		Ganapati:     account.GanapatiDataURL,
		Menus:        datatypes.JSON(encoded),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}, nil
}
