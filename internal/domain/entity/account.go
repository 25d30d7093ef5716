package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Registration defaults applied when a profile field is omitted.
const (
	DefaultOwnerName        = "Business Owner"
	DefaultRegisterBusiness = "My Catering Business"
	DefaultServices         = "Catering, Events, Celebrations"
)

// Account is the core entity of the system: one registered business owner.
// It carries the credential hash, the branding profile used to prefill new
// menus, and the owner's saved menu snapshots.
type Account struct {
	ID              uuid.UUID   // Unique identifier for the account.
	Email           string      // Login identifier; unique case-insensitively.
	PasswordHash    string      // One-way bcrypt hash; never transmitted after registration.
	OwnerName       string      // The person running the business.
	BusinessName    string      // Display name of the catering business.
	Phone           string      // Contact phone.
	Address         string      // Business address.
	Tagline         string      // Marketing line shown under the business name.
	Services        string      // Newline/comma bullet text describing offered services.
	SpecialNotes    string      // Bullet text rendered on the trailing notes page.
	LogoDataURL     string      // Embedded logo image as a data URL.
	GanapatiDataURL string      // Embedded ganapati image as a data URL.
	Menus           []SavedMenu // Saved menu snapshots, newest appended last.
	CreatedAt       time.Time   // Timestamp of account creation.
	UpdatedAt       time.Time   // Timestamp of the last modification.
}

// NormalizeEmail trims and lowercases an email so stored and incoming values
// compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Brand assembles the account's branding profile into the Brand block used to
// prefill a new menu document.
func (a *Account) Brand() Brand {
	contact := a.Phone
	if a.Address != "" {
		if contact != "" {
			contact += " / "
		}
		contact += a.Address
	}

	return Brand{
		BusinessName:    a.BusinessName,
		Tagline:         a.Tagline,
		Contact:         contact,
		Services:        a.Services,
		SpecialNotes:    a.SpecialNotes,
		LogoDataURL:     a.LogoDataURL,
		GanapatiDataURL: a.GanapatiDataURL,
	}
}
