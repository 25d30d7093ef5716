// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Default placeholder values shown when a brand field is left empty.
const (
	DefaultBusinessName = "Your Business Name"
	DefaultTagline      = "Tasty catering & events"
	DefaultContact      = "Phone / Email / Address"
)

// Brand is the business-identity block rendered on the first page of every
// exported menu and reused as per-page header material. It is an immutable
// input to page composition; composition never mutates it.
type Brand struct {
	BusinessName string `json:"businessName"` // Display name; empty falls back to DefaultBusinessName.
	Tagline      string `json:"tagline"`      // Short marketing line under the name.
	Contact      string `json:"contact"`      // Free text; segments separated by "/" render on their own lines.
	Services     string `json:"services"`     // Newline-separated entries, one bullet each; may carry leading glyphs.
	SpecialNotes string `json:"specialNotes"` // Same bullet convention; non-blank content adds a trailing notes page.

	// Embedded image assets as data URLs. Absence renders a placeholder glyph.
	LogoDataURL     string `json:"logoDataUrl"`
	GanapatiDataURL string `json:"ganapatiDataUrl"`
}

// DisplayName returns the business name or the placeholder when the name is
// empty or whitespace-only.
func (b Brand) DisplayName() string {
	if isBlank(b.BusinessName) {
		return DefaultBusinessName
	}

	return b.BusinessName
}

// HasNotes reports whether the special notes contain at least one non-blank
// line, which is what triggers the trailing notes page.
func (b Brand) HasNotes() bool {
	return len(SplitBulletLines(b.SpecialNotes)) > 0
}
