package entity

import "time"

// Template selects the color/style profile used when rendering a menu.
type Template string

// Known templates. Unknown values fall back to TemplateFestival.
const (
	TemplateFestival   Template = "festival"
	TemplateMinimalist Template = "minimalist"
	TemplateElegant    Template = "elegant"
)

// ParseTemplate maps a raw template name to a known Template,
// falling back to the festival profile for unknown values.
func ParseTemplate(raw string) Template {
	switch Template(raw) {
	case TemplateFestival, TemplateMinimalist, TemplateElegant:
		return Template(raw)
	default:
		return TemplateFestival
	}
}

// Category groups dishes under a heading on a menu page. Dish order is
// significant and duplicates are permitted.
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Dishes []string `json:"dishes"`
}

// MealType is a named meal slot (e.g., "Lunch") with an optional date and
// occasion and its own ordered categories. IDs are unique within their parent
// scope, not globally.
type MealType struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Date       string     `json:"date,omitempty"`     // ISO date, optional.
	Occasion   string     `json:"occasion,omitempty"` // e.g., "Wedding Reception".
	Categories []Category `json:"categories"`
}

// Menu is the composable document body: an ordered list of meal types plus
// the chosen template. Order is preserved in the exported output.
type Menu struct {
	MealTypes []MealType `json:"mealTypes"`
	Template  Template   `json:"template"`
}

// SavedMenu is an opaque, independently versioned snapshot of a composed menu
// persisted in a user's account record. Updating one field never requires
// re-validating the rest.
type SavedMenu struct {
	ID        string     `json:"id"`
	Brand     Brand      `json:"brand"`
	MealTypes []MealType `json:"mealTypes"`
	Template  Template   `json:"template"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Document returns the composable menu body held in the snapshot.
func (m SavedMenu) Document() Menu {
	return Menu{MealTypes: m.MealTypes, Template: m.Template}
}
