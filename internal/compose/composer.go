// Package compose turns a brand block and a menu document into the ordered,
// finite sequence of pages that an exported document contains. Composition is
// a pure function: no I/O, no randomness, no hidden state, and the inputs are
// never mutated.
package compose

import (
	"menubuilder/internal/domain/entity"
)

// MaxCategoriesPerPage bounds how many categories share one menu page so each
// rendered page stays visually uncrowded.
const MaxCategoriesPerPage = 3

// PageKind discriminates the three page layouts of an exported document.
type PageKind string

const (
	// PageBranding is the cover page carrying the business identity.
	PageBranding PageKind = "branding"
	// PageMenu is one chunk of a meal type's categories.
	PageMenu PageKind = "menu"
	// PageNotes is the optional trailing special-notes page.
	PageNotes PageKind = "notes"
)

// Page describes one output page: its kind, the theme it renders under, and
// the prepared content for exactly one of the three layouts. Pages are built
// fresh per export or preview call and discarded after rendering; they are
// never persisted.
type Page struct {
	Kind  PageKind
	Theme Theme

	Branding *BrandingContent // Set when Kind == PageBranding.
	Menu     *MenuContent     // Set when Kind == PageMenu.
	Notes    *NotesContent    // Set when Kind == PageNotes.
}

// Compose produces the ordered page sequence for one brand + menu pair:
//
//  1. exactly one branding page, always, even when every brand field is empty;
//  2. for each meal type in order, one menu page per consecutive chunk of at
//     most MaxCategoriesPerPage categories (an empty meal type still yields
//     one page);
//  3. one trailing notes page when the brand's special notes contain at least
//     one non-blank line.
//
// The result is never empty. Inputs are treated best-effort: missing fields
// fall back to placeholder content rather than errors.
func Compose(brand entity.Brand, menu entity.Menu) []Page {
	theme := ThemeFor(menu.Template)

	pages := []Page{{
		Kind:     PageBranding,
		Theme:    theme,
		Branding: buildBrandingContent(brand),
	}}

	for mealTypeIndex, mealType := range menu.MealTypes {
		chunks := chunkCategories(mealType.Categories)
		for chunkIndex, chunk := range chunks {
			pages = append(pages, Page{
				Kind:  PageMenu,
				Theme: theme,
				Menu: buildMenuContent(
					mealType,
					mealTypeIndex,
					chunk,
					chunkIndex == 0,
					chunkIndex == len(chunks)-1,
				),
			})
		}
	}

	if brand.HasNotes() {
		pages = append(pages, Page{
			Kind:  PageNotes,
			Theme: theme,
			Notes: buildNotesContent(brand),
		})
	}

	return pages
}

// chunkCategories partitions categories into consecutive chunks of at most
// MaxCategoriesPerPage, preserving order. An empty slice yields exactly one
// empty chunk so every meal type produces at least one page.
func chunkCategories(categories []entity.Category) [][]entity.Category {
	if len(categories) == 0 {
		return [][]entity.Category{nil}
	}

	chunks := make([][]entity.Category, 0, (len(categories)+MaxCategoriesPerPage-1)/MaxCategoriesPerPage)
	for start := 0; start < len(categories); start += MaxCategoriesPerPage {
		end := min(start+MaxCategoriesPerPage, len(categories))
		chunks = append(chunks, categories[start:end])
	}

	return chunks
}
