package compose

import (
	"strings"
	"time"

	"menubuilder/internal/domain/entity"
)

// Placeholder strings for missing content. Exported so renderers draw the
// same empty-state text the composition promises.
const (
	EmptyCategoryPlaceholder = "No dishes added yet"
	EmptyMenuPlaceholder     = "No categories added yet"

	notesTitle     = "Special Notes"
	thankYouFooter = "Thank you! We look forward to serving you."
)

// BrandingContent is the prepared cover-page material.
type BrandingContent struct {
	BusinessName string   // Placeholder-substituted display name.
	Tagline      string
	ContactLines []string // Contact text split on "/" into display lines.
	ServiceLines []string // Normalized bullet list of offered services.

	// Data-URL image assets; an empty string renders a placeholder glyph.
	LogoDataURL     string
	GanapatiDataURL string

	// QRPayload, when non-empty, is encoded as a QR code on the cover so the
	// printed menu links back to the business contact.
	QRPayload string
}

// CategoryBlock is one category rendered on a menu page.
type CategoryBlock struct {
	Name   string
	Dishes []string
	Empty  bool // True when the category has no dishes; renders the empty-state line.
}

// MenuContent is one chunk of a meal type prepared for rendering.
//
// The meal type header (Title/Subtitle) is first-chunk-only content and the
// thank-you Footer is last-chunk-only content; both are populated on every
// chunk and gated by the flags at render time.
type MenuContent struct {
	MealTypeIndex   int
	FirstOfMealType bool
	LastOfMealType  bool

	Categories []entity.Category // The raw chunk, at most MaxCategoriesPerPage entries.

	Title    string          // Meal type display name.
	Subtitle string          // Formatted date and occasion, may be empty.
	Blocks   []CategoryBlock // Prepared category blocks for this chunk.
	Footer   string
	Empty    bool // True when the whole meal type has no categories.
}

// NotesContent is the trailing special-notes page.
type NotesContent struct {
	Title   string
	Bullets []string
}

func buildBrandingContent(brand entity.Brand) *BrandingContent {
	contactLines := entity.SplitContactLines(brand.Contact)
	if len(contactLines) == 0 {
		contactLines = entity.SplitContactLines(entity.DefaultContact)
	}

	tagline := brand.Tagline
	if strings.TrimSpace(tagline) == "" {
		tagline = entity.DefaultTagline
	}

	qrPayload := ""
	if strings.TrimSpace(brand.Contact) != "" {
		qrPayload = brand.DisplayName() + "\n" + strings.Join(entity.SplitContactLines(brand.Contact), "\n")
	}

	return &BrandingContent{
		BusinessName:    brand.DisplayName(),
		Tagline:         tagline,
		ContactLines:    contactLines,
		ServiceLines:    entity.SplitBulletLines(brand.Services),
		LogoDataURL:     brand.LogoDataURL,
		GanapatiDataURL: brand.GanapatiDataURL,
		QRPayload:       qrPayload,
	}
}

func buildMenuContent(mealType entity.MealType, index int, chunk []entity.Category, first, last bool) *MenuContent {
	title := strings.TrimSpace(mealType.Name)
	if title == "" {
		title = "Menu"
	}

	blocks := make([]CategoryBlock, 0, len(chunk))
	for _, category := range chunk {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			name = "Category"
		}

		dishes := make([]string, 0, len(category.Dishes))
		for _, dish := range category.Dishes {
			dish = strings.TrimSpace(dish)
			if dish == "" {
				continue
			}
			dishes = append(dishes, dish)
		}

		blocks = append(blocks, CategoryBlock{
			Name:   name,
			Dishes: dishes,
			Empty:  len(dishes) == 0,
		})
	}

	return &MenuContent{
		MealTypeIndex:   index,
		FirstOfMealType: first,
		LastOfMealType:  last,
		Categories:      chunk,
		Title:           title,
		Subtitle:        buildSubtitle(mealType),
		Blocks:          blocks,
		Footer:          thankYouFooter,
		Empty:           len(chunk) == 0,
	}
}

// buildSubtitle joins the formatted date and the occasion, either of which
// may be absent.
func buildSubtitle(mealType entity.MealType) string {
	var parts []string

	if date := formatDate(mealType.Date); date != "" {
		parts = append(parts, date)
	}
	if occasion := strings.TrimSpace(mealType.Occasion); occasion != "" {
		parts = append(parts, occasion)
	}

	return strings.Join(parts, " • ")
}

// formatDate renders an ISO date in long form; unparseable input passes
// through unchanged so the owner's text is never lost.
func formatDate(isoDate string) string {
	isoDate = strings.TrimSpace(isoDate)
	if isoDate == "" {
		return ""
	}

	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}

	return parsed.Format("January 2, 2006")
}

func buildNotesContent(brand entity.Brand) *NotesContent {
	return &NotesContent{
		Title:   notesTitle,
		Bullets: entity.SplitBulletLines(brand.SpecialNotes),
	}
}
