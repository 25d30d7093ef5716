package compose

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubuilder/internal/domain/entity"
)

func makeCategories(counts ...int) []entity.Category {
	cats := make([]entity.Category, 0, len(counts))
	for i, dishes := range counts {
		cat := entity.Category{
			ID:   strconv.Itoa(i + 1),
			Name: "Category",
		}
		for d := 0; d < dishes; d++ {
			cat.Dishes = append(cat.Dishes, "Dish")
		}
		cats = append(cats, cat)
	}
	return cats
}

func mealTypeWithCategories(n int) entity.MealType {
	mt := entity.MealType{ID: "mt-1", Name: "Lunch"}
	for i := 0; i < n; i++ {
		mt.Categories = append(mt.Categories, entity.Category{ID: strconv.Itoa(i + 1), Name: "Category"})
	}
	return mt
}

func TestComposePageCount(t *testing.T) {
	tests := []struct {
		name       string
		categories []int
		notes      string
		want       int
	}{
		{
			name:       "empty menu still gets branding page",
			categories: nil,
			want:       1,
		},
		{
			name:       "single meal type with no categories",
			categories: []int{0},
			want:       2,
		},
		{
			name:       "exactly one chunk",
			categories: []int{3},
			want:       2,
		},
		{
			name:       "four categories spill to second page",
			categories: []int{4},
			want:       3,
		},
		{
			name:       "mixed meal types",
			categories: []int{7, 3, 0},
			want:       6,
		},
		{
			name:       "mixed meal types with notes",
			categories: []int{7, 3, 0},
			notes:      "• Veg only",
			want:       7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brand := entity.Brand{SpecialNotes: tt.notes}
			menu := entity.Menu{Template: entity.TemplateFestival}
			for _, n := range tt.categories {
				menu.MealTypes = append(menu.MealTypes, mealTypeWithCategories(n))
			}

			pages := Compose(brand, menu)
			assert.Len(t, pages, tt.want)
		})
	}
}

func TestComposePageOrder(t *testing.T) {
	brand := entity.Brand{SpecialNotes: "Allergy info on request"}
	menu := entity.Menu{
		Template: entity.TemplateElegant,
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Breakfast", Categories: makeCategories(2, 2, 2, 2)},
			{ID: "2", Name: "Dinner", Categories: makeCategories(1)},
		},
	}

	pages := Compose(brand, menu)
	require.Len(t, pages, 5)

	assert.Equal(t, PageBranding, pages[0].Kind)
	assert.Equal(t, PageMenu, pages[1].Kind)
	assert.Equal(t, PageMenu, pages[2].Kind)
	assert.Equal(t, PageMenu, pages[3].Kind)
	assert.Equal(t, PageNotes, pages[4].Kind)

	// Meal types appear in input order, all pages of one before the next.
	assert.Equal(t, 0, pages[1].Menu.MealTypeIndex)
	assert.Equal(t, 0, pages[2].Menu.MealTypeIndex)
	assert.Equal(t, 1, pages[3].Menu.MealTypeIndex)
}

func TestComposeChunkBounds(t *testing.T) {
	menu := entity.Menu{
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Lunch", Categories: makeCategories(3, 3, 3, 1, 2, 2, 3)},
		},
	}

	pages := Compose(entity.Brand{}, menu)
	for _, page := range pages {
		if page.Kind != PageMenu {
			continue
		}
		assert.LessOrEqual(t, len(page.Menu.Categories), MaxCategoriesPerPage)
	}
}

func TestComposeFirstLastFlags(t *testing.T) {
	menu := entity.Menu{
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Lunch", Categories: makeCategories(1, 1, 1, 1, 1, 1, 1)},
		},
	}

	pages := Compose(entity.Brand{}, menu)
	require.Len(t, pages, 4)

	assert.True(t, pages[1].Menu.FirstOfMealType)
	assert.False(t, pages[1].Menu.LastOfMealType)
	assert.False(t, pages[2].Menu.FirstOfMealType)
	assert.False(t, pages[2].Menu.LastOfMealType)
	assert.False(t, pages[3].Menu.FirstOfMealType)
	assert.True(t, pages[3].Menu.LastOfMealType)
}

func TestComposeSingleChunkIsFirstAndLast(t *testing.T) {
	menu := entity.Menu{
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Dinner", Categories: makeCategories(2)},
		},
	}

	pages := Compose(entity.Brand{}, menu)
	require.Len(t, pages, 2)
	assert.True(t, pages[1].Menu.FirstOfMealType)
	assert.True(t, pages[1].Menu.LastOfMealType)
}

func TestComposeIdempotent(t *testing.T) {
	brand := entity.Brand{
		BusinessName: "Spice Route",
		Services:     "Weddings\nCorporate",
		SpecialNotes: "• Jain options available",
	}
	menu := entity.Menu{
		Template: entity.TemplateMinimalist,
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Lunch", Date: "2025-11-02", Occasion: "Diwali", Categories: makeCategories(4, 0)},
		},
	}

	first := Compose(brand, menu)
	second := Compose(brand, menu)
	assert.Equal(t, first, second)
}

func TestComposeEmptyStates(t *testing.T) {
	menu := entity.Menu{
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Snacks"},
			{ID: "2", Name: "Dinner", Categories: []entity.Category{{ID: "1", Name: "Mains"}}},
		},
	}

	pages := Compose(entity.Brand{}, menu)
	require.Len(t, pages, 3)

	empty := pages[1].Menu
	assert.True(t, empty.Empty)
	assert.Empty(t, empty.Blocks)
	assert.True(t, empty.FirstOfMealType)
	assert.True(t, empty.LastOfMealType)

	dinner := pages[2].Menu
	assert.False(t, dinner.Empty)
	require.Len(t, dinner.Blocks, 1)
	assert.True(t, dinner.Blocks[0].Empty)
	assert.Empty(t, dinner.Blocks[0].Dishes)
}

func TestComposeNotesNormalization(t *testing.T) {
	brand := entity.Brand{SpecialNotes: "• A\n- B\n\nC"}
	pages := Compose(brand, entity.Menu{})
	require.Len(t, pages, 2)

	notes := pages[1].Notes
	require.NotNil(t, notes)
	assert.Equal(t, []string{"A", "B", "C"}, notes.Bullets)
}

func TestComposeSubtitle(t *testing.T) {
	menu := entity.Menu{
		MealTypes: []entity.MealType{
			{ID: "1", Name: "Lunch", Date: "2025-11-02", Occasion: "Diwali Special", Categories: makeCategories(1)},
		},
	}

	pages := Compose(entity.Brand{}, menu)
	require.Len(t, pages, 2)
	assert.Equal(t, "November 2, 2025 • Diwali Special", pages[1].Menu.Subtitle)
}
