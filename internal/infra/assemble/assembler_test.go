package assemble

import (
	"image"
	"image/color"
	"log/slog"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubuilder/internal/compose"
	"menubuilder/internal/domain/entity"
)

func solidPage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 60, 84))
	for x := 0; x < 60; x++ {
		for y := 0; y < 84; y++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func testPages(n int) []compose.Page {
	menu := entity.Menu{}
	for i := 0; i < n-1; i++ {
		menu.MealTypes = append(menu.MealTypes, entity.MealType{ID: strconv.Itoa(i + 1), Name: "Lunch"})
	}
	return compose.Compose(entity.Brand{}, menu)
}

func TestAssembleRendersSequentially(t *testing.T) {
	assembler := NewPDFAssembler(slog.Default())
	pages := testPages(4)
	require.Len(t, pages, 4)

	var rendered []compose.PageKind
	pdf, err := assembler.Assemble(pages, func(page compose.Page) (image.Image, error) {
		rendered = append(rendered, page.Kind)
		return solidPage(), nil
	})

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	// Every page rendered exactly once, in document order.
	assert.Equal(t, []compose.PageKind{
		compose.PageBranding,
		compose.PageMenu,
		compose.PageMenu,
		compose.PageMenu,
	}, rendered)
}

func TestAssembleAbortsOnRenderError(t *testing.T) {
	assembler := NewPDFAssembler(slog.Default())
	pages := testPages(3)

	calls := 0
	pdf, err := assembler.Assemble(pages, func(page compose.Page) (image.Image, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("font corrupted")
		}
		return solidPage(), nil
	})

	require.Error(t, err)
	assert.Nil(t, pdf)
	assert.Contains(t, err.Error(), "render page 2 of 3")
	assert.Contains(t, err.Error(), "font corrupted")
	// Rendering stops at the first failure.
	assert.Equal(t, 2, calls)
}

func TestAssembleRejectsEmptyInput(t *testing.T) {
	assembler := NewPDFAssembler(slog.Default())

	pdf, err := assembler.Assemble(nil, func(compose.Page) (image.Image, error) {
		t.Fatal("render must not be called")
		return nil, nil
	})
	assert.Error(t, err)
	assert.Nil(t, pdf)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Spice Route.pdf", FileName("Spice Route"))
	assert.Equal(t, "menu.pdf", FileName(""))
	assert.Equal(t, "menu.pdf", FileName("   "))
	assert.Equal(t, "a-b.pdf", FileName("a/b"))
}
