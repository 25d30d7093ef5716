package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubuilder/config"
	"menubuilder/internal/compose"
	"menubuilder/internal/domain/entity"
)

func testRenderer(t *testing.T) *pageRenderer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Export.Scale = 1
	cfg.Export.QRSize = 64

	renderer, err := NewPageRenderer(cfg, slog.Default())
	require.NoError(t, err)

	return renderer.(*pageRenderer)
}

func tinyPNGDataURL(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 0xEA, G: 0x58, B: 0x0C, A: 0xFF})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderAllPageKinds(t *testing.T) {
	renderer := testRenderer(t)

	brand := entity.Brand{
		BusinessName: "Spice Route",
		Tagline:      "Flavors that travel",
		Contact:      "555-0101 / hello@spiceroute.example / 12 Market St",
		Services:     "Weddings\nCorporate lunches",
		SpecialNotes: "• Jain options available",
		LogoDataURL:  tinyPNGDataURL(t),
	}
	menu := entity.Menu{
		Template: entity.TemplateFestival,
		MealTypes: []entity.MealType{
			{
				ID:       "1",
				Name:     "Lunch",
				Date:     "2025-11-02",
				Occasion: "Diwali",
				Categories: []entity.Category{
					{ID: "1", Name: "Starters", Dishes: []string{"Samosa", "Paneer Tikka"}},
					{ID: "2", Name: "Mains"},
				},
			},
		},
	}

	pages := compose.Compose(brand, menu)
	require.Len(t, pages, 3)

	for _, page := range pages {
		img, err := renderer.Render(page)
		require.NoError(t, err)
		require.NotNil(t, img)

		bounds := img.Bounds()
		assert.Equal(t, 595, bounds.Dx())
		assert.Equal(t, 842, bounds.Dy())
	}
}

func TestRenderBrandingPlaceholderGanapatiDisc(t *testing.T) {
	renderer := testRenderer(t)

	pages := compose.Compose(entity.Brand{BusinessName: "Spice Route"}, entity.Menu{})
	require.NotEmpty(t, pages)
	require.Equal(t, compose.PageBranding, pages[0].Kind)

	img, err := renderer.Render(pages[0])
	require.NoError(t, err)

	// With no ganapati image set, the slot renders the placeholder disc.
	// Sample the disc center: x = page width / 2, y = 56pt + edge/2.
	assert.Equal(t, ganapatiPlaceholderColor, img.At(297, 91))
}

func TestRenderBrandingToleratesBrokenImages(t *testing.T) {
	renderer := testRenderer(t)

	brand := entity.Brand{
		LogoDataURL:     "data:image/png;base64,not-valid-base64!!",
		GanapatiDataURL: "plainly not a data url",
	}
	pages := compose.Compose(brand, entity.Menu{})

	img, err := renderer.Render(pages[0])
	assert.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := testRenderer(t)

	img, err := renderer.Render(compose.Page{Kind: compose.PageKind("poster")})
	assert.Error(t, err)
	assert.Nil(t, img)
}

func TestDecodeDataURL(t *testing.T) {
	img, err := decodeDataURL(tinyPNGDataURL(t))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = decodeDataURL("http://example.com/logo.png")
	assert.Error(t, err)

	_, err = decodeDataURL("data:image/png;base64,%%%")
	assert.Error(t, err)
}
