// Package render rasterizes composed pages into images that the PDF
// assembler embeds one per page.
package render

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"menubuilder/config"
	"menubuilder/internal/compose"
	"menubuilder/internal/domain/service"
)

// Layout metrics in points.
const (
	marginPt       = 54
	headerTopPt    = 72
	footerRisePt   = 46
	qrEdgePt       = 70
	logoRadiusPt   = 55
	ganapatiEdgePt = 70
)

// ganapatiPlaceholderColor fills the ganapati slot when no image is set.
var ganapatiPlaceholderColor = color.RGBA{R: 0xFF, G: 0xE7, B: 0xC1, A: 0xFF}

// pageRenderer draws one page at a time onto a fresh gg context. Font faces
// are built per call from the parsed fonts, so the only shared state is
// read-only and Render stays safe for the assembler's sequential loop.
type pageRenderer struct {
	scale  float64
	qrSize int
	logger *slog.Logger

	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

// NewPageRenderer builds the raster renderer from the export configuration.
func NewPageRenderer(cfg *config.Config, logger *slog.Logger) (service.PageRenderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse regular font")
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse bold font")
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse italic font")
	}

	scale := float64(cfg.Export.Scale)
	if scale <= 0 {
		scale = 2
	}

	return &pageRenderer{
		scale:   scale,
		qrSize:  cfg.Export.QRSize,
		logger:  logger,
		regular: regular,
		bold:    bold,
		italic:  italic,
	}, nil
}

// Render rasterizes one page. A failure aborts the surrounding export.
func (r *pageRenderer) Render(page compose.Page) (image.Image, error) {
	dc := gg.NewContext(r.pixels(compose.PageWidthPt), r.pixels(compose.PageHeightPt))

	switch page.Kind {
	case compose.PageBranding:
		if err := r.drawBranding(dc, page); err != nil {
			return nil, err
		}
	case compose.PageMenu:
		r.drawMenu(dc, page)
	case compose.PageNotes:
		r.drawNotes(dc, page)
	default:
		return nil, errors.Errorf("unknown page kind %q", page.Kind)
	}

	return dc.Image(), nil
}

func (r *pageRenderer) pt(v float64) float64 {
	return v * r.scale
}

func (r *pageRenderer) pixels(v float64) int {
	return int(math.Round(v * r.scale))
}

func (r *pageRenderer) face(f *truetype.Font, sizePt float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: sizePt * r.scale, DPI: 72})
}

func (r *pageRenderer) drawBranding(dc *gg.Context, page compose.Page) error {
	theme := page.Theme
	content := page.Branding
	width := r.pt(compose.PageWidthPt)
	height := r.pt(compose.PageHeightPt)
	centerX := width / 2

	r.fillGradient(dc, theme.Background, theme.BackgroundAlt)

	// The ganapati slot always renders: the image when one decodes, a warm
	// placeholder disc otherwise.
	ganapatiEdge := r.pt(ganapatiEdgePt)
	var ganapati image.Image
	if content.GanapatiDataURL != "" {
		img, err := decodeDataURL(content.GanapatiDataURL)
		if err != nil {
			r.logger.Warn("skipping undecodable ganapati image", slog.Any("error", err))
		} else {
			ganapati = img
		}
	}
	if ganapati != nil {
		r.drawImageFitted(dc, ganapati, centerX-ganapatiEdge/2, r.pt(56), ganapatiEdge, ganapatiEdge)
	} else {
		dc.SetColor(ganapatiPlaceholderColor)
		dc.DrawCircle(centerX, r.pt(56)+ganapatiEdge/2, ganapatiEdge/2)
		dc.Fill()
	}

	// Logo sits in a circle; a missing or broken image falls back to an
	// accent disc with the business initial.
	logoCenterY := r.pt(210)
	logoRadius := r.pt(logoRadiusPt)
	var logo image.Image
	if content.LogoDataURL != "" {
		img, err := decodeDataURL(content.LogoDataURL)
		if err != nil {
			r.logger.Warn("skipping undecodable logo image", slog.Any("error", err))
		} else {
			logo = img
		}
	}
	if logo != nil {
		dc.Push()
		dc.DrawCircle(centerX, logoCenterY, logoRadius)
		dc.Clip()
		r.drawImageFitted(dc, logo, centerX-logoRadius, logoCenterY-logoRadius, logoRadius*2, logoRadius*2)
		dc.Pop()
	} else {
		dc.SetColor(theme.Accent)
		dc.DrawCircle(centerX, logoCenterY, logoRadius)
		dc.Fill()

		initial := "?"
		if content.BusinessName != "" {
			initial = string([]rune(content.BusinessName)[0])
		}
		dc.SetFontFace(r.face(r.bold, 48))
		dc.SetColor(theme.Background)
		dc.DrawStringAnchored(initial, centerX, logoCenterY, 0.5, 0.35)
	}

	dc.SetFontFace(r.face(r.bold, 34))
	dc.SetColor(theme.Ink)
	dc.DrawStringAnchored(content.BusinessName, centerX, r.pt(320), 0.5, 0.5)

	dc.SetColor(theme.Accent)
	dc.DrawRectangle(centerX-r.pt(60), r.pt(342), r.pt(120), r.pt(2))
	dc.Fill()

	dc.SetFontFace(r.face(r.italic, 15))
	dc.SetColor(theme.Muted)
	dc.DrawStringAnchored(content.Tagline, centerX, r.pt(366), 0.5, 0.5)

	y := r.pt(420)
	dc.SetFontFace(r.face(r.regular, 13))
	dc.SetColor(theme.Ink)
	for _, line := range content.ServiceLines {
		dc.DrawStringAnchored("• "+line, centerX, y, 0.5, 0.5)
		y += r.pt(22)
	}

	contactY := height - r.pt(140)
	dc.SetFontFace(r.face(r.regular, 12))
	dc.SetColor(theme.Muted)
	for _, line := range content.ContactLines {
		dc.DrawStringAnchored(line, centerX, contactY, 0.5, 0.5)
		contactY += r.pt(18)
	}

	if content.QRPayload != "" {
		qr, err := qrcode.New(content.QRPayload, qrcode.Medium)
		if err != nil {
			return errors.Wrap(err, "encode contact qr code")
		}
		qr.DisableBorder = true
		img := qr.Image(r.qrSize)
		edge := r.pt(qrEdgePt)
		r.drawImageFitted(dc, img, width-r.pt(marginPt)-edge, height-r.pt(marginPt)-edge, edge, edge)
	}

	return nil
}

func (r *pageRenderer) drawMenu(dc *gg.Context, page compose.Page) {
	theme := page.Theme
	content := page.Menu
	width := r.pt(compose.PageWidthPt)
	height := r.pt(compose.PageHeightPt)
	left := r.pt(marginPt)
	textWidth := width - 2*left

	dc.SetColor(theme.PageColor)
	dc.Clear()

	dc.SetColor(theme.Accent)
	dc.DrawRectangle(0, 0, width, r.pt(6))
	dc.Fill()

	y := r.pt(headerTopPt)
	if content.FirstOfMealType {
		dc.SetFontFace(r.face(r.bold, 26))
		dc.SetColor(theme.Accent)
		dc.DrawString(content.Title, left, y)
		y += r.pt(10)

		if content.Subtitle != "" {
			y += r.pt(14)
			dc.SetFontFace(r.face(r.regular, 13))
			dc.SetColor(theme.Muted)
			dc.DrawString(content.Subtitle, left, y)
			y += r.pt(6)
		}

		dc.SetColor(theme.Accent)
		dc.DrawRectangle(left, y+r.pt(8), textWidth, r.pt(1))
		dc.Fill()
		y += r.pt(34)
	}

	if content.Empty {
		dc.SetFontFace(r.face(r.italic, 14))
		dc.SetColor(theme.Muted)
		dc.DrawStringAnchored(compose.EmptyMenuPlaceholder, width/2, height/2, 0.5, 0.5)
	}

	bottom := height - r.pt(footerRisePt+20)
	for _, block := range content.Blocks {
		if y > bottom {
			break
		}

		dc.SetFontFace(r.face(r.bold, 16))
		dc.SetColor(theme.Accent)
		dc.DrawString(block.Name, left, y)
		y += r.pt(8)

		dc.DrawRectangle(left, y, r.pt(46), r.pt(1.5))
		dc.Fill()
		y += r.pt(20)

		if block.Empty {
			dc.SetFontFace(r.face(r.italic, 12))
			dc.SetColor(theme.Muted)
			dc.DrawString(compose.EmptyCategoryPlaceholder, left+r.pt(12), y)
			y += r.pt(26)
			continue
		}

		dc.SetFontFace(r.face(r.regular, 12.5))
		dc.SetColor(theme.Ink)
		for _, dish := range block.Dishes {
			lines := dc.WordWrap("• "+dish, textWidth-r.pt(12))
			for _, line := range lines {
				if y > bottom {
					break
				}
				dc.DrawString(line, left+r.pt(12), y)
				y += r.pt(18)
			}
		}
		y += r.pt(16)
	}

	if content.LastOfMealType {
		dc.SetFontFace(r.face(r.italic, 12))
		dc.SetColor(theme.Muted)
		dc.DrawStringAnchored(content.Footer, width/2, height-r.pt(footerRisePt), 0.5, 0.5)
	}
}

func (r *pageRenderer) drawNotes(dc *gg.Context, page compose.Page) {
	theme := page.Theme
	content := page.Notes
	width := r.pt(compose.PageWidthPt)
	left := r.pt(marginPt)
	textWidth := width - 2*left

	r.fillGradient(dc, theme.Background, theme.BackgroundAlt)

	dc.SetFontFace(r.face(r.bold, 24))
	dc.SetColor(theme.Accent)
	dc.DrawStringAnchored(content.Title, width/2, r.pt(headerTopPt), 0.5, 0.5)

	dc.DrawRectangle(width/2-r.pt(50), r.pt(headerTopPt+18), r.pt(100), r.pt(2))
	dc.Fill()

	y := r.pt(headerTopPt + 60)
	dc.SetFontFace(r.face(r.regular, 13))
	dc.SetColor(theme.Ink)
	for _, bullet := range content.Bullets {
		lines := dc.WordWrap("• "+bullet, textWidth)
		for _, line := range lines {
			dc.DrawString(line, left, y)
			y += r.pt(20)
		}
		y += r.pt(6)
	}
}

// fillGradient paints a vertical background gradient over the whole page.
func (r *pageRenderer) fillGradient(dc *gg.Context, top, bottom color.RGBA) {
	width := float64(dc.Width())
	height := float64(dc.Height())

	gradient := gg.NewLinearGradient(0, 0, 0, height)
	gradient.AddColorStop(0, top)
	gradient.AddColorStop(1, bottom)

	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, width, height)
	dc.Fill()
}

// drawImageFitted scales an image uniformly to fit the given box, centered.
func (r *pageRenderer) drawImageFitted(dc *gg.Context, img image.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	sx := w / float64(bounds.Dx())
	sy := h / float64(bounds.Dy())
	s := math.Min(sx, sy)

	drawW := float64(bounds.Dx()) * s
	drawH := float64(bounds.Dy()) * s

	dc.Push()
	dc.Translate(x+(w-drawW)/2, y+(h-drawH)/2)
	dc.Scale(s, s)
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}
