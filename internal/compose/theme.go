package compose

import (
	"image/color"

	"menubuilder/internal/domain/entity"
)

// Theme is the color/style profile a template selects. Backgrounds are given
// as a top/bottom pair so renderers can draw a vertical gradient; flat themes
// repeat the same color.
type Theme struct {
	Name          entity.Template
	Background    color.RGBA // Branding page background, top of gradient.
	BackgroundAlt color.RGBA // Branding page background, bottom of gradient.
	PageColor     color.RGBA // Menu/notes page background.
	Accent        color.RGBA // Headings and rules.
	Ink           color.RGBA // Body text.
	Muted         color.RGBA // Secondary text (dates, footers).
}

var themes = map[entity.Template]Theme{
	entity.TemplateFestival: {
		Name:          entity.TemplateFestival,
		Background:    color.RGBA{R: 0xFF, G: 0xFB, B: 0xEB, A: 0xFF},
		BackgroundAlt: color.RGBA{R: 0xFF, G: 0xF1, B: 0xF2, A: 0xFF},
		PageColor:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Accent:        color.RGBA{R: 0xEA, G: 0x58, B: 0x0C, A: 0xFF},
		Ink:           color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF},
		Muted:         color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF},
	},
	entity.TemplateMinimalist: {
		Name:          entity.TemplateMinimalist,
		Background:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		BackgroundAlt: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		PageColor:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Accent:        color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF},
		Ink:           color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF},
		Muted:         color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF},
	},
	entity.TemplateElegant: {
		Name:          entity.TemplateElegant,
		Background:    color.RGBA{R: 0xFC, G: 0xF7, B: 0xFF, A: 0xFF},
		BackgroundAlt: color.RGBA{R: 0xFB, G: 0xEF, B: 0xFF, A: 0xFF},
		PageColor:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Accent:        color.RGBA{R: 0xBE, G: 0x18, B: 0x5D, A: 0xFF},
		Ink:           color.RGBA{R: 0x2E, G: 0x10, B: 0x65, A: 0xFF},
		Muted:         color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
	},
}

// ThemeFor resolves a template to its theme. Unknown templates fall back to
// the festival profile, matching entity.ParseTemplate.
func ThemeFor(template entity.Template) Theme {
	if theme, ok := themes[template]; ok {
		return theme
	}

	return themes[entity.TemplateFestival]
}
