package service

import (
	"image"

	"menubuilder/internal/compose"
)

// PageRenderer turns one composed page into a raster image at a fixed
// resolution. Implementations may use shared scratch state between calls, so
// callers must render pages strictly one at a time.
type PageRenderer interface {
	// Render rasterizes one page. A failure aborts the surrounding export.
	Render(page compose.Page) (image.Image, error)
}
