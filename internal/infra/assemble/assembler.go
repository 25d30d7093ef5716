// Package assemble binds rendered page images into a single PDF document.
package assemble

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"menubuilder/internal/compose"
)

const fallbackFileBase = "menu"

// RenderFunc rasterizes one composed page into an image.
type RenderFunc func(page compose.Page) (image.Image, error)

// PDFAssembler renders pages strictly in order and embeds each image as one
// full A4 page. A render failure aborts the whole document; no partial PDF is
// ever produced.
type PDFAssembler struct {
	logger *slog.Logger
}

// NewPDFAssembler is the constructor for PDFAssembler.
func NewPDFAssembler(logger *slog.Logger) *PDFAssembler {
	return &PDFAssembler{logger: logger}
}

// Assemble produces the finished PDF bytes for an ordered page sequence.
func (a *PDFAssembler) Assemble(pages []compose.Page, render RenderFunc) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New("no pages to assemble")
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, page := range pages {
		img, err := render(page)
		if err != nil {
			return nil, errors.Wrapf(err, "render page %d of %d (%s)", i+1, len(pages), page.Kind)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, errors.Wrapf(err, "encode page %d image", i+1)
		}

		name := fmt.Sprintf("page-%d", i+1)
		options := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, options, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, compose.PageWidthPt, compose.PageHeightPt, false, options, 0, "")

		if err := pdf.Error(); err != nil {
			return nil, errors.Wrapf(err, "embed page %d", i+1)
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	a.logger.Debug("assembled pdf document",
		slog.Int("pages", len(pages)),
		slog.Int("bytes", out.Len()))

	return out.Bytes(), nil
}

// FileName derives the download file name from the business name, falling
// back to a generic name when it is blank. Path separators are stripped so
// the result is safe inside a Content-Disposition header.
func FileName(businessName string) string {
	base := strings.TrimSpace(businessName)
	base = strings.NewReplacer("/", "-", "\\", "-", "\"", "").Replace(base)
	if base == "" {
		base = fallbackFileBase
	}

	return base + ".pdf"
}
