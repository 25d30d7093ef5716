package compose

// A4 portrait page size in PDF points (1 pt = 1/72 inch).
const (
	PageWidthPt  = 595.28
	PageHeightPt = 841.89
)
