// Package layout computes the grid geometry of a collage page: how many
// columns and rows a batch of images needs, where each image sits inside
// its cell, and where a free region for the info panel can be found.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when the requested page size, padding and
// image count cannot produce a grid with positive cell dimensions.
var ErrInvalidGeometry = errors.New("invalid collage geometry")

// Align controls the horizontal position of an image inside its cell.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign validates an alignment name from the CLI or environment.
func ParseAlign(s string) (Align, error) {
	switch Align(s) {
	case AlignLeft, AlignCenter, AlignRight:
		return Align(s), nil
	default:
		return "", fmt.Errorf("invalid alignment %q (supported: left, center, right)", s)
	}
}

// Grid describes the cell layout of one collage page.
type Grid struct {
	Cols  int
	Rows  int
	CellW int
	CellH int
}

// PlanGrid partitions a page of pageW x pageH pixels into cells for n images
// with the given padding between cells. Columns are floor(sqrt(n)) so the
// grid leans taller than wide, matching portrait print pages.
//
// Integer division keeps every cell inside the page bounds. The caller must
// supply a page large enough for the requested count and padding; a grid
// with non-positive cell dimensions is a configuration error.
func PlanGrid(n, pageW, pageH, padding int) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("%w: no images to place", ErrInvalidGeometry)
	}

	cols := int(math.Sqrt(float64(n)))
	rows := (n + cols - 1) / cols

	cellW := (pageW - padding*(cols+1)) / cols
	cellH := (pageH - padding*(rows+1)) / rows
	if cellW <= 0 || cellH <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d page with padding %d leaves no room for %d images",
			ErrInvalidGeometry, pageW, pageH, padding, n)
	}

	return Grid{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}, nil
}

// Offset returns the top-left canvas position for the i-th image (zero
// based, row-major) with the fitted size imgW x imgH. Horizontal placement
// follows the alignment mode; vertical placement is always centered within
// the row.
func (g Grid) Offset(i, padding, imgW, imgH int, align Align) (x, y int) {
	row := i / g.Cols
	col := i % g.Cols

	switch align {
	case AlignRight:
		x = (col+1)*(g.CellW+padding) - imgW
	case AlignCenter:
		x = col*(g.CellW+padding) + (g.CellW-imgW)/2 + padding
	default: // left
		x = col*(g.CellW+padding) + padding
	}

	y = row*(g.CellH+padding) + (g.CellH-imgH)/2 + padding
	return x, y
}

// FindFreeRegion scans for a spot that can host a panel of panelW x panelH
// pixels on a pageW x pageH page. The page is tiled by the panel's own
// footprint (panel size plus padding), scanned row-major, and the first tile
// whose full footprint stays within the page bounds wins.
//
// The scan is purely geometric: it does not consult which grid cells already
// hold photos, so the panel may overlap a placed image. Returns ok=false
// when no tile fits, in which case the panel should be omitted.
func FindFreeRegion(pageW, pageH, padding, panelW, panelH int) (x, y int, ok bool) {
	if panelW <= 0 || panelH <= 0 {
		return 0, 0, false
	}

	cols := (pageW + padding) / (panelW + padding)
	rows := (pageH + padding) / (panelH + padding)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col*(panelW+padding) + padding
			y := row*(panelH+padding) + padding
			if x+panelW+padding <= pageW && y+panelH+padding <= pageH {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}
