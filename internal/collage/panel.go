package collage

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/kozaktomas/collage-maker/internal/config"
	"github.com/kozaktomas/collage-maker/internal/layout"
)

// ErrNoFreeRegion means no tile on the page can host the info panel; the
// panel is omitted and the page is still valid.
var ErrNoFreeRegion = errors.New("no free region for the info panel")

const (
	panelPadding = 10
	// Extra pixels between panel text lines.
	panelLineGap = 4
)

// renderInfoPanel draws the translucent info panel: run date, run id and
// the effective configuration.
func renderInfoPanel(cfg *config.Config, face font.Face, runID string) image.Image {
	text := fmt.Sprintf("Date: %s\nRun: %s\nParameters:\n%s",
		FormatDate(time.Now(), cfg.DateFormat), runID, cfg.Summary())
	lines := strings.Split(text, "\n")

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	var maxW float64
	for _, line := range lines {
		if w, _ := measure.MeasureString(line); w > maxW {
			maxW = w
		}
	}
	lineH := measure.FontHeight() + panelLineGap

	w := int(maxW) + 2*panelPadding
	h := int(lineH*float64(len(lines))) + 2*panelPadding

	dc := gg.NewContext(w, h)
	dc.SetRGBA255(128, 128, 128, 128)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	y := float64(panelPadding)
	for _, line := range lines {
		dc.DrawStringAnchored(line, panelPadding, y, 0, 1)
		y += lineH
	}

	return dc.Image()
}

// placeInfoPanel renders the panel and pastes it into the first free tile
// of the page. The free-region scan works on the panel's own tiling and
// does not consult which cells hold photos, so the panel may cover one;
// that matches the layout design, which treats the panel as an annotation
// rather than a grid participant.
func placeInfoPanel(canvas *image.RGBA, cfg *config.Config, face font.Face, runID string) error {
	panel := renderInfoPanel(cfg, face, runID)
	b := panel.Bounds()

	x, y, ok := layout.FindFreeRegion(cfg.Width, cfg.Height, cfg.Padding, b.Dx(), b.Dy())
	if !ok {
		return ErrNoFreeRegion
	}

	draw.Draw(canvas, image.Rect(x, y, x+b.Dx(), y+b.Dy()), panel, b.Min, draw.Over)
	return nil
}
