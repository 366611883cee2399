// Package collage composites fitted photographs onto page canvases and
// drives the page-by-page batch build. Each page owns its canvas buffer
// exclusively while it is being built; pages share nothing but the
// read-only configuration and the serialized output namer.
package collage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/kozaktomas/collage-maker/internal/config"
	"github.com/kozaktomas/collage-maker/internal/imagefit"
	"github.com/kozaktomas/collage-maker/internal/layout"
)

// TextFaces are the rendering faces for one page build. truetype faces are
// not safe for concurrent use, so parallel page builds must not share them.
type TextFaces struct {
	Caption font.Face
	Panel   font.Face
}

// BuildPage rasterizes one batch of images into a fresh canvas: grid
// layout, per-image fit, alpha-aware paste, caption stamp and the optional
// info panel. The returned canvas is ready to encode.
func BuildPage(cfg *config.Config, faces TextFaces, images []imagefit.Source, runID string) (*image.RGBA, error) {
	grid, err := layout.PlanGrid(len(images), cfg.Width, cfg.Height, cfg.Padding)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(faces.Caption)

	var border *imagefit.Border
	if cfg.Border {
		border = &imagefit.Border{Thickness: cfg.BorderThickness, Color: cfg.BorderColor}
	}

	for i, src := range images {
		orig := src.Image.Bounds()
		fitted := imagefit.Fit(src.Image, grid.CellW, grid.CellH, cfg.Width, cfg.Height, border)
		w, h := fitted.Bounds().Dx(), fitted.Bounds().Dy()

		x, y := grid.Offset(i, cfg.Padding, w, h, cfg.Align)

		date := FormatDate(src.TakenAt, cfg.DateFormat)
		if cfg.Verbose {
			fmt.Printf("Processing image '%s': created %s, original size %dx%d, scaled size %dx%d\n",
				src.Name, date, orig.Dx(), orig.Dy(), w, h)
		}

		op := draw.Over
		if fitted.Opaque() {
			op = draw.Src
		}
		draw.Draw(canvas, image.Rect(x, y, x+w, y+h), fitted, image.Point{}, op)

		// Black shadow one pixel down-right, white on top, so the date
		// stays legible on both light and dark photos.
		tx := float64(x + cfg.BorderThickness)
		ty := float64(y + cfg.BorderThickness)
		dc.SetRGBA(0, 0, 0, cfg.TextOpacity)
		dc.DrawStringAnchored(date, tx+1, ty+1, 0, 1)
		dc.SetRGBA(1, 1, 1, cfg.TextOpacity)
		dc.DrawStringAnchored(date, tx, ty, 0, 1)
	}

	if cfg.InfoBox {
		if err := placeInfoPanel(canvas, cfg, faces.Panel, runID); err != nil {
			fmt.Println("Could not find an empty spot for the info box.")
		}
	}

	return canvas, nil
}
