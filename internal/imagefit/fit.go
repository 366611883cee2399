// Package imagefit loads source photographs and prepares them for placement
// on a collage page: orientation correction, aspect-preserving scaling and
// optional border augmentation.
package imagefit

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Border describes the solid frame drawn around a fitted image.
type Border struct {
	Thickness int
	Color     color.NRGBA
}

// Fit prepares img for a cellW x cellH grid cell on a pageW x pageH page.
//
// When the image's own orientation (landscape vs portrait) disagrees with
// the page's, the image is rotated 90 degrees so most photos follow the
// dominant axis of the page. It is then scaled uniformly to fit entirely
// inside the cell with Lanczos resampling, and finally padded with the
// border, if any. The border is applied after scaling so its thickness is a
// fixed pixel width regardless of image size.
func Fit(img image.Image, cellW, cellH, pageW, pageH int, border *Border) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if (w > h && pageW < pageH) || (w < h && pageW > pageH) {
		img = imaging.Rotate90(img)
		w, h = h, w
	}

	scale := math.Min(float64(cellW)/float64(w), float64(cellH)/float64(h))
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	fitted := imaging.Resize(img, newW, newH, imaging.Lanczos)

	if border != nil && border.Thickness > 0 {
		t := border.Thickness
		framed := imaging.New(newW+2*t, newH+2*t, border.Color)
		fitted = imaging.Paste(framed, fitted, image.Pt(t, t))
	}

	return fitted
}
