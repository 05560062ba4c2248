package indexed

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// Quantize returns a palette of at most n colours that best represents m,
// using median cut quantization.
func Quantize(m image.Image, n int) *Palette {
	if n <= 0 {
		return NewPalette(nil)
	}
	q := quantize.MedianCutQuantizer{}
	return PaletteFrom(q.Quantize(make(color.Palette, 0, n), m))
}
