package indexed

import "image/color"

// Palette is an ordered table of colours. The entries are fixed when the
// palette is created so a Palette is safe to share between goroutines.
type Palette struct {
	colors       []Color
	defaultColor Color
}

// NewPalette returns a Palette holding a copy of colors in the same order.
func NewPalette(colors []Color) *Palette {
	p := &Palette{
		colors:       make([]Color, len(colors)),
		defaultColor: NewColor(0, 0, 0, 0),
	}
	copy(p.colors, colors)
	return p
}

// PaletteFrom converts a color.Palette to a Palette.
func PaletteFrom(cp color.Palette) *Palette {
	colors := make([]Color, len(cp))
	for i, c := range cp {
		colors[i] = ColorFrom(c)
	}
	return NewPalette(colors)
}

// DefaultPalette returns the standard 256 colour VGA palette.
func DefaultPalette() *Palette {
	return NewPalette(vga[:])
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns the entry at index i. If i is out of range the default
// colour is returned instead, so callers can pass any pixel value
// without checking it against Len first.
func (p *Palette) Color(i int) Color {
	if i >= 0 && i < len(p.colors) {
		return p.colors[i]
	}
	return p.defaultColor
}

// Colors returns a copy of the palette entries.
func (p *Palette) Colors() []Color {
	colors := make([]Color, len(p.colors))
	copy(colors, p.colors)
	return colors
}

// Clone returns a deep copy of the palette. The default colour of the
// copy is set by NewPalette rather than copied.
func (p *Palette) Clone() *Palette {
	colors := make([]Color, 0, len(p.colors))
	for i := 0; i < p.Len(); i++ {
		colors = append(colors, p.Color(i).Clone())
	}
	return NewPalette(colors)
}

// Model returns the palette as a color.Palette, for use with
// image.NewPaletted.
func (p *Palette) Model() color.Palette {
	cp := make(color.Palette, len(p.colors))
	for i, c := range p.colors {
		cp[i] = c
	}
	return cp
}
