package indexed

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit per channel RGBA colour. The alpha channel is carried
// but never interpreted.
type Color struct {
	R, G, B, A uint8
}

// NewColor returns a Color with the given channel values.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFrom converts any color.Color to a Color. The alpha channel is
// copied as-is. A nil color.Color converts to the zero Color.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Set overwrites all four channels.
func (c *Color) Set(r, g, b, a uint8) {
	c.R, c.G, c.B, c.A = r, g, b, a
}

// SetFrom overwrites all four channels with those of o.
func (c *Color) SetFrom(o Color) {
	c.Set(o.R, o.G, o.B, o.A)
}

// Hex packs the red, green and blue channels as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.B) + uint32(c.G)*0x100 + uint32(c.R)*0x10000
}

// Clone returns a copy of c.
func (c Color) Clone() Color {
	return NewColor(c.R, c.G, c.B, c.A)
}

// RGBA implements the color.Color interface. The colour is always
// reported as opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// String returns the colour as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", c.Hex())
}
