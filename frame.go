package indexed

import "image"

// Frame is a rectangle within a larger image, such as a single cell of a
// sprite sheet. Values are stored as given; a negative origin or size is
// not rejected.
type Frame struct {
	xStart, yStart int
	width, height  int
}

// NewFrame returns a Frame with its top-left corner at (xStart, yStart).
func NewFrame(xStart, yStart, width, height int) Frame {
	return Frame{
		xStart: xStart,
		yStart: yStart,
		width:  width,
		height: height,
	}
}

// XStart returns the x coordinate of the top-left corner.
func (f Frame) XStart() int { return f.xStart }

// YStart returns the y coordinate of the top-left corner.
func (f Frame) YStart() int { return f.yStart }

// Width returns the width of the frame.
func (f Frame) Width() int { return f.width }

// Height returns the height of the frame.
func (f Frame) Height() int { return f.height }

// Rect returns the frame as an image.Rectangle, suitable for passing to
// SubImage. image.Rect swaps the corners of a frame with a negative size.
func (f Frame) Rect() image.Rectangle {
	return image.Rect(f.xStart, f.yStart, f.xStart+f.width, f.yStart+f.height)
}

// Tile splits a sprite sheet into rows*cols frames of width by height
// pixels, in row-major order starting from the top-left corner.
func Tile(width, height, rows, cols int) []Frame {
	if rows <= 0 || cols <= 0 {
		return []Frame{}
	}
	frames := make([]Frame, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			frames = append(frames, NewFrame(width*x, height*y, width, height))
		}
	}
	return frames
}
