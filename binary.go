package indexed

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const maxEntries = 0xffff

var (
	errNotEnough = errors.New("indexed: not enough palette data")
	errTooMuch   = errors.New("indexed: too much palette data")
)

// MarshalBinary encodes the palette as a little-endian 16-bit entry count
// followed by the R, G, B and A bytes of each entry.
func (p *Palette) MarshalBinary() ([]byte, error) {
	if len(p.colors) > maxEntries {
		return nil, fmt.Errorf("indexed: more than %d entries", maxEntries)
	}

	b := new(bytes.Buffer)
	b.Grow(2 + len(p.colors)*4)

	if err := binary.Write(b, binary.LittleEndian, uint16(len(p.colors))); err != nil {
		return nil, err
	}

	for _, c := range p.colors {
		if _, err := b.Write([]byte{c.R, c.G, c.B, c.A}); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes a palette previously encoded with MarshalBinary,
// replacing the current entries.
func (p *Palette) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return errNotEnough
	}

	colors := make([]Color, n)
	for i := range colors {
		var tmp [4]byte
		if _, err := io.ReadFull(r, tmp[:]); err != nil {
			return errNotEnough
		}
		colors[i] = NewColor(tmp[0], tmp[1], tmp[2], tmp[3])
	}

	if r.Len() > 0 {
		return errTooMuch
	}

	*p = *NewPalette(colors)

	return nil
}
