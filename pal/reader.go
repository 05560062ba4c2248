package pal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/indexed"
	"golang.org/x/image/riff"
)

var (
	errNotEnough   = errors.New("pal: not enough palette data")
	errTooMuch     = errors.New("pal: too much palette data")
	errBadVersion  = errors.New("pal: unsupported palette version")
	errBadFormType = errors.New("pal: not a RIFF palette")
	errNoPalette   = errors.New("pal: no palette found")
)

var (
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	palettes []*indexed.Palette
}

func (d *decoder) readPalette(size uint32, r io.Reader) error {
	var tmp [headerSize]byte
	if err := readFull(r, tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if binary.LittleEndian.Uint16(tmp[0:]) != version {
		return errBadVersion
	}

	n := int(binary.LittleEndian.Uint16(tmp[2:]))
	switch want := uint32(headerSize + n*entrySize); {
	case size < want:
		return errNotEnough
	case size > want:
		return errTooMuch
	}

	colors := make([]indexed.Color, n)
	for i := range colors {
		if err := readFull(r, tmp[:]); err != nil {
			if err != io.ErrUnexpectedEOF {
				return err
			}
			return errNotEnough
		}
		colors[i] = indexed.NewColor(tmp[0], tmp[1], tmp[2], 0)
	}

	d.palettes = append(d.palettes, indexed.NewPalette(colors))

	return nil
}

func (d *decoder) readChunks(r *riff.Reader) error {
	for {
		id, size, data, err := r.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return err
			}
			if listType != palType {
				return fmt.Errorf("pal: unsupported list type %q", listType[:])
			}
			if err := d.readChunks(list); err != nil {
				return err
			}
		case dataType:
			if err := d.readPalette(size, data); err != nil {
				return fmt.Errorf("palette %d: %w", len(d.palettes), err)
			}
		}
	}
}

func (d *decoder) decode(r io.Reader) error {
	formType, rr, err := riff.NewReader(r)
	if err != nil {
		return err
	}
	if formType != palType {
		return errBadFormType
	}

	if err := d.readChunks(rr); err != nil {
		return err
	}

	if len(d.palettes) == 0 {
		return errNoPalette
	}

	return nil
}

// Decode reads a RIFF palette file from r and returns the first palette.
func Decode(r io.Reader) (*indexed.Palette, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.palettes[0], nil
}

// DecodeAll reads a RIFF palette file from r and returns every palette
// it contains in file order.
func DecodeAll(r io.Reader) ([]*indexed.Palette, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.palettes, nil
}
