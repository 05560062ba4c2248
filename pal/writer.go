package pal

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bodgit/indexed"
)

var riffType = []byte{'R', 'I', 'F', 'F'}

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) writeUint32(v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	_, err := e.w.Write(tmp[:])
	return err
}

func (e *encoder) writePalette(p *indexed.Palette) error {
	if _, err := e.w.Write(dataType[:]); err != nil {
		return err
	}
	if err := e.writeUint32(uint32(headerSize + p.Len()*entrySize)); err != nil {
		return err
	}

	var tmp [headerSize]byte
	binary.LittleEndian.PutUint16(tmp[0:], version)
	binary.LittleEndian.PutUint16(tmp[2:], uint16(p.Len()))
	if _, err := e.w.Write(tmp[:]); err != nil {
		return err
	}

	for _, c := range p.Colors() {
		if _, err := e.w.Write([]byte{c.R, c.G, c.B, 0x00}); err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) encode(palettes []*indexed.Palette) error {
	size := uint32(len(palType))
	for i, p := range palettes {
		if p.Len() > maxEntries {
			return fmt.Errorf("pal: palette %d has more than %d entries", i, maxEntries)
		}
		size += riffChunkSize + uint32(headerSize+p.Len()*entrySize)
	}

	if _, err := e.w.Write(riffType); err != nil {
		return err
	}
	if err := e.writeUint32(size); err != nil {
		return err
	}
	if _, err := e.w.Write(palType[:]); err != nil {
		return err
	}

	for _, p := range palettes {
		if err := e.writePalette(p); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the palette p to w as a RIFF palette file.
func Encode(w io.Writer, p *indexed.Palette) error {
	return EncodeAll(w, []*indexed.Palette{p})
}

// EncodeAll writes every palette to w as consecutive data chunks of a
// single RIFF palette file.
func EncodeAll(w io.Writer, palettes []*indexed.Palette) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(palettes)
}
