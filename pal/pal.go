/*
Package pal implements a decoder and encoder for Microsoft RIFF palette
files.

A file is a RIFF form of type "PAL " holding one or more "data" chunks,
optionally grouped in a "LIST" of type "PAL ". Each data chunk is a
LOGPALETTE structure: a 16-bit version (always 0x0300) and a 16-bit entry
count, both little-endian, followed by four bytes per entry holding the
red, green and blue channels and a flags byte. Flags are written as zero
and ignored when reading, so the alpha channel is not stored.
*/
package pal

const (
	version       = 0x0300
	headerSize    = 4
	entrySize     = 4
	maxEntries    = 0xffff
	riffChunkSize = 8
)
