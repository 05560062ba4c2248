/*
Package library maintains a collection of named palettes in a SQLite
database, importing them from and exporting them to RIFF palette files
or deriving them from images.
*/
package library

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/indexed"
	"github.com/bodgit/indexed/pal"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
)

// Ext is the file extension used for RIFF palette files.
const Ext = ".pal"

var errNoName = errors.New("library: empty palette name")

// Library imports and exports palettes for a DB.
type Library struct {
	db     *DB
	logger *log.Logger
}

// New returns a Library backed by db. Progress is reported to logger.
func New(db *DB, logger *log.Logger) *Library {
	return &Library{
		db:     db,
		logger: logger,
	}
}

// NameFromFile returns the palette name used for file, its base name
// without the extension.
func NameFromFile(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (l *Library) store(name string, p *indexed.Palette) error {
	if name == "" {
		return errNoName
	}

	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	existing, err := l.db.FindBySHA1(checksum(b))
	if err != nil {
		return err
	}
	switch existing {
	case "":
	case name:
		l.logger.Printf("Palette %q is unchanged\n", name)
		return nil
	default:
		// Only skip a new name, otherwise name would keep stale content
		exists, err := l.db.Has(name)
		if err != nil {
			return err
		}
		if !exists {
			l.logger.Printf("Palette %q is identical to %q, skipping\n", name, existing)
			return nil
		}
	}

	if err := l.db.Put(name, p); err != nil {
		return err
	}
	l.logger.Printf("Stored palette %q with %d colors\n", name, p.Len())

	return nil
}

func decodeFile(file string) (*indexed.Palette, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := pal.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}

// Import reads the RIFF palette file and stores it under the name
// returned by NameFromFile.
func (l *Library) Import(file string) error {
	p, err := decodeFile(file)
	if err != nil {
		return err
	}
	return l.store(NameFromFile(file), p)
}

// Export writes the palette stored under name to file.
func (l *Library) Export(name, file string) error {
	p, err := l.db.Get(name)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("library: no palette named %q", name)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pal.Encode(f, p); err != nil {
		return err
	}
	l.logger.Printf("Exported palette %q to \"%s\"\n", name, file)

	return f.Close()
}

// QuantizeImage reduces the image in file to at most n colors and stores
// the resulting palette under name.
func (l *Library) QuantizeImage(file, name string, n int) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	l.logger.Printf("Quantizing %s image \"%s\" to %d colors\n", format, file, n)

	return l.store(name, indexed.Quantize(m, n))
}
