package library

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bodgit/indexed"
	"github.com/bodgit/indexed/pal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) (*Library, *DB) {
	t.Helper()
	db := newTestDB(t)
	return New(db, log.New(io.Discard, "", 0)), db
}

func writePalette(t *testing.T, file string, p *indexed.Palette) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(file), 0o755))
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, pal.Encode(f, p))
}

func grey(n int) *indexed.Palette {
	colors := make([]indexed.Color, n)
	for i := range colors {
		v := uint8(i * 255 / n)
		colors[i] = indexed.NewColor(v, v, v, 0)
	}
	return indexed.NewPalette(colors)
}

func TestNameFromFile(t *testing.T) {
	assert.Equal(t, "vga", NameFromFile("/tmp/palettes/vga.pal"))
	assert.Equal(t, "ega.16", NameFromFile("ega.16.PAL"))
	assert.Equal(t, "plain", NameFromFile("plain"))
}

func TestImportExport(t *testing.T) {
	l, db := newTestLibrary(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "grey.pal")
	writePalette(t, in, grey(16))
	require.Nil(t, l.Import(in))

	p, err := db.Get("grey")
	require.Nil(t, err)
	require.NotNil(t, p)
	assert.Equal(t, grey(16).Colors(), p.Colors())

	// Same content under another name is skipped
	dup := filepath.Join(dir, "copy.pal")
	writePalette(t, dup, grey(16))
	require.Nil(t, l.Import(dup))
	names, err := db.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"grey"}, names)

	out := filepath.Join(dir, "out.pal")
	require.Nil(t, l.Export("grey", out))
	f, err := os.Open(out)
	require.Nil(t, err)
	defer f.Close()
	q, err := pal.Decode(f)
	require.Nil(t, err)
	assert.Equal(t, grey(16).Colors(), q.Colors())

	assert.NotNil(t, l.Export("missing", filepath.Join(dir, "missing.pal")))
	require.Nil(t, l.Export(DefaultName, filepath.Join(dir, "vga.pal")))
}

func TestImportErrors(t *testing.T) {
	l, _ := newTestLibrary(t)
	dir := t.TempDir()

	assert.NotNil(t, l.Import(filepath.Join(dir, "missing.pal")))

	bad := filepath.Join(dir, "bad.pal")
	require.Nil(t, os.WriteFile(bad, []byte("not a palette"), 0o644))
	assert.NotNil(t, l.Import(bad))

	assert.Equal(t, errNoName, l.store("", grey(2)))
}

func TestScan(t *testing.T) {
	l, db := newTestLibrary(t)
	dir := t.TempDir()

	for i, file := range []string{
		"a.pal",
		"sub/b.pal",
		"sub/deeper/c.PAL",
		".hidden/d.pal",
		"sub/.e.pal",
	} {
		writePalette(t, filepath.Join(dir, file), grey(i+2))
	}
	require.Nil(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o644))

	require.Nil(t, l.Scan(dir))

	names, err := db.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	p, err := db.Get("c")
	require.Nil(t, err)
	assert.Equal(t, 4, p.Len())
}

func TestScanError(t *testing.T) {
	l, _ := newTestLibrary(t)
	dir := t.TempDir()

	writePalette(t, filepath.Join(dir, "good.pal"), grey(4))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.pal"), []byte("RIFF"), 0o644))

	assert.NotNil(t, l.Scan(dir))
	assert.NotNil(t, l.Scan(filepath.Join(dir, "missing")))
}

func TestQuantizeImage(t *testing.T) {
	l, db := newTestLibrary(t)
	dir := t.TempDir()

	m := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.Set(x, y, color.RGBA{uint8(x * 8), uint8(y * 8), 0x80, 0xff})
		}
	}

	file := filepath.Join(dir, "gradient.png")
	f, err := os.Create(file)
	require.Nil(t, err)
	require.Nil(t, png.Encode(f, m))
	require.Nil(t, f.Close())

	require.Nil(t, l.QuantizeImage(file, "gradient", 16))

	p, err := db.Get("gradient")
	require.Nil(t, err)
	require.NotNil(t, p)
	assert.LessOrEqual(t, p.Len(), 16)
	assert.Greater(t, p.Len(), 0)

	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("nope"), 0o644))
	assert.NotNil(t, l.QuantizeImage(filepath.Join(dir, "bad.png"), "bad", 16))
}

type countingWriter struct {
	n atomic.Int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n.Add(1)
	return len(p), nil
}

func TestScanErrorStopsStores(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 300; i++ {
		writePalette(t, filepath.Join(dir, fmt.Sprintf("p%03d.pal", i)), grey(i+2))
	}
	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.pal"), []byte("RIFF"), 0o644))

	for i := 0; i < 5; i++ {
		db := newTestDB(t)
		w := new(countingWriter)
		l := New(db, log.New(w, "", 0))

		require.NotNil(t, l.Scan(dir))

		logged := w.n.Load()
		names, err := db.Names()
		require.Nil(t, err)

		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, logged, w.n.Load())
		after, err := db.Names()
		require.Nil(t, err)
		assert.Equal(t, names, after)
	}
}

func TestImportReplacesStale(t *testing.T) {
	l, db := newTestLibrary(t)
	dir := t.TempDir()

	a := filepath.Join(dir, "a.pal")
	b := filepath.Join(dir, "b.pal")
	writePalette(t, a, grey(4))
	writePalette(t, b, grey(8))
	require.Nil(t, l.Import(a))
	require.Nil(t, l.Import(b))

	// b now matches a
	writePalette(t, b, grey(4))
	require.Nil(t, l.Import(b))

	p, err := db.Get("b")
	require.Nil(t, err)
	require.NotNil(t, p)
	assert.Equal(t, grey(4).Colors(), p.Colors())

	names, err := db.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}
