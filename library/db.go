package library

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/indexed"
	_ "github.com/mattn/go-sqlite3" // register driver
)

// DefaultName is the name that resolves to indexed.DefaultPalette when no
// palette has been stored under it.
const DefaultName = "default"

// DB is a collection of named palettes stored in SQLite.
type DB struct {
	db *sql.DB
}

// NewDB opens or creates the database at file.
func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE INDEX IF NOT EXISTS palette_sha1 ON palette (sha1)"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

func checksum(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}

// Put stores p under name, replacing any palette already stored with that
// name.
func (db *DB) Put(name string, p *indexed.Palette) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err = db.db.Exec("INSERT OR REPLACE INTO palette (name, sha1, data) VALUES (?, ?, ?)", name, checksum(b), b); err != nil {
		return err
	}
	return nil
}

// Get returns the palette stored under name. If there is no such palette
// nil is returned with no error, unless name is DefaultName.
func (db *DB) Get(name string) (*indexed.Palette, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT data FROM palette WHERE name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		if name == DefaultName {
			return indexed.DefaultPalette(), nil
		}
		return nil, nil
	case nil:
		p := new(indexed.Palette)
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		return p, nil
	default:
		return nil, err
	}
}

// Has reports whether a palette is stored under name.
func (db *DB) Has(name string) (bool, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM palette WHERE name = ?", name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindBySHA1 returns the name of a palette whose encoded form has the
// given checksum, or an empty string if there is none.
func (db *DB) FindBySHA1(sum string) (string, error) {
	var name string
	switch err := db.db.QueryRow("SELECT name FROM palette WHERE sha1 = ? ORDER BY name LIMIT 1", sum).Scan(&name); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return name, nil
	default:
		return "", err
	}
}

// Names returns the names of all stored palettes in sorted order.
func (db *DB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM palette ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Delete removes the palette stored under name, if any.
func (db *DB) Delete(name string) error {
	if _, err := db.db.Exec("DELETE FROM palette WHERE name = ?", name); err != nil {
		return err
	}
	return nil
}
