// Package catalog stores the song records the rest of the application
// refers to by ID. Two backends implement the same surface: an in-memory
// map (Store) and a sqlite-backed store (SQLiteStore).
package catalog

import (
	"errors"
	"time"
)

// Song is a single catalog record.
type Song struct {
	ID       int64
	Name     string
	Artists  []string // first entry is the primary artist
	Duration time.Duration
}

// PrimaryArtist returns the first listed artist, or "Unknown" if the
// song has no artists.
func (s Song) PrimaryArtist() string {
	if len(s.Artists) == 0 {
		return "Unknown"
	}
	return s.Artists[0]
}

// Catalog is the read-only surface consumed by the core components.
type Catalog interface {
	// Lookup returns the song with the given ID.
	Lookup(id int64) (Song, bool)
	// Longest returns the n longest songs by duration, descending.
	Longest(n int) ([]Song, error)
}

var (
	ErrDuplicateSong = errors.New("song already exists")
	ErrSongNotFound  = errors.New("song not found")
	ErrInvalidCount  = errors.New("count must be greater than 0")
)
