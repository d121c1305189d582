package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/jrouvier/cadence/internal/db"
)

// artistSep joins the artist list into a single column. Unit separator
// cannot appear in artist names.
const artistSep = "\x1f"

// SQLiteStore is the sqlite-backed catalog. An empty path opens an
// in-memory database, so nothing outlives the process unless a file
// path is configured explicitly.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a catalog database at path.
// An empty path opens ":memory:".
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS songs (
			id               INTEGER PRIMARY KEY,
			name             TEXT NOT NULL,
			artists          TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Add inserts a song. Returns ErrDuplicateSong if the ID is taken.
func (s *SQLiteStore) Add(song Song) error {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM songs WHERE id = ?`, song.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return fmt.Errorf("%w: id %d", ErrDuplicateSong, song.ID)
	}
	_, err = s.db.Exec(`
		INSERT INTO songs (id, name, artists, duration_seconds)
		VALUES (?, ?, ?, ?)
	`, song.ID, song.Name, strings.Join(song.Artists, artistSep), int64(song.Duration.Seconds()))
	return err
}

// AddAll inserts a batch of songs in a single transaction.
func (s *SQLiteStore) AddAll(songs []Song) error {
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO songs (id, name, artists, duration_seconds)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, song := range songs {
			_, err := stmt.Exec(song.ID, song.Name,
				strings.Join(song.Artists, artistSep),
				int64(song.Duration.Seconds()))
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Remove deletes a song by ID. Returns ErrSongNotFound if absent.
func (s *SQLiteStore) Remove(id int64) error {
	result, err := s.db.Exec(`DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrSongNotFound, id)
	}
	return nil
}

// Lookup returns the song with the given ID.
func (s *SQLiteStore) Lookup(id int64) (Song, bool) {
	row := s.db.QueryRow(`
		SELECT id, name, artists, duration_seconds FROM songs WHERE id = ?
	`, id)
	song, err := scanSong(row)
	if err != nil {
		return Song{}, false
	}
	return song, true
}

// Len returns the number of songs in the catalog.
func (s *SQLiteStore) Len() int {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return 0
	}
	return count
}

// All returns every song, ordered by ID.
func (s *SQLiteStore) All() []Song {
	rows, err := s.db.Query(`
		SELECT id, name, artists, duration_seconds FROM songs ORDER BY id
	`)
	if err != nil {
		return nil
	}
	defer rows.Close()
	return collectSongs(rows)
}

// Longest returns the n longest songs by duration, descending.
func (s *SQLiteStore) Longest(n int) ([]Song, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	rows, err := s.db.Query(`
		SELECT id, name, artists, duration_seconds
		FROM songs
		ORDER BY duration_seconds DESC, id
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSongs(rows), rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (Song, error) {
	var song Song
	var artists string
	var seconds int64
	if err := row.Scan(&song.ID, &song.Name, &artists, &seconds); err != nil {
		return Song{}, err
	}
	if artists != "" {
		song.Artists = strings.Split(artists, artistSep)
	}
	song.Duration = time.Duration(seconds) * time.Second
	return song, nil
}

func collectSongs(rows *sql.Rows) []Song {
	var songs []Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return songs
		}
		songs = append(songs, song)
	}
	return songs
}
