// Package playlist pairs a named song sequence with an edit log so
// every mutation can be undone, most recent first.
package playlist

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/jrouvier/cadence/internal/songlist"
)

var (
	ErrInvalidUndoCount  = errors.New("number of undos must be at least 1")
	ErrUndoDepthExceeded = errors.New("not enough recorded changes to undo")
)

// Playlist owns its song sequence and the log of changes made to it.
type Playlist struct {
	name  string
	songs *songlist.List
	edits []change
}

// New creates an empty playlist. The catalog is used for sort keys and
// shuffle grouping.
func New(name string, cat songlist.Catalog) *Playlist {
	return &Playlist{
		name:  name,
		songs: songlist.New(cat),
	}
}

// Name returns the playlist name.
func (p *Playlist) Name() string {
	return p.name
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return p.songs.Len()
}

// Song returns the song ID at index.
func (p *Playlist) Song(index int) (int64, error) {
	return p.songs.At(index)
}

// Songs iterates over song IDs in current order.
func (p *Playlist) Songs() iter.Seq[int64] {
	return p.songs.All()
}

// Entries returns an ordered copy of the sequence with added-at
// timestamps, for display.
func (p *Playlist) Entries() []songlist.Entry {
	return p.songs.Snapshot()
}

// Changes returns the number of undoable changes recorded.
func (p *Playlist) Changes() int {
	return len(p.edits)
}

// Rename sets a new playlist name.
func (p *Playlist) Rename(name string) {
	p.edits = append(p.edits, renameChange{prev: p.name})
	p.name = name
}

// AddSong appends a song at the tail.
func (p *Playlist) AddSong(song int64) {
	p.songs.Append(song)
	p.edits = append(p.edits, addChange{})
}

// RemoveSong deletes the song at index.
func (p *Playlist) RemoveSong(index int) error {
	entry, err := p.songs.Remove(index)
	if err != nil {
		return err
	}
	p.edits = append(p.edits, removeChange{index: index, entry: entry})
	return nil
}

// MoveSong relocates the song at from to position to, with to counted
// over the sequence after removal.
func (p *Playlist) MoveSong(from, to int) error {
	if err := p.songs.Move(from, to); err != nil {
		return err
	}
	p.edits = append(p.edits, moveChange{from: from, to: to})
	return nil
}

// ReverseSongs reverses the whole sequence.
func (p *Playlist) ReverseSongs() {
	p.songs.Reverse()
	p.edits = append(p.edits, reverseChange{})
}

// SortSongs reorders the sequence by the given criterion. A full
// snapshot is captured first: sorting has no cheap inverse.
func (p *Playlist) SortSongs(by songlist.SortBy, descending bool) error {
	snapshot := p.songs.Snapshot()
	if err := p.songs.Sort(by, descending); err != nil {
		return err
	}
	p.edits = append(p.edits, snapshotChange{entries: snapshot})
	return nil
}

// ShuffleSongs randomizes the sequence under the artist-fairness
// constraint. Like sort, undo restores a pre-mutation snapshot.
func (p *Playlist) ShuffleSongs(rng *rand.Rand) error {
	snapshot := p.songs.Snapshot()
	if err := p.songs.Shuffle(rng); err != nil {
		return err
	}
	p.edits = append(p.edits, snapshotChange{entries: snapshot})
	return nil
}

// Undo reverses the last n changes, most recent first. Fails without
// touching anything if n < 1 or n exceeds the recorded changes.
func (p *Playlist) Undo(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidUndoCount, n)
	}
	if n > len(p.edits) {
		return fmt.Errorf("%w: have %d, want %d", ErrUndoDepthExceeded, len(p.edits), n)
	}
	for range n {
		last := p.edits[len(p.edits)-1]
		p.edits = p.edits[:len(p.edits)-1]
		if err := last.undo(p); err != nil {
			return err
		}
	}
	return nil
}
