package playlist

import "github.com/jrouvier/cadence/internal/songlist"

// change is one reversible log entry. The set of implementations is
// closed: one variant per mutation kind, each carrying exactly the data
// its inverse needs. Sort and shuffle reorder every node and have no
// cheap inverse, so their variant carries a full snapshot instead.
type change interface {
	undo(p *Playlist) error
}

type renameChange struct {
	prev string
}

func (c renameChange) undo(p *Playlist) error {
	p.name = c.prev
	return nil
}

// addChange carries nothing: the inverse of an append is removing the
// current last element.
type addChange struct{}

func (c addChange) undo(p *Playlist) error {
	_, err := p.songs.Remove(p.songs.Len() - 1)
	return err
}

// removeChange puts the entry back at its original index with its
// original added-at timestamp.
type removeChange struct {
	index int
	entry songlist.Entry
}

func (c removeChange) undo(p *Playlist) error {
	return p.songs.InsertEntry(c.index, c.entry)
}

type moveChange struct {
	from int
	to   int
}

func (c moveChange) undo(p *Playlist) error {
	return p.songs.Move(c.to, c.from)
}

// reverseChange is self-inverse.
type reverseChange struct{}

func (c reverseChange) undo(p *Playlist) error {
	p.songs.Reverse()
	return nil
}

// snapshotChange restores the full pre-mutation sequence; used for both
// sort and shuffle.
type snapshotChange struct {
	entries []songlist.Entry
}

func (c snapshotChange) undo(p *Playlist) error {
	p.songs.Restore(c.entries)
	return nil
}
