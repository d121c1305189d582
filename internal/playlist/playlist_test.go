package playlist

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/jrouvier/cadence/internal/catalog"
	"github.com/jrouvier/cadence/internal/songlist"
)

type stubCatalog map[int64]catalog.Song

func (c stubCatalog) Lookup(id int64) (catalog.Song, bool) {
	song, ok := c[id]
	return song, ok
}

func songIDs(p *Playlist) []int64 {
	return slices.Collect(p.Songs())
}

func newPlaylist(t *testing.T, cat songlist.Catalog, songs ...int64) *Playlist {
	t.Helper()
	p := New("test", cat)
	for _, s := range songs {
		p.AddSong(s)
	}
	return p
}

func TestPlaylist_UndoRename(t *testing.T) {
	p := New("original", nil)
	p.Rename("renamed")
	if got := p.Name(); got != "renamed" {
		t.Fatalf("Name() = %q, want %q", got, "renamed")
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := p.Name(); got != "original" {
		t.Errorf("Name() after undo = %q, want %q", got, "original")
	}
}

func TestPlaylist_UndoAdd(t *testing.T) {
	p := newPlaylist(t, nil, 1, 2, 3)

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 2}; !slices.Equal(got, want) {
		t.Errorf("songs = %v, want %v", got, want)
	}
}

func TestPlaylist_UndoRemove_RestoresIndex(t *testing.T) {
	p := newPlaylist(t, nil, 1, 2, 3, 4)

	if err := p.RemoveSong(1); err != nil {
		t.Fatalf("RemoveSong failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 3, 4}; !slices.Equal(got, want) {
		t.Fatalf("songs = %v, want %v", got, want)
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	// The song returns to its original position, not the tail.
	if got, want := songIDs(p), []int64{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("songs after undo = %v, want %v", got, want)
	}
}

func TestPlaylist_UndoRemove_KeepsTimestamp(t *testing.T) {
	p := New("test", nil)
	p.AddSong(1)
	p.AddSong(2)
	before := p.Entries()[0].AddedAt

	if err := p.RemoveSong(0); err != nil {
		t.Fatalf("RemoveSong failed: %v", err)
	}
	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if got := p.Entries()[0].AddedAt; !got.Equal(before) {
		t.Errorf("AddedAt after undo = %v, want %v", got, before)
	}
}

func TestPlaylist_UndoMove(t *testing.T) {
	p := newPlaylist(t, nil, 1, 2, 3, 4)

	if err := p.MoveSong(0, 2); err != nil {
		t.Fatalf("MoveSong failed: %v", err)
	}
	if got, want := songIDs(p), []int64{2, 3, 1, 4}; !slices.Equal(got, want) {
		t.Fatalf("songs = %v, want %v", got, want)
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("songs after undo = %v, want %v", got, want)
	}
}

func TestPlaylist_UndoReverse(t *testing.T) {
	p := newPlaylist(t, nil, 1, 2, 3)

	p.ReverseSongs()
	if got, want := songIDs(p), []int64{3, 2, 1}; !slices.Equal(got, want) {
		t.Fatalf("songs = %v, want %v", got, want)
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("songs after undo = %v, want %v", got, want)
	}
}

func TestPlaylist_UndoSort(t *testing.T) {
	cat := stubCatalog{
		1: {ID: 1, Name: "c", Duration: 180 * time.Second},
		2: {ID: 2, Name: "a", Duration: 300 * time.Second},
		3: {ID: 3, Name: "b", Duration: 120 * time.Second},
	}
	p := newPlaylist(t, cat, 1, 2, 3)

	if err := p.SortSongs(songlist.SortByDuration, true); err != nil {
		t.Fatalf("SortSongs failed: %v", err)
	}
	if got, want := songIDs(p), []int64{2, 1, 3}; !slices.Equal(got, want) {
		t.Fatalf("songs = %v, want %v", got, want)
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("songs after undo = %v, want %v", got, want)
	}
}

func TestPlaylist_UndoShuffle(t *testing.T) {
	cat := stubCatalog{
		1: {ID: 1, Artists: []string{"X"}},
		2: {ID: 2, Artists: []string{"Y"}},
		3: {ID: 3, Artists: []string{"Z"}},
		4: {ID: 4, Artists: []string{"X"}},
	}
	p := newPlaylist(t, cat, 1, 2, 3, 4)
	before := songIDs(p)

	rng := rand.New(rand.NewPCG(5, 5))
	if err := p.ShuffleSongs(rng); err != nil {
		t.Fatalf("ShuffleSongs failed: %v", err)
	}

	if err := p.Undo(1); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := songIDs(p); !slices.Equal(got, before) {
		t.Errorf("songs after undo = %v, want %v", got, before)
	}
}

func TestPlaylist_FailedMutationRecordsNothing(t *testing.T) {
	cat := stubCatalog{
		1: {ID: 1, Artists: []string{"X"}},
		2: {ID: 2, Artists: []string{"X"}},
		3: {ID: 3, Artists: []string{"X"}},
	}
	p := newPlaylist(t, cat, 1, 2, 3)
	recorded := p.Changes()

	if err := p.RemoveSong(10); err == nil {
		t.Fatal("RemoveSong(10) succeeded, want error")
	}
	if err := p.MoveSong(0, 10); err == nil {
		t.Fatal("MoveSong(0, 10) succeeded, want error")
	}
	if err := p.SortSongs(songlist.SortBy(99), false); err == nil {
		t.Fatal("SortSongs with invalid criterion succeeded, want error")
	}
	rng := rand.New(rand.NewPCG(1, 1))
	if err := p.ShuffleSongs(rng); !errors.Is(err, songlist.ErrShuffleInfeasible) {
		t.Fatalf("ShuffleSongs error = %v, want ErrShuffleInfeasible", err)
	}

	if got := p.Changes(); got != recorded {
		t.Errorf("Changes() = %d, want %d (failed mutations must not log)", got, recorded)
	}
}

func TestPlaylist_UndoMultiple(t *testing.T) {
	p := newPlaylist(t, nil, 1, 2)
	p.Rename("other")
	if err := p.MoveSong(0, 1); err != nil {
		t.Fatalf("MoveSong failed: %v", err)
	}

	// Undo the move and the rename in one call, keeping the adds.
	if err := p.Undo(2); err != nil {
		t.Fatalf("Undo(2) failed: %v", err)
	}
	if got := p.Name(); got != "test" {
		t.Errorf("Name() = %q, want %q", got, "test")
	}
	if got, want := songIDs(p), []int64{1, 2}; !slices.Equal(got, want) {
		t.Errorf("songs = %v, want %v", got, want)
	}
	if got := p.Changes(); got != 2 {
		t.Errorf("Changes() = %d, want 2", got)
	}
}

func TestPlaylist_Undo_InvalidCount(t *testing.T) {
	p := newPlaylist(t, nil, 1)

	for _, n := range []int{0, -1} {
		if err := p.Undo(n); !errors.Is(err, ErrInvalidUndoCount) {
			t.Errorf("Undo(%d) error = %v, want ErrInvalidUndoCount", n, err)
		}
	}
	if err := p.Undo(2); !errors.Is(err, ErrUndoDepthExceeded) {
		t.Errorf("Undo(2) error = %v, want ErrUndoDepthExceeded", err)
	}
	// A rejected undo leaves the log alone.
	if got := p.Changes(); got != 1 {
		t.Errorf("Changes() = %d, want 1", got)
	}
}

func TestPlaylist_SortThenUndo_Scenario(t *testing.T) {
	cat := stubCatalog{
		1: {ID: 1, Name: "Song A", Duration: 180 * time.Second},
		2: {ID: 2, Name: "Song B", Duration: 240 * time.Second},
		3: {ID: 3, Name: "Song C", Duration: 200 * time.Second},
		4: {ID: 4, Name: "Song D", Duration: 300 * time.Second},
	}
	p := newPlaylist(t, cat, 1, 2, 3, 4)

	if err := p.SortSongs(songlist.SortByDuration, true); err != nil {
		t.Fatalf("SortSongs failed: %v", err)
	}
	if got, want := songIDs(p), []int64{4, 2, 3, 1}; !slices.Equal(got, want) {
		t.Fatalf("songs after sort = %v, want %v", got, want)
	}

	if err := p.RemoveSong(0); err != nil {
		t.Fatalf("RemoveSong failed: %v", err)
	}
	if got, want := songIDs(p), []int64{2, 3, 1}; !slices.Equal(got, want) {
		t.Fatalf("songs after remove = %v, want %v", got, want)
	}

	// Two undos walk back through the remove and then the sort.
	if err := p.Undo(2); err != nil {
		t.Fatalf("Undo(2) failed: %v", err)
	}
	if got, want := songIDs(p), []int64{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("songs after undo = %v, want %v", got, want)
	}
}
