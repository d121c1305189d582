// Package dashboard is the string-formatted facade over the playlist,
// playback, rating and catalog components. It dispatches operations and
// renders views for a terminal; all failures come back as errors from
// the core, never as masked defaults.
package dashboard

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/jrouvier/cadence/internal/catalog"
	"github.com/jrouvier/cadence/internal/playback"
	"github.com/jrouvier/cadence/internal/playlist"
	"github.com/jrouvier/cadence/internal/rating"
	"github.com/jrouvier/cadence/internal/songlist"
)

// Catalog is the catalog surface the dashboard needs.
type Catalog interface {
	Lookup(id int64) (catalog.Song, bool)
	Longest(n int) ([]catalog.Song, error)
}

// Dashboard wires the core components together behind display methods.
type Dashboard struct {
	playlist *playlist.Playlist
	playback *playback.Playback
	ratings  *rating.Index
	catalog  Catalog
	rng      *rand.Rand
}

// New creates a dashboard over the given components. The rng drives
// shuffles, so a fixed seed makes them reproducible.
func New(pl *playlist.Playlist, pb *playback.Playback, ratings *rating.Index, cat Catalog, rng *rand.Rand) *Dashboard {
	return &Dashboard{
		playlist: pl,
		playback: pb,
		ratings:  ratings,
		catalog:  cat,
		rng:      rng,
	}
}

// Playlist mutations.

func (d *Dashboard) RenamePlaylist(name string) {
	d.playlist.Rename(name)
}

func (d *Dashboard) AddSongToPlaylist(song int64) {
	d.playlist.AddSong(song)
}

func (d *Dashboard) RemoveSongFromPlaylist(index int) error {
	return d.playlist.RemoveSong(index)
}

func (d *Dashboard) MoveSongInPlaylist(from, to int) error {
	return d.playlist.MoveSong(from, to)
}

func (d *Dashboard) ReversePlaylist() {
	d.playlist.ReverseSongs()
}

func (d *Dashboard) SortPlaylist(by songlist.SortBy, descending bool) error {
	return d.playlist.SortSongs(by, descending)
}

func (d *Dashboard) ShufflePlaylist() error {
	return d.playlist.ShuffleSongs(d.rng)
}

func (d *Dashboard) UndoPlaylistChanges(n int) error {
	return d.playlist.Undo(n)
}

// Playback operations.

func (d *Dashboard) AddSongToQueue(song int64) {
	d.playback.Enqueue(song)
}

// AddPlaylistToQueue appends every playlist song to the play queue.
func (d *Dashboard) AddPlaylistToQueue() {
	d.playback.EnqueueAll(d.playlist.Songs())
}

func (d *Dashboard) PlayNextSong() error {
	_, err := d.playback.PlayNext()
	return err
}

func (d *Dashboard) UndoLastPlay() error {
	_, err := d.playback.UndoLastPlay()
	return err
}

// Ratings.

func (d *Dashboard) RateSong(song int64, stars float64) error {
	return d.ratings.Insert(stars, song)
}

// RemoveRating clears a song's rating, reporting whether one existed.
func (d *Dashboard) RemoveRating(song int64) bool {
	return d.ratings.Delete(song)
}

// SearchSongsByRating renders the songs rated within [start, end).
func (d *Dashboard) SearchSongsByRating(start, end float64) (string, error) {
	found, err := d.ratings.Search(start, end)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "No songs found in the specified rating range", nil
	}

	ids := make([]int64, 0, len(found))
	for id := range found {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%s : %.1f\n", d.songLabel(id), found[id])
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// RatingSummary renders song counts for the five display buckets.
func (d *Dashboard) RatingSummary() string {
	ranges := []struct {
		label      string
		start, end float64
	}{
		{"0-1", 0, 1},
		{"1-2", 1, 2},
		{"2-3", 2, 3},
		{"3-4", 3, 4},
		// Top display bucket includes five-star ratings.
		{"4-5", 4, 6},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Songs by Rating") + "\n")
	for _, r := range ranges {
		count, err := d.ratings.Count(r.start, r.end)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  %s: %d\n", r.label, count)
	}
	return strings.TrimRight(b.String(), "\n")
}
