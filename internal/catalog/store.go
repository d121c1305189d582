package catalog

import (
	"container/heap"
	"fmt"
	"sort"
)

// Store is the in-memory catalog backend.
type Store struct {
	songs map[int64]Song
}

// NewStore creates an empty in-memory catalog.
func NewStore() *Store {
	return &Store{songs: make(map[int64]Song)}
}

// Add inserts a song. Returns ErrDuplicateSong if the ID is taken.
func (s *Store) Add(song Song) error {
	if _, ok := s.songs[song.ID]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateSong, song.ID)
	}
	s.songs[song.ID] = song
	return nil
}

// Remove deletes a song by ID. Returns ErrSongNotFound if absent.
func (s *Store) Remove(id int64) error {
	if _, ok := s.songs[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrSongNotFound, id)
	}
	delete(s.songs, id)
	return nil
}

// Lookup returns the song with the given ID.
func (s *Store) Lookup(id int64) (Song, bool) {
	song, ok := s.songs[id]
	return song, ok
}

// Len returns the number of songs in the catalog.
func (s *Store) Len() int {
	return len(s.songs)
}

// All returns every song in the catalog, in unspecified order.
func (s *Store) All() []Song {
	result := make([]Song, 0, len(s.songs))
	for _, song := range s.songs {
		result = append(result, song)
	}
	return result
}

// Longest returns the n longest songs by duration, descending.
// Uses a bounded min-heap so only n records are kept in flight.
func (s *Store) Longest(n int) ([]Song, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	h := &shortestFirst{}
	for _, song := range s.songs {
		if h.Len() < n {
			heap.Push(h, song)
		} else if longer(song, (*h)[0]) {
			(*h)[0] = song
			heap.Fix(h, 0)
		}
	}

	result := make([]Song, h.Len())
	copy(result, *h)
	sort.Slice(result, func(i, j int) bool {
		return longer(result[i], result[j])
	})
	return result, nil
}

// longer orders by duration descending, ID ascending on ties.
func longer(a, b Song) bool {
	if a.Duration != b.Duration {
		return a.Duration > b.Duration
	}
	return a.ID < b.ID
}

// shortestFirst is a min-heap by duration: the root is the shortest of
// the current candidates and gets evicted first.
type shortestFirst []Song

func (h shortestFirst) Len() int           { return len(h) }
func (h shortestFirst) Less(i, j int) bool { return longer(h[j], h[i]) }
func (h shortestFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *shortestFirst) Push(x any)        { *h = append(*h, x.(Song)) }
func (h *shortestFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
