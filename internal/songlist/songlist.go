// Package songlist implements the ordered song sequence backing a
// playlist: a doubly linked list whose nodes live in a freelist-backed
// arena, linked by index rather than by pointer. Positional lookups are
// linear; structural edits are O(1) once the position is found.
package songlist

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jrouvier/cadence/internal/catalog"
)

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidSortBy     = errors.New("invalid sort criterion")
	ErrShuffleInfeasible = errors.New("too many songs by a single artist to avoid consecutive playback")
)

// Catalog resolves song IDs to records for sort and shuffle keys.
type Catalog interface {
	Lookup(id int64) (catalog.Song, bool)
}

// Entry is one position of the sequence: the song and when it was added.
// Snapshots are ordered slices of entries.
type Entry struct {
	Song    int64
	AddedAt time.Time
}

// none marks an empty prev/next link or an empty head/tail.
const none = int32(-1)

type node struct {
	song    int64
	addedAt time.Time
	prev    int32
	next    int32
}

// List is the ordered song sequence. The zero value is not usable;
// create with New.
type List struct {
	catalog Catalog
	nodes   []node
	free    []int32
	head    int32
	tail    int32
	size    int
}

// New creates an empty list. The catalog is consulted for name and
// duration sort keys and for shuffle grouping; it is never mutated.
func New(cat Catalog) *List {
	return &List{
		catalog: cat,
		head:    none,
		tail:    none,
	}
}

// Len returns the number of songs in the list.
func (l *List) Len() int {
	return l.size
}

// alloc takes a slot from the freelist, growing the arena if empty.
func (l *List) alloc(e Entry) int32 {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node{song: e.Song, addedAt: e.AddedAt, prev: none, next: none}
		return i
	}
	l.nodes = append(l.nodes, node{song: e.Song, addedAt: e.AddedAt, prev: none, next: none})
	return int32(len(l.nodes) - 1)
}

func (l *List) release(i int32) {
	l.nodes[i] = node{prev: none, next: none}
	l.free = append(l.free, i)
}

// nodeAt walks from head to the node at index. Caller validates bounds.
func (l *List) nodeAt(index int) int32 {
	i := l.head
	for range index {
		i = l.nodes[i].next
	}
	return i
}

// Append adds a song at the tail.
func (l *List) Append(song int64) {
	l.appendEntry(Entry{Song: song, AddedAt: time.Now()})
}

func (l *List) appendEntry(e Entry) {
	i := l.alloc(e)
	if l.head == none {
		l.head = i
		l.tail = i
	} else {
		l.nodes[i].prev = l.tail
		l.nodes[l.tail].next = i
		l.tail = i
	}
	l.size++
}

// Insert places a song at index, shifting later songs down.
// Valid indexes are [0, Len()]; Len() delegates to Append.
func (l *List) Insert(index int, song int64) error {
	return l.InsertEntry(index, Entry{Song: song, AddedAt: time.Now()})
}

// InsertEntry is Insert with an explicit added-at timestamp. The edit
// log uses it to put a removed song back without disturbing its
// original timestamp.
func (l *List) InsertEntry(index int, e Entry) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfRange, index, l.size)
	}
	if index == l.size {
		l.appendEntry(e)
		return nil
	}

	i := l.alloc(e)
	at := l.nodeAt(index)
	prev := l.nodes[at].prev

	l.nodes[i].next = at
	l.nodes[i].prev = prev
	l.nodes[at].prev = i
	if prev == none {
		l.head = i
	} else {
		l.nodes[prev].next = i
	}
	l.size++
	return nil
}

// Remove unlinks the song at index and returns its entry.
// Valid indexes are [0, Len()).
func (l *List) Remove(index int) (Entry, error) {
	if index < 0 || index >= l.size {
		return Entry{}, fmt.Errorf("%w: remove at %d with size %d", ErrIndexOutOfRange, index, l.size)
	}

	i := l.nodeAt(index)
	prev, next := l.nodes[i].prev, l.nodes[i].next

	if prev != none {
		l.nodes[prev].next = next
	} else {
		l.head = next
	}
	if next != none {
		l.nodes[next].prev = prev
	} else {
		l.tail = prev
	}

	e := Entry{Song: l.nodes[i].song, AddedAt: l.nodes[i].addedAt}
	l.release(i)
	l.size--
	return e, nil
}

// Move relocates the song at from to position to. Both indexes are
// validated against the current size; to is interpreted after the
// removal, so moving toward the tail lands one short of naive
// expectations.
func (l *List) Move(from, to int) error {
	if from < 0 || from >= l.size {
		return fmt.Errorf("%w: move from %d with size %d", ErrIndexOutOfRange, from, l.size)
	}
	if to < 0 || to >= l.size {
		return fmt.Errorf("%w: move to %d with size %d", ErrIndexOutOfRange, to, l.size)
	}
	e, err := l.Remove(from)
	if err != nil {
		return err
	}
	return l.InsertEntry(to, e)
}

// Reverse flips the order in place: every node swaps its prev and next
// roles, then head and tail trade places.
func (l *List) Reverse() {
	for i := l.head; i != none; {
		next := l.nodes[i].next
		l.nodes[i].next, l.nodes[i].prev = l.nodes[i].prev, l.nodes[i].next
		i = next
	}
	l.head, l.tail = l.tail, l.head
}

// At returns the song at index. Valid indexes are [0, Len()).
func (l *List) At(index int) (int64, error) {
	if index < 0 || index >= l.size {
		return 0, fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, l.size)
	}
	return l.nodes[l.nodeAt(index)].song, nil
}

// All returns an iterator over song IDs in current order. Each call
// produces an independent, restartable sequence.
func (l *List) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := l.head; i != none; i = l.nodes[i].next {
			if !yield(l.nodes[i].song) {
				return
			}
		}
	}
}

// Snapshot returns an ordered copy of the sequence. The copy shares no
// state with the list and stays valid across later mutations.
func (l *List) Snapshot() []Entry {
	entries := make([]Entry, 0, l.size)
	for i := l.head; i != none; i = l.nodes[i].next {
		entries = append(entries, Entry{Song: l.nodes[i].song, AddedAt: l.nodes[i].addedAt})
	}
	return entries
}

// Restore replaces the whole sequence with a previously taken snapshot.
func (l *List) Restore(entries []Entry) {
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head = none
	l.tail = none
	l.size = 0
	for _, e := range entries {
		l.appendEntry(e)
	}
}

// collect returns the node indexes in list order.
func (l *List) collect() []int32 {
	idx := make([]int32, 0, l.size)
	for i := l.head; i != none; i = l.nodes[i].next {
		idx = append(idx, i)
	}
	return idx
}

// relink rebuilds the chain from an ordered set of node indexes.
func (l *List) relink(idx []int32) {
	if len(idx) == 0 {
		l.head = none
		l.tail = none
		return
	}
	l.head = idx[0]
	l.tail = idx[len(idx)-1]
	l.nodes[l.head].prev = none
	l.nodes[l.tail].next = none
	for i := 0; i < len(idx)-1; i++ {
		l.nodes[idx[i]].next = idx[i+1]
		l.nodes[idx[i+1]].prev = idx[i]
	}
}

// lookup resolves a song through the catalog, falling back to the zero
// record so sort keys stay total when the catalog misses.
func (l *List) lookup(id int64) catalog.Song {
	if l.catalog == nil {
		return catalog.Song{ID: id}
	}
	song, ok := l.catalog.Lookup(id)
	if !ok {
		return catalog.Song{ID: id}
	}
	return song
}
