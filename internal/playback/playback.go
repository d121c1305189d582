// Package playback models a play session as a FIFO queue of pending
// songs and a LIFO history of played ones. The queue front is the
// currently playing song; playing moves it into history, and undoing a
// play returns the song to the back of the queue rather than rewinding
// playback.
package playback

import (
	"errors"
	"iter"
)

var (
	ErrQueueEmpty   = errors.New("no songs in the queue")
	ErrNoNextSong   = errors.New("no songs to play next")
	ErrHistoryEmpty = errors.New("no history to undo")
)

// Playback tracks the pending queue and play history for one session.
type Playback struct {
	queue   []int64
	history []int64
}

// New creates an empty playback session.
func New() *Playback {
	return &Playback{}
}

// Enqueue appends a song at the back of the queue.
func (p *Playback) Enqueue(song int64) {
	p.queue = append(p.queue, song)
}

// EnqueueAll appends every song from the sequence, in order. Used to
// queue a whole playlist.
func (p *Playback) EnqueueAll(songs iter.Seq[int64]) {
	for song := range songs {
		p.queue = append(p.queue, song)
	}
}

// PlayNext moves the current song from the queue front into history and
// returns it. The last remaining song is never consumed by PlayNext
// alone: it stays as the current song, and ErrNoNextSong is returned.
func (p *Playback) PlayNext() (int64, error) {
	if len(p.queue) == 0 {
		return 0, ErrQueueEmpty
	}
	if len(p.queue) == 1 {
		return 0, ErrNoNextSong
	}
	song := p.queue[0]
	p.queue = p.queue[1:]
	p.history = append(p.history, song)
	return song, nil
}

// UndoLastPlay pops the most recent play from history and re-enqueues
// it at the BACK of the queue: the song returns to the pending pool, it
// does not reclaim the currently-playing slot.
func (p *Playback) UndoLastPlay() (int64, error) {
	if len(p.history) == 0 {
		return 0, ErrHistoryEmpty
	}
	song := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.queue = append(p.queue, song)
	return song, nil
}

// Current peeks the queue front without consuming it.
func (p *Playback) Current() (int64, error) {
	if len(p.queue) == 0 {
		return 0, ErrQueueEmpty
	}
	return p.queue[0], nil
}

// Recent returns up to n plays, most recent first. n <= 0 returns the
// whole history.
func (p *Playback) Recent(n int) []int64 {
	if n <= 0 || n > len(p.history) {
		n = len(p.history)
	}
	result := make([]int64, 0, n)
	for i := len(p.history) - 1; i >= len(p.history)-n; i-- {
		result = append(result, p.history[i])
	}
	return result
}

// Queued returns a copy of the pending queue, front first.
func (p *Playback) Queued() []int64 {
	result := make([]int64, len(p.queue))
	copy(result, p.queue)
	return result
}

// QueueLen returns the number of pending songs, including the current one.
func (p *Playback) QueueLen() int {
	return len(p.queue)
}

// HistoryLen returns the number of played songs.
func (p *Playback) HistoryLen() int {
	return len(p.history)
}
