package songlist

import (
	"container/heap"
	"fmt"
	"math/rand/v2"
)

// Shuffle randomizes the order so that no two consecutive songs share a
// primary artist. The node set is permuted with rng, grouped by primary
// artist, then interleaved greedily: always emit from the largest
// remaining group, withholding the group emitted immediately before.
//
// Fails with ErrShuffleInfeasible when one artist holds c songs with
// c > (size-c)+1, the maximum placeable without forced adjacency; the
// list is left untouched in that case.
func (l *List) Shuffle(rng *rand.Rand) error {
	if l.size <= 1 {
		return nil
	}

	idx := l.collect()
	rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	byArtist := make(map[string]*artistGroup)
	var groups groupHeap
	for _, i := range idx {
		artist := l.lookup(l.nodes[i].song).PrimaryArtist()
		g, ok := byArtist[artist]
		if !ok {
			g = &artistGroup{artist: artist}
			byArtist[artist] = g
			groups = append(groups, g)
		}
		g.nodes = append(g.nodes, i)
	}

	maxFreq := 0
	for _, g := range groups {
		if len(g.nodes) > maxFreq {
			maxFreq = len(g.nodes)
		}
	}
	if maxFreq > (l.size-maxFreq)+1 {
		return fmt.Errorf("%w: %d of %d songs", ErrShuffleInfeasible, maxFreq, l.size)
	}

	heap.Init(&groups)

	ordered := make([]int32, 0, len(idx))
	var withheld *artistGroup
	for groups.Len() > 0 {
		g := heap.Pop(&groups).(*artistGroup)
		n := len(g.nodes)
		ordered = append(ordered, g.nodes[n-1])
		g.nodes = g.nodes[:n-1]

		if withheld != nil {
			heap.Push(&groups, withheld)
		}
		if len(g.nodes) > 0 {
			withheld = g
		} else {
			withheld = nil
		}
	}

	l.relink(ordered)
	return nil
}

type artistGroup struct {
	artist string
	nodes  []int32
}

// groupHeap is a max-heap on remaining group size, with the artist name
// breaking ties for determinism under a fixed seed.
type groupHeap []*artistGroup

func (h groupHeap) Len() int { return len(h) }

func (h groupHeap) Less(i, j int) bool {
	if len(h[i].nodes) != len(h[j].nodes) {
		return len(h[i].nodes) > len(h[j].nodes)
	}
	return h[i].artist < h[j].artist
}

func (h groupHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *groupHeap) Push(x any) { *h = append(*h, x.(*artistGroup)) }

func (h *groupHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
