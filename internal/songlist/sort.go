package songlist

import "fmt"

// SortBy selects the sort key for Sort.
type SortBy int

const (
	SortByAddedTime SortBy = iota
	SortByName
	SortByDuration
)

func (s SortBy) String() string {
	switch s {
	case SortByAddedTime:
		return "added time"
	case SortByName:
		return "name"
	case SortByDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Sort reorders the list by the given criterion using an in-place
// heap-sort over the extracted node indexes, then relinks the chain.
// Heap-sort is not stable: equal keys may reorder.
func (l *List) Sort(by SortBy, descending bool) error {
	less, err := l.lessFunc(by)
	if err != nil {
		return err
	}
	if l.size <= 1 {
		return nil
	}
	if descending {
		asc := less
		less = func(a, b int32) bool { return asc(b, a) }
	}

	idx := l.collect()
	heapSort(idx, less)
	l.relink(idx)
	return nil
}

func (l *List) lessFunc(by SortBy) (func(a, b int32) bool, error) {
	switch by {
	case SortByAddedTime:
		return func(a, b int32) bool {
			return l.nodes[a].addedAt.Before(l.nodes[b].addedAt)
		}, nil
	case SortByName:
		return func(a, b int32) bool {
			return l.lookup(l.nodes[a].song).Name < l.lookup(l.nodes[b].song).Name
		}, nil
	case SortByDuration:
		return func(a, b int32) bool {
			return l.lookup(l.nodes[a].song).Duration < l.lookup(l.nodes[b].song).Duration
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidSortBy, by)
	}
}

// heapSort sorts idx ascending by less: build a max-heap, then swap the
// root to the end and shrink the heap until one element remains.
func heapSort(idx []int32, less func(a, b int32) bool) {
	n := len(idx)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(idx, i, n, less)
	}
	for i := n - 1; i > 0; i-- {
		idx[0], idx[i] = idx[i], idx[0]
		siftDown(idx, 0, i, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at
// root, considering only the first n elements.
func siftDown(idx []int32, root, n int, less func(a, b int32) bool) {
	for {
		largest := root
		left := 2*root + 1
		right := 2*root + 2

		if left < n && less(idx[largest], idx[left]) {
			largest = left
		}
		if right < n && less(idx[largest], idx[right]) {
			largest = right
		}
		if largest == root {
			return
		}
		idx[root], idx[largest] = idx[largest], idx[root]
		root = largest
	}
}
