// Package rating indexes songs by a 0-5 star rating into fixed
// half-open interval buckets, answering point inserts and range queries.
package rating

import (
	"errors"
	"fmt"
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrInvalidRange     = errors.New("invalid rating range")
)

// interval is a half-open [Start, End) rating range.
type interval struct {
	Start float64
	End   float64
}

// The bucket layout is fixed: the domain [0,6) splits at predetermined
// boundaries into five terminal ranges. The top bucket runs to 6 so a
// full five-star rating lands in the displayed "4-5" range.
var buckets = [...]interval{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 4},
	{4, 6},
}

// Index maps a rating in [0,5] to the song IDs holding it.
// The zero value is usable; bucket maps are allocated on first insert.
type Index struct {
	songs [len(buckets)]map[int64]float64
}

// New creates an empty rating index.
func New() *Index {
	return &Index{}
}

// bucketFor locates the bucket containing rating by binary search over
// the fixed boundaries. Caller validates the domain.
func bucketFor(rating float64) int {
	lo, hi := 0, len(buckets)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if rating < buckets[mid].End {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Insert records the rating for a song, overwriting any previous rating
// the song holds within the same bucket. Ratings are valid in [0,5];
// 5.0 is stored in the top bucket.
func (x *Index) Insert(rating float64, song int64) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: %g", ErrRatingOutOfRange, rating)
	}
	b := bucketFor(rating)
	if x.songs[b] == nil {
		x.songs[b] = make(map[int64]float64)
	}
	x.songs[b][song] = rating
	return nil
}

// Search returns song -> rating for every rating in the half-open range
// [start, end). Requires 0 <= start < end <= 6.
func (x *Index) Search(start, end float64) (map[int64]float64, error) {
	if start < 0 || end > 6 || start >= end {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, start, end)
	}
	result := make(map[int64]float64)
	for i, b := range buckets {
		if b.Start >= end || b.End <= start {
			continue
		}
		for song, r := range x.songs[i] {
			if r >= start && r < end {
				result[song] = r
			}
		}
	}
	return result, nil
}

// Count returns the number of songs rated within [start, end).
func (x *Index) Count(start, end float64) (int, error) {
	found, err := x.Search(start, end)
	if err != nil {
		return 0, err
	}
	return len(found), nil
}

// Delete removes the first entry found for the song, scanning every
// bucket, and reports whether anything was removed. There is no reverse
// index, and the scan does not verify the bucket matches the song's
// latest rating; a song duplicated across buckets loses one entry only.
func (x *Index) Delete(song int64) bool {
	for i := range buckets {
		if _, ok := x.songs[i][song]; ok {
			delete(x.songs[i], song)
			return true
		}
	}
	return false
}
