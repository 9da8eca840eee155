package freq

import "time"

// Bucket is one (time bucket, match count) pair.
type Bucket struct {
	Start time.Time `json:"bucket"`
	Count int       `json:"count"`
}

// window is the per-signal sliding count window. Buckets are contiguous
// and strictly ascending; the oldest bucket is evicted whenever an append
// pushes the window past its horizon. Not safe for concurrent use; the
// Tracker serializes access.
type window struct {
	buckets []Bucket
	size    time.Duration
	horizon int
}

func newWindow(size time.Duration, horizon int) *window {
	return &window{size: size, horizon: horizon}
}

// add records count occurrences in the bucket starting at start. Gaps
// between the last bucket and start are filled with zero-count buckets to
// keep the sequence contiguous. Counts older than the retained horizon
// are discarded.
func (w *window) add(start time.Time, count int) {
	if len(w.buckets) == 0 {
		w.buckets = append(w.buckets, Bucket{Start: start, Count: count})
		return
	}

	last := w.buckets[len(w.buckets)-1].Start
	switch {
	case start.After(last):
		// A jump of a full horizon or more evicts everything currently
		// held, so rebuild the trailing horizon directly instead of
		// materializing every intermediate zero bucket. Keeps memory
		// bounded by the horizon even for far-future timestamps.
		if !start.Before(last.Add(time.Duration(w.horizon) * w.size)) {
			w.buckets = w.buckets[:0]
			for i := w.horizon - 1; i > 0; i-- {
				w.buckets = append(w.buckets, Bucket{Start: start.Add(-time.Duration(i) * w.size)})
			}
			w.buckets = append(w.buckets, Bucket{Start: start, Count: count})
			return
		}
		for b := last.Add(w.size); !b.After(start); b = b.Add(w.size) {
			w.buckets = append(w.buckets, Bucket{Start: b})
		}
		w.buckets[len(w.buckets)-1].Count += count
	default:
		// Late arrival into an already-open bucket.
		for i := range w.buckets {
			if w.buckets[i].Start.Equal(start) {
				w.buckets[i].Count += count
				return
			}
		}
		// Older than the whole window: outside the horizon, dropped.
		return
	}

	if n := len(w.buckets) - w.horizon; n > 0 {
		w.buckets = append(w.buckets[:0], w.buckets[n:]...)
	}
}

// at returns the index of the bucket starting at start, or -1.
func (w *window) at(start time.Time) int {
	for i := range w.buckets {
		if w.buckets[i].Start.Equal(start) {
			return i
		}
	}
	return -1
}

// snapshot returns a copy of the buckets, oldest first.
func (w *window) snapshot() []Bucket {
	out := make([]Bucket, len(w.buckets))
	copy(out, w.buckets)
	return out
}
