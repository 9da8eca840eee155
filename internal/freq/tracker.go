// Package freq maintains rolling per-signal match counts and computes
// burst ratios against a trailing baseline.
package freq

import (
	"sort"
	"sync"
	"time"

	"github.com/ceylonpulse/signalengine/internal/model"
)

// Tracker owns all frequency windows. It is the single writer: batch
// counts are staged first, then committed in one pass per signal in
// bucket-ascending order, so burst ratios read after the commit always
// reflect the current batch. A staged update that is never committed
// (cancelled batch) leaves the windows untouched.
type Tracker struct {
	mu      sync.RWMutex
	cfg     model.FrequencyConfig
	windows map[string]*window
}

// NewTracker creates an empty tracker.
func NewTracker(cfg model.FrequencyConfig) *Tracker {
	return &Tracker{
		cfg:     cfg,
		windows: make(map[string]*window),
	}
}

// BucketOf truncates a timestamp to its bucket start, in UTC.
func (t *Tracker) BucketOf(ts time.Time) time.Time {
	return ts.UTC().Truncate(t.cfg.BucketSize)
}

// BatchUpdate is a staged set of per-signal bucket counts for one batch.
type BatchUpdate struct {
	counts map[string]map[time.Time]int
}

// Stage buckets the batch's matches per signal without touching window
// state. publishedAt maps item ids to their published_at timestamps.
func (t *Tracker) Stage(matches []model.CandidateMatch, publishedAt map[string]time.Time) *BatchUpdate {
	u := &BatchUpdate{counts: make(map[string]map[time.Time]int)}
	for _, m := range matches {
		ts, ok := publishedAt[m.ItemID]
		if !ok {
			continue
		}
		bucket := t.BucketOf(ts)
		if u.counts[m.SignalID] == nil {
			u.counts[m.SignalID] = make(map[time.Time]int)
		}
		u.counts[m.SignalID][bucket]++
	}
	return u
}

// Commit applies a staged update. Per signal the buckets are applied in
// ascending order in a single pass; the whole update happens under one
// lock, all or nothing.
func (t *Tracker) Commit(u *BatchUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for signalID, byBucket := range u.counts {
		w := t.windows[signalID]
		if w == nil {
			w = newWindow(t.cfg.BucketSize, t.cfg.Horizon)
			t.windows[signalID] = w
		}

		buckets := make([]time.Time, 0, len(byBucket))
		for b := range byBucket {
			buckets = append(buckets, b)
		}
		sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

		for _, b := range buckets {
			w.add(b, byBucket[b])
		}
	}
}

// Change returns the burst ratio for a signal's bucket as a signed
// percentage versus the mean of the preceding baseline buckets. Nil when
// the signal has no prior buckets (first observation) or the bucket is
// not in the window: a ratio against nothing is meaningless, and nil is
// the explicit policy rather than an artificial infinity.
func (t *Tracker) Change(signalID string, bucket time.Time) *float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w := t.windows[signalID]
	if w == nil {
		return nil
	}
	idx := w.at(bucket)
	if idx < 0 || idx == 0 {
		return nil
	}

	lo := idx - t.cfg.BaselineBuckets
	if lo < 0 {
		lo = 0
	}
	sum := 0
	for i := lo; i < idx; i++ {
		sum += w.buckets[i].Count
	}
	baseline := float64(sum) / float64(idx-lo)

	div := baseline
	if div < 1 {
		div = 1
	}
	change := (float64(w.buckets[idx].Count) - baseline) / div * 100
	return &change
}

// Snapshot returns a copy of one signal's window, oldest bucket first.
func (t *Tracker) Snapshot(signalID string) []Bucket {
	t.mu.RLock()
	defer t.mu.RUnlock()
	w := t.windows[signalID]
	if w == nil {
		return nil
	}
	return w.snapshot()
}

// Snapshots returns copies of every non-empty window, keyed by signal id.
func (t *Tracker) Snapshots() map[string][]Bucket {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string][]Bucket, len(t.windows))
	for id, w := range t.windows {
		out[id] = w.snapshot()
	}
	return out
}
