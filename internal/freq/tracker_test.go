package freq

import (
	"math"
	"testing"
	"time"

	"github.com/ceylonpulse/signalengine/internal/model"
)

var testCfg = model.FrequencyConfig{
	BucketSize:      time.Hour,
	Horizon:         14,
	BaselineBuckets: 6,
}

func hour(n int) time.Time {
	return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Hour)
}

// commit records count matches for one signal in one bucket.
func commit(t *testing.T, tr *Tracker, signalID string, bucket time.Time, count int) {
	t.Helper()
	matches := make([]model.CandidateMatch, count)
	published := make(map[string]time.Time, count)
	for i := range matches {
		id := bucket.Format(time.RFC3339) + "/" + signalID + "/" + string(rune('a'+i))
		matches[i] = model.CandidateMatch{ItemID: id, SignalID: signalID}
		published[id] = bucket
	}
	tr.Commit(tr.Stage(matches, published))
}

func TestBucketOf(t *testing.T) {
	tr := NewTracker(testCfg)
	ts := time.Date(2024, 3, 10, 9, 42, 13, 0, time.FixedZone("IST", 5*3600+1800))
	got := tr.BucketOf(ts)
	want := time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("BucketOf() = %v, want %v", got, want)
	}
}

func TestChangeFirstObservation(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 3)

	if got := tr.Change("sig", hour(0)); got != nil {
		t.Errorf("first observation change = %v, want nil", *got)
	}
	if got := tr.Change("other", hour(0)); got != nil {
		t.Errorf("unknown signal change = %v, want nil", *got)
	}
	if got := tr.Change("sig", hour(5)); got != nil {
		t.Errorf("unknown bucket change = %v, want nil", *got)
	}
}

func TestChangeBurst(t *testing.T) {
	tr := NewTracker(testCfg)

	// Six baseline hours at 2 matches each, then a spike of 8.
	for h := 0; h < 6; h++ {
		commit(t, tr, "sig", hour(h), 2)
	}
	commit(t, tr, "sig", hour(6), 8)

	got := tr.Change("sig", hour(6))
	if got == nil {
		t.Fatal("change = nil, want +300%")
	}
	if math.Abs(*got-300) > 1e-9 {
		t.Errorf("change = %v, want 300", *got)
	}
}

func TestChangeFractionalBaseline(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 1)
	commit(t, tr, "sig", hour(3), 5)

	// Baseline mean is 1/3 after gap fill; the divisor floors at 1
	// instead of inflating the ratio toward infinity.
	got := tr.Change("sig", hour(3))
	if got == nil {
		t.Fatal("change = nil")
	}
	want := (5 - 1.0/3) * 100
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("change = %v, want %v", *got, want)
	}
}

func TestChangeNegative(t *testing.T) {
	tr := NewTracker(testCfg)
	for h := 0; h < 6; h++ {
		commit(t, tr, "sig", hour(h), 4)
	}
	commit(t, tr, "sig", hour(6), 1)

	got := tr.Change("sig", hour(6))
	if got == nil {
		t.Fatal("change = nil")
	}
	if math.Abs(*got-(-75)) > 1e-9 {
		t.Errorf("change = %v, want -75", *got)
	}
}

func TestChangeShortBaseline(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 2)
	commit(t, tr, "sig", hour(1), 6)

	// Only one prior bucket exists; the baseline is its mean.
	got := tr.Change("sig", hour(1))
	if got == nil {
		t.Fatal("change = nil")
	}
	if math.Abs(*got-200) > 1e-9 {
		t.Errorf("change = %v, want 200", *got)
	}
}

func TestWindowGapFill(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 2)
	commit(t, tr, "sig", hour(3), 4)

	snap := tr.Snapshot("sig")
	if len(snap) != 4 {
		t.Fatalf("snapshot has %d buckets, want 4 contiguous", len(snap))
	}
	wantCounts := []int{2, 0, 0, 4}
	for i, b := range snap {
		if !b.Start.Equal(hour(i)) {
			t.Errorf("bucket %d start = %v, want %v", i, b.Start, hour(i))
		}
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %d count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}
}

func TestWindowEviction(t *testing.T) {
	tr := NewTracker(testCfg)
	for h := 0; h < 20; h++ {
		commit(t, tr, "sig", hour(h), 1)
	}

	snap := tr.Snapshot("sig")
	if len(snap) != testCfg.Horizon {
		t.Fatalf("snapshot has %d buckets, want horizon %d", len(snap), testCfg.Horizon)
	}
	if !snap[0].Start.Equal(hour(6)) {
		t.Errorf("oldest bucket = %v, want %v", snap[0].Start, hour(6))
	}
	if got := tr.Change("sig", hour(3)); got != nil {
		t.Errorf("change for evicted bucket = %v, want nil", *got)
	}
}

func TestWindowFarFutureJump(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 2)

	// A jump far past the horizon must not materialize one zero bucket
	// per elapsed hour; the window rebuilds its trailing horizon
	// directly.
	far := hour(0).AddDate(500, 0, 0)
	commit(t, tr, "sig", far, 3)

	snap := tr.Snapshot("sig")
	if len(snap) != testCfg.Horizon {
		t.Fatalf("snapshot has %d buckets, want horizon %d", len(snap), testCfg.Horizon)
	}
	lastBucket := snap[len(snap)-1]
	if !lastBucket.Start.Equal(far) || lastBucket.Count != 3 {
		t.Errorf("newest bucket = %+v, want start %v count 3", lastBucket, far)
	}
	for i, b := range snap[:len(snap)-1] {
		want := far.Add(-time.Duration(len(snap)-1-i) * time.Hour)
		if !b.Start.Equal(want) || b.Count != 0 {
			t.Errorf("bucket %d = %+v, want zero bucket at %v", i, b, want)
		}
	}

	// Same zero baseline a contiguous fill would have produced.
	got := tr.Change("sig", far)
	if got == nil {
		t.Fatal("change = nil after horizon-sized history")
	}
	if math.Abs(*got-300) > 1e-9 {
		t.Errorf("change = %v, want 300", *got)
	}
}

func TestWindowJumpOfExactlyOneHorizon(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 5)
	commit(t, tr, "sig", hour(testCfg.Horizon), 1)

	snap := tr.Snapshot("sig")
	if len(snap) != testCfg.Horizon {
		t.Fatalf("snapshot has %d buckets, want %d", len(snap), testCfg.Horizon)
	}
	if !snap[0].Start.Equal(hour(1)) || snap[0].Count != 0 {
		t.Errorf("oldest bucket = %+v, want zero bucket at %v", snap[0], hour(1))
	}
	if snap[len(snap)-1].Count != 1 {
		t.Errorf("newest bucket count = %d, want 1", snap[len(snap)-1].Count)
	}
}

func TestLateArrival(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 2)
	commit(t, tr, "sig", hour(2), 3)
	// A straggler for an already-open bucket merges into it.
	commit(t, tr, "sig", hour(0), 1)

	snap := tr.Snapshot("sig")
	if snap[0].Count != 3 {
		t.Errorf("late arrival: bucket 0 count = %d, want 3", snap[0].Count)
	}

	// Older than the whole window: silently dropped.
	commit(t, tr, "sig", hour(-5), 9)
	snap = tr.Snapshot("sig")
	if !snap[0].Start.Equal(hour(0)) {
		t.Errorf("pre-window arrival reshaped the window: oldest = %v", snap[0].Start)
	}
}

func TestStageWithoutCommit(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "sig", hour(0), 2)

	matches := []model.CandidateMatch{{ItemID: "x", SignalID: "sig"}}
	tr.Stage(matches, map[string]time.Time{"x": hour(1)})

	snap := tr.Snapshot("sig")
	if len(snap) != 1 || snap[0].Count != 2 {
		t.Errorf("staged-only update changed the window: %v", snap)
	}
}

func TestStageSkipsUnknownItems(t *testing.T) {
	tr := NewTracker(testCfg)
	matches := []model.CandidateMatch{
		{ItemID: "known", SignalID: "sig"},
		{ItemID: "unknown", SignalID: "sig"},
	}
	tr.Commit(tr.Stage(matches, map[string]time.Time{"known": hour(0)}))

	snap := tr.Snapshot("sig")
	if len(snap) != 1 || snap[0].Count != 1 {
		t.Errorf("window = %v, want one bucket with count 1", snap)
	}
}

func TestSnapshots(t *testing.T) {
	tr := NewTracker(testCfg)
	commit(t, tr, "a", hour(0), 1)
	commit(t, tr, "b", hour(0), 2)

	all := tr.Snapshots()
	if len(all) != 2 {
		t.Fatalf("Snapshots() returned %d windows, want 2", len(all))
	}
	if all["b"][0].Count != 2 {
		t.Errorf("signal b count = %d, want 2", all["b"][0].Count)
	}
}
