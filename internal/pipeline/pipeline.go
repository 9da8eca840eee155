// Package pipeline orchestrates one detection batch: validate, match,
// track frequency, collapse duplicates, score, classify, and build
// events.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ceylonpulse/signalengine/internal/catalog"
	"github.com/ceylonpulse/signalengine/internal/classify"
	"github.com/ceylonpulse/signalengine/internal/cluster"
	"github.com/ceylonpulse/signalengine/internal/event"
	"github.com/ceylonpulse/signalengine/internal/freq"
	"github.com/ceylonpulse/signalengine/internal/llm"
	"github.com/ceylonpulse/signalengine/internal/logger"
	"github.com/ceylonpulse/signalengine/internal/match"
	"github.com/ceylonpulse/signalengine/internal/model"
	"github.com/ceylonpulse/signalengine/internal/score"
	"github.com/ceylonpulse/signalengine/internal/worker"
)

// Item validation failures. The offending item is skipped and logged;
// the batch continues.
var (
	ErrMissingItemID    = errors.New("item has no item_id")
	ErrMissingTimestamp = errors.New("item has no published_at")
	ErrEmptyContent     = errors.New("item has empty title and body")
)

// Pipeline wires the engine's components. The frequency tracker is the
// only state carried across batches.
type Pipeline struct {
	cfg     *model.Config
	handle  *catalog.Handle
	tracker *freq.Tracker

	mu        sync.RWMutex
	matcher   *match.Matcher
	collapser *cluster.Collapser
	scorer    *score.Scorer
	extractor *llm.Extractor
}

// New loads the catalog and constructs the pipeline.
func New(cfg *model.Config) (*Pipeline, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("configure llm provider: %w", err)
	}

	p := &Pipeline{
		cfg:       cfg,
		handle:    catalog.NewHandle(cat),
		tracker:   freq.NewTracker(cfg.Frequency),
		matcher:   match.New(cat, cfg.Detection),
		collapser: cluster.New(cfg.Clustering),
		scorer:    score.NewScorer(cfg.Scoring),
		extractor: llm.NewExtractor(provider, cfg.LLM),
	}
	logger.Info("pipeline ready: %d signals in catalog", cat.Len())
	return p, nil
}

// Catalog returns the catalog currently in effect.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.handle.Current()
}

// Tracker exposes frequency window snapshots for trend queries.
func (p *Pipeline) Tracker() *freq.Tracker {
	return p.tracker
}

// ReloadCatalog validates the catalog at path and swaps it in atomically
// together with the matcher built from it. On error the old catalog
// stays in effect untouched.
func (p *Pipeline) ReloadCatalog(path string) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.handle.Replace(cat)
	p.matcher = match.New(cat, p.cfg.Detection)
	p.mu.Unlock()
	logger.Info("catalog replaced: %d signals", cat.Len())
	return nil
}

// BatchResult summarizes one processed batch.
type BatchResult struct {
	Events        []model.Event `json:"events"`
	ItemsSeen     int           `json:"items_seen"`
	ItemsSkipped  int           `json:"items_skipped"`
	Matches       int           `json:"matches"`
	Clusters      int           `json:"clusters"`
	EventsDropped int           `json:"events_dropped"`
}

// ProcessBatch runs the full per-batch flow. Item matching runs in
// parallel across items; the frequency commit happens once, before any
// window is read for scoring; collapse/score/classify/build run in
// parallel across signals. Cancellation before the frequency commit
// leaves all carried-forward state untouched.
func (p *Pipeline) ProcessBatch(ctx context.Context, items []model.TextItem) (*BatchResult, error) {
	// Catalog and matcher are swapped together under mu; capturing both
	// in one critical section keeps a concurrent reload from pairing the
	// old matcher with the new catalog.
	p.mu.RLock()
	matcher := p.matcher
	collapser := p.collapser
	scorer := p.scorer
	extractor := p.extractor
	cat := p.handle.Current()
	p.mu.RUnlock()

	res := &BatchResult{ItemsSeen: len(items)}

	valid, skipped := validateItems(items)
	res.ItemsSkipped = skipped

	byID := make(map[string]*model.TextItem, len(valid))
	publishedAt := make(map[string]time.Time, len(valid))
	for _, it := range valid {
		byID[it.ItemID] = it
		publishedAt[it.ItemID] = it.PublishedAt
	}

	matches := p.matchItems(ctx, matcher, valid)
	if extractor != nil {
		matches = append(matches, extractor.ExtractBatch(ctx, valid, cat)...)
	}
	res.Matches = len(matches)

	// Single staged frequency update, committed in one pass before any
	// burst ratio is read for this batch.
	update := p.tracker.Stage(matches, publishedAt)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch abandoned before frequency commit: %w", err)
	}
	p.tracker.Commit(update)

	bySignal := make(map[string][]model.CandidateMatch)
	for _, m := range matches {
		bySignal[m.SignalID] = append(bySignal[m.SignalID], m)
	}
	signalIDs := make([]string, 0, len(bySignal))
	for id := range bySignal {
		signalIDs = append(signalIDs, id)
	}
	sort.Strings(signalIDs)

	type signalOutcome struct {
		events   []model.Event
		clusters int
		dropped  int
	}
	outcomes := make([]signalOutcome, len(signalIDs))

	sem := make(chan struct{}, p.cfg.Concurrency.SignalWorkers)
	var wg sync.WaitGroup
	for i, signalID := range signalIDs {
		wg.Add(1)
		go func(idx int, sigID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			def, ok := cat.Lookup(sigID)
			if !ok {
				logger.Warn("match references unknown signal %q, dropping", sigID)
				return
			}
			ev, nc, nd := p.processSignal(collapser, scorer, def, bySignal[sigID], byID)
			outcomes[idx] = signalOutcome{events: ev, clusters: nc, dropped: nd}
		}(i, signalID)
	}
	wg.Wait()

	for _, o := range outcomes {
		res.Events = append(res.Events, o.events...)
		res.Clusters += o.clusters
		res.EventsDropped += o.dropped
	}
	sortEvents(res.Events)

	logger.Info("batch done: %d items (%d skipped), %d matches, %d clusters, %d events (%d dropped)",
		res.ItemsSeen, res.ItemsSkipped, res.Matches, res.Clusters, len(res.Events), res.EventsDropped)
	return res, nil
}

// processSignal runs collapse, score, classify, and build for one
// signal's matches. Pure over batch data plus the already-committed
// frequency window.
func (p *Pipeline) processSignal(collapser *cluster.Collapser, scorer *score.Scorer, def *catalog.SignalDefinition, matches []model.CandidateMatch, items map[string]*model.TextItem) (events []model.Event, clusters, dropped int) {
	cls := collapser.Collapse(def.SignalID, matches, items)
	clusters = len(cls)

	for i := range cls {
		cl := &cls[i]
		bucket := p.tracker.BucketOf(cl.Representative.PublishedAt)

		// Burst evidence only participates for signals detected in
		// keyword+frequency mode.
		var change *float64
		if def.Mode == catalog.ModeKeywordFrequency {
			change = p.tracker.Change(def.SignalID, bucket)
		}

		severity := scorer.Severity(score.Inputs{
			Confidence:      cl.Confidence,
			FrequencyChange: change,
			Sentiment:       cl.Representative.Sentiment,
			Priority:        def.Priority,
		})
		pestle, swot := classify.Classify(def, cl.Representative.Sentiment)

		ev, err := event.Build(cl, bucket, severity, change, pestle, swot)
		if err != nil {
			logger.Error("dropping event: %v", err)
			dropped++
			continue
		}
		events = append(events, *ev)
	}
	return events, clusters, dropped
}

// matchJob runs the keyword matcher for one item on the worker pool.
type matchJob struct {
	item    *model.TextItem
	matcher *match.Matcher
}

type matchResult struct {
	matches []model.CandidateMatch
}

func (r *matchResult) Err() error { return nil }

func (j *matchJob) Execute(_ context.Context) worker.Result {
	return &matchResult{matches: j.matcher.MatchItem(j.item)}
}

func (p *Pipeline) matchItems(ctx context.Context, matcher *match.Matcher, items []*model.TextItem) []model.CandidateMatch {
	pool := worker.NewPool(p.cfg.Concurrency.MatchWorkers)
	pool.Start(ctx)
	for _, it := range items {
		pool.Submit(ctx, &matchJob{item: it, matcher: matcher})
	}

	var out []model.CandidateMatch
	for _, r := range pool.Wait() {
		out = append(out, r.(*matchResult).matches...)
	}

	// Pool completion order is nondeterministic; restore a stable order
	// so downstream aggregation is reproducible.
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		return out[i].SignalID < out[j].SignalID
	})
	return out
}

// validateItems filters out items that violate the input contract,
// logging each skip.
func validateItems(items []model.TextItem) ([]*model.TextItem, int) {
	valid := make([]*model.TextItem, 0, len(items))
	skipped := 0
	for i := range items {
		it := &items[i]
		if err := validateItem(it); err != nil {
			logger.Warn("skipping item %q: %v", it.ItemID, err)
			skipped++
			continue
		}
		valid = append(valid, it)
	}
	return valid, skipped
}

func validateItem(it *model.TextItem) error {
	if it.ItemID == "" {
		return ErrMissingItemID
	}
	if it.PublishedAt.IsZero() {
		return ErrMissingTimestamp
	}
	if it.Title == "" && it.Body == "" {
		return ErrEmptyContent
	}
	return nil
}

// sortEvents orders a batch's events by recency, then signal, then id,
// so repeated runs over the same input produce identical output.
func sortEvents(events []model.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.Before(events[j].Timestamp)
		}
		if events[i].SignalID != events[j].SignalID {
			return events[i].SignalID < events[j].SignalID
		}
		return events[i].EventID < events[j].EventID
	})
}
