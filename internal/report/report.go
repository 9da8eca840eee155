// Package report provides the downstream query shapes over a batch's
// events and the tracker's frequency snapshots.
package report

import (
	"sort"
	"time"

	"github.com/ceylonpulse/signalengine/internal/freq"
	"github.com/ceylonpulse/signalengine/internal/model"
)

// SignalTrend is one signal's frequency window snapshot.
type SignalTrend struct {
	SignalID string        `json:"signal_id"`
	Window   []freq.Bucket `json:"window"`
	Total    int           `json:"total"`
}

// SwotStat aggregates one SWOT label.
type SwotStat struct {
	Count            int     `json:"count"`
	WeightedSeverity float64 `json:"weighted_severity"` // sum of severities
}

// SignalCount is one entry of the top-signals list.
type SignalCount struct {
	SignalID string `json:"signal_id"`
	Count    int    `json:"count"`
}

// EventsByRecency returns the events newest first. The input is not
// modified.
func EventsByRecency(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].EventID < out[j].EventID
	})
	return out
}

// EventsInRange filters events to [from, to]. A zero bound is open.
func EventsInRange(events []model.Event, from, to time.Time) []model.Event {
	var out []model.Event
	for _, e := range events {
		if !from.IsZero() && e.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && e.Timestamp.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// PestleDistribution counts events per PESTLE category. Every category
// appears, zero or not, so dashboards get a stable shape.
func PestleDistribution(events []model.Event) map[model.PestleCategory]int {
	out := make(map[model.PestleCategory]int, len(model.PestleCategories))
	for _, c := range model.PestleCategories {
		out[c] = 0
	}
	for _, e := range events {
		out[e.Pestle]++
	}
	return out
}

// SwotSummary aggregates count and severity weight per SWOT label.
func SwotSummary(events []model.Event) map[model.SwotLabel]SwotStat {
	out := make(map[model.SwotLabel]SwotStat, len(model.SwotLabels))
	for _, l := range model.SwotLabels {
		out[l] = SwotStat{}
	}
	for _, e := range events {
		s := out[e.Swot]
		s.Count++
		s.WeightedSeverity += e.Severity
		out[e.Swot] = s
	}
	return out
}

// TopSignals returns up to n signals by event count, ties broken by id.
func TopSignals(events []model.Event, n int) []SignalCount {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.SignalID]++
	}
	out := make([]SignalCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, SignalCount{SignalID: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].SignalID < out[j].SignalID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// SignalTrends converts tracker snapshots into an ordered trend list,
// busiest signals first.
func SignalTrends(snapshots map[string][]freq.Bucket) []SignalTrend {
	out := make([]SignalTrend, 0, len(snapshots))
	for id, window := range snapshots {
		total := 0
		for _, b := range window {
			total += b.Count
		}
		out = append(out, SignalTrend{SignalID: id, Window: window, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].SignalID < out[j].SignalID
	})
	return out
}
