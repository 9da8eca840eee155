package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ceylonpulse/signalengine/internal/model"
)

// Output is the serialized batch result handed to the storage/API layer.
// Field names are the compatibility surface; renames break consumers.
type Output struct {
	GeneratedAt time.Time                    `json:"generated_at"`
	Events      []model.Event                `json:"events"`
	Pestle      map[model.PestleCategory]int `json:"pestle_distribution"`
	Swot        map[model.SwotLabel]SwotStat `json:"swot_summary"`
	TopSignals  []SignalCount                `json:"top_signals"`
	Trends      []SignalTrend                `json:"signal_trends,omitempty"`
}

// BuildOutput assembles the full query surface for one batch.
func BuildOutput(events []model.Event, trends []SignalTrend, now time.Time) *Output {
	return &Output{
		GeneratedAt: now.UTC(),
		Events:      EventsByRecency(events),
		Pestle:      PestleDistribution(events),
		Swot:        SwotSummary(events),
		TopSignals:  TopSignals(events, 10),
		Trends:      trends,
	}
}

// WriteJSON writes the output as indented JSON to path.
func WriteJSON(out *Output, path string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// RenderSummary prints a human-readable digest of the batch.
func RenderSummary(w io.Writer, out *Output) {
	fmt.Fprintf(w, "Events: %d\n", len(out.Events))

	fmt.Fprintln(w, "\nPESTLE distribution:")
	for _, c := range model.PestleCategories {
		fmt.Fprintf(w, "  %-14s %d\n", c, out.Pestle[c])
	}

	fmt.Fprintln(w, "\nSWOT summary:")
	for _, l := range model.SwotLabels {
		s := out.Swot[l]
		fmt.Fprintf(w, "  %-12s count=%d weighted=%.2f\n", l, s.Count, s.WeightedSeverity)
	}

	if len(out.TopSignals) > 0 {
		fmt.Fprintln(w, "\nTop signals:")
		for _, ts := range out.TopSignals {
			fmt.Fprintf(w, "  %-30s %d\n", ts.SignalID, ts.Count)
		}
	}

	if len(out.Events) > 0 {
		fmt.Fprintln(w, "\nMost recent events:")
		limit := len(out.Events)
		if limit > 5 {
			limit = 5
		}
		for _, e := range out.Events[:limit] {
			change := "n/a"
			if e.FrequencyChange != nil {
				change = fmt.Sprintf("%+.0f%%", *e.FrequencyChange)
			}
			fmt.Fprintf(w, "  [%s] %s severity=%.2f %s/%s change=%s\n",
				e.Timestamp.Format(time.RFC3339), e.SignalID, e.Severity, e.Pestle, e.Swot, change)
		}
	}
}
