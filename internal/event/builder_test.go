package event

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ceylonpulse/signalengine/internal/cluster"
	"github.com/ceylonpulse/signalengine/internal/model"
)

var bucket = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func testCluster() *cluster.Cluster {
	sentiment := -0.4
	return &cluster.Cluster{
		ClusterID: "fuel-shortage-mentions/n1",
		SignalID:  "fuel-shortage-mentions",
		ItemIDs:   []string{"n1", "n2"},
		Representative: &model.TextItem{
			ItemID:      "n1",
			Title:       "Fuel queues grow",
			Body:        "Long lines reported at filling stations across the city.",
			PublishedAt: bucket.Add(12 * time.Minute),
			Sentiment:   &sentiment,
		},
		Keywords:   []string{"fuel queues"},
		Confidence: 0.65,
		Location:   "Colombo",
	}
}

func TestIDDeterministic(t *testing.T) {
	a := ID("fuel-shortage-mentions", bucket, "n1")
	b := ID("fuel-shortage-mentions", bucket, "n1")
	if a != b {
		t.Errorf("same inputs produced different ids: %s vs %s", a, b)
	}

	if ID("fuel-shortage-mentions", bucket, "n2") == a {
		t.Error("different item produced the same id")
	}
	if ID("inflation-mentions", bucket, "n1") == a {
		t.Error("different signal produced the same id")
	}
	if ID("fuel-shortage-mentions", bucket.Add(time.Hour), "n1") == a {
		t.Error("different bucket produced the same id")
	}
}

func TestIDTimezoneInsensitive(t *testing.T) {
	colombo := time.FixedZone("IST", 5*3600+1800)
	if ID("sig", bucket, "n1") != ID("sig", bucket.In(colombo), "n1") {
		t.Error("id depends on the timestamp's zone representation")
	}
}

func TestBuild(t *testing.T) {
	change := 120.0
	ev, err := Build(testCluster(), bucket, 0.72, &change, model.PestleEconomic, model.SwotThreat)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if ev.EventID != ID("fuel-shortage-mentions", bucket, "n1") {
		t.Errorf("event id = %s, want derived id", ev.EventID)
	}
	if ev.Severity != 0.72 {
		t.Errorf("severity = %v, want 0.72", ev.Severity)
	}
	if ev.Sentiment == nil || *ev.Sentiment != -0.4 {
		t.Errorf("sentiment = %v, want -0.4", ev.Sentiment)
	}
	if ev.Location != "Colombo" {
		t.Errorf("location = %q, want Colombo", ev.Location)
	}
	if ev.FrequencyChange == nil || *ev.FrequencyChange != 120 {
		t.Errorf("frequency change = %v, want 120", ev.FrequencyChange)
	}
	if !ev.Timestamp.Equal(bucket.Add(12 * time.Minute)) {
		t.Errorf("timestamp = %v, want representative published_at", ev.Timestamp)
	}
	if !strings.HasPrefix(ev.RawText, "Fuel queues grow") {
		t.Errorf("raw text = %q, want title-first excerpt", ev.RawText)
	}
}

func TestBuildTruncatesRawText(t *testing.T) {
	cl := testCluster()
	cl.Representative.Body = strings.Repeat("word ", 300)

	ev, err := Build(cl, bucket, 0.5, nil, model.PestleEconomic, model.SwotThreat)
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(ev.RawText)); n > 501 {
		t.Errorf("raw text is %d runes, want at most 500 plus ellipsis", n)
	}
}

func TestBuildContractViolations(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*model.Event, error)
	}{
		{
			name: "severity above 1",
			build: func() (*model.Event, error) {
				return Build(testCluster(), bucket, 1.2, nil, model.PestleEconomic, model.SwotThreat)
			},
		},
		{
			name: "severity below 0",
			build: func() (*model.Event, error) {
				return Build(testCluster(), bucket, -0.1, nil, model.PestleEconomic, model.SwotThreat)
			},
		},
		{
			name: "invalid pestle",
			build: func() (*model.Event, error) {
				return Build(testCluster(), bucket, 0.5, nil, "", model.SwotThreat)
			},
		},
		{
			name: "invalid swot",
			build: func() (*model.Event, error) {
				return Build(testCluster(), bucket, 0.5, nil, model.PestleEconomic, "")
			},
		},
		{
			name: "missing representative",
			build: func() (*model.Event, error) {
				cl := testCluster()
				cl.Representative = nil
				return Build(cl, bucket, 0.5, nil, model.PestleEconomic, model.SwotThreat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil {
				t.Fatal("Build() accepted a contract violation")
			}
			var ce *ContractError
			if !errors.As(err, &ce) {
				t.Errorf("error type = %T, want *ContractError", err)
			}
		})
	}
}
