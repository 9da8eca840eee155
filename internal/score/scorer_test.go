package score

import (
	"math"
	"testing"

	"github.com/ceylonpulse/signalengine/internal/model"
)

func f(v float64) *float64 { return &v }

func testScorer() *Scorer {
	return NewScorer(model.DefaultConfig().Scoring)
}

func TestSeverityFormula(t *testing.T) {
	s := testScorer()

	tests := []struct {
		name string
		in   Inputs
		want float64
	}{
		{
			name: "all components present",
			in: Inputs{
				Confidence:      0.8,
				FrequencyChange: f(50),
				Sentiment:       f(-0.5),
				Priority:        model.PriorityHigh,
			},
			// 0.4*0.8 + 0.3*0.5 + 0.2*0.5 + 0.1*1.0
			want: 0.67,
		},
		{
			name: "no burst baseline yet",
			in: Inputs{
				Confidence: 0.65,
				Sentiment:  f(-0.6),
				Priority:   model.PriorityHigh,
			},
			// 0.4*0.65 + 0 + 0.2*0.6 + 0.1*1.0
			want: 0.48,
		},
		{
			name: "missing sentiment contributes zero",
			in: Inputs{
				Confidence:      0.5,
				FrequencyChange: f(100),
				Priority:        model.PriorityMedium,
			},
			// 0.4*0.5 + 0.3*1.0 + 0 + 0.1*0.6
			want: 0.56,
		},
		{
			name: "low priority",
			in: Inputs{
				Confidence: 1,
				Priority:   model.PriorityLow,
			},
			// 0.4*1.0 + 0.1*0.3
			want: 0.43,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Severity(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityBurstClamp(t *testing.T) {
	s := testScorer()

	// A +800% spike saturates the burst term at 1 rather than letting
	// one component dominate the score.
	spike := s.Severity(Inputs{Confidence: 0.5, FrequencyChange: f(800), Priority: model.PriorityMedium})
	cap100 := s.Severity(Inputs{Confidence: 0.5, FrequencyChange: f(100), Priority: model.PriorityMedium})
	if math.Abs(spike-cap100) > 1e-9 {
		t.Errorf("burst above 100%% not saturated: %v vs %v", spike, cap100)
	}

	// Declines contribute zero burst, not negative severity.
	decline := s.Severity(Inputs{Confidence: 0.5, FrequencyChange: f(-80), Priority: model.PriorityMedium})
	flat := s.Severity(Inputs{Confidence: 0.5, Priority: model.PriorityMedium})
	if math.Abs(decline-flat) > 1e-9 {
		t.Errorf("negative burst leaked into severity: %v vs %v", decline, flat)
	}
}

func TestSeverityBounds(t *testing.T) {
	s := testScorer()

	hi := s.Severity(Inputs{
		Confidence:      1,
		FrequencyChange: f(1000),
		Sentiment:       f(-1),
		Priority:        model.PriorityHigh,
	})
	if hi < 0 || hi > 1 {
		t.Errorf("severity %v outside [0,1]", hi)
	}

	// Unset priority falls back to the medium value; everything else
	// contributes zero.
	lo := s.Severity(Inputs{})
	if math.Abs(lo-0.06) > 1e-9 {
		t.Errorf("empty inputs severity = %v, want 0.06", lo)
	}
}

func TestSeveritySentimentMagnitude(t *testing.T) {
	s := testScorer()

	neg := s.Severity(Inputs{Confidence: 0.5, Sentiment: f(-0.7), Priority: model.PriorityMedium})
	pos := s.Severity(Inputs{Confidence: 0.5, Sentiment: f(0.7), Priority: model.PriorityMedium})
	if math.Abs(neg-pos) > 1e-9 {
		t.Errorf("sentiment sign changed severity: %v vs %v", neg, pos)
	}
}
