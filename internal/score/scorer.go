// Package score computes bounded severity for detected occurrences.
package score

import (
	"github.com/ceylonpulse/signalengine/internal/model"
)

// Scorer combines cluster confidence, burst ratio, sentiment intensity,
// and catalog priority into one severity in [0,1]. Confidence carries the
// largest weight: keyword specificity is the most reliable per-item
// evidence, with burst and sentiment as corroboration and priority as a
// small nudge.
type Scorer struct {
	cfg model.ScoringConfig
}

// NewScorer creates a scorer with the given weights.
func NewScorer(cfg model.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Inputs are the per-cluster values entering the severity formula.
type Inputs struct {
	// Confidence is the cluster's aggregated (maximum) match confidence.
	Confidence float64
	// FrequencyChange is the signed burst percentage; nil when the signal
	// has no baseline yet, which contributes zero burst.
	FrequencyChange *float64
	// Sentiment is the representative item's sentiment, if present.
	Sentiment *float64
	// Priority is the signal's catalog priority.
	Priority model.Priority
}

// Severity evaluates the weighted formula and clamps the result to [0,1].
func (s *Scorer) Severity(in Inputs) float64 {
	burst := 0.0
	if in.FrequencyChange != nil {
		burst = clamp(*in.FrequencyChange / 100)
	}

	sentiment := 0.0
	if in.Sentiment != nil {
		sentiment = *in.Sentiment
		if sentiment < 0 {
			sentiment = -sentiment
		}
	}

	severity := s.cfg.ConfidenceWeight*in.Confidence +
		s.cfg.BurstWeight*burst +
		s.cfg.SentimentWeight*sentiment +
		s.cfg.PriorityWeight*s.priorityValue(in.Priority)

	return clamp(severity)
}

func (s *Scorer) priorityValue(p model.Priority) float64 {
	switch p {
	case model.PriorityHigh:
		return s.cfg.HighPriorityValue
	case model.PriorityLow:
		return s.cfg.LowPriorityValue
	default:
		return s.cfg.MediumPriorityValue
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
