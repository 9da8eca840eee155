package model

import "time"

// PestleCategory is one axis of the strategic classification grid.
type PestleCategory string

const (
	PestlePolitical     PestleCategory = "Political"
	PestleEconomic      PestleCategory = "Economic"
	PestleSocial        PestleCategory = "Social"
	PestleTechnological PestleCategory = "Technological"
	PestleLegal         PestleCategory = "Legal"
	PestleEnvironmental PestleCategory = "Environmental"
)

// PestleCategories lists every valid category in display order.
var PestleCategories = []PestleCategory{
	PestlePolitical,
	PestleEconomic,
	PestleSocial,
	PestleTechnological,
	PestleLegal,
	PestleEnvironmental,
}

// Valid reports whether the category is inside the closed enumeration.
func (p PestleCategory) Valid() bool {
	for _, c := range PestleCategories {
		if p == c {
			return true
		}
	}
	return false
}

// SwotLabel is the second axis of the classification grid.
type SwotLabel string

const (
	SwotStrength    SwotLabel = "Strength"
	SwotWeakness    SwotLabel = "Weakness"
	SwotOpportunity SwotLabel = "Opportunity"
	SwotThreat      SwotLabel = "Threat"
)

// SwotLabels lists every valid label in display order.
var SwotLabels = []SwotLabel{SwotStrength, SwotWeakness, SwotOpportunity, SwotThreat}

// Valid reports whether the label is inside the closed enumeration.
func (s SwotLabel) Valid() bool {
	for _, l := range SwotLabels {
		if s == l {
			return true
		}
	}
	return false
}

// Priority is the catalog's documented business importance of a signal.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether the priority is one of HIGH/MEDIUM/LOW.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Event is the finalized, classified, scored record for one detected
// occurrence of a signal. Immutable once built; ownership passes to the
// downstream storage/API layer.
type Event struct {
	EventID  string  `json:"event_id"`
	SignalID string  `json:"signal_id"`
	Severity float64 `json:"severity"` // [0,1]

	// Sentiment of the representative item, if upstream provided one.
	Sentiment *float64 `json:"sentiment"`

	Location string `json:"location,omitempty"`

	// FrequencyChange is a signed percentage versus the trailing baseline.
	// Nil on first observation of a signal (no baseline to compare against).
	FrequencyChange *float64 `json:"frequency_change"`

	// Timestamp is the representative item's published_at.
	Timestamp time.Time `json:"timestamp"`

	Pestle PestleCategory `json:"pestle"`
	Swot   SwotLabel      `json:"swot"`

	// RawText is an excerpt from the representative item.
	RawText string `json:"raw_text"`
}
