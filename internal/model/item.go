package model

import "time"

// TextItem is one collected text snippet (news article, social post,
// government notice) after upstream cleaning. The engine never mutates it.
type TextItem struct {
	ItemID      string    `json:"item_id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`

	// Optional upstream NLP outputs. Absence triggers documented fallbacks,
	// never an error.
	LocationHint string    `json:"location_hint,omitempty"`
	Entities     []Entity  `json:"entities,omitempty"`
	Embedding    []float64 `json:"embedding,omitempty"`
	Sentiment    *float64  `json:"sentiment,omitempty"` // [-1,1]
}

// Entity is a named entity attached by upstream NER.
type Entity struct {
	Type  string `json:"type"` // e.g. "location", "organization", "person"
	Value string `json:"value"`
}

// EntityTypeLocation is the entity type propagated as a location hint.
const EntityTypeLocation = "location"

// FirstLocation returns the value of the first location entity, or "".
func (t *TextItem) FirstLocation() string {
	for _, e := range t.Entities {
		if e.Type == EntityTypeLocation {
			return e.Value
		}
	}
	return ""
}

// Location prefers the upstream location hint, falling back to the
// first location entity from NER. Every match source propagates
// locations through this one rule.
func (t *TextItem) Location() string {
	if t.LocationHint != "" {
		return t.LocationHint
	}
	return t.FirstLocation()
}

// MatchSource identifies which detector produced a candidate match.
type MatchSource string

const (
	MatchSourceKeyword MatchSource = "keyword"
	MatchSourceLLM     MatchSource = "llm"
)

// CandidateMatch links one item to one signal with keyword evidence.
// Candidate matches are ephemeral: they exist only within one batch.
type CandidateMatch struct {
	ItemID          string      `json:"item_id"`
	SignalID        string      `json:"signal_id"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Confidence      float64     `json:"confidence"` // [0,1]
	Source          MatchSource `json:"source"`
	Location        string      `json:"location,omitempty"`
}
