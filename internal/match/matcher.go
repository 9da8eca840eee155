// Package match scores text items against the signal catalog.
package match

import (
	"regexp"
	"strings"

	"github.com/ceylonpulse/signalengine/internal/catalog"
	"github.com/ceylonpulse/signalengine/internal/model"
	"github.com/ceylonpulse/signalengine/internal/textutil"
)

// Matcher performs case-insensitive whole-phrase keyword matching. It is
// a pure function of (item, catalog, parameters): no shared mutable
// state, safe to call concurrently.
type Matcher struct {
	cat    *catalog.Catalog
	params model.DetectionConfig

	// One compiled pattern per keyword, keyed by signal id, in keyword
	// order. Word-boundary anchored so "rain" never matches "brainstorm".
	patterns map[string][]*regexp.Regexp
}

// New compiles keyword patterns for every signal in the catalog.
func New(cat *catalog.Catalog, params model.DetectionConfig) *Matcher {
	m := &Matcher{
		cat:      cat,
		params:   params,
		patterns: make(map[string][]*regexp.Regexp, cat.Len()),
	}
	for _, def := range cat.All() {
		pats := make([]*regexp.Regexp, len(def.Keywords))
		for i, kw := range def.Keywords {
			pats[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		}
		m.patterns[def.SignalID] = pats
	}
	return m
}

// MatchItem returns zero or more candidate matches for one item. An item
// may match several signals; matching nothing is a normal outcome and
// yields an empty slice.
func (m *Matcher) MatchItem(item *model.TextItem) []model.CandidateMatch {
	text := strings.ToLower(textutil.VisibleText(item.Title + " " + item.Body))
	source := strings.ToLower(item.Source)

	var out []model.CandidateMatch
	for _, def := range m.cat.All() {
		var matched []string
		for i, pat := range m.patterns[def.SignalID] {
			if pat.MatchString(text) {
				matched = append(matched, def.Keywords[i])
			}
		}
		if len(matched) == 0 {
			continue
		}

		confidence := m.params.ConfidenceBase + float64(len(matched))*m.params.ConfidenceStep
		if sourceMatches(def.Sources, source) {
			confidence += m.params.SourceBoost
		}
		if confidence > 1 {
			confidence = 1
		}

		out = append(out, model.CandidateMatch{
			ItemID:          item.ItemID,
			SignalID:        def.SignalID,
			MatchedKeywords: matched,
			Confidence:      confidence,
			Source:          model.MatchSourceKeyword,
			Location:        item.Location(),
		})
	}
	return out
}

// sourceMatches reports whether the item's source names one of the
// signal's authoritative publishers.
func sourceMatches(sources []string, itemSource string) bool {
	if itemSource == "" {
		return false
	}
	for _, s := range sources {
		if strings.Contains(itemSource, s) {
			return true
		}
	}
	return false
}
