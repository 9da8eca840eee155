// Package classify maps signals onto the PESTLE/SWOT grid.
package classify

import (
	"github.com/ceylonpulse/signalengine/internal/catalog"
	"github.com/ceylonpulse/signalengine/internal/model"
)

// Sentiment thresholds for the banded SWOT rule.
const (
	bandOpportunity = 0.2
	bandWeakness    = -0.2
)

// Classify returns the PESTLE category and SWOT label for one signal
// occurrence. The mapping is pure and total: every catalog signal yields
// exactly one label for any sentiment in [-1,1] or nil. Missing sentiment
// falls back to the signal's default label.
func Classify(def *catalog.SignalDefinition, sentiment *float64) (model.PestleCategory, model.SwotLabel) {
	return def.Pestle, swot(def, sentiment)
}

func swot(def *catalog.SignalDefinition, sentiment *float64) model.SwotLabel {
	switch def.SwotRule {
	case catalog.SwotRuleSentimentSign:
		if sentiment == nil {
			return def.DefaultSwot
		}
		if *sentiment > 0 {
			return model.SwotOpportunity
		}
		return model.SwotThreat

	case catalog.SwotRuleSentimentBand:
		if sentiment == nil {
			return def.DefaultSwot
		}
		switch {
		case *sentiment > bandOpportunity:
			return model.SwotOpportunity
		case *sentiment < bandWeakness:
			return model.SwotWeakness
		default:
			return model.SwotThreat
		}

	default:
		return def.DefaultSwot
	}
}
