// Package catalog holds the static, versioned table of monitored signals.
// A catalog is immutable after construction; updates replace the whole
// table so concurrent readers never observe a half-updated state.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/ceylonpulse/signalengine/internal/model"
)

// SwotRule selects how a signal maps onto the SWOT axis.
type SwotRule string

const (
	// SwotRuleFixed always yields the signal's default label.
	SwotRuleFixed SwotRule = "fixed"
	// SwotRuleSentimentSign yields Opportunity for positive sentiment,
	// Threat otherwise.
	SwotRuleSentimentSign SwotRule = "sentiment_sign"
	// SwotRuleSentimentBand yields Opportunity above +0.2, Weakness below
	// -0.2, Threat in the neutral band.
	SwotRuleSentimentBand SwotRule = "sentiment_band"
)

// Valid reports whether the rule is one of the known rules.
func (r SwotRule) Valid() bool {
	return r == SwotRuleFixed || r == SwotRuleSentimentSign || r == SwotRuleSentimentBand
}

// DetectionMode selects which evidence a signal requires.
type DetectionMode string

const (
	ModeKeyword          DetectionMode = "keyword"
	ModeKeywordFrequency DetectionMode = "keyword+frequency"
)

// Valid reports whether the mode is one of the known modes.
func (m DetectionMode) Valid() bool {
	return m == ModeKeyword || m == ModeKeywordFrequency
}

// SignalDefinition describes one monitored signal.
type SignalDefinition struct {
	SignalID    string               `yaml:"signal_id" json:"signal_id"`
	Name        string               `yaml:"name" json:"name"`
	Keywords    []string             `yaml:"keywords" json:"keywords"`
	Pestle      model.PestleCategory `yaml:"pestle_category" json:"pestle_category"`
	DefaultSwot model.SwotLabel      `yaml:"default_swot" json:"default_swot"`
	SwotRule    SwotRule             `yaml:"swot_rule" json:"swot_rule"`
	Priority    model.Priority       `yaml:"priority" json:"priority"`
	Mode        DetectionMode        `yaml:"detection_mode" json:"detection_mode"`

	// Sources lists substrings of source names that make this signal's
	// publisher authoritative (e.g. "ceb" for power outages). A match
	// raises confidence by the configured source boost.
	Sources []string `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// ValidationError reports a malformed catalog. It is fatal at load time:
// the catalog must never load partially.
type ValidationError struct {
	SignalID string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.SignalID == "" {
		return "catalog: " + e.Reason
	}
	return fmt.Sprintf("catalog: signal %q: %s", e.SignalID, e.Reason)
}

// Catalog is an ordered, read-only table of signal definitions.
type Catalog struct {
	defs []SignalDefinition
	byID map[string]*SignalDefinition
}

// New validates the definitions and builds a catalog. Any duplicate id,
// empty keyword list, or out-of-enumeration field fails the whole load.
func New(defs []SignalDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, &ValidationError{Reason: "no signal definitions"}
	}

	c := &Catalog{
		defs: make([]SignalDefinition, len(defs)),
		byID: make(map[string]*SignalDefinition, len(defs)),
	}
	copy(c.defs, defs)

	for i := range c.defs {
		d := &c.defs[i]
		switch {
		case strings.TrimSpace(d.SignalID) == "":
			return nil, &ValidationError{Reason: fmt.Sprintf("definition %d has empty signal_id", i)}
		case len(d.Keywords) == 0:
			return nil, &ValidationError{SignalID: d.SignalID, Reason: "empty keyword list"}
		case !d.Pestle.Valid():
			return nil, &ValidationError{SignalID: d.SignalID, Reason: fmt.Sprintf("invalid pestle_category %q", d.Pestle)}
		case !d.DefaultSwot.Valid():
			return nil, &ValidationError{SignalID: d.SignalID, Reason: fmt.Sprintf("invalid default_swot %q", d.DefaultSwot)}
		case !d.SwotRule.Valid():
			return nil, &ValidationError{SignalID: d.SignalID, Reason: fmt.Sprintf("invalid swot_rule %q", d.SwotRule)}
		case !d.Priority.Valid():
			return nil, &ValidationError{SignalID: d.SignalID, Reason: fmt.Sprintf("invalid priority %q", d.Priority)}
		case !d.Mode.Valid():
			return nil, &ValidationError{SignalID: d.SignalID, Reason: fmt.Sprintf("invalid detection_mode %q", d.Mode)}
		}
		for _, k := range d.Keywords {
			if strings.TrimSpace(k) == "" {
				return nil, &ValidationError{SignalID: d.SignalID, Reason: "blank keyword"}
			}
		}
		if _, dup := c.byID[d.SignalID]; dup {
			return nil, &ValidationError{SignalID: d.SignalID, Reason: "duplicate signal_id"}
		}
		c.byID[d.SignalID] = d
	}

	return c, nil
}

// Lookup returns the definition for a signal id.
func (c *Catalog) Lookup(signalID string) (*SignalDefinition, bool) {
	d, ok := c.byID[signalID]
	return d, ok
}

// All returns the definitions in catalog order. Callers must not modify
// the returned slice.
func (c *Catalog) All() []SignalDefinition {
	return c.defs
}

// Len returns the number of signals.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// LookupByName returns the definition whose display name matches
// case-insensitively. Used to map LLM output back onto the catalog.
func (c *Catalog) LookupByName(name string) (*SignalDefinition, bool) {
	for i := range c.defs {
		if strings.EqualFold(c.defs[i].Name, name) {
			return &c.defs[i], true
		}
	}
	return nil, false
}

// LoadFile reads and validates a YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var defs []SignalDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(defs)
}

// Load returns the catalog at path, or the builtin catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	return LoadFile(path)
}

// Handle is a swappable reference to the current catalog. Replace swaps
// the whole table atomically, so readers see either the old or the new
// catalog, never a mixture.
type Handle struct {
	cur atomic.Pointer[Catalog]
}

// NewHandle creates a handle holding the given catalog.
func NewHandle(c *Catalog) *Handle {
	h := &Handle{}
	h.cur.Store(c)
	return h
}

// Current returns the catalog in effect.
func (h *Handle) Current() *Catalog {
	return h.cur.Load()
}

// Replace installs a new catalog.
func (h *Handle) Replace(c *Catalog) {
	h.cur.Store(c)
}
