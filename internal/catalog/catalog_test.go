package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ceylonpulse/signalengine/internal/model"
)

func validDef() SignalDefinition {
	return SignalDefinition{
		SignalID:    "test-signal",
		Name:        "Test Signal",
		Keywords:    []string{"alpha", "beta"},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignalDefinition)
		wantErr string
	}{
		{
			name:   "valid definition",
			mutate: func(d *SignalDefinition) {},
		},
		{
			name:    "missing signal id",
			mutate:  func(d *SignalDefinition) { d.SignalID = "" },
			wantErr: "signal_id",
		},
		{
			name:    "empty keywords",
			mutate:  func(d *SignalDefinition) { d.Keywords = nil },
			wantErr: "keyword",
		},
		{
			name:    "blank keyword",
			mutate:  func(d *SignalDefinition) { d.Keywords = []string{"alpha", "  "} },
			wantErr: "keyword",
		},
		{
			name:    "invalid pestle",
			mutate:  func(d *SignalDefinition) { d.Pestle = "Astrological" },
			wantErr: "pestle",
		},
		{
			name:    "invalid default swot",
			mutate:  func(d *SignalDefinition) { d.DefaultSwot = "Maybe" },
			wantErr: "swot",
		},
		{
			name:    "invalid swot rule",
			mutate:  func(d *SignalDefinition) { d.SwotRule = "coin_flip" },
			wantErr: "swot_rule",
		},
		{
			name:    "invalid priority",
			mutate:  func(d *SignalDefinition) { d.Priority = "URGENT" },
			wantErr: "priority",
		},
		{
			name:    "invalid detection mode",
			mutate:  func(d *SignalDefinition) { d.Mode = "psychic" },
			wantErr: "detection_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDef()
			tt.mutate(&def)
			_, err := New([]SignalDefinition{def})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("New() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	a := validDef()
	b := validDef()
	b.Name = "Second"
	_, err := New([]SignalDefinition{a, b})
	if err == nil {
		t.Fatal("New() accepted duplicate signal ids")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("New() error = %v, want mention of duplicate", err)
	}
}

func TestBuiltinCatalog(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatalf("builtin catalog is invalid: %v", err)
	}
	if got := cat.Len(); got != 40 {
		t.Fatalf("builtin catalog has %d signals, want 40", got)
	}

	counts := map[model.PestleCategory]int{}
	for _, def := range cat.All() {
		counts[def.Pestle]++
	}
	want := map[model.PestleCategory]int{
		model.PestlePolitical:     8,
		model.PestleEconomic:      8,
		model.PestleSocial:        6,
		model.PestleTechnological: 5,
		model.PestleLegal:         4,
		model.PestleEnvironmental: 9,
	}
	for category, n := range want {
		if counts[category] != n {
			t.Errorf("category %s has %d signals, want %d", category, counts[category], n)
		}
	}
}

func TestLookup(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	def, ok := cat.Lookup("fuel-shortage-mentions")
	if !ok {
		t.Fatal("Lookup did not find fuel-shortage-mentions")
	}
	if def.Pestle != model.PestleEconomic {
		t.Errorf("fuel-shortage-mentions pestle = %s, want %s", def.Pestle, model.PestleEconomic)
	}

	if _, ok := cat.Lookup("no-such-signal"); ok {
		t.Error("Lookup found a signal that does not exist")
	}
}

func TestLookupByName(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"Fuel Shortage Mentions", "fuel shortage mentions", "FUEL SHORTAGE MENTIONS"} {
		def, ok := cat.LookupByName(name)
		if !ok {
			t.Fatalf("LookupByName(%q) not found", name)
		}
		if def.SignalID != "fuel-shortage-mentions" {
			t.Errorf("LookupByName(%q) = %s, want fuel-shortage-mentions", name, def.SignalID)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signals.yaml")
	content := `- signal_id: water-cuts
  name: Water Cuts
  keywords: ["water cut", "supply interruption"]
  pestle_category: Technological
  default_swot: Threat
  swot_rule: fixed
  priority: MEDIUM
  detection_mode: keyword
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("LoadFile() loaded %d signals, want 1", cat.Len())
	}
	if _, ok := cat.Lookup("water-cuts"); !ok {
		t.Error("loaded catalog is missing water-cuts")
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `- signal_id: broken
  name: Broken
  keywords: []
  pestle_category: Economic
  default_swot: Threat
  swot_rule: fixed
  priority: HIGH
  detection_mode: keyword
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile() accepted a catalog with no keywords")
	}
}

func TestLoadDefaultsToBuiltin(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cat.Len() != 40 {
		t.Errorf("Load(\"\") returned %d signals, want builtin 40", cat.Len())
	}
}

func TestHandleReplace(t *testing.T) {
	orig, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandle(orig)
	if h.Current() != orig {
		t.Fatal("Current() did not return the initial catalog")
	}

	small, err := New([]SignalDefinition{validDef()})
	if err != nil {
		t.Fatal(err)
	}
	h.Replace(small)
	if h.Current() != small {
		t.Error("Replace() did not swap the catalog")
	}
}
