package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/note2video/internal/classify"
)

func TestReadProfileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	body := `timing:
  pre_hold: 0.5
  outro_hold: 6.0
patterns:
  data_structures:
    - match: deque
      weight: 5
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ReadProfile(path)
	if err != nil {
		t.Fatalf("ReadProfile failed: %v", err)
	}

	cfg := Default()
	p.Apply(&cfg)
	if cfg.PreHold != 0.5 {
		t.Errorf("PreHold = %v, want 0.5", cfg.PreHold)
	}
	if cfg.OutroHold != 6.0 {
		t.Errorf("OutroHold = %v, want 6.0", cfg.OutroHold)
	}
	// Unset fields keep their defaults.
	if cfg.PostHold != Default().PostHold {
		t.Errorf("PostHold = %v, want default", cfg.PostHold)
	}

	table := p.Table()
	if len(table[classify.DataStructures]) != 1 || table[classify.DataStructures][0].Match != "deque" {
		t.Errorf("pattern override not applied: %v", table[classify.DataStructures])
	}
	if len(table[classify.Physics]) == 0 {
		t.Error("untouched categories must keep their built-in patterns")
	}
}

func TestReadProfileUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	body := "patterns:\n  astrology:\n    - match: mars\n      weight: 9\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadProfile(path); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestWriteProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.yaml")
	p := &Profile{Timing: Timing{PreHold: 1.2}}
	if err := WriteProfile(path, p); err != nil {
		t.Fatalf("WriteProfile failed: %v", err)
	}
	back, err := ReadProfile(path)
	if err != nil {
		t.Fatalf("ReadProfile failed: %v", err)
	}
	if back.Timing.PreHold != 1.2 {
		t.Errorf("round trip lost timing: %v", back.Timing)
	}
}
