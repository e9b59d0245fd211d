package replay

// #region imports
import (
	"os"
	"path/filepath"
	"testing"

	"github.com/driftlab/stance-engine/internal/operator"
)

// #endregion

// #region fixture-tests

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, `{
		"description": "two novelty turns",
		"seed": 7,
		"mode": {"intensity": 80, "disabled_operators": ["RiskEscalate"]},
		"turns": [
			{"message": "can we try a different approach?", "response": "Through the lens of play, yes."},
			{"message": "bored now", "response": "Then let us change the game."}
		]
	}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Seed != 7 || len(f.Turns) != 2 {
		t.Errorf("fixture = seed %d, %d turns", f.Seed, len(f.Turns))
	}

	mode, err := f.Mode.ToMode()
	if err != nil {
		t.Fatalf("ToMode: %v", err)
	}
	if mode.Intensity != 80 {
		t.Errorf("intensity = %d, want 80", mode.Intensity)
	}
	// Unstated fields keep their defaults.
	if mode.MaxDriftPerTurn != 25 || mode.OperatorFatigueLookback != 10 {
		t.Errorf("defaults not preserved: %+v", mode)
	}
	if mode.OperatorAllowed(operator.RiskEscalate) {
		t.Error("disabled operator still allowed")
	}
}

func TestLoadFixtureRejectsBadInput(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := writeFixture(t, `{"description": "no turns", "turns": []}`)
	if _, err := LoadFixture(empty); err == nil {
		t.Error("expected error for fixture without turns")
	}

	malformed := writeFixture(t, `{"turns": [`)
	if _, err := LoadFixture(malformed); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestFixtureModeValidationSurfaces(t *testing.T) {
	fm := FixtureMode{Intensity: 300}
	if _, err := fm.ToMode(); err == nil {
		t.Error("expected validation error for out-of-range intensity")
	}
}

// #endregion
