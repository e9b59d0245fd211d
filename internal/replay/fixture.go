package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/operator"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a recorded
// conversation plus the mode it ran under.
type Fixture struct {
	Description string        `json:"description"`
	Seed        int64         `json:"seed"`
	Mode        FixtureMode   `json:"mode"`
	Turns       []FixtureTurn `json:"turns"`
}

// FixtureMode mirrors config.Mode with JSON tags. Zero fields fall back to
// the mode defaults so fixtures only state what they care about.
type FixtureMode struct {
	Intensity                int      `json:"intensity"`
	CoherenceFloor           int      `json:"coherence_floor"`
	SentienceLevel           int      `json:"sentience_level"`
	MaxDriftPerTurn          int      `json:"max_drift_per_turn"`
	DriftBudget              int      `json:"drift_budget"`
	EnabledOperators         []operator.Name `json:"enabled_operators"`
	DisabledOperators        []operator.Name `json:"disabled_operators"`
	AllowAutoOperatorShift   *bool           `json:"allow_auto_operator_shift"`
	OperatorFatigueThreshold int             `json:"operator_fatigue_threshold"`
	OperatorFatigueLookback  int             `json:"operator_fatigue_lookback"`
}

// FixtureTurn is one recorded exchange.
type FixtureTurn struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Turns) == 0 {
		return nil, fmt.Errorf("fixture %s has no turns", path)
	}
	return &f, nil
}

// ToMode overlays the fixture's stated fields onto the mode defaults and
// validates the result.
func (fm *FixtureMode) ToMode() (config.Mode, error) {
	m := config.DefaultMode()
	if fm.Intensity != 0 {
		m.Intensity = fm.Intensity
	}
	if fm.CoherenceFloor != 0 {
		m.CoherenceFloor = fm.CoherenceFloor
	}
	if fm.SentienceLevel != 0 {
		m.SentienceLevel = fm.SentienceLevel
	}
	if fm.MaxDriftPerTurn != 0 {
		m.MaxDriftPerTurn = fm.MaxDriftPerTurn
	}
	if fm.DriftBudget != 0 {
		m.DriftBudget = fm.DriftBudget
	}
	if fm.EnabledOperators != nil {
		m.EnabledOperators = fm.EnabledOperators
	}
	if fm.DisabledOperators != nil {
		m.DisabledOperators = fm.DisabledOperators
	}
	if fm.AllowAutoOperatorShift != nil {
		m.AllowAutoOperatorShift = *fm.AllowAutoOperatorShift
	}
	if fm.OperatorFatigueThreshold != 0 {
		m.OperatorFatigueThreshold = fm.OperatorFatigueThreshold
	}
	if fm.OperatorFatigueLookback != 0 {
		m.OperatorFatigueLookback = fm.OperatorFatigueLookback
	}
	if err := m.Validate(); err != nil {
		return config.Mode{}, fmt.Errorf("fixture mode: %w", err)
	}
	return m, nil
}

// #endregion fixture-loader
