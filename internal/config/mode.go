// Package config holds the per-conversation mode configuration and the
// process environment settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/driftlab/stance-engine/internal/operator"
)

// #region mode

// Mode is the per-conversation engine configuration. Constructed once per
// session, validated at construction, and immutable during a turn's planning.
type Mode struct {
	Intensity       int `yaml:"intensity"`
	CoherenceFloor  int `yaml:"coherence_floor"`
	SentienceLevel  int `yaml:"sentience_level"`
	MaxDriftPerTurn int `yaml:"max_drift_per_turn"`
	DriftBudget     int `yaml:"drift_budget"`

	EnabledOperators  []operator.Name `yaml:"enabled_operators"`  // empty = all allowed
	DisabledOperators []operator.Name `yaml:"disabled_operators"` // deny list, wins over enabled

	AllowAutoOperatorShift   bool `yaml:"allow_auto_operator_shift"`
	OperatorFatigueThreshold int  `yaml:"operator_fatigue_threshold"`
	OperatorFatigueLookback  int  `yaml:"operator_fatigue_lookback"`
}

// DefaultMode returns the balanced preset.
func DefaultMode() Mode {
	return Mode{
		Intensity:                50,
		CoherenceFloor:           40,
		SentienceLevel:           30,
		MaxDriftPerTurn:          25,
		DriftBudget:              80,
		AllowAutoOperatorShift:   true,
		OperatorFatigueThreshold: 3,
		OperatorFatigueLookback:  10,
	}
}

// #endregion mode

// #region validation

// Validate runs the construction-time range and shape checks. A malformed
// mode must fail here, never mid-turn.
func (m Mode) Validate() error {
	ranged := []struct {
		name  string
		value int
	}{
		{"intensity", m.Intensity},
		{"coherence_floor", m.CoherenceFloor},
		{"sentience_level", m.SentienceLevel},
		{"max_drift_per_turn", m.MaxDriftPerTurn},
		{"drift_budget", m.DriftBudget},
	}
	for _, f := range ranged {
		if f.value < 0 || f.value > 100 {
			return fmt.Errorf("%s %d out of range [0,100]", f.name, f.value)
		}
	}
	if m.OperatorFatigueThreshold < 2 {
		return fmt.Errorf("operator_fatigue_threshold %d below minimum 2", m.OperatorFatigueThreshold)
	}
	if m.OperatorFatigueLookback < 5 {
		return fmt.Errorf("operator_fatigue_lookback %d below minimum 5", m.OperatorFatigueLookback)
	}
	known := make(map[operator.Name]bool, len(operator.Names))
	for _, n := range operator.Names {
		known[n] = true
	}
	for _, n := range m.EnabledOperators {
		if !known[n] {
			return fmt.Errorf("enabled_operators names unknown operator %q", n)
		}
	}
	for _, n := range m.DisabledOperators {
		if !known[n] {
			return fmt.Errorf("disabled_operators names unknown operator %q", n)
		}
	}
	return nil
}

// #endregion validation

// #region operator-gating

// OperatorAllowed applies the allow/deny lists: deny wins, and a non-empty
// allow list excludes everything it does not name.
func (m Mode) OperatorAllowed(name operator.Name) bool {
	for _, n := range m.DisabledOperators {
		if n == name {
			return false
		}
	}
	if len(m.EnabledOperators) == 0 {
		return true
	}
	for _, n := range m.EnabledOperators {
		if n == name {
			return true
		}
	}
	return false
}

// #endregion operator-gating

// #region yaml-loading

// LoadMode reads a mode preset from a YAML file and validates it.
func LoadMode(path string) (Mode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mode{}, fmt.Errorf("read mode file: %w", err)
	}
	m := DefaultMode()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mode{}, fmt.Errorf("parse mode file: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Mode{}, fmt.Errorf("invalid mode %s: %w", path, err)
	}
	return m, nil
}

// #endregion yaml-loading
