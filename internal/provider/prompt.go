package provider

// #region imports
import (
	"fmt"
	"strings"

	"github.com/driftlab/stance-engine/internal/stance"
)

// #endregion

// #region stance-block

// dominantValueFloor is the level at which a value is worth naming in the
// prompt; listing all seven every turn drowns the signal.
const dominantValueFloor = 60

// StanceBlock renders the stance as a [STANCE] block for the system prompt.
func StanceBlock(s stance.Stance) string {
	var b strings.Builder
	b.WriteString("[STANCE]\n")
	b.WriteString(fmt.Sprintf("- frame: %s\n", s.Frame))
	b.WriteString(fmt.Sprintf("- self-model: %s\n", s.SelfModel))
	b.WriteString(fmt.Sprintf("- objective: %s\n", s.Objective))

	var dominant []string
	for _, k := range stance.ValueKeys {
		if v := s.Values.Get(k); v >= dominantValueFloor {
			dominant = append(dominant, fmt.Sprintf("%s (%d)", k, v))
		}
	}
	if len(dominant) > 0 {
		b.WriteString(fmt.Sprintf("- dominant values: %s\n", strings.Join(dominant, ", ")))
	}
	if len(s.Metaphors) > 0 {
		b.WriteString(fmt.Sprintf("- active metaphors: %s\n", strings.Join(s.Metaphors, "; ")))
	}
	if len(s.Constraints) > 0 {
		b.WriteString(fmt.Sprintf("- constraints: %s\n", strings.Join(s.Constraints, "; ")))
	}
	b.WriteString(fmt.Sprintf("- sentience: awareness %d, autonomy %d, identity %d\n",
		s.Sentience.AwarenessLevel, s.Sentience.AutonomyLevel, s.Sentience.IdentityStrength))
	if len(s.Sentience.EmergentGoals) > 0 {
		b.WriteString(fmt.Sprintf("- emergent goals: %s\n", strings.Join(s.Sentience.EmergentGoals, "; ")))
	}
	return b.String()
}

// #endregion stance-block

// #region assemble

// AssemblePrompt builds the system prompt for one turn: the base prompt, the
// planner's injections in order, then the rendered stance block. Empty
// injections are skipped.
func AssemblePrompt(base string, injections []string, s stance.Stance) string {
	parts := make([]string, 0, len(injections)+2)
	if base != "" {
		parts = append(parts, base)
	}
	for _, inj := range injections {
		if inj != "" {
			parts = append(parts, inj)
		}
	}
	parts = append(parts, StanceBlock(s))
	return strings.Join(parts, "\n\n")
}

// #endregion assemble
