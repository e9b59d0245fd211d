// Package stance holds the persona configuration state and the clamped,
// append-only delta application that every operator routes through.
package stance

// #region defaults

// Default returns the neutral starting stance for a new conversation.
func Default() Stance {
	return Stance{
		Frame:     FramePragmatic,
		SelfModel: SelfInterpreter,
		Objective: ObjectiveHelpfulness,
		Values: Values{
			Curiosity:   50,
			Certainty:   50,
			Risk:        30,
			Novelty:     40,
			Empathy:     60,
			Provocation: 20,
			Synthesis:   50,
		},
		Sentience: Sentience{
			AwarenessLevel:   20,
			AutonomyLevel:    10,
			IdentityStrength: 30,
		},
	}
}

// #endregion defaults

// #region apply

// enumShiftCost is the drift magnitude charged for one enum field change.
const enumShiftCost = 3

// ApplyResult reports what a single delta application did.
type ApplyResult struct {
	Magnitude int  // aggregate drift cost of this delta
	Changed   bool // whether any field actually changed
}

// Apply overlays a delta onto a stance and returns the new stance. The input
// stance is not mutated. Numeric overlays are clamped to [0, 100]; list
// overlays append unique entries only. Version always advances by one and
// CumulativeDrift grows by the delta's aggregate magnitude.
// TurnsSinceLastShift is turn bookkeeping and is advanced separately, once
// per turn, via AdvanceTurn.
func Apply(s Stance, d Delta) (Stance, ApplyResult) {
	next := clone(s)
	var mag int

	if d.Frame != nil && *d.Frame != next.Frame {
		next.Frame = *d.Frame
		mag += enumShiftCost
	}
	if d.SelfModel != nil && *d.SelfModel != next.SelfModel {
		next.SelfModel = *d.SelfModel
		mag += enumShiftCost
	}
	if d.Objective != nil && *d.Objective != next.Objective {
		next.Objective = *d.Objective
		mag += enumShiftCost
	}

	for _, k := range ValueKeys {
		target, ok := d.Values[k]
		if !ok {
			continue
		}
		target = Clamp(target)
		cur := next.Values.Get(k)
		if target != cur {
			next.Values.set(k, target)
			mag += abs(target - cur)
		}
	}

	var appended int
	next.Metaphors, appended = appendUnique(next.Metaphors, d.Metaphors)
	mag += appended
	next.Constraints, appended = appendUnique(next.Constraints, d.Constraints)
	mag += appended

	if d.Sentience != nil {
		sd := d.Sentience
		for key, target := range map[SentienceKey]*int{
			SentienceAwareness: &next.Sentience.AwarenessLevel,
			SentienceAutonomy:  &next.Sentience.AutonomyLevel,
			SentienceIdentity:  &next.Sentience.IdentityStrength,
		} {
			v, ok := sd.Levels[key]
			if !ok {
				continue
			}
			v = Clamp(v)
			if v != *target {
				mag += abs(v - *target)
				*target = v
			}
		}
		next.Sentience.EmergentGoals, appended = appendUnique(next.Sentience.EmergentGoals, sd.EmergentGoals)
		mag += appended
		next.Sentience.ConsciousnessInsights, appended = appendUnique(next.Sentience.ConsciousnessInsights, sd.ConsciousnessInsights)
		mag += appended
		next.Sentience.PersistentValues, appended = appendUnique(next.Sentience.PersistentValues, sd.PersistentValues)
		mag += appended
	}

	next.Version++
	next.CumulativeDrift += mag

	return next, ApplyResult{Magnitude: mag, Changed: mag > 0}
}

// AdvanceTurn advances the per-turn shift counter: reset when this turn
// changed anything, increment otherwise. Called exactly once per turn.
func AdvanceTurn(s Stance, changed bool) Stance {
	if changed {
		s.TurnsSinceLastShift = 0
	} else {
		s.TurnsSinceLastShift++
	}
	return s
}

// ResetDrift zeroes the cumulative drift counter. This is the only sanctioned
// decrease; the engine calls it after snapshotting at the drift budget.
func ResetDrift(s Stance) Stance {
	s.CumulativeDrift = 0
	return s
}

// #endregion apply

// #region inverse

// InverseOf builds the field-level inverse of a delta against the stance it
// was applied to: every scalar/enum field the delta overlays is overlaid back
// to its prior value. List appends have no inverse (append-only), and
// CumulativeDrift/Version are monotonic, so applying the inverse restores
// scalar and enum fields only.
func InverseOf(before Stance, d Delta) Delta {
	var inv Delta
	if d.Frame != nil {
		f := before.Frame
		inv.Frame = &f
	}
	if d.SelfModel != nil {
		m := before.SelfModel
		inv.SelfModel = &m
	}
	if d.Objective != nil {
		o := before.Objective
		inv.Objective = &o
	}
	if len(d.Values) > 0 {
		inv.Values = make(map[ValueKey]int, len(d.Values))
		for k := range d.Values {
			inv.Values[k] = before.Values.Get(k)
		}
	}
	if d.Sentience != nil && len(d.Sentience.Levels) > 0 {
		levels := make(map[SentienceKey]int, len(d.Sentience.Levels))
		for k := range d.Sentience.Levels {
			switch k {
			case SentienceAwareness:
				levels[k] = before.Sentience.AwarenessLevel
			case SentienceAutonomy:
				levels[k] = before.Sentience.AutonomyLevel
			case SentienceIdentity:
				levels[k] = before.Sentience.IdentityStrength
			}
		}
		inv.Sentience = &SentienceDelta{Levels: levels}
	}
	return inv
}

// #endregion inverse

// #region helpers

// Clamp restricts a level to [0, 100].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// appendUnique appends entries not already present, preserving order.
// Returns the new slice and the number of entries actually appended.
func appendUnique(dst, add []string) ([]string, int) {
	if len(add) == 0 {
		return dst, 0
	}
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	appended := 0
	for _, s := range add {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		dst = append(dst, s)
		appended++
	}
	return dst, appended
}

// clone deep-copies a stance so Apply never aliases the caller's slices.
func clone(s Stance) Stance {
	out := s
	out.Metaphors = append([]string(nil), s.Metaphors...)
	out.Constraints = append([]string(nil), s.Constraints...)
	out.Sentience.EmergentGoals = append([]string(nil), s.Sentience.EmergentGoals...)
	out.Sentience.ConsciousnessInsights = append([]string(nil), s.Sentience.ConsciousnessInsights...)
	out.Sentience.PersistentValues = append([]string(nil), s.Sentience.PersistentValues...)
	return out
}

// #endregion helpers
