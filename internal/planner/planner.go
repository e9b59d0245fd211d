// Package planner turns detected triggers into an ordered list of operations
// under the intensity budget, and tracks per-conversation operator fatigue.
package planner

import (
	"math/rand"
	"sort"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #region operation

// Operation is a fully materialized, ready-to-apply unit of change for the
// current turn.
type Operation struct {
	Name            operator.Name
	Description     string
	PromptInjection string
	StanceDelta     stance.Delta
	Source          trigger.Kind // the trigger that selected this operator
}

// #endregion operation

// #region options

// Options carries the planner's injectable collaborators. The zero value is
// valid: neutral weights and the package-level random source.
type Options struct {
	// Weights re-orders a trigger's candidate list by descending operator
	// effectiveness. Missing names weigh 1.0; nil leaves the curated order.
	Weights map[operator.Name]float64

	// Rand returns a uniform int in [0, n). Injected so the fallback branch
	// is deterministic under test. Nil uses math/rand.
	Rand func(n int) int
}

func (o Options) intn(n int) int {
	if o.Rand != nil {
		return o.Rand(n)
	}
	return rand.Intn(n)
}

func (o Options) weight(name operator.Name) float64 {
	if o.Weights == nil {
		return 1.0
	}
	if w, ok := o.Weights[name]; ok {
		return w
	}
	return 1.0
}

// #endregion options

// #region fallback

// fallbackOperators is the fixed set the random fallback draws from when a
// high-intensity conversation has gone stale with no trigger in sight.
var fallbackOperators = []operator.Name{
	operator.Reframe, operator.ValueShift, operator.PersonaMorph,
}

const (
	fallbackIntensityFloor = 60
	fallbackStaleTurns     = 3
)

// #endregion fallback

// #region plan

// MaxOperators derives the per-turn operation budget from intensity:
// 0 → 0, 1–30 → 1, 31–60 → 2, 61–90 → 3, 91–100 → 4.
func MaxOperators(intensity int) int {
	if intensity <= 0 {
		return 0
	}
	return (intensity + 29) / 30
}

// Plan walks triggers in confidence order and materializes up to the budget
// of operations. Unresolvable operator names are skipped silently; a
// registry miss is normal control flow, not an error. Planning never fails
// for well-formed inputs.
func Plan(triggers []trigger.Trigger, s stance.Stance, mode config.Mode, reg *operator.Registry, opts Options) []Operation {
	budget := MaxOperators(mode.Intensity)
	if budget == 0 {
		return nil
	}

	var ops []Operation
	selected := make(map[operator.Name]bool)

	// Operators never see the triggering text, only the current stance.
	ctx := operator.Context{}

	for _, tr := range triggers {
		if len(ops) >= budget {
			break
		}
		for _, name := range orderCandidates(operator.Candidates[tr.Kind], opts) {
			if selected[name] || !mode.OperatorAllowed(name) {
				continue
			}
			def, ok := reg.Get(name)
			if !ok {
				continue
			}
			ops = append(ops, materialize(def, s, ctx, tr.Kind))
			selected[name] = true
			if len(ops) >= budget {
				break
			}
		}
	}

	// Fallback: high intensity, stale stance, nothing triggered. Force one
	// random shift. The only non-deterministic branch in planning.
	if len(ops) == 0 && mode.Intensity > fallbackIntensityFloor && s.TurnsSinceLastShift > fallbackStaleTurns {
		name := fallbackOperators[opts.intn(len(fallbackOperators))]
		if def, ok := reg.Get(name); ok && mode.OperatorAllowed(name) {
			ops = append(ops, materialize(def, s, ctx, ""))
		}
	}

	return ops
}

func materialize(def operator.Definition, s stance.Stance, ctx operator.Context, source trigger.Kind) Operation {
	return Operation{
		Name:            def.Name,
		Description:     def.Description,
		PromptInjection: def.Injection(s, ctx),
		StanceDelta:     def.Apply(s, ctx),
		Source:          source,
	}
}

// orderCandidates applies effectiveness weighting: a stable descending sort,
// so neutral weights preserve the curated order exactly.
func orderCandidates(names []operator.Name, opts Options) []operator.Name {
	if opts.Weights == nil || len(names) < 2 {
		return names
	}
	out := append([]operator.Name(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		return opts.weight(out[i]) > opts.weight(out[j])
	})
	return out
}

// #endregion plan
