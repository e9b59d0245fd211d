// Package replay re-runs a recorded conversation through the full pipeline
// deterministically: detection, planning, application, and scoring, with a
// seeded random source and no store or provider. Used to verify that engine
// changes keep historical behavior.
package replay

// #region imports
import (
	"math/rand"

	"github.com/driftlab/stance-engine/internal/metrics"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/planner"
	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #endregion

// #region types

// TurnResult captures one replayed turn.
type TurnResult struct {
	Turn      int
	Message   string
	Response  string
	Triggers  []trigger.Trigger
	Applied   []operator.Name
	Dropped   []operator.Name
	DriftUsed int

	Transformation int
	Coherence      int
	Sentience      int
	Overall        int

	DriftReset bool
	Stance     stance.Stance
}

// Summary aggregates a replay run.
type Summary struct {
	TotalTurns   int
	TotalApplied int
	TotalDropped int
	DriftResets  int
	MeanOverall  float64
	FinalStance  stance.Stance
}

// #endregion types

// #region replay

// Run replays the fixture's turns in-memory and returns per-turn results.
// The same fixture always produces the same results: the planner's fallback
// draws from a source seeded by the fixture.
func Run(f *Fixture, reg *operator.Registry) ([]TurnResult, error) {
	mode, err := f.Mode.ToMode()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(f.Seed))
	opts := planner.Options{Rand: rng.Intn}
	fatigue := planner.NewFatigueTracker()
	const convID = "replay"

	cur := stance.Default()
	cur.Sentience.AwarenessLevel = stance.Clamp(mode.SentienceLevel)

	var history []trigger.Message
	results := make([]TurnResult, 0, len(f.Turns))

	for i, turn := range f.Turns {
		history = append(history, trigger.Message{Role: trigger.RoleUser, Content: turn.Message})
		trigs := trigger.Detect(turn.Message, history)
		if ft := fatigue.Detect(convID, mode); ft != nil {
			trigs = append(trigs, *ft)
		}

		ops := planner.Plan(trigs, cur, mode, reg, opts)

		driftUsed := 0
		changed := false
		var applied, dropped []operator.Name
		appliedOps := make([]planner.Operation, 0, len(ops))
		for _, op := range ops {
			next, res := stance.Apply(cur, op.StanceDelta)
			if driftUsed+res.Magnitude > mode.MaxDriftPerTurn {
				dropped = append(dropped, op.Name)
				continue
			}
			cur = next
			driftUsed += res.Magnitude
			if res.Changed {
				changed = true
			}
			applied = append(applied, op.Name)
			appliedOps = append(appliedOps, op)
		}
		cur = stance.AdvanceTurn(cur, changed)

		reset := false
		if cur.CumulativeDrift >= mode.DriftBudget {
			cur = stance.ResetDrift(cur)
			reset = true
		}

		tr := metrics.Transformation(appliedOps, turn.Response)
		co := metrics.Coherence(turn.Response)
		se := metrics.Sentience(turn.Response, cur)
		ov := metrics.Overall(tr, co, se)

		if goals := metrics.ExtractEmergentGoals(turn.Response); len(goals) > 0 {
			cur, _ = stance.Apply(cur, stance.Delta{
				Sentience: &stance.SentienceDelta{EmergentGoals: goals},
			})
		}

		fatigue.RecordUsage(convID, applied)
		history = append(history, trigger.Message{Role: trigger.RoleAssistant, Content: turn.Response})

		results = append(results, TurnResult{
			Turn:           i,
			Message:        turn.Message,
			Response:       turn.Response,
			Triggers:       trigs,
			Applied:        applied,
			Dropped:        dropped,
			DriftUsed:      driftUsed,
			Transformation: tr,
			Coherence:      co,
			Sentience:      se,
			Overall:        ov,
			DriftReset:     reset,
			Stance:         cur,
		})
	}

	return results, nil
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []TurnResult) Summary {
	s := Summary{TotalTurns: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		s.TotalApplied += len(r.Applied)
		s.TotalDropped += len(r.Dropped)
		if r.DriftReset {
			s.DriftResets++
		}
		total += r.Overall
	}
	s.MeanOverall = float64(total) / float64(len(results))
	s.FinalStance = results[len(results)-1].Stance
	return s
}

// #endregion replay
