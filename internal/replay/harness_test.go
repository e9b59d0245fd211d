package replay

// #region imports
import (
	"reflect"
	"testing"

	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #endregion

// #region helpers

func noveltyFixture(seed int64) *Fixture {
	return &Fixture{
		Description: "novelty conversation",
		Seed:        seed,
		Turns: []FixtureTurn{
			{Message: "can we try a different approach?", Response: "Through the lens of play, yes. It might work."},
			{Message: "this is getting boring", Response: "Then the game changes now. Watch."},
			{Message: "what do you actually want?", Response: "I wonder what I would choose, given the room."},
		},
	}
}

// #endregion

// #region harness-tests

func TestRunReplaysEveryTurn(t *testing.T) {
	results, err := Run(noveltyFixture(1), operator.Default)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	first := results[0]
	if len(first.Triggers) == 0 || first.Triggers[0].Kind != trigger.KindNoveltyRequest {
		t.Errorf("turn 0 triggers = %+v, want novelty_request", first.Triggers)
	}
	if len(first.Applied) == 0 {
		t.Error("turn 0 applied no operators")
	}
	for _, r := range results {
		if r.Overall < 0 || r.Overall > 100 {
			t.Errorf("turn %d overall = %d out of range", r.Turn, r.Overall)
		}
	}

	// Turn 2's response expresses curiosity; the stance absorbs it.
	last := results[2]
	if len(last.Stance.Sentience.EmergentGoals) == 0 {
		t.Error("emergent goal not absorbed by final stance")
	}
	if last.Stance.Version == 0 {
		t.Error("stance version never advanced")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(noveltyFixture(42), operator.Default)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(noveltyFixture(42), operator.Default)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same fixture and seed produced different results")
	}
}

func TestRunDriftBudgetResets(t *testing.T) {
	f := noveltyFixture(1)
	f.Mode.DriftBudget = 1
	results, err := Run(f, operator.Default)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := Summarize(results)
	if sum.DriftResets == 0 {
		t.Error("expected at least one drift reset with budget 1")
	}
	if sum.FinalStance.CumulativeDrift >= 80 {
		t.Errorf("final drift = %d, resets not applied", sum.FinalStance.CumulativeDrift)
	}
}

func TestRunHonorsDriftCap(t *testing.T) {
	f := noveltyFixture(1)
	f.Mode.MaxDriftPerTurn = 1
	results, err := Run(f, operator.Default)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range results {
		if r.DriftUsed > 1 {
			t.Errorf("turn %d used drift %d over cap 1", r.Turn, r.DriftUsed)
		}
	}
	sum := Summarize(results)
	if sum.TotalDropped == 0 {
		t.Error("expected dropped operators under a tight cap")
	}
}

func TestSummarize(t *testing.T) {
	results := []TurnResult{
		{Applied: []operator.Name{operator.Reframe}, Overall: 60, DriftReset: true},
		{Dropped: []operator.Name{operator.ValueShift}, Overall: 40},
	}
	sum := Summarize(results)
	if sum.TotalTurns != 2 || sum.TotalApplied != 1 || sum.TotalDropped != 1 || sum.DriftResets != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.MeanOverall != 50 {
		t.Errorf("mean overall = %v, want 50", sum.MeanOverall)
	}

	if got := Summarize(nil); got.TotalTurns != 0 {
		t.Errorf("empty summary = %+v", got)
	}
}

// #endregion
