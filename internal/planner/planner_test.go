package planner

import (
	"testing"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/trigger"
)

func noveltyTrigger() trigger.Trigger {
	return trigger.Trigger{Kind: trigger.KindNoveltyRequest, Confidence: 0.7, Evidence: "test"}
}

func TestMaxOperators(t *testing.T) {
	tests := []struct {
		intensity int
		want      int
	}{
		{0, 0}, {1, 1}, {25, 1}, {30, 1}, {31, 2}, {60, 2}, {61, 3}, {90, 3}, {91, 4}, {100, 4},
	}
	for _, tt := range tests {
		if got := MaxOperators(tt.intensity); got != tt.want {
			t.Errorf("MaxOperators(%d) = %d, want %d", tt.intensity, got, tt.want)
		}
	}
}

func TestPlan_BudgetBounds(t *testing.T) {
	reg := operator.NewBuiltinRegistry()
	triggers := []trigger.Trigger{
		{Kind: trigger.KindNoveltyRequest, Confidence: 0.9},
		{Kind: trigger.KindBoredomSignal, Confidence: 0.8},
		{Kind: trigger.KindIntensityRequest, Confidence: 0.7},
		{Kind: trigger.KindIdentityProbe, Confidence: 0.6},
	}

	tests := []struct {
		name      string
		intensity int
		maxOps    int
	}{
		{"intensity-25", 25, 1},
		{"intensity-50", 50, 2},
		{"intensity-100", 100, 4},
		{"intensity-0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := config.DefaultMode()
			mode.Intensity = tt.intensity
			ops := Plan(triggers, stance.Default(), mode, reg, Options{})
			if len(ops) > tt.maxOps {
				t.Errorf("got %d operations, want <= %d", len(ops), tt.maxOps)
			}
			if tt.maxOps > 0 && len(ops) == 0 {
				t.Error("expected at least one operation")
			}
		})
	}
}

func TestPlan_NoDuplicateOperators(t *testing.T) {
	reg := operator.NewBuiltinRegistry()
	mode := config.DefaultMode()
	mode.Intensity = 100

	// Both triggers prefer SentienceAmplify; it must be selected once.
	triggers := []trigger.Trigger{
		{Kind: trigger.KindPhilosophicalProbe, Confidence: 0.9},
		{Kind: trigger.KindIdentityProbe, Confidence: 0.8},
	}

	ops := Plan(triggers, stance.Default(), mode, reg, Options{})
	seen := make(map[operator.Name]bool)
	for _, op := range ops {
		if seen[op.Name] {
			t.Fatalf("operator %q selected twice", op.Name)
		}
		seen[op.Name] = true
	}
}

func TestPlan_RespectsDenyAndAllowLists(t *testing.T) {
	reg := operator.NewBuiltinRegistry()

	mode := config.DefaultMode()
	mode.Intensity = 30
	mode.DisabledOperators = []operator.Name{operator.Reframe}

	ops := Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{})
	if len(ops) != 1 || ops[0].Name != operator.MetaphorSwap {
		t.Errorf("deny list: got %v, want [MetaphorSwap]", opNames(ops))
	}

	mode = config.DefaultMode()
	mode.Intensity = 30
	mode.EnabledOperators = []operator.Name{operator.MetaphorSwap}

	ops = Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{})
	if len(ops) != 1 || ops[0].Name != operator.MetaphorSwap {
		t.Errorf("allow list: got %v, want [MetaphorSwap]", opNames(ops))
	}
}

func TestPlan_SkipsUnregisteredOperators(t *testing.T) {
	// Registry holds only MetaphorSwap; Reframe resolves to nothing and is
	// skipped without error.
	reg := operator.NewRegistry()
	full := operator.NewBuiltinRegistry()
	def, _ := full.Get(operator.MetaphorSwap)
	reg.Register(def)

	mode := config.DefaultMode()
	mode.Intensity = 30

	ops := Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{})
	if len(ops) != 1 || ops[0].Name != operator.MetaphorSwap {
		t.Errorf("got %v, want [MetaphorSwap]", opNames(ops))
	}
}

func TestPlan_EmptyRegistryYieldsNothing(t *testing.T) {
	mode := config.DefaultMode()
	ops := Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, operator.NewRegistry(), Options{})
	if len(ops) != 0 {
		t.Errorf("got %v, want none", opNames(ops))
	}
}

func TestPlan_FallbackFiresWhenStale(t *testing.T) {
	reg := operator.NewBuiltinRegistry()
	mode := config.DefaultMode()
	mode.Intensity = 80

	s := stance.Default()
	s.TurnsSinceLastShift = 5

	ops := Plan(nil, s, mode, reg, Options{Rand: func(int) int { return 1 }})
	if len(ops) != 1 {
		t.Fatalf("got %d operations, want 1", len(ops))
	}
	if ops[0].Name != operator.ValueShift {
		t.Errorf("got %q, want ValueShift (rand index 1)", ops[0].Name)
	}
	if ops[0].Source != "" {
		t.Errorf("fallback source: got %q, want empty", ops[0].Source)
	}
}

func TestPlan_FallbackRequiresIntensityAndStaleness(t *testing.T) {
	reg := operator.NewBuiltinRegistry()

	tests := []struct {
		name       string
		intensity  int
		staleTurns int
	}{
		{"low-intensity", 60, 5},
		{"fresh-stance", 80, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := config.DefaultMode()
			mode.Intensity = tt.intensity
			s := stance.Default()
			s.TurnsSinceLastShift = tt.staleTurns
			ops := Plan(nil, s, mode, reg, Options{Rand: func(int) int { return 0 }})
			if len(ops) != 0 {
				t.Errorf("got %v, want none", opNames(ops))
			}
		})
	}
}

func TestPlan_WeightsReorderCandidates(t *testing.T) {
	reg := operator.NewBuiltinRegistry()
	mode := config.DefaultMode()
	mode.Intensity = 30

	// MetaphorSwap has proven more effective than Reframe for this store.
	weights := map[operator.Name]float64{
		operator.Reframe:      0.4,
		operator.MetaphorSwap: 2.1,
	}

	ops := Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{Weights: weights})
	if len(ops) != 1 || ops[0].Name != operator.MetaphorSwap {
		t.Errorf("got %v, want [MetaphorSwap]", opNames(ops))
	}

	// Neutral weights keep the curated order.
	ops = Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{})
	if len(ops) != 1 || ops[0].Name != operator.Reframe {
		t.Errorf("neutral: got %v, want [Reframe]", opNames(ops))
	}
}

func TestPlan_OperationCarriesSourceTrigger(t *testing.T) {
	reg := operator.NewBuiltinRegistry()
	mode := config.DefaultMode()
	mode.Intensity = 30

	ops := Plan([]trigger.Trigger{noveltyTrigger()}, stance.Default(), mode, reg, Options{})
	if len(ops) != 1 {
		t.Fatalf("got %d operations, want 1", len(ops))
	}
	if ops[0].Source != trigger.KindNoveltyRequest {
		t.Errorf("source: got %q, want %q", ops[0].Source, trigger.KindNoveltyRequest)
	}
	if ops[0].PromptInjection == "" {
		t.Error("prompt injection is empty")
	}
}

func opNames(ops []Operation) []operator.Name {
	out := make([]operator.Name, len(ops))
	for i, op := range ops {
		out[i] = op.Name
	}
	return out
}
