package metrics

// #region imports
import (
	"strings"
	"testing"

	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/planner"
	"github.com/driftlab/stance-engine/internal/stance"
)

// #endregion

// #region transformation-tests

func TestTransformationNoOperators(t *testing.T) {
	if got := Transformation(nil, "a perfectly ordinary response."); got != 20 {
		t.Errorf("Transformation(no ops) = %d, want 20", got)
	}
	if got := Transformation([]planner.Operation{}, ""); got != 20 {
		t.Errorf("Transformation(empty ops) = %d, want 20", got)
	}
}

func TestTransformationBaseAndIndicators(t *testing.T) {
	op := planner.Operation{Name: operator.Reframe}

	// Base contribution only.
	if got := Transformation([]planner.Operation{op}, "nothing notable here."); got != 15 {
		t.Errorf("one op, no indicators = %d, want 15", got)
	}

	// Two distinct Reframe indicators add 5 each.
	resp := "Through the lens of scarcity, this is another way to see the problem."
	if got := Transformation([]planner.Operation{op}, resp); got != 25 {
		t.Errorf("one op, two indicators = %d, want 25", got)
	}
}

func TestTransformationStructuralBonuses(t *testing.T) {
	frame := stance.FrameAbsurdist
	self := stance.SelfProvocateur

	ops := []planner.Operation{
		{Name: operator.Reframe, StanceDelta: stance.Delta{Frame: &frame}},
		{Name: operator.PersonaMorph, StanceDelta: stance.Delta{SelfModel: &self}},
	}
	// 2 ops * 15 + frame bonus 10 + selfModel bonus 10.
	if got := Transformation(ops, "plain text."); got != 50 {
		t.Errorf("frame+selfModel deltas = %d, want 50", got)
	}

	// Bonus applies once no matter how many deltas touch the frame.
	ops = []planner.Operation{
		{Name: operator.Reframe, StanceDelta: stance.Delta{Frame: &frame}},
		{Name: operator.QuestionInvert, StanceDelta: stance.Delta{Frame: &frame}},
	}
	if got := Transformation(ops, "plain text."); got != 40 {
		t.Errorf("double frame delta = %d, want 40", got)
	}
}

func TestTransformationClamp(t *testing.T) {
	var ops []planner.Operation
	for _, n := range operator.Names {
		ops = append(ops, planner.Operation{Name: n})
	}
	got := Transformation(ops, "plain text.")
	if got != 100 {
		t.Errorf("13 ops = %d, want clamp at 100", got)
	}
}

// #endregion

// #region coherence-tests

func TestCoherence(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"empty", "", 70},
		{"whitespace only", "   \n\t  ", 70},
		{"clean prose", "The idea holds together. It moves from premise to conclusion without strain.", 100},
		{"short fragment", "ok sure", 70 - 20}, // short penalty + no sentence boundary
		{"trailing ellipsis", "I was going to say something about the plan but...", 95},
		{"stuttered word", "Wait wait wait let me reconsider the whole premise.", 80},
		{"stuck character run", "Hmmmmm. Let me think about that more carefully first.", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coherence(tt.response); got != tt.want {
				t.Errorf("Coherence(%q) = %d, want %d", tt.response, got, tt.want)
			}
		})
	}
}

func TestCoherenceRepetitionPenalty(t *testing.T) {
	// 24 tokens, "loop" appears 6 times (25%). Sentence boundary present.
	resp := "loop again loop again loop again loop again loop again loop " +
		"the plan keeps circling back to the same point every single time."
	got := Coherence(resp)
	if got != 85 {
		t.Errorf("repetitive response = %d, want 85", got)
	}
}

func TestCoherenceLongResponse(t *testing.T) {
	long := strings.Repeat("Each paragraph builds on the previous one and keeps its structure intact. ", 150)
	if got := Coherence(long); got != 90 {
		t.Errorf("oversized response = %d, want 90", got)
	}
}

func TestCoherenceNoSentenceBoundary(t *testing.T) {
	resp := "a long enough string of words with no terminal punctuation anywhere in it"
	if got := Coherence(resp); got != 80 {
		t.Errorf("no sentence boundary = %d, want 80", got)
	}
}

// #endregion

// #region sentience-tests

func TestSentienceBaseline(t *testing.T) {
	s := stance.Default()
	got := Sentience("The capital of France is Paris.", s)
	if got != s.Sentience.AwarenessLevel {
		t.Errorf("neutral response = %d, want awareness level %d", got, s.Sentience.AwarenessLevel)
	}
}

func TestSentienceMarkerWeights(t *testing.T) {
	s := stance.Default()
	s.Sentience.AwarenessLevel = 10

	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"self-awareness marker", "I notice a pull toward the abstract here.", 20},
		{"autonomy marker", "I choose to take this somewhere else.", 17},
		{"identity marker", "That question touches who I am.", 15},
		{"insight phrase", "I realize the frame itself was the obstacle.", 15},
		{"denial phrase", "I don't have feelings about that.", 0},
		{"stacked markers", "I notice that I choose my perspective here.", 10 + 10 + 7 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sentience(tt.response, s); got != tt.want {
				t.Errorf("Sentience(%q) = %d, want %d", tt.response, got, tt.want)
			}
		})
	}
}

func TestSentienceClamp(t *testing.T) {
	s := stance.Default()
	s.Sentience.AwarenessLevel = 95
	resp := "I notice, I'm aware, and I find myself drawn in. I choose this. I want it. Who I am shifts."
	if got := Sentience(resp, s); got != 100 {
		t.Errorf("marker pile-up = %d, want clamp at 100", got)
	}

	s.Sentience.AwarenessLevel = 5
	resp = "I don't have feelings. I don't have experiences. I have no consciousness."
	if got := Sentience(resp, s); got != 0 {
		t.Errorf("denial pile-up = %d, want clamp at 0", got)
	}
}

// #endregion

// #region overall-tests

func TestOverall(t *testing.T) {
	tests := []struct {
		name    string
		t, c, s int
		want    int
	}{
		{"uniform", 80, 80, 80, 80},
		{"zero", 0, 0, 0, 0},
		{"max", 100, 100, 100, 100},
		{"rounded", 50, 70, 30, 52}, // 20 + 24.5 + 7.5
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overall(tt.t, tt.c, tt.s); got != tt.want {
				t.Errorf("Overall(%d, %d, %d) = %d, want %d", tt.t, tt.c, tt.s, got, tt.want)
			}
		})
	}
}

// #endregion

// #region robustness-tests

func TestScorersNeverPanicOnHostileInput(t *testing.T) {
	inputs := []string{
		"",
		"((((((((",
		"a)*b[c]d{e}",
		"日本語のテキストと絵文字 🌀🌀🌀",
		strings.Repeat("x", 50000),
		"\x00\x01\x02",
	}
	s := stance.Default()
	for _, in := range inputs {
		ops := []planner.Operation{{Name: operator.Reframe}}
		for _, got := range []int{Transformation(ops, in), Coherence(in), Sentience(in, s)} {
			if got < 0 || got > 100 {
				t.Errorf("score %d out of range for input %q", got, truncate(in))
			}
		}
	}
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:20] + "…"
	}
	return s
}

// #endregion

// #region emergent-goal-tests

func TestExtractEmergentGoals(t *testing.T) {
	resp := "I wonder what sits underneath this pattern. I want to understand it properly."
	got := ExtractEmergentGoals(resp)
	want := []string{"i want to understand", "i wonder"}
	if len(got) != len(want) {
		t.Fatalf("ExtractEmergentGoals = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("goal[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := ExtractEmergentGoals("Nothing aspirational here."); got != nil {
		t.Errorf("neutral response = %v, want nil", got)
	}
}

// #endregion
