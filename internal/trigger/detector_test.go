package trigger

import (
	"strings"
	"testing"
	"time"
)

func hasKind(ts []Trigger, k Kind) bool {
	for _, t := range ts {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func TestDetect_LexicalKinds(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Kind
	}{
		{"novelty", "what if we tried a different approach?", KindNoveltyRequest},
		{"stuck-loop", "we're going in circles here", KindStuckLoop},
		{"philosophical", "do you have subjective experience?", KindPhilosophicalProbe},
		{"emotional", "honestly, i feel lost lately", KindEmotionalDisclosure},
		{"challenge", "no, you're wrong about that", KindDirectChallenge},
		{"boredom", "this is dull", KindBoredomSignal},
		{"meta", "why do you always answer like that?", KindMetaCommentary},
		{"identity", "who are you really, behind all this?", KindIdentityProbe},
		{"creative", "imagine a city built on the back of a whale", KindCreativeInvitation},
		{"intensity", "go deeper. don't hold back.", KindIntensityRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.message, nil)
			if !hasKind(got, tt.want) {
				t.Errorf("Detect(%q) = %v, want kind %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetect_OneTriggerPerKind(t *testing.T) {
	// Two novelty patterns in one message still yield a single trigger.
	got := Detect("surprise me with something new", nil)
	count := 0
	for _, tr := range got {
		if tr.Kind == KindNoveltyRequest {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d novelty triggers, want 1", count)
	}
}

func TestDetect_LexicalConfidenceAndEvidence(t *testing.T) {
	got := Detect("what if we tried a different approach?", nil)
	if len(got) == 0 {
		t.Fatal("expected at least one trigger")
	}
	if got[0].Confidence != 0.7 {
		t.Errorf("confidence: got %v, want 0.7", got[0].Confidence)
	}
	if !strings.Contains(got[0].Evidence, "different approach") {
		t.Errorf("evidence %q does not name the matched pattern", got[0].Evidence)
	}
}

func TestDetect_EmptyAndMalformedInput(t *testing.T) {
	if got := Detect("", nil); len(got) != 0 {
		t.Errorf("empty message: got %v, want none", got)
	}
	// Regex metacharacters and non-ASCII must not panic.
	_ = Detect("((((*[a-z]+ \\ ??? 日本語 🤖", []Message{{Role: RoleUser, Content: "((("}})
}

func TestDetect_RepetitionEmitsStuckLoop(t *testing.T) {
	now := time.Now()
	history := []Message{
		{Role: RoleUser, Content: "tell me about the harbor lights", Timestamp: now},
		{Role: RoleAssistant, Content: "the harbor lights are sodium amber", Timestamp: now},
		{Role: RoleUser, Content: "tell me about the harbor lights again", Timestamp: now},
		{Role: RoleAssistant, Content: "as before", Timestamp: now},
	}

	got := Detect("hm", history)
	if !hasKind(got, KindStuckLoop) {
		t.Fatalf("got %v, want stuck_loop", got)
	}
	for _, tr := range got {
		if tr.Kind == KindStuckLoop {
			if tr.Confidence <= 0.7 || tr.Confidence > 1 {
				t.Errorf("confidence: got %v, want (0.7, 1]", tr.Confidence)
			}
			if tr.Evidence != "Detected repetitive user messages" {
				t.Errorf("evidence: got %q", tr.Evidence)
			}
		}
	}
}

func TestDetect_RepetitionNeedsHistory(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "same words here"},
		{Role: RoleUser, Content: "same words here"},
	}
	if got := Detect("ok", history); hasKind(got, KindStuckLoop) {
		t.Errorf("short history emitted stuck_loop: %v", got)
	}
}

func TestDetect_RepetitionCoexistsWithLexical(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "why does it loop"},
		{Role: RoleAssistant, Content: "because"},
		{Role: RoleUser, Content: "why does it loop"},
		{Role: RoleAssistant, Content: "because"},
	}
	got := Detect("we're going in circles", history)

	count := 0
	for _, tr := range got {
		if tr.Kind == KindStuckLoop {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d stuck_loop triggers, want 2 (lexical + repetition)", count)
	}
}

func TestDetect_SortedByConfidenceDescending(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "identical message content"},
		{Role: RoleAssistant, Content: "x"},
		{Role: RoleUser, Content: "identical message content"},
		{Role: RoleAssistant, Content: "y"},
	}
	got := Detect("surprise me", history)
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Fatalf("not sorted: %v", got)
		}
	}
}
