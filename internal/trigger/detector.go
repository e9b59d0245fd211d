// Package trigger classifies inbound messages into weighted conversational
// signals via keyword heuristics. No model call.
package trigger

import (
	"fmt"
	"sort"
	"strings"
)

// #region constants

// lexicalConfidence is the fixed confidence for pattern-matched triggers.
const lexicalConfidence = 0.7

// repetitionThreshold is the Jaccard similarity above which two consecutive
// user messages count as a stuck loop.
const repetitionThreshold = 0.7

// repetitionMinHistory is the minimum history length before the repetition
// check runs.
const repetitionMinHistory = 4

// #endregion constants

// #region detect

// Detect classifies a message plus its history into triggers, sorted by
// descending confidence. Total over any input: an empty message yields no
// lexical triggers and never an error.
func Detect(message string, history []Message) []Trigger {
	lower := strings.ToLower(message)
	var out []Trigger

	for _, kp := range lexicalPatterns {
		for _, pat := range kp.patterns {
			if strings.Contains(lower, pat) {
				out = append(out, Trigger{
					Kind:       kp.kind,
					Confidence: lexicalConfidence,
					Evidence:   fmt.Sprintf("Matched pattern: %q", pat),
				})
				break // one trigger per kind
			}
		}
	}

	// Repetition check over history. Coexists with a lexical stuck_loop
	// trigger; the two detection mechanisms are independent.
	if len(history) >= repetitionMinHistory {
		if sim, ok := recentUserSimilarity(history); ok && sim > repetitionThreshold {
			out = append(out, Trigger{
				Kind:       KindStuckLoop,
				Confidence: sim,
				Evidence:   "Detected repetitive user messages",
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// #endregion detect

// #region repetition

// recentUserSimilarity computes token-set Jaccard similarity between the two
// most recent user-authored messages. ok is false when fewer than two exist.
func recentUserSimilarity(history []Message) (float64, bool) {
	var latest, previous string
	found := 0
	for i := len(history) - 1; i >= 0 && found < 2; i-- {
		if history[i].Role != RoleUser {
			continue
		}
		if found == 0 {
			latest = history[i].Content
		} else {
			previous = history[i].Content
		}
		found++
	}
	if found < 2 {
		return 0, false
	}
	return jaccard(tokenSet(latest), tokenSet(previous)), true
}

// tokenSet lower-cases and whitespace-tokenizes text into a set.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		set[tok] = struct{}{}
	}
	return set
}

// jaccard computes |a∩b| / |a∪b|. Two empty sets are not similar.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// #endregion repetition
