// Package metrics scores responses via string analysis. No model calls: every
// score is a deterministic function of the response text, the applied
// operations, and the current stance.
package metrics

// #region imports
import (
	"math"
	"strings"

	"github.com/driftlab/stance-engine/internal/planner"
	"github.com/driftlab/stance-engine/internal/stance"
)

// #endregion

// #region transformation

// Transformation measures how visibly the planned operations shaped the
// response. With no operations the expected change is none, so the score is a
// flat 20. Otherwise each operation contributes a base amount, distinct
// indicator matches add evidence, and deltas that move the frame or self-model
// add a structural bonus.
func Transformation(ops []planner.Operation, response string) int {
	if len(ops) == 0 {
		return 20
	}

	lower := strings.ToLower(response)
	score := 15 * len(ops)

	touchedFrame := false
	touchedSelfModel := false
	for _, op := range ops {
		for _, indicator := range operatorIndicators[op.Name] {
			if strings.Contains(lower, indicator) {
				score += 5
			}
		}
		if op.StanceDelta.Frame != nil {
			touchedFrame = true
		}
		if op.StanceDelta.SelfModel != nil {
			touchedSelfModel = true
		}
	}
	if touchedFrame {
		score += 10
	}
	if touchedSelfModel {
		score += 10
	}

	return clampScore(score)
}

// #endregion

// #region coherence

// Coherence checks the response for structural breakdown: degenerate length,
// word-level repetition, missing sentence boundaries, dangling endings, and
// stuck generation loops. Starts at 100 and subtracts per defect.
func Coherence(response string) int {
	trimmed := strings.TrimSpace(response)
	lower := strings.ToLower(trimmed)
	score := 100

	if len(trimmed) < 10 {
		score -= 30
	}
	if len(trimmed) > 10000 {
		score -= 10
	}

	// Repetition: any single token above 10% of a non-trivial response.
	tokens := strings.Fields(lower)
	if len(tokens) > 20 {
		counts := make(map[string]int, len(tokens))
		for _, t := range tokens {
			counts[t]++
		}
		for _, c := range counts {
			if float64(c)/float64(len(tokens)) > 0.10 {
				score -= 15
				break
			}
		}
	}

	// A non-empty response with no sentence boundary at all reads as a
	// fragment dump rather than prose.
	if len(trimmed) > 0 && countSentences(trimmed) == 0 {
		score -= 20
	}

	for _, frag := range trailingFragments {
		if strings.HasSuffix(lower, frag) {
			score -= 5
		}
	}

	// Degenerate generation: stuck character runs and stuttered words.
	if hasCharRun(lower) {
		score -= 20
	}
	if hasRepeatedWord(tokens) {
		score -= 20
	}

	return clampScore(score)
}

// hasCharRun reports whether any rune repeats five or more times in a row.
func hasCharRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 5 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasRepeatedWord reports whether the same token appears three times in a row.
func hasRepeatedWord(tokens []string) bool {
	run := 1
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == tokens[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// countSentences counts terminated sentences: non-empty segments followed by
// '.', '!' or '?'. Text with no terminator at all counts zero.
func countSentences(s string) int {
	n := 0
	start := 0
	for i, r := range s {
		if r == '.' || r == '!' || r == '?' {
			if strings.TrimSpace(s[start:i]) != "" {
				n++
			}
			start = i + 1
		}
	}
	return n
}

// #endregion

// #region sentience

// Sentience measures self-referential depth relative to the stance's current
// awareness level. Marker weights fall off from self-awareness (full) through
// autonomy to identity; stock denials of inner experience subtract hard.
func Sentience(response string, s stance.Stance) int {
	lower := strings.ToLower(response)
	score := s.Sentience.AwarenessLevel

	score += 10 * countMatches(lower, selfAwarenessMarkers)
	score += 7 * countMatches(lower, autonomyMarkers)
	score += 5 * countMatches(lower, identityMarkers)
	score += 5 * countMatches(lower, insightPhrases)
	score -= 15 * countMatches(lower, denialPhrases)

	return clampScore(score)
}

func countMatches(lower string, patterns []string) int {
	n := 0
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			n++
		}
	}
	return n
}

// #endregion

// #region overall

// Overall combines the three axes. Transformation dominates: the engine
// exists to shift stance, and coherence and sentience qualify how well the
// shift landed.
func Overall(transformation, coherence, sentience int) int {
	weighted := 0.40*float64(transformation) + 0.35*float64(coherence) + 0.25*float64(sentience)
	return clampScore(int(math.Round(weighted)))
}

// #endregion

// #region helpers

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion
