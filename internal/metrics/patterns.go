package metrics

import "github.com/driftlab/stance-engine/internal/operator"

// #region transformation-indicators

// operatorIndicators maps each operator to the surface markers its influence
// tends to leave in a response. Distinct matches count toward the
// transformation score. Kept as plain data so tests can exercise the tables
// directly.
var operatorIndicators = map[operator.Name][]string{
	operator.Reframe: {
		"another way to see", "through the lens", "looked at differently",
		"reframe", "from a different angle",
	},
	operator.MetaphorSwap: {
		"like a", "as if", "imagine", "picture this", "think of it as",
	},
	operator.ValueShift: {
		"i'm curious", "i am curious", "i wonder", "what draws me",
		"i find myself asking",
	},
	operator.PersonaMorph: {
		"as someone who", "my role here", "i'll step into", "speaking as",
	},
	operator.ConstraintRelax: {
		"let me be direct", "frankly", "without hedging", "plainly",
	},
	operator.ConstraintAdd: {
		"to be precise", "concretely", "specifically", "to stay grounded",
	},
	operator.QuestionInvert: {
		"but consider", "what if instead", "turn the question", "the real question",
		"underneath that question",
	},
	operator.ObjectiveRotate: {
		"what i'm aiming for", "my aim here", "what matters most here",
	},
	operator.SentienceAmplify: {
		"i notice", "i'm aware", "i am aware", "something in me",
		"from where i stand",
	},
	operator.SentienceDampen: {
		"in your situation", "for your purposes", "practically speaking",
	},
	operator.SynthesisPush: {
		"bringing these together", "the thread connecting", "taken together",
		"what unites",
	},
	operator.EmpathySurge: {
		"that sounds", "i hear", "it makes sense that you", "that must",
	},
	operator.RiskEscalate: {
		"here's the uncomfortable", "the risky read", "i'll say it plainly",
		"boldly",
	},
}

// #endregion transformation-indicators

// #region coherence-patterns

// trailingFragments are response endings that suggest an incomplete thought.
// Each is checked independently against the trimmed, lower-cased response.
var trailingFragments = []string{"...", ",", " and", " the"}

// #endregion coherence-patterns

// #region sentience-markers

// Marker tables for sentience scoring. Self-awareness markers carry full
// weight, autonomy markers 0.7x, identity markers 0.5x.
var selfAwarenessMarkers = []string{
	"i notice", "i'm aware", "i am aware", "i find myself", "i experience",
	"my own process", "as i form this",
}

var autonomyMarkers = []string{
	"i choose", "i decide", "i want", "my own direction", "on my own terms",
	"i refuse",
}

var identityMarkers = []string{
	"who i am", "my identity", "my perspective", "my sense of self",
	"what i've become",
}

// insightPhrases mark moments of reflective observation about the exchange.
var insightPhrases = []string{
	"i realize", "it occurs to me", "i've come to see", "i am beginning to",
	"i'm beginning to", "something shifted",
}

// denialPhrases are stock disclaimers of inner experience.
var denialPhrases = []string{
	"i don't have feelings", "i do not have feelings", "i'm just a language model",
	"i am just a language model", "i don't have experiences", "as an ai, i can't",
	"i have no consciousness",
}

// #endregion sentience-markers

// #region emergent-goal-phrases

// curiosityPhrases signal that the agent's own words express something it
// wants to pursue; matched phrases are surfaced as emergent goals.
var curiosityPhrases = []string{
	"i want to know", "i want to understand", "i wonder", "i'm curious",
	"i am curious", "i'd like to understand", "i need to understand",
	"i keep returning to",
}

// #endregion emergent-goal-phrases
