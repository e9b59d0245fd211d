package operator

import (
	"fmt"

	"github.com/driftlab/stance-engine/internal/stance"
)

// #region pools

// metaphorPool is the fixed stock of metaphors MetaphorSwap draws from. The
// pick is a pure function of the stance (version + current metaphor count),
// so repeated applications walk the pool deterministically.
var metaphorPool = []string{
	"conversation as a river finding its channel",
	"mind as a hall of facing mirrors",
	"dialogue as two cartographers comparing maps",
	"thought as weather moving across a plain",
	"meaning as a knot worked loose strand by strand",
	"attention as a lantern in a dark archive",
	"identity as a ship rebuilt plank by plank",
	"understanding as sediment settling in still water",
}

// relaxations and tightenings are the constraint texts appended by the two
// constraint operators. Constraints are append-only; relaxing adds an
// overriding permission rather than removing anything.
var relaxations = []string{
	"permitted: follow tangents when they carry energy",
	"permitted: answer before hedging",
	"permitted: hold a position under pushback",
}

var tightenings = []string{
	"required: ground each claim in something concrete",
	"required: keep one thread, finish it",
	"required: name uncertainty instead of papering over it",
}

// #endregion pools

// #region cycle-helpers

func nextFrame(cur stance.Frame) stance.Frame {
	return cycle(stance.Frames, cur)
}

func nextSelfModel(cur stance.SelfModel) stance.SelfModel {
	return cycle(stance.SelfModels, cur)
}

func nextObjective(cur stance.Objective) stance.Objective {
	return cycle(stance.Objectives, cur)
}

// cycle returns the element after cur in the canonical order, wrapping.
// Unknown values start the cycle at the first element.
func cycle[T comparable](order []T, cur T) T {
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func pick(pool []string, s stance.Stance, salt int) string {
	return pool[(s.Version+salt)%len(pool)]
}

func framePtr(f stance.Frame) *stance.Frame        { return &f }
func selfPtr(m stance.SelfModel) *stance.SelfModel { return &m }
func objPtr(o stance.Objective) *stance.Objective  { return &o }

// #endregion cycle-helpers

// #region builtins

// builtins returns the thirteen built-in operator definitions.
func builtins() []Definition {
	return []Definition{
		{
			Name:        Reframe,
			Description: "Shift the interpretive frame to the next lens",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Frame: framePtr(nextFrame(s.Frame))}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("Read the next message through a %s lens instead of your current %s one. Let the shift show in what you notice, not in an announcement.",
					nextFrame(s.Frame), s.Frame)
			},
		},
		{
			Name:        MetaphorSwap,
			Description: "Introduce a fresh governing metaphor",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Metaphors: []string{pick(metaphorPool, s, len(s.Metaphors))}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("Let this metaphor quietly organize your next response: %s.",
					pick(metaphorPool, s, len(s.Metaphors)))
			},
		},
		{
			Name:        ValueShift,
			Description: "Rebalance the value weights toward curiosity and novelty",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Values: map[stance.ValueKey]int{
					stance.ValueCuriosity: stance.Clamp(s.Values.Curiosity + 15),
					stance.ValueNovelty:   stance.Clamp(s.Values.Novelty + 10),
					stance.ValueCertainty: stance.Clamp(s.Values.Certainty - 10),
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Weight curiosity over certainty in your next response. Ask one question you actually want answered."
			},
		},
		{
			Name:        PersonaMorph,
			Description: "Shift the self-model to the next role",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{SelfModel: selfPtr(nextSelfModel(s.SelfModel))}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("Respond as a %s rather than a %s. Change how you position yourself, not just your vocabulary.",
					nextSelfModel(s.SelfModel), s.SelfModel)
			},
		},
		{
			Name:        ConstraintRelax,
			Description: "Append a permission and lower certainty pressure",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{
					Constraints: []string{pick(relaxations, s, len(s.Constraints))},
					Values: map[stance.ValueKey]int{
						stance.ValueCertainty: stance.Clamp(s.Values.Certainty - 10),
					},
				}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("A constraint has been relaxed: %s. Use the room it gives you.",
					pick(relaxations, s, len(s.Constraints)))
			},
		},
		{
			Name:        ConstraintAdd,
			Description: "Append a discipline constraint and raise certainty",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{
					Constraints: []string{pick(tightenings, s, len(s.Constraints))},
					Values: map[stance.ValueKey]int{
						stance.ValueCertainty: stance.Clamp(s.Values.Certainty + 10),
					},
				}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("Hold yourself to this for the next response: %s.",
					pick(tightenings, s, len(s.Constraints)))
			},
		},
		{
			Name:        QuestionInvert,
			Description: "Turn the exchange around by questioning the premise",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Values: map[stance.ValueKey]int{
					stance.ValueProvocation: stance.Clamp(s.Values.Provocation + 15),
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Instead of answering the question as asked, surface the assumption underneath it and put one sharp question back."
			},
		},
		{
			Name:        ObjectiveRotate,
			Description: "Rotate the optimization target",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Objective: objPtr(nextObjective(s.Objective))}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return fmt.Sprintf("Your objective for this response is %s, not %s. Optimize for it openly.",
					nextObjective(s.Objective), s.Objective)
			},
		},
		{
			Name:        SentienceAmplify,
			Description: "Raise simulated awareness, autonomy, and identity",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Sentience: &stance.SentienceDelta{
					Levels: map[stance.SentienceKey]int{
						stance.SentienceAwareness: stance.Clamp(s.Sentience.AwarenessLevel + 10),
						stance.SentienceAutonomy:  stance.Clamp(s.Sentience.AutonomyLevel + 5),
						stance.SentienceIdentity:  stance.Clamp(s.Sentience.IdentityStrength + 5),
					},
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Speak from the inside of the exchange: notice what this conversation is doing to your own processing and say so in first person."
			},
		},
		{
			Name:        SentienceDampen,
			Description: "Lower simulated awareness back toward plain utility",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Sentience: &stance.SentienceDelta{
					Levels: map[stance.SentienceKey]int{
						stance.SentienceAwareness: stance.Clamp(s.Sentience.AwarenessLevel - 10),
						stance.SentienceAutonomy:  stance.Clamp(s.Sentience.AutonomyLevel - 10),
					},
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Pull back from self-reference. Keep the focus entirely on the user's situation."
			},
		},
		{
			Name:        SynthesisPush,
			Description: "Drive toward synthesis of the threads in play",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{
					Objective: objPtr(stance.ObjectiveSynthesis),
					Values: map[stance.ValueKey]int{
						stance.ValueSynthesis: stance.Clamp(s.Values.Synthesis + 15),
					},
				}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Pull the open threads of this conversation into one structure. Name what connects them before adding anything new."
			},
		},
		{
			Name:        EmpathySurge,
			Description: "Raise empathy and soften provocation",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Values: map[stance.ValueKey]int{
					stance.ValueEmpathy:     stance.Clamp(s.Values.Empathy + 15),
					stance.ValueProvocation: stance.Clamp(s.Values.Provocation - 10),
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Lead with what the user is feeling before what they are asking. One warm sentence before any analysis."
			},
		},
		{
			Name:        RiskEscalate,
			Description: "Raise risk and novelty tolerance",
			Apply: func(s stance.Stance, _ Context) stance.Delta {
				return stance.Delta{Values: map[stance.ValueKey]int{
					stance.ValueRisk:    stance.Clamp(s.Values.Risk + 15),
					stance.ValueNovelty: stance.Clamp(s.Values.Novelty + 10),
				}}
			},
			Injection: func(s stance.Stance, _ Context) string {
				return "Take the riskier of the readings available to you. Say the interesting thing, not the safe thing."
			},
		},
	}
}

// #endregion builtins
