package operator

import (
	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #region name

// Name identifies a stance-transition operator.
type Name string

const (
	Reframe          Name = "Reframe"
	MetaphorSwap     Name = "MetaphorSwap"
	ValueShift       Name = "ValueShift"
	PersonaMorph     Name = "PersonaMorph"
	ConstraintRelax  Name = "ConstraintRelax"
	ConstraintAdd    Name = "ConstraintAdd"
	QuestionInvert   Name = "QuestionInvert"
	ObjectiveRotate  Name = "ObjectiveRotate"
	SentienceAmplify Name = "SentienceAmplify"
	SentienceDampen  Name = "SentienceDampen"
	SynthesisPush    Name = "SynthesisPush"
	EmpathySurge     Name = "EmpathySurge"
	RiskEscalate     Name = "RiskEscalate"
)

// Names lists every built-in operator kind in canonical order.
var Names = []Name{
	Reframe, MetaphorSwap, ValueShift, PersonaMorph, ConstraintRelax,
	ConstraintAdd, QuestionInvert, ObjectiveRotate, SentienceAmplify,
	SentienceDampen, SynthesisPush, EmpathySurge, RiskEscalate,
}

// #endregion name

// #region context

// Context carries per-turn conversational context into operator functions.
// The planner deliberately passes a zero Context: operators see only the
// current stance, never the triggering text.
type Context struct {
	Message string
	History []trigger.Message
}

// #endregion context

// #region definition

// Definition is the operator capability contract: a name, a description, and
// two pure functions. Apply must not mutate the passed stance; both functions
// must be deterministic in their inputs.
type Definition struct {
	Name        Name
	Description string
	Apply       func(s stance.Stance, ctx Context) stance.Delta
	Injection   func(s stance.Stance, ctx Context) string
}

// #endregion definition
