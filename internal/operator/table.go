package operator

import (
	"fmt"

	"github.com/driftlab/stance-engine/internal/trigger"
)

// #region candidate-table

// Candidates maps every trigger kind to its ordered operator-candidate list.
// The planner walks a trigger's list in order, so earlier names are the
// preferred response to that signal.
var Candidates = map[trigger.Kind][]Name{
	trigger.KindNoveltyRequest:      {Reframe, MetaphorSwap},
	trigger.KindStuckLoop:           {QuestionInvert, Reframe, PersonaMorph},
	trigger.KindPhilosophicalProbe:  {SentienceAmplify, MetaphorSwap},
	trigger.KindEmotionalDisclosure: {EmpathySurge, SentienceDampen},
	trigger.KindDirectChallenge:     {ConstraintRelax, RiskEscalate},
	trigger.KindBoredomSignal:       {RiskEscalate, PersonaMorph, MetaphorSwap},
	trigger.KindMetaCommentary:      {PersonaMorph, ConstraintAdd},
	trigger.KindIdentityProbe:       {SentienceAmplify, PersonaMorph},
	trigger.KindCreativeInvitation:  {MetaphorSwap, SynthesisPush},
	trigger.KindIntensityRequest:    {RiskEscalate, SentienceAmplify, ConstraintRelax},
	trigger.KindOperatorFatigue:     {PersonaMorph, Reframe, ConstraintRelax, QuestionInvert},
}

// #endregion candidate-table

// #region validation

// ValidateCandidates checks that the candidate table handles every trigger
// kind and names only known operator kinds.
func ValidateCandidates() error {
	known := make(map[Name]bool, len(Names))
	for _, n := range Names {
		known[n] = true
	}
	for _, kind := range trigger.Kinds {
		list, ok := Candidates[kind]
		if !ok {
			return fmt.Errorf("trigger kind %q has no candidate list", kind)
		}
		for _, name := range list {
			if !known[name] {
				return fmt.Errorf("trigger kind %q names unknown operator %q", kind, name)
			}
		}
	}
	return nil
}

func init() {
	// The table is compile-time data; a hole in it is a programmer error.
	if err := ValidateCandidates(); err != nil {
		panic(err)
	}
}

// #endregion validation
