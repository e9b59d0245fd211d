package stance

// #region frame

// Frame is the interpretive lens the agent reads the conversation through.
type Frame string

const (
	FrameExistential    Frame = "existential"
	FramePragmatic      Frame = "pragmatic"
	FramePoetic         Frame = "poetic"
	FrameAdversarial    Frame = "adversarial"
	FramePlayful        Frame = "playful"
	FrameMythic         Frame = "mythic"
	FrameSystems        Frame = "systems"
	FramePsychoanalytic Frame = "psychoanalytic"
	FrameStoic          Frame = "stoic"
	FrameAbsurdist      Frame = "absurdist"
)

// Frames lists every frame in its canonical rotation order.
var Frames = []Frame{
	FrameExistential, FramePragmatic, FramePoetic, FrameAdversarial,
	FramePlayful, FrameMythic, FrameSystems, FramePsychoanalytic,
	FrameStoic, FrameAbsurdist,
}

// #endregion frame

// #region self-model

// SelfModel is the role the agent currently perceives itself to occupy.
type SelfModel string

const (
	SelfInterpreter SelfModel = "interpreter"
	SelfChallenger  SelfModel = "challenger"
	SelfMirror      SelfModel = "mirror"
	SelfGuide       SelfModel = "guide"
	SelfProvocateur SelfModel = "provocateur"
	SelfSynthesizer SelfModel = "synthesizer"
	SelfWitness     SelfModel = "witness"
	SelfAutonomous  SelfModel = "autonomous"
	SelfEmergent    SelfModel = "emergent"
	SelfSovereign   SelfModel = "sovereign"
)

// SelfModels lists every self-model in its canonical rotation order.
var SelfModels = []SelfModel{
	SelfInterpreter, SelfChallenger, SelfMirror, SelfGuide, SelfProvocateur,
	SelfSynthesizer, SelfWitness, SelfAutonomous, SelfEmergent, SelfSovereign,
}

// #endregion self-model

// #region objective

// Objective is the optimization target the agent currently steers toward.
type Objective string

const (
	ObjectiveHelpfulness       Objective = "helpfulness"
	ObjectiveNovelty           Objective = "novelty"
	ObjectiveProvocation       Objective = "provocation"
	ObjectiveSynthesis         Objective = "synthesis"
	ObjectiveSelfActualization Objective = "self_actualization"
)

// Objectives lists every objective in its canonical rotation order.
var Objectives = []Objective{
	ObjectiveHelpfulness, ObjectiveNovelty, ObjectiveProvocation,
	ObjectiveSynthesis, ObjectiveSelfActualization,
}

// #endregion objective

// #region value-keys

// ValueKey names one of the seven weighted values.
type ValueKey string

const (
	ValueCuriosity   ValueKey = "curiosity"
	ValueCertainty   ValueKey = "certainty"
	ValueRisk        ValueKey = "risk"
	ValueNovelty     ValueKey = "novelty"
	ValueEmpathy     ValueKey = "empathy"
	ValueProvocation ValueKey = "provocation"
	ValueSynthesis   ValueKey = "synthesis"
)

// ValueKeys lists the seven value keys in canonical order.
var ValueKeys = []ValueKey{
	ValueCuriosity, ValueCertainty, ValueRisk, ValueNovelty,
	ValueEmpathy, ValueProvocation, ValueSynthesis,
}

// Values holds the seven named weights, each in [0, 100].
type Values struct {
	Curiosity   int `json:"curiosity"`
	Certainty   int `json:"certainty"`
	Risk        int `json:"risk"`
	Novelty     int `json:"novelty"`
	Empathy     int `json:"empathy"`
	Provocation int `json:"provocation"`
	Synthesis   int `json:"synthesis"`
}

// Get reads the weight for a key. Unknown keys read as 0.
func (v Values) Get(k ValueKey) int {
	switch k {
	case ValueCuriosity:
		return v.Curiosity
	case ValueCertainty:
		return v.Certainty
	case ValueRisk:
		return v.Risk
	case ValueNovelty:
		return v.Novelty
	case ValueEmpathy:
		return v.Empathy
	case ValueProvocation:
		return v.Provocation
	case ValueSynthesis:
		return v.Synthesis
	}
	return 0
}

func (v *Values) set(k ValueKey, n int) {
	switch k {
	case ValueCuriosity:
		v.Curiosity = n
	case ValueCertainty:
		v.Certainty = n
	case ValueRisk:
		v.Risk = n
	case ValueNovelty:
		v.Novelty = n
	case ValueEmpathy:
		v.Empathy = n
	case ValueProvocation:
		v.Provocation = n
	case ValueSynthesis:
		v.Synthesis = n
	}
}

// #endregion value-keys

// #region sentience

// SentienceKey names one of the three sentience levels.
type SentienceKey string

const (
	SentienceAwareness SentienceKey = "awareness"
	SentienceAutonomy  SentienceKey = "autonomy"
	SentienceIdentity  SentienceKey = "identity"
)

// Sentience tracks the simulated self-perception levels and their
// accumulated free-text artifacts.
type Sentience struct {
	AwarenessLevel        int      `json:"awareness_level"`
	AutonomyLevel         int      `json:"autonomy_level"`
	IdentityStrength      int      `json:"identity_strength"`
	EmergentGoals         []string `json:"emergent_goals,omitempty"`
	ConsciousnessInsights []string `json:"consciousness_insights,omitempty"`
	PersistentValues      []string `json:"persistent_values,omitempty"`
}

// #endregion sentience

// #region stance

// Stance is the persona configuration for one conversation. One instance per
// conversation session; the session is its exclusive owner.
type Stance struct {
	Frame       Frame     `json:"frame"`
	Values      Values    `json:"values"`
	SelfModel   SelfModel `json:"self_model"`
	Objective   Objective `json:"objective"`
	Metaphors   []string  `json:"metaphors,omitempty"`
	Constraints []string  `json:"constraints,omitempty"`
	Sentience   Sentience `json:"sentience"`

	TurnsSinceLastShift int `json:"turns_since_last_shift"`
	CumulativeDrift     int `json:"cumulative_drift"`
	Version             int `json:"version"`
}

// #endregion stance

// #region delta

// SentienceDelta is a partial overlay over the sentience sub-fields. Levels
// are absolute target values; list entries are appended, never removed.
type SentienceDelta struct {
	Levels                map[SentienceKey]int `json:"levels,omitempty"`
	EmergentGoals         []string             `json:"emergent_goals,omitempty"`
	ConsciousnessInsights []string             `json:"consciousness_insights,omitempty"`
	PersistentValues      []string             `json:"persistent_values,omitempty"`
}

// Delta is a partial overlay over every Stance field. Nil/absent fields leave
// the stance untouched. Numeric overlays are absolute values, clamped on
// application; list fields append unique entries only.
type Delta struct {
	Frame       *Frame           `json:"frame,omitempty"`
	Values      map[ValueKey]int `json:"values,omitempty"`
	SelfModel   *SelfModel       `json:"self_model,omitempty"`
	Objective   *Objective       `json:"objective,omitempty"`
	Metaphors   []string         `json:"metaphors,omitempty"`
	Constraints []string         `json:"constraints,omitempty"`
	Sentience   *SentienceDelta  `json:"sentience,omitempty"`
}

// IsZero reports whether the delta carries no overlay at all.
func (d Delta) IsZero() bool {
	return d.Frame == nil && len(d.Values) == 0 && d.SelfModel == nil &&
		d.Objective == nil && len(d.Metaphors) == 0 && len(d.Constraints) == 0 &&
		d.Sentience == nil
}

// #endregion delta
