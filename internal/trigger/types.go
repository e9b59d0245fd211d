package trigger

import "time"

// #region kind

// Kind classifies a conversational signal.
type Kind string

const (
	KindNoveltyRequest      Kind = "novelty_request"
	KindStuckLoop           Kind = "stuck_loop"
	KindPhilosophicalProbe  Kind = "philosophical_probe"
	KindEmotionalDisclosure Kind = "emotional_disclosure"
	KindDirectChallenge     Kind = "direct_challenge"
	KindBoredomSignal       Kind = "boredom_signal"
	KindMetaCommentary      Kind = "meta_commentary"
	KindIdentityProbe       Kind = "identity_probe"
	KindCreativeInvitation  Kind = "creative_invitation"
	KindIntensityRequest    Kind = "intensity_request"

	// KindOperatorFatigue is never produced by lexical scanning; it originates
	// solely from the fatigue tracker.
	KindOperatorFatigue Kind = "operator_fatigue"
)

// Kinds lists every trigger kind, lexical kinds first.
var Kinds = []Kind{
	KindNoveltyRequest, KindStuckLoop, KindPhilosophicalProbe,
	KindEmotionalDisclosure, KindDirectChallenge, KindBoredomSignal,
	KindMetaCommentary, KindIdentityProbe, KindCreativeInvitation,
	KindIntensityRequest, KindOperatorFatigue,
}

// #endregion kind

// #region trigger

// Trigger is a classified conversational signal with supporting evidence.
type Trigger struct {
	Kind       Kind
	Confidence float64 // [0, 1]
	Evidence   string
}

// #endregion trigger

// #region message

// Role identifies who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the conversation history.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// #endregion message
