package store

// #region imports
import (
	"time"

	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #endregion

// #region types

// Snapshot is one persisted stance, tagged with the trigger that caused it.
type Snapshot struct {
	ID             string
	ConversationID string
	Trigger        string
	Stance         stance.Stance
	CreatedAt      time.Time
}

// PerformanceRecord is one operator application's scored outcome.
type PerformanceRecord struct {
	Operator       string
	TriggerType    trigger.Kind
	Transformation int
	Coherence      int
	DriftCost      int
	CreatedAt      time.Time
}

// TurnRecord is the audit row for one completed turn.
type TurnRecord struct {
	ID             string
	ConversationID string
	Message        string
	Response       string
	Triggers       []trigger.Trigger
	Operators      []string
	Transformation int
	Coherence      int
	Sentience      int
	Overall        int
	CreatedAt      time.Time
}

// #endregion
