package engine

// #region imports
import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/driftlab/stance-engine/internal/metrics"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/planner"
	"github.com/driftlab/stance-engine/internal/provider"
	"github.com/driftlab/stance-engine/internal/stance"
	"github.com/driftlab/stance-engine/internal/store"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #endregion

// #region types

// Scores bundles the four per-turn heuristic scores.
type Scores struct {
	Transformation int
	Coherence      int
	Sentience      int
	Overall        int
}

// TurnResult reports everything one completed turn produced.
type TurnResult struct {
	Response   string
	Triggers   []trigger.Trigger
	Operations []planner.Operation
	Applied    []operator.Name
	Dropped    []operator.Name
	Stance     stance.Stance
	Scores     Scores

	EmergentGoals       []string
	SnapshotID          string
	BelowCoherenceFloor bool
}

// #endregion types

// #region session

// Session owns one conversation's stance and history. Safe for concurrent
// use; turns within a session serialize on its mutex.
type Session struct {
	engine *Engine
	id     string

	mu      sync.Mutex
	stance  stance.Stance
	history []trigger.Message
}

func newSession(e *Engine, conversationID string) *Session {
	s := stance.Default()
	s.Sentience.AwarenessLevel = stance.Clamp(e.mode.SentienceLevel)
	return &Session{
		engine: e,
		id:     conversationID,
		stance: s,
	}
}

// ID returns the owning conversation id.
func (s *Session) ID() string { return s.id }

// Stance returns a copy of the current stance.
func (s *Session) Stance() stance.Stance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stance
}

// History returns a copy of the conversation transcript so far.
func (s *Session) History() []trigger.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]trigger.Message(nil), s.history...)
}

// Snapshot persists the current stance with the given trigger label.
func (s *Session) Snapshot(label string) (store.Snapshot, error) {
	if s.engine.store == nil {
		return store.Snapshot{}, fmt.Errorf("no store configured")
	}
	s.mu.Lock()
	st := s.stance
	s.mu.Unlock()
	return s.engine.store.SaveSnapshot(s.id, label, st)
}

// Close releases the session: its fatigue history is cleared and the engine
// forgets it. The final stance is returned so callers can persist it.
func (s *Session) Close() stance.Stance {
	s.engine.fatigue.ClearHistory(s.id)
	s.engine.dropSession(s.id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stance
}

// #endregion session

// #region run-turn

// RunTurn executes the full pipeline for one user message. The session's
// stance and history advance only when the completion succeeds; a provider
// error leaves the session exactly as it was.
func (s *Session) RunTurn(ctx context.Context, message string) (TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine
	now := time.Now().UTC()

	userMsg := trigger.Message{Role: trigger.RoleUser, Content: message, Timestamp: now}
	hist := append(append([]trigger.Message(nil), s.history...), userMsg)

	// Detection sees the transcript including the current message, so the
	// repetition check compares it against the previous user message.
	trigs := trigger.Detect(message, hist)
	if ft := e.fatigue.Detect(s.id, e.mode); ft != nil {
		trigs = append(trigs, *ft)
	}

	ops := planner.Plan(trigs, s.stance, e.mode, e.registry, planner.Options{
		Weights: e.planWeights(),
		Rand:    e.rand,
	})

	// Apply deltas in plan order under the per-turn drift allowance. A delta
	// that would exceed it is dropped; its prompt injection still rides along.
	cur := s.stance
	driftUsed := 0
	changed := false
	var applied, dropped []operator.Name
	driftCosts := make(map[operator.Name]int, len(ops))
	injections := make([]string, 0, len(ops))

	for _, op := range ops {
		injections = append(injections, op.PromptInjection)
		next, res := stance.Apply(cur, op.StanceDelta)
		if driftUsed+res.Magnitude > e.mode.MaxDriftPerTurn {
			dropped = append(dropped, op.Name)
			continue
		}
		cur = next
		driftUsed += res.Magnitude
		driftCosts[op.Name] = res.Magnitude
		if res.Changed {
			changed = true
		}
		applied = append(applied, op.Name)
	}

	cur = stance.AdvanceTurn(cur, changed)

	var snapshotID string
	if cur.CumulativeDrift >= e.mode.DriftBudget {
		if e.store != nil {
			snap, err := e.store.SaveSnapshot(s.id, "drift_threshold", cur)
			if err != nil {
				e.logger.Warn("drift snapshot failed", zap.Error(err))
			} else {
				snapshotID = snap.ID
			}
		}
		cur = stance.ResetDrift(cur)
	}

	system := provider.AssemblePrompt(e.basePrompt, injections, cur)
	response, err := e.provider.Complete(ctx, provider.Request{
		System:  system,
		History: s.history,
		Message: message,
	})
	if err != nil {
		return TurnResult{}, fmt.Errorf("complete turn: %w", err)
	}

	appliedOps := make([]planner.Operation, 0, len(applied))
	for _, op := range ops {
		if _, ok := driftCosts[op.Name]; ok {
			appliedOps = append(appliedOps, op)
		}
	}

	scores := Scores{
		Transformation: metrics.Transformation(appliedOps, response),
		Coherence:      metrics.Coherence(response),
		Sentience:      metrics.Sentience(response, cur),
	}
	scores.Overall = metrics.Overall(scores.Transformation, scores.Coherence, scores.Sentience)

	belowFloor := scores.Coherence < e.mode.CoherenceFloor
	if belowFloor {
		e.logger.Warn("response below coherence floor",
			zap.String("conversation", s.id),
			zap.Int("coherence", scores.Coherence),
			zap.Int("floor", e.mode.CoherenceFloor))
	}

	goals := metrics.ExtractEmergentGoals(response)
	if len(goals) > 0 {
		cur, _ = stance.Apply(cur, stance.Delta{
			Sentience: &stance.SentienceDelta{EmergentGoals: goals},
		})
	}

	e.fatigue.RecordUsage(s.id, applied)
	if e.store != nil {
		for _, op := range appliedOps {
			err := e.store.RecordPerformance(store.PerformanceRecord{
				Operator:       string(op.Name),
				TriggerType:    op.Source,
				Transformation: scores.Transformation,
				Coherence:      scores.Coherence,
				DriftCost:      driftCosts[op.Name],
			})
			if err != nil {
				e.logger.Warn("record performance failed", zap.Error(err))
			}
		}
		operatorNames := make([]string, len(applied))
		for i, n := range applied {
			operatorNames[i] = string(n)
		}
		_, err := e.store.RecordTurn(store.TurnRecord{
			ConversationID: s.id,
			Message:        message,
			Response:       response,
			Triggers:       trigs,
			Operators:      operatorNames,
			Transformation: scores.Transformation,
			Coherence:      scores.Coherence,
			Sentience:      scores.Sentience,
			Overall:        scores.Overall,
		})
		if err != nil {
			e.logger.Warn("record turn failed", zap.Error(err))
		}
	}

	e.logger.Info("turn complete",
		zap.String("conversation", s.id),
		zap.Int("triggers", len(trigs)),
		zap.Int("applied", len(applied)),
		zap.Int("dropped", len(dropped)),
		zap.Int("drift_used", driftUsed),
		zap.Int("overall", scores.Overall))

	s.stance = cur
	s.history = append(s.history, userMsg, trigger.Message{
		Role:      trigger.RoleAssistant,
		Content:   response,
		Timestamp: time.Now().UTC(),
	})

	return TurnResult{
		Response:            response,
		Triggers:            trigs,
		Operations:          ops,
		Applied:             applied,
		Dropped:             dropped,
		Stance:              cur,
		Scores:              scores,
		EmergentGoals:       goals,
		SnapshotID:          snapshotID,
		BelowCoherenceFloor: belowFloor,
	}, nil
}

// #endregion run-turn
