package planner

import (
	"fmt"
	"sync"
	"time"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/trigger"
)

// #region tracker

// maxFatigueEntries caps each conversation's usage log.
const maxFatigueEntries = 20

type usageEntry struct {
	operators []operator.Name
	at        time.Time
}

// FatigueTracker keeps a per-conversation rolling log of operator usage and
// emits a synthetic operator_fatigue trigger when one operator recurs too
// often inside the lookback window. Purely frequency-based; it has no idea
// why an operator kept coming up.
type FatigueTracker struct {
	mu  sync.Mutex
	log map[string][]usageEntry
}

// NewFatigueTracker returns an empty tracker.
func NewFatigueTracker() *FatigueTracker {
	return &FatigueTracker{log: make(map[string][]usageEntry)}
}

// #endregion tracker

// #region record

// RecordUsage appends one turn's applied operator set for a conversation,
// dropping the oldest entry once the log exceeds its cap.
func (t *FatigueTracker) RecordUsage(conversationID string, names []operator.Name) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := append(t.log[conversationID], usageEntry{
		operators: append([]operator.Name(nil), names...),
		at:        time.Now().UTC(),
	})
	if len(entries) > maxFatigueEntries {
		entries = entries[len(entries)-maxFatigueEntries:]
	}
	t.log[conversationID] = entries
}

// ClearHistory discards a conversation's log, e.g. on session teardown.
func (t *FatigueTracker) ClearHistory(conversationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.log, conversationID)
}

// #endregion record

// #region detect

// Detect returns one operator_fatigue trigger for the first operator (in
// first-appearance order across the window) whose count within the lookback
// window reaches the threshold, or nil. Disabled when auto operator shifts
// are off or the log is shorter than the lookback.
func (t *FatigueTracker) Detect(conversationID string, mode config.Mode) *trigger.Trigger {
	if !mode.AllowAutoOperatorShift {
		return nil
	}
	order, counts := t.windowTally(conversationID, mode.OperatorFatigueLookback)
	if order == nil {
		return nil
	}
	for _, name := range order {
		if counts[name] >= mode.OperatorFatigueThreshold {
			return &trigger.Trigger{
				Kind:       trigger.KindOperatorFatigue,
				Confidence: float64(counts[name]) / float64(mode.OperatorFatigueLookback),
				Evidence: fmt.Sprintf("Operator %s applied %d times in last %d turns",
					name, counts[name], mode.OperatorFatigueLookback),
			}
		}
	}
	return nil
}

// FatiguedOperators returns every operator at or over the threshold within
// the lookback window, in first-appearance order.
func (t *FatigueTracker) FatiguedOperators(conversationID string, mode config.Mode) []operator.Name {
	if !mode.AllowAutoOperatorShift {
		return nil
	}
	order, counts := t.windowTally(conversationID, mode.OperatorFatigueLookback)
	var out []operator.Name
	for _, name := range order {
		if counts[name] >= mode.OperatorFatigueThreshold {
			out = append(out, name)
		}
	}
	return out
}

// windowTally counts per-operator occurrences across the most recent
// lookback entries. Returns nil order when the log is shorter than lookback.
func (t *FatigueTracker) windowTally(conversationID string, lookback int) ([]operator.Name, map[operator.Name]int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.log[conversationID]
	if len(entries) < lookback {
		return nil, nil
	}
	window := entries[len(entries)-lookback:]

	counts := make(map[operator.Name]int)
	var order []operator.Name
	for _, e := range window {
		for _, name := range e.operators {
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	return order, counts
}

// #endregion detect
