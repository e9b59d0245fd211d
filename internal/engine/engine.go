// Package engine wires the turn pipeline together: trigger detection,
// operator planning, stance application under drift limits, prompt assembly,
// completion, and scoring. One Engine serves many conversations; each
// conversation owns exactly one Session.
package engine

// #region imports
import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/planner"
	"github.com/driftlab/stance-engine/internal/provider"
	"github.com/driftlab/stance-engine/internal/store"
)

// #endregion

// #region options

// Options carries the engine's injectable collaborators. Store is optional:
// without it planning runs on neutral weights and no snapshots are written.
type Options struct {
	Store      *store.Store
	Logger     *zap.Logger
	BasePrompt string

	// Rand is forwarded to the planner's fallback branch. Nil uses math/rand.
	Rand func(n int) int
}

// #endregion options

// #region engine

// Engine holds the process-wide collaborators shared by all sessions.
type Engine struct {
	mode     config.Mode
	registry *operator.Registry
	provider provider.Completer
	store    *store.Store
	fatigue  *planner.FatigueTracker
	logger   *zap.Logger

	basePrompt string
	rand       func(n int) int

	mu       sync.Mutex
	sessions map[string]*Session
}

// New validates the mode and wires an engine. The registry is shared by
// reference across all sessions and must not be mutated after this call.
func New(mode config.Mode, reg *operator.Registry, completer provider.Completer, opts Options) (*Engine, error) {
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mode: %w", err)
	}
	if reg == nil {
		return nil, fmt.Errorf("nil operator registry")
	}
	if completer == nil {
		return nil, fmt.Errorf("nil completion provider")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		mode:       mode,
		registry:   reg,
		provider:   completer,
		store:      opts.Store,
		fatigue:    planner.NewFatigueTracker(),
		logger:     logger,
		basePrompt: opts.BasePrompt,
		rand:       opts.Rand,
		sessions:   make(map[string]*Session),
	}, nil
}

// Session returns the conversation's session, creating it on first use.
func (e *Engine) Session(conversationID string) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sessions[conversationID]; ok {
		return s
	}
	s := newSession(e, conversationID)
	e.sessions[conversationID] = s
	return s
}

func (e *Engine) dropSession(conversationID string) {
	e.mu.Lock()
	delete(e.sessions, conversationID)
	e.mu.Unlock()
}

// planWeights derives operator weights from recorded performance. Neutral
// without a store; a store error degrades to neutral rather than failing the
// turn.
func (e *Engine) planWeights() map[operator.Name]float64 {
	if e.store == nil {
		return nil
	}
	names := make([]operator.Name, 0, len(e.registry.All()))
	for _, def := range e.registry.All() {
		names = append(names, def.Name)
	}
	weights, err := e.store.EffectivenessWeights(names)
	if err != nil {
		e.logger.Warn("effectiveness weights unavailable", zap.Error(err))
		return nil
	}
	return weights
}

// #endregion engine
