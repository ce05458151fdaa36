// Package session tracks the paging state of active review listings.
package session

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/gate"
	"go.uber.org/zap"
)

// Manager holds one paging state per listing message. Sessions are keyed by
// the message ID of the reply carrying the interactive view, so concurrent
// listings by different administrators never share state. Expired sessions are
// pruned lazily on access.
type Manager struct {
	mu       sync.Mutex
	sessions map[snowflake.ID]gate.PageState
	now      func() time.Time
	logger   *zap.Logger
}

// NewManager initializes a Manager. The clock is injected so tests can drive
// session expiry without waiting.
func NewManager(now func() time.Time, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[snowflake.ID]gate.PageState),
		now:      now,
		logger:   logger.Named("session"),
	}
}

// Create starts a review session for the given listing message and returns its
// initial state. A session already stored under the same message ID is
// replaced.
func (m *Manager) Create(messageID snowflake.ID, pages [][]string) gate.PageState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneExpired()

	state := gate.NewPageState(pages, m.now())
	m.sessions[messageID] = state

	m.logger.Debug("Created review session",
		zap.Uint64("message_id", uint64(messageID)),
		zap.Int("pages", state.Total()))

	return state
}

// Advance moves the session for messageID one page forward. It reports false
// when the session is unknown, expired, or already on the last page; the
// caller must not re-render in that case.
func (m *Manager) Advance(messageID snowflake.ID) (gate.PageState, bool) {
	return m.transition(messageID, gate.PageState.Next)
}

// Retreat moves the session for messageID one page back, with the same
// no-change semantics as Advance.
func (m *Manager) Retreat(messageID snowflake.ID) (gate.PageState, bool) {
	return m.transition(messageID, gate.PageState.Previous)
}

func (m *Manager) transition(
	messageID snowflake.ID,
	apply func(gate.PageState, time.Time) (gate.PageState, bool),
) (gate.PageState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[messageID]
	if !ok {
		return gate.PageState{}, false
	}

	now := m.now()
	if state.Expired(now) {
		delete(m.sessions, messageID)
		m.logger.Debug("Review session expired",
			zap.Uint64("message_id", uint64(messageID)))
		return gate.PageState{}, false
	}

	next, changed := apply(state, now)
	if changed {
		m.sessions[messageID] = next
	}

	return next, changed
}

// pruneExpired drops sessions past their deadline. Caller must hold mu.
func (m *Manager) pruneExpired() {
	now := m.now()
	for id, state := range m.sessions {
		if state.Expired(now) {
			delete(m.sessions, id)
		}
	}
}
