package session_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/bot/core/session"
	"github.com/gatewarden/gatewarden/internal/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testClock is a manually advanced clock for driving session expiry.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testPages(entries int) [][]string {
	mentions := make([]string, entries)
	for i := range mentions {
		mentions[i] = fmt.Sprintf("<@%d>", i+1)
	}
	return gate.Paginate(mentions, gate.PageSize)
}

func TestManagerNavigation(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(clock.Now, zap.NewNop())
	messageID := snowflake.ID(1)

	state := m.Create(messageID, testPages(25))
	require.Equal(t, 0, state.Index)
	require.Equal(t, 3, state.Total())

	// Retreat on the first page is a no-op
	_, changed := m.Retreat(messageID)
	assert.False(t, changed)

	state, changed = m.Advance(messageID)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)

	state, changed = m.Advance(messageID)
	require.True(t, changed)
	assert.Equal(t, 2, state.Index)

	// Advance on the last page is a no-op
	_, changed = m.Advance(messageID)
	assert.False(t, changed)

	state, changed = m.Retreat(messageID)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)
}

func TestManagerUnknownMessage(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(clock.Now, zap.NewNop())

	_, changed := m.Advance(snowflake.ID(999))
	assert.False(t, changed)
}

func TestManagerExpiry(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(clock.Now, zap.NewNop())
	messageID := snowflake.ID(1)

	m.Create(messageID, testPages(25))

	// Navigation keeps the session alive past the original deadline
	clock.Advance(100 * time.Second)
	_, changed := m.Advance(messageID)
	require.True(t, changed)

	clock.Advance(100 * time.Second)
	state, changed := m.Advance(messageID)
	require.True(t, changed)
	assert.Equal(t, 2, state.Index)

	// After the inactivity timeout the session is inert and dropped
	clock.Advance(gate.SessionTimeout + time.Second)
	_, changed = m.Retreat(messageID)
	assert.False(t, changed)

	// Even fresh clicks on the dropped session do nothing
	_, changed = m.Advance(messageID)
	assert.False(t, changed)
}

func TestManagerIndependentSessions(t *testing.T) {
	t.Parallel()

	clock := &testClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(clock.Now, zap.NewNop())

	first := snowflake.ID(1)
	second := snowflake.ID(2)
	m.Create(first, testPages(25))
	m.Create(second, testPages(25))

	state, changed := m.Advance(first)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)

	// The other administrator's listing still shows page 0
	state, changed = m.Advance(second)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)

	_, changed = m.Retreat(second)
	require.True(t, changed)

	state, changed = m.Advance(first)
	require.True(t, changed)
	assert.Equal(t, 2, state.Index)
}
