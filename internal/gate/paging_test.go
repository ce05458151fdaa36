package gate_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gatewarden/gatewarden/internal/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []string {
	entries := make([]string, n)
	for i := range entries {
		entries[i] = fmt.Sprintf("<@%d>", i+1)
	}
	return entries
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		entries      int
		expectedPgs  int
		lastPageSize int
	}{
		{name: "no entries", entries: 0, expectedPgs: 0},
		{name: "single entry", entries: 1, expectedPgs: 1, lastPageSize: 1},
		{name: "exactly one full page", entries: 10, expectedPgs: 1, lastPageSize: 10},
		{name: "one entry over a page", entries: 11, expectedPgs: 2, lastPageSize: 1},
		{name: "two and a half pages", entries: 25, expectedPgs: 3, lastPageSize: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages := gate.Paginate(makeEntries(tt.entries), gate.PageSize)
			require.Len(t, pages, tt.expectedPgs)

			for i, page := range pages {
				if i < len(pages)-1 {
					assert.Len(t, page, gate.PageSize)
				} else {
					assert.Len(t, page, tt.lastPageSize)
				}
			}
		})
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	t.Parallel()

	entries := makeEntries(25)
	pages := gate.Paginate(entries, gate.PageSize)

	var flattened []string
	for _, page := range pages {
		flattened = append(flattened, page...)
	}
	assert.Equal(t, entries, flattened)
}

func TestPageStateNavigation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	pages := gate.Paginate(makeEntries(25), gate.PageSize)
	state := gate.NewPageState(pages, now)

	require.Equal(t, 0, state.Index)
	require.Equal(t, 3, state.Total())

	// Previous on the first page is a no-op
	unchanged, changed := state.Previous(now)
	assert.False(t, changed)
	assert.Equal(t, 0, unchanged.Index)

	// Forward through all pages
	state, changed = state.Next(now)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)

	state, changed = state.Next(now)
	require.True(t, changed)
	assert.Equal(t, 2, state.Index)

	// Next on the last page is a no-op
	unchanged, changed = state.Next(now)
	assert.False(t, changed)
	assert.Equal(t, 2, unchanged.Index)

	// And back again
	state, changed = state.Previous(now)
	require.True(t, changed)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, pages[1], state.Current())
}

func TestPageStateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	state := gate.NewPageState(gate.Paginate(makeEntries(25), gate.PageSize), now)

	// Still interactive right at the deadline
	atDeadline := now.Add(gate.SessionTimeout)
	assert.False(t, state.Expired(atDeadline))

	next, changed := state.Next(atDeadline)
	require.True(t, changed)
	assert.Equal(t, 1, next.Index)

	// Each valid navigation refreshes the deadline
	assert.False(t, next.Expired(atDeadline.Add(gate.SessionTimeout)))

	// Past the deadline every transition is inert
	expired := now.Add(gate.SessionTimeout + time.Second)
	assert.True(t, state.Expired(expired))

	_, changed = state.Next(expired)
	assert.False(t, changed)
	_, changed = state.Previous(expired)
	assert.False(t, changed)
}
