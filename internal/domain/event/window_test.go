//go:build unit

package event_test

import (
	"testing"

	"campreserve/internal/domain/event"
	"campreserve/internal/pkg/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) dateutil.Date {
	t.Helper()
	d, err := dateutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestExtendedWindow(t *testing.T) {
	window := event.ExtendedWindow(mustDate(t, "2026-07-10"), mustDate(t, "2026-07-15"))

	assert.Equal(t, "2026-07-09", window.Start.String())
	assert.Equal(t, "2026-07-16", window.End.String())
	assert.Equal(t, 7, window.Nights())

	assert.True(t, window.Contains(mustDate(t, "2026-07-09")), "early-arrival night is bookable")
	assert.True(t, window.Contains(mustDate(t, "2026-07-15")), "late-departure night is bookable")
	assert.False(t, window.Contains(mustDate(t, "2026-07-16")), "window end is exclusive")
}
