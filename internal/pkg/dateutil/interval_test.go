//go:build unit

package dateutil_test

import (
	"sort"
	"testing"
	"time"

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

func interval(t *testing.T, start, end string) dateutil.Interval {
	t.Helper()
	return dateutil.NewInterval(mustDate(t, start), mustDate(t, end))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     dateutil.Interval
		overlaps bool
	}{
		{
			name:     "disjoint ranges",
			a:        interval(t, "2024-01-01", "2024-01-05"),
			b:        interval(t, "2024-01-10", "2024-01-12"),
			overlaps: false,
		},
		{
			name:     "checkout day equals next check-in",
			a:        interval(t, "2024-01-01", "2024-01-05"),
			b:        interval(t, "2024-01-05", "2024-01-08"),
			overlaps: false,
		},
		{
			name:     "one shared night",
			a:        interval(t, "2024-01-01", "2024-01-05"),
			b:        interval(t, "2024-01-04", "2024-01-08"),
			overlaps: true,
		},
		{
			name:     "fully contained",
			a:        interval(t, "2024-01-01", "2024-01-10"),
			b:        interval(t, "2024-01-03", "2024-01-05"),
			overlaps: true,
		},
		{
			name:     "identical ranges",
			a:        interval(t, "2024-01-01", "2024-01-05"),
			b:        interval(t, "2024-01-01", "2024-01-05"),
			overlaps: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			// Overlap is symmetric
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func TestClamp(t *testing.T) {
	window := interval(t, "2024-01-03", "2024-01-06")

	t.Run("reservation wider than window contributes only clamped nights", func(t *testing.T) {
		clamped := interval(t, "2024-01-01", "2024-01-10").Clamp(window)
		assert.Equal(t, 3, clamped.Nights())
		assert.Equal(t, "2024-01-03", clamped.Start.String())
		assert.Equal(t, "2024-01-06", clamped.End.String())
	})

	t.Run("disjoint interval clamps to empty", func(t *testing.T) {
		clamped := interval(t, "2024-02-01", "2024-02-05").Clamp(window)
		assert.True(t, clamped.IsEmpty())
	})

	t.Run("interval inside window is unchanged", func(t *testing.T) {
		in := interval(t, "2024-01-04", "2024-01-05")
		assert.Equal(t, in, in.Clamp(window))
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, interval(t, "2024-01-01", "2024-01-05").Nights())
	assert.Equal(t, 1, interval(t, "2024-01-01", "2024-01-02").Nights())
	// Spans a month boundary
	assert.Equal(t, 3, interval(t, "2024-01-30", "2024-02-02").Nights())
}

func TestContains(t *testing.T) {
	in := interval(t, "2024-01-01", "2024-01-03")
	assert.True(t, in.Contains(mustDate(t, "2024-01-01")))
	assert.True(t, in.Contains(mustDate(t, "2024-01-02")))
	assert.False(t, in.Contains(mustDate(t, "2024-01-03")), "checkout date is never occupied")
	assert.False(t, in.Contains(mustDate(t, "2023-12-31")))
}

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := dateutil.ParseDate("2024-07-15")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-15", d.String())
	})

	t.Run("invalid formats rejected", func(t *testing.T) {
		for _, s := range []string{"", "2024/07/15", "15-07-2024", "2024-07-15T00:00:00Z"} {
			_, err := dateutil.ParseDate(s)
			assert.ErrorIs(t, err, dateutil.ErrInvalidDate, s)
		}
	})

	t.Run("DateOf drops time of day", func(t *testing.T) {
		ts := time.Date(2024, 7, 15, 23, 59, 0, 0, time.FixedZone("X", 9*3600))
		assert.Equal(t, "2024-07-15", dateutil.DateOf(ts).String())
	})

	t.Run("AddDays crosses month boundary", func(t *testing.T) {
		d := mustDate(t, "2024-01-31").AddDays(1)
		assert.Equal(t, "2024-02-01", d.String())
	})
}

func TestNaturalCompare(t *testing.T) {
	labels := []string{"Site 2", "Site 10", "Site 1"}
	sort.Slice(labels, func(i, j int) bool {
		return dateutil.NaturalCompare(labels[i], labels[j]) < 0
	})
	assert.Equal(t, []string{"Site 1", "Site 2", "Site 10"}, labels)

	cases := []struct {
		a, b string
		want int
	}{
		{"Site 2", "Site 10", -1},
		{"Site 10", "Site 2", 1},
		{"Site 2", "Site 2", 0},
		{"Site 02", "Site 2", 0},
		{"A1", "B1", -1},
		{"Site", "Site 1", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, dateutil.NaturalCompare(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}
