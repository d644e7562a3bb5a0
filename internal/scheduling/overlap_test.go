package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	for _, bad := range []string{"9h30", "24:00", "12:60", "12", "", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "%q should not parse", bad)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		startA string
		durA   int
		startB string
		durB   int
		want   bool
	}{
		{"partial overlap", "09:00", 30, "09:15", 30, true},
		{"contained", "09:00", 60, "09:15", 15, true},
		{"identical", "09:00", 30, "09:00", 30, true},
		{"back to back", "09:00", 30, "09:30", 30, false},
		{"disjoint", "09:00", 30, "14:00", 30, false},
		{"reverse order", "09:15", 30, "09:00", 30, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Overlaps(tc.startA, tc.durA, tc.startB, tc.durB)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
