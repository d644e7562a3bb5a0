package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic-app-server/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.AppointmentStatus
		want     bool
	}{
		{models.StatusScheduled, models.StatusConfirmed, true},
		{models.StatusScheduled, models.StatusArrived, true},
		{models.StatusScheduled, models.StatusCanceled, true},
		{models.StatusScheduled, models.StatusCompleted, false},
		{models.StatusScheduled, models.StatusInProgress, false},
		{models.StatusConfirmed, models.StatusArrived, true},
		{models.StatusConfirmed, models.StatusScheduled, false},
		{models.StatusArrived, models.StatusInProgress, true},
		{models.StatusArrived, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusScheduled, false},
		{models.StatusCompleted, models.StatusCanceled, false},
		{models.StatusCanceled, models.StatusScheduled, false},
		{"desconhecido", models.StatusScheduled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCanceled))
	assert.False(t, IsTerminal(models.StatusScheduled))
	assert.False(t, IsTerminal(models.StatusArrived))
	assert.False(t, IsTerminal("desconhecido"))
}

func TestCanComplete(t *testing.T) {
	assert.True(t, CanComplete(models.StatusArrived))
	assert.True(t, CanComplete(models.StatusInProgress))
	assert.False(t, CanComplete(models.StatusScheduled))
	assert.False(t, CanComplete(models.StatusCompleted))
}
