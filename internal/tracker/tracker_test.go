package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
)

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newProgram(t *testing.T) *models.Program {
	t.Helper()
	p := plan.Generate(models.Settings{
		Distance:        models.DistanceTenK,
		Level:           models.LevelIntermediate,
		RaceName:        "Spring 10K",
		RaceDate:        now.AddDate(0, 0, 56),
		SessionsPerWeek: 3,
		VMA:             15,
	}, now)
	require.Equal(t, 8, p.TotalWeeks)
	return p
}

func TestToggleComplete(t *testing.T) {
	p := newProgram(t)

	done, err := ToggleComplete(p, "w01-tue-interval")
	require.NoError(t, err)

	_, s, err := FindSession(done, "w01-tue-interval")
	require.NoError(t, err)
	assert.True(t, s.Completed)

	_, orig, _ := FindSession(p, "w01-tue-interval")
	assert.False(t, orig.Completed, "input must not change")

	undone, err := ToggleComplete(done, "w01-tue-interval")
	require.NoError(t, err)
	assert.Equal(t, p, undone)
}

func TestToggleCompleteUnknownSession(t *testing.T) {
	_, err := ToggleComplete(newProgram(t), "w99-mon-rest")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFeedback(t *testing.T) {
	p := newProgram(t)

	got, err := SetFeedback(p, "w02-sun-long-run", models.FeedbackHard)
	require.NoError(t, err)
	_, s, _ := FindSession(got, "w02-sun-long-run")
	require.NotNil(t, s.Feedback)
	assert.Equal(t, models.FeedbackHard, *s.Feedback)
	assert.False(t, s.Completed)

	cleared, err := ClearFeedback(got, "w02-sun-long-run")
	require.NoError(t, err)
	_, s, _ = FindSession(cleared, "w02-sun-long-run")
	assert.Nil(t, s.Feedback)

	_, err = SetFeedback(p, "w02-sun-long-run", models.Feedback("brutal"))
	assert.Error(t, err)
}

func TestSwapDays(t *testing.T) {
	p := newProgram(t)

	got, err := SwapDays(p, 1, "w01-tue-interval", "w01-wed-rest")
	require.NoError(t, err)

	w, err := FindWeek(got, 1)
	require.NoError(t, err)
	require.Len(t, w.Sessions, 7)
	for i, s := range w.Sessions {
		assert.Equal(t, models.Weekdays[i], s.Day)
	}
	assert.Equal(t, "w01-wed-rest", w.Sessions[1].ID)
	assert.Equal(t, "w01-tue-interval", w.Sessions[2].ID)
	assert.Equal(t, models.SessionInterval, w.Sessions[2].Type)

	assert.Equal(t, "w01-tue-interval", p.Weeks[0].Sessions[1].ID, "input must not change")
}

func TestSwapDaysErrors(t *testing.T) {
	p := newProgram(t)

	tests := []struct {
		name string
		week int
		a, b string
		want error
	}{
		{"unknown week", 42, "w01-tue-interval", "w01-wed-rest", ErrWeekNotFound},
		{"unknown session", 1, "w01-tue-interval", "nope", ErrSessionNotFound},
		{"other week", 1, "w01-tue-interval", "w02-wed-rest", ErrDifferentWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SwapDays(p, tt.week, tt.a, tt.b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestArchive(t *testing.T) {
	p := newProgram(t)
	later := now.AddDate(0, 1, 0)

	got := Archive(p, later)
	require.NotNil(t, got.ArchivedAt)
	assert.True(t, got.ArchivedAt.Equal(later))
	assert.Nil(t, p.ArchivedAt)
}

func TestComputeProgress(t *testing.T) {
	p := newProgram(t)
	p, _ = ToggleComplete(p, "w01-tue-interval")
	p, _ = ToggleComplete(p, "w01-sun-long-run")

	pr := ComputeProgress(p)
	assert.Equal(t, 24, pr.Planned)
	assert.Equal(t, 2, pr.Completed)
	assert.Equal(t, 8, pr.Percent())
	require.Len(t, pr.Weeks, 8)
	assert.Equal(t, 2, pr.Weeks[0].Completed)
	assert.Equal(t, 3, pr.Weeks[0].Planned)
	assert.Positive(t, pr.Weeks[0].DoneKm)
}

func TestCurrentWeek(t *testing.T) {
	p := newProgram(t)
	assert.Equal(t, 1, CurrentWeek(p, now))
	assert.Equal(t, 2, CurrentWeek(p, now.AddDate(0, 0, 7)))
	assert.Equal(t, 1, CurrentWeek(p, now.AddDate(0, 0, -3)))
	assert.Equal(t, 8, CurrentWeek(p, now.AddDate(1, 0, 0)))
}
