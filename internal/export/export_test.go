package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/tracker"
)

const maxLineOctets = 75

// A Monday.
var start = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func program(t *testing.T) *models.Program {
	t.Helper()
	return plan.Generate(models.Settings{
		Distance:        models.DistanceTenK,
		Level:           models.LevelBeginner,
		RaceName:        "City 10K, spring edition",
		RaceDate:        start.AddDate(0, 0, 70),
		SessionsPerWeek: 3,
		VMA:             12,
	}, start)
}

func TestSessionDate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		week  int
		day   string
		want  time.Time
	}{
		{"same day counts", start, 0, "Monday", time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)},
		{"later in the week", start, 0, "Thursday", time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)},
		{"third week", start, 2, "Sunday", time.Date(2026, 3, 22, 18, 0, 0, 0, time.UTC)},
		{"wraps past sunday", start.AddDate(0, 0, 3), 0, "Tuesday", time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SessionDate(tt.start, tt.week, tt.day, 18, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SessionDate(start, 0, "Someday", 18, time.UTC)
	assert.Error(t, err)
}

func TestWeekICS(t *testing.T) {
	p := program(t)
	opts := Options{Hour: 18, ReminderMinutes: 30, Location: time.UTC, Now: start}

	out, err := WeekICS(p, 2, start, opts)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VALARM"))
	assert.Contains(t, out, "TRIGGER:-PT30M")
	assert.Contains(t, out, "X-WR-CALNAME:City 10K\\, spring edition - Week 2")
	// Week 2 Tuesday, 18:00.
	assert.Contains(t, out, "DTSTART:20260310T180000Z")
	assert.Contains(t, out, "DTSTAMP:20260302T080000Z")
	assert.NotContains(t, out, "Complete rest.")

	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), maxLineOctets)
	}

	again, err := WeekICS(p, 2, start, opts)
	require.NoError(t, err)
	assert.Equal(t, out, again, "UIDs and stamps are stable")

	_, err = WeekICS(p, 99, start, opts)
	assert.ErrorIs(t, err, tracker.ErrWeekNotFound)
}

func TestSessionICS(t *testing.T) {
	p := program(t)
	opts := Options{Hour: 7, Location: time.UTC, Now: start}

	out, err := SessionICS(p, "w01-sun-long-run", start, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.NotContains(t, out, "VALARM")
	assert.Contains(t, out, "DTSTART:20260308T070000Z")
	assert.Contains(t, out, "SUMMARY:stride - The Long Run")

	_, err = SessionICS(p, "w01-mon-rest", start, opts)
	assert.Error(t, err)
}

func TestGenerateICSEscapesAndFolds(t *testing.T) {
	at := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	desc := "[warmup] 20' jog; drills, strides\n[main] " + strings.Repeat("é", 60)
	out := GenerateICS("Trail, 30K", []Event{{
		UID:         "w01@stride",
		Summary:     "stride - Hills; 8x45\"",
		Description: desc,
		StartTime:   at,
		EndTime:     at.Add(time.Hour),
	}}, start)

	assert.Contains(t, out, "X-WR-CALNAME:Trail\\, 30K\r\n")
	assert.Contains(t, out, `SUMMARY:stride - Hills\; 8x45"`)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), maxLineOctets)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "w01@stride", events[0].Id())
	got := events[0].GetProperty(ics.ComponentPropertyDescription)
	require.NotNil(t, got)
	assert.Equal(t, desc, got.Value)
}

func TestSessionFIT(t *testing.T) {
	p := program(t)
	_, s, err := tracker.FindSession(p, "w01-tue-interval")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SessionFIT(&buf, *s, p.VMA, start))

	fit, err := decoder.New(&buf).Decode()
	require.NoError(t, err)

	var steps []*mesgdef.WorkoutStep
	var workout *mesgdef.Workout
	for i := range fit.Messages {
		m := &fit.Messages[i]
		switch m.Num {
		case typedef.MesgNumFileId:
			assert.Equal(t, typedef.FileWorkout, mesgdef.NewFileId(m).Type)
		case typedef.MesgNumWorkout:
			workout = mesgdef.NewWorkout(m)
		case typedef.MesgNumWorkoutStep:
			steps = append(steps, mesgdef.NewWorkoutStep(m))
		}
	}

	require.NotNil(t, workout)
	assert.Equal(t, typedef.SportRunning, workout.Sport)
	// Warm-up, main set, cool-down; the info note is not a step.
	require.Len(t, steps, 3)
	assert.Equal(t, uint16(3), workout.NumValidSteps)

	assert.Equal(t, typedef.IntensityWarmup, steps[0].Intensity)
	assert.Equal(t, typedef.WktStepDurationTime, steps[0].DurationType)
	assert.Equal(t, typedef.WktStepDurationOpen, steps[1].DurationType)
	assert.Equal(t, typedef.WktStepTargetSpeed, steps[1].TargetType)
	assert.Equal(t, typedef.IntensityCooldown, steps[2].Intensity)
}

func TestSessionFITRejectsRest(t *testing.T) {
	p := program(t)
	_, s, err := tracker.FindSession(p, "w01-mon-rest")
	require.NoError(t, err)

	assert.Error(t, SessionFIT(&bytes.Buffer{}, *s, p.VMA, start))
}
