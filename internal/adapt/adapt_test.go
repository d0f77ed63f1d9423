package adapt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/plan"
	"github.com/misterclayt0n/stride/internal/tracker"
)

func program(t *testing.T) *models.Program {
	t.Helper()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return plan.Generate(models.Settings{
		Distance:        models.DistanceHalf,
		Level:           models.LevelBeginner,
		RaceDate:        now.AddDate(0, 0, 84),
		SessionsPerWeek: 3,
		VMA:             14,
	}, now)
}

func rate(t *testing.T, p *models.Program, f models.Feedback, ids ...string) *models.Program {
	t.Helper()
	var err error
	for _, id := range ids {
		p, err = tracker.ToggleComplete(p, id)
		require.NoError(t, err)
		p, err = tracker.SetFeedback(p, id, f)
		require.NoError(t, err)
	}
	return p
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*models.Program) *models.Program
		reduce bool
		hard   int
	}{
		{
			name:  "nothing completed",
			setup: func(p *models.Program) *models.Program { return p },
		},
		{
			name: "three hard in a row",
			setup: func(p *models.Program) *models.Program {
				p = rate(t, p, models.FeedbackEasy, "w01-tue-interval")
				return rate(t, p, models.FeedbackHard, "w01-thu-tempo", "w01-sun-long-run", "w02-tue-interval")
			},
			reduce: true,
			hard:   3,
		},
		{
			name: "streak broken by a medium session",
			setup: func(p *models.Program) *models.Program {
				p = rate(t, p, models.FeedbackHard, "w01-tue-interval", "w01-thu-tempo")
				p = rate(t, p, models.FeedbackMedium, "w01-sun-long-run")
				return rate(t, p, models.FeedbackHard, "w02-tue-interval")
			},
			hard: 1,
		},
		{
			name: "hard but not completed",
			setup: func(p *models.Program) *models.Program {
				for _, id := range []string{"w01-tue-interval", "w01-thu-tempo", "w01-sun-long-run"} {
					p, _ = tracker.SetFeedback(p, id, models.FeedbackHard)
				}
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.setup(program(t))
			sg := Detect(p, DefaultRule())
			assert.Equal(t, tt.reduce, sg.Reduce)
			assert.Equal(t, tt.hard, sg.Hard)
			if tt.reduce {
				assert.Len(t, sg.Sessions, 3)
				assert.Equal(t, 13.3, sg.NewVMA)
			} else {
				assert.Equal(t, p.VMA, sg.NewVMA)
			}
		})
	}
}

func TestReduceVMA(t *testing.T) {
	assert.Equal(t, 13.3, ReduceVMA(14, 5))
	assert.Equal(t, 10.8, ReduceVMA(12, 10))
}

func TestApply(t *testing.T) {
	p := program(t)
	got := Apply(p, 5)

	assert.Equal(t, 13.3, got.VMA)
	assert.Equal(t, 14.0, p.VMA)
	assert.Equal(t, p.Weeks, got.Weeks)
}

func TestRuleWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultRule(), Rule{}.WithDefaults())
	assert.Equal(t, Rule{Window: 2, Reduction: 5}, Rule{Window: 2, Reduction: 150}.WithDefaults())
}
