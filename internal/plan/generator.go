package plan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

// Generator builds periodized programs. Now is the only impurity: plans always
// start from the current date.
type Generator struct {
	Rules Rules
	Now   func() time.Time
}

func NewGenerator(rules Rules) *Generator {
	return &Generator{Rules: rules.WithDefaults(), Now: time.Now}
}

// Generate builds a program with the default rules, starting at now.
func Generate(settings models.Settings, now time.Time) *models.Program {
	g := NewGenerator(DefaultRules())
	g.Now = func() time.Time { return now }
	return g.Generate(settings)
}

func (g *Generator) Generate(settings models.Settings) *models.Program {
	rules := g.Rules.WithDefaults()
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	start := now().UTC()

	// The echoed settings carry the values the plan was actually built with.
	settings.RaceDate = settings.RaceDate.UTC()
	if settings.VMA <= 0 {
		settings.VMA = rules.FallbackVMA
	}
	settings.SessionsPerWeek = ClampSessions(settings.SessionsPerWeek)
	if settings.RaceInfo != nil {
		info := *settings.RaceInfo
		info.Date = info.Date.UTC()
		settings.RaceInfo = &info
	}

	totalWeeks := rules.TotalWeeks(start, settings.RaceDate)
	days := TrainingDays(settings.SessionsPerWeek)

	weeks := make([]models.Week, 0, totalWeeks)
	for i := 1; i <= totalWeeks; i++ {
		b := &weekBuilder{
			rules:      rules,
			settings:   settings,
			week:       i,
			totalWeeks: totalWeeks,
			phase:      rules.PhaseOf(i, totalWeeks),
		}
		weeks = append(weeks, b.build(days))
	}

	return &models.Program{
		ID:         start.Format("2006-01-02T15:04:05.000Z07:00"),
		CreatedAt:  start,
		Settings:   settings,
		Weeks:      weeks,
		TotalWeeks: totalWeeks,
	}
}

type weekBuilder struct {
	rules      Rules
	settings   models.Settings
	week       int
	totalWeeks int
	phase      models.Phase
}

func (b *weekBuilder) vma() float64 { return b.settings.VMA }

func (b *weekBuilder) isTaper() bool    { return b.phase == models.PhaseTaper }
func (b *weekBuilder) isRecovery() bool { return b.phase == models.PhaseRecovery }
func (b *weekBuilder) isBuildUp() bool  { return b.phase == models.PhaseBuildUp }

func (b *weekBuilder) build(trainingDays []string) models.Week {
	training := make(map[string]bool, len(trainingDays))
	for _, d := range trainingDays {
		training[d] = true
	}

	sessions := make([]models.Session, 0, len(models.Weekdays))
	total := 0
	for _, day := range models.Weekdays {
		var s models.Session
		if training[day] {
			s = b.session(day)
		} else {
			s = b.rest(day)
		}
		if s.Distance != nil {
			total += *s.Distance
		}
		sessions = append(sessions, s)
	}

	return models.Week{
		WeekNumber:    b.week,
		Title:         weekTitle(b.phase, b.week),
		Phase:         b.phase,
		Sessions:      sessions,
		TotalKm:       total,
		SessionsCount: b.settings.SessionsPerWeek,
	}
}

func (b *weekBuilder) session(day string) models.Session {
	var (
		typ    models.SessionType
		title  string
		blocks []models.WorkoutBlock
	)

	switch slotOf(day, b.settings.SessionsPerWeek) {
	case slotLongRun:
		typ, title, blocks = models.SessionLongRun, "The Long Run", b.longRun()
		if b.isRecovery() {
			title = "Easy Long Run"
		} else if b.isTaper() {
			title = "Freshening Long Run"
		}
	case slotQuality:
		switch {
		case b.isTaper():
			typ, title, blocks = models.SessionTempo, "Race Pace Reminder", b.paceReminder()
		case b.hillWeek():
			typ, title, blocks = models.SessionHill, "Hill Repeats", b.hills()
		default:
			typ, title, blocks = models.SessionInterval, "VMA & Intensity", b.interval()
		}
	case slotTempo:
		typ, title, blocks = models.SessionTempo, "Race-Specific Pace", b.taper(b.tempo())
	case slotEndurance:
		typ, title, blocks = models.SessionEndurance, "Easy Run", b.taper(b.endurance())
	default:
		typ, title, blocks = models.SessionEndurance, "Recovery Run", b.taper(b.recoveryRun())
	}

	duration, distance := b.rules.Estimate(blocks, b.vma(), typ)
	return models.Session{
		ID:        sessionID(b.week, day, typ),
		Day:       day,
		Type:      typ,
		Title:     title,
		Structure: blocks,
		Duration:  &duration,
		Distance:  &distance,
	}
}

func (b *weekBuilder) rest(day string) models.Session {
	return models.Session{
		ID:    sessionID(b.week, day, models.SessionRest),
		Day:   day,
		Type:  models.SessionRest,
		Title: "Rest",
		Structure: []models.WorkoutBlock{
			{Kind: models.BlockInfo, Details: "Complete rest."},
		},
	}
}

// hillWeek reports whether this week's quality session is run on hills.
func (b *weekBuilder) hillWeek() bool {
	if b.phase != models.PhaseProgression {
		return false
	}
	if b.settings.Elevation() <= b.rules.HillThreshold(b.settings.Distance) {
		return false
	}
	return (b.week-b.rules.BuildUpWeeks-1)%b.rules.HillEvery == 0
}

// Estimate returns the session duration (minutes) and a coarse distance (km).
// Every block without a duration, info notes included, counts
// DefaultBlockMinutes.
func (r Rules) Estimate(blocks []models.WorkoutBlock, vma float64, typ models.SessionType) (int, int) {
	total := 0
	for _, bl := range blocks {
		if bl.Duration != nil {
			total += *bl.Duration
		} else {
			total += r.DefaultBlockMinutes
		}
	}

	coef := r.EasyCoefficient
	if typ.IsHighIntensity() {
		coef = r.HardCoefficient
	}
	distance := int(math.Round(float64(total) / 60 * vma * coef))
	return total, distance
}

func sessionID(week int, day string, typ models.SessionType) string {
	return fmt.Sprintf("w%02d-%s-%s", week, strings.ToLower(day[:3]), typ)
}
