package plan

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/stride/internal/models"
)

func minutes(n int) *int { return &n }

func effort(low, high float64) *models.Effort {
	return &models.Effort{Low: low, High: high}
}

// byLevel picks the value matching the athlete level.
func byLevel[T any](level models.Level, beginner, intermediate, advanced T) T {
	switch level {
	case models.LevelAdvanced:
		return advanced
	case models.LevelIntermediate:
		return intermediate
	default:
		return beginner
	}
}

// racePercent is the share of VMA held at race pace.
func racePercent(d models.Distance) float64 {
	switch d {
	case models.DistanceMarathon:
		return 80
	case models.DistanceHalf:
		return 85
	default:
		return 90
	}
}

func (b *weekBuilder) easyPace() string { return PaceRange(b.vma(), 65, 70) }

// progression grows a rep count by one every four weeks, at most by two.
func (b *weekBuilder) progression() int {
	return min(2, (b.week-1)/4)
}

func (b *weekBuilder) longRunMinutes() int {
	base := byLevel(b.settings.Level, 50, 60, 70)
	increment := byLevel(b.settings.Level, 5, 5, 6)
	if b.isRecovery() {
		base -= 15
		increment = 0
	}

	maxDuration := 90
	switch b.settings.Distance {
	case models.DistanceMarathon:
		maxDuration = 180
	case models.DistanceHalf:
		maxDuration = 130
	}
	return min(base+b.week*increment, maxDuration)
}

func (b *weekBuilder) longRun() []models.WorkoutBlock {
	duration := b.longRunMinutes()

	if b.isTaper() {
		short := 30
		if b.week < b.totalWeeks {
			short = max(30, int(math.Round(float64(duration)*b.rules.TaperFactor)))
		}
		return []models.WorkoutBlock{{
			Kind:     models.BlockMainSet,
			Duration: minutes(short),
			Details:  fmt.Sprintf("%d' easy jog (%s). Saving energy for race day.", short, b.easyPace()),
			Effort:   effort(65, 70),
		}}
	}

	// Race-pace block every other progression week, away from the taper.
	if b.phase == models.PhaseProgression && b.week%2 == 0 && b.week < b.totalWeeks-1 {
		active := min(40, b.week*3)
		if duration-20-active < 10 {
			active = duration - 30
		}
		race := racePercent(b.settings.Distance)
		return []models.WorkoutBlock{
			{
				Kind:     models.BlockWarmup,
				Duration: minutes(20),
				Details:  fmt.Sprintf("20' easy endurance (%s).", b.easyPace()),
				Effort:   effort(65, 70),
			},
			{
				Kind:     models.BlockMainSet,
				Duration: minutes(active),
				Details:  fmt.Sprintf("%d' at race pace (%s/km) included.", active, PaceAt(b.vma(), race)),
				Effort:   effort(race, race),
			},
			{
				Kind:     models.BlockCooldown,
				Duration: minutes(duration - 20 - active),
				Details:  "Finish at an easy endurance effort.",
				Effort:   effort(65, 70),
			},
		}
	}

	return []models.WorkoutBlock{{
		Kind:     models.BlockMainSet,
		Duration: minutes(duration),
		Details:  fmt.Sprintf("Classic long run at a conversational effort (%s).", b.easyPace()),
		Effort:   effort(65, 70),
	}}
}

func (b *weekBuilder) interval() []models.WorkoutBlock {
	cooldown := models.WorkoutBlock{
		Kind:     models.BlockCooldown,
		Duration: minutes(10),
		Details:  "10' very easy cool-down jog.",
		Effort:   effort(60, 65),
	}

	if b.isRecovery() {
		return []models.WorkoutBlock{
			{Kind: models.BlockWarmup, Duration: minutes(15), Details: "15' progressive jog + running drills.", Effort: effort(60, 70)},
			{Kind: models.BlockMainSet, Details: fmt.Sprintf("10x 30\"/30\" at 95%% VMA (%s/km). Stay smooth.", PaceAt(b.vma(), 95)), Effort: effort(95, 95)},
			cooldown,
		}
	}

	warmup := models.WorkoutBlock{Kind: models.BlockWarmup, Duration: minutes(20), Details: "20' progressive jog + running drills.", Effort: effort(60, 70)}
	note := models.WorkoutBlock{Kind: models.BlockInfo, Details: "Active recovery: keep jogging between efforts."}

	// Build-up weeks run fewer reps and cap the top intensity.
	cut, top := 0, 105.0
	if b.isBuildUp() {
		cut, top = 2, 100
	}
	extra := b.progression()

	var core models.WorkoutBlock
	switch b.week % 4 {
	case 1:
		if b.settings.Distance == models.DistanceTenK {
			reps := byLevel(b.settings.Level, 6, 8, 10) - cut + extra
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("2x (%dx 30\"/30\") at %.0f%% VMA (%s/km). 2' recovery between sets.", reps, top, PaceAt(b.vma(), top)),
				Effort:  effort(top, top),
			}
		} else {
			reps := byLevel(b.settings.Level, 6, 8, 10) - cut + extra
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("%dx 45\" fast uphill. Easy jog back down.", reps),
				Effort:  effort(95, 100),
			}
		}
	case 2:
		if b.settings.Distance == models.DistanceTenK {
			reps := byLevel(b.settings.Level, 6, 8, 10) - cut + extra
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("%dx 400m at %s/km. 1'15 recovery.", reps, PaceAt(b.vma(), 95)),
				Effort:  effort(95, 95),
			}
		} else {
			reps := byLevel(b.settings.Level, 3, 4, 5) - cut/2 + extra
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("%dx 1000m at 10 km pace (%s/km). 2' recovery.", reps, PaceAt(b.vma(), 90)),
				Effort:  effort(90, 90),
			}
		}
	default:
		if b.settings.Distance == models.DistanceTenK {
			ladder := "200-400-600-400-200m"
			if b.isBuildUp() {
				ladder = "200-400-400-200m"
			}
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("Pyramid %s at %s/km. Recovery = effort time.", ladder, PaceAt(b.vma(), top-5)),
				Effort:  effort(top-5, top-5),
			}
		} else {
			core = models.WorkoutBlock{
				Kind:    models.BlockMainSet,
				Details: fmt.Sprintf("Fartlek 3'-2'-1'-3'-2'-1' fast (%s/km). 1' jog recovery.", PaceAt(b.vma(), 95)),
				Effort:  effort(90, 95),
			}
		}
	}

	return []models.WorkoutBlock{warmup, core, note, cooldown}
}

func (b *weekBuilder) tempoBand() (float64, float64) {
	if b.settings.Distance == models.DistanceMarathon {
		return 75, 80
	}
	return 80, 85
}

func (b *weekBuilder) tempo() []models.WorkoutBlock {
	low, high := b.tempoBand()
	pace := PaceRange(b.vma(), low, high)

	if b.isRecovery() {
		return []models.WorkoutBlock{{
			Kind:     models.BlockMainSet,
			Duration: minutes(40),
			Details:  fmt.Sprintf("Easy endurance run only (%s).", b.easyPace()),
			Effort:   effort(65, 70),
		}}
	}

	warmup := models.WorkoutBlock{Kind: models.BlockWarmup, Duration: minutes(15), Details: "15' jog + 3 strides.", Effort: effort(60, 70)}
	cooldown := models.WorkoutBlock{Kind: models.BlockCooldown, Duration: minutes(10), Details: "10' easy jog.", Effort: effort(60, 65)}

	var core models.WorkoutBlock
	if b.week%2 != 0 {
		bloc := min(20, 10+b.week/2)
		core = models.WorkoutBlock{
			Kind:     models.BlockMainSet,
			Duration: minutes(2*bloc + 2),
			Details:  fmt.Sprintf("2x %d' at target race pace (%s). 2' recovery.", bloc, pace),
			Effort:   effort(low, high),
		}
	} else {
		d := min(40, 20+b.week)
		core = models.WorkoutBlock{
			Kind:     models.BlockMainSet,
			Duration: minutes(d),
			Details:  fmt.Sprintf("%d' at target race pace (%s) in one go.", d, pace),
			Effort:   effort(low, high),
		}
	}
	return []models.WorkoutBlock{warmup, core, cooldown}
}

// paceReminder replaces the quality session during the taper.
func (b *weekBuilder) paceReminder() []models.WorkoutBlock {
	race := racePercent(b.settings.Distance)
	oneKm := 1.0
	kmMinutes := int(math.Ceil(60 / SpeedAt(b.vma(), race)))
	return []models.WorkoutBlock{
		{Kind: models.BlockWarmup, Duration: minutes(20), Details: fmt.Sprintf("20' easy jog (%s).", b.easyPace()), Effort: effort(65, 70)},
		{Kind: models.BlockMainSet, Duration: minutes(kmMinutes), Distance: &oneKm, Details: fmt.Sprintf("1 km at race pace (%s/km).", PaceAt(b.vma(), race)), Effort: effort(race, race)},
		{Kind: models.BlockCooldown, Duration: minutes(10), Details: "10' easy jog.", Effort: effort(60, 65)},
	}
}

func (b *weekBuilder) hills() []models.WorkoutBlock {
	reps := byLevel(b.settings.Level, 6, 8, 10) + b.progression()
	seconds := byLevel(b.settings.Level, 45, 60, 75)
	// Each effort is followed by a jog down lasting about twice as long.
	core := int(math.Ceil(float64(reps*seconds*3) / 60))

	return []models.WorkoutBlock{
		{Kind: models.BlockWarmup, Duration: minutes(20), Details: "20' easy jog to the foot of the hill.", Effort: effort(60, 70)},
		{
			Kind:     models.BlockMainSet,
			Duration: minutes(core),
			Details:  fmt.Sprintf("%dx %d\" hard uphill at 5 km effort. Jog back down to recover.", reps, seconds),
			Effort:   effort(95, 100),
		},
		{Kind: models.BlockCooldown, Duration: minutes(15), Details: "15' easy jog on the flat.", Effort: effort(60, 65)},
	}
}

func (b *weekBuilder) endurance() []models.WorkoutBlock {
	d := byLevel(b.settings.Level, 40, 45, 50) + min(10, b.week/2)
	if b.isRecovery() {
		d = byLevel(b.settings.Level, 35, 40, 45)
	}
	return []models.WorkoutBlock{{
		Kind:     models.BlockMainSet,
		Duration: minutes(d),
		Details:  fmt.Sprintf("%d' easy endurance run (%s).", d, b.easyPace()),
		Effort:   effort(65, 70),
	}}
}

func (b *weekBuilder) recoveryRun() []models.WorkoutBlock {
	d := byLevel(b.settings.Level, 35, 40, 45)
	if b.isRecovery() {
		d -= 5
	}
	return []models.WorkoutBlock{{
		Kind:     models.BlockMainSet,
		Duration: minutes(d),
		Details:  fmt.Sprintf("Very easy recovery jog (%s).", PaceRange(b.vma(), 60, 65)),
		Effort:   effort(60, 65),
	}}
}

// taper shrinks a session to a single easy maintenance block during taper
// weeks and returns blocks unchanged otherwise.
func (b *weekBuilder) taper(blocks []models.WorkoutBlock) []models.WorkoutBlock {
	if !b.isTaper() {
		return blocks
	}
	nominal, _ := b.rules.Estimate(blocks, b.vma(), models.SessionEndurance)
	d := max(15, int(math.Round(float64(nominal)*b.rules.TaperFactor)))
	return []models.WorkoutBlock{{
		Kind:     models.BlockMainSet,
		Duration: minutes(d),
		Details:  fmt.Sprintf("%d' easy maintenance run (%s) with 3x 1' relaxed strides.", d, b.easyPace()),
		Effort:   effort(65, 70),
	}}
}
