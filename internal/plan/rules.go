package plan

import (
	"math"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

// Rules holds the heuristic constants of the generator. Zero fields fall back
// to DefaultRules, so a partially filled config section is enough.
type Rules struct {
	MinWeeks      int     `toml:"min_weeks"`
	FallbackVMA   float64 `toml:"fallback_vma"`
	TaperWeeks    int     `toml:"taper_weeks"`
	RecoveryEvery int     `toml:"recovery_every"`
	BuildUpWeeks  int     `toml:"build_up_weeks"`

	// Hill sessions replace the quality session every HillEvery weeks once the
	// build-up is over, for races climbing more than the distance threshold.
	HillEvery             int     `toml:"hill_every"`
	HillElevationTenK     float64 `toml:"hill_elevation_10km"`
	HillElevationHalf     float64 `toml:"hill_elevation_half"`
	HillElevationMarathon float64 `toml:"hill_elevation_marathon"`

	DefaultBlockMinutes int     `toml:"default_block_minutes"`
	TaperFactor         float64 `toml:"taper_factor"`
	EasyCoefficient     float64 `toml:"easy_coefficient"`
	HardCoefficient     float64 `toml:"hard_coefficient"`
}

func DefaultRules() Rules {
	return Rules{
		MinWeeks:              4,
		FallbackVMA:           14,
		TaperWeeks:            2,
		RecoveryEvery:         4,
		BuildUpWeeks:          2,
		HillEvery:             2,
		HillElevationTenK:     150,
		HillElevationHalf:     300,
		HillElevationMarathon: 500,
		DefaultBlockMinutes:   20,
		TaperFactor:           0.5,
		EasyCoefficient:       0.7,
		HardCoefficient:       0.8,
	}
}

// WithDefaults returns r with every unset field taken from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.MinWeeks <= 0 {
		r.MinWeeks = d.MinWeeks
	}
	if r.FallbackVMA <= 0 {
		r.FallbackVMA = d.FallbackVMA
	}
	if r.TaperWeeks <= 0 {
		r.TaperWeeks = d.TaperWeeks
	}
	if r.RecoveryEvery <= 0 {
		r.RecoveryEvery = d.RecoveryEvery
	}
	if r.BuildUpWeeks <= 0 {
		r.BuildUpWeeks = d.BuildUpWeeks
	}
	if r.HillEvery <= 0 {
		r.HillEvery = d.HillEvery
	}
	if r.HillElevationTenK <= 0 {
		r.HillElevationTenK = d.HillElevationTenK
	}
	if r.HillElevationHalf <= 0 {
		r.HillElevationHalf = d.HillElevationHalf
	}
	if r.HillElevationMarathon <= 0 {
		r.HillElevationMarathon = d.HillElevationMarathon
	}
	if r.DefaultBlockMinutes <= 0 {
		r.DefaultBlockMinutes = d.DefaultBlockMinutes
	}
	if r.TaperFactor <= 0 || r.TaperFactor >= 1 {
		r.TaperFactor = d.TaperFactor
	}
	if r.EasyCoefficient <= 0 {
		r.EasyCoefficient = d.EasyCoefficient
	}
	if r.HardCoefficient <= 0 {
		r.HardCoefficient = d.HardCoefficient
	}
	return r
}

// TotalWeeks counts the whole weeks between now and the race, never fewer
// than MinWeeks.
func (r Rules) TotalWeeks(now, raceDate time.Time) int {
	totalDays := math.Ceil(raceDate.Sub(now).Hours() / 24)
	weeks := int(math.Floor(totalDays / 7))
	if weeks < r.MinWeeks {
		return r.MinWeeks
	}
	return weeks
}

// HillThreshold is the race elevation gain (m) above which hill sessions are scheduled.
func (r Rules) HillThreshold(d models.Distance) float64 {
	switch d {
	case models.DistanceMarathon:
		return r.HillElevationMarathon
	case models.DistanceHalf:
		return r.HillElevationHalf
	default:
		return r.HillElevationTenK
	}
}
