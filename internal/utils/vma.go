package utils

import (
	"fmt"
	"math"
	"time"
)

// VMAFromHalfCooper estimates VMA (km/h) from the distance in meters covered
// in a 6 minute all-out run.
func VMAFromHalfCooper(meters float64) float64 {
	if meters <= 0 {
		return 0
	}
	return round2(meters / 100)
}

// VMAFromVameval estimates VMA from the last completed stage of a VAMEVAL
// test (8 km/h start, +0.5 km/h per stage). Stages start at 1.
func VMAFromVameval(stage int) float64 {
	if stage <= 0 {
		return 0
	}
	return round2(8 + 0.5*float64(stage))
}

// VMAFromRaceTime estimates VMA from a recent 5 or 10 km race. A 5 km is run
// at about 95% of VMA, a 10 km at about 92%.
func VMAFromRaceTime(distanceKm int, d time.Duration) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("race time must be positive")
	}

	var share float64
	switch distanceKm {
	case 5:
		share = 0.95
	case 10:
		share = 0.92
	default:
		return 0, fmt.Errorf("unsupported race distance %dkm (expected 5 or 10)", distanceKm)
	}

	speed := float64(distanceKm) / d.Hours()
	return round2(speed / share), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
