package plan

import (
	"fmt"
	"math"
)

// PaceUnavailable is returned when no pace can be derived from the inputs.
const PaceUnavailable = "N/A"

// SpeedAt returns the running speed in km/h at percent of vma.
func SpeedAt(vma, percent float64) float64 {
	if vma <= 0 || percent <= 0 {
		return 0
	}
	return vma * percent / 100
}

// PaceAt formats the pace per km at percent of vma as M'SS".
func PaceAt(vma, percent float64) string {
	speed := SpeedAt(vma, percent)
	if speed <= 0 {
		return PaceUnavailable
	}

	pace := 60 / speed // min/km
	mins := int(math.Floor(pace))
	secs := int(math.Round((pace - float64(mins)) * 60))
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%d'%02d\"", mins, secs)
}

// PaceRange formats the band between low and high percent of vma, fastest first.
func PaceRange(vma, low, high float64) string {
	return fmt.Sprintf("%s - %s/km", PaceAt(vma, high), PaceAt(vma, low))
}
