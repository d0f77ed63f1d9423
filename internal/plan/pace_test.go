package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaceAt(t *testing.T) {
	tests := []struct {
		name    string
		vma     float64
		percent float64
		want    string
	}{
		{"full vma 15", 15, 100, "4'00\""},
		{"half of 12 is 6 km/h", 12, 50, "10'00\""},
		{"zero vma", 0, 100, PaceUnavailable},
		{"negative vma", -3, 100, PaceUnavailable},
		{"zero percent", 15, 0, PaceUnavailable},
		{"seconds padded", 16, 95, "3'57\""},
		{"easy pace", 12, 65, "7'42\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaceAt(tt.vma, tt.percent))
		})
	}
}

func TestPaceAtNeverPrintsSixtySeconds(t *testing.T) {
	for vma := 8.0; vma <= 22; vma += 0.1 {
		for percent := 60.0; percent <= 105; percent++ {
			assert.NotContains(t, PaceAt(vma, percent), "'60\"")
		}
	}
}

func TestPaceRange(t *testing.T) {
	// Higher percent is faster, so it comes first.
	assert.Equal(t, "4'00\" - 5'00\"/km", PaceRange(15, 80, 100))
	assert.Equal(t, "N/A - N/A/km", PaceRange(0, 65, 70))
}

func TestSpeedAt(t *testing.T) {
	assert.InDelta(t, 12.75, SpeedAt(15, 85), 1e-9)
	assert.Zero(t, SpeedAt(0, 85))
}
