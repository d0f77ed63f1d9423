package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVMAFromHalfCooper(t *testing.T) {
	assert.Equal(t, 15.0, VMAFromHalfCooper(1500))
	assert.Equal(t, 12.34, VMAFromHalfCooper(1234))
	assert.Zero(t, VMAFromHalfCooper(0))
}

func TestVMAFromVameval(t *testing.T) {
	assert.Equal(t, 0.0, VMAFromVameval(0))
	assert.Equal(t, 0.0, VMAFromVameval(-2))
	assert.Equal(t, 8.5, VMAFromVameval(1))
	assert.Equal(t, 16.5, VMAFromVameval(17))
}

func TestVMAFromRaceTime(t *testing.T) {
	tests := []struct {
		name     string
		km       int
		duration time.Duration
		want     float64
	}{
		{"5k in 20 minutes", 5, 20 * time.Minute, 15.79},
		{"10k in 50 minutes", 10, 50 * time.Minute, 13.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VMAFromRaceTime(tt.km, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := VMAFromRaceTime(21, time.Hour)
	assert.Error(t, err)
	_, err = VMAFromRaceTime(5, 0)
	assert.Error(t, err)
}
