package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/stride/internal/models"
)

func TestSettingsTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.toml")
	in := &models.SettingsTOML{
		Distance:        "half",
		Level:           "Intermediate",
		RaceName:        "Lisbon Half ",
		RaceDate:        "2026-10-11",
		SessionsPerWeek: 4,
		VMA:             15.5,
		Elevation:       320,
	}
	require.NoError(t, WriteSettingsTOML(path, in))

	st, err := ParseSettingsFromTOML(path)
	require.NoError(t, err)
	assert.Equal(t, in, st)

	s, err := SettingsFromTOML(st)
	require.NoError(t, err)
	assert.Equal(t, models.DistanceHalf, s.Distance)
	assert.Equal(t, models.LevelIntermediate, s.Level)
	assert.Equal(t, "Lisbon Half", s.RaceName)
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), s.RaceDate)
	require.NotNil(t, s.RaceInfo)
	assert.Equal(t, 320.0, s.Elevation())
}

func TestSettingsFromTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		st   models.SettingsTOML
	}{
		{"bad distance", models.SettingsTOML{Distance: "ultra", Level: "beginner", RaceDate: "2026-10-11"}},
		{"bad level", models.SettingsTOML{Distance: "10k", Level: "elite", RaceDate: "2026-10-11"}},
		{"bad date", models.SettingsTOML{Distance: "10k", Level: "beginner", RaceDate: "11/10/2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SettingsFromTOML(&tt.st)
			assert.Error(t, err)
		})
	}
}

func TestParseSettingsFromTOMLMissingFile(t *testing.T) {
	_, err := ParseSettingsFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = LoadLocation("Nowhere/Special")
	assert.Error(t, err)
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tue 03 Mar 2026", FormatDay(d, time.UTC))
}
