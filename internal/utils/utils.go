package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/stride/internal/models"
)

func ParseSettingsFromTOML(path string) (*models.SettingsTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var st models.SettingsTOML
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, err
	}

	return &st, nil
}

// SettingsFromTOML validates the file shape and converts it into generator
// settings. The course file, if any, is resolved by the caller.
func SettingsFromTOML(st *models.SettingsTOML) (models.Settings, error) {
	distance, err := models.ParseDistance(st.Distance)
	if err != nil {
		return models.Settings{}, err
	}
	level, err := models.ParseLevel(st.Level)
	if err != nil {
		return models.Settings{}, err
	}
	raceDate, err := ParseDate(st.RaceDate)
	if err != nil {
		return models.Settings{}, fmt.Errorf("invalid race_date: %w", err)
	}

	s := models.Settings{
		Distance:        distance,
		Level:           level,
		RaceName:        strings.TrimSpace(st.RaceName),
		RaceDate:        raceDate,
		SessionsPerWeek: st.SessionsPerWeek,
		TimeObjective:   st.TimeObjective,
		VMA:             st.VMA,
	}
	if st.Elevation > 0 {
		s.RaceInfo = &models.RaceInfo{Name: s.RaceName, Date: raceDate, Elevation: st.Elevation}
	}
	return s, nil
}
