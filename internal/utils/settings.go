package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/stride/internal/models"
)

func getLastSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "stride")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "last_settings.toml"), nil
}

// SaveLastSettings remembers the settings of the latest generated program so
// create-program can rebuild it without a file.
func SaveLastSettings(st *models.SettingsTOML) error {
	path, err := getLastSettingsPath()
	if err != nil {
		return err
	}
	return WriteSettingsTOML(path, st)
}

func LoadLastSettings() (*models.SettingsTOML, error) {
	path, err := getLastSettingsPath()
	if err != nil {
		return nil, err
	}
	return ParseSettingsFromTOML(path)
}

func LastSettingsExist() bool {
	path, err := getLastSettingsPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}

func WriteSettingsTOML(path string, st *models.SettingsTOML) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(st)
}
