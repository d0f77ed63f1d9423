package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/stride/internal/adapt"
	"github.com/misterclayt0n/stride/internal/plan"
)

const devConnectionString = "file:./stride.db?cache=shared&mode=rwc"

type Config struct {
	DB     DBConfig     `toml:"database"`
	Plan   plan.Rules   `toml:"plan"`
	Export ExportConfig `toml:"export"`
	Adapt  adapt.Rule   `toml:"adapt"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`        // Only used by remote libSQL databases.
}

type ExportConfig struct {
	Hour            int    `toml:"hour"`             // Local start hour of exported sessions.
	ReminderMinutes int    `toml:"reminder_minutes"` // 0 disables calendar alarms.
	OutputDir       string `toml:"output_dir"`
	TimeZone        string `toml:"time_zone"` // IANA name, empty for the system zone.
}

func Default() *Config {
	return &Config{
		Plan:   plan.DefaultRules(),
		Export: ExportConfig{Hour: 18, ReminderMinutes: 30, OutputDir: "."},
		Adapt:  adapt.DefaultRule(),
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stride"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, then applies the environment.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: [Config] failed to load .env: %v", err)
	}

	return LoadConfigFrom(path)
}

// LoadConfigFrom reads path, falling back to defaults when the file does not exist.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}
	if token := os.Getenv("TURSO_AUTH_TOKEN"); token != "" {
		cfg.DB.AuthToken = token
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	if cfg.DB.ConnectionString == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		cfg.DB.ConnectionString = "file:" + filepath.Join(dir, "stride.db")
	}

	cfg.Plan = cfg.Plan.WithDefaults()
	cfg.Adapt = cfg.Adapt.WithDefaults()
	if cfg.Export.Hour < 0 || cfg.Export.Hour > 23 {
		return nil, fmt.Errorf("export.hour must be between 0 and 23, got %d", cfg.Export.Hour)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
