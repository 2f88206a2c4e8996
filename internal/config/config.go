package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// CalendarOverride defines overrides to apply when generating match calendars
type CalendarOverride struct {
	RRule         string   `yaml:"rrule" validate:"required"`
	BlackoutDates []string `yaml:"blackoutDates,omitempty" validate:"dive,datetime=2006-01-02"`
	MatchesPerDay *int     `yaml:"matchesPerDay,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL       string             `yaml:"databaseURL" validate:"required"`
	RedisAddr         string             `yaml:"redisAddr,omitempty"`
	CacheTTLSeconds   *int               `yaml:"cacheTTLSeconds,omitempty" validate:"omitempty,min=1"`
	DelegateID        string             `yaml:"delegateID,omitempty"`
	DefaultTolerance  *float64           `yaml:"defaultTolerance,omitempty" validate:"omitempty,min=0"`
	RecentTeamWindow  *int               `yaml:"recentTeamWindow,omitempty" validate:"omitempty,min=1"`
	CalendarOverrides []CalendarOverride `yaml:"calendarOverrides,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from designador_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a specific environment, looking
// for designador_config_<env>.yaml before falling back to the default file
func LoadWithEnv(env string) (*Config, error) {
	if env == "" {
		return Load()
	}

	envFileName := fmt.Sprintf("designador_config_%s.yaml", env)
	if _, err := os.Stat(envFileName); err == nil {
		return LoadFromPath(envFileName)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		homePath := filepath.Join(homeDir, envFileName)
		if _, err := os.Stat(homePath); err == nil {
			return LoadFromPath(homePath)
		}
	}

	return Load()
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each override
	for i, override := range cfg.CalendarOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in calendarOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for designador_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "designador_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
