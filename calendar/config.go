// ABOUTME: Local configuration for the calendar bridge
// ABOUTME: Stored as JSON next to the data directory; defaults on any failure
package calendar

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// ConfigFileName is where the calendar config lives.
	ConfigFileName = "calendar-config.json"

	// DefaultCalendarID targets the account's primary calendar.
	DefaultCalendarID = "primary"

	// DefaultDaysAhead is the event read window.
	DefaultDaysAhead = 30
)

// Config holds calendar bridge settings.
type Config struct {
	// CalendarID is the Google calendar to read and write.
	CalendarID string `json:"calendar_id,omitempty"`

	// DaysAhead is the default look-ahead window for event reads.
	DaysAhead int `json:"days_ahead,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CalendarID: DefaultCalendarID,
		DaysAhead:  DefaultDaysAhead,
	}
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, "dayboard")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// LoadConfig loads the config from disk, or returns defaults when the file
// is missing or unreadable.
func LoadConfig() *Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = DefaultCalendarID
	}
	if cfg.DaysAhead <= 0 {
		cfg.DaysAhead = DefaultDaysAhead
	}
	return &cfg
}

// SaveConfig writes the config to disk.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
