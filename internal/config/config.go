package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	URL   string `mapstructure:"url"`   // e.g. "http://localhost:5000"
	Token string `mapstructure:"token"` // optional bearer credential
}

type CalendarConfig struct {
	WeekStart string `mapstructure:"week_start"` // "Sunday" or "Monday"
	DayStart  int    `mapstructure:"day_start"`  // first visible hour
	DayEnd    int    `mapstructure:"day_end"`    // last visible hour (exclusive)
	Timezone  string `mapstructure:"timezone"`   // e.g. "Asia/Kolkata" (optional)
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"` // native desktop notifications
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	Server   ServerConfig   `mapstructure:"server"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

func Default() Config {
	return Config{
		Theme: "default",
		Server: ServerConfig{
			URL: "http://localhost:5000",
		},
		Calendar: CalendarConfig{
			WeekStart: "Sunday",
			DayStart:  0,
			DayEnd:    24,
			Timezone:  "",
		},
		Notify: NotifyConfig{
			Enabled: true,
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "almanac")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.token", cfg.Server.Token)
	v.SetDefault("calendar.week_start", cfg.Calendar.WeekStart)
	v.SetDefault("calendar.day_start", cfg.Calendar.DayStart)
	v.SetDefault("calendar.day_end", cfg.Calendar.DayEnd)
	v.SetDefault("calendar.timezone", cfg.Calendar.Timezone)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// An unusable hour window falls back to the full day.
	if cfg.Calendar.DayStart < 0 || cfg.Calendar.DayEnd > 24 || cfg.Calendar.DayStart >= cfg.Calendar.DayEnd {
		cfg.Calendar.DayStart = 0
		cfg.Calendar.DayEnd = 24
	}
	return cfg, nil
}

// WeekStart maps the configured week-start name to a weekday. Anything
// unrecognized means Sunday.
func (c Config) WeekStart() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(c.Calendar.WeekStart), "monday") {
		return time.Monday
	}
	return time.Sunday
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Calendar.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
