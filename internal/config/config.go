package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/spf13/viper"
)

// Config represents the complete hrkit configuration
type Config struct {
	Draw    DrawConfig    `mapstructure:"draw" yaml:"draw"`
	Teams   TeamsConfig   `mapstructure:"teams" yaml:"teams"`
	Ingest  IngestConfig  `mapstructure:"ingest" yaml:"ingest"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DrawConfig controls the lucky draw animation and removal behavior
type DrawConfig struct {
	// TickIntervalMs is how often a provisional name is shown while spinning (default: 50)
	TickIntervalMs int `mapstructure:"tick_interval_ms" yaml:"tick_interval_ms" validate:"min=10,max=1000"`
	// DurationMs is how long a draw spins before committing a winner (default: 2000)
	DurationMs int `mapstructure:"duration_ms" yaml:"duration_ms" validate:"min=0,max=60000"`
	// AllowRepeat keeps winners in the pool (default: false)
	AllowRepeat bool `mapstructure:"allow_repeat" yaml:"allow_repeat"`
	// Removal decides which entries leave the pool after a win.
	// Options: "first" removes one entry, "all" removes every entry equal to the winner
	Removal string `mapstructure:"removal" yaml:"removal" validate:"oneof=first all"`
}

// TeamsConfig controls team generation and export
type TeamsConfig struct {
	// DefaultSize is the initial team size in the TUI (default: 3, min: 2)
	DefaultSize int `mapstructure:"default_size" yaml:"default_size" validate:"min=2"`
	// ExportDir is where team CSV files are written (default: ".")
	// Supports ~ for home directory expansion.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir" validate:"required"`
}

// IngestConfig controls how name files are loaded
type IngestConfig struct {
	// Accept holds glob patterns matched against the file's base name (default: ["*.csv", "*.txt"])
	Accept []string `mapstructure:"accept" yaml:"accept" validate:"min=1,dive,required"`
	// MaxFileSizeKB rejects larger uploads (default: 1024)
	MaxFileSizeKB int `mapstructure:"max_file_size_kb" yaml:"max_file_size_kb" validate:"min=1"`
	// WatchDebounceMs coalesces bursts of file events in watch mode (default: 200)
	WatchDebounceMs int `mapstructure:"watch_debounce_ms" yaml:"watch_debounce_ms" validate:"min=0,max=10000"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb" validate:"min=1"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups" validate:"min=0"`
	// Dir overrides the log directory. Empty means <config dir>/logs.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	rotation := logging.DefaultRotationConfig()
	return &Config{
		Draw: DrawConfig{
			TickIntervalMs: 50,
			DurationMs:     2000,
			AllowRepeat:    false,
			Removal:        RemovalFirst,
		},
		Teams: TeamsConfig{
			DefaultSize: 3,
			ExportDir:   ".",
		},
		Ingest: IngestConfig{
			Accept:          []string{"*.csv", "*.txt"},
			MaxFileSizeKB:   1024,
			WatchDebounceMs: 200,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			Dir:        "",
		},
	}
}

// Removal policies
const (
	RemovalFirst = "first"
	RemovalAll   = "all"
)

// TickInterval returns the draw tick interval as a time.Duration
func (c *DrawConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Duration returns the total draw duration as a time.Duration
func (c *DrawConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// MaxFileSize returns the upload limit in bytes
func (c *IngestConfig) MaxFileSize() int64 {
	return int64(c.MaxFileSizeKB) * 1024
}

// WatchDebounce returns the watch debounce as a time.Duration
func (c *IngestConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// ResolveExportDir expands a leading ~ in ExportDir.
func (c *TeamsConfig) ResolveExportDir() string {
	return expandHome(c.ExportDir)
}

// ResolveDir returns the log directory, defaulting to <config dir>/logs.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}
	return expandHome(c.Dir)
}

// Rotation returns the log file rotation settings.
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{MaxSizeMB: c.MaxSizeMB, MaxBackups: c.MaxBackups}
}

func expandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Draw defaults
	viper.SetDefault("draw.tick_interval_ms", defaults.Draw.TickIntervalMs)
	viper.SetDefault("draw.duration_ms", defaults.Draw.DurationMs)
	viper.SetDefault("draw.allow_repeat", defaults.Draw.AllowRepeat)
	viper.SetDefault("draw.removal", defaults.Draw.Removal)

	// Teams defaults
	viper.SetDefault("teams.default_size", defaults.Teams.DefaultSize)
	viper.SetDefault("teams.export_dir", defaults.Teams.ExportDir)

	// Ingest defaults
	viper.SetDefault("ingest.accept", defaults.Ingest.Accept)
	viper.SetDefault("ingest.max_file_size_kb", defaults.Ingest.MaxFileSizeKB)
	viper.SetDefault("ingest.watch_debounce_ms", defaults.Ingest.WatchDebounceMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hrkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hrkit"
	}
	return filepath.Join(home, ".config", "hrkit")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidRemovalPolicies returns the list of valid draw.removal values
func ValidRemovalPolicies() []string {
	return []string{RemovalFirst, RemovalAll}
}
