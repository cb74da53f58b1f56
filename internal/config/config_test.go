package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default draw config
	if cfg.Draw.TickIntervalMs != 50 {
		t.Errorf("Draw.TickIntervalMs = %d, want 50", cfg.Draw.TickIntervalMs)
	}
	if cfg.Draw.DurationMs != 2000 {
		t.Errorf("Draw.DurationMs = %d, want 2000", cfg.Draw.DurationMs)
	}
	if cfg.Draw.AllowRepeat {
		t.Error("Draw.AllowRepeat should be false by default")
	}
	if cfg.Draw.Removal != RemovalFirst {
		t.Errorf("Draw.Removal = %q, want %q", cfg.Draw.Removal, RemovalFirst)
	}

	// Verify default teams config
	if cfg.Teams.DefaultSize != 3 {
		t.Errorf("Teams.DefaultSize = %d, want 3", cfg.Teams.DefaultSize)
	}
	if cfg.Teams.ExportDir != "." {
		t.Errorf("Teams.ExportDir = %q, want %q", cfg.Teams.ExportDir, ".")
	}

	// Verify default ingest config
	if diff := cmp.Diff([]string{"*.csv", "*.txt"}, cfg.Ingest.Accept); diff != "" {
		t.Errorf("Ingest.Accept mismatch (-want +got):\n%s", diff)
	}
	if cfg.Ingest.MaxFileSizeKB != 1024 {
		t.Errorf("Ingest.MaxFileSizeKB = %d, want 1024", cfg.Ingest.MaxFileSizeKB)
	}
	if cfg.Ingest.WatchDebounceMs != 200 {
		t.Errorf("Ingest.WatchDebounceMs = %d, want 200", cfg.Ingest.WatchDebounceMs)
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxSizeMB != 10 || cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging rotation = %d/%d, want 10/3", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"tick interval", cfg.Draw.TickInterval(), 50 * time.Millisecond},
		{"draw duration", cfg.Draw.Duration(), 2 * time.Second},
		{"watch debounce", cfg.Ingest.WatchDebounce(), 200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := cfg.Ingest.MaxFileSize(); got != 1024*1024 {
		t.Errorf("MaxFileSize() = %d, want %d", got, 1024*1024)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/hrkit"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "hrkit")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/hrkit/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestLoggingConfig_ResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	cfg := LoggingConfig{}
	if got, want := cfg.ResolveDir(), "/custom/config/hrkit/logs"; got != want {
		t.Errorf("ResolveDir() = %q, want %q", got, want)
	}

	cfg.Dir = "/var/log/hrkit"
	if got := cfg.ResolveDir(); got != "/var/log/hrkit" {
		t.Errorf("ResolveDir() = %q, want explicit dir", got)
	}
}

func TestLoggingConfig_Rotation(t *testing.T) {
	if diff := cmp.Diff(logging.DefaultRotationConfig(), Default().Logging.Rotation()); diff != "" {
		t.Errorf("default Rotation() mismatch (-want +got):\n%s", diff)
	}

	cfg := LoggingConfig{MaxSizeMB: 1, MaxBackups: 0}
	if diff := cmp.Diff(logging.RotationConfig{MaxSizeMB: 1}, cfg.Rotation()); diff != "" {
		t.Errorf("Rotation() mismatch (-want +got):\n%s", diff)
	}
}

func TestTeamsConfig_ResolveExportDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		dir  string
		want string
	}{
		{".", "."},
		{"/tmp/out", "/tmp/out"},
		{"~", home},
		{"~/exports", filepath.Join(home, "exports")},
		{"~other", "~other"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			cfg := TeamsConfig{ExportDir: tt.dir}
			if got := cfg.ResolveExportDir(); got != tt.want {
				t.Errorf("ResolveExportDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_OverridesAndValidation(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("draw.duration_ms", 500)
	viper.Set("teams.default_size", 4)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Draw.DurationMs != 500 {
		t.Errorf("Draw.DurationMs = %d, want 500", cfg.Draw.DurationMs)
	}
	if cfg.Teams.DefaultSize != 4 {
		t.Errorf("Teams.DefaultSize = %d, want 4", cfg.Teams.DefaultSize)
	}

	viper.Set("draw.removal", "some")
	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject an unknown removal policy")
	} else if _, ok := err.(ValidationErrors); !ok {
		t.Errorf("Load() error type = %T, want ValidationErrors", err)
	}

	// Get falls back to defaults on invalid config
	if got := Get(); got.Draw.Removal != RemovalFirst {
		t.Errorf("Get().Draw.Removal = %q, want default", got.Draw.Removal)
	}
}

func TestValidRemovalPolicies(t *testing.T) {
	if diff := cmp.Diff([]string{"first", "all"}, ValidRemovalPolicies()); diff != "" {
		t.Errorf("ValidRemovalPolicies() mismatch (-want +got):\n%s", diff)
	}
}
