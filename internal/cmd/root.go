// Package cmd implements the hrkit command line: the interactive TUI
// (start, also the default) and non-interactive names, draw, teams, config
// and logs subcommands.
package cmd

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hrkit",
	Short: "Name lists, lucky draws and team building in the terminal",
	Long: `hrkit manages a list of names and runs two activities on it:
a lucky draw that picks winners one at a time, and a team builder
that shuffles everyone into groups of a chosen size.

Without a subcommand, hrkit opens the interactive TUI.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:         runStart,
}

// ExitCode is the process status for an error returned by ExecuteContext:
// 0 for nil, 2 for a rejected request such as a validation failure or an
// exhausted draw, and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.GetSeverity(err) <= errors.SeverityWarning:
		return 2
	default:
		return 1
	}
}

// ExecuteContext runs the root command with ctx, which commands use to stop
// draws, file watching and log following.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/hrkit/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	addStartFlags(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HRKIT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., HRKIT_DRAW_DURATION_MS for draw.duration_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig returns the validated configuration. It never falls back to
// defaults, so a broken config file is reported.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if used := viper.ConfigFileUsed(); used != "" {
			return nil, errors.Wrapf(err, "invalid config %s", used)
		}
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// newLogger opens the log file for one command run and tags it with a fresh
// session id. Logging failures never stop a command; they fall back to a
// discarding logger.
func newLogger(cfg *config.Config, command string) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLogger(logging.Options{
		Dir:   cfg.Logging.ResolveDir(),
		Level: cfg.Logging.Level,
		Rotation: cfg.Logging.Rotation(),
	})
	if err != nil {
		return logging.NopLogger()
	}
	return logger.WithSession(uuid.NewString()).With("command", command)
}

// newRand returns a seeded source; seed 0 seeds from the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
