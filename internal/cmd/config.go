package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify hrkit configuration",
	Long: `View or modify hrkit configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  hrkit config set draw.duration_ms 3000
  hrkit config set draw.removal all
  hrkit config set teams.export_dir ~/Desktop

Valid keys:
  draw.tick_interval_ms     - Milliseconds between provisional names (10-1000)
  draw.duration_ms          - Milliseconds a draw spins (0-60000)
  draw.allow_repeat         - Keep winners in the pool (true/false)
  draw.removal              - Entries removed per win. Options: first, all
  teams.default_size        - Initial team size (min 2)
  teams.export_dir          - Directory for team CSV exports
  ingest.max_file_size_kb   - Largest accepted name file
  ingest.watch_debounce_ms  - Debounce for --watch reloads
  logging.enabled           - Write the log file (true/false)
  logging.level             - Options: debug, info, warn, error
  logging.max_size_mb       - Log size before rotation
  logging.max_backups       - Rotated log files to keep
  logging.dir               - Log directory (default: <config dir>/logs)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/hrkit/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeyTypes lists the keys accepted by config set.
var configKeyTypes = map[string]string{
	"draw.tick_interval_ms":    "int",
	"draw.duration_ms":         "int",
	"draw.allow_repeat":        "bool",
	"draw.removal":             "string",
	"teams.default_size":       "int",
	"teams.export_dir":         "string",
	"ingest.max_file_size_kb":  "int",
	"ingest.watch_debounce_ms": "int",
	"logging.enabled":          "bool",
	"logging.level":            "string",
	"logging.max_size_mb":      "int",
	"logging.max_backups":      "int",
	"logging.dir":              "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintf(out, "# Config file: (none - using defaults)\n")
	}
	return writeConfigYAML(out, cfg)
}

func writeConfigYAML(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}

// parseConfigValue converts a command line value to the key's type.
func parseConfigValue(key, value string) (any, error) {
	keyType, ok := configKeyTypes[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'hrkit config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	typed, err := parseConfigValue(key, value)
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typed)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typed)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// defaultConfigContent is written by config init.
const defaultConfigContent = `# hrkit configuration

# Lucky draw
draw:
  # Milliseconds between provisional names while spinning
  tick_interval_ms: 50
  # Milliseconds a draw spins before the winner is committed
  duration_ms: 2000
  # Keep winners in the pool so they can win again
  allow_repeat: false
  # Entries removed from the pool per win
  # Options: first (one entry), all (every entry equal to the winner)
  removal: first

# Team builder
teams:
  # Initial team size (min 2)
  default_size: 3
  # Directory for team_results_<ms>.csv exports (~ is expanded)
  export_dir: .

# Name file loading
ingest:
  # Glob patterns matched against the file name
  accept:
    - "*.csv"
    - "*.txt"
  # Largest accepted file in kilobytes
  max_file_size_kb: 1024
  # Debounce for --watch reloads in milliseconds
  watch_debounce_ms: 200

# Debug logging
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Log size in megabytes before rotation
  max_size_mb: 10
  # Rotated log files to keep
  max_backups: 3
  # Log directory (empty means <config dir>/logs)
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	return initConfigFile(cmd.OutOrStdout(), config.ConfigFile(), force)
}

func initConfigFile(out io.Writer, configFile string, force bool) error {
	if _, err := os.Stat(configFile); err == nil && !force {
		return fmt.Errorf("config file already exists at %s\nUse 'hrkit config set' to modify values or --force to overwrite", configFile)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize hrkit's behavior.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: HRKIT_* (e.g., "+envName("draw.duration_ms")+")")
	return nil
}

func envName(key string) string {
	return "HRKIT_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
