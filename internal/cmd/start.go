package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive TUI",
	Long: `Open the interactive TUI with the Names, Draw and Teams tabs.

Use --file to start with names from a .csv or .txt file, and --watch to
reload that file whenever it changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	addStartFlags(startCmd)
	rootCmd.AddCommand(startCmd)
}

// addStartFlags registers the TUI flags; the root command carries them too
// because bare "hrkit" starts the TUI.
func addStartFlags(c *cobra.Command) {
	c.Flags().StringP("file", "f", "", "load names from this file")
	c.Flags().BoolP("watch", "w", false, "reload --file when it changes")
	c.Flags().Bool("allow-repeat", false, "keep winners in the pool (overrides draw.allow_repeat)")
	c.Flags().Int("team-size", 0, "initial team size (overrides teams.default_size)")
	c.Flags().Int64("seed", 0, "random seed for reproducible draws and teams (0 = random)")
}

func runStart(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the TUI needs a terminal; use 'hrkit names', 'hrkit draw' or 'hrkit teams' in scripts")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	watch, _ := cmd.Flags().GetBool("watch")
	seed, _ := cmd.Flags().GetInt64("seed")
	if cmd.Flags().Changed("allow-repeat") {
		cfg.Draw.AllowRepeat, _ = cmd.Flags().GetBool("allow-repeat")
	}
	if cmd.Flags().Changed("team-size") {
		size, _ := cmd.Flags().GetInt("team-size")
		if size < 2 {
			return errors.NewValidationError("team size must be at least 2").
				WithField("team-size").WithValue(size).WithCause(errors.ErrInvalidTeamSize)
		}
		cfg.Teams.DefaultSize = size
	}
	if file == stdinArg {
		return errors.NewValidationError("the TUI reads the terminal; pass a file path").WithField("file")
	}
	if watch && file == "" {
		return errors.NewValidationError("--watch needs --file").WithField("watch")
	}

	logger := newLogger(cfg, "start")
	defer logger.Close()

	opts := tui.Options{
		Rand:   newRand(seed),
		Logger: logger,
	}
	if file != "" {
		res, err := readNames(cmd.Context(), file, cmd.InOrStdin(), cfg)
		if err != nil {
			return err
		}
		opts.Names = res.Names
	}

	watchPath := ""
	if watch {
		watchPath = file
	}

	app := tui.New(cfg, opts, watchPath)
	if err := app.Run(cmd.Context()); err != nil {
		return errors.Wrap(err, "TUI error")
	}
	return nil
}
