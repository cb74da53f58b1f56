package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/teams"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/spf13/cobra"
)

// Output formats for the teams command.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

var teamsCmd = &cobra.Command{
	Use:   "teams FILE|-",
	Short: "Shuffle a name list into teams",
	Long: `Shuffle a name list and split it into teams of --size members.
The last team holds the remainder when the names do not divide evenly.

By default the teams are printed as a table. --format csv prints the
export format instead, and --export writes it to
team_results_<unix ms>.csv in --dir (teams.export_dir).

Examples:
  hrkit teams --size 4 staff.csv
  hrkit teams --size 3 --export --dir ~/Desktop staff.txt
  hrkit teams --format csv --seed 7 - < staff.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		size, _ := cmd.Flags().GetInt("size")
		export, _ := cmd.Flags().GetBool("export")
		dir, _ := cmd.Flags().GetString("dir")
		format, _ := cmd.Flags().GetString("format")
		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("size") {
			size = cfg.Teams.DefaultSize
		}
		if dir == "" {
			dir = cfg.Teams.ResolveExportDir()
		}
		return runTeams(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), cfg, teamsOptions{
			source: args[0],
			size:   size,
			export: export,
			dir:    dir,
			format: format,
			seed:   seed,
			now:    time.Now,
		})
	},
}

var teamsInspectCmd = &cobra.Command{
	Use:   "inspect CSV",
	Short: "Print a previously exported teams file",
	Long: `Read a team_results_*.csv file written by the TUI or by
'hrkit teams --export' and print its teams as a table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTeamsInspect(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	teamsCmd.Flags().IntP("size", "s", 0, "members per team (default teams.default_size)")
	teamsCmd.Flags().BoolP("export", "e", false, "write the teams to a CSV file")
	teamsCmd.Flags().String("dir", "", "export directory (default teams.export_dir)")
	teamsCmd.Flags().String("format", formatTable, "output format: table or csv")
	teamsCmd.Flags().Int64("seed", 0, "random seed for a reproducible shuffle (0 = random)")
	teamsCmd.AddCommand(teamsInspectCmd)
	rootCmd.AddCommand(teamsCmd)
}

type teamsOptions struct {
	source string
	size   int
	export bool
	dir    string
	format string
	seed   int64
	now    func() time.Time
}

func runTeams(ctx context.Context, out io.Writer, stdin io.Reader, cfg *config.Config, opts teamsOptions) error {
	if opts.format != formatTable && opts.format != formatCSV {
		return errors.NewValidationError("format must be table or csv").WithField("format").WithValue(opts.format)
	}
	if opts.size < teams.MinSize {
		return errors.NewValidationError(fmt.Sprintf("team size must be at least %d", teams.MinSize)).
			WithField("size").WithValue(opts.size).WithCause(errors.ErrInvalidTeamSize)
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	logger := newLogger(cfg, "teams").WithComponent("teams")
	defer logger.Close()

	res, err := readNames(ctx, opts.source, stdin, cfg)
	if err != nil {
		return err
	}
	if len(res.Names) == 0 {
		return errors.NewIngestError("no names found", errors.ErrEmptyNameList).WithPath(res.Path)
	}

	size := teams.ClampSize(opts.size, len(res.Names))
	p, err := teams.Build(res.Names, size, newRand(opts.seed))
	if err != nil {
		return err
	}
	logger.Info("teams generated", "source", res.Path, "names", len(res.Names), "size", size, "teams", len(p))

	switch opts.format {
	case formatCSV:
		if err := teams.WriteCSV(out, p); err != nil {
			return errors.NewExportError("cannot write csv", err)
		}
	default:
		teams.RenderTable(out, p)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s of up to %d from %s\n", util.Count(len(p), "team"), size, util.Count(len(res.Names), "name"))
	}

	if !opts.export {
		return nil
	}
	path, err := teams.Export(opts.dir, p, opts.now())
	if err != nil {
		logger.Error("export failed", "dir", opts.dir, "error", err)
		return err
	}
	logger.Info("teams exported", "path", path)
	// Keep stdout clean for piped csv output.
	if opts.format == formatCSV {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	} else {
		fmt.Fprintf(out, "Exported to %s\n", path)
	}
	return nil
}

func runTeamsInspect(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewIngestError("cannot open file", err).WithPath(path)
	}
	defer f.Close()

	p, err := teams.ReadCSV(f)
	if err != nil {
		return errors.NewIngestError("not a teams export", err).WithPath(path)
	}
	if len(p) == 0 {
		fmt.Fprintln(out, "No teams in file.")
		return nil
	}

	teams.RenderTable(out, p)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s, %s\n", util.Count(len(p), "team"), util.Count(p.Len(), "member"))
	return nil
}
