package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/draw"
	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/roster"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var drawCmd = &cobra.Command{
	Use:   "draw FILE|-",
	Short: "Draw winners from a name list",
	Long: `Run one or more lucky draws over a name list and print the winners.

On a terminal the provisional names spin in place for draw.duration_ms
before each winner is shown. Use --quiet to skip the animation.
Winners leave the pool unless --allow-repeat is set, so drawing more
winners than names fails once the pool is empty.

Examples:
  hrkit draw staff.csv
  hrkit draw --count 3 --seed 42 staff.txt
  cat staff.txt | hrkit draw --quiet -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		quiet, _ := cmd.Flags().GetBool("quiet")
		seed, _ := cmd.Flags().GetInt64("seed")
		if cmd.Flags().Changed("allow-repeat") {
			cfg.Draw.AllowRepeat, _ = cmd.Flags().GetBool("allow-repeat")
		}
		out := cmd.OutOrStdout()
		return runDraw(cmd.Context(), out, cmd.InOrStdin(), cfg, drawOptions{
			source: args[0],
			count:  count,
			quiet:  quiet,
			seed:   seed,
			live:   !quiet && isTerminal(out),
		})
	},
}

func init() {
	drawCmd.Flags().IntP("count", "n", 1, "number of winners to draw")
	drawCmd.Flags().Bool("allow-repeat", false, "keep winners in the pool (overrides draw.allow_repeat)")
	drawCmd.Flags().BoolP("quiet", "q", false, "skip the spinning animation")
	drawCmd.Flags().Int64("seed", 0, "random seed for reproducible draws (0 = random)")
	rootCmd.AddCommand(drawCmd)
}

type drawOptions struct {
	source string
	count  int
	quiet  bool
	seed   int64
	// live redraws provisional names in place; only sensible on a terminal.
	live bool
}

func runDraw(ctx context.Context, out io.Writer, stdin io.Reader, cfg *config.Config, opts drawOptions) error {
	if opts.count < 1 {
		return errors.NewValidationError("count must be at least 1").WithField("count").WithValue(opts.count)
	}
	policy, err := roster.ParseRemovalPolicy(cfg.Draw.Removal)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, "draw").WithComponent("draw")
	defer logger.Close()

	res, err := readNames(ctx, opts.source, stdin, cfg)
	if err != nil {
		return err
	}
	if len(res.Names) == 0 {
		return errors.NewIngestError("no names found", errors.ErrEmptyNameList).WithPath(res.Path)
	}

	duration := cfg.Draw.Duration()
	if opts.quiet {
		duration = 0
	}
	engine := draw.New(
		draw.WithTick(cfg.Draw.TickInterval()),
		draw.WithDuration(duration),
		draw.WithRand(newRand(opts.seed)),
	)
	r := roster.New(res.Names, policy)

	logger.Info("draw started", "source", res.Path, "names", r.Len(), "count", opts.count,
		"allow_repeat", cfg.Draw.AllowRepeat, "removal", policy.String())

	var onStep draw.StepFunc
	if opts.live {
		onStep = func(s draw.Step) {
			if !s.Done {
				fmt.Fprintf(out, "\r%s  %s", ansi.EraseLineRight, util.Truncate(s.Provisional, 40))
			}
		}
	}

	for i := 1; i <= opts.count; i++ {
		if r.Empty() {
			return errors.NewDrawError(
				fmt.Sprintf("no names left after %s", util.Count(i-1, "winner")),
				errors.ErrEmptyNameList,
			).WithCycle(engine.Cycle())
		}

		start := time.Now()
		winner, err := engine.Run(ctx, r.Names(), onStep)
		if opts.live {
			fmt.Fprint(out, "\r"+ansi.EraseLineRight)
		}
		if err != nil {
			logger.Warn("draw interrupted", "cycle", engine.Cycle(), "error", err)
			return err
		}
		r.CommitWinner(winner, cfg.Draw.AllowRepeat)

		logger.Info("winner drawn", "cycle", engine.Cycle(), "winner", winner,
			"remaining", r.Len(), "duration_ms", time.Since(start).Milliseconds())
		fmt.Fprintf(out, "#%d %s\n", i, winner)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
