package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/ingest"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names FILE|-",
	Short: "Parse a name list and report duplicates",
	Long: `Parse a name list the same way the TUI does: split on commas and
line breaks, trim whitespace and drop empty entries.

Prints a numbered table with duplicates marked, or with --plain one name
per line. --dedupe keeps only the first occurrence of each name.

Examples:
  hrkit names staff.csv
  hrkit names --dedupe --plain staff.txt > clean.txt
  pbpaste | hrkit names -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dedupe, _ := cmd.Flags().GetBool("dedupe")
		plain, _ := cmd.Flags().GetBool("plain")
		return runNames(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), cfg, namesOptions{
			source: args[0],
			dedupe: dedupe,
			plain:  plain,
		})
	},
}

func init() {
	namesCmd.Flags().Bool("dedupe", false, "remove duplicate names, keeping first occurrences")
	namesCmd.Flags().Bool("plain", false, "print one name per line without the table")
	rootCmd.AddCommand(namesCmd)
}

type namesOptions struct {
	source string
	dedupe bool
	plain  bool
}

func runNames(ctx context.Context, out io.Writer, stdin io.Reader, cfg *config.Config, opts namesOptions) error {
	logger := newLogger(cfg, "names")
	defer logger.Close()

	res, err := readNames(ctx, opts.source, stdin, cfg)
	if err != nil {
		return err
	}
	names := res.Names
	dups := ingest.Duplicates(names)

	if opts.dedupe {
		names = ingest.RemoveDuplicates(names)
	}
	logger.Info("names parsed", "source", res.Path, "count", len(res.Names), "duplicates", len(dups), "dedupe", opts.dedupe)

	if opts.plain {
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}

	renderNameTable(out, names, dups)
	fmt.Fprintln(out)
	fmt.Fprintln(out, nameSummary(len(res.Names), len(names), dups))
	return nil
}

// renderNameTable prints a numbered table marking names that occur more
// than once in the parsed input.
func renderNameTable(w io.Writer, names, dups []string) {
	dupSet := lo.SliceToMap(dups, func(d string) (string, struct{}) { return d, struct{}{} })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Name", "Duplicate"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i, n := range names {
		mark := ""
		if _, ok := dupSet[n]; ok {
			mark = "yes"
		}
		table.Append([]string{strconv.Itoa(i + 1), n, mark})
	}
	table.Render()
}

func nameSummary(parsed, kept int, dups []string) string {
	var b strings.Builder
	b.WriteString(util.Count(parsed, "name") + " parsed")
	if len(dups) > 0 {
		b.WriteString(fmt.Sprintf(", %s repeated (%s)", util.Count(len(dups), "name"), strings.Join(dups, ", ")))
	}
	if kept != parsed {
		b.WriteString(fmt.Sprintf(", %d kept after removing duplicates", kept))
	}
	return b.String()
}
