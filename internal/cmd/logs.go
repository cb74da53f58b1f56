package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View hrkit logs",
	Long: `View and filter the hrkit log file.

Every hrkit run logs under its own session id. By default only the most
recent session is shown; use --session to pick another one (a prefix is
enough) or --all for every session.

Examples:
  # Show last 50 lines from the most recent run
  hrkit logs

  # Show all logs from a specific run
  hrkit logs -s 3f2a -n 0

  # Follow logs in real-time
  hrkit logs -f --all

  # Filter by log level
  hrkit logs --level warn

  # Show logs from the last hour
  hrkit logs --all --since 1h

  # Search for specific patterns
  hrkit logs --grep "winner|export"`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsSessionID   string
	logsAllSessions bool
	logsTail        int
	logsFollow      bool
	logsLevel       string
	logsSince       string
	logsGrep        string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVarP(&logsSessionID, "session", "s", "", "Session ID or prefix (default: most recent)")
	logsCmd.Flags().BoolVar(&logsAllSessions, "all", false, "Show entries from every session")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	SessionID string         `json:"session_id,omitempty"`
	Command   string         `json:"command,omitempty"`
	Component string         `json:"component,omitempty"`
	Extra     map[string]any `json:"-"` // Captures additional fields
}

// UnmarshalJSON implements custom unmarshaling to capture extra fields
func (e *logEntry) UnmarshalJSON(data []byte) error {
	type Alias logEntry
	aux := &struct {
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range []string{"time", "level", "msg", "session_id", "command", "component"} {
		delete(all, known)
	}
	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

// logFilter holds the parsed filter flags.
type logFilter struct {
	session  string
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

var (
	logTimeStyle  = lipgloss.NewStyle().Foreground(styles.MutedColor)
	logFieldStyle = lipgloss.NewStyle().Foreground(styles.SecondaryColor)
)

// levelStyle returns the style for a log level
func levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return lipgloss.NewStyle().Foreground(styles.MutedColor)
	case logging.LevelInfo:
		return lipgloss.NewStyle().Foreground(styles.PrimaryColor)
	case logging.LevelWarn:
		return lipgloss.NewStyle().Foreground(styles.WarningColor)
	case logging.LevelError:
		return lipgloss.NewStyle().Foreground(styles.ErrorColor)
	default:
		return lipgloss.NewStyle()
	}
}

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(logTimeStyle.Render("[" + entry.Time.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	sb.WriteString(levelStyle(entry.Level).Render("[" + strings.ToUpper(entry.Level) + "]"))
	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	if entry.Command != "" {
		sb.WriteString(" " + logFieldStyle.Render("command="+entry.Command))
	}
	if entry.Component != "" {
		sb.WriteString(" " + logFieldStyle.Render("component="+entry.Component))
	}

	keys := lo.Keys(entry.Extra)
	slices.Sort(keys)
	for _, key := range keys {
		sb.WriteString(" ")
		sb.WriteString(logFieldStyle.Render(key + "="))
		sb.WriteString(fmt.Sprintf("%v", entry.Extra[key]))
	}

	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logPath := filepath.Join(cfg.Logging.ResolveDir(), logging.FileName)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	filter := logFilter{session: logsSessionID, minLevel: -1}
	if logsLevel != "" {
		filter.minLevel = levelPriority(logging.ParseLevel(logsLevel))
	}
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return errors.Wrap(err, "invalid duration format")
		}
		filter.since = time.Now().Add(-duration)
	}
	if logsGrep != "" {
		filter.grep, err = regexp.Compile(logsGrep)
		if err != nil {
			return errors.Wrap(err, "invalid grep pattern")
		}
	}

	if filter.session == "" && !logsAllSessions {
		filter.session, err = latestSession(logPath)
		if err != nil {
			return err
		}
	}

	if logsFollow {
		return followLogs(cmd.Context(), out, logPath, filter)
	}
	return displayLogs(out, logPath, logsTail, filter)
}

// scanLog calls fn for every non-empty line of the log file. Lines that are
// not JSON are passed with a nil entry.
func scanLog(logPath string, fn func(line string, entry *logEntry)) error {
	file, err := os.Open(logPath)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			fn(line, nil)
			continue
		}
		fn(line, &entry)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "error reading log file")
	}
	return nil
}

// latestSession returns the session id of the last entry that has one.
func latestSession(logPath string) (string, error) {
	var latest string
	err := scanLog(logPath, func(_ string, entry *logEntry) {
		if entry != nil && entry.SessionID != "" {
			latest = entry.SessionID
		}
	})
	return latest, err
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	var entries []string
	err := scanLog(logPath, func(line string, entry *logEntry) {
		if entry == nil {
			if filter.session == "" {
				entries = append(entries, line)
			}
			return
		}
		if passesFilters(entry, filter) {
			entries = append(entries, formatLogEntry(entry))
		}
	})
	if err != nil {
		return err
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}
	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}
	return nil
}

// followLogs implements tail -f behavior for the log file until ctx ends.
func followLogs(ctx context.Context, out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return errors.Wrap(err, "failed to seek to end")
	}

	fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return errors.Wrap(err, "error reading log file")
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			fmt.Fprintln(out, line)
			continue
		}
		if passesFilters(&entry, filter) {
			fmt.Fprintln(out, formatLogEntry(&entry))
		}
	}
}

// passesFilters checks if a log entry passes all filter criteria
func passesFilters(entry *logEntry, filter logFilter) bool {
	if filter.session != "" && !strings.HasPrefix(entry.SessionID, filter.session) {
		return false
	}

	if filter.minLevel >= 0 && levelPriority(entry.Level) < filter.minLevel {
		return false
	}

	if !filter.since.IsZero() && entry.Time.Before(filter.since) {
		return false
	}

	// Search in message and extra fields
	if filter.grep != nil {
		searchText := entry.Msg
		for _, v := range entry.Extra {
			searchText += " " + fmt.Sprintf("%v", v)
		}
		if !filter.grep.MatchString(searchText) {
			return false
		}
	}

	return true
}
