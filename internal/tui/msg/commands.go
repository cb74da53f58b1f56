package msg

import (
	"context"
	"time"

	"github.com/Iron-Ham/hrkit/internal/ingest"
	"github.com/Iron-Ham/hrkit/internal/teams"
	tea "github.com/charmbracelet/bubbletea"
)

// DrawTick returns a command that sends a DrawTickMsg for cycle after d.
func DrawTick(cycle uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DrawTickMsg{Cycle: cycle}
	})
}

// LoadFile returns a command that reads a name file.
// It produces FileLoadedMsg on success and ErrMsg otherwise.
func LoadFile(ctx context.Context, path string, opts ingest.Options) tea.Cmd {
	return func() tea.Msg {
		res, err := ingest.ReadFile(ctx, path, opts)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return FileLoaded(res, false)
	}
}

// FileLoaded converts an ingest result into a FileLoadedMsg.
func FileLoaded(res ingest.Result, watched bool) FileLoadedMsg {
	return FileLoadedMsg{
		Path:    res.Path,
		Text:    res.Text,
		Names:   res.Names,
		Watched: watched,
	}
}

// ExportTeams returns a command that writes p as CSV into dir.
// It produces ExportDoneMsg on success and ErrMsg otherwise.
func ExportTeams(dir string, p teams.Partition, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := teams.Export(dir, p, now)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}
