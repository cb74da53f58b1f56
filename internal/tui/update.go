package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/ingest"
	"github.com/Iron-Ham/hrkit/internal/teams"
	"github.com/Iron-Ham/hrkit/internal/tui/keymap"
	"github.com/Iron-Ham/hrkit/internal/tui/msg"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.editor.SetWidth(CalculateContentWidth(message.Width))
		m.pathInput.Width = CalculateContentWidth(message.Width) - 12
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case msg.DrawTickMsg:
		return m.handleDrawTick(message)

	case msg.FileLoadedMsg:
		m.applyNames(message.Names)
		m.editor.SetValue(message.Text)
		verb := "Loaded"
		if message.Watched {
			verb = "Reloaded"
		}
		m.infoMessage = fmt.Sprintf("%s %s from %s", verb, util.Count(len(message.Names), "name"), message.Path)
		m.logger.Info("names loaded", "path", message.Path, "count", len(message.Names), "watched", message.Watched)
		return m, nil

	case msg.ExportDoneMsg:
		m.exported = message.Path
		m.infoMessage = "Teams exported"
		m.logger.Info("teams exported", "path", message.Path, "teams", len(m.partition))
		return m, nil

	case msg.ErrMsg:
		m.setError(message.Err)
		return m, nil
	}

	return m, nil
}

// handleKey clears the status line, then dispatches the key to its command
// or, when unbound, to whichever text field has focus.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.infoMessage = ""

	mode := m.mode()
	if cmd, ok := m.keymap.GetBinding(key, mode); ok {
		return m.execute(cmd, key)
	}

	switch mode {
	case keymap.ModeEditor:
		before := m.editor.Value()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(key)
		if after := m.editor.Value(); after != before {
			m.applyNames(ingest.Parse(after))
		}
		return m, cmd
	case keymap.ModePath:
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(key)
		return m, cmd
	}
	return m, nil
}

// execute performs a keymap command.
func (m Model) execute(cmd keymap.Command, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		if m.engine.Cancel() {
			m.logger.Info("draw canceled on quit", "cycle", m.engine.Cycle())
		}
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdNextTab:
		m.switchTab((m.activeTab + 1) % tabCount)
	case keymap.CmdPrevTab:
		m.switchTab((m.activeTab + tabCount - 1) % tabCount)
	case keymap.CmdJumpToTab:
		if len(key.Runes) > 0 {
			m.switchTab(Tab(key.Runes[0] - '1'))
		}

	case keymap.CmdEditNames:
		m.editing = true
		return m, tea.Batch(m.editor.Focus(), textarea.Blink)
	case keymap.CmdLeaveEditor:
		m.editing = false
		m.editor.Blur()

	case keymap.CmdOpenFile:
		m.prompting = true
		m.editor.Blur()
		m.pathInput.Reset()
		return m, m.pathInput.Focus()
	case keymap.CmdConfirm:
		return m.confirmPath()
	case keymap.CmdCancel:
		m.closePrompt()

	case keymap.CmdRemoveDuplicates:
		m.removeDuplicates()
	case keymap.CmdLoadSample:
		names := ingest.SampleNames()
		m.applyNames(names)
		m.editor.SetValue(ingest.Join(names))
		m.infoMessage = "Loaded " + util.Count(len(names), "sample name")
	case keymap.CmdCompleteNames:
		// Disabled until there is at least one name.
		if !m.roster.Empty() {
			m.switchTab(TabDraw)
		}

	case keymap.CmdStartDraw:
		return m.startDraw()
	case keymap.CmdToggleRepeat:
		if !m.engine.Spinning() {
			m.allowRepeat = !m.allowRepeat
		}

	case keymap.CmdIncreaseSize:
		m.teamSize = teams.ClampSize(m.teamSize+1, m.roster.Len())
	case keymap.CmdDecreaseSize:
		m.teamSize = teams.ClampSize(m.teamSize-1, m.roster.Len())
	case keymap.CmdGenerateTeams:
		m.generateTeams()
	case keymap.CmdExportTeams:
		if len(m.partition) == 0 {
			m.setError(errors.NewExportError("generate teams before exporting", errors.ErrNothingToExport))
			break
		}
		return m, msg.ExportTeams(m.cfg.Teams.ResolveExportDir(), m.partition, m.now())
	}

	return m, nil
}

func (m *Model) switchTab(tab Tab) {
	if tab < TabNames || tab >= tabCount {
		return
	}
	if m.editing {
		m.editing = false
		m.editor.Blur()
	}
	m.activeTab = tab
	m.teamSize = teams.ClampSize(m.teamSize, m.roster.Len())
}

// applyNames replaces the roster list; a generated partition no longer
// matches it.
func (m *Model) applyNames(names []string) {
	m.roster.Replace(names)
	if len(m.partition) > 0 {
		m.stale = true
	}
}

func (m *Model) removeDuplicates() {
	if len(m.roster.Duplicates()) == 0 {
		return
	}
	removed := m.roster.RemoveDuplicates()
	names := m.roster.Names()
	m.editor.SetValue(ingest.Join(names))
	if len(m.partition) > 0 {
		m.stale = true
	}
	m.infoMessage = "Removed " + util.Count(removed, "duplicate")
	m.logger.Info("duplicates removed", "removed", removed, "remaining", len(names))
}

func (m Model) confirmPath() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathInput.Value())
	m.closePrompt()
	if path == "" {
		return m, nil
	}
	path = expandHome(path)
	m.logger.Debug("loading names", "path", path)
	return m, msg.LoadFile(m.ctx, path, m.ingestOptions())
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.pathInput.Blur()
	m.pathInput.Reset()
	if m.editing {
		m.editor.Focus()
	}
}

// startDraw is disabled, not an error, while spinning or with no names.
func (m Model) startDraw() (tea.Model, tea.Cmd) {
	if m.engine.Spinning() || m.roster.Empty() {
		return m, nil
	}
	cycle, err := m.engine.Start(m.roster.Names())
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.logger.Debug("draw started", "cycle", cycle, "pool", m.roster.Len())
	return m, msg.DrawTick(cycle, m.engine.TickInterval())
}

func (m Model) handleDrawTick(tick msg.DrawTickMsg) (tea.Model, tea.Cmd) {
	step, ok := m.engine.Tick(tick.Cycle)
	if !ok {
		return m, nil
	}
	if !step.Done {
		return m, msg.DrawTick(step.Cycle, m.engine.TickInterval())
	}

	// The list may have been edited during the spin; the winner is recorded
	// either way and only removed if still listed.
	if removed := m.roster.CommitWinner(step.Winner, m.allowRepeat); removed > 0 {
		m.editor.SetValue(ingest.Join(m.roster.Names()))
		if len(m.partition) > 0 {
			m.stale = true
		}
	}
	m.logger.Info("winner drawn", "cycle", step.Cycle, "winner", step.Winner, "remaining", m.roster.Len())
	return m, nil
}

func (m *Model) generateTeams() {
	if m.roster.Empty() {
		m.setError(errors.NewValidationError("add names before generating teams").WithCause(errors.ErrEmptyNameList))
		return
	}
	m.teamSize = teams.ClampSize(m.teamSize, m.roster.Len())
	p, err := teams.Build(m.roster.Names(), m.teamSize, m.rng)
	if err != nil {
		m.setError(err)
		return
	}
	m.partition = p
	m.stale = false
	m.exported = ""
	m.logger.Debug("teams generated", "size", m.teamSize, "teams", len(p))
}

// setError shows err on the status line until the next key press.
func (m *Model) setError(err error) {
	m.errorMessage = errors.UserMessage(err)
	if errors.GetSeverity(err) >= errors.SeverityError {
		m.logger.Error("action failed", "error", err)
		return
	}
	m.logger.Warn("action failed", "error", err)
}

// expandHome expands a leading ~ in a typed path.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
