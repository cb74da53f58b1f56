package tui

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/Iron-Ham/hrkit/internal/tui/view"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(view.RenderTabs(m.tabs(), int(m.activeTab), m.width))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(view.RenderFullHelp(m.keymap, m.mode()))
		return b.String()
	}

	switch m.activeTab {
	case TabNames:
		b.WriteString(m.renderNames())
	case TabDraw:
		b.WriteString(m.renderDraw())
	case TabTeams:
		b.WriteString(m.renderTeams())
	}

	if status := view.RenderStatus(m.errorMessage, m.infoMessage); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}
	b.WriteString("\n")
	b.WriteString(view.RenderHelp(m.keymap, m.mode()))

	return b.String()
}

func (m Model) tabs() []view.Tab {
	names := view.Tab{Title: TabNames.String()}
	if n := m.roster.Len(); n > 0 {
		names.Badge = strconv.Itoa(n)
	}
	drawTab := view.Tab{Title: TabDraw.String()}
	if m.engine.Spinning() {
		drawTab.Badge = "spinning"
	}
	teamsTab := view.Tab{Title: TabTeams.String()}
	if len(m.partition) > 0 {
		teamsTab.Badge = strconv.Itoa(len(m.partition))
	}
	return []view.Tab{names, drawTab, teamsTab}
}

func (m Model) renderNames() string {
	state := view.NamesState{
		Editor:     m.editor.View(),
		Editing:    m.editing,
		Names:      m.roster.Names(),
		Duplicates: m.roster.Duplicates(),
		Watching:   m.watching,
		Width:      CalculateContentWidth(m.width),
		MaxListed:  listRows(m.height, NamesChromeHeight),
	}
	if m.prompting {
		state.Prompt = m.pathInput.View()
	}
	return styles.ContentBox.Render(view.RenderNames(state))
}

func (m Model) renderDraw() string {
	state := view.DrawState{
		Current:     m.engine.Current(),
		Spinning:    m.engine.Spinning(),
		History:     m.roster.History(),
		AllowRepeat: m.allowRepeat,
		PoolSize:    m.roster.Len(),
		MaxHistory:  listRows(m.height, DrawChromeHeight),
	}
	return styles.ContentBox.Render(view.RenderDraw(state))
}

func (m Model) renderTeams() string {
	state := view.TeamsState{
		Size:      m.teamSize,
		NameCount: m.roster.Len(),
		Teams:     m.partition,
		Stale:     m.stale,
		Exported:  m.exported,
		Width:     CalculateContentWidth(m.width),
	}
	return styles.ContentBox.Render(view.RenderTeams(state))
}
