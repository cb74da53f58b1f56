package view

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the navigation bar.
type Tab struct {
	Title string
	// Badge is shown after the title, e.g. the name count. Empty hides it.
	Badge string
}

// RenderTabs renders the navigation bar with the active tab highlighted.
// Tabs are prefixed with their jump key (1-based).
func RenderTabs(tabs []Tab, active, width int) string {
	var parts []string
	for i, tab := range tabs {
		label := strconv.Itoa(i+1) + " " + tab.Title
		if tab.Badge != "" {
			label += " (" + tab.Badge + ")"
		}
		if i == active {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.TabInactive.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	title := styles.Primary.Bold(true).Render("hrkit")

	gap := width - lipgloss.Width(bar) - lipgloss.Width(title) - 1
	if gap < 1 {
		return styles.Header.Render(bar)
	}
	return styles.Header.Render(bar + strings.Repeat(" ", gap) + title)
}
