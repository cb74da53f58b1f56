package view

import (
	"strings"

	"github.com/Iron-Ham/hrkit/internal/tui/keymap"
	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the one-line help bar for a mode.
func RenderHelp(km *keymap.Keymap, mode keymap.Mode) string {
	if km == nil {
		return ""
	}

	var keys []string
	for _, b := range km.ShortHelp(mode) {
		keys = append(keys, styles.HelpKey.Render("["+b.String()+"]")+" "+strings.ToLower(b.Description))
	}
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}

// RenderFullHelp renders every binding of a mode grouped by category,
// including the alternate keys hidden from the help bar.
func RenderFullHelp(km *keymap.Keymap, mode keymap.Mode) string {
	if km == nil {
		return ""
	}

	byCategory := km.GetBindingsByCategory(mode)
	var sections []string
	for _, cat := range km.GetCategories(mode) {
		var b strings.Builder
		b.WriteString(styles.SectionTitle.Render("▸ " + cat))
		b.WriteString("\n")
		for _, line := range helpLines(byCategory[cat]) {
			b.WriteString("   ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		sections = append(sections, b.String())
	}

	body := styles.Title.Render("Keyboard shortcuts") + "\n" +
		strings.Join(sections, "\n") + "\n" +
		styles.Muted.Render("Press ? to close")
	return styles.ContentBox.Render(body)
}

// helpLines merges bindings that share a description into one line,
// e.g. "[+/=/up]  Bigger teams".
func helpLines(bindings []keymap.KeyBinding) []string {
	var order []string
	keys := make(map[string][]string)
	for _, b := range bindings {
		if _, ok := keys[b.Description]; !ok {
			order = append(order, b.Description)
		}
		keys[b.Description] = append(keys[b.Description], b.String())
	}

	width := 0
	for _, desc := range order {
		width = max(width, lipgloss.Width(strings.Join(keys[desc], "/"))+2)
	}

	lines := make([]string, 0, len(order))
	for _, desc := range order {
		key := "[" + strings.Join(keys[desc], "/") + "]"
		lines = append(lines, styles.HelpKey.Render(util.PadRight(key, width))+"  "+desc)
	}
	return lines
}

// RenderStatus renders the status line under the content. An error takes
// precedence over an info message.
func RenderStatus(errMsg, info string) string {
	switch {
	case errMsg != "":
		return styles.ErrorMsg.Render("✗ " + errMsg)
	case info != "":
		return styles.SuccessMsg.Render("✓ " + info)
	default:
		return ""
	}
}
