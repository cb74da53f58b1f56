package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/Iron-Ham/hrkit/internal/util"
)

// NamesState holds what the Names tab needs to render.
type NamesState struct {
	// Editor is the rendered text area.
	Editor string
	// Editing is true while the text area has focus.
	Editing bool
	// Prompt is the rendered path input; empty when the prompt is closed.
	Prompt string
	// Names is the parsed list in order.
	Names []string
	// Duplicates is the set of names occurring more than once.
	Duplicates []string
	// Watching is the file being watched for changes, if any.
	Watching string

	Width     int
	MaxListed int
}

// RenderNames renders the Names tab: editor, path prompt, duplicate warning
// and the numbered parsed list.
func RenderNames(s NamesState) string {
	var b strings.Builder

	title := "Names"
	if s.Editing {
		title += styles.Muted.Render("  editing, esc to finish")
	}
	b.WriteString(styles.SectionTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(s.Editor)
	b.WriteString("\n")

	if s.Prompt != "" {
		b.WriteString("\n")
		b.WriteString(styles.Primary.Render("Load file: "))
		b.WriteString(s.Prompt)
		b.WriteString("\n")
	}

	if s.Watching != "" {
		b.WriteString(styles.Muted.Render("Watching " + s.Watching))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderDuplicateWarning(s.Duplicates))
	b.WriteString(renderNameList(s))

	return b.String()
}

func renderDuplicateWarning(dups []string) string {
	if len(dups) == 0 {
		return ""
	}
	msg := fmt.Sprintf("⚠ %s repeated: %s", util.Count(len(dups), "name"), strings.Join(dups, ", "))
	return styles.WarningMsg.Render(msg) + "  " +
		styles.HelpKey.Render("[d]") + " remove duplicates\n\n"
}

func renderNameList(s NamesState) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitle.Render(fmt.Sprintf("Parsed list (%d)", len(s.Names))))
	b.WriteString("\n")

	if len(s.Names) == 0 {
		b.WriteString(styles.Muted.Render("No names yet. Press i to type, o to open a file, s for sample data."))
		b.WriteString("\n")
		return b.String()
	}

	dup := make(map[string]bool, len(s.Duplicates))
	for _, d := range s.Duplicates {
		dup[d] = true
	}

	limit := len(s.Names)
	if s.MaxListed > 0 && limit > s.MaxListed {
		limit = s.MaxListed
	}

	nameWidth := s.Width - 8
	for i, name := range s.Names[:limit] {
		b.WriteString(styles.ListIndex.Render(fmt.Sprintf("%d.", i+1)))
		shown := name
		if nameWidth > 0 {
			shown = util.Truncate(name, nameWidth)
		}
		if dup[name] {
			b.WriteString(styles.Duplicate.Render(shown + " *"))
		} else {
			b.WriteString(shown)
		}
		b.WriteString("\n")
	}

	if rest := len(s.Names) - limit; rest > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("      %s and %d more", util.Ellipsis, rest)))
		b.WriteString("\n")
	}
	return b.String()
}
