package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// slotWidth is the width of the slot display; slotText is the room left
// inside its horizontal padding.
const (
	slotWidth = 32
	slotText  = slotWidth - 8
)

// DrawState holds what the Draw tab needs to render.
type DrawState struct {
	// Current is the provisional name while spinning.
	Current  string
	Spinning bool
	// History is newest first; History[0] is the latest winner.
	History     []string
	AllowRepeat bool
	PoolSize    int
	MaxHistory  int
}

// RenderDraw renders the Draw tab: the slot, the controls line and the
// numbered history.
func RenderDraw(s DrawState) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitle.Render("Lucky draw"))
	b.WriteString("\n\n")
	b.WriteString(styles.SlotBox.Width(slotWidth).Render(slotContent(s)))
	b.WriteString("\n\n")

	controls := []string{
		styles.Checkbox("Allow repeat winners", s.AllowRepeat),
		styles.Muted.Render("Pool: ") + fmt.Sprintf("%d", s.PoolSize),
	}
	b.WriteString(strings.Join(controls, "    "))
	b.WriteString("\n\n")

	b.WriteString(renderHistory(s.History, s.MaxHistory))
	return b.String()
}

func slotContent(s DrawState) string {
	switch {
	case s.Spinning:
		return styles.SlotSpinning.Render(util.Truncate(s.Current, slotText))
	case s.PoolSize == 0 && len(s.History) == 0:
		return styles.SlotIdle.Render("Add names first")
	case s.PoolSize == 0:
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.SlotWinner.Render("🎉 "+util.Truncate(s.History[0], slotText-3)),
			styles.SlotIdle.Render("No names left"),
		)
	case len(s.History) > 0:
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.SlotWinner.Render("🎉 "+util.Truncate(s.History[0], slotText-3)),
			styles.SlotIdle.Render("space to draw again"),
		)
	default:
		return styles.SlotIdle.Render("Press space to draw")
	}
}

// renderHistory lists winners newest first, numbered so that the first
// winner of the session is #1.
func renderHistory(history []string, max int) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitle.Render(fmt.Sprintf("Winners (%d)", len(history))))
	b.WriteString("\n")

	if len(history) == 0 {
		b.WriteString(styles.Muted.Render("No winners yet."))
		b.WriteString("\n")
		return b.String()
	}

	limit := len(history)
	if max > 0 && limit > max {
		limit = max
	}
	for i, name := range history[:limit] {
		num := styles.ListIndex.Render(fmt.Sprintf("#%d", len(history)-i))
		b.WriteString(num + name + "\n")
	}
	if rest := len(history) - limit; rest > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("      %s and %d earlier", util.Ellipsis, rest)))
		b.WriteString("\n")
	}
	return b.String()
}
