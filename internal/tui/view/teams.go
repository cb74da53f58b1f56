package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/teams"
	"github.com/Iron-Ham/hrkit/internal/tui/styles"
	"github.com/Iron-Ham/hrkit/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// cardWidth is the width of a team card, padding included.
const cardWidth = 22

// TeamsState holds what the Teams tab needs to render.
type TeamsState struct {
	Size      int
	NameCount int
	Teams     teams.Partition
	// Stale is set when the name list changed after Teams was generated.
	Stale bool
	// Exported is the path of the last written CSV.
	Exported string
	Width    int
}

// RenderTeams renders the Teams tab: the size control, the resulting team
// count and the team cards.
func RenderTeams(s TeamsState) string {
	var b strings.Builder

	b.WriteString(styles.SectionTitle.Render("Team builder"))
	b.WriteString("\n\n")
	b.WriteString(renderSizeControl(s))
	b.WriteString("\n\n")

	if len(s.Teams) == 0 {
		if s.NameCount == 0 {
			b.WriteString(styles.Muted.Render("Add names first."))
		} else {
			b.WriteString(styles.Muted.Render("Press g to generate teams."))
		}
		b.WriteString("\n")
		return b.String()
	}

	if s.Stale {
		b.WriteString(styles.WarningMsg.Render("Names changed since these teams were generated. Press g to regenerate."))
		b.WriteString("\n\n")
	}

	b.WriteString(renderCards(s.Teams, s.Width))
	b.WriteString("\n")

	if s.Exported != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessMsg.Render("Exported to " + s.Exported))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSizeControl(s TeamsState) string {
	line := styles.Muted.Render("Team size ") +
		styles.HelpKey.Render("[-]") + " " +
		styles.Primary.Bold(true).Render(fmt.Sprintf("%d", s.Size)) + " " +
		styles.HelpKey.Render("[+]")

	if s.NameCount > 0 {
		line += styles.Muted.Render(fmt.Sprintf("   %s from %s",
			util.Count(teams.TeamCount(s.NameCount, s.Size), "team"),
			util.Count(s.NameCount, "name")))
	}
	return line
}

// renderCards lays the cards out left to right, wrapping to as many rows as
// the width requires.
func renderCards(p teams.Partition, width int) string {
	cards := make([]string, len(p))
	for i, team := range p {
		cards[i] = renderCard(team)
	}

	perRow := 1
	if w := lipgloss.Width(cards[0]); w > 0 && width > w {
		perRow = width / w
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(team teams.Team) string {
	lines := []string{
		styles.TeamCardTitle.Render(fmt.Sprintf("Team %d", team.ID)) +
			styles.Muted.Render(fmt.Sprintf(" (%d)", len(team.Members))),
	}
	for _, m := range team.Members {
		lines = append(lines, "• "+util.Truncate(m, cardWidth-4))
	}
	return styles.TeamCard.Width(cardWidth).Render(strings.Join(lines, "\n"))
}
