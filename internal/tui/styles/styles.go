// Package styles holds the lipgloss colors and styles shared by the TUI views.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	HighlightColor = lipgloss.Color("#FBBF24") // Yellow

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	TabDisabled = lipgloss.NewStyle().
			Foreground(BorderColor).
			Strikethrough(true).
			Padding(0, 2)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Status line messages
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Names list
	ListIndex = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(4).
			Align(lipgloss.Right).
			MarginRight(1)

	Duplicate = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Draw slot
	SlotBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 4).
		Align(lipgloss.Center)

	SlotSpinning = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	SlotWinner = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SlotIdle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Team cards
	TeamCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1).
			MarginRight(1)

	TeamCardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Checkbox
	CheckboxOn = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	CheckboxOff = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Checkbox renders a labelled two-state toggle.
func Checkbox(label string, on bool) string {
	if on {
		return CheckboxOn.Render("[x]") + " " + label
	}
	return CheckboxOff.Render("[ ]") + " " + label
}
