package preview

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to sketch a layout.
type Styles struct {
	Header   lipgloss.Style
	Box      lipgloss.Style
	BoxTitle lipgloss.Style
	BoxOpts  lipgloss.Style
	ErrLog   lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultStyles returns the preview's fixed palette. ANSI colors only, so
// the sketch survives basic terminals.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		BoxOpts: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		ErrLog: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Foreground(lipgloss.Color("9")).
			Padding(0, 1),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
	}
}
