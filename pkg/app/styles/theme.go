package styles

import "github.com/charmbracelet/lipgloss"

// Theme bundles every style the screens use, built from one of two
// palettes. Toggling swaps the whole bundle; nothing else about the UI
// state changes.
type Theme struct {
	Name string

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Selected     lipgloss.Style
	Card         lipgloss.Style
	ActiveCard   lipgloss.Style
	StatusError  lipgloss.Style
	StatusOK     lipgloss.Style
	Pending      lipgloss.Style
	ActiveTab    lipgloss.Style
	InactiveTab  lipgloss.Style
	Help         lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
}

type palette struct {
	primary, secondary, success, errorC, info, muted, foreground, tabBg lipgloss.Color
}

var darkPalette = palette{
	primary:    lipgloss.Color("#FF6B9D"),
	secondary:  lipgloss.Color("#C792EA"),
	success:    lipgloss.Color("#C3E88D"),
	errorC:     lipgloss.Color("#F07178"),
	info:       lipgloss.Color("#82AAFF"),
	muted:      lipgloss.Color("#546E7A"),
	foreground: lipgloss.Color("#EEFFFF"),
	tabBg:      lipgloss.Color("#37474F"),
}

var lightPalette = palette{
	primary:    lipgloss.Color("#C2185B"),
	secondary:  lipgloss.Color("#7C4DFF"),
	success:    lipgloss.Color("#2E7D32"),
	errorC:     lipgloss.Color("#C62828"),
	info:       lipgloss.Color("#1565C0"),
	muted:      lipgloss.Color("#90A4AE"),
	foreground: lipgloss.Color("#263238"),
	tabBg:      lipgloss.Color("#ECEFF1"),
}

func Dark() *Theme  { return build("dark", darkPalette) }
func Light() *Theme { return build("light", lightPalette) }

// ForName maps a stored preference string to a theme, defaulting to dark.
func ForName(name string) *Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle returns the other theme.
func (t *Theme) Toggle() *Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}

func build(name string, p palette) *Theme {
	rounded := lipgloss.RoundedBorder()
	thick := lipgloss.ThickBorder()

	return &Theme{
		Name: name,

		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.secondary).
			Italic(true),

		Text: lipgloss.NewStyle().
			Foreground(p.foreground),

		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		Selected: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			BorderStyle(rounded).
			BorderForeground(p.primary).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(rounded).
			BorderForeground(p.secondary).
			Padding(1, 2).
			MarginBottom(1),

		ActiveCard: lipgloss.NewStyle().
			Border(thick).
			BorderForeground(p.primary).
			Padding(1, 2).
			MarginBottom(1),

		StatusError: lipgloss.NewStyle().
			Foreground(p.errorC).
			Bold(true),

		StatusOK: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),

		Pending: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.primary).
			Background(p.tabBg).
			Padding(0, 2).
			Bold(true),

		InactiveTab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		Help: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			Border(rounded).
			BorderForeground(p.secondary).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			Border(rounded).
			BorderForeground(p.primary).
			Padding(0, 1),
	}
}
