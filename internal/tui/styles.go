package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/convkit/internal/config"
)

// Palette is the set of colours for one theme.
type Palette struct {
	Title     lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
	Highlight lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
}

//nolint:gochecknoglobals // Fixed palettes, read-only after init.
var (
	darkPalette = Palette{
		Title:     lipgloss.Color("39"),
		Label:     lipgloss.Color("250"),
		Value:     lipgloss.Color("255"),
		Highlight: lipgloss.Color("212"),
		Muted:     lipgloss.Color("241"),
		Error:     lipgloss.Color("203"),
		Border:    lipgloss.Color("63"),
	}
	lightPalette = Palette{
		Title:     lipgloss.Color("25"),
		Label:     lipgloss.Color("238"),
		Value:     lipgloss.Color("232"),
		Highlight: lipgloss.Color("161"),
		Muted:     lipgloss.Color("245"),
		Error:     lipgloss.Color("160"),
		Border:    lipgloss.Color("33"),
	}
)

// PaletteFor returns the palette for theme.
func PaletteFor(theme config.Theme) Palette {
	if theme == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Styles are the rendered lipgloss styles of the converter view.
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	Selector    lipgloss.Style
	Focused     lipgloss.Style
	Result      lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
	ErrorStatus lipgloss.Style
	Box         lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme config.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(p.Title).Bold(true),
		Tab:         lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(p.Highlight).Bold(true).Underline(true).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(p.Label).Width(labelWidth),
		Selector:    lipgloss.NewStyle().Foreground(p.Value),
		Focused:     lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Result:      lipgloss.NewStyle().Foreground(p.Value).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(p.Muted),
		Status:      lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		ErrorStatus: lipgloss.NewStyle().Foreground(p.Error),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}
