package themes

import (
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the dashboard.
type Theme struct {
	Categories  map[model.Category]lipgloss.Color
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Selected    lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Error       lipgloss.Color
}

// categoryColors are the per-religion colours shared by every theme.
var categoryColors = map[model.Category]lipgloss.Color{
	model.CategoryBuddhist:  lipgloss.Color("#FF6B6B"),
	model.CategoryMuslim:    lipgloss.Color("#4ECDC4"),
	model.CategoryChristian: lipgloss.Color("#45B7D1"),
	model.CategoryHindu:     lipgloss.Color("#96CEB4"),
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#7c3aed",
	secondary:  "#a78bfa",
	muted:      "#737373",
	border:     "#404040",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	errorColor: "#ef4444",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	secondary:  "#f5c2e7",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	errorColor: "#f38ba8",
})

type palette struct {
	primary    lipgloss.Color
	secondary  lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	errorColor lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Categories: categoryColors,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Error:      p.errorColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.foreground).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.border),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
	}
}

// Category returns the foreground style for a religious category.
func (t Theme) Category(c model.Category) lipgloss.Style {
	if color, ok := t.Categories[c]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
