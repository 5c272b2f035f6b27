package themes

import (
	"testing"

	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("no-such-theme").Primary)
}

func TestTheme_CategoryColors(t *testing.T) {
	for _, theme := range []Theme{Default, CatppuccinMocha} {
		assert.Len(t, theme.Categories, len(model.Categories))
		assert.Equal(t, lipgloss.Color("#FF6B6B"), theme.Categories[model.CategoryBuddhist])
		assert.Equal(t, lipgloss.Color("#96CEB4"), theme.Categories[model.CategoryHindu])
		assert.Equal(t, lipgloss.Color("#4ECDC4"), theme.Category(model.CategoryMuslim).GetForeground())
		assert.Equal(t, theme.Muted, theme.Category(model.Category("Jain")).GetForeground())
	}
}
