package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tabContent renders the scrollable body of the active tab.
func (m Model) tabContent() string {
	switch m.tab {
	case TabOverview:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderLegend(), "", m.formatter.FormatOverview(m.report))

	case TabDistricts:
		if m.SelectedDistrict() == allDistricts {
			return m.renderAllDistricts()
		}
		out, err := m.formatter.FormatDistrict(m.report, m.SelectedDistrict())
		if err != nil {
			return m.theme.StatusError.Render(err.Error())
		}
		return out

	case TabStrategies:
		out, err := m.formatter.FormatStrategies(m.report, m.SelectedDistrict())
		if err != nil {
			return m.theme.StatusError.Render(err.Error())
		}
		return out + "\n\n" + m.formatter.FormatThemes(m.report)

	case TabAnalytics:
		return m.formatter.FormatAnalytics(m.report)
	}
	return ""
}

// renderAllDistricts renders every district's composition as a shaded table.
func (m Model) renderAllDistricts() string {
	if m.report == nil {
		return m.theme.StatusError.Render("no report available")
	}

	columns := []table.Column{
		{Title: "District", Width: 14},
		{Title: "Province", Width: 14},
	}
	for _, c := range model.Categories {
		columns = append(columns, table.Column{Title: c.String(), Width: 10})
	}

	rows := make([]table.Row, 0, len(m.report.Demographics))
	for _, d := range m.report.Demographics {
		row := table.Row{d.District, string(d.Province)}
		for _, v := range d.Composition().Values() {
			row = append(row, shade(v)+" "+strconv.FormatFloat(v, 'f', m.decimals, 64))
		}
		rows = append(rows, row)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderForeground(m.theme.Border).
		Foreground(m.theme.Primary).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
		table.WithStyles(styles),
	)

	title := m.theme.Title.Render("Religious Demographics Across All Districts")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", t.View())
}

// shade maps a percentage onto a block glyph of matching density.
func shade(v float64) string {
	switch {
	case v >= 75:
		return "█"
	case v >= 50:
		return "▓"
	case v >= 25:
		return "▒"
	case v > 0:
		return "░"
	default:
		return " "
	}
}

// renderTabs renders the tab bar and the rule beneath it.
func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := TabOverview; t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	rule := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render(strings.Repeat("─", max(m.width, lipgloss.Width(bar))))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}

// renderLegend renders the category colour key.
func (m Model) renderLegend() string {
	items := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		items = append(items, m.theme.Category(c).Render("■ "+c.String()))
	}
	return strings.Join(items, "   ")
}

// renderDistrictList renders the active tab's selector, windowed around the
// cursor so it fits the content height.
func (m Model) renderDistrictList() string {
	opts := m.options[m.tab]
	cursor := m.cursors[m.tab]
	height := m.contentHeight()
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, len(opts))

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		name := truncate(opts[i], listWidth-2)
		if i == cursor {
			lines = append(lines, m.theme.Selected.Width(listWidth).Render("▸ "+name))
		} else {
			lines = append(lines, m.theme.Normal.Width(listWidth).Render("  "+name))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No districts"))
	}

	return lipgloss.NewStyle().
		Width(listWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderStatusBar renders the bottom status line.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" District Atlas · %d districts", m.districts)
	if m.tab.listsDistricts() && m.SelectedDistrict() != "" {
		left += " · " + m.SelectedDistrict()
	}
	right := fmt.Sprintf("%3.0f%% ", m.viewport.ScrollPercent()*100)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return m.theme.StatusBar.
		MaxWidth(max(m.width, 1)).
		Render(left + strings.Repeat(" ", gap) + right)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:max(width-1, 0)]) + "…"
}
