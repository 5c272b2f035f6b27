// Package tui implements the interactive district dashboard.
package tui

import (
	"sort"

	"github.com/Veraticus/district-atlas/internal/report"
	"github.com/Veraticus/district-atlas/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies one dashboard page.
type Tab int

const (
	TabOverview Tab = iota
	TabDistricts
	TabStrategies
	TabAnalytics
	tabCount
)

var tabNames = [...]string{"Overview", "Districts", "Strategies", "Analytics"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// listsDistricts reports whether the tab shows the district selector.
func (t Tab) listsDistricts() bool {
	return t == TabDistricts || t == TabStrategies
}

const (
	listWidth    = 18
	headerHeight = 2
	statusHeight = 1

	// allDistricts is the selector entry that shows every district at once.
	allDistricts = "All"
)

// Model holds the dashboard state.
type Model struct {
	report    *report.Report
	formatter *report.Formatter
	theme     themes.Theme
	keymap    KeyMap
	help      help.Model
	viewport  viewport.Model
	// options holds the selector entries of the district-listing tabs,
	// alphabetical, with allDistricts first on the Districts tab.
	options   [tabCount][]string
	cursors   [tabCount]int
	districts int
	decimals  int
	tab       Tab
	width     int
	height    int
	quitting  bool
}

// New creates a dashboard model over r.
func New(r *report.Report, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		report:    r,
		formatter: report.NewFormatter(cfg.Decimals),
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		decimals:  cfg.Decimals,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	if r != nil {
		names := r.DistrictNames()
		sort.Strings(names)
		m.districts = len(names)
		m.options[TabDistricts] = append([]string{allDistricts}, names...)

		withStrategies := make([]string, 0, len(r.Strategies))
		for name := range r.Strategies {
			withStrategies = append(withStrategies, name)
		}
		sort.Strings(withStrategies)
		m.options[TabStrategies] = withStrategies
	}
	m.help.Width = m.width
	m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.viewport.View()
	if m.tab.listsDistricts() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDistrictList(), " ", body)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		body,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

// ActiveTab returns the tab currently shown.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// SelectedDistrict returns the entry highlighted in the active tab's
// selector, or "" when the tab has none.
func (m Model) SelectedDistrict() string {
	opts := m.options[m.tab]
	i := m.cursors[m.tab]
	if i < 0 || i >= len(opts) {
		return ""
	}
	return opts[i]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.NextTab):
		m.setTab((m.tab + 1) % tabCount)
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.setTab((m.tab + tabCount - 1) % tabCount)
		return m, nil

	case key.Matches(msg, m.keymap.JumpTab):
		if len(msg.Runes) == 1 {
			m.setTab(Tab(msg.Runes[0] - '1'))
		}
		return m, nil
	}

	if m.tab.listsDistricts() {
		switch {
		case key.Matches(msg, m.keymap.Up):
			m.selectDistrict(m.cursors[m.tab] - 1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.selectDistrict(m.cursors[m.tab] + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setTab(t Tab) {
	if t < 0 || t >= tabCount || t == m.tab {
		return
	}
	m.tab = t
	m.viewport.GotoTop()
	m.refresh()
}

func (m *Model) selectDistrict(i int) {
	opts := m.options[m.tab]
	if len(opts) == 0 {
		return
	}
	i = min(max(i, 0), len(opts)-1)
	if i == m.cursors[m.tab] {
		return
	}
	m.cursors[m.tab] = i
	m.viewport.GotoTop()
	m.refresh()
}

// refresh resizes the viewport and re-renders the active tab into it.
func (m *Model) refresh() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(m.tabContent())
}

func (m Model) contentWidth() int {
	w := m.width
	if m.tab.listsDistricts() {
		w -= listWidth + 1
	}
	return max(w, 1)
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight - statusHeight - lipgloss.Height(m.help.View(m.keymap))
	return max(h, 1)
}
