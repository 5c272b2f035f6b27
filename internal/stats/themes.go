package stats

import "github.com/Veraticus/district-atlas/internal/model"

// ThemeCount is the number of districts whose plans use a strategy theme.
type ThemeCount struct {
	Theme     string `json:"theme" yaml:"theme" toml:"theme"`
	Districts int    `json:"districts" yaml:"districts" toml:"districts"`
}

// ThemeCoverage counts distinct districts per theme, in theme order.
func ThemeCoverage(themes []model.Theme) []ThemeCount {
	out := make([]ThemeCount, 0, len(themes))
	for _, theme := range themes {
		seen := make(map[string]bool, len(theme.Districts))
		for _, d := range theme.Districts {
			seen[d] = true
		}
		out = append(out, ThemeCount{Theme: theme.Name, Districts: len(seen)})
	}
	return out
}
