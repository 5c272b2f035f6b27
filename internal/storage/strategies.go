package storage

import (
	"sort"

	"github.com/Veraticus/district-atlas/internal/model"
)

// StrategyStore is the read-only table of engagement strategies and themes.
// Districts without entries are not an error; they simply have no strategies.
type StrategyStore struct {
	strategies map[string]model.StrategyList
	themes     []model.Theme
}

// NewStrategyStore copies strategies and themes into a new store.
func NewStrategyStore(strategies map[string][]string, themes []model.Theme) *StrategyStore {
	s := &StrategyStore{
		strategies: make(map[string]model.StrategyList, len(strategies)),
		themes:     make([]model.Theme, 0, len(themes)),
	}

	for district, list := range strategies {
		if len(list) == 0 {
			continue
		}
		s.strategies[district] = append(model.StrategyList(nil), list...)
	}

	for _, theme := range themes {
		s.themes = append(s.themes, model.Theme{
			Name:      theme.Name,
			Districts: append([]string(nil), theme.Districts...),
		})
	}

	return s
}

// Strategies returns the ordered strategies for district, or an empty list.
func (s *StrategyStore) Strategies(district string) []string {
	list := s.strategies[district]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// HasStrategies reports whether district has at least one strategy.
func (s *StrategyStore) HasStrategies(district string) bool {
	return len(s.strategies[district]) > 0
}

// Count returns the number of strategies recorded for district.
func (s *StrategyStore) Count(district string) int {
	return len(s.strategies[district])
}

// Districts returns the names of districts with strategies, sorted.
func (s *StrategyStore) Districts() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the full district to strategies mapping.
func (s *StrategyStore) All() map[string][]string {
	out := make(map[string][]string, len(s.strategies))
	for name, list := range s.strategies {
		out[name] = append([]string(nil), list...)
	}
	return out
}

// Themes returns the strategy themes in table order.
func (s *StrategyStore) Themes() []model.Theme {
	out := make([]model.Theme, 0, len(s.themes))
	for _, theme := range s.themes {
		out = append(out, model.Theme{
			Name:      theme.Name,
			Districts: append([]string(nil), theme.Districts...),
		})
	}
	return out
}
