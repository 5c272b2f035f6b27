// Package stats derives aggregate statistics from the demographic table.
//
// Every function is pure: results depend only on the store the Engine was
// built with, which never changes after construction.
package stats

import (
	"fmt"
	"sort"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/storage"
)

// Engine computes derived statistics over a demographic store.
type Engine struct {
	store *storage.DemographicStore
}

// New creates an engine reading from store.
func New(store *storage.DemographicStore) *Engine {
	return &Engine{store: store}
}

// Store returns the demographic store the engine reads from.
func (e *Engine) Store() *storage.DemographicStore {
	return e.store
}

// NationalAverage returns the unweighted mean of category across every district.
// An empty store averages to 0.
func (e *Engine) NationalAverage(category model.Category) (float64, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidCategory, category)
	}

	districts := e.store.Districts()
	if len(districts) == 0 {
		return 0, nil
	}

	var sum float64
	for _, d := range districts {
		sum += d.Composition.Get(category)
	}
	return sum / float64(len(districts)), nil
}

// NationalComposition returns the national average of all four categories.
func (e *Engine) NationalComposition() model.Composition {
	return mean(e.store.Districts())
}

// MajorityCategory returns the category with the highest percentage in d.
// Categories are scanned in canonical order and only a strictly greater value
// replaces the current leader, so the first maximum wins ties.
func MajorityCategory(d model.District) (model.Category, float64) {
	leader := model.CategoryAccessors[0]
	best := leader.Get(d.Composition)

	for _, acc := range model.CategoryAccessors[1:] {
		if v := acc.Get(d.Composition); v > best {
			leader, best = acc, v
		}
	}
	return leader.Category, best
}

// DiversityIndex returns Simpson's diversity index 1 - Σ(p/100)² over the
// categories of d with a positive share.
func DiversityIndex(d model.District) float64 {
	var sum float64
	for _, p := range d.Composition.Values() {
		if p > 0 {
			share := p / 100
			sum += share * share
		}
	}
	return 1 - sum
}

// ForDistrict derives the per-district statistics row for d.
func ForDistrict(d model.District) model.DistrictStats {
	category, pct := MajorityCategory(d)
	return model.DistrictStats{
		District:           d.Name,
		Province:           d.Province,
		MajorityCategory:   category,
		MajorityPercentage: pct,
		DiversityIndex:     DiversityIndex(d),
		MinorityPercentage: 100 - pct,
	}
}

// DistrictStats returns the statistics row for the named district.
func (e *Engine) DistrictStats(name string) (model.DistrictStats, error) {
	d, err := e.store.District(name)
	if err != nil {
		return model.DistrictStats{}, err
	}
	return ForDistrict(d), nil
}

// AllDistrictStats returns one statistics row per district in table order.
func (e *Engine) AllDistrictStats() []model.DistrictStats {
	districts := e.store.Districts()
	out := make([]model.DistrictStats, 0, len(districts))
	for _, d := range districts {
		out = append(out, ForDistrict(d))
	}
	return out
}

// ProvinceSummary groups districts by province and averages each category.
// Each district counts once regardless of population. Rows are sorted by
// province name.
func (e *Engine) ProvinceSummary() []model.ProvinceSummary {
	groups := make(map[model.Province][]model.District)
	for _, d := range e.store.Districts() {
		groups[d.Province] = append(groups[d.Province], d)
	}

	out := make([]model.ProvinceSummary, 0, len(groups))
	for province, districts := range groups {
		out = append(out, model.ProvinceSummary{
			Province:  province,
			Means:     mean(districts),
			Districts: len(districts),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Province < out[j].Province
	})
	return out
}

// ProvinceSummaryMap returns the province summary keyed by province.
func (e *Engine) ProvinceSummaryMap() map[model.Province]model.Composition {
	summary := e.ProvinceSummary()
	out := make(map[model.Province]model.Composition, len(summary))
	for _, row := range summary {
		out[row.Province] = row.Means
	}
	return out
}

// Province returns the summary for a single province.
func (e *Engine) Province(name model.Province) (model.ProvinceSummary, error) {
	districts := e.store.InProvince(name)
	if len(districts) == 0 {
		return model.ProvinceSummary{}, fmt.Errorf("%w: province %q", common.ErrNotFound, name)
	}
	return model.ProvinceSummary{
		Province:  name,
		Means:     mean(districts),
		Districts: len(districts),
	}, nil
}

// TopNByDiversity returns the n most diverse districts, most diverse first.
// Districts with equal diversity keep their table order. The result has
// min(n, district count) rows; n <= 0 yields none.
func (e *Engine) TopNByDiversity(n int) []model.DistrictStats {
	if n <= 0 {
		return []model.DistrictStats{}
	}

	rows := e.AllDistrictStats()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DiversityIndex > rows[j].DiversityIndex
	})

	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

func mean(districts []model.District) model.Composition {
	if len(districts) == 0 {
		return model.Composition{}
	}

	var sum model.Composition
	for _, d := range districts {
		sum.Buddhist += d.Composition.Buddhist
		sum.Muslim += d.Composition.Muslim
		sum.Christian += d.Composition.Christian
		sum.Hindu += d.Composition.Hindu
	}

	n := float64(len(districts))
	return model.Composition{
		Buddhist:  sum.Buddhist / n,
		Muslim:    sum.Muslim / n,
		Christian: sum.Christian / n,
		Hindu:     sum.Hindu / n,
	}
}
