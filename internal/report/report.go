// Package report assembles the tables the presentation layer renders and
// exports them in several formats.
package report

import (
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/priority"
	"github.com/Veraticus/district-atlas/internal/stats"
	"github.com/Veraticus/district-atlas/internal/storage"
)

// DemographicRow is one district in the flat (district, province, four
// percentages) shape.
type DemographicRow struct {
	District  string         `json:"district" yaml:"district" toml:"district"`
	Province  model.Province `json:"province" yaml:"province" toml:"province"`
	Buddhist  float64        `json:"buddhist" yaml:"buddhist" toml:"buddhist"`
	Muslim    float64        `json:"muslim" yaml:"muslim" toml:"muslim"`
	Christian float64        `json:"christian" yaml:"christian" toml:"christian"`
	Hindu     float64        `json:"hindu" yaml:"hindu" toml:"hindu"`
}

// Report is every table the presentation layer consumes.
type Report struct {
	Strategies    map[string][]string                  `json:"strategies" yaml:"strategies" toml:"strategies"`
	ProvinceMeans map[model.Province]model.Composition `json:"province_means" yaml:"province_means" toml:"province_means"`
	Demographics  []DemographicRow                     `json:"demographics" yaml:"demographics" toml:"demographics"`
	DistrictStats []model.DistrictStats                `json:"district_stats" yaml:"district_stats" toml:"district_stats"`
	Provinces     []model.ProvinceSummary              `json:"provinces" yaml:"provinces" toml:"provinces"`
	TopDiverse    []model.DistrictStats                `json:"top_diverse" yaml:"top_diverse" toml:"top_diverse"`
	Priorities    []model.Priority                     `json:"priorities" yaml:"priorities" toml:"priorities"`
	Themes        []stats.ThemeCount                   `json:"themes" yaml:"themes" toml:"themes"`
	National      model.Composition                    `json:"national" yaml:"national" toml:"national"`
}

// Build computes every table from the stores. topN bounds the diversity ranking.
func Build(engine *stats.Engine, classifier *priority.Classifier, strategies *storage.StrategyStore, topN int) *Report {
	return &Report{
		National:      engine.NationalComposition(),
		Demographics:  Rows(engine.Store().Districts()),
		DistrictStats: engine.AllDistrictStats(),
		Provinces:     engine.ProvinceSummary(),
		ProvinceMeans: engine.ProvinceSummaryMap(),
		TopDiverse:    engine.TopNByDiversity(topN),
		Priorities:    classifier.ClassifyAll(),
		Strategies:    strategies.All(),
		Themes:        stats.ThemeCoverage(strategies.Themes()),
	}
}

// Rows flattens districts into demographic rows, preserving order.
func Rows(districts []model.District) []DemographicRow {
	rows := make([]DemographicRow, 0, len(districts))
	for _, d := range districts {
		rows = append(rows, DemographicRow{
			District:  d.Name,
			Province:  d.Province,
			Buddhist:  d.Composition.Buddhist,
			Muslim:    d.Composition.Muslim,
			Christian: d.Composition.Christian,
			Hindu:     d.Composition.Hindu,
		})
	}
	return rows
}

// ToDistricts converts rows back into districts.
func ToDistricts(rows []DemographicRow) []model.District {
	districts := make([]model.District, 0, len(rows))
	for _, row := range rows {
		districts = append(districts, model.District{
			Name:     row.District,
			Province: row.Province,
			Composition: model.Composition{
				Buddhist:  row.Buddhist,
				Muslim:    row.Muslim,
				Christian: row.Christian,
				Hindu:     row.Hindu,
			},
		})
	}
	return districts
}

// Composition returns the row's percentages as a Composition.
func (r DemographicRow) Composition() model.Composition {
	return model.Composition{
		Buddhist:  r.Buddhist,
		Muslim:    r.Muslim,
		Christian: r.Christian,
		Hindu:     r.Hindu,
	}
}

// Row returns the demographic row for district.
func (r *Report) Row(district string) (DemographicRow, bool) {
	for _, row := range r.Demographics {
		if row.District == district {
			return row, true
		}
	}
	return DemographicRow{}, false
}

// Stats returns the statistics row for district.
func (r *Report) Stats(district string) (model.DistrictStats, bool) {
	for _, row := range r.DistrictStats {
		if row.District == district {
			return row, true
		}
	}
	return model.DistrictStats{}, false
}

// StrategiesFor returns the strategies for district, empty when none exist.
func (r *Report) StrategiesFor(district string) []string {
	list, ok := r.Strategies[district]
	if !ok {
		return []string{}
	}
	return list
}

// DistrictNames returns every district name in table order.
func (r *Report) DistrictNames() []string {
	names := make([]string, 0, len(r.Demographics))
	for _, row := range r.Demographics {
		names = append(names, row.District)
	}
	return names
}
