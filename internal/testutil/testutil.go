// Package testutil provides fixture builders for district and strategy data.
//
// Example:
//
//	atlas := testutil.NewBuilder(t).
//		WithFixture(testutil.FixtureTies).
//		WithStrategies("Alpha", "Temple dialogues").
//		Build()
//
//	engine := stats.New(atlas.Demographics)
package testutil

import (
	"testing"

	"github.com/Veraticus/district-atlas/internal/dataset"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/storage"
)

// Atlas bundles the two stores built for a test.
type Atlas struct {
	Demographics *storage.DemographicStore
	Strategies   *storage.StrategyStore
	Districts    []model.District
}

// Builder assembles district and strategy fixtures.
type Builder struct {
	t          *testing.T
	strategies map[string][]string
	districts  []model.District
	themes     []model.Theme
}

// NewBuilder returns an empty builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:          t,
		strategies: make(map[string][]string),
	}
}

// WithDistrict adds one district. Percentages are given in canonical order.
func (b *Builder) WithDistrict(name string, province model.Province, buddhist, muslim, christian, hindu float64) *Builder {
	b.districts = append(b.districts, model.District{
		Name:     name,
		Province: province,
		Composition: model.Composition{
			Buddhist:  buddhist,
			Muslim:    muslim,
			Christian: christian,
			Hindu:     hindu,
		},
	})
	return b
}

// WithFixture adds every district of a predefined fixture.
func (b *Builder) WithFixture(f Fixture) *Builder {
	b.districts = append(b.districts, f.Districts...)
	return b
}

// WithStrategies appends strategies for a district.
func (b *Builder) WithStrategies(district string, strategies ...string) *Builder {
	b.strategies[district] = append(b.strategies[district], strategies...)
	return b
}

// WithTheme adds a strategy theme.
func (b *Builder) WithTheme(name string, districts ...string) *Builder {
	b.themes = append(b.themes, model.Theme{Name: name, Districts: districts})
	return b
}

// Build constructs both stores, failing the test on validation errors.
func (b *Builder) Build() Atlas {
	b.t.Helper()

	demographics, err := storage.NewDemographicStore(b.districts)
	if err != nil {
		b.t.Fatalf("failed to build demographic store: %v", err)
	}

	return Atlas{
		Demographics: demographics,
		Strategies:   storage.NewStrategyStore(b.strategies, b.themes),
		Districts:    demographics.Districts(),
	}
}

// Embedded builds stores from the tables shipped in the binary.
func Embedded(t *testing.T) Atlas {
	t.Helper()

	districts, err := dataset.Districts()
	if err != nil {
		t.Fatalf("failed to load embedded districts: %v", err)
	}
	strategies, err := dataset.Strategies()
	if err != nil {
		t.Fatalf("failed to load embedded strategies: %v", err)
	}
	themes, err := dataset.Themes()
	if err != nil {
		t.Fatalf("failed to load embedded themes: %v", err)
	}

	demographics, err := storage.NewDemographicStore(districts)
	if err != nil {
		t.Fatalf("failed to build demographic store: %v", err)
	}

	return Atlas{
		Demographics: demographics,
		Strategies:   storage.NewStrategyStore(strategies, themes),
		Districts:    demographics.Districts(),
	}
}
