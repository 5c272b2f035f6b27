package testutil

import "github.com/Veraticus/district-atlas/internal/model"

// Fixture is a named, predefined set of districts.
type Fixture struct {
	Name      string
	Districts []model.District
}

// Predefined fixtures for common test scenarios.
var (
	// FixtureMinimal has two districts in two provinces.
	FixtureMinimal = Fixture{
		Name: "minimal",
		Districts: []model.District{
			{Name: "Alpha", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: 80, Muslim: 10, Christian: 5, Hindu: 5}},
			{Name: "Beta", Province: model.ProvinceNorthern, Composition: model.Composition{Buddhist: 5, Muslim: 5, Christian: 20, Hindu: 70}},
		},
	}

	// FixtureTies has districts whose majority and diversity values tie.
	// Gamma and Delta share a diversity index; Epsilon is an exact four-way tie.
	FixtureTies = Fixture{
		Name: "ties",
		Districts: []model.District{
			{Name: "Gamma", Province: model.ProvinceEastern, Composition: model.Composition{Buddhist: 50, Muslim: 50}},
			{Name: "Delta", Province: model.ProvinceEastern, Composition: model.Composition{Christian: 50, Hindu: 50}},
			{Name: "Epsilon", Province: model.ProvinceUva, Composition: model.Composition{Buddhist: 25, Muslim: 25, Christian: 25, Hindu: 25}},
			{Name: "Zeta", Province: model.ProvinceUva, Composition: model.Composition{Muslim: 40, Christian: 40, Hindu: 20}},
		},
	}

	// FixtureMonolithic has a single district that is entirely one category.
	FixtureMonolithic = Fixture{
		Name: "monolithic",
		Districts: []model.District{
			{Name: "Eta", Province: model.ProvinceSouthern, Composition: model.Composition{Buddhist: 100}},
		},
	}
)
