package stats_test

import (
	"testing"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/stats"
	"github.com/Veraticus/district-atlas/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func districtNames(rows []model.DistrictStats) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.District)
	}
	return names
}

func TestMajorityCategory(t *testing.T) {
	tests := []struct {
		name     string
		district model.District
		wantCat  model.Category
		wantPct  float64
	}{
		{
			name:     "Hindu majority",
			district: model.District{Name: "Nuwara Eliya", Composition: model.Composition{Buddhist: 39.67, Muslim: 2.71, Christian: 6.55, Hindu: 51.04}},
			wantCat:  model.CategoryHindu,
			wantPct:  51.04,
		},
		{
			name:     "Christian majority",
			district: model.District{Name: "Mannar", Composition: model.Composition{Buddhist: 5, Muslim: 10, Christian: 60, Hindu: 25}},
			wantCat:  model.CategoryChristian,
			wantPct:  60,
		},
		{
			name:     "two-way tie goes to the earlier category",
			district: model.District{Name: "Zeta", Composition: model.Composition{Muslim: 40, Christian: 40, Hindu: 20}},
			wantCat:  model.CategoryMuslim,
			wantPct:  40,
		},
		{
			name:     "four-way tie goes to Buddhist",
			district: model.District{Name: "Epsilon", Composition: model.Composition{Buddhist: 25, Muslim: 25, Christian: 25, Hindu: 25}},
			wantCat:  model.CategoryBuddhist,
			wantPct:  25,
		},
		{
			name:     "all zero",
			district: model.District{Name: "Empty"},
			wantCat:  model.CategoryBuddhist,
			wantPct:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCat, gotPct := stats.MajorityCategory(tt.district)
			assert.Equal(t, tt.wantCat, gotCat)
			assert.Equal(t, tt.wantPct, gotPct)
		})
	}
}

func TestDiversityIndex(t *testing.T) {
	tests := []struct {
		name        string
		composition model.Composition
		want        float64
	}{
		{name: "Matara", composition: model.Composition{Buddhist: 95.0, Muslim: 3.0, Christian: 0.7, Hindu: 2.0}, want: 0.096151},
		{name: "single category", composition: model.Composition{Buddhist: 100}, want: 0},
		{name: "even split", composition: model.Composition{Buddhist: 25, Muslim: 25, Christian: 25, Hindu: 25}, want: 0.75},
		{name: "two way", composition: model.Composition{Christian: 50, Hindu: 50}, want: 0.5},
		{name: "empty", composition: model.Composition{}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.DiversityIndex(model.District{Name: tt.name, Composition: tt.composition})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestStats_EmbeddedTableProperties(t *testing.T) {
	atlas := testutil.Embedded(t)
	engine := stats.New(atlas.Demographics)

	rows := engine.AllDistrictStats()
	require.Len(t, rows, 25)

	for i, row := range rows {
		d := atlas.Districts[i]
		assert.Equal(t, d.Name, row.District)
		assert.Equal(t, d.Province, row.Province)
		assert.GreaterOrEqual(t, row.DiversityIndex, 0.0, row.District)
		assert.LessOrEqual(t, row.DiversityIndex, 1.0, row.District)
		assert.Equal(t, 100-row.MajorityPercentage, row.MinorityPercentage, row.District)
		for _, v := range d.Composition.Values() {
			assert.GreaterOrEqual(t, row.MajorityPercentage, v, row.District)
		}
	}
}

func TestEngine_DistrictStats(t *testing.T) {
	engine := stats.New(testutil.Embedded(t).Demographics)

	nuwara, err := engine.DistrictStats("Nuwara Eliya")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryHindu, nuwara.MajorityCategory)
	assert.Equal(t, 51.04, nuwara.MajorityPercentage)
	assert.InDelta(t, 48.96, nuwara.MinorityPercentage, 1e-9)

	matara, err := engine.DistrictStats("Matara")
	require.NoError(t, err)
	assert.InDelta(t, 0.0962, matara.DiversityIndex, 1e-4)

	_, err = engine.DistrictStats("Atlantis")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEngine_NationalAverage(t *testing.T) {
	engine := stats.New(testutil.Embedded(t).Demographics)

	tests := []struct {
		category model.Category
		want     float64
	}{
		{category: model.CategoryBuddhist, want: 57.05},
		{category: model.CategoryMuslim, want: 10.7076},
		{category: model.CategoryChristian, want: 9.5572},
		{category: model.CategoryHindu, want: 22.3752},
	}

	national := engine.NationalComposition()
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got, err := engine.NationalAverage(tt.category)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, got, national.Get(tt.category), 1e-12)
		})
	}

	_, err := engine.NationalAverage(model.Category("Jain"))
	assert.ErrorIs(t, err, common.ErrInvalidCategory)
}

func TestEngine_NationalAverageTracksSingleChange(t *testing.T) {
	before := testutil.NewBuilder(t).WithFixture(testutil.FixtureMinimal).Build()
	after := testutil.NewBuilder(t).
		WithDistrict("Alpha", model.ProvinceWestern, 40, 10, 5, 5).
		WithDistrict("Beta", model.ProvinceNorthern, 5, 5, 20, 70).
		Build()

	oldAvg, err := stats.New(before.Demographics).NationalAverage(model.CategoryBuddhist)
	require.NoError(t, err)
	newAvg, err := stats.New(after.Demographics).NationalAverage(model.CategoryBuddhist)
	require.NoError(t, err)

	assert.InDelta(t, (40.0-80.0)/2, newAvg-oldAvg, 1e-9)
}

func TestEngine_EmptyStore(t *testing.T) {
	engine := stats.New(testutil.NewBuilder(t).Build().Demographics)

	avg, err := engine.NationalAverage(model.CategoryHindu)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, model.Composition{}, engine.NationalComposition())
	assert.Empty(t, engine.ProvinceSummary())
	assert.Empty(t, engine.TopNByDiversity(5))
}

func TestEngine_ProvinceSummary(t *testing.T) {
	engine := stats.New(testutil.Embedded(t).Demographics)

	summary := engine.ProvinceSummary()
	require.Len(t, summary, 9)

	provinces := make([]model.Province, 0, len(summary))
	for _, row := range summary {
		provinces = append(provinces, row.Province)
	}
	want := []model.Province{
		model.ProvinceCentral, model.ProvinceEastern, model.ProvinceNorthCentral,
		model.ProvinceNorthWestern, model.ProvinceNorthern, model.ProvinceSabaragamuwa,
		model.ProvinceSouthern, model.ProvinceUva, model.ProvinceWestern,
	}
	if diff := cmp.Diff(want, provinces); diff != "" {
		t.Errorf("province order mismatch (-want +got):\n%s", diff)
	}

	northern, err := engine.Province(model.ProvinceNorthern)
	require.NoError(t, err)
	assert.Equal(t, 5, northern.Districts)
	assert.InDelta(t, 3.8, northern.Means.Buddhist, 1e-9)
	assert.InDelta(t, 6.2, northern.Means.Muslim, 1e-9)
	assert.InDelta(t, 27.0, northern.Means.Christian, 1e-9)
	assert.InDelta(t, 63.0, northern.Means.Hindu, 1e-9)

	byProvince := engine.ProvinceSummaryMap()
	assert.Len(t, byProvince, 9)
	assert.InDelta(t, 89.85, byProvince[model.ProvinceNorthCentral].Buddhist, 1e-9)

	_, err = engine.Province("Atlantis")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEngine_ProvinceSummaryIsUnweighted(t *testing.T) {
	atlas := testutil.NewBuilder(t).
		WithDistrict("Big", model.ProvinceUva, 90, 10, 0, 0).
		WithDistrict("Small", model.ProvinceUva, 10, 90, 0, 0).
		Build()

	summary := stats.New(atlas.Demographics).ProvinceSummary()
	require.Len(t, summary, 1)
	assert.Equal(t, model.Composition{Buddhist: 50, Muslim: 50}, summary[0].Means)
}

func TestEngine_TopNByDiversity(t *testing.T) {
	engine := stats.New(testutil.Embedded(t).Demographics)

	top3 := engine.TopNByDiversity(3)
	assert.Equal(t, []string{"Puttalam", "Trincomalee", "Ampara"}, districtNames(top3))
	for i := 1; i < len(top3); i++ {
		assert.GreaterOrEqual(t, top3[i-1].DiversityIndex, top3[i].DiversityIndex)
	}

	assert.Len(t, engine.TopNByDiversity(100), 25)
	assert.Empty(t, engine.TopNByDiversity(0))
	assert.Empty(t, engine.TopNByDiversity(-2))
}

func TestEngine_TopNByDiversityTiesKeepTableOrder(t *testing.T) {
	atlas := testutil.NewBuilder(t).WithFixture(testutil.FixtureTies).Build()
	engine := stats.New(atlas.Demographics)

	all := engine.TopNByDiversity(10)
	assert.Equal(t, []string{"Epsilon", "Zeta", "Gamma", "Delta"}, districtNames(all))

	top3 := engine.TopNByDiversity(3)
	assert.Equal(t, []string{"Epsilon", "Zeta", "Gamma"}, districtNames(top3))
}

func TestThemeCoverage(t *testing.T) {
	themes := testutil.Embedded(t).Strategies.Themes()

	got := stats.ThemeCoverage(themes)
	want := []stats.ThemeCount{
		{Theme: "Temple/Religious Partnerships", Districts: 4},
		{Theme: "Interfaith Dialogue", Districts: 3},
		{Theme: "Economic Development", Districts: 4},
		{Theme: "Health & Social Services", Districts: 2},
		{Theme: "Youth & Education", Districts: 3},
		{Theme: "Environmental Initiatives", Districts: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ThemeCoverage mismatch (-want +got):\n%s", diff)
	}

	dup := stats.ThemeCoverage([]model.Theme{{Name: "Dup", Districts: []string{"Kandy", "Kandy"}}})
	assert.Equal(t, 1, dup[0].Districts)
}
