package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/dataset"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDistricts() []model.District {
	return []model.District{
		{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: 70.66, Muslim: 11.76, Christian: 9.56, Hindu: 7.89}},
		{Name: "Kandy", Province: model.ProvinceCentral, Composition: model.Composition{Buddhist: 73.0, Muslim: 14.0, Christian: 2.5, Hindu: 9.5}},
		{Name: "Nuwara Eliya", Province: model.ProvinceCentral, Composition: model.Composition{Buddhist: 39.67, Muslim: 2.71, Christian: 6.55, Hindu: 51.04}},
		{Name: "Gampaha", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: 71.48, Muslim: 5.01, Christian: 21.19, Hindu: 2.28}},
	}
}

func TestNewDemographicStore(t *testing.T) {
	store, err := NewDemographicStore(sampleDistricts())
	require.NoError(t, err)

	assert.Equal(t, 4, store.Len())
	assert.Equal(t, sampleDistricts(), store.Districts())
	assert.Equal(t, []model.Province{model.ProvinceWestern, model.ProvinceCentral}, store.Provinces())
}

func TestNewDemographicStore_Validation(t *testing.T) {
	tests := []struct {
		name      string
		districts []model.District
		wantMsg   string
	}{
		{
			name: "negative percentage",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: 90, Muslim: -1}},
			},
			wantMsg: "negative Muslim percentage",
		},
		{
			name: "NaN percentage",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: math.NaN(), Muslim: 10}},
			},
			wantMsg: "non-finite Buddhist percentage",
		},
		{
			name: "infinite percentage",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Hindu: math.Inf(1)}},
			},
			wantMsg: "non-finite Hindu percentage",
		},
		{
			name: "negative infinite percentage",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Christian: math.Inf(-1)}},
			},
			wantMsg: "non-finite Christian percentage",
		},
		{
			name: "percentage above 100",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern, Composition: model.Composition{Buddhist: 150}},
			},
			wantMsg: "Buddhist percentage 150 above 100",
		},
		{
			name: "empty name",
			districts: []model.District{
				{Name: "  ", Province: model.ProvinceWestern},
			},
			wantMsg: "district name cannot be empty",
		},
		{
			name: "unknown province",
			districts: []model.District{
				{Name: "Colombo", Province: "Atlantis"},
			},
			wantMsg: "unknown province",
		},
		{
			name: "duplicate district",
			districts: []model.District{
				{Name: "Colombo", Province: model.ProvinceWestern},
				{Name: "Colombo", Province: model.ProvinceWestern},
			},
			wantMsg: "appears at index 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewDemographicStore(tt.districts)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewDemographicStore_RejectsDecodedOutOfRangeValues(t *testing.T) {
	docs := map[string]string{
		"nan":      "districts:\n  - {name: NaNville, province: Uva, composition: {buddhist: .nan, muslim: 10}}\n",
		"overflow": "districts:\n  - {name: Overflow, province: Uva, composition: {buddhist: 150}}\n",
		"inf":      "districts:\n  - {name: Infty, province: Uva, composition: {hindu: .inf}}\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			districts, err := dataset.DecodeDistricts(strings.NewReader(doc))
			require.NoError(t, err)
			require.Len(t, districts, 1)

			_, err = NewDemographicStore(districts)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestNewDemographicStore_EmptyIsValid(t *testing.T) {
	store, err := NewDemographicStore(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Districts())
}

func TestDemographicStore_District(t *testing.T) {
	store, err := NewDemographicStore(sampleDistricts())
	require.NoError(t, err)

	t.Run("exact", func(t *testing.T) {
		d, err := store.District("Nuwara Eliya")
		require.NoError(t, err)
		assert.Equal(t, 51.04, d.Composition.Hindu)
	})

	t.Run("case insensitive", func(t *testing.T) {
		d, err := store.District(" nuwara eliya ")
		require.NoError(t, err)
		assert.Equal(t, "Nuwara Eliya", d.Name)
	})

	t.Run("unknown with suggestion", func(t *testing.T) {
		_, err := store.District("Nuwara")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Contains(t, err.Error(), "did you mean Nuwara Eliya?")
	})

	t.Run("unknown without suggestion", func(t *testing.T) {
		_, err := store.District("Xyzzy")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.NotContains(t, err.Error(), "did you mean")
	})
}

func TestDemographicStore_Suggest(t *testing.T) {
	store, err := NewDemographicStore(sampleDistricts())
	require.NoError(t, err)

	assert.Equal(t, []string{"Gampaha"}, store.Suggest("gmp", 3))
	assert.Nil(t, store.Suggest("", 3))
	assert.Nil(t, store.Suggest("kandy", 0))
	assert.Len(t, store.Suggest("a", 2), 2)
}

func TestDemographicStore_InProvince(t *testing.T) {
	store, err := NewDemographicStore(sampleDistricts())
	require.NoError(t, err)

	central := store.InProvince(model.ProvinceCentral)
	require.Len(t, central, 2)
	assert.Equal(t, "Kandy", central[0].Name)
	assert.Equal(t, "Nuwara Eliya", central[1].Name)
	assert.Empty(t, store.InProvince(model.ProvinceUva))
}

func TestDemographicStore_IsImmutable(t *testing.T) {
	input := sampleDistricts()
	store, err := NewDemographicStore(input)
	require.NoError(t, err)

	input[0].Composition.Buddhist = 0
	got := store.Districts()
	got[1].Name = "Changed"

	d, err := store.District("Colombo")
	require.NoError(t, err)
	assert.Equal(t, 70.66, d.Composition.Buddhist)
	assert.Equal(t, "Kandy", store.Districts()[1].Name)
}
