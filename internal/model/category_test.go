package model

import (
	"errors"
	"testing"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact", input: "Buddhist", want: CategoryBuddhist},
		{name: "lower case", input: "hindu", want: CategoryHindu},
		{name: "padded", input: "  Christian ", want: CategoryChristian},
		{name: "upper case", input: "MUSLIM", want: CategoryMuslim},
		{name: "unknown", input: "Jain", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidCategory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryAccessorsFollowCanonicalOrder(t *testing.T) {
	require.Len(t, CategoryAccessors, len(Categories))
	for i, acc := range CategoryAccessors {
		assert.Equal(t, Categories[i], acc.Category)
	}
}

func TestComposition_Get(t *testing.T) {
	c := Composition{Buddhist: 39.67, Muslim: 2.71, Christian: 6.55, Hindu: 51.04}

	assert.Equal(t, 39.67, c.Get(CategoryBuddhist))
	assert.Equal(t, 2.71, c.Get(CategoryMuslim))
	assert.Equal(t, 6.55, c.Get(CategoryChristian))
	assert.Equal(t, 51.04, c.Get(CategoryHindu))
	assert.Equal(t, 0.0, c.Get(Category("Jain")))
	assert.Equal(t, []float64{39.67, 2.71, 6.55, 51.04}, c.Values())
}

func TestComposition_TotalIsNotNormalized(t *testing.T) {
	// Kurunegala's census figures add up to more than 100.
	c := Composition{Buddhist: 92.5, Muslim: 7.7, Christian: 0.85, Hindu: 0.95}
	assert.InDelta(t, 102.0, c.Total(), 1e-9)
}

func TestProvince_Valid(t *testing.T) {
	assert.True(t, ProvinceNorthCentral.Valid())
	assert.True(t, Province("Sabaragamuwa").Valid())
	assert.False(t, Province("Atlantis").Valid())
	assert.Len(t, Provinces, 9)
}

func TestParseProvince(t *testing.T) {
	p, err := ParseProvince(" north central ")
	require.NoError(t, err)
	assert.Equal(t, ProvinceNorthCentral, p)

	_, err = ParseProvince("Atlantis")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
