package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
)

// Province is a first-level administrative unit grouping several districts.
type Province string

// The nine provinces of Sri Lanka.
const (
	ProvinceWestern      Province = "Western"
	ProvinceCentral      Province = "Central"
	ProvinceSouthern     Province = "Southern"
	ProvinceEastern      Province = "Eastern"
	ProvinceNorthCentral Province = "North Central"
	ProvinceNorthWestern Province = "North Western"
	ProvinceNorthern     Province = "Northern"
	ProvinceUva          Province = "Uva"
	ProvinceSabaragamuwa Province = "Sabaragamuwa"
)

// Provinces lists the nine provinces.
var Provinces = []Province{
	ProvinceWestern,
	ProvinceCentral,
	ProvinceSouthern,
	ProvinceEastern,
	ProvinceNorthCentral,
	ProvinceNorthWestern,
	ProvinceNorthern,
	ProvinceUva,
	ProvinceSabaragamuwa,
}

// String returns the province name.
func (p Province) String() string {
	return string(p)
}

// Valid reports whether p is one of the nine provinces.
func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}

// ParseProvince resolves a province name case-insensitively.
func ParseProvince(name string) (Province, error) {
	trimmed := strings.TrimSpace(name)
	for _, known := range Provinces {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: province %q", common.ErrNotFound, name)
}

// Composition holds the recorded percentage of each category in a district.
// Values are approximate census figures and are not guaranteed to sum to 100.
type Composition struct {
	Buddhist  float64 `json:"buddhist" yaml:"buddhist" toml:"buddhist"`
	Muslim    float64 `json:"muslim" yaml:"muslim" toml:"muslim"`
	Christian float64 `json:"christian" yaml:"christian" toml:"christian"`
	Hindu     float64 `json:"hindu" yaml:"hindu" toml:"hindu"`
}

// Get returns the percentage recorded for category c, or 0 for an unknown category.
func (c Composition) Get(category Category) float64 {
	for _, acc := range CategoryAccessors {
		if acc.Category == category {
			return acc.Get(c)
		}
	}
	return 0
}

// Values returns the four percentages in canonical category order.
func (c Composition) Values() []float64 {
	values := make([]float64, 0, len(CategoryAccessors))
	for _, acc := range CategoryAccessors {
		values = append(values, acc.Get(c))
	}
	return values
}

// Total returns the sum of the four percentages.
func (c Composition) Total() float64 {
	var total float64
	for _, v := range c.Values() {
		total += v
	}
	return total
}

// District is a second-level administrative unit and its religious composition.
type District struct {
	Name        string
	Province    Province
	Composition Composition
}
