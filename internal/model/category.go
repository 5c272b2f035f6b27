package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
)

// Category is one of the four religious categories tracked per district.
type Category string

const (
	// CategoryBuddhist is the Buddhist share of a district.
	CategoryBuddhist Category = "Buddhist"
	// CategoryMuslim is the Muslim share of a district.
	CategoryMuslim Category = "Muslim"
	// CategoryChristian is the Christian share of a district.
	CategoryChristian Category = "Christian"
	// CategoryHindu is the Hindu share of a district.
	CategoryHindu Category = "Hindu"
)

// Categories lists every category in canonical order. Anything that walks
// categories (argmax, tables, exports) must use this order.
var Categories = []Category{
	CategoryBuddhist,
	CategoryMuslim,
	CategoryChristian,
	CategoryHindu,
}

// CategoryAccessor pairs a category with the function that reads it from a Composition.
type CategoryAccessor struct {
	Get      func(Composition) float64
	Category Category
}

// CategoryAccessors is the ordered accessor list used for argmax. First entry wins ties.
var CategoryAccessors = []CategoryAccessor{
	{Category: CategoryBuddhist, Get: func(c Composition) float64 { return c.Buddhist }},
	{Category: CategoryMuslim, Get: func(c Composition) float64 { return c.Muslim }},
	{Category: CategoryChristian, Get: func(c Composition) float64 { return c.Christian }},
	{Category: CategoryHindu, Get: func(c Composition) float64 { return c.Hindu }},
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for _, known := range Categories {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidCategory, name)
}
