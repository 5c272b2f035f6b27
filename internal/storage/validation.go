// Package storage provides the immutable in-memory tables the rest of the
// application reads from.
package storage

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
)

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", common.ErrValidation, paramName)
	}
	return nil
}

// validateDistricts validates every district and rejects duplicate names.
func validateDistricts(districts []model.District) error {
	seen := make(map[string]int, len(districts))
	for i, d := range districts {
		if err := validateDistrict(d); err != nil {
			return fmt.Errorf("district at index %d: %w", i, err)
		}
		if prev, ok := seen[d.Name]; ok {
			return fmt.Errorf("%w: district %q appears at index %d and %d", common.ErrValidation, d.Name, prev, i)
		}
		seen[d.Name] = i
	}
	return nil
}

// validateDistrict validates a single district record.
func validateDistrict(d model.District) error {
	if err := validateString(d.Name, "district name"); err != nil {
		return err
	}
	if !d.Province.Valid() {
		return fmt.Errorf("%w: district %q has unknown province %q", common.ErrValidation, d.Name, d.Province)
	}
	for _, acc := range model.CategoryAccessors {
		v := acc.Get(d.Composition)
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return fmt.Errorf("%w: district %q has non-finite %s percentage %v",
				common.ErrValidation, d.Name, acc.Category, v)
		case v < 0:
			return fmt.Errorf("%w: district %q has negative %s percentage %v",
				common.ErrValidation, d.Name, acc.Category, v)
		case v > 100:
			return fmt.Errorf("%w: district %q has %s percentage %v above 100",
				common.ErrValidation, d.Name, acc.Category, v)
		}
	}
	return nil
}
