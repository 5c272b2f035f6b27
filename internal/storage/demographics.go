package storage

import (
	"fmt"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/sahilm/fuzzy"
)

// DemographicStore is the read-only district table. It is safe for
// concurrent use; every accessor returns copies.
type DemographicStore struct {
	index     map[string]int
	districts []model.District
	provinces []model.Province
}

// NewDemographicStore validates and copies districts into a new store.
func NewDemographicStore(districts []model.District) (*DemographicStore, error) {
	if err := validateDistricts(districts); err != nil {
		return nil, err
	}

	s := &DemographicStore{
		districts: make([]model.District, len(districts)),
		index:     make(map[string]int, len(districts)),
	}
	copy(s.districts, districts)

	seenProvince := make(map[model.Province]bool)
	for i, d := range s.districts {
		s.index[d.Name] = i
		if !seenProvince[d.Province] {
			seenProvince[d.Province] = true
			s.provinces = append(s.provinces, d.Province)
		}
	}

	common.LogDebug("demographic store ready", common.Fields{
		"districts": len(s.districts),
		"provinces": len(s.provinces),
	})

	return s, nil
}

// Len returns the number of districts.
func (s *DemographicStore) Len() int {
	return len(s.districts)
}

// Districts returns every district in table order.
func (s *DemographicStore) Districts() []model.District {
	out := make([]model.District, len(s.districts))
	copy(out, s.districts)
	return out
}

// District looks up a district by name. An exact match wins; otherwise a
// case-insensitive match is accepted. Unknown names fail with
// common.ErrNotFound and carry suggestions when any exist.
func (s *DemographicStore) District(name string) (model.District, error) {
	if i, ok := s.index[name]; ok {
		return s.districts[i], nil
	}

	trimmed := strings.TrimSpace(name)
	for _, d := range s.districts {
		if strings.EqualFold(d.Name, trimmed) {
			return d, nil
		}
	}

	if suggestions := s.Suggest(trimmed, 3); len(suggestions) > 0 {
		return model.District{}, fmt.Errorf("%w: district %q (did you mean %s?)",
			common.ErrNotFound, name, strings.Join(suggestions, ", "))
	}
	return model.District{}, fmt.Errorf("%w: district %q", common.ErrNotFound, name)
}

// Suggest returns up to limit district names that fuzzily match query, best first.
func (s *DemographicStore) Suggest(query string, limit int) []string {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), districtSource(s.districts))

	out := make([]string, 0, min(limit, len(matches)))
	for _, match := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, s.districts[match.Index].Name)
	}
	return out
}

// Provinces returns the distinct provinces in order of first appearance.
func (s *DemographicStore) Provinces() []model.Province {
	out := make([]model.Province, len(s.provinces))
	copy(out, s.provinces)
	return out
}

// InProvince returns the districts of province p in table order.
func (s *DemographicStore) InProvince(p model.Province) []model.District {
	var out []model.District
	for _, d := range s.districts {
		if d.Province == p {
			out = append(out, d)
		}
	}
	return out
}

// districtSource implements fuzzy.Source over lower-cased district names.
type districtSource []model.District

func (d districtSource) String(i int) string {
	return strings.ToLower(d[i].Name)
}

func (d districtSource) Len() int {
	return len(d)
}
