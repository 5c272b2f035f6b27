// Package dataset holds the district tables baked into the binary and decodes
// them into model types.
package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

const (
	districtsFile  = "data/districts.yaml"
	strategiesFile = "data/strategies.yaml"
	themesFile     = "data/themes.yaml"
)

type districtDocument struct {
	Districts []districtRecord `yaml:"districts"`
}

type districtRecord struct {
	Name        string            `yaml:"name"`
	Province    string            `yaml:"province"`
	Composition model.Composition `yaml:"composition"`
}

type strategyDocument struct {
	Strategies map[string][]string `yaml:"strategies"`
}

type themeDocument struct {
	Themes []themeRecord `yaml:"themes"`
}

type themeRecord struct {
	Name      string   `yaml:"name"`
	Districts []string `yaml:"districts"`
}

// DecodeDistricts parses a districts document. Categories missing from a
// record decode as 0.
func DecodeDistricts(r io.Reader) ([]model.District, error) {
	var doc districtDocument
	if err := decode(r, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode districts: %w", err)
	}

	districts := make([]model.District, 0, len(doc.Districts))
	for _, rec := range doc.Districts {
		districts = append(districts, model.District{
			Name:        rec.Name,
			Province:    model.Province(rec.Province),
			Composition: rec.Composition,
		})
	}

	common.LogDebug("decoded districts", common.Fields{"count": len(districts)})
	return districts, nil
}

// DecodeStrategies parses a strategies document keyed by district name.
func DecodeStrategies(r io.Reader) (map[string][]string, error) {
	var doc strategyDocument
	if err := decode(r, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode strategies: %w", err)
	}
	if doc.Strategies == nil {
		doc.Strategies = make(map[string][]string)
	}

	common.LogDebug("decoded strategies", common.Fields{"districts": len(doc.Strategies)})
	return doc.Strategies, nil
}

// DecodeThemes parses a strategy themes document.
func DecodeThemes(r io.Reader) ([]model.Theme, error) {
	var doc themeDocument
	if err := decode(r, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode themes: %w", err)
	}

	themes := make([]model.Theme, 0, len(doc.Themes))
	for _, rec := range doc.Themes {
		themes = append(themes, model.Theme{
			Name:      rec.Name,
			Districts: rec.Districts,
		})
	}
	return themes, nil
}

// Districts returns the embedded district table in file order.
func Districts() ([]model.District, error) {
	data, err := files.ReadFile(districtsFile)
	if err != nil {
		return nil, err
	}
	return DecodeDistricts(bytes.NewReader(data))
}

// Strategies returns the embedded strategy table.
func Strategies() (map[string][]string, error) {
	data, err := files.ReadFile(strategiesFile)
	if err != nil {
		return nil, err
	}
	return DecodeStrategies(bytes.NewReader(data))
}

// Themes returns the embedded strategy themes in file order.
func Themes() ([]model.Theme, error) {
	data, err := files.ReadFile(themesFile)
	if err != nil {
		return nil, err
	}
	return DecodeThemes(bytes.NewReader(data))
}

func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		// An empty document is a valid, empty table.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}
