package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/dataset"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/priority"
	"github.com/Veraticus/district-atlas/internal/report"
	"github.com/Veraticus/district-atlas/internal/stats"
	"github.com/Veraticus/district-atlas/internal/storage"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// atlas bundles the stores built from the embedded dataset and the report
// derived from them.
type atlas struct {
	demographics *storage.DemographicStore
	strategies   *storage.StrategyStore
	engine       *stats.Engine
	classifier   *priority.Classifier
	report       *report.Report
}

// loadAtlas builds the stores and report. topN bounds the diversity ranking.
func loadAtlas(topN int) (*atlas, error) {
	districts, err := dataset.Districts()
	if err != nil {
		return nil, fmt.Errorf("failed to load districts: %w", err)
	}
	strategies, err := dataset.Strategies()
	if err != nil {
		return nil, fmt.Errorf("failed to load strategies: %w", err)
	}
	themes, err := dataset.Themes()
	if err != nil {
		return nil, fmt.Errorf("failed to load strategy themes: %w", err)
	}

	demographics, err := storage.NewDemographicStore(districts)
	if err != nil {
		return nil, fmt.Errorf("failed to build demographic store: %w", err)
	}
	strategyStore := storage.NewStrategyStore(strategies, themes)

	for _, name := range strategyStore.Districts() {
		if _, err := demographics.District(name); err != nil {
			slog.Warn("Strategies reference a district with no demographic data", "district", name)
		}
	}

	engine := stats.New(demographics)
	classifier := priority.New(engine, strategyStore)

	common.LogDebug("Dataset loaded", common.Fields{
		"districts":          demographics.Len(),
		"strategy_districts": len(strategyStore.Districts()),
		"themes":             len(themes),
	})

	return &atlas{
		demographics: demographics,
		strategies:   strategyStore,
		engine:       engine,
		classifier:   classifier,
		report:       report.Build(engine, classifier, strategyStore, topN),
	}, nil
}

// resolveDistrict maps user input onto the canonical district name.
func (a *atlas) resolveDistrict(name string) (string, error) {
	d, err := a.demographics.District(name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.NewUserError(fmt.Sprintf("Unknown district %q", name), err)
		}
		return "", err
	}
	return d.Name, nil
}

// resolveProvince maps user input onto a province that has districts.
func (a *atlas) resolveProvince(name string) (model.Province, error) {
	province, err := model.ParseProvince(name)
	if err == nil {
		_, err = a.engine.Province(province)
	}
	if err != nil {
		return "", common.NewUserError(fmt.Sprintf("Unknown province %q", name), err)
	}
	return province, nil
}

func newFormatter() *report.Formatter {
	return report.NewFormatter(settings.Decimals)
}
