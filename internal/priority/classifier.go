// Package priority labels each district's strategy development status by
// joining its diversity with the strategies recorded for it.
package priority

import (
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/Veraticus/district-atlas/internal/stats"
	"github.com/Veraticus/district-atlas/internal/storage"
)

// Classifier joins statistics with strategy coverage.
type Classifier struct {
	engine     *stats.Engine
	strategies *storage.StrategyStore
}

// New creates a classifier.
func New(engine *stats.Engine, strategies *storage.StrategyStore) *Classifier {
	return &Classifier{
		engine:     engine,
		strategies: strategies,
	}
}

// Classify reports the strategy coverage of d. A district with no strategy
// entries is reported with zero count rather than an error.
func (c *Classifier) Classify(d model.District) model.Priority {
	count := c.strategies.Count(d.Name)

	development := model.DevelopmentLow
	if count > 0 {
		development = model.DevelopmentHigh
	}

	return model.Priority{
		District:       d.Name,
		HasStrategy:    count > 0,
		StrategyCount:  count,
		DiversityIndex: stats.DiversityIndex(d),
		Development:    development,
	}
}

// ClassifyByName looks the district up before classifying it.
func (c *Classifier) ClassifyByName(name string) (model.Priority, error) {
	d, err := c.engine.Store().District(name)
	if err != nil {
		return model.Priority{}, err
	}
	return c.Classify(d), nil
}

// ClassifyAll classifies every district in table order.
func (c *Classifier) ClassifyAll() []model.Priority {
	districts := c.engine.Store().Districts()
	out := make([]model.Priority, 0, len(districts))
	for _, d := range districts {
		out = append(out, c.Classify(d))
	}
	return out
}

// Uncovered returns the districts that have no strategies yet, in table order.
func (c *Classifier) Uncovered() []string {
	var out []string
	for _, p := range c.ClassifyAll() {
		if !p.HasStrategy {
			out = append(out, p.District)
		}
	}
	return out
}
