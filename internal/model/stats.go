package model

// DistrictStats holds values derived from a single district's composition.
type DistrictStats struct {
	District           string   `json:"district" yaml:"district" toml:"district"`
	Province           Province `json:"province" yaml:"province" toml:"province"`
	MajorityCategory   Category `json:"majority_category" yaml:"majority_category" toml:"majority_category"`
	MajorityPercentage float64  `json:"majority_percentage" yaml:"majority_percentage" toml:"majority_percentage"`
	DiversityIndex     float64  `json:"diversity_index" yaml:"diversity_index" toml:"diversity_index"`
	MinorityPercentage float64  `json:"minority_percentage" yaml:"minority_percentage" toml:"minority_percentage"`
}

// ProvinceSummary holds the unweighted per-district mean of each category in a province.
type ProvinceSummary struct {
	Province  Province    `json:"province" yaml:"province" toml:"province"`
	Means     Composition `json:"means" yaml:"means" toml:"means"`
	Districts int         `json:"districts" yaml:"districts" toml:"districts"`
}

// Development labels how far strategy work has progressed for a district.
type Development string

const (
	// DevelopmentHigh marks a district that has at least one strategy.
	DevelopmentHigh Development = "High"
	// DevelopmentLow marks a district with no strategies yet.
	DevelopmentLow Development = "Low"
)

// Priority joins a district's diversity with its strategy coverage.
type Priority struct {
	District       string      `json:"district" yaml:"district" toml:"district"`
	Development    Development `json:"development" yaml:"development" toml:"development"`
	DiversityIndex float64     `json:"diversity_index" yaml:"diversity_index" toml:"diversity_index"`
	StrategyCount  int         `json:"strategy_count" yaml:"strategy_count" toml:"strategy_count"`
	HasStrategy    bool        `json:"has_strategy" yaml:"has_strategy" toml:"has_strategy"`
}
