package model

// StrategyList is the ordered list of engagement strategies for one district.
// Order is display order; entries are numbered from 1.
type StrategyList []string

// Theme groups districts whose strategies share a common approach.
type Theme struct {
	Name      string
	Districts []string
}
