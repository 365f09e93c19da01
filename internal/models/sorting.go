package models

// SortKey selects the field used by the generic account sort
type SortKey string

const (
	SortByName           SortKey = "name"
	SortByAPR            SortKey = "apr"
	SortByBalance        SortKey = "balance"
	SortByUtilization    SortKey = "utilization"
	SortByInterestPer100 SortKey = "interestPer100"
)

// SortDirection is asc or desc
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PayoffStrategy names a fixed payoff ordering
type PayoffStrategy string

const (
	// StrategyAvalanche pays the highest APR first
	StrategyAvalanche PayoffStrategy = "avalanche"
	// StrategySnowball pays the lowest balance first
	StrategySnowball PayoffStrategy = "snowball"
)

// IsValidSortKey checks if the sort key is supported
func IsValidSortKey(key SortKey) bool {
	switch key {
	case SortByName, SortByAPR, SortByBalance, SortByUtilization, SortByInterestPer100:
		return true
	default:
		return false
	}
}

// IsValidSortDirection checks if the direction is asc or desc
func IsValidSortDirection(dir SortDirection) bool {
	return dir == SortAsc || dir == SortDesc
}

// IsValidPayoffStrategy checks if the strategy is avalanche or snowball
func IsValidPayoffStrategy(strategy PayoffStrategy) bool {
	return strategy == StrategyAvalanche || strategy == StrategySnowball
}
