package ports

import "context"

// TrendSource returns rising search queries related to a seed keyword.
// Implementations never fail; they substitute a fixed fallback list instead.
type TrendSource interface {
	RisingQueries(ctx context.Context, seed, window string) []string
}
