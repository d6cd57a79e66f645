// Package stats derives summary figures from a product's retained price
// history. Everything here is a pure function of the series and is recomputed
// on every read; nothing is cached across mutations.
package stats

import "github.com/motsoagae/ShopWise-Collective/internal/track"

// Trend is the direction of change between the two most recent observations.
type Trend string

const (
	TrendDown         Trend = "down"
	TrendUp           Trend = "up"
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insufficient-data"
)

// Statistics summarises a price history. DaysTracked counts observations, one
// per nominal daily check.
type Statistics struct {
	Current     float64
	Lowest      float64
	Highest     float64
	Average     float64
	Trend       Trend
	DaysTracked int
}

// Compute aggregates the history. An empty history yields zero figures with
// TrendInsufficient; a single point carries real figures but no trend.
func Compute(history []track.PricePoint) Statistics {
	if len(history) == 0 {
		return Statistics{Trend: TrendInsufficient}
	}

	current := history[len(history)-1].Price
	lowest := current
	highest := current
	sum := 0.0
	for _, point := range history {
		if point.Price < lowest {
			lowest = point.Price
		}
		if point.Price > highest {
			highest = point.Price
		}
		sum += point.Price
	}

	return Statistics{
		Current:     current,
		Lowest:      lowest,
		Highest:     highest,
		Average:     sum / float64(len(history)),
		Trend:       trendOf(history),
		DaysTracked: len(history),
	}
}

// trendOf compares the latest price to the one before it.
func trendOf(history []track.PricePoint) Trend {
	if len(history) < 2 {
		return TrendInsufficient
	}
	current := history[len(history)-1].Price
	previous := history[len(history)-2].Price
	switch {
	case current < previous:
		return TrendDown
	case current > previous:
		return TrendUp
	default:
		return TrendStable
	}
}
