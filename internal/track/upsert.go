package track

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidPrice rejects observations that are not finite positive values.
// Such values are never stored.
var ErrInvalidPrice = errors.New("track: price must be a finite positive value")

// Observation carries everything a single successful page visit yields.
// Title and ImageURL only matter on the first visit; later observations never
// overwrite them.
type Observation struct {
	Identity Identity
	Title    string
	PageURL  string
	ImageURL string
	Price    float64
}

// Upsert records an observation: it creates the product record on first
// sight, appends a price point, trims history to the retention limit and
// detects a price change against the point that preceded the append. The
// whole mapping is written back in one SetAll, so a failed write leaves the
// previous state intact.
func Upsert(store Store, obs Observation, now time.Time) (ProductRecord, *ChangeEvent, error) {
	if math.IsNaN(obs.Price) || math.IsInf(obs.Price, 0) || obs.Price <= 0 {
		return ProductRecord{}, nil, ErrInvalidPrice
	}

	records, err := store.GetAll()
	if err != nil {
		return ProductRecord{}, nil, fmt.Errorf("track: read store: %w", err)
	}
	if records == nil {
		records = map[string]ProductRecord{}
	}

	key := obs.Identity.Key()
	record, ok := records[key]
	if !ok {
		record = ProductRecord{
			Identity:     obs.Identity,
			Title:        obs.Title,
			CanonicalURL: canonicalURL(obs.PageURL),
			ImageURL:     obs.ImageURL,
		}
	}

	// The previous price must be read before the append; it is the snapshot
	// change detection compares against.
	var lastPrice float64
	hasLast := len(record.History) > 0
	if hasLast {
		lastPrice = record.History[len(record.History)-1].Price
	}

	record.History = append(record.History, NewPricePoint(obs.Price, now))
	if len(record.History) > HistoryLimit {
		record.History = record.History[len(record.History)-HistoryLimit:]
	}
	record.LastChecked = now.UnixMilli()

	records[key] = record
	if err := store.SetAll(records); err != nil {
		return ProductRecord{}, nil, fmt.Errorf("track: write store: %w", err)
	}

	var change *ChangeEvent
	if hasLast && lastPrice != obs.Price {
		change = newChangeEvent(obs.Identity, lastPrice, obs.Price)
	}
	return record, change, nil
}

func newChangeEvent(identity Identity, previous, current float64) *ChangeEvent {
	diff := current - previous
	direction := DirectionIncreased
	if diff < 0 {
		direction = DirectionDropped
	}
	return &ChangeEvent{
		Identity:      identity,
		PreviousPrice: previous,
		NewPrice:      current,
		AbsoluteDiff:  math.Abs(diff),
		PercentDiff:   roundOneDecimal(diff / previous * 100),
		Direction:     direction,
	}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// canonicalURL strips the query string so revisits through tracking links
// collapse onto one stored URL.
func canonicalURL(pageURL string) string {
	base, _, _ := strings.Cut(pageURL, "?")
	return base
}
