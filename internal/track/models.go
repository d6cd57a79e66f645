package track

import (
	"fmt"
	"time"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
)

// HistoryLimit caps the retained price points per product. Sixty daily
// observations cover roughly two months of tracking.
const HistoryLimit = 60

// Identity is the composite key for a tracked product: the storefront variant
// plus the site-native identifier taken from the URL (ASIN, PLID).
type Identity struct {
	Site     site.Variant `json:"site"`
	NativeID string       `json:"productId"`
}

// Key returns the store key for the identity. Two pages carrying the same
// native id on the same site always map to the same key.
func (id Identity) Key() string {
	return fmt.Sprintf("%s_%s", id.Site, id.NativeID)
}

// PricePoint is a single observation. Immutable once appended.
type PricePoint struct {
	Price       float64 `json:"price"`
	ObservedAt  int64   `json:"timestamp"`
	ObservedISO string  `json:"date"`
}

// NewPricePoint stamps a price with the observation time in both epoch
// milliseconds and RFC 3339 UTC form.
func NewPricePoint(price float64, now time.Time) PricePoint {
	return PricePoint{
		Price:       price,
		ObservedAt:  now.UnixMilli(),
		ObservedISO: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// ProductRecord is the persisted state for one tracked product. Title,
// CanonicalURL and ImageURL are fixed at first observation; only History and
// LastChecked mutate afterwards.
type ProductRecord struct {
	Identity     Identity     `json:"identity"`
	Title        string       `json:"title"`
	CanonicalURL string       `json:"url"`
	ImageURL     string       `json:"image,omitempty"`
	History      []PricePoint `json:"history"`
	LastChecked  int64        `json:"lastChecked"`
}

// LastObserved returns the timestamp of the most recent price point, or zero
// when the history is empty.
func (r ProductRecord) LastObserved() int64 {
	if len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1].ObservedAt
}

// Prices returns the observed price series in observation order.
func (r ProductRecord) Prices() []float64 {
	prices := make([]float64, len(r.History))
	for i, point := range r.History {
		prices[i] = point.Price
	}
	return prices
}

// Direction labels which way a price moved between two observations.
type Direction string

const (
	DirectionDropped   Direction = "dropped"
	DirectionIncreased Direction = "increased"
)

// ChangeEvent describes a detected price change. It is derived during upsert
// and never persisted. AbsoluteDiff is the unsigned move; PercentDiff keeps
// its sign and is rounded to one decimal.
type ChangeEvent struct {
	Identity      Identity
	PreviousPrice float64
	NewPrice      float64
	AbsoluteDiff  float64
	PercentDiff   float64
	Direction     Direction
}
