// Package tracker runs the page-visit pipeline: classify the page, extract
// price and identity, persist the observation and derive the figures the
// widget layer renders. One run per page load; there is no retry and no
// partial persistence.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/motsoagae/ShopWise-Collective/internal/extract"
	"github.com/motsoagae/ShopWise-Collective/internal/logging"
	"github.com/motsoagae/ShopWise-Collective/internal/notify"
	"github.com/motsoagae/ShopWise-Collective/internal/site"
	"github.com/motsoagae/ShopWise-Collective/internal/spark"
	"github.com/motsoagae/ShopWise-Collective/internal/stats"
	"github.com/motsoagae/ShopWise-Collective/internal/track"
)

// Pipeline stop conditions. Neither is fatal: every page visit is an
// independent attempt and existing history is never touched on failure.
var (
	ErrUnsupportedSite = errors.New("tracker: unsupported site")
	ErrNotProductPage  = errors.New("tracker: not a product page")
)

// Result is everything one successful pipeline run yields: the persisted
// record, the change event when the price moved, and the derived figures for
// presentation.
type Result struct {
	Variant site.Variant
	Record  track.ProductRecord
	Change  *track.ChangeEvent
	Stats   stats.Statistics
	Spark   spark.Path
}

// Tracker owns a store handle and an optional delivery channel. Runs of one
// Tracker are serialized so a single process never interleaves the
// read-modify-write cycle; coordination across processes is out of scope.
type Tracker struct {
	mu       sync.Mutex
	store    track.Store
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// New builds a Tracker over the given store. A nil notifier disables
// delivery; a nil logger falls back to the shared application logger.
func New(store track.Store, notifier notify.Notifier, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = logging.Logger()
	}
	return &Tracker{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Track runs the full pipeline for one rendered page. The document is the
// page content after the host's settle delay; pageURL and hostname identify
// it. Classification misses return ErrUnsupportedSite/ErrNotProductPage and
// extraction misses return the extract sentinels; in every failure case
// nothing is persisted.
func (t *Tracker) Track(ctx context.Context, pageURL, hostname string, doc *goquery.Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	variant := site.Classify(pageURL, hostname)
	if variant == site.Unknown {
		return nil, ErrUnsupportedSite
	}
	if !site.IsProductPage(variant, pageURL) {
		return nil, ErrNotProductPage
	}

	extraction, err := extract.Extract(doc, pageURL, variant)
	if err != nil {
		return nil, fmt.Errorf("tracker: extract %s page: %w", variant, err)
	}

	obs := track.Observation{
		Identity: track.Identity{Site: variant, NativeID: extraction.ProductID},
		Title:    extraction.Title,
		PageURL:  pageURL,
		ImageURL: extraction.ImageURL,
		Price:    extraction.Price,
	}

	t.mu.Lock()
	record, change, err := track.Upsert(t.store, obs, t.now())
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}

	t.logger.InfoContext(ctx, "product tracked",
		"key", record.Identity.Key(),
		"price", obs.Price,
		"points", len(record.History),
	)

	if change != nil && t.notifier != nil {
		msg := notify.NewPriceChanged(record, *change)
		if err := t.notifier.Notify(ctx, msg); err != nil {
			// Delivery is external and best effort; the observation is
			// already durable.
			t.logger.WarnContext(ctx, "change notification failed",
				"key", record.Identity.Key(), "error", err)
		}
	}

	return &Result{
		Variant: variant,
		Record:  record,
		Change:  change,
		Stats:   stats.Compute(record.History),
		Spark:   spark.Generate(record.Prices()),
	}, nil
}

// Products returns the tracked records ordered most recently observed first,
// together with the total observation count, the shape list views render.
func (t *Tracker) Products() ([]track.ProductRecord, int, error) {
	records, err := t.store.GetAll()
	if err != nil {
		return nil, 0, err
	}
	return track.SortedByRecent(records), track.TotalObservations(records), nil
}

// Clear removes every tracked product.
func (t *Tracker) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return track.ClearAll(t.store)
}
