// Package notify defines the structured hand-off between the tracking engine
// and whatever delivery mechanism the host wires in (system notifications, a
// toast, a log). The engine only builds the message; rendering is external.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
	"github.com/motsoagae/ShopWise-Collective/internal/track"
)

// Kind tags the message type on the delivery channel.
type Kind string

// KindPriceChanged marks a detected price change on a tracked product.
const KindPriceChanged Kind = "PRICE_CHANGED"

// Message is the payload handed to the delivery mechanism when an upsert
// detects a price change. Diff keeps its sign; Percent is rounded to one
// decimal.
type Message struct {
	Kind      Kind
	Product   track.ProductRecord
	Diff      float64
	Percent   float64
	Direction track.Direction
}

// NewPriceChanged builds the delivery payload for a change event.
func NewPriceChanged(record track.ProductRecord, event track.ChangeEvent) Message {
	diff := event.NewPrice - event.PreviousPrice
	return Message{
		Kind:      KindPriceChanged,
		Product:   record,
		Diff:      diff,
		Percent:   event.PercentDiff,
		Direction: event.Direction,
	}
}

// Title returns the alert headline for the message.
func (m Message) Title() string {
	if m.Direction == track.DirectionDropped {
		return "Price Drop Alert!"
	}
	return "Price Increase Alert"
}

// Body returns a short human-readable summary: truncated product title plus
// the move in percent and marketplace currency.
func (m Message) Body() string {
	title := m.Product.Title
	if len(title) > 60 {
		title = title[:60] + "..."
	}
	verb := "Increased"
	if m.Direction == track.DirectionDropped {
		verb = "Dropped"
	}
	amount := site.FormatPrice(m.Product.Identity.Site, math.Abs(m.Diff))
	return fmt.Sprintf("%s\n%s %.1f%% (%s)", title, verb, math.Abs(m.Percent), amount)
}

// Notifier delivers change messages. Implementations must tolerate being
// called once per page visit and should not block the pipeline.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier writes alerts to a structured logger. It is the default sink
// when the host has no delivery channel of its own.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier wraps a logger; nil falls back to slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the alert at info level.
func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "price change",
		"kind", string(msg.Kind),
		"product", msg.Product.Identity.Key(),
		"title", msg.Title(),
		"direction", string(msg.Direction),
		"diff", msg.Diff,
		"percent", msg.Percent,
	)
	return nil
}
