package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
	"github.com/motsoagae/ShopWise-Collective/internal/track"
)

func changedRecord() (track.ProductRecord, track.ChangeEvent) {
	identity := track.Identity{Site: site.Takealot, NativeID: "12345678"}
	record := track.ProductRecord{
		Identity: identity,
		Title:    "Smart Kettle",
	}
	event := track.ChangeEvent{
		Identity:      identity,
		PreviousPrice: 1299,
		NewPrice:      1199,
		AbsoluteDiff:  100,
		PercentDiff:   -7.7,
		Direction:     track.DirectionDropped,
	}
	return record, event
}

func TestNewPriceChanged(t *testing.T) {
	record, event := changedRecord()
	msg := NewPriceChanged(record, event)

	if msg.Kind != KindPriceChanged {
		t.Errorf("kind = %q", msg.Kind)
	}
	if msg.Diff != -100 {
		t.Errorf("diff = %v, want signed -100", msg.Diff)
	}
	if msg.Percent != -7.7 {
		t.Errorf("percent = %v, want -7.7", msg.Percent)
	}
	if msg.Direction != track.DirectionDropped {
		t.Errorf("direction = %q", msg.Direction)
	}
}

func TestMessageTitleAndBody(t *testing.T) {
	record, event := changedRecord()
	msg := NewPriceChanged(record, event)

	if got := msg.Title(); got != "Price Drop Alert!" {
		t.Errorf("title = %q", got)
	}
	body := msg.Body()
	if !strings.Contains(body, "Smart Kettle") {
		t.Errorf("body missing product title: %q", body)
	}
	if !strings.Contains(body, "Dropped 7.7%") {
		t.Errorf("body missing move: %q", body)
	}
	if !strings.Contains(body, "R 100.00") {
		t.Errorf("body missing marketplace amount: %q", body)
	}
}

func TestMessageBodyTruncatesLongTitles(t *testing.T) {
	record, event := changedRecord()
	record.Title = strings.Repeat("x", 80)
	msg := NewPriceChanged(record, event)

	body := msg.Body()
	if !strings.Contains(body, strings.Repeat("x", 60)+"...") {
		t.Errorf("expected truncated title in body: %q", body)
	}
	if strings.Contains(body, strings.Repeat("x", 61)) {
		t.Errorf("title not truncated at 60 chars: %q", body)
	}
}

func TestLogNotifierDoesNotFail(t *testing.T) {
	record, event := changedRecord()
	if err := NewLogNotifier(nil).Notify(context.Background(), NewPriceChanged(record, event)); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
}
