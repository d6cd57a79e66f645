package track

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "products.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreEmpty(t *testing.T) {
	store := newTestSQLiteStore(t)
	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty mapping, got %v", records)
	}
}

func TestSQLiteStoreUpsertRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	obs := Observation{
		Identity: Identity{Site: site.AmazonUS, NativeID: "B000123456"},
		Title:    "Wireless Headphones",
		PageURL:  "https://www.amazon.com/dp/B000123456",
		Price:    49.99,
	}
	if _, _, err := Upsert(store, obs, now); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	obs.Price = 39.99
	_, change, err := Upsert(store, obs, now.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if change == nil || change.Direction != DirectionDropped {
		t.Fatalf("expected drop event, got %+v", change)
	}

	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	record := records["amazon_us_B000123456"]
	if len(record.History) != 2 || record.History[1].Price != 39.99 {
		t.Fatalf("unexpected history: %+v", record.History)
	}
}

func TestSQLiteStoreSetAllReplaces(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SetAll(map[string]ProductRecord{
		"amazon_us_A": {Identity: Identity{Site: site.AmazonUS, NativeID: "A"}, Title: "One"},
		"amazon_us_B": {Identity: Identity{Site: site.AmazonUS, NativeID: "B"}, Title: "Two"},
	}); err != nil {
		t.Fatalf("SetAll error: %v", err)
	}
	if err := store.SetAll(map[string]ProductRecord{
		"takealot_9": {Identity: Identity{Site: site.Takealot, NativeID: "9"}, Title: "Three"},
	}); err != nil {
		t.Fatalf("SetAll error: %v", err)
	}

	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("SetAll must fully replace, got %v", records)
	}
	if _, ok := records["takealot_9"]; !ok {
		t.Fatalf("replacement record missing: %v", records)
	}
}
