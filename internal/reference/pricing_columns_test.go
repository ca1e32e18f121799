package reference

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const priceEntriesSchema = `
CREATE TABLE variant_price_entries (
	id text PRIMARY KEY,
	layout_key text NOT NULL,
	option1 text NOT NULL,
	option2 text NOT NULL,
	position integer NOT NULL DEFAULT 0,
	price text,
	compare_at_price text,
	created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// The price-entry model carries no Postgres array columns, so the column
// selection contract can be pinned against an in-memory database instead of
// the DSN-gated suite.
func newPriceEntriesDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.Exec(priceEntriesSchema).Error; err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return conn
}

func TestVariantPriceEntriesColumnSelection(t *testing.T) {
	conn := newPriceEntriesDB(t)

	insert := `INSERT INTO variant_price_entries
		(id, layout_key, option1, option2, position, price, compare_at_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	rows := [][]any{
		{uuid.NewString(), "Layout 3 Horizontal", "3 Piece", "30x40", 1, "69.99", "89.99"},
		{uuid.NewString(), "Layout 3 Horizontal", "3 Piece", "24x36", 0, "49.99", "59.99"},
	}
	for _, row := range rows {
		if err := conn.Exec(insert, row...).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	repo := NewRepository(conn)
	ctx := context.Background()

	priced, err := repo.VariantPriceEntries(ctx, []string{"Layout 3 Horizontal"}, true)
	if err != nil {
		t.Fatalf("fetch with pricing: %v", err)
	}
	entries := priced["Layout 3 Horizontal"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Option2 != "24x36" || entries[1].Option2 != "30x40" {
		t.Fatalf("entries not in position order: %q, %q", entries[0].Option2, entries[1].Option2)
	}
	if entries[0].Price == nil || *entries[0].Price != "49.99" {
		t.Fatalf("expected price populated, got %v", entries[0].Price)
	}
	if entries[0].CompareAtPrice == nil || *entries[0].CompareAtPrice != "59.99" {
		t.Fatalf("expected compare-at price populated, got %v", entries[0].CompareAtPrice)
	}

	sizesOnly, err := repo.VariantPriceEntries(ctx, []string{"Layout 3 Horizontal"}, false)
	if err != nil {
		t.Fatalf("fetch sizes only: %v", err)
	}
	entries = sizesOnly["Layout 3 Horizontal"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 size-only entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Price != nil || entry.CompareAtPrice != nil {
			t.Fatalf("price columns must stay unselected, got %v / %v", entry.Price, entry.CompareAtPrice)
		}
		if entry.LayoutKey == "" || entry.Option1 == "" || entry.Option2 == "" {
			t.Fatalf("size columns must be populated, got %+v", entry)
		}
	}
}
