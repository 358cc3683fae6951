package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, Ticket{
		Key: "ENG-1", Summary: "first", Project: "ENG", URL: "https://x/browse/ENG-1",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected ID to be assigned")
	}

	if _, err := store.Record(ctx, Ticket{
		Key: "ENG-2", Summary: "second", Project: "ENG",
		CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	tickets, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}
	if tickets[0].Key != "ENG-2" || tickets[1].Key != "ENG-1" {
		t.Errorf("wrong order: %q then %q", tickets[0].Key, tickets[1].Key)
	}
	if tickets[1].Summary != "first" || tickets[1].URL != "https://x/browse/ENG-1" {
		t.Errorf("round trip mismatch: %+v", tickets[1])
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Ticket{Key: "ENG-1", Summary: "s", Project: "ENG"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	tickets, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tickets) != 3 {
		t.Errorf("got %d tickets, want 3", len(tickets))
	}
}

func TestRecordDefaultsCreatedAt(t *testing.T) {
	store := openTestStore(t)

	ticket, err := store.Record(context.Background(), Ticket{Key: "ENG-9", Summary: "s", Project: "ENG"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if ticket.CreatedAt.IsZero() {
		t.Error("CreatedAt not defaulted")
	}
}
