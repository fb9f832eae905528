package recents

import (
	"fmt"
	"testing"
)

func TestUpsertCreatesAndMerges(t *testing.T) {
	store := NewStore()

	created := store.Upsert("+393331234567", "Mario", 1000)
	if created.DisplayName != "Mario" || created.Pinned || created.Note != "" {
		t.Fatalf("unexpected new contact: %+v", created)
	}

	// Repeat send without an override keeps the name and bumps the timestamp.
	merged := store.Upsert("+393331234567", "", 2000)
	if merged.DisplayName != "Mario" {
		t.Fatalf("expected name Mario to survive, got %q", merged.DisplayName)
	}
	if merged.LastUsedAt != 2000 {
		t.Fatalf("expected timestamp 2000, got %d", merged.LastUsedAt)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 contact, got %d", store.Len())
	}

	// A non-empty override replaces the name.
	renamed := store.Upsert("+393331234567", "Sig. Rossi", 3000)
	if renamed.DisplayName != "Sig. Rossi" {
		t.Fatalf("expected name override, got %q", renamed.DisplayName)
	}
}

func TestUpsertCarriesNoteAndPin(t *testing.T) {
	store := NewStore()

	store.Upsert("+393331234567", "Mario", 1000)
	if _, err := store.SetNote("+393331234567", "Cliente VIP"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.TogglePinned("+393331234567"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged := store.Upsert("+393331234567", "", 2000)
	if merged.Note != "Cliente VIP" {
		t.Fatalf("expected note to survive upsert, got %q", merged.Note)
	}
	if !merged.Pinned {
		t.Fatal("expected pinned flag to survive upsert")
	}
}

func TestUpsertMovesContactToHead(t *testing.T) {
	store := NewStore()

	store.Upsert("+391111111", "", 1000)
	store.Upsert("+392222222", "", 2000)
	store.Upsert("+391111111", "", 3000)

	all := store.ExportAll()
	if all[0].FullNumber != "+391111111" || all[1].FullNumber != "+392222222" {
		t.Fatalf("unexpected recency order: %v, %v", all[0].FullNumber, all[1].FullNumber)
	}
}

func TestCapacityEvictsOldestUnpinned(t *testing.T) {
	store := NewStore()

	for i := 0; i < Capacity; i++ {
		store.Upsert(fmt.Sprintf("+39%010d", i), "", int64(i))
	}
	if store.Len() != Capacity {
		t.Fatalf("expected %d contacts, got %d", Capacity, store.Len())
	}

	store.Upsert("+491234567890", "", 9999)

	if store.Len() != Capacity {
		t.Fatalf("expected size to stay %d, got %d", Capacity, store.Len())
	}
	// The globally oldest entry (+39...0) must be gone.
	for _, contact := range store.ExportAll() {
		if contact.FullNumber == fmt.Sprintf("+39%010d", 0) {
			t.Fatal("expected the oldest unpinned contact to be evicted")
		}
	}
	if store.ExportAll()[0].FullNumber != "+491234567890" {
		t.Fatal("expected the new contact at the head")
	}
}

func TestCapacitySkipsPinnedEntries(t *testing.T) {
	store := NewStore()

	for i := 0; i < Capacity; i++ {
		number := fmt.Sprintf("+39%010d", i)
		store.Upsert(number, "", int64(i))
	}
	// Pin the two oldest.
	oldest := fmt.Sprintf("+39%010d", 0)
	second := fmt.Sprintf("+39%010d", 1)
	store.TogglePinned(oldest)
	store.TogglePinned(second)

	store.Upsert("+491234567890", "", 9999)

	if store.Len() != Capacity {
		t.Fatalf("expected size %d, got %d", Capacity, store.Len())
	}
	survivors := map[string]bool{}
	for _, contact := range store.ExportAll() {
		survivors[contact.FullNumber] = true
	}
	if !survivors[oldest] || !survivors[second] {
		t.Fatal("pinned contacts must never be evicted")
	}
	if survivors[fmt.Sprintf("+39%010d", 2)] {
		t.Fatal("expected the oldest unpinned contact to be evicted instead")
	}
}

func TestAllPinnedStoreMayExceedCapacity(t *testing.T) {
	store := NewStore()

	for i := 0; i < Capacity; i++ {
		number := fmt.Sprintf("+39%010d", i)
		store.Upsert(number, "", int64(i))
		store.TogglePinned(number)
	}

	store.Upsert("+491234567890", "", 9999)

	if store.Len() != Capacity+1 {
		t.Fatalf("expected %d contacts when everything else is pinned, got %d", Capacity+1, store.Len())
	}
}

func TestSearch(t *testing.T) {
	store := NewStore()

	store.Upsert("+393331111111", "Mario", 1000)
	store.Upsert("+393332222222", "Luigi", 2000)
	store.Upsert("+12025550123", "", 3000)
	store.SetNote("+393332222222", "Cliente VIP")
	store.TogglePinned("+393331111111")

	// Empty term: full store, pinned first, each group by recency.
	all := store.Search("")
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	if all[0].FullNumber != "+393331111111" {
		t.Fatalf("expected pinned contact first, got %s", all[0].FullNumber)
	}
	if all[1].FullNumber != "+12025550123" || all[2].FullNumber != "+393332222222" {
		t.Fatal("expected unpinned contacts in recency order after pinned")
	}

	// Name match is case-insensitive.
	byName := store.Search("mario")
	if len(byName) != 1 || byName[0].FullNumber != "+393331111111" {
		t.Fatalf("unexpected name search result: %+v", byName)
	}

	// Note matches count too.
	byNote := store.Search("vip")
	if len(byNote) != 1 || byNote[0].FullNumber != "+393332222222" {
		t.Fatalf("unexpected note search result: %+v", byNote)
	}

	// Number substring.
	byNumber := store.Search("2025550")
	if len(byNumber) != 1 || byNumber[0].FullNumber != "+12025550123" {
		t.Fatalf("unexpected number search result: %+v", byNumber)
	}

	if got := store.Search("nomatch"); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestNotFoundOperations(t *testing.T) {
	store := NewStore()

	if _, err := store.SetNote("+390000000", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.TogglePinned("+390000000"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Remove("+390000000"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	store := NewStore()

	store.Upsert("+393331234567", "", 1000)
	if err := store.Remove("+393331234567"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}
