package recents

import (
	"errors"
	"log"
	"os"
	"testing"
)

// fakeDB is an in-memory persistence double
type fakeDB struct {
	data    map[string][]byte
	saveErr error
	loadErr error
	saves   int
}

func newFakeDB() *fakeDB {
	return &fakeDB{data: map[string][]byte{}}
}

func (f *fakeDB) Load(key string) ([]byte, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	blob, ok := f.data[key]
	return blob, ok, nil
}

func (f *fakeDB) Save(key string, blob []byte) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = blob
	return nil
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "", 0)
}

func TestServiceFlushesAndRestores(t *testing.T) {
	db := newFakeDB()

	first := NewService(db, testLogger())
	first.Upsert("+393331234567", "Mario", 1000)
	first.SetNote("+393331234567", "Cliente VIP")
	first.TogglePinned("+393331234567")

	if db.saves != 3 {
		t.Fatalf("expected a flush per mutation, got %d", db.saves)
	}

	// A fresh service over the same persistence sees the same state.
	second := NewService(db, testLogger())
	contacts := second.ExportAll()
	if len(contacts) != 1 {
		t.Fatalf("expected 1 restored contact, got %d", len(contacts))
	}
	got := contacts[0]
	if got.DisplayName != "Mario" || got.Note != "Cliente VIP" || !got.Pinned || got.LastUsedAt != 1000 {
		t.Fatalf("restored contact does not match: %+v", got)
	}
}

func TestServiceSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	db := newFakeDB()
	db.saveErr = errors.New("disk full")

	service := NewService(db, testLogger())
	service.Upsert("+393331234567", "Mario", 1000)

	if service.Len() != 1 {
		t.Fatal("a failed save must not roll back the in-memory store")
	}
}

func TestServiceCorruptStateStartsEmpty(t *testing.T) {
	db := newFakeDB()
	db.data[storageKey] = []byte("{not json")

	service := NewService(db, testLogger())
	if service.Len() != 0 {
		t.Fatalf("expected empty store on corrupt state, got %d", service.Len())
	}
}

func TestServiceLoadErrorStartsEmpty(t *testing.T) {
	db := newFakeDB()
	db.loadErr = errors.New("io error")

	service := NewService(db, testLogger())
	if service.Len() != 0 {
		t.Fatalf("expected empty store on load error, got %d", service.Len())
	}
}
