package compose

import (
	"log"
	"os"
	"testing"
	"time"
)

type fakeDB struct {
	data map[string][]byte
}

func newFakeDB() *fakeDB {
	return &fakeDB{data: map[string][]byte{}}
}

func (f *fakeDB) Load(key string) ([]byte, bool, error) {
	blob, ok := f.data[key]
	return blob, ok, nil
}

func (f *fakeDB) Save(key string, blob []byte) error {
	f.data[key] = blob
	return nil
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "", 0)
}

func TestCounterIncrementsWithinDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	counter := NewCounter(newFakeDB(), testLogger(), now)

	if got := counter.Increment(now); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := counter.Increment(now.Add(2 * time.Hour)); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := counter.Current(now.Add(3 * time.Hour)); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestCounterRollsOverAcrossDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	counter := NewCounter(newFakeDB(), testLogger(), now)
	counter.Increment(now)

	nextDay := now.Add(2 * time.Hour)
	if got := counter.Current(nextDay); got != 0 {
		t.Fatalf("expected reset to 0 on a new day, got %d", got)
	}
	if got := counter.Increment(nextDay); got != 1 {
		t.Fatalf("expected 1 after rollover, got %d", got)
	}
}

func TestCounterSurvivesRestartSameDay(t *testing.T) {
	db := newFakeDB()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first := NewCounter(db, testLogger(), now)
	first.Increment(now)
	first.Increment(now)

	second := NewCounter(db, testLogger(), now.Add(time.Hour))
	if got := second.Current(now.Add(time.Hour)); got != 2 {
		t.Fatalf("expected 2 after restart, got %d", got)
	}
}

func TestCounterDropsStalePersistedState(t *testing.T) {
	db := newFakeDB()
	yesterday := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first := NewCounter(db, testLogger(), yesterday)
	first.Increment(yesterday)

	today := yesterday.Add(24 * time.Hour)
	second := NewCounter(db, testLogger(), today)
	if got := second.Current(today); got != 0 {
		t.Fatalf("expected a fresh counter on a new day, got %d", got)
	}
}
