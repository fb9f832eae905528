package compose

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// counterKey is the storage key for the daily send counter
const counterKey = "daily-counter"

// dayFormat stamps the reset date; the counter rolls over when the
// stamp no longer matches the current day.
const dayFormat = "2006-01-02"

// Persistence is the slice of the storage collaborator the counter needs
type Persistence interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

type counterState struct {
	Count     int    `json:"count"`
	ResetDate string `json:"reset_date"`
}

// Counter tracks how many sends happened today, surviving restarts
// within the same day.
type Counter struct {
	mu     sync.Mutex
	state  counterState
	db     Persistence
	logger *log.Logger
}

// NewCounter creates a counter, restoring today's count if the
// persisted reset date still matches.
func NewCounter(db Persistence, logger *log.Logger, now time.Time) *Counter {
	c := &Counter{
		state:  counterState{ResetDate: now.Format(dayFormat)},
		db:     db,
		logger: logger,
	}
	c.restore(now)
	return c
}

// Increment bumps today's count and flushes, rolling the counter over
// first when the day changed.
func (c *Counter) Increment(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rollover(now)
	c.state.Count++
	c.flush()
	return c.state.Count
}

// Current returns today's count without bumping it
func (c *Counter) Current(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rollover(now)
	return c.state.Count
}

// rollover must be called with the mutex held
func (c *Counter) rollover(now time.Time) {
	today := now.Format(dayFormat)
	if c.state.ResetDate != today {
		c.state = counterState{ResetDate: today}
	}
}

func (c *Counter) restore(now time.Time) {
	if c.db == nil {
		return
	}
	blob, ok, err := c.db.Load(counterKey)
	if err != nil {
		c.logger.Printf("Failed to load daily counter: %v", err)
		return
	}
	if !ok {
		return
	}
	var state counterState
	if err := json.Unmarshal(blob, &state); err != nil {
		c.logger.Printf("Persisted daily counter is corrupt: %v", err)
		return
	}
	// A stale date means a new day started while the service was down.
	if state.ResetDate == now.Format(dayFormat) {
		c.state = state
	}
}

// flush must be called with the mutex held
func (c *Counter) flush() {
	if c.db == nil {
		return
	}
	blob, err := json.Marshal(c.state)
	if err != nil {
		c.logger.Printf("Failed to encode daily counter: %v", err)
		return
	}
	if err := c.db.Save(counterKey, blob); err != nil {
		c.logger.Printf("Failed to persist daily counter: %v", err)
	}
}
