package country

import "sync"

// Selection tracks the operator's currently selected dial code. Smart
// input and geo hints update it; number-only input reads it. The dial
// code may be one outside the registry (generic "+" extraction), so it
// is stored as a string rather than a Region.
type Selection struct {
	mu   sync.Mutex
	dial string
}

// NewSelection creates a selection starting at the given dial code
func NewSelection(dial string) *Selection {
	if dial == "" {
		dial = DefaultDialCode
	}
	return &Selection{dial: dial}
}

// DialCode returns the currently selected dial code
func (s *Selection) DialCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dial
}

// Set updates the selected dial code. Empty values are ignored.
func (s *Selection) Set(dial string) {
	if dial == "" {
		return
	}
	s.mu.Lock()
	s.dial = dial
	s.mu.Unlock()
}
