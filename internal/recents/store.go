package recents

import (
	"strings"
	"sync"
)

// Capacity is the maximum number of contacts kept. Eviction only ever
// removes unpinned entries, so a store where everything is pinned may
// temporarily exceed it.
const Capacity = 30

// Store is the bounded, recency-ordered collection of contacts. The
// head of the slice is the most recently used entry. Upsert is a
// read-modify-write sequence, so every operation serializes on the
// mutex.
type Store struct {
	mu       sync.Mutex
	contacts []Contact
}

// NewStore creates an empty recents store
func NewStore() *Store {
	return &Store{}
}

// Upsert records a send to fullNumber at the given timestamp (Unix
// milliseconds). An existing contact keeps its note and pinned flag;
// its display name is replaced only by a non-empty override. The
// contact moves to the head of the recency order, and the oldest
// unpinned entry is evicted if the store overflows.
func (s *Store) Upsert(fullNumber, nameOverride string, timestamp int64) Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := Contact{FullNumber: fullNumber, LastUsedAt: timestamp}
	nameOverride = strings.TrimSpace(nameOverride)

	if idx := s.indexOf(fullNumber); idx >= 0 {
		existing := s.contacts[idx]
		contact.Note = existing.Note
		contact.Pinned = existing.Pinned
		contact.DisplayName = existing.DisplayName
		s.contacts = append(s.contacts[:idx], s.contacts[idx+1:]...)
	}
	if nameOverride != "" {
		contact.DisplayName = nameOverride
	}

	s.contacts = append([]Contact{contact}, s.contacts...)
	s.evictOverflow()

	return contact
}

// SetNote replaces the note on an existing contact
func (s *Store) SetNote(fullNumber, note string) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(fullNumber)
	if idx < 0 {
		return Contact{}, ErrNotFound
	}
	s.contacts[idx].Note = note
	return s.contacts[idx], nil
}

// TogglePinned flips the pinned flag on an existing contact
func (s *Store) TogglePinned(fullNumber string) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(fullNumber)
	if idx < 0 {
		return Contact{}, ErrNotFound
	}
	s.contacts[idx].Pinned = !s.contacts[idx].Pinned
	return s.contacts[idx], nil
}

// Remove deletes a contact
func (s *Store) Remove(fullNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(fullNumber)
	if idx < 0 {
		return ErrNotFound
	}
	s.contacts = append(s.contacts[:idx], s.contacts[idx+1:]...)
	return nil
}

// Search returns contacts whose number, name or note contains the term
// (case-insensitive). Pinned matches come first, each group in recency
// order. An empty term returns the whole store in the same ordering.
func (s *Store) Search(term string) []Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(term)

	pinned := make([]Contact, 0, len(s.contacts))
	unpinned := make([]Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		if term != "" && !matches(contact, term) {
			continue
		}
		if contact.Pinned {
			pinned = append(pinned, contact)
		} else {
			unpinned = append(unpinned, contact)
		}
	}

	return append(pinned, unpinned...)
}

// ExportAll returns every contact in recency order
func (s *Store) ExportAll() []Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// ImportAll replaces the entire store. The bulk path deliberately does
// not merge; upsert semantics only apply to single sends.
func (s *Store) ImportAll(contacts []Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = make([]Contact, len(contacts))
	copy(s.contacts, contacts)
}

// Len returns the current number of contacts
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// indexOf must be called with the mutex held
func (s *Store) indexOf(fullNumber string) int {
	for i, contact := range s.contacts {
		if contact.FullNumber == fullNumber {
			return i
		}
	}
	return -1
}

// evictOverflow must be called with the mutex held. It scans from the
// tail (the least recently used end) for an unpinned contact to drop.
// The head is never a candidate: the entry that was just inserted must
// survive its own upsert. If every other entry is pinned nothing is
// removed and the store runs over capacity.
func (s *Store) evictOverflow() {
	if len(s.contacts) <= Capacity {
		return
	}
	for i := len(s.contacts) - 1; i >= 1; i-- {
		if !s.contacts[i].Pinned {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return
		}
	}
}

func matches(contact Contact, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(contact.FullNumber), lowerTerm) ||
		strings.Contains(strings.ToLower(contact.DisplayName), lowerTerm) ||
		strings.Contains(strings.ToLower(contact.Note), lowerTerm)
}
