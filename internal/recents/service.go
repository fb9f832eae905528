package recents

import (
	"encoding/json"
	"log"
)

// storageKey matches the original client's versioned recents key
const storageKey = "recents-v5"

// Persistence is the slice of the storage collaborator the service
// needs. A failed load or save never touches in-memory state.
type Persistence interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

// Service wraps the store with persistence: state is loaded once at
// startup and flushed after every mutation.
type Service struct {
	store  *Store
	db     Persistence
	logger *log.Logger
}

// NewService creates a recents service, restoring any persisted state
func NewService(db Persistence, logger *log.Logger) *Service {
	s := &Service{
		store:  NewStore(),
		db:     db,
		logger: logger,
	}
	s.restore()
	return s
}

// Upsert records a send and flushes
func (s *Service) Upsert(fullNumber, nameOverride string, timestamp int64) Contact {
	contact := s.store.Upsert(fullNumber, nameOverride, timestamp)
	s.flush()
	return contact
}

// SetNote annotates a contact and flushes
func (s *Service) SetNote(fullNumber, note string) (Contact, error) {
	contact, err := s.store.SetNote(fullNumber, note)
	if err != nil {
		return Contact{}, err
	}
	s.flush()
	return contact, nil
}

// TogglePinned flips a contact's pinned flag and flushes
func (s *Service) TogglePinned(fullNumber string) (Contact, error) {
	contact, err := s.store.TogglePinned(fullNumber)
	if err != nil {
		return Contact{}, err
	}
	s.flush()
	return contact, nil
}

// Remove deletes a contact and flushes
func (s *Service) Remove(fullNumber string) error {
	if err := s.store.Remove(fullNumber); err != nil {
		return err
	}
	s.flush()
	return nil
}

// Search returns contacts matching the term, pinned first
func (s *Service) Search(term string) []Contact {
	return s.store.Search(term)
}

// ExportAll returns every contact in recency order
func (s *Service) ExportAll() []Contact {
	return s.store.ExportAll()
}

// Replace swaps the whole store and flushes (bulk import path)
func (s *Service) Replace(contacts []Contact) {
	s.store.ImportAll(contacts)
	s.flush()
}

// Len returns the current number of contacts
func (s *Service) Len() int {
	return s.store.Len()
}

func (s *Service) restore() {
	if s.db == nil {
		return
	}
	blob, ok, err := s.db.Load(storageKey)
	if err != nil {
		s.logger.Printf("Failed to load recents, starting empty: %v", err)
		return
	}
	if !ok {
		return
	}
	var contacts []Contact
	if err := json.Unmarshal(blob, &contacts); err != nil {
		s.logger.Printf("Persisted recents are corrupt, starting empty: %v", err)
		return
	}
	s.store.ImportAll(contacts)
}

func (s *Service) flush() {
	if s.db == nil {
		return
	}
	blob, err := json.Marshal(s.store.ExportAll())
	if err != nil {
		s.logger.Printf("Failed to encode recents: %v", err)
		return
	}
	if err := s.db.Save(storageKey, blob); err != nil {
		s.logger.Printf("Failed to persist recents: %v", err)
	}
}
