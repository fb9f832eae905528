package templates

import (
	"encoding/json"
	"log"
)

// storageKey matches the original client's versioned templates key
const storageKey = "templates-v1"

// DefaultTemplates returns the fixed snippet set seeded into an empty
// store. IDs are stable so a re-seed is deterministic.
func DefaultTemplates() []Template {
	return []Template{
		{ID: "1", Label: "👋 Benvenuto", Body: "Ciao! Grazie per averci contattato. Come possiamo aiutarti?"},
		{ID: "2", Label: "⏳ Follow-up", Body: "Ciao, volevo aggiornarti sulla tua pratica. Ci sono novità."},
		{ID: "3", Label: "📍 Posizione", Body: "Ecco la nostra posizione: [Link Google Maps]"},
		{ID: "4", Label: "💳 Pagamento", Body: "Gentile cliente, le inviamo i dettagli per il saldo dell'ordine."},
	}
}

// Persistence is the slice of the storage collaborator the service needs
type Persistence interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

// Service wraps the store with persistence and default seeding
type Service struct {
	store  *Store
	db     Persistence
	logger *log.Logger
}

// NewService creates a template service, restoring persisted templates
// or seeding the defaults when nothing was saved yet
func NewService(db Persistence, logger *log.Logger) *Service {
	s := &Service{
		store:  NewStore(),
		db:     db,
		logger: logger,
	}
	s.restore()
	if s.store.Len() == 0 {
		s.store.ImportAll(DefaultTemplates())
	}
	return s
}

// Add saves a new template and flushes
func (s *Service) Add(label, body string) Template {
	t := s.store.Add(label, body)
	s.flush()
	return t
}

// Update edits a template and flushes
func (s *Service) Update(id, label, body string) (Template, error) {
	t, err := s.store.Update(id, label, body)
	if err != nil {
		return Template{}, err
	}
	s.flush()
	return t, nil
}

// Remove deletes a template and flushes
func (s *Service) Remove(id string) error {
	if err := s.store.Remove(id); err != nil {
		return err
	}
	s.flush()
	return nil
}

// List returns every template, newest first
func (s *Service) List() []Template {
	return s.store.List()
}

// Replace swaps the whole store and flushes (bulk import path)
func (s *Service) Replace(items []Template) {
	s.store.ImportAll(items)
	s.flush()
}

// Len returns the current number of templates
func (s *Service) Len() int {
	return s.store.Len()
}

func (s *Service) restore() {
	if s.db == nil {
		return
	}
	blob, ok, err := s.db.Load(storageKey)
	if err != nil {
		s.logger.Printf("Failed to load templates, seeding defaults: %v", err)
		return
	}
	if !ok {
		return
	}
	var items []Template
	if err := json.Unmarshal(blob, &items); err != nil {
		s.logger.Printf("Persisted templates are corrupt, seeding defaults: %v", err)
		return
	}
	s.store.ImportAll(items)
}

func (s *Service) flush() {
	if s.db == nil {
		return
	}
	blob, err := json.Marshal(s.store.List())
	if err != nil {
		s.logger.Printf("Failed to encode templates: %v", err)
		return
	}
	if err := s.db.Save(storageKey, blob); err != nil {
		s.logger.Printf("Failed to persist templates: %v", err)
	}
}
