package templates

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates no template exists for the given id
var ErrNotFound = errors.New("template not found")

// Store is a small unbounded collection of templates, newest first
type Store struct {
	mu    sync.Mutex
	items []Template
}

// NewStore creates an empty template store
func NewStore() *Store {
	return &Store{}
}

// Add saves a new template at the head of the list
func (s *Store) Add(label, body string) Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Template{ID: uuid.NewString(), Label: label, Body: body}
	s.items = append([]Template{t}, s.items...)
	return t
}

// Update edits an existing template in place
func (s *Store) Update(id, label, body string) (Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Label = label
			s.items[i].Body = body
			return s.items[i], nil
		}
	}
	return Template{}, ErrNotFound
}

// Remove deletes a template
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// List returns every template, most recently added first
func (s *Store) List() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Template, len(s.items))
	copy(out, s.items)
	return out
}

// ImportAll replaces the entire store (bulk import path)
func (s *Store) ImportAll(items []Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Template, len(items))
	copy(s.items, items)
}

// Len returns the current number of templates
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
