package backup

import (
	"fmt"
	"strings"

	"github.com/directpro/directpro-api/internal/phone"
	"github.com/directpro/directpro-api/internal/recents"
	"github.com/directpro/directpro-api/internal/templates"
)

// Service exports and imports the whole directory. Import is atomic:
// the document is validated in full before either store is replaced,
// so a malformed record leaves prior state untouched.
type Service struct {
	recents   *recents.Service
	templates *templates.Service
}

// NewService creates a backup service over both stores
func NewService(recentsService *recents.Service, templatesService *templates.Service) *Service {
	return &Service{recents: recentsService, templates: templatesService}
}

// Export returns the current contents of both stores
func (s *Service) Export() Document {
	return Document{
		Recents:   s.recents.ExportAll(),
		Templates: s.templates.List(),
	}
}

// Import replaces both stores with the document's contents
func (s *Service) Import(doc Document) error {
	if err := validate(doc); err != nil {
		return err
	}

	s.recents.Replace(doc.Recents)
	s.templates.Replace(doc.Templates)
	return nil
}

func validate(doc Document) error {
	seen := make(map[string]bool, len(doc.Recents))
	for i, contact := range doc.Recents {
		if !strings.HasPrefix(contact.FullNumber, "+") {
			return fmt.Errorf("recents[%d]: full_number must start with \"+\"", i)
		}
		digits := contact.FullNumber[1:]
		if digits == "" || phone.Digits(digits) != digits {
			return fmt.Errorf("recents[%d]: full_number must be \"+\" followed by digits", i)
		}
		if seen[contact.FullNumber] {
			return fmt.Errorf("recents[%d]: duplicate full_number %s", i, contact.FullNumber)
		}
		seen[contact.FullNumber] = true
	}

	ids := make(map[string]bool, len(doc.Templates))
	for i, t := range doc.Templates {
		if t.ID == "" {
			return fmt.Errorf("templates[%d]: missing id", i)
		}
		if ids[t.ID] {
			return fmt.Errorf("templates[%d]: duplicate id %s", i, t.ID)
		}
		ids[t.ID] = true
	}

	return nil
}
