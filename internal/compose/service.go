package compose

import (
	"log"
	"time"

	"github.com/directpro/directpro-api/internal/country"
	"github.com/directpro/directpro-api/internal/link"
	"github.com/directpro/directpro-api/internal/phone"
	"github.com/directpro/directpro-api/internal/recents"
)

// Service orchestrates the confirm action: normalize, validate, build
// the link, record the contact and bump the daily counter. An invalid
// draft performs no mutation at all.
type Service struct {
	registry   *country.Registry
	selection  *country.Selection
	normalizer *phone.Normalizer
	recents    *recents.Service
	counter    *Counter
	logger     *log.Logger
}

// NewService creates a compose service
func NewService(registry *country.Registry, selection *country.Selection, normalizer *phone.Normalizer, recentsService *recents.Service, counter *Counter, logger *log.Logger) *Service {
	return &Service{
		registry:   registry,
		selection:  selection,
		normalizer: normalizer,
		recents:    recentsService,
		counter:    counter,
		logger:     logger,
	}
}

// Open performs the confirm action and returns the built link
func (s *Service) Open(req OpenRequest, now time.Time) (OpenResponse, error) {
	dialCode, nationalNumber := s.resolveDraft(req)

	region, known := s.registry.LookupByDialCode(dialCode)
	verdict := phone.Validate(nationalNumber, region, known)
	if !verdict.Valid {
		return OpenResponse{}, &InvalidDraftError{Reason: verdict.Reason}
	}

	built, err := link.Build(dialCode, nationalNumber, req.Message)
	if err != nil {
		// Validate already passed, so this only fires on a malformed
		// dial code from the generic "+" extraction path.
		return OpenResponse{}, &InvalidDraftError{Reason: err.Error()}
	}

	s.selection.Set(dialCode)

	fullNumber := dialCode + nationalNumber
	contact := s.recents.Upsert(fullNumber, req.Name, now.UnixMilli())
	count := s.counter.Increment(now)

	s.logger.Printf("Composed link for %s (daily count %d)", fullNumber, count)

	return OpenResponse{
		Address:    built.Address,
		Link:       built.URL,
		Contact:    contact,
		DailyCount: count,
	}, nil
}

// resolveDraft turns the request into a (dialCode, nationalNumber)
// pair. Free-form input goes through the normalizer; an explicit pair
// is taken as-is apart from digit stripping.
func (s *Service) resolveDraft(req OpenRequest) (string, string) {
	if req.Input != "" {
		selected := req.DialCode
		if selected == "" {
			selected = s.selection.DialCode()
		}
		normalized := s.normalizer.Normalize(req.Input, selected)
		return normalized.DialCode, normalized.NationalNumber
	}

	dialCode := req.DialCode
	if dialCode == "" {
		dialCode = s.selection.DialCode()
	}
	return dialCode, phone.Digits(req.NationalNumber)
}
