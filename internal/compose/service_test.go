package compose

import (
	"testing"
	"time"

	"github.com/directpro/directpro-api/internal/country"
	"github.com/directpro/directpro-api/internal/phone"
	"github.com/directpro/directpro-api/internal/recents"
)

func newTestService(t *testing.T) (*Service, *recents.Service, *country.Selection) {
	t.Helper()

	registry := country.NewRegistry()
	selection := country.NewSelection(country.DefaultDialCode)
	normalizer := phone.NewNormalizer(registry)
	recentsService := recents.NewService(nil, testLogger())
	counter := NewCounter(newFakeDB(), testLogger(), time.Now())

	return NewService(registry, selection, normalizer, recentsService, counter, testLogger()), recentsService, selection
}

func TestOpenComposesLinkAndRecordsContact(t *testing.T) {
	service, recentsService, _ := newTestService(t)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	resp, err := service.Open(OpenRequest{
		Input:   "+39 333-123-4567",
		Name:    "Mario",
		Message: "Ciao",
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Address != "393331234567" {
		t.Fatalf("expected address 393331234567, got %s", resp.Address)
	}
	if resp.Link != "https://wa.me/393331234567?text=Ciao" {
		t.Fatalf("unexpected link: %s", resp.Link)
	}
	if resp.DailyCount != 1 {
		t.Fatalf("expected daily count 1, got %d", resp.DailyCount)
	}
	if resp.Contact.FullNumber != "+393331234567" || resp.Contact.DisplayName != "Mario" {
		t.Fatalf("unexpected contact: %+v", resp.Contact)
	}
	if resp.Contact.LastUsedAt != now.UnixMilli() {
		t.Fatalf("expected timestamp %d, got %d", now.UnixMilli(), resp.Contact.LastUsedAt)
	}

	if recentsService.Len() != 1 {
		t.Fatalf("expected 1 recent contact, got %d", recentsService.Len())
	}
}

func TestOpenRepeatSendKeepsName(t *testing.T) {
	service, _, _ := newTestService(t)
	now := time.Now()

	if _, err := service.Open(OpenRequest{Input: "+393331234567", Name: "Mario"}, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := service.Open(OpenRequest{Input: "+393331234567"}, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Contact.DisplayName != "Mario" {
		t.Fatalf("expected name Mario to be kept, got %q", resp.Contact.DisplayName)
	}
	if resp.DailyCount != 2 {
		t.Fatalf("expected daily count 2, got %d", resp.DailyCount)
	}
}

func TestOpenInvalidDraftMutatesNothing(t *testing.T) {
	service, recentsService, _ := newTestService(t)
	now := time.Now()

	_, err := service.Open(OpenRequest{Input: "+39 123"}, now)
	draftErr, ok := asInvalidDraftError(err)
	if !ok {
		t.Fatalf("expected InvalidDraftError, got %v", err)
	}
	if draftErr.Reason != phone.ReasonTooShort {
		t.Fatalf("expected reason %q, got %q", phone.ReasonTooShort, draftErr.Reason)
	}

	if recentsService.Len() != 0 {
		t.Fatal("an invalid draft must not touch the recents store")
	}
	if got := service.counter.Current(now); got != 0 {
		t.Fatalf("an invalid draft must not bump the counter, got %d", got)
	}
}

func TestOpenExplicitPairUsesSelectionFallback(t *testing.T) {
	service, _, selection := newTestService(t)
	selection.Set("+44")

	resp, err := service.Open(OpenRequest{NationalNumber: "7912 345 678"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Address != "447912345678" {
		t.Fatalf("expected address 447912345678, got %s", resp.Address)
	}
}

func TestOpenUpdatesSelection(t *testing.T) {
	service, _, selection := newTestService(t)

	if _, err := service.Open(OpenRequest{Input: "+12025550123"}, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selection.DialCode() != "+1" {
		t.Fatalf("expected selection +1, got %s", selection.DialCode())
	}
}

func TestOpenUnknownDialCodeStillComposes(t *testing.T) {
	service, _, _ := newTestService(t)

	// An unregistered prefix goes through the generic extraction and
	// only gets the length checks, no region pattern.
	resp, err := service.Open(OpenRequest{Input: "+7 912 345 6789"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Address != "79123456789" {
		t.Fatalf("expected address 79123456789, got %s", resp.Address)
	}
}
