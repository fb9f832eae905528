package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/directpro/directpro-api/internal/country"
)

// DefaultEndpoint is the free reverse-geocoding service the original
// client used; it needs no API key.
const DefaultEndpoint = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// Service resolves coordinates to an ISO country hint and applies it to
// the session's selected region. Every failure mode is silent: a
// missing hint just leaves the selection alone.
type Service struct {
	registry  *country.Registry
	selection *country.Selection
	client    *http.Client
	endpoint  string
	logger    *log.Logger
}

// NewService creates a geo hint service
func NewService(registry *country.Registry, selection *country.Selection, logger *log.Logger) *Service {
	return &Service{
		registry:  registry,
		selection: selection,
		client:    &http.Client{Timeout: 10 * time.Second},
		endpoint:  DefaultEndpoint,
		logger:    logger,
	}
}

type geocodeResponse struct {
	CountryCode string `json:"countryCode"`
}

// ApplyHint looks up the country for the coordinates and, when it maps
// to a known region, makes that region the selected one. It reports
// whether a region was applied.
func (s *Service) ApplyHint(ctx context.Context, latitude, longitude float64) (country.Region, bool) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&localityLanguage=en", s.endpoint, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Printf("Geo hint request build failed: %v", err)
		return country.Region{}, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Printf("Geo hint lookup failed: %v", err)
		return country.Region{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Printf("Geo hint lookup returned status %d", resp.StatusCode)
		return country.Region{}, false
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		s.logger.Printf("Geo hint response decode failed: %v", err)
		return country.Region{}, false
	}

	region, ok := s.registry.LookupByISO(data.CountryCode)
	if !ok {
		return country.Region{}, false
	}

	s.selection.Set(region.DialCode)
	return region, true
}
