package country

import (
	"regexp"
	"strings"
)

// DefaultDialCode is the region selected before any input or geo hint
const DefaultDialCode = "+39"

// Registry is the static table of supported regions. Lookups never fail
// with an error; a miss returns ok=false.
type Registry struct {
	regions []Region
}

// NewRegistry creates a registry seeded with the supported regions
func NewRegistry() *Registry {
	return &Registry{
		regions: []Region{
			{Name: "Italia", DialCode: "+39", ISO: "IT", Flag: "🇮🇹", Pattern: regexp.MustCompile(`^\d{9,10}$`)},
			{Name: "USA", DialCode: "+1", ISO: "US", Flag: "🇺🇸", Pattern: regexp.MustCompile(`^\d{10}$`)},
			{Name: "UK", DialCode: "+44", ISO: "GB", Flag: "🇬🇧", Pattern: regexp.MustCompile(`^\d{10}$`)},
			{Name: "Svizzera", DialCode: "+41", ISO: "CH", Flag: "🇨🇭", Pattern: regexp.MustCompile(`^\d{9}$`)},
			{Name: "Spagna", DialCode: "+34", ISO: "ES", Flag: "🇪🇸", Pattern: regexp.MustCompile(`^\d{9}$`)},
			{Name: "Francia", DialCode: "+33", ISO: "FR", Flag: "🇫🇷", Pattern: regexp.MustCompile(`^\d{9}$`)},
			{Name: "Germania", DialCode: "+49", ISO: "DE", Flag: "🇩🇪", Pattern: regexp.MustCompile(`^\d{10,11}$`)},
		},
	}
}

// LookupByDialCode finds the region with the exact dial code (leading "+")
func (r *Registry) LookupByDialCode(code string) (Region, bool) {
	for _, region := range r.regions {
		if region.DialCode == code {
			return region, true
		}
	}
	return Region{}, false
}

// LookupByISO finds a region by its ISO 3166-1 alpha-2 code. Geo
// collaborators may report lowercase codes, so the match ignores case.
func (r *Registry) LookupByISO(iso string) (Region, bool) {
	for _, region := range r.regions {
		if strings.EqualFold(region.ISO, iso) {
			return region, true
		}
	}
	return Region{}, false
}

// MatchDialCodePrefix finds the region whose dial code is the longest
// prefix of the given "+"-prefixed string. Dial codes have different
// lengths ("+1" vs "+41"), so a known-region match must win over a
// naive fixed-length read.
func (r *Registry) MatchDialCodePrefix(input string) (Region, bool) {
	var best Region
	found := false
	for _, region := range r.regions {
		if strings.HasPrefix(input, region.DialCode) {
			if !found || len(region.DialCode) > len(best.DialCode) {
				best = region
				found = true
			}
		}
	}
	return best, found
}

// All returns every region in table order
func (r *Registry) All() []Region {
	out := make([]Region, len(r.regions))
	copy(out, r.regions)
	return out
}
