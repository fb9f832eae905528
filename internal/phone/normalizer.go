package phone

import (
	"regexp"
	"strings"

	"github.com/directpro/directpro-api/internal/country"
)

var (
	nonDigitRegex     = regexp.MustCompile(`\D`)
	genericDialRegex  = regexp.MustCompile(`^\+(\d{1,4})`)
	separatorReplacer = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
)

// Normalized is the result of parsing free-form phone input
type Normalized struct {
	DialCode       string // always carries the leading "+"
	NationalNumber string // digits only, may be empty
	KnownRegion    bool   // dial code matched the registry
}

// Normalizer parses raw user input into a dial code and national number
type Normalizer struct {
	registry *country.Registry
}

// NewNormalizer creates a normalizer over the given registry
func NewNormalizer(registry *country.Registry) *Normalizer {
	return &Normalizer{registry: registry}
}

// Normalize parses arbitrary text (spaces, hyphens, parentheses, optional
// leading "+"). A "+"-prefixed input selects its own dial code: first by
// longest-prefix match against the registry, then by a generic 1-4 digit
// extraction for regions outside the table. Input without "+" keeps the
// currently selected dial code.
func (n *Normalizer) Normalize(input, selectedDial string) Normalized {
	sanitized := separatorReplacer.Replace(strings.TrimSpace(input))

	if strings.HasPrefix(sanitized, "+") {
		if region, ok := n.registry.MatchDialCodePrefix(sanitized); ok {
			rest := sanitized[len(region.DialCode):]
			return Normalized{
				DialCode:       region.DialCode,
				NationalNumber: Digits(rest),
				KnownRegion:    true,
			}
		}

		if m := genericDialRegex.FindString(sanitized); m != "" {
			return Normalized{
				DialCode:       m,
				NationalNumber: Digits(sanitized[len(m):]),
			}
		}
	}

	_, known := n.registry.LookupByDialCode(selectedDial)
	return Normalized{
		DialCode:       selectedDial,
		NationalNumber: Digits(sanitized),
		KnownRegion:    known,
	}
}

// Digits strips everything but decimal digits
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
