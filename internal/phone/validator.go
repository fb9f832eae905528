package phone

import (
	"fmt"

	"github.com/directpro/directpro-api/internal/country"
)

// Validation failure reasons, in the order they are checked
const (
	ReasonMissingNumber = "missing number"
	ReasonTooShort      = "too short"
	ReasonTooLong       = "too long"
)

// National number length bounds applied before any region pattern, so a
// too-short number always reports "too short" rather than a region
// format error.
const (
	minNationalLength = 7
	maxNationalLength = 15
)

// Verdict is the result of validating a national number. It is a value,
// never an error: an invalid number is an expected outcome.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Validate scores a digits-only national number against the selected
// region. Pass ok=false when the dial code did not match the registry;
// numbers under an unverified dial code only get the length checks.
func Validate(nationalNumber string, region country.Region, known bool) Verdict {
	if nationalNumber == "" {
		return Verdict{Reason: ReasonMissingNumber}
	}
	if len(nationalNumber) < minNationalLength {
		return Verdict{Reason: ReasonTooShort}
	}
	if len(nationalNumber) > maxNationalLength {
		return Verdict{Reason: ReasonTooLong}
	}
	if known && region.Pattern != nil && !region.Pattern.MatchString(nationalNumber) {
		return Verdict{Reason: fmt.Sprintf("non-standard format for %s", region.Name)}
	}
	return Verdict{Valid: true}
}
