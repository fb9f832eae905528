package phone

import (
	"testing"

	"github.com/directpro/directpro-api/internal/country"
)

func TestValidateOrdering(t *testing.T) {
	registry := country.NewRegistry()
	italy, _ := registry.LookupByDialCode("+39")
	usa, _ := registry.LookupByDialCode("+1")

	cases := []struct {
		name       string
		national   string
		region     country.Region
		known      bool
		wantValid  bool
		wantReason string
	}{
		{"empty number", "", italy, true, false, ReasonMissingNumber},
		{"too short beats region pattern", "123", italy, true, false, ReasonTooShort},
		{"six digits still too short", "123456", usa, true, false, ReasonTooShort},
		{"too long", "1234567890123456", italy, true, false, ReasonTooLong},
		{"italian pattern mismatch", "12345678", italy, true, false, "non-standard format for Italia"},
		{"us pattern mismatch", "123456789", usa, true, false, "non-standard format for USA"},
		{"valid italian mobile", "3331234567", italy, true, true, ""},
		{"valid us number", "2025550123", usa, true, true, ""},
		{"unknown region skips pattern", "9123456789", country.Region{}, false, true, ""},
		{"unknown region still length checked", "123", country.Region{}, false, false, ReasonTooShort},
	}

	for _, tc := range cases {
		got := Validate(tc.national, tc.region, tc.known)
		if got.Valid != tc.wantValid {
			t.Fatalf("%s: expected valid=%v, got %v (reason %q)", tc.name, tc.wantValid, got.Valid, got.Reason)
		}
		if got.Reason != tc.wantReason {
			t.Fatalf("%s: expected reason %q, got %q", tc.name, tc.wantReason, got.Reason)
		}
	}
}

func TestValidateLengthBeforeRegionForEveryRegion(t *testing.T) {
	registry := country.NewRegistry()

	// A 3-digit number fails every region pattern too, but the verdict
	// must always be the universal length guard.
	for _, region := range registry.All() {
		got := Validate("123", region, true)
		if got.Valid || got.Reason != ReasonTooShort {
			t.Fatalf("%s: expected %q, got valid=%v reason=%q", region.Name, ReasonTooShort, got.Valid, got.Reason)
		}
	}
}
