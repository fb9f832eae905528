package link

import (
	"errors"
	"net/url"
	"strings"
)

// BaseURL is the WhatsApp click-to-chat endpoint
const BaseURL = "https://wa.me/"

var (
	// ErrMissingDialCode indicates an empty or "+"-only dial code
	ErrMissingDialCode = errors.New("missing dial code")
	// ErrMissingNumber indicates an empty national number
	ErrMissingNumber = errors.New("missing national number")
	// ErrNonDigit indicates a dial code or national number carrying non-digit characters
	ErrNonDigit = errors.New("dial code and national number must be digits")
)

// Link is a built outbound address. Address doubles as the QR payload
// identity; URL is what gets handed to the messaging client.
type Link struct {
	Address string `json:"address"`
	URL     string `json:"link"`
}

// Build derives the canonical outbound link from an already-validated
// draft. It is a pure formatter: same inputs always produce the same
// string byte-for-byte. It does not re-run the validator; callers must
// not invoke it on invalid drafts.
func Build(dialCode, nationalNumber, message string) (Link, error) {
	dialDigits := strings.TrimPrefix(dialCode, "+")
	if dialDigits == "" {
		return Link{}, ErrMissingDialCode
	}
	if nationalNumber == "" {
		return Link{}, ErrMissingNumber
	}
	if !isDigits(dialDigits) || !isDigits(nationalNumber) {
		return Link{}, ErrNonDigit
	}

	address := dialDigits + nationalNumber
	built := BaseURL + address
	if message != "" {
		built += "?text=" + encodeMessage(message)
	}

	return Link{Address: address, URL: built}, nil
}

// encodeMessage percent-encodes the message body the way browsers do
// (encodeURIComponent): spaces become %20, not "+".
func encodeMessage(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
