package phone

// NormalizeRequest represents a request to parse free-form phone input
type NormalizeRequest struct {
	Input    string `json:"input" binding:"required"`
	DialCode string `json:"dial_code"`
}

// NormalizeResponse represents the parsed dial code and national number
type NormalizeResponse struct {
	DialCode       string `json:"dial_code"`
	NationalNumber string `json:"national_number"`
	Region         string `json:"region,omitempty"`
	KnownRegion    bool   `json:"known_region"`
}

// ValidateRequest represents a request to validate a normalized number
type ValidateRequest struct {
	DialCode       string `json:"dial_code" binding:"required"`
	NationalNumber string `json:"national_number"`
}
