package compose

import "github.com/directpro/directpro-api/internal/recents"

// OpenRequest represents a confirm action on the current draft. Either
// free-form input or an already-normalized dial_code + national_number
// pair identifies the recipient.
type OpenRequest struct {
	Input          string `json:"input"`
	DialCode       string `json:"dial_code"`
	NationalNumber string `json:"national_number"`
	Name           string `json:"name"`
	Message        string `json:"message"`
}

// OpenResponse represents a successfully composed outbound link
type OpenResponse struct {
	Address    string          `json:"address"`
	Link       string          `json:"link"`
	Contact    recents.Contact `json:"contact"`
	DailyCount int             `json:"daily_count"`
}
