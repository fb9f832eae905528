package recents

// Contact is one entry in the recents directory. FullNumber is the
// unique key: the dial code concatenated with the national digits.
type Contact struct {
	FullNumber  string `json:"full_number"`
	DisplayName string `json:"display_name,omitempty"`
	Note        string `json:"note,omitempty"`
	LastUsedAt  int64  `json:"last_used_at"`
	Pinned      bool   `json:"pinned"`
}

// NoteRequest represents a request to annotate a contact
type NoteRequest struct {
	FullNumber string `json:"full_number" binding:"required"`
	Note       string `json:"note"`
}

// PinRequest represents a request to toggle a contact's pinned flag
type PinRequest struct {
	FullNumber string `json:"full_number" binding:"required"`
}

// RemoveRequest represents a request to delete a contact
type RemoveRequest struct {
	FullNumber string `json:"full_number" binding:"required"`
}

// ListResponse represents the response for contact listing
type ListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}
