package templates

// Template is a reusable message snippet
type Template struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Body  string `json:"body"`
}

// AddRequest represents a request to save a new template
type AddRequest struct {
	Label string `json:"label" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// UpdateRequest represents a request to edit an existing template
type UpdateRequest struct {
	Label string `json:"label" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// ListResponse represents the response for template listing
type ListResponse struct {
	Templates []Template `json:"templates"`
	Total     int        `json:"total"`
}
