package compose

import "fmt"

// InvalidDraftError indicates the confirm action was attempted on a
// draft that failed validation. It carries the verdict reason so the
// caller can render it.
type InvalidDraftError struct {
	Reason string
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("invalid draft: %s", e.Reason)
}

func asInvalidDraftError(err error) (*InvalidDraftError, bool) {
	if err == nil {
		return nil, false
	}
	draftErr, ok := err.(*InvalidDraftError)
	return draftErr, ok
}
