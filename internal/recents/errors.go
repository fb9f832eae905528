package recents

import "errors"

// ErrNotFound indicates no contact exists for the given full number
var ErrNotFound = errors.New("contact not found")
