package repositories

import "errors"

// ErrNotFound indicates the requested record does not exist. Repository
// implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("record not found")
