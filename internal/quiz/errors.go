package quiz

import "errors"

// ErrNotFound is returned when a referenced quiz does not exist. Missing
// individual questions during scoring are not an error and are skipped.
var ErrNotFound = errors.New("quiz not found")
