package repository

import "errors"

// ErrSourceNotFound is returned when a backing file does not exist.
var ErrSourceNotFound = errors.New("source not found")
