package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip, activity, or packing item does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a request cannot be decoded into domain
// values (e.g. a malformed date or a non-numeric day index).
// Business fields themselves are not validated: empty titles and inverted
// date ranges are accepted as-is.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
