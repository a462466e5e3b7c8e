package services

import "errors"

// ErrNotFound is returned when a requested record does not exist. Handlers
// translate it into a 404 response.
var ErrNotFound = errors.New("resource not found")
