package repository

import "errors"

// ErrNotFound is returned when a lookup or mutation targets a record that
// does not exist in the database.
var ErrNotFound = errors.New("not found")
