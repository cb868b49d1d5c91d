package repository

import "errors"

// ErrNotFound is returned by repositories when a row does not exist.
// Callers separate missing rows from storage faults with errors.Is.
var ErrNotFound = errors.New("not found")
