package repo

import "errors"

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on unique constraint violations.
var ErrAlreadyExists = errors.New("already exists")
