package repository

import "errors"

// ErrNoRows is returned by Update and Delete when no row matched the id.
var ErrNoRows = errors.New("no rows affected")
