package app

import "errors"

// ErrRunLocked indicates that another run is organizing the same root.
var ErrRunLocked = errors.New("another run is already organizing this folder")
