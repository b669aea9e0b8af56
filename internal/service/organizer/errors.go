package organizer

import "errors"

var (
	// ErrNotADirectory indicates that the root path is not a folder.
	ErrNotADirectory = errors.New("root path is not a directory")
	// ErrDestinationExists indicates that the destination is taken and the policy forbids replacing it.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrUnsafeDestination indicates that a normalized name does not point inside its target folder.
	ErrUnsafeDestination = errors.New("destination escapes its folder")
)
