package archive

import "errors"

var (
	// ErrUnsupportedFormat indicates that the archive format is not recognized by name.
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	// ErrCorruptArchive indicates that the archive could not be read.
	ErrCorruptArchive = errors.New("corrupt archive")
	// ErrUnsafeEntry indicates an entry whose path points outside the target folder.
	ErrUnsafeEntry = errors.New("archive entry escapes target folder")
)
