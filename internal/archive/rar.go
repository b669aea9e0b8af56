package archive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// extractRar unpacks a single-volume, unencrypted rar archive.
// Multi-volume and password-protected archives fail as corrupt.
func extractRar(ctx context.Context, w *entryWriter, r io.Reader) error {
	reader, err := rardecode.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	entries := 0

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		var header *rardecode.FileHeader

		header, err = reader.Next()
		if errors.Is(err, io.EOF) {
			if entries == 0 {
				return fmt.Errorf("%w: no entries", ErrCorruptArchive)
			}

			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
		}

		entries++

		if header.IsDir {
			err = w.mkdir(header.Name)
		} else {
			err = w.writeFile(header.Name, header.Mode(), reader)
		}

		if err != nil {
			return err
		}
	}
}
