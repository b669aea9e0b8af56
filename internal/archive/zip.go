package archive

import (
	"archive/zip"
	"context"
	"fmt"

	"github.com/spf13/afero"
)

func extractZip(ctx context.Context, w *entryWriter, file afero.File) error {
	stat, err := file.Stat()
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(file, stat.Size())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	for _, entry := range reader.File {
		if err = ctx.Err(); err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err = w.mkdir(entry.Name); err != nil {
				return err
			}

			continue
		}

		if err = extractZipEntry(w, entry); err != nil {
			return err
		}
	}

	return nil
}

func extractZipEntry(w *entryWriter, entry *zip.File) error {
	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	defer rc.Close() //nolint:errcheck // Checksum errors surface through Read.

	return w.writeFile(entry.Name, entry.Mode(), rc)
}
