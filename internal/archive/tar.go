package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/clean-folder/internal/logger"
)

func extractTarGz(ctx context.Context, w *entryWriter, r io.Reader) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	defer gz.Close() //nolint:errcheck // Nothing to flush on a reader.

	return extractTar(ctx, w, gz)
}

func extractTar(ctx context.Context, w *entryWriter, r io.Reader) error {
	reader := tar.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			err = w.mkdir(header.Name)
		case tar.TypeReg:
			err = w.writeFile(header.Name, header.FileInfo().Mode(), reader)
		default:
			logger.Debugf(ctx, "Skipping tar entry '%s' of type %q", header.Name, header.Typeflag)
		}

		if err != nil {
			return err
		}
	}
}
