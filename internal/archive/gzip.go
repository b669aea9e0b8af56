package archive

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/logger"
)

// defaultGzipOutputName names the output of an archive called just ".gz".
const defaultGzipOutputName = "data"

// gzipOutputName returns the name of the file stored in a plain .gz archive.
func gzipOutputName(archivePath string) string {
	name := filepath.Base(archivePath)
	name = name[:len(name)-len(constants.ExtensionGzip)]

	if name == "" {
		return defaultGzipOutputName
	}

	return name
}

// extractGzip decompresses a single file. The output is written to a hidden
// .part file first and renamed once the whole stream has been verified.
func extractGzip(ctx context.Context, w *entryWriter, r io.Reader, outputName string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	defer gz.Close() //nolint:errcheck // Nothing to flush on a reader.

	finalPath, err := w.resolve(outputName)
	if err != nil {
		return err
	}

	tempPath := filepath.Join(w.targetDir, "."+uuid.New().String()+constants.PartialFileExtension)

	if err = w.writeTo(tempPath, constants.DefaultFilePermissions, gz); err != nil {
		if removeErr := w.fs.Remove(tempPath); removeErr != nil {
			logger.Debugf(ctx, "Failed to remove partial file '%s': %v", tempPath, removeErr)
		}

		return err
	}

	return w.fs.Rename(tempPath, finalPath)
}
