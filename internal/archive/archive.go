package archive

//go:generate $MOCKGEN -source=archive.go -destination=mocks/archive_mock.go

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/logger"
)

// Format is an archive format recognized by its file name.
type Format uint8

const (
	// FormatUnknown - the name does not look like a supported archive.
	FormatUnknown Format = iota
	// FormatZip - zip archive.
	FormatZip
	// FormatTar - uncompressed tar archive.
	FormatTar
	// FormatTarGz - gzip-compressed tar archive (.tar.gz, .tgz).
	FormatTarGz
	// FormatGzip - a single gzip-compressed file.
	FormatGzip
	// FormatRar - rar archive.
	FormatRar
)

// String returns a human-readable representation of the Format.
func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "unknown"
	case FormatZip:
		return "zip"
	case FormatTar:
		return "tar"
	case FormatTarGz:
		return "tar.gz"
	case FormatGzip:
		return "gzip"
	case FormatRar:
		return "rar"
	default:
		return fmt.Sprintf("unknown: %d", f)
	}
}

// DetectFormat chooses the archive format from a file name, case-insensitively.
func DetectFormat(filename string) Format {
	name := strings.ToLower(filepath.Base(filename))

	switch {
	case strings.HasSuffix(name, constants.ExtensionTarGz), strings.HasSuffix(name, constants.ExtensionTgz):
		return FormatTarGz
	case strings.HasSuffix(name, constants.ExtensionZip):
		return FormatZip
	case strings.HasSuffix(name, constants.ExtensionTar):
		return FormatTar
	case strings.HasSuffix(name, constants.ExtensionGzip):
		return FormatGzip
	case strings.HasSuffix(name, constants.ExtensionRar):
		return FormatRar
	default:
		return FormatUnknown
	}
}

// ExtractResult describes what an extraction wrote.
type ExtractResult struct {
	// Format is the detected archive format.
	Format Format
	// Files is the number of regular files written.
	Files int64
	// Bytes is the total size of the written files.
	Bytes int64
}

// Extractor unpacks archives into a folder.
type Extractor interface {
	// Extract unpacks archivePath into targetDir, which must already exist.
	// On failure targetDir may hold a partial result; cleaning it up is up to the caller.
	Extract(ctx context.Context, archivePath, targetDir string) (*ExtractResult, error)
}

// ExtractorImpl extracts zip, tar, tar.gz, gz and rar archives on an afero filesystem.
type ExtractorImpl struct {
	// fs is the filesystem both archives and extracted files live on.
	fs afero.Fs
}

// NewExtractor creates an extractor working on fs.
func NewExtractor(fs afero.Fs) *ExtractorImpl {
	return &ExtractorImpl{fs: fs}
}

// Extract unpacks archivePath into targetDir.
func (e *ExtractorImpl) Extract(ctx context.Context, archivePath, targetDir string) (*ExtractResult, error) {
	format := DetectFormat(archivePath)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, archivePath)
	}

	file, err := e.fs.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	defer file.Close() //nolint:errcheck // Read-only file, close error is not actionable.

	w := &entryWriter{
		fs:        e.fs,
		targetDir: targetDir,
		result:    &ExtractResult{Format: format},
	}

	logger.Debugf(ctx, "Extracting %s archive '%s' to '%s'", format, archivePath, targetDir)

	switch format {
	case FormatZip:
		err = extractZip(ctx, w, file)
	case FormatTar:
		err = extractTar(ctx, w, file)
	case FormatTarGz:
		err = extractTarGz(ctx, w, file)
	case FormatGzip:
		err = extractGzip(ctx, w, file, gzipOutputName(archivePath))
	case FormatRar:
		err = extractRar(ctx, w, file)
	case FormatUnknown:
		err = ErrUnsupportedFormat
	}

	if err != nil {
		return w.result, fmt.Errorf("failed to extract '%s': %w", archivePath, err)
	}

	return w.result, nil
}
