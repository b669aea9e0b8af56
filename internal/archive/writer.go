package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/utils"
)

// ownerReadWrite keeps extracted files writable by the owner.
const ownerReadWrite os.FileMode = 0o600

// entryWriter materializes archive entries under targetDir.
type entryWriter struct {
	fs        afero.Fs
	targetDir string
	result    *ExtractResult
}

// resolve maps an entry name to a path under targetDir.
func (w *entryWriter) resolve(name string) (string, error) {
	dest := filepath.Join(w.targetDir, filepath.FromSlash(name))
	if !utils.IsWithinDir(w.targetDir, dest) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
	}

	return dest, nil
}

// mkdir creates a directory entry.
func (w *entryWriter) mkdir(name string) error {
	dest, err := w.resolve(name)
	if err != nil {
		return err
	}

	return w.fs.MkdirAll(dest, constants.DefaultFolderPermissions)
}

// writeFile creates a regular file entry with the content of r.
func (w *entryWriter) writeFile(name string, mode os.FileMode, r io.Reader) error {
	dest, err := w.resolve(name)
	if err != nil {
		return err
	}

	if filepath.Clean(dest) == filepath.Clean(w.targetDir) {
		return fmt.Errorf("%w: %q", ErrUnsafeEntry, name)
	}

	return w.writeTo(dest, mode, r)
}

// writeTo writes r into dest, creating parent folders as needed.
func (w *entryWriter) writeTo(dest string, mode os.FileMode, r io.Reader) error {
	if err := w.fs.MkdirAll(filepath.Dir(dest), constants.DefaultFolderPermissions); err != nil {
		return err
	}

	perm := mode.Perm()
	if perm == 0 {
		perm = constants.DefaultFilePermissions
	}

	file, err := w.fs.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm|ownerReadWrite)
	if err != nil {
		return err
	}

	written, copyErr := io.Copy(file, r)
	closeErr := file.Close()

	if copyErr != nil {
		return fmt.Errorf("%w: %w", ErrCorruptArchive, copyErr)
	}

	if closeErr != nil {
		return closeErr
	}

	w.result.Files++
	w.result.Bytes += written

	return nil
}
