package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/oshokin/clean-folder/internal/logger"
)

const lockFilePrefix = "clean-folder-"

// runLock is an advisory lock keyed by the organized root.
type runLock struct {
	path string
	lock *flock.Flock
}

// lockPath returns the lock file of root in the OS temp folder.
// The name is a name-based UUID of the root, so it is stable across runs.
func lockPath(root string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(root)))

	return filepath.Join(os.TempDir(), lockFilePrefix+id.String()+".lock")
}

// acquireRunLock takes the lock of root without blocking.
func acquireRunLock(ctx context.Context, root string) (*runLock, error) {
	l := &runLock{path: lockPath(root)}
	l.lock = flock.New(l.path)

	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock '%s': %w", l.path, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunLocked, root)
	}

	logger.Debugf(ctx, "Acquired run lock '%s'", l.path)

	return l, nil
}

// release unlocks the lock file. The file itself stays for the next run.
func (l *runLock) release(ctx context.Context) {
	if err := l.lock.Unlock(); err != nil {
		logger.Warnf(ctx, "Failed to release run lock '%s': %v", l.path, err)
	}
}
