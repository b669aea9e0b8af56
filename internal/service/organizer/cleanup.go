package organizer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/logger"
)

// removeEmptyDirs removes every empty folder below dir, deepest first,
// then dir itself when removeSelf is set and nothing is left in it.
// It returns the number of removed folders.
func (s *ServiceImpl) removeEmptyDirs(ctx context.Context, dir string, removeSelf bool) (int64, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list '%s': %w", dir, err)
	}

	var removed int64

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		n, err := s.removeEmptyDirs(ctx, filepath.Join(dir, entry.Name()), true)
		removed += n

		if err != nil {
			return removed, err
		}
	}

	if !removeSelf {
		return removed, nil
	}

	isEmpty, err := afero.IsEmpty(s.fs, dir)
	if err != nil {
		return removed, fmt.Errorf("failed to inspect '%s': %w", dir, err)
	}

	if !isEmpty {
		return removed, nil
	}

	if err = s.fs.Remove(dir); err != nil {
		return removed, fmt.Errorf("failed to remove empty folder '%s': %w", dir, err)
	}

	logger.Debugf(ctx, "Removed empty folder '%s'", dir)

	return removed + 1, nil
}
