package organizer

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/archive"
	"github.com/oshokin/clean-folder/internal/category"
	"github.com/oshokin/clean-folder/internal/config"
	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/logger"
	"github.com/oshokin/clean-folder/internal/normalizer"
	"github.com/oshokin/clean-folder/internal/utils"
)

// Service organizes a folder tree.
type Service interface {
	// Organize sorts the configured root and returns what was done.
	// The result is nil only when the root cannot be used; after a later failure
	// it still holds everything processed before it.
	Organize(ctx context.Context) (*Result, error)
}

// ServiceImpl implements Service on an afero filesystem.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// fs is the filesystem the tree lives on.
	fs afero.Fs
	// normalizer produces the portable names of moved files and archive folders.
	normalizer normalizer.Normalizer
	// extractor expands archives.
	extractor archive.Extractor
	// root is the absolute folder being organized.
	root string
	// progress reports processed files.
	progress progressTracker
}

// NewService creates an organizer for cfg.ParsedRootPath.
func NewService(
	cfg *config.Config,
	fs afero.Fs,
	nameNormalizer normalizer.Normalizer,
	extractor archive.Extractor,
) Service {
	return &ServiceImpl{
		cfg:        cfg,
		fs:         fs,
		normalizer: nameNormalizer,
		extractor:  extractor,
		root:       filepath.Clean(cfg.ParsedRootPath),
		progress:   noopProgress{},
	}
}

// Organize sorts the configured root.
func (s *ServiceImpl) Organize(ctx context.Context) (*Result, error) {
	info, err := s.fs.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root path '%s': %w", s.root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, s.root)
	}

	result := NewResult()
	result.StartTime = time.Now()

	defer func() {
		result.EndTime = time.Now()
	}()

	s.progress = s.startProgress(ctx)
	defer s.progress.Finish()

	logger.Infof(ctx, "Organizing '%s'", s.root)

	dirResult, err := s.organizeDir(ctx, s.root)
	result.Merge(dirResult)

	if err != nil {
		return result, err
	}

	logger.Infof(ctx, "Organized %d files in '%s'", result.TotalFiles(), s.root)

	return result, nil
}

// organizeDir processes a snapshot of dir's entries, descends into non-reserved subfolders
// and finally prunes empty folders below dir (and dir itself unless it is the root).
func (s *ServiceImpl) organizeDir(ctx context.Context, dir string) (*Result, error) {
	result := NewResult()

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return result, fmt.Errorf("failed to list '%s': %w", dir, err)
	}

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if category.IsReserved(entry.Name()) {
				logger.Debugf(ctx, "Skipping category folder '%s'", path)
				continue
			}

			var childResult *Result

			childResult, err = s.organizeDir(ctx, path)
			result.Merge(childResult)

			if err != nil {
				return result, err
			}

			continue
		}

		err = s.processFile(ctx, path, entry, result)
		s.progress.Increment()

		if err != nil {
			return result, err
		}
	}

	removed, err := s.removeEmptyDirs(ctx, dir, dir != s.root)
	result.DirectoriesRemoved += removed

	return result, err
}

// processFile classifies one file, then moves it or expands it when it is an archive.
func (s *ServiceImpl) processFile(ctx context.Context, path string, info os.FileInfo, result *Result) error {
	ext := fileExtension(info.Name())
	name, isKnown := category.Classify(ext)

	destDir := filepath.Join(s.root, string(name))
	if err := s.fs.MkdirAll(destDir, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create category folder '%s': %w", destDir, err)
	}

	if name == category.Archives {
		if err := s.expandArchive(ctx, path, destDir, result); err != nil {
			return err
		}
	} else if err := s.moveFile(ctx, path, destDir, result); err != nil {
		return err
	}

	if isKnown {
		result.addKnown(ext)
	} else {
		result.addUnknown(ext)
	}

	result.addFile(name, info.Size())

	return nil
}

// moveFile moves path into destDir under its normalized name.
func (s *ServiceImpl) moveFile(ctx context.Context, path, destDir string, result *Result) error {
	dest, err := s.resolveDestination(ctx, destDir, s.normalizer.Normalize(filepath.Base(path)), result)
	if err != nil {
		return err
	}

	if err = s.fs.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", path, dest, err)
	}

	logger.Debugf(ctx, "Moved '%s' to '%s'", path, dest)

	return nil
}

// resolveDestination applies the conflict policy to name inside destDir.
func (s *ServiceImpl) resolveDestination(ctx context.Context, destDir, name string, result *Result) (string, error) {
	dest, err := childPath(destDir, name)
	if err != nil {
		return "", err
	}

	switch s.cfg.ParsedConflictPolicy {
	case config.ConflictPolicyOverwrite:
		return dest, nil
	case config.ConflictPolicyFail:
		exists, existsErr := utils.IsPathExist(s.fs, dest)
		if existsErr != nil {
			return "", fmt.Errorf("failed to check destination '%s': %w", dest, existsErr)
		}

		if exists {
			return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
		}

		return dest, nil
	case config.ConflictPolicyRename:
		unique, isRenamed, uniqueErr := utils.UniquePath(s.fs, dest)
		if uniqueErr != nil {
			return "", fmt.Errorf("failed to check destination '%s': %w", dest, uniqueErr)
		}

		if isRenamed {
			logger.Infof(ctx, "'%s' is taken, using '%s'", dest, unique)

			result.FilesRenamed++
		}

		return unique, nil
	default:
		return "", fmt.Errorf("%w: %s", config.ErrInvalidConflictPolicy, s.cfg.ParsedConflictPolicy)
	}
}

// childPath joins name onto dir and rejects results that are not strictly inside dir.
func childPath(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if path == filepath.Clean(dir) || !utils.IsWithinDir(dir, path) {
		return "", fmt.Errorf("%w: '%s' in '%s'", ErrUnsafeDestination, name, dir)
	}

	return path, nil
}

// fileExtension returns the lowercase extension of name.
// Names whose only dot is the leading one (".bashrc") and names ending in a dot have no extension.
func fileExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return ""
	}

	return strings.ToLower(ext)
}
