package organizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oshokin/clean-folder/internal/config"
	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/logger"
	"github.com/oshokin/clean-folder/internal/utils"
)

// expandArchive unpacks path into its own folder under archivesDir and deletes the archive.
// A failed extraction is logged and counted, its folder is removed, and the archive is deleted anyway.
func (s *ServiceImpl) expandArchive(ctx context.Context, path, archivesDir string, result *Result) error {
	folderName := s.normalizer.Normalize(utils.TrimExtension(filepath.Base(path)))

	targetDir, err := s.prepareArchiveFolder(ctx, archivesDir, folderName, result)
	if err != nil {
		return err
	}

	extracted, err := s.extractor.Extract(ctx, path, targetDir)
	if err != nil {
		if removeErr := s.fs.RemoveAll(targetDir); removeErr != nil {
			return fmt.Errorf("failed to clean up '%s': %w", targetDir, removeErr)
		}

		// Interrupted runs keep the archive.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		logger.Warnf(ctx, "Failed to expand archive '%s': %v", path, err)

		result.ArchivesFailed++
	} else {
		logger.Debugf(ctx, "Expanded '%s' into '%s': %d files", path, targetDir, extracted.Files)

		result.ArchivesExpanded++
		result.ExtractedFiles += extracted.Files
		result.ExtractedBytes += extracted.Bytes
	}

	if err = s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete archive '%s': %w", path, err)
	}

	return nil
}

// prepareArchiveFolder creates a fresh extraction folder, applying the conflict policy
// when a folder with that name is already there.
func (s *ServiceImpl) prepareArchiveFolder(
	ctx context.Context,
	archivesDir, folderName string,
	result *Result,
) (string, error) {
	targetDir, err := childPath(archivesDir, folderName)
	if err != nil {
		return "", err
	}

	if s.cfg.ParsedConflictPolicy == config.ConflictPolicyOverwrite {
		if err = s.fs.RemoveAll(targetDir); err != nil {
			return "", fmt.Errorf("failed to replace '%s': %w", targetDir, err)
		}
	}

	targetDir, err = s.resolveDestination(ctx, archivesDir, folderName, result)
	if err != nil {
		return "", err
	}

	if err = s.fs.MkdirAll(targetDir, constants.DefaultFolderPermissions); err != nil {
		return "", fmt.Errorf("failed to create archive folder '%s': %w", targetDir, err)
	}

	return targetDir, nil
}
