package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/archive"
	"github.com/oshokin/clean-folder/internal/config"
	"github.com/oshokin/clean-folder/internal/logger"
	"github.com/oshokin/clean-folder/internal/normalizer"
	"github.com/oshokin/clean-folder/internal/service/organizer"
)

// ExecuteRootCommand is the entry point for the application.
// It takes the run lock, builds the organizer on the OS filesystem and organizes cfg.ParsedRootPath.
// The extension summary goes to stdout, statistics to stderr.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	if !cfg.NoLock {
		lock, err := acquireRunLock(ctx, cfg.ParsedRootPath)
		if err != nil {
			return err
		}

		defer lock.release(ctx)
	}

	nameNormalizer, err := normalizer.NewNormalizer(cfg.NameCacheSize)
	if err != nil {
		return fmt.Errorf("failed to initialize name normalizer: %w", err)
	}

	fs := afero.NewOsFs()
	s := organizer.NewService(cfg, fs, nameNormalizer, archive.NewExtractor(fs))

	return runOrganizer(ctx, cfg, fs, s, stdout, stderr)
}

// runOrganizer runs s and reports the result, also when the run stopped early.
func runOrganizer(
	ctx context.Context,
	cfg *config.Config,
	fs afero.Fs,
	s organizer.Service,
	stdout, stderr io.Writer,
) error {
	result, runErr := s.Organize(ctx)
	if result == nil {
		return runErr
	}

	if err := organizer.WriteSummary(stdout, result); err != nil {
		logger.Errorf(ctx, "Failed to print summary: %v", err)
	}

	if cfg.ShowStats {
		if err := organizer.WriteStatistics(stderr, result); err != nil {
			logger.Errorf(ctx, "Failed to print statistics: %v", err)
		}
	}

	if cfg.ReportPath != "" {
		report := organizer.NewReport(cfg.ParsedRootPath, result, runErr)
		if err := organizer.WriteReport(fs, cfg.ReportPath, report); err != nil {
			logger.Errorf(ctx, "Failed to write report: %v", err)
		} else {
			logger.Infof(ctx, "Report written to '%s'", cfg.ReportPath)
		}
	}

	return runErr
}
