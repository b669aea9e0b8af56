package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/clean-folder/internal/category"
	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/utils"
)

const reportIndent = 2

// Report is the YAML document describing a run.
type Report struct {
	Root               string           `yaml:"root"`
	StartedAt          time.Time        `yaml:"started_at"`
	FinishedAt         time.Time        `yaml:"finished_at"`
	Duration           string           `yaml:"duration"`
	Error              string           `yaml:"error,omitempty"`
	KnownExtensions    []string         `yaml:"known_extensions"`
	UnknownExtensions  []string         `yaml:"unknown_extensions"`
	Categories         []CategoryReport `yaml:"categories"`
	Archives           ArchivesReport   `yaml:"archives"`
	FilesRenamed       int64            `yaml:"files_renamed"`
	DirectoriesRemoved int64            `yaml:"directories_removed"`
}

// CategoryReport is one category line of a Report.
type CategoryReport struct {
	Name  string `yaml:"name"`
	Files int64  `yaml:"files"`
	Bytes int64  `yaml:"bytes"`
}

// ArchivesReport summarizes archive expansion in a Report.
type ArchivesReport struct {
	Expanded       int64 `yaml:"expanded"`
	Failed         int64 `yaml:"failed"`
	ExtractedFiles int64 `yaml:"extracted_files"`
	ExtractedBytes int64 `yaml:"extracted_bytes"`
}

// NewReport builds a report of result. A non-nil runErr is recorded as the run error.
func NewReport(root string, result *Result, runErr error) *Report {
	report := &Report{
		Root:              root,
		StartedAt:         result.StartTime,
		FinishedAt:        result.EndTime,
		Duration:          result.Duration().String(),
		KnownExtensions:   utils.SortedKeys(result.KnownExtensions),
		UnknownExtensions: utils.SortedKeys(result.UnknownExtensions),
		Categories:        make([]CategoryReport, 0, len(category.Names())),
		Archives: ArchivesReport{
			Expanded:       result.ArchivesExpanded,
			Failed:         result.ArchivesFailed,
			ExtractedFiles: result.ExtractedFiles,
			ExtractedBytes: result.ExtractedBytes,
		},
		FilesRenamed:       result.FilesRenamed,
		DirectoriesRemoved: result.DirectoriesRemoved,
	}

	if runErr != nil {
		report.Error = runErr.Error()
	}

	for _, name := range category.Names() {
		stats, ok := result.Categories[name]
		if !ok {
			continue
		}

		report.Categories = append(report.Categories, CategoryReport{
			Name:  name.String(),
			Files: stats.Files,
			Bytes: stats.Bytes,
		})
	}

	return report
}

// WriteReport writes report as YAML to path, creating missing parent folders.
func WriteReport(fs afero.Fs, path string, report *Report) error {
	if err := fs.MkdirAll(filepath.Dir(path), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create report folder: %w", err)
	}

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", path, err)
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(reportIndent)

	if err = encoder.Encode(report); err != nil {
		file.Close() //nolint:errcheck,gosec // The encode error takes precedence.

		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err = encoder.Close(); err != nil {
		file.Close() //nolint:errcheck,gosec // The flush error takes precedence.

		return fmt.Errorf("failed to flush report: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	return nil
}
