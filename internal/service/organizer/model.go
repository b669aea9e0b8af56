package organizer

import (
	"time"

	"github.com/oshokin/clean-folder/internal/category"
)

// CategoryStatistics counts what ended up in a category folder.
type CategoryStatistics struct {
	// Files is the number of files moved into the category (archives count once each).
	Files int64
	// Bytes is the total size of those files.
	Bytes int64
}

// Result accumulates what a run (or a single folder of it) did.
type Result struct {
	// KnownExtensions holds lowercase extensions that matched a category.
	KnownExtensions map[string]struct{}
	// UnknownExtensions holds lowercase extensions that fell through to Other.
	UnknownExtensions map[string]struct{}
	// Categories holds per-category counters.
	Categories map[category.Name]*CategoryStatistics
	// ArchivesExpanded is the number of archives extracted successfully.
	ArchivesExpanded int64
	// ArchivesFailed is the number of archives that could not be extracted.
	ArchivesFailed int64
	// ExtractedFiles is the number of files written by successful extractions.
	ExtractedFiles int64
	// ExtractedBytes is the size of files written by successful extractions.
	ExtractedBytes int64
	// FilesRenamed is the number of files renamed because the destination was taken.
	FilesRenamed int64
	// DirectoriesRemoved is the number of empty folders removed.
	DirectoriesRemoved int64
	// StartTime is when the run began.
	StartTime time.Time
	// EndTime is when the run finished.
	EndTime time.Time
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		KnownExtensions:   make(map[string]struct{}),
		UnknownExtensions: make(map[string]struct{}),
		Categories:        make(map[category.Name]*CategoryStatistics),
	}
}

// Merge adds the content of other to r. A nil other is ignored.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}

	for ext := range other.KnownExtensions {
		r.KnownExtensions[ext] = struct{}{}
	}

	for ext := range other.UnknownExtensions {
		r.UnknownExtensions[ext] = struct{}{}
	}

	for name, stats := range other.Categories {
		r.category(name).Files += stats.Files
		r.category(name).Bytes += stats.Bytes
	}

	r.ArchivesExpanded += other.ArchivesExpanded
	r.ArchivesFailed += other.ArchivesFailed
	r.ExtractedFiles += other.ExtractedFiles
	r.ExtractedBytes += other.ExtractedBytes
	r.FilesRenamed += other.FilesRenamed
	r.DirectoriesRemoved += other.DirectoriesRemoved
}

// TotalFiles returns the number of files processed across all categories.
func (r *Result) TotalFiles() int64 {
	var total int64

	for _, stats := range r.Categories {
		total += stats.Files
	}

	return total
}

// TotalBytes returns the size of files processed across all categories.
func (r *Result) TotalBytes() int64 {
	var total int64

	for _, stats := range r.Categories {
		total += stats.Bytes
	}

	return total
}

// Duration returns how long the run took, or zero when it has not finished.
func (r *Result) Duration() time.Duration {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return 0
	}

	return r.EndTime.Sub(r.StartTime)
}

func (r *Result) addKnown(ext string) {
	if ext != "" {
		r.KnownExtensions[ext] = struct{}{}
	}
}

func (r *Result) addUnknown(ext string) {
	if ext != "" {
		r.UnknownExtensions[ext] = struct{}{}
	}
}

func (r *Result) addFile(name category.Name, size int64) {
	stats := r.category(name)
	stats.Files++
	stats.Bytes += size
}

func (r *Result) category(name category.Name) *CategoryStatistics {
	stats, ok := r.Categories[name]
	if !ok {
		stats = new(CategoryStatistics)
		r.Categories[name] = stats
	}

	return stats
}
