package organizer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/clean-folder/internal/category"
	"github.com/oshokin/clean-folder/internal/utils"
)

const (
	// KnownExtensionsLabel prefixes the line listing recognized extensions.
	KnownExtensionsLabel = "Список всех известных расширений:"
	// UnknownExtensionsLabel prefixes the line listing unrecognized extensions.
	UnknownExtensionsLabel = "Список всех неизвестных расширений:"
)

// WriteSummary writes the two extension lines, each list sorted and space-separated.
func WriteSummary(w io.Writer, result *Result) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n",
		summaryLine(KnownExtensionsLabel, result.KnownExtensions),
		summaryLine(UnknownExtensionsLabel, result.UnknownExtensions),
	)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

func summaryLine(label string, extensions map[string]struct{}) string {
	if len(extensions) == 0 {
		return label
	}

	return label + " " + strings.Join(utils.SortedKeys(extensions), " ")
}

// WriteStatistics writes a per-category table followed by the run counters.
func WriteStatistics(w io.Writer, result *Result) error {
	rows := make([][]string, 0, len(category.Names()))

	for _, name := range category.Names() {
		var files, bytes int64
		if stats, ok := result.Categories[name]; ok {
			files, bytes = stats.Files, stats.Bytes
		}

		rows = append(rows, []string{
			name.String(),
			strconv.FormatInt(files, 10),
			humanize.Bytes(utils.SafeInt64ToUint64(bytes)),
		})
	}

	tableText := utils.RenderTable(
		[]string{"Category", "Files", "Size"},
		rows,
		[]string{
			"Total",
			strconv.FormatInt(result.TotalFiles(), 10),
			humanize.Bytes(utils.SafeInt64ToUint64(result.TotalBytes())),
		},
		[]utils.ColumnAlignment{utils.AlignLeft, utils.AlignRight, utils.AlignRight},
	)

	var sb strings.Builder

	sb.WriteString(tableText)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Archives expanded:  %d (%s in %d files)\n",
		result.ArchivesExpanded,
		humanize.Bytes(utils.SafeInt64ToUint64(result.ExtractedBytes)),
		result.ExtractedFiles)
	fmt.Fprintf(&sb, "Archives failed:    %d\n", result.ArchivesFailed)
	fmt.Fprintf(&sb, "Files renamed:      %d\n", result.FilesRenamed)
	fmt.Fprintf(&sb, "Folders removed:    %d\n", result.DirectoriesRemoved)
	fmt.Fprintf(&sb, "Total time:         %s\n", formatDuration(result.Duration()))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}

	return nil
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
