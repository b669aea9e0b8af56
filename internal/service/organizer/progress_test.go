package organizer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/clean-folder/internal/config"
)

// TestCountFiles tests that the file count skips category folders.
func TestCountFiles(t *testing.T) {
	t.Parallel()

	setup := newTestOrganizerSetup(t)
	setup.writeFiles(t, map[string]string{
		"a.txt":            "a",
		"sub/b.png":        "b",
		"sub/deep/c.mp3":   "c",
		"Images/sorted.jp": "skipped",
		"sub/Other/d.bin":  "skipped",
	})

	service, ok := setup.service.(*ServiceImpl)
	require.True(t, ok)

	total, err := service.countFiles()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

// TestStartProgressDisabled tests that no bar is created when progress is off.
func TestStartProgressDisabled(t *testing.T) {
	t.Parallel()

	setup := newTestOrganizerSetup(t, func(c *config.Config) {
		c.ShowProgress = false
	})

	service, ok := setup.service.(*ServiceImpl)
	require.True(t, ok)

	assert.IsType(t, noopProgress{}, service.startProgress(t.Context()))
}

// TestBarProgress tests that the bar renders to its writer.
func TestBarProgress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	progress := newBarProgress(&buf, 2)
	progress.Increment()
	progress.Increment()
	progress.Finish()

	assert.NotEmpty(t, buf.String())
}
