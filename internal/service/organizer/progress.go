package organizer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/oshokin/clean-folder/internal/category"
	"github.com/oshokin/clean-folder/internal/logger"
)

const progressThrottle = 65 * time.Millisecond

// progressTracker reports how many files have been processed.
type progressTracker interface {
	Increment()
	Finish()
}

type noopProgress struct{}

func (noopProgress) Increment() {}

func (noopProgress) Finish() {}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func newBarProgress(w io.Writer, total int64) *barProgress {
	return &barProgress{
		bar: progressbar.NewOptions64(
			total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Organizing"),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionThrottle(progressThrottle),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *barProgress) Increment() {
	_ = p.bar.Add(1)
}

func (p *barProgress) Finish() {
	_ = p.bar.Finish()
}

// startProgress returns a progress bar on stderr when it is enabled and stderr is a terminal.
func (s *ServiceImpl) startProgress(ctx context.Context) progressTracker {
	if !s.cfg.ShowProgress || !isTerminal(os.Stderr) {
		return noopProgress{}
	}

	total, err := s.countFiles()
	if err != nil {
		logger.Debugf(ctx, "Progress disabled, failed to count files: %v", err)
		return noopProgress{}
	}

	return newBarProgress(os.Stderr, total)
}

// countFiles counts the files Organize will visit.
func (s *ServiceImpl) countFiles() (int64, error) {
	var total int64

	err := afero.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != s.root && category.IsReserved(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		total++

		return nil
	})

	return total, err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
