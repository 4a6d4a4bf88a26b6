// Package journal appends human-readable audit lines to one file per
// calendar date. The files are never read back by schedreboot.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/warpdl/schedreboot/internal/clock"
)

// ErrUnavailable wraps every failure to create or write the journal.
var ErrUnavailable = errors.New("unable to create or access log directory")

// Journal writes to <dir>/<YYYYMMDD>.txt for the current date.
type Journal struct {
	fs    afero.Fs
	dir   string
	clock clock.Clock
}

// New creates a Journal rooted at dir on fs. The directory is created on
// the first append.
func New(fs afero.Fs, dir string, clk clock.Clock) *Journal {
	return &Journal{fs: fs, dir: dir, clock: clk}
}

// FileName returns the journal file name for t's calendar date.
func FileName(t time.Time) string {
	return t.Format("20060102") + ".txt"
}

// Dir returns the journal directory.
func (j *Journal) Dir() string {
	return j.dir
}

// Path returns the journal file used at t.
func (j *Journal) Path(t time.Time) string {
	return filepath.Join(j.dir, FileName(t))
}

// AppendLine appends text and a newline to today's file.
func (j *Journal) AppendLine(text string) error {
	path := j.Path(j.clock.Now())
	if err := j.fs.MkdirAll(j.dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	f, err := j.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := fmt.Fprintln(f, text); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrUnavailable, path, err)
	}
	return nil
}
