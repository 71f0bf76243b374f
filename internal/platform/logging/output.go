package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures rotated file output. An empty Path disables it.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Output returns the writer a logger should use: console alone, or console
// plus a rotated file when opts.Path is set. The returned closer releases
// the file and is a no-op without one.
func Output(console io.Writer, opts FileOptions) (io.Writer, io.Closer) {
	if opts.Path == "" {
		return console, nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
		LocalTime:  true,
	}
	return io.MultiWriter(console, file), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
