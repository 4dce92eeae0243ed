// Package logging builds the diagnostic logger. Console output for the
// operator goes through ui.Console; this logger only records what happened
// for later troubleshooting.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger.
type Options struct {
	// Debug sends debug-level entries to Stderr.
	Debug bool

	// File, when set, receives entries through a rotating writer.
	File string

	// MaxSizeMB and MaxAgeDays bound the rotated files.
	MaxSizeMB  int
	MaxAgeDays int

	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// New returns a logger that discards everything unless Debug or File is set.
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)

	var writers []io.Writer

	if opts.Debug {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
		log.SetLevel(logrus.DebugLevel)
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 5),
			MaxBackups: 3,
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		})
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}

	return log, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
