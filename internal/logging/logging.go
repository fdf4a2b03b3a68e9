// Package logging points the standard logger at the terminal and, when a
// file is configured, at a size-rotated log file as well.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var DefaultRotation = Rotation{
	MaxSize:    128,
	MaxBackups: 5,
	MaxAge:     16,
}

// Setup redirects the standard logger. The returned closer releases the
// log file and is a no-op when file is empty.
func Setup(file string, rot Rotation) io.Closer {
	w, closer := Writer(os.Stderr, file, rot)
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
	return closer
}

// Writer builds the writer Setup installs.
func Writer(terminal io.Writer, file string, rot Rotation) (io.Writer, io.Closer) {
	if file == "" {
		return terminal, nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    rot.MaxSize,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAge,
		Compress:   rot.Compress,
	}
	return io.MultiWriter(terminal, lj), lj
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
