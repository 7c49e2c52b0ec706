package loggers

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	jww "github.com/spf13/jwalterweatherman"
	"go.uber.org/atomic"
)

// LogCounters counts warnings and errors written through a Logger.
type LogCounters struct {
	WarnCounter  *atomic.Uint64
	ErrorCounter *atomic.Uint64
}

// Logger is the logger used by the config resolver and its collaborators.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)

	Info() *log.Logger
	Warn() *log.Logger

	Out() io.Writer
	LogCounters() *LogCounters
}

type logger struct {
	*jww.Notepad

	out      io.Writer
	counters *LogCounters
}

// NewLogger creates a new Logger for the given thresholds.
func NewLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) Logger {
	if logHandle == nil {
		logHandle = ioutil.Discard
	}
	return &logger{
		Notepad: jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", log.Ldate|log.Ltime),
		out:     outHandle,
		counters: &LogCounters{
			WarnCounter:  atomic.NewUint64(0),
			ErrorCounter: atomic.NewUint64(0),
		},
	}
}

// NewDefault creates a Logger that writes warnings and errors to stdout.
func NewDefault() Logger {
	return NewLogger(jww.LevelWarn, jww.LevelError, os.Stdout, nil)
}

// NewWarningLogger creates a Logger that writes warnings and errors to w.
func NewWarningLogger(w io.Writer) Logger {
	return NewLogger(jww.LevelWarn, jww.LevelError, w, nil)
}

// NewDebugLogger creates a Logger that writes everything to w.
func NewDebugLogger(w io.Writer) Logger {
	return NewLogger(jww.LevelDebug, jww.LevelError, w, nil)
}

// NewErrorLogger creates a Logger that only writes errors to stdout.
func NewErrorLogger() Logger {
	return NewLogger(jww.LevelError, jww.LevelError, os.Stdout, nil)
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Warnf(format string, v ...any) {
	l.counters.WarnCounter.Inc()
	l.WARN.Printf(format, v...)
}

func (l *logger) Errorf(format string, v ...any) {
	l.counters.ErrorCounter.Inc()
	l.ERROR.Printf(format, v...)
}

func (l *logger) Info() *log.Logger {
	return l.INFO
}

func (l *logger) Warn() *log.Logger {
	return l.WARN
}

func (l *logger) Out() io.Writer {
	return l.out
}

func (l *logger) LogCounters() *LogCounters {
	return l.counters
}
