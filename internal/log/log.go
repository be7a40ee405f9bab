// Package log provides the small leveled logging facade used across the
// classfile and vm packages. It mirrors the shape of the logging helper
// saferwall/pe wires through its Options (a Logger interface, a level
// filter, and a Helper exposing Debugf/Infof/Warnf/Errorf), reimplemented
// locally since classfile has no dependency on the pe module itself.
package log

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is implemented by anything that can record a leveled, formatted
// log line. Callers that want structured logging of their own can satisfy
// this interface and pass it in through Options.
type Logger interface {
	Log(level Level, format string, args ...interface{})
}

// stdLogger writes log lines to an io.Writer using the standard library
// logger, with no filtering of its own.
type stdLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewStdLogger returns a Logger that writes every line to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{log: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) Log(level Level, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// filter wraps a Logger and drops any line below its configured level.
type filter struct {
	next     Logger
	minLevel Level
}

// Option configures a filter constructed by NewFilter.
type Option func(*filter)

// FilterLevel sets the minimum level the filter lets through.
func FilterLevel(level Level) Option {
	return func(f *filter) { f.minLevel = level }
}

// NewFilter returns a Logger that forwards to next only lines at or above
// the configured minimum level.
func NewFilter(next Logger, opts ...Option) Logger {
	f := &filter{next: next, minLevel: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, format string, args ...interface{}) {
	if level < f.minLevel {
		return
	}
	f.next.Log(level, format, args...)
}

// Helper adapts a Logger into the Debugf/Infof/Warnf/Errorf call shape used
// throughout classfile and vm.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) Debugf(format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(LevelDebug, format, args...)
}

func (h *Helper) Infof(format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(LevelInfo, format, args...)
}

func (h *Helper) Warnf(format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(LevelWarn, format, args...)
}

func (h *Helper) Errorf(format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(LevelError, format, args...)
}
