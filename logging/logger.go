package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnknownLevel indicates ParseLevel received an unrecognized name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level is a log severity.
type Level int

const (
	// LevelDebug is for verbose tracing.
	LevelDebug Level = iota
	// LevelInfo is for normal progress messages.
	LevelInfo
	// LevelWarning is for unexpected but recoverable conditions.
	LevelWarning
	// LevelError is for failures.
	LevelError
)

// String returns the upper-case label used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts debug, info, warn, warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger is the minimal leveled logging surface.
// args are alternating key/value pairs appended to the line.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// Messagef writes a printf-style message at level.
	Messagef(level Level, format string, args ...any)
}

// Options configures a FileLogger.
type Options struct {
	// Level is the minimum level written. Default LevelInfo.
	Level Level

	// Truncate empties the file on Open instead of appending. Default false.
	Truncate bool

	// JSON writes raw zerolog JSON objects instead of text lines. Default false.
	JSON bool

	// TimeFormat is the timestamp layout for text lines. Default time.DateTime.
	TimeFormat string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns info level, append mode, text lines.
func DefaultOptions() Options {
	return Options{
		Level:      LevelInfo,
		Truncate:   false,
		JSON:       false,
		TimeFormat: time.DateTime,
	}
}

// WithLevel sets the minimum level written.
func WithLevel(l Level) Option {
	return func(o *Options) { o.Level = l }
}

// WithTruncate makes Open start from an empty file.
func WithTruncate() Option {
	return func(o *Options) { o.Truncate = true }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *Options) { o.JSON = true }
}

// WithTimeFormat overrides the text timestamp layout; empty is ignored.
func WithTimeFormat(layout string) Option {
	return func(o *Options) {
		if layout != "" {
			o.TimeFormat = layout
		}
	}
}

// FileLogger writes leveled lines through zerolog.
// The zero value is not usable; build one with New or Open.
type FileLogger struct {
	zl   zerolog.Logger
	file *os.File // non-nil when opened by Open
}

var _ Logger = (*FileLogger)(nil)

// New returns a logger writing to w.
func New(w io.Writer, opts ...Option) *FileLogger {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out := w
	if !o.JSON {
		out = zerolog.ConsoleWriter{
			Out:         w,
			NoColor:     true,
			TimeFormat:  o.TimeFormat,
			FormatLevel: formatLevel,
		}
	}
	zl := zerolog.New(out).Level(o.Level.zerolog()).With().Timestamp().Logger()

	return &FileLogger{zl: zl}
}

// Open creates or opens the file at path and returns a logger appending
// to it (or truncating it first with WithTruncate). Call Close when done.
func Open(path string, opts ...Option) (*FileLogger, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if o.Truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	l := New(f, opts...)
	l.file = f

	return l, nil
}

// Close closes the file opened by Open. It is a no-op for loggers built
// with New and safe to call more than once.
func (l *FileLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.zl = zerolog.Nop()

	return err
}

// Debug writes msg at LevelDebug.
func (l *FileLogger) Debug(msg string, args ...any) { l.write(l.zl.Debug(), msg, args) }

// Info writes msg at LevelInfo.
func (l *FileLogger) Info(msg string, args ...any) { l.write(l.zl.Info(), msg, args) }

// Warn writes msg at LevelWarning.
func (l *FileLogger) Warn(msg string, args ...any) { l.write(l.zl.Warn(), msg, args) }

// Error writes msg at LevelError.
func (l *FileLogger) Error(msg string, args ...any) { l.write(l.zl.Error(), msg, args) }

// Messagef writes a formatted message at level.
func (l *FileLogger) Messagef(level Level, format string, args ...any) {
	l.zl.WithLevel(level.zerolog()).Msgf(format, args...)
}

func (l *FileLogger) write(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return // below the configured level
	}
	if len(args) > 0 {
		if len(args)%2 == 1 {
			args = append(args, "!MISSING")
		}
		e = e.Fields(args)
	}
	e.Msg(msg)
}

// formatLevel renders zerolog's level names with this package's labels.
func formatLevel(i any) string {
	name, _ := i.(string)
	switch name {
	case zerolog.LevelDebugValue:
		return "[" + LevelDebug.String() + "]"
	case zerolog.LevelInfoValue:
		return "[" + LevelInfo.String() + "]"
	case zerolog.LevelWarnValue:
		return "[" + LevelWarning.String() + "]"
	case zerolog.LevelErrorValue:
		return "[" + LevelError.String() + "]"
	default:
		return "[UNKNOWN]"
	}
}

// nop discards everything.
type nop struct{}

// Nop returns a Logger that writes nothing.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...any)           {}
func (nop) Info(string, ...any)            {}
func (nop) Warn(string, ...any)            {}
func (nop) Error(string, ...any)           {}
func (nop) Messagef(Level, string, ...any) {}
