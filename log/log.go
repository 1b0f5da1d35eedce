// Package log is a thin slog wrapper. Files rotate via lumberjack; a nil *Logger drops
// debug and info messages, but still passes warnings and errors to the default slog.
package log

import(
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile string // empty when logging to a plain writer
	Start   time.Time
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug": return slog.LevelDebug
	case "warn":  return slog.LevelWarn
	case "error": return slog.LevelError
	default:      return slog.LevelInfo
	}
}

// New logs JSON into a rotating file under dir; with no dir, it logs text to stderr.
func New(name, level, dir string) *Logger {
	if dir == "" {
		return NewForWriter(os.Stderr, level, false)
	}

	w := &lumberjack.Logger{
		Filename: filepath.Join(dir, name+".slog"),
		MaxSize:  32, // MB
		MaxAge:   14,
		MaxBackups: 4,
		Compress: true,
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	l := &Logger{Logger:slog.New(h), LogFile:w.Filename, Start:time.Now()}

	l.Info("Hello logging", slog.Time("start", l.Start),
		slog.String("GOOS", runtime.GOOS), slog.String("GOARCH", runtime.GOARCH))

	return l
}

func NewForWriter(w io.Writer, level string, asJSON bool) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON { h = slog.NewJSONHandler(w, opts) }
	return &Logger{Logger:slog.New(h), Start:time.Now()}
}

func (l *Logger)Debug(msg string, args ...any) {
	if l != nil { l.Logger.Debug(msg, args...) }
}
func (l *Logger)Debugf(msg string, args ...any) {
	if l != nil { l.Logger.Debug(fmt.Sprintf(msg, args...)) }
}

func (l *Logger)Info(msg string, args ...any) {
	if l != nil { l.Logger.Info(msg, args...) }
}
func (l *Logger)Infof(msg string, args ...any) {
	if l != nil { l.Logger.Info(fmt.Sprintf(msg, args...)) }
}

func (l *Logger)Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}
func (l *Logger)Warnf(msg string, args ...any) { l.Warn(fmt.Sprintf(msg, args...)) }

func (l *Logger)Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}
func (l *Logger)Errorf(msg string, args ...any) { l.Error(fmt.Sprintf(msg, args...)) }

// With is nil-safe too; the nil logger stays nil.
func (l *Logger)With(args ...any) *Logger {
	if l == nil { return nil }
	return &Logger{Logger:l.Logger.With(args...), LogFile:l.LogFile, Start:l.Start}
}
