// Package logging provides the diagnostic logger. Diagnostics go to stderr so
// that stdout carries nothing but the pruning report.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/raoulx24/yabu-vacuum/internal/config"
)

// Logger takes a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type ZeroLogger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New builds a logger from cfg writing to stderr, plus a rotating file when
// cfg.File is set. Unknown levels fall back to warn.
func New(cfg config.LoggingConfig, stderr io.Writer) *ZeroLogger {
	var console io.Writer = stderr
	if strings.ToLower(cfg.Format) != "json" {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: true}
	}

	writers := []io.Writer{console}
	l := &ZeroLogger{}

	if cfg.File != "" {
		rot := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		writers = append(writers, rot)
		l.closer = rot
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(lvl).With().Timestamp().Logger()
	return l
}

// With returns a child logger carrying the given key/value pairs on every entry.
func (l *ZeroLogger) With(args ...any) *ZeroLogger {
	return &ZeroLogger{
		zl:     l.zl.With().Fields(args).Logger(),
		closer: l.closer,
	}
}

func (l *ZeroLogger) Debug(msg string, args ...any) { l.zl.Debug().Fields(args).Msg(msg) }
func (l *ZeroLogger) Info(msg string, args ...any)  { l.zl.Info().Fields(args).Msg(msg) }
func (l *ZeroLogger) Warn(msg string, args ...any)  { l.zl.Warn().Fields(args).Msg(msg) }
func (l *ZeroLogger) Error(msg string, args ...any) { l.zl.Error().Fields(args).Msg(msg) }

// Close releases the log file, if any.
func (l *ZeroLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &ZeroLogger{zl: zerolog.Nop()}
}
