package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// LogLevel represents logging level
	LogLevel string
	// Fields carries structured context for a log entry
	Fields map[string]any
)

const (
	DebugLogLevel LogLevel = "debug"
	InfoLogLevel  LogLevel = "info"
	WarnLogLevel  LogLevel = "warn"
	ErrorLogLevel LogLevel = "error"
	FatalLogLevel LogLevel = "fatal"
)

// Config holds logger configuration
type Config struct {
	Level       LogLevel `json:"level"`
	Development bool     `json:"development"`

	// rolling log config
	LogFile    string `json:"log_file"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
	Compress   bool   `json:"compress"`
}

// Logger defines the logging methods used across the service
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	Fatal(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
	Cleanup()
}

type logger struct {
	zl         zerolog.Logger
	lumberjack *lumberjack.Logger
}

// New creates a logger: console output in development, rolling files
// plus stderr in production.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = &Config{
			Level:       DebugLogLevel,
			Development: true,
			LogFile:     "./logs/safequeue.log",
			MaxSize:     100,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		}
	}

	var (
		output io.Writer
		lumber *lumberjack.Logger
	)
	if cfg.Development {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		lumber = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		output = io.MultiWriter(lumber, os.Stderr)
	}

	zerolog.SetGlobalLevel(zerologLevel(cfg.Level))

	zl := zerolog.New(output).With().Timestamp().Logger()

	return &logger{zl: zl, lumberjack: lumber}
}

func (l *logger) WithFields(fields Fields) Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &logger{zl: ctx.Logger(), lumberjack: l.lumberjack}
}

func (l *logger) logEvent(event *zerolog.Event, msg string, fields []Fields) {
	for _, set := range fields {
		for k, v := range set {
			event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

func (l *logger) Debug(msg string, fields ...Fields) { l.logEvent(l.zl.Debug(), msg, fields) }
func (l *logger) Info(msg string, fields ...Fields)  { l.logEvent(l.zl.Info(), msg, fields) }
func (l *logger) Warn(msg string, fields ...Fields)  { l.logEvent(l.zl.Warn(), msg, fields) }
func (l *logger) Error(msg string, fields ...Fields) { l.logEvent(l.zl.Error(), msg, fields) }
func (l *logger) Fatal(msg string, fields ...Fields) { l.logEvent(l.zl.Fatal(), msg, fields) }

// Cleanup closes the rolling file writer when one is in use.
func (l *logger) Cleanup() {
	if l.lumberjack != nil {
		_ = l.lumberjack.Close()
	}
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case DebugLogLevel:
		return zerolog.DebugLevel
	case InfoLogLevel:
		return zerolog.InfoLevel
	case WarnLogLevel:
		return zerolog.WarnLevel
	case ErrorLogLevel:
		return zerolog.ErrorLevel
	case FatalLogLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
