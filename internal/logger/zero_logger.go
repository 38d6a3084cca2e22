package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger is the zerolog-backed Logger. Unlike the global zerolog logger
// it holds its own instance so two loggers with different writers or levels
// can coexist (the tests rely on this).
type ZeroLogger struct {
	log           zerolog.Logger
	writer        io.Writer
	level         Level
	defaultFields Fields
}

// NewZeroLogger returns a configured instance of ZeroLogger
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	zl := &ZeroLogger{writer: writer, level: level, defaultFields: defaultFields}
	zl.configureLogger()
	return zl
}

func (l *ZeroLogger) configureLogger() {
	var zLevel zerolog.Level
	switch l.level {
	case LevelDebug:
		zLevel = zerolog.DebugLevel
	case LevelInfo:
		zLevel = zerolog.InfoLevel
	case LevelWarn:
		zLevel = zerolog.WarnLevel
	case LevelError:
		zLevel = zerolog.ErrorLevel
	case LevelFatal:
		zLevel = zerolog.FatalLevel
	case LevelOff:
		zLevel = zerolog.Disabled
	default:
		zLevel = zerolog.InfoLevel
	}

	props := make(map[string]interface{})
	for k, v := range l.defaultFields {
		props[k] = v
	}

	l.log = zerolog.New(l.writer).With().Fields(props).Timestamp().Logger().Level(zLevel)
}

// Debug logs diagnostic detail useful when tracing a single evaluation.
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.log.Debug().Fields(properties).Msg(message)
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.log.Info().Fields(properties).Msg(message)
}

// Warn logs recoverable conditions, e.g. degraded persistence.
func (l *ZeroLogger) Warn(message string, properties map[string]interface{}) {
	l.log.Warn().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.log.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal write the log to output and stop the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.log.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level = level
	l.configureLogger()
}
