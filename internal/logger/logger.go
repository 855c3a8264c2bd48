package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level represents the severity level of log messages
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Config holds the logger configuration
type Config struct {
	Level Level
}

// Logger writes leveled diagnostics to stderr. Progress output meant for
// the user goes to stdout elsewhere; this is only for warnings and debug
// detail.
type Logger struct {
	config Config
	logger *log.Logger
}

var defaultLogger = &Logger{
	config: Config{Level: InfoLevel},
	logger: log.New(os.Stderr, "", 0),
}

// Initialize configures the default logger
func Initialize(config Config) {
	defaultLogger = &Logger{
		config: config,
		logger: log.New(os.Stderr, "", 0),
	}
}

// Log writes a log message
func (l *Logger) Log(level Level, message string, fields ...Field) {
	if level < l.config.Level {
		return
	}

	var builder strings.Builder
	builder.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	builder.WriteString(fmt.Sprintf(" [%s] %s", level, message))

	if len(fields) > 0 {
		builder.WriteString(" {")
		for i, field := range fields {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(fmt.Sprintf("%s=%v", field.Key, field.Value))
		}
		builder.WriteString("}")
	}

	l.logger.Print(builder.String())
}

// Field represents a structured field in a log entry
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	return Field{Key: "error", Value: err.Error()}
}

// Convenience functions for default logger
func Debug(message string, fields ...Field) {
	defaultLogger.Log(DebugLevel, message, fields...)
}

func Info(message string, fields ...Field) {
	defaultLogger.Log(InfoLevel, message, fields...)
}

func Warn(message string, fields ...Field) {
	defaultLogger.Log(WarnLevel, message, fields...)
}

func Error(message string, fields ...Field) {
	defaultLogger.Log(ErrorLevel, message, fields...)
}

// SetOutput sets the output writer for the logger
func SetOutput(w io.Writer) {
	defaultLogger.logger.SetOutput(w)
}
