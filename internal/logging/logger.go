// File: internal/logging/logger.go
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Logger defines the common logging interface used across the client.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StandardLogger writes leveled key-value log lines to stderr so they never
// interleave with the interactive terminal output on stdout.
type StandardLogger struct {
	logger     *log.Logger
	level      LogLevel
	component  string
	structured bool
}

// NewStandardLogger creates a logger for the named component.
func NewStandardLogger(component string) *StandardLogger {
	return &StandardLogger{
		logger:    log.New(os.Stderr, "", 0),
		level:     LogLevelInfo,
		component: component,
	}
}

// SetLevel updates the logging level.
func (s *StandardLogger) SetLevel(level LogLevel) {
	s.level = level
}

// SetStructured enables/disables structured JSON logging.
func (s *StandardLogger) SetStructured(structured bool) {
	s.structured = structured
}

func (s *StandardLogger) Info(msg string, keysAndValues ...interface{}) {
	if s.level > LogLevelInfo {
		return
	}
	s.log(LogLevelInfo, msg, keysAndValues...)
}

func (s *StandardLogger) Error(msg string, keysAndValues ...interface{}) {
	s.log(LogLevelError, msg, keysAndValues...)
}

func (s *StandardLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.level > LogLevelDebug {
		return
	}
	s.log(LogLevelDebug, msg, keysAndValues...)
}

func (s *StandardLogger) Warn(msg string, keysAndValues ...interface{}) {
	if s.level > LogLevelWarn {
		return
	}
	s.log(LogLevelWarn, msg, keysAndValues...)
}

func (s *StandardLogger) log(level LogLevel, msg string, keysAndValues ...interface{}) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if s.structured {
		entry := map[string]interface{}{
			"timestamp": timestamp,
			"level":     level.String(),
			"component": s.component,
			"message":   msg,
		}
		if len(keysAndValues) > 0 {
			fields := make(map[string]interface{})
			for i := 0; i < len(keysAndValues)-1; i += 2 {
				if key, ok := keysAndValues[i].(string); ok {
					fields[key] = keysAndValues[i+1]
				}
			}
			if len(fields) > 0 {
				entry["fields"] = fields
			}
		}
		jsonBytes, _ := json.Marshal(entry)
		s.logger.Println(string(jsonBytes))
		return
	}

	var kv strings.Builder
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		kv.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	s.logger.Printf("[%s] %s [%s] %s%s", timestamp, level.String(), s.component, msg, kv.String())
}

// NoOpLogger is a logger that does nothing (for testing).
type NoOpLogger struct{}

func (n *NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}

// NewLogger builds a logger from the GO_ENV / LOG_LEVEL environment.
func NewLogger(component string) Logger {
	if os.Getenv("GO_ENV") == "test" {
		return &NoOpLogger{}
	}

	logger := NewStandardLogger(component)

	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		logger.SetLevel(LogLevelDebug)
	case "WARN":
		logger.SetLevel(LogLevelWarn)
	case "ERROR":
		logger.SetLevel(LogLevelError)
	}

	if strings.ToLower(os.Getenv("ENV")) == "production" {
		logger.SetStructured(true)
	}

	return logger
}
