// Package logger provides the structured logger used across Firefly ECM.
// Log entries go to the console and, when subscribed, to in-process channels
// so a supervising layer can collect them without blocking the caller.
package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// ANSI color codes for console output
const (
	colorReset        = "\033[0m"
	colorCyan         = "\033[36m"
	colorGreen        = "\033[32m"
	colorBrightRed    = "\033[91m"
	colorBrightYellow = "\033[93m"
	colorBrightGray   = "\033[90m"
)

// serviceNameWidth is the fixed column width for service names.
const serviceNameWidth = 20

// Level ordering for threshold filtering.
var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
	"FATAL": 4,
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
	TraceID string
}

// Logger provides structured logging with streaming support.
type Logger struct {
	serviceName string
	version     string

	mu             sync.RWMutex
	subscribers    []chan LogEntry
	colorEnabled   bool
	disableConsole bool
	minLevel       int
	traceID        string
}

// New creates a new logger instance.
func New(serviceName, version string) *Logger {
	return &Logger{
		serviceName:  serviceName,
		version:      version,
		colorEnabled: isTerminal(),
		minLevel:     levelRank["INFO"],
	}
}

// isTerminal checks if we're outputting to a terminal (for color support).
func isTerminal() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// SetLevel sets the minimum level that will be emitted. Unknown names are
// ignored and leave the current threshold in place.
func (l *Logger) SetLevel(level string) {
	rank, ok := levelRank[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return
	}
	l.mu.Lock()
	l.minLevel = rank
	l.mu.Unlock()
}

// SetTraceID attaches a trace identifier to every subsequent entry.
func (l *Logger) SetTraceID(id string) {
	l.mu.Lock()
	l.traceID = id
	l.mu.Unlock()
}

// Subscribe returns a channel that receives log entries. Delivery is
// best-effort: entries are dropped when a subscriber's buffer is full so that
// logging never blocks the calling path.
func (l *Logger) Subscribe() <-chan LogEntry {
	ch := make(chan LogEntry, 100)

	l.mu.Lock()
	l.subscribers = append(l.subscribers, ch)
	l.mu.Unlock()

	return ch
}

// DisableConsoleOutput disables console output when streaming to a collector.
func (l *Logger) DisableConsoleOutput() {
	l.mu.Lock()
	l.disableConsole = true
	l.mu.Unlock()
}

func (l *Logger) colorFor(level string) string {
	if !l.colorEnabled {
		return ""
	}
	switch level {
	case "DEBUG":
		return colorBrightGray
	case "WARN":
		return colorBrightYellow
	case "ERROR", "FATAL":
		return colorBrightRed
	default:
		return colorGreen
	}
}

// formatServiceName truncates and pads the service name for column alignment.
func formatServiceName(serviceName string) string {
	if len(serviceName) > serviceNameWidth {
		return serviceName[:serviceNameWidth-1] + "…"
	}
	return fmt.Sprintf("%-*s", serviceNameWidth, serviceName)
}

// formatFields renders fields as sorted key=value pairs.
func formatFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(fields[k])
	}
	return b.String()
}

func (l *Logger) log(level, message string, fields map[string]string) {
	l.mu.RLock()
	minLevel := l.minLevel
	console := !l.disableConsole
	traceID := l.traceID
	l.mu.RUnlock()

	if levelRank[level] < minLevel {
		return
	}

	entry := LogEntry{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Fields:  fields,
		TraceID: traceID,
	}

	if console {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		color := l.colorFor(level)
		reset := ""
		if l.colorEnabled {
			reset = colorReset
		}
		fmt.Printf("%s[%s]%s [%s] [%s%-5s%s] %s%s\n",
			colorCyan, timestamp, reset,
			formatServiceName(l.serviceName),
			color, level, reset,
			message, formatFields(fields))
	}

	// Best-effort fan-out to subscribers.
	l.mu.RLock()
	for _, ch := range l.subscribers {
		select {
		case ch <- entry:
		default:
			// Skip if channel is full
		}
	}
	l.mu.RUnlock()
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, args ...interface{}) {
	l.log("DEBUG", format(message, args), nil)
}

// Info logs an info message.
func (l *Logger) Info(message string, args ...interface{}) {
	l.log("INFO", format(message, args), nil)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.log("WARN", format(message, args), nil)
}

// Error logs an error message.
func (l *Logger) Error(message string, args ...interface{}) {
	l.log("ERROR", format(message, args), nil)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(message string, args ...interface{}) {
	l.log("FATAL", format(message, args), nil)
	os.Exit(1)
}

func format(message string, args []interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf(message, args...)
}

// WithFields returns a logging context that attaches fields to every entry.
func (l *Logger) WithFields(fields map[string]string) *LogContext {
	return &LogContext{
		logger: l,
		fields: fields,
	}
}

// LogContext provides field-based logging.
type LogContext struct {
	logger *Logger
	fields map[string]string
}

func (c *LogContext) Debug(message string) {
	c.logger.log("DEBUG", message, c.fields)
}

func (c *LogContext) Info(message string) {
	c.logger.log("INFO", message, c.fields)
}

func (c *LogContext) Warn(message string) {
	c.logger.log("WARN", message, c.fields)
}

func (c *LogContext) Error(message string) {
	c.logger.log("ERROR", message, c.fields)
}
