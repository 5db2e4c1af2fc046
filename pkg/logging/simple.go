package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

var (
	infoLabel  = color.New(color.FgGreen).Sprint("[INFO]")
	debugLabel = color.New(color.FgCyan).Sprint("[DEBUG]")
	traceLabel = color.New(color.FgYellow).Sprint("[TRACE]")
	errorLabel = color.New(color.FgRed).Sprint("[ERROR]")
)

// SimpleLogSink is a human-readable logr.LogSink for the command line tools.
// Messages carry a colored level label, an optional dotted name chain, and
// key-value pairs indented on the following lines.
type SimpleLogSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        sync.Mutex
	useColor     bool
}

// NewSimpleLogSink creates a new SimpleLogSink writing to writer (os.Stdout
// when nil). Levels above minVerbosity are dropped.
func NewSimpleLogSink(writer io.Writer, minVerbosity int, useColor bool) *SimpleLogSink {
	if writer == nil {
		writer = os.Stdout
	}
	return &SimpleLogSink{
		writer:       writer,
		minVerbosity: minVerbosity,
		keyValues:    []interface{}{},
		useColor:     useColor,
	}
}

// NewSimpleLogger creates a logr.Logger backed by a SimpleLogSink.
func NewSimpleLogger(writer io.Writer, minVerbosity int, useColor bool) logr.Logger {
	return logr.New(NewSimpleLogSink(writer, minVerbosity, useColor))
}

// Init initializes the logger with runtime information.
func (s *SimpleLogSink) Init(info logr.RuntimeInfo) {}

// Enabled determines if the logger is enabled for the given verbosity level.
func (s *SimpleLogSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

// Info logs a non-error message with key-value pairs.
func (s *SimpleLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.write(s.label(false, level), msg, keysAndValues...)
}

// Error logs an error message with key-value pairs. The error itself is
// appended as a trailing "error" key.
func (s *SimpleLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.label(true, 0), msg, append(keysAndValues, "error", err)...)
}

// WithValues returns a sink carrying additional key-value pairs.
func (s *SimpleLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	c := s.clone()
	c.keyValues = append(c.keyValues, keysAndValues...)
	return c
}

// WithName returns a sink whose messages are prefixed with the dotted name.
func (s *SimpleLogSink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name != "" {
		name = c.name + "." + name
	}
	c.name = name
	return c
}

func (s *SimpleLogSink) clone() *SimpleLogSink {
	return &SimpleLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    append([]interface{}{}, s.keyValues...),
		useColor:     s.useColor,
	}
}

func (s *SimpleLogSink) label(isError bool, level int) string {
	plain, colored := "", ""
	switch {
	case isError:
		plain, colored = "[ERROR]", errorLabel
	case level == LEVEL_INFO:
		plain, colored = "[INFO]", infoLabel
	case level == LEVEL_DEBUG:
		plain, colored = "[DEBUG]", debugLabel
	case level == LEVEL_TRACE:
		plain, colored = "[TRACE]", traceLabel
	default:
		plain, colored = fmt.Sprintf("[LEVEL %d]", level), fmt.Sprintf("[LEVEL %d]", level)
	}
	if s.useColor {
		return colored
	}
	return plain
}

func (s *SimpleLogSink) write(label string, msg string, keysAndValues ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.name != "" {
		msg = fmt.Sprintf("[%s] %s", s.name, msg)
	}
	fmt.Fprintf(s.writer, "%s %s\n", label, msg)

	kvs := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(s.writer, "  %s: %v\n", key, kvs[i+1])
	}
}
