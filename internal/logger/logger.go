package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// Each function behaves like fmt.Printf: the message is printed to the console in the
// level's color and the same text is forwarded to the system log when it is available.

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// out is where console messages are written. It defaults to color.Output, which
// handles Windows consoles and strips escape codes when stdout is not a terminal.
var out io.Writer = color.Output

// sink receives a copy of every message. It is nil until Init connects to syslog.
var sink systemLog

// Info logs informational messages in green color.
var Info = func(format string, a ...any) {
	emit(infoColor, sinkInfo, format, a...)
}

// Warn logs warning messages in bright magenta color.
// Warnings never stop execution; the caller logs and carries on.
var Warn = func(format string, a ...any) {
	emit(warnColor, sinkWarning, format, a...)
}

// Error logs error messages in red color.
var Error = func(format string, a ...any) {
	emit(errorColor, sinkErr, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// Init swaps the implementation depending on the debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package.
// Parameters:
// - enableDebug: turn Debug messages on or off.
// - tag: identifier attached to every system log record (e.g. "dotsync").
// Failing to reach the system log is not an error; console output still works.
func Init(enableDebug bool, tag string) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			emit(debugColor, sinkDebug, format, a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}

	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	s, err := openSystemLog(tag)
	if err != nil {
		Debug("[DEBUG] System log unavailable, logging to console only: %v\n", err)
		return
	}
	sink = s
}

// SetOutput redirects console output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Close releases the system log connection, if any.
func Close() {
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
}

type sinkLevel int

const (
	sinkDebug sinkLevel = iota
	sinkInfo
	sinkWarning
	sinkErr
)

// systemLog is the subset of *syslog.Writer the logger needs.
type systemLog interface {
	Debug(m string) error
	Info(m string) error
	Warning(m string) error
	Err(m string) error
	Close() error
}

func emit(c *color.Color, level sinkLevel, format string, a ...any) {
	_, _ = c.Fprintf(out, format, a...)
	if sink == nil {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, a...), "\n")
	switch level {
	case sinkDebug:
		_ = sink.Debug(msg)
	case sinkInfo:
		_ = sink.Info(msg)
	case sinkWarning:
		_ = sink.Warning(msg)
	default:
		_ = sink.Err(msg)
	}
}
