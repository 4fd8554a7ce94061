package testlogger

import (
	"time"
)

// Logger adapts a TestLogger to the log.DebugLogger interface, so that
// library code which takes a logger may be exercised from tests.
type Logger struct {
	logger     TestLogger
	startTime  time.Time
	timestamps bool
}

// TestLogger defines an interface for a type that can be used for logging by
// tests. The testing.T type from the standard library satisfies this interface.
type TestLogger interface {
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Log(v ...interface{})
	Logf(format string, v ...interface{})
}

// New will create a Logger from a TestLogger. Each message is passed to the
// TestLogger as a single string with any trailing newline removed.
func New(logger TestLogger) *Logger {
	return &Logger{logger: logger}
}

// NewWithTimestamps is the same as New, except that the time elapsed since
// creating the logger is prepended to each message.
func NewWithTimestamps(logger TestLogger) *Logger {
	return &Logger{logger: logger, startTime: time.Now(), timestamps: true}
}

// Debug will call the Log method of the underlying TestLogger, regardless of
// the debug level.
func (l *Logger) Debug(level uint8, v ...interface{}) {
	l.log(sprint(v...))
}

// Debugf is similar to Debug, with formatting support.
func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.log(sprintf(format, v...))
}

// Debugln is similar to Debug.
func (l *Logger) Debugln(level uint8, v ...interface{}) {
	l.log(sprint(v...))
}

// Fatal will call the Fatal method of the underlying TestLogger.
func (l *Logger) Fatal(v ...interface{}) {
	l.fatal(sprint(v...))
}

// Fatalf is similar to Fatal, with formatting support.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.fatal(sprintf(format, v...))
}

// Fatalln is similar to Fatal.
func (l *Logger) Fatalln(v ...interface{}) {
	l.fatal(sprint(v...))
}

// Panic will call the Fatal method of the underlying TestLogger and will then
// call panic.
func (l *Logger) Panic(v ...interface{}) {
	l.panic(sprint(v...))
}

// Panicf is similar to Panic, with formatting support.
func (l *Logger) Panicf(format string, v ...interface{}) {
	l.panic(sprintf(format, v...))
}

// Panicln is similar to Panic.
func (l *Logger) Panicln(v ...interface{}) {
	l.panic(sprint(v...))
}

// Print will call the Log method of the underlying TestLogger.
func (l *Logger) Print(v ...interface{}) {
	l.log(sprint(v...))
}

// Printf is similar to Print, with formatting support.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.log(sprintf(format, v...))
}

// Println is similar to Print.
func (l *Logger) Println(v ...interface{}) {
	l.log(sprint(v...))
}
