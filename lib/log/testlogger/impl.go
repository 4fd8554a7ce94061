package testlogger

import (
	"fmt"
	"strings"
	"time"
)

func sprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprint(v...), "\n")
}

func sprintf(format string, v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
}

func (l *Logger) decorate(message string) string {
	if !l.timestamps {
		return message
	}
	return fmt.Sprintf("[%09.6fs] %s",
		float64(time.Since(l.startTime))/float64(time.Second), message)
}

func (l *Logger) fatal(message string) {
	l.logger.Fatal(l.decorate(message))
}

func (l *Logger) log(message string) {
	l.logger.Log(l.decorate(message))
}

func (l *Logger) panic(message string) {
	message = l.decorate(message)
	l.logger.Fatal(message)
	panic(message)
}
