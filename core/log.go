package core

import (
	"fmt"
	"io"
)

// LogLevel classifies harness log lines.
type LogLevel uint8

const (
	LevelInfo LogLevel = iota
	LevelWarn
	LevelFatal
)

func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelFatal:
		return "FATAL"
	}
	return "?"
}

// Logger is a minimal leveled line logger. On hardware it writes to the USB
// serial console; write errors are dropped (logging is best-effort and must
// never stall a timing run).
type Logger struct {
	w     io.Writer
	clock Clock
}

// NewLogger returns a logger stamping each line with the clock's microsecond
// ticks. A nil writer discards output; a nil clock stamps zero.
func NewLogger(w io.Writer, clock Clock) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, clock: clock}
}

func (l *Logger) Infof(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.logf(LevelFatal, format, args...) }

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	var ticks uint64
	if l.clock != nil {
		ticks = l.clock.Ticks()
	}
	fmt.Fprintf(l.w, "[%10dus] %-5s ", ticks, level)
	fmt.Fprintf(l.w, format, args...)
	io.WriteString(l.w, "\n")
}
