// Package logger is the printf-style logging seam used by the sampler and the
// UI. Output goes through the standard log package, which the CLI points at a
// file (or discards) while the TUI owns the terminal.
package logger

import (
	"fmt"
	"log"
	"strings"
)

// Level orders messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Std writes to the standard logger. Debug messages are dropped unless the
// logger was built with debug enabled.
type Std struct {
	prefix string
	min    Level
}

// New returns a Std logger tagging every line with prefix, e.g. "[sysview]".
func New(prefix string, debug bool) *Std {
	floor := LevelInfo
	if debug {
		floor = LevelDebug
	}
	return &Std{prefix: prefix, min: floor}
}

func (s *Std) Debug(format string, args ...interface{}) { s.logf(LevelDebug, format, args) }
func (s *Std) Info(format string, args ...interface{})  { s.logf(LevelInfo, format, args) }
func (s *Std) Warn(format string, args ...interface{})  { s.logf(LevelWarn, format, args) }
func (s *Std) Error(format string, args ...interface{}) { s.logf(LevelError, format, args) }

// Info lines carry no level tag; every other level is tagged in upper case.
func (s *Std) logf(level Level, format string, args []interface{}) {
	if level < s.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if level == LevelInfo {
		log.Printf("%s %s", s.prefix, msg)
		return
	}
	log.Printf("%s %s: %s", s.prefix, strings.ToUpper(level.String()), msg)
}

type discard struct{}

// Noop returns a logger that drops everything.
func Noop() Logger { return discard{} }

func (discard) Debug(string, ...interface{}) {}
func (discard) Info(string, ...interface{})  {}
func (discard) Warn(string, ...interface{})  {}
func (discard) Error(string, ...interface{}) {}

// Message is one captured log line.
type Message struct {
	Level Level
	Text  string
}

// BufferLogger records messages in memory for test assertions.
type BufferLogger struct {
	Messages []Message
}

func NewBufferLogger() *BufferLogger { return &BufferLogger{} }

func (b *BufferLogger) Debug(format string, args ...interface{}) { b.add(LevelDebug, format, args) }
func (b *BufferLogger) Info(format string, args ...interface{})  { b.add(LevelInfo, format, args) }
func (b *BufferLogger) Warn(format string, args ...interface{})  { b.add(LevelWarn, format, args) }
func (b *BufferLogger) Error(format string, args ...interface{}) { b.add(LevelError, format, args) }

func (b *BufferLogger) add(level Level, format string, args []interface{}) {
	b.Messages = append(b.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

// HasLevel reports whether anything was recorded at level.
func (b *BufferLogger) HasLevel(level Level) bool {
	for _, m := range b.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
