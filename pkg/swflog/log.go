// Copyright 2020-2021 The OS-NVR Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package swflog is the emission tracer the encoder fires on its traced
// decisions (the SWF version cap and compression selection in
// swf.EmitSWF). It carries no persistence layer:
// a Logger just writes Events to an io.Writer, stripped of the fan-out
// subscription and SQLite store a long-running service would need.
package swflog

// API inspired by zerolog https://github.com/rs/zerolog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Level defines a log event's severity.
type Level uint8

// Logging levels, ordered low to high.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is one key/value pair attached to an Event, rendered in the
// order it was added.
type Field struct {
	Key   string
	Value string
}

// Event is a single log record under construction. Like zerolog, field
// setters return the Event so calls chain; nothing is emitted until Msg
// is called.
type Event struct {
	logger *Logger
	level  Level
	fields []Field
}

// Str appends a string field.
func (e *Event) Str(key, value string) *Event {
	e.fields = append(e.fields, Field{key, value})
	return e
}

// Int appends an integer field.
func (e *Event) Int(key string, value int) *Event {
	e.fields = append(e.fields, Field{key, strconv.Itoa(value)})
	return e
}

// Msg writes the event with msg as its message.
func (e *Event) Msg(msg string) {
	e.logger.write(e.level, msg, e.fields)
}

// Msgf writes the event with a formatted message.
func (e *Event) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

// Logger writes leveled Events to an underlying io.Writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	min Level
}

// NewLogger returns a Logger that writes Events at or above min to out.
func NewLogger(out io.Writer, min Level) *Logger {
	return &Logger{out: out, min: min}
}

func (l *Logger) write(level Level, msg string, fields []Field) {
	if level < l.min {
		return
	}
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteString(": ")
	b.WriteString(msg)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, b.String()) //nolint:errcheck
}

// Debug starts a debug-level Event.
func (l *Logger) Debug() *Event { return &Event{logger: l, level: LevelDebug} }

// Info starts an info-level Event.
func (l *Logger) Info() *Event { return &Event{logger: l, level: LevelInfo} }

// Warn starts a warning-level Event.
func (l *Logger) Warn() *Event { return &Event{logger: l, level: LevelWarning} }

// Error starts an error-level Event.
func (l *Logger) Error() *Event { return &Event{logger: l, level: LevelError} }

// Trace implements the swf.Tracer interface the encoder's Options.Tracer
// field expects: one flat field list per named event, logged at debug
// level so a caller can opt in with NewLogger(w, LevelDebug) without the
// tracer ever affecting emitted bytes.
func (l *Logger) Trace(event string, fields ...Field) {
	e := l.Debug()
	e.fields = append(e.fields, fields...)
	e.Msg(event)
}
