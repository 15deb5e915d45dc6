//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger implements the diagnostics facility of the SHA-1 tools. It
// is safe for concurrent use.
type Logger struct {
	m        sync.Mutex
	out      io.Writer
	errors   int
	warnings int
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		out: out,
	}
}

func (l *Logger) printf(loc Point, prefix, msg string) {
	l.m.Lock()
	defer l.m.Unlock()

	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s%s", loc.Source, prefix, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s%s", loc, prefix, msg)
	}
}

// Errorf logs an error message and returns it as an error.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	l.printf(loc, "", msg)

	l.m.Lock()
	l.errors++
	l.m.Unlock()

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	l.printf(loc, "WARNING: ", msg)

	l.m.Lock()
	l.warnings++
	l.m.Unlock()
}

// Errors returns the number of errors logged.
func (l *Logger) Errors() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errors
}

// Warnings returns the number of warnings logged.
func (l *Logger) Warnings() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.warnings
}
