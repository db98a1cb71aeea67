// File: plotter.go
// Title: Plot Sinks
// Description: Destinations for protocol commands: a buffered line writer,
//              an in-memory recorder and a counting decorator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package plot

import (
	"bufio"
	"io"
)

// Plotter receives protocol commands in execution order
type Plotter interface {
	Emit(cmd Command) error
}

// Writer writes one line per command. Output is buffered; call Flush when
// the program has finished.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer on w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Emit writes the command followed by a newline
func (w *Writer) Emit(cmd Command) error {
	if _, err := w.w.WriteString(cmd.String()); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered output
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Recorder keeps every command in memory
type Recorder struct {
	commands []Command
}

// Emit records the command
func (r *Recorder) Emit(cmd Command) error {
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands returns the recorded commands
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Lines returns the recorded commands as protocol lines
func (r *Recorder) Lines() []string {
	var lines []string
	for _, c := range r.commands {
		lines = append(lines, c.String())
	}
	return lines
}

// Reset discards everything recorded so far
func (r *Recorder) Reset() {
	r.commands = nil
}

// Counter forwards commands and counts the ones accepted
type Counter struct {
	next  Plotter
	count int
}

// NewCounter wraps next
func NewCounter(next Plotter) *Counter {
	return &Counter{next: next}
}

// Emit forwards the command and counts it on success
func (c *Counter) Emit(cmd Command) error {
	if err := c.next.Emit(cmd); err != nil {
		return err
	}
	c.count++
	return nil
}

// Count returns the number of commands forwarded
func (c *Counter) Count() int {
	return c.count
}

// Discard accepts and drops every command
var Discard Plotter = discard{}

type discard struct{}

func (discard) Emit(Command) error { return nil }
