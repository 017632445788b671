package writer

import (
	"fmt"
	"strings"
)

// Writer provides utilities for generating formatted code with proper indentation
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a new code writer with specified indentation string
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...interface{}) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...interface{}) {
	w.Writef(format, args...)
	w.Newline()
}

// WriteLines writes every line of a possibly multi-line chunk at the current
// indentation. A trailing newline in the chunk does not produce an extra line.
func (w *Writer) WriteLines(chunk string) {
	chunk = strings.TrimSuffix(chunk, "\n")
	for _, line := range strings.Split(chunk, "\n") {
		w.WriteLine(strings.TrimRight(line, " \t\r"))
	}
}

// WriteRaw writes a caller-supplied chunk verbatim. Only its first line gets
// the current indentation; later lines keep their exact text so string
// literals spanning lines are not altered.
func (w *Writer) WriteRaw(chunk string) {
	w.Write(strings.TrimSuffix(chunk, "\n"))
	w.Newline()
}

// WriteEach writes each entry with WriteLines.
func (w *Writer) WriteEach(chunks []string) {
	for _, chunk := range chunks {
		w.WriteLines(chunk)
	}
}

// Newline adds a newline character
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// BlankLine adds an empty line
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		if !w.needsIndent {
			w.Newline()
		}
		w.Newline()
	}
}

// String returns the generated code as a string
func (w *Writer) String() string {
	return w.sb.String()
}

// updatePrefix updates the line prefix based on current indentation
func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// WriteBlock writes content inside a block with proper indentation
// Example: WriteBlock("{", "}", func() { w.WriteLine("x: u32,") })
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}
