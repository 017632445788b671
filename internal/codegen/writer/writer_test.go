package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter("    ")

	w.Write("pub")
	w.Write(" struct")

	assert.Equal(t, "pub struct", w.String())
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds newline
	w := NewWriter("    ")

	w.WriteLine("line1")
	w.WriteLine("line2")

	assert.Equal(t, "line1\nline2\n", w.String())
}

func TestWriter_NestedIndentation(t *testing.T) {
	// Test: Multiple levels of indentation
	w := NewWriter("  ")

	w.WriteLine("mod outer {")
	w.Indent()
	w.WriteLine("mod inner {")
	w.Indent()
	w.WriteLine("fn f() -> () {}")
	w.Dedent()
	w.WriteLine("}")
	w.Dedent()
	w.WriteLine("}")

	expected := "mod outer {\n  mod inner {\n    fn f() -> () {}\n  }\n}\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine prevents multiple blank lines
	w := NewWriter("    ")

	w.WriteLine("line1")
	w.BlankLine()
	w.WriteLine("line2")
	w.BlankLine()
	w.BlankLine() // Should not add another blank line
	w.WriteLine("line3")

	lines := strings.Split(w.String(), "\n")
	require.Len(t, lines, 6) // line1, blank, line2, blank, line3, empty
	assert.Equal(t, "line1", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "line2", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "line3", lines[4])
}

func TestWriter_BlankLineAfterPartialLine(t *testing.T) {
	// Test: BlankLine terminates an open line before inserting the blank one
	w := NewWriter("    ")

	w.Write("partial")
	w.BlankLine()
	w.WriteLine("next")

	assert.Equal(t, "partial\n\nnext\n", w.String())
}

func TestWriter_BlankLineOnEmptyWriter(t *testing.T) {
	w := NewWriter("    ")
	w.BlankLine()
	assert.Equal(t, "", w.String())
}

func TestWriter_WriteBlock(t *testing.T) {
	// Test: WriteBlock helper function
	w := NewWriter("    ")

	w.WriteBlock("{", "}", func() {
		w.WriteLine("foo: usize,")
	})

	assert.Equal(t, "{\n    foo: usize,\n}\n", w.String())
}

func TestWriter_WriteLines(t *testing.T) {
	// Test: Multi-line chunks are indented line by line
	w := NewWriter("    ")
	w.Indent()

	w.WriteLines("let x = 1;\nlet y = x + 1;\n")
	w.WriteLines("")

	assert.Equal(t, "    let x = 1;\n    let y = x + 1;\n\n", w.String())
}

func TestWriter_WriteLinesTrimsTrailingWhitespace(t *testing.T) {
	w := NewWriter("\t")
	w.WriteLines("a  \r\nb\t")
	assert.Equal(t, "a\nb\n", w.String())
}

func TestWriter_WriteEach(t *testing.T) {
	w := NewWriter("\t")
	w.Indent()
	w.WriteEach([]string{"#[a]", "#[b]"})
	assert.Equal(t, "\t#[a]\n\t#[b]\n", w.String())
}

func TestWriter_WriteFormatted(t *testing.T) {
	// Test: Formatted write operations
	w := NewWriter("\t")

	w.WriteLinef("type %s = %s;", "Item", "u32")
	w.Indent()
	w.Writef("// %s: %v", "value", true)
	w.Newline()

	assert.Equal(t, "type Item = u32;\n\t// value: true\n", w.String())
}

func TestWriter_WriteRaw(t *testing.T) {
	// Test: Only the first line of a raw chunk is indented
	w := NewWriter("    ")
	w.Indent()
	w.Indent()

	w.WriteRaw("let s = r\"a  \nb\";\n")
	w.WriteRaw("done();")

	assert.Equal(t, "        let s = r\"a  \nb\";\n        done();\n", w.String())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent doesn't go below zero
	w := NewWriter("\t")

	w.Dedent()
	w.WriteLine("a")
	w.Indent()
	w.WriteLine("b")
	w.Dedent()
	w.Dedent()
	w.WriteLine("c")

	assert.Equal(t, "a\n\tb\nc\n", w.String())
}
