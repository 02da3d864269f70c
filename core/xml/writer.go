package xml

import (
	"bufio"
	"io"
	"strings"

	"github.com/oxur/fermata/core/encoding"
)

// Writer emits XML element by element. Errors are sticky: after the first
// failed write every call is a no-op and Flush reports the failure.
type Writer struct {
	w      *bufio.Writer
	indent string
	err    error

	// stack of open elements; children[i] records whether open[i] has
	// element children, which decides where its end tag goes.
	open     []string
	children []bool
	lineHead bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithIndent sets the string repeated per nesting level. The empty string
// writes each document on a single line.
func WithIndent(indent string) WriterOption {
	return func(w *Writer) { w.indent = indent }
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{w: bufio.NewWriter(out), lineHead: true}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Declaration writes the XML declaration on its own line.
func (w *Writer) Declaration() {
	w.write(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	w.lineHead = true
}

// Doctype writes a DOCTYPE with a public and system identifier.
func (w *Writer) Doctype(root, public, system string) {
	w.write("<!DOCTYPE " + root + ` PUBLIC "` + public + `" "` + system + `">` + "\n")
	w.lineHead = true
}

func (w *Writer) breakLine() {
	if w.lineHead {
		w.lineHead = false
		return
	}
	if w.indent == "" {
		return
	}
	w.write("\n" + strings.Repeat(w.indent, len(w.open)))
}

func (w *Writer) markChild() {
	if n := len(w.children); n > 0 {
		w.children[n-1] = true
	}
}

func (w *Writer) tag(name string, attrs Attrs) {
	w.write("<" + name)
	for _, a := range attrs {
		w.write(" " + a.Name + `="` + encoding.EscapeXMLAttr(a.Value) + `"`)
	}
}

// Start opens an element.
func (w *Writer) Start(name string, attrs Attrs) {
	w.markChild()
	w.breakLine()
	w.tag(name, attrs)
	w.write(">")
	w.open = append(w.open, name)
	w.children = append(w.children, false)
}

// End closes the innermost open element, which must be name.
func (w *Writer) End(name string) {
	n := len(w.open)
	if n == 0 || w.open[n-1] != name {
		panic("xml: End(" + name + ") does not match the open element")
	}
	hadChildren := w.children[n-1]
	w.open = w.open[:n-1]
	w.children = w.children[:n-1]
	if hadChildren {
		w.breakLine()
	}
	w.write("</" + name + ">")
}

// Empty writes a self-closing element.
func (w *Writer) Empty(name string, attrs Attrs) {
	w.markChild()
	w.breakLine()
	w.tag(name, attrs)
	w.write("/>")
}

// TextElement writes <name attrs>text</name> on one line.
func (w *Writer) TextElement(name, text string, attrs Attrs) {
	w.markChild()
	w.breakLine()
	w.tag(name, attrs)
	w.write(">" + encoding.EscapeXMLText(text) + "</" + name + ">")
}

// Text writes escaped character data inside the open element.
func (w *Writer) Text(text string) {
	w.write(encoding.EscapeXMLText(text))
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Flush ends the output with a newline and flushes buffered data.
func (w *Writer) Flush() error {
	w.write("\n")
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
