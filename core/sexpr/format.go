package sexpr

import (
	"bufio"
	"io"
	"strings"

	"github.com/oxur/fermata/core/encoding"
	ferrors "github.com/oxur/fermata/core/errors"
)

// Options selects a formatting profile.
type Options struct {
	// Compact writes the whole value on one line with single spaces.
	Compact bool
	// Indent is repeated once per nesting level in the multi-line profile.
	Indent string
}

// DefaultOptions is the multi-line profile with a two-space indent.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// Format writes v to w. In the multi-line profile every list argument, and
// every keyword whose value is a list, starts a new line; other arguments
// stay on the line of their list. Both profiles read back to an Equal tree.
func Format(w io.Writer, v Value, opts Options) error {
	bw := bufio.NewWriter(w)
	f := formatter{w: bw, opts: opts}
	f.value(v, 0)
	if f.err == nil {
		_, f.err = bw.WriteString("\n")
	}
	if f.err == nil {
		f.err = bw.Flush()
	}
	if f.err != nil {
		return ferrors.NewIO("write", "", f.err)
	}
	return nil
}

// FormatAll writes each value with Format, one after another.
func FormatAll(w io.Writer, values []Value, opts Options) error {
	for _, v := range values {
		if err := Format(w, v, opts); err != nil {
			return err
		}
	}
	return nil
}

// FormatString returns v formatted without the trailing newline.
func FormatString(v Value, opts Options) string {
	var b strings.Builder
	f := formatter{w: &b, opts: opts}
	f.value(v, 0)
	return b.String()
}

type formatter struct {
	w    io.StringWriter
	opts Options
	err  error
}

func (f *formatter) write(s string) {
	if f.err == nil {
		_, f.err = f.w.WriteString(s)
	}
}

func (f *formatter) newline(depth int) {
	f.write("\n" + strings.Repeat(f.opts.Indent, depth))
}

func (f *formatter) value(v Value, depth int) {
	switch x := v.(type) {
	case *List:
		f.list(x, depth)
	case *Symbol:
		f.write(x.Name)
	case *Keyword:
		f.write(":" + x.Name)
	case *String:
		f.write(encoding.QuoteString(x.Value))
	case *Number:
		f.write(x.Text)
	}
}

func (f *formatter) list(l *List, depth int) {
	f.write("(")
	for i, item := range l.Items {
		if i > 0 {
			if !f.opts.Compact && breaksBefore(l.Items, i) {
				f.newline(depth + 1)
			} else {
				f.write(" ")
			}
		}
		f.value(item, depth+1)
	}
	f.write(")")
}

// breaksBefore reports whether the multi-line profile starts a new line
// before items[i]: a list that is not a keyword's value, or a keyword
// whose value is a list.
func breaksBefore(items []Value, i int) bool {
	switch items[i].(type) {
	case *List:
		_, isArg := items[i-1].(*Keyword)
		return !isArg
	case *Keyword:
		if i+1 < len(items) {
			_, isList := items[i+1].(*List)
			return isList
		}
	}
	return false
}
