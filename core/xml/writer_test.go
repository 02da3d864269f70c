package xml

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriterCompact(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Start("barline", Attrs{}.Str("location", "right"))
	w.TextElement("bar-style", "light-heavy", nil)
	w.Empty("repeat", Attrs{}.Req("direction", "backward").Int("times", intPtr(2)).Float("absent", nil))
	w.End("barline")
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := `<barline location="right"><bar-style>light-heavy</bar-style><repeat direction="backward" times="2"/></barline>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriterIndent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithIndent("  "))
	w.Declaration()
	w.Start("a", nil)
	w.Start("b", nil)
	w.TextElement("c", "x < y", nil)
	w.End("b")
	w.Start("d", nil)
	w.End("d")
	w.End("a")
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<a>
  <b>
    <c>x &lt; y</c>
  </b>
  <d></d>
</a>
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriterEscapesAttributes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Empty("credit-words", Attrs{}.Str("font-family", `Times "New" & Roman`))
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := `<credit-words font-family="Times &quot;New&quot; &amp; Roman"/>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-1.5, "-1.5"},
		{0.25, "0.25"},
		{120, "120"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	for i := 0; i < 10000; i++ {
		w.Empty("note", nil)
	}
	if err := w.Flush(); err == nil {
		t.Fatal("Flush should report the write failure")
	}
	if w.Err() == nil {
		t.Error("Err should stay set")
	}
}

func TestWriterEndMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("End with the wrong name should panic")
		}
	}()
	w := NewWriter(&bytes.Buffer{})
	w.Start("a", nil)
	w.End("b")
}

func intPtr(n int) *int { return &n }
