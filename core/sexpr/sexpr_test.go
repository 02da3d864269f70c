package sexpr

import (
	"bytes"
	"errors"
	"testing"

	ferrors "github.com/oxur/fermata/core/errors"
)

func TestRead(t *testing.T) {
	values, err := Read("test.fm", `; a key
(key f# major :staff 1)
(time :beats "3+2" :beat-type 8)
(numbers -1 2.5 1e3 +4)
()
"a \"quoted\" word"`)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []Value{
		NewList(Sym("key"), Sym("f#"), Sym("major"), Kw("staff"), Int(1)),
		NewList(Sym("time"), Kw("beats"), Str("3+2"), Kw("beat-type"), Int(8)),
		NewList(Sym("numbers"), &Number{Text: "-1"}, &Number{Text: "2.5"}, &Number{Text: "1e3"}, &Number{Text: "+4"}),
		NewList(),
		Str(`a "quoted" word`),
	}
	if len(values) != len(want) {
		t.Fatalf("Read() returned %d values, want %d", len(values), len(want))
	}
	for i := range want {
		if !Equal(values[i], want[i]) {
			t.Errorf("value %d = %s, want %s", i, FormatString(values[i], Options{Compact: true}), FormatString(want[i], Options{Compact: true}))
		}
	}
}

func TestReadPositions(t *testing.T) {
	v, err := ReadOne("", "(a\n  (b :c))")
	if err != nil {
		t.Fatalf("ReadOne() error = %v", err)
	}
	outer := v.(*List)
	if p := outer.Position(); p.Line != 1 || p.Column != 1 {
		t.Errorf("outer position = %v, want 1:1", p)
	}
	inner := outer.Items[1].(*List)
	if p := inner.Position(); p.Line != 2 || p.Column != 3 {
		t.Errorf("inner position = %v, want 2:3", p)
	}
	if p := inner.Items[1].Position(); p.Line != 2 || p.Column != 6 {
		t.Errorf("keyword position = %v, want 2:6", p)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed", "(key c"},
		{"stray close", ")"},
		{"unterminated string", `(a "b)`},
		{"bad escape", `(a "b\q")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read("bad.fm", tt.src)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Read() error = %v, want ErrSyntax", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) || se.Name != "bad.fm" {
				t.Errorf("error = %#v, want SyntaxError named bad.fm", err)
			}
		})
	}

	if _, err := ReadOne("", "(a) (b)"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ReadOne() of two values error = %v, want ErrSyntax", err)
	}
}

func TestReadNoteTypeSymbols(t *testing.T) {
	got, err := Read("types.fm", "(type 16th 128th 1024th) (n 16 -2.5 .5)")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []Value{
		NewList(Sym("type"), Sym("16th"), Sym("128th"), Sym("1024th")),
		NewList(Sym("n"), Int(16), &Number{Text: "-2.5"}, &Number{Text: ".5"}),
	}
	if len(got) != len(want) {
		t.Fatalf("Read() returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if !Equal(got[i], want[i]) {
			t.Errorf("value %d = %s, want %s", i, FormatString(got[i], Options{Compact: true}), FormatString(want[i], Options{Compact: true}))
		}
	}
}

func TestNumber(t *testing.T) {
	n := &Number{Text: "42"}
	if i, err := n.Int(); err != nil || i != 42 {
		t.Errorf("Int() = %d, %v, want 42", i, err)
	}
	if _, err := (&Number{Text: "1.5"}).Int(); err == nil {
		t.Error("Int() of 1.5 succeeded, want error")
	}
	if got := Float(2).Text; got != "2" {
		t.Errorf("Float(2).Text = %q, want %q", got, "2")
	}
	if got := Float(-0.25).Text; got != "-0.25" {
		t.Errorf("Float(-0.25).Text = %q, want %q", got, "-0.25")
	}
	if !Equal(&Number{Text: "1.50"}, Float(1.5)) {
		t.Error("1.50 and 1.5 are not Equal")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same symbol", Sym("a"), Sym("a"), true},
		{"symbol vs keyword", Sym("a"), Kw("a"), false},
		{"string vs symbol", Str("a"), Sym("a"), false},
		{"lists", NewList(Sym("a"), Int(1)), NewList(Sym("a"), Int(1)), true},
		{"list lengths", NewList(Sym("a")), NewList(Sym("a"), Int(1)), false},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func sample() Value {
	return NewList(Sym("score"), Kw("version"), Str("4.0"),
		NewList(Sym("part"), Kw("id"), Str("P1"),
			NewList(Sym("measure"), Kw("number"), Str("1"))))
}

func TestFormatCompact(t *testing.T) {
	want := `(score :version "4.0" (part :id "P1" (measure :number "1")))`
	if got := FormatString(sample(), Options{Compact: true}); got != want {
		t.Errorf("FormatString() = %q, want %q", got, want)
	}
}

func TestFormatIndent(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts Options
		want string
	}{
		{
			name: "nested lists",
			v:    sample(),
			opts: DefaultOptions(),
			want: "(score :version \"4.0\"\n  (part :id \"P1\"\n    (measure :number \"1\")))",
		},
		{
			name: "keyword list value",
			v:    NewList(Sym("a"), Kw("k"), NewList(Sym("b"), Sym("c")), Sym("d")),
			opts: Options{Indent: "\t"},
			want: "(a\n\t:k (b c) d)",
		},
		{
			name: "flat list stays on one line",
			v:    NewList(Sym("pitch"), Kw("step"), Sym("c"), Kw("octave"), Int(4)),
			opts: DefaultOptions(),
			want: "(pitch :step c :octave 4)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatString(tt.v, tt.opts); got != tt.want {
				t.Errorf("FormatString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatReadsBack(t *testing.T) {
	v := NewList(Sym("note"), Kw("text"), Str("line one\nline \"two\""), Kw("alter"), Float(-1.5),
		NewList(Sym("pitch"), Kw("step"), Sym("f#")),
		Kw("beams"), NewList(Sym("beam"), Kw("number"), Int(1)),
		NewList())
	for _, opts := range []Options{{Compact: true}, DefaultOptions(), {Indent: ""}} {
		text := FormatString(v, opts)
		back, err := ReadOne("", text)
		if err != nil {
			t.Fatalf("ReadOne(%q) error = %v", text, err)
		}
		if !Equal(v, back) {
			t.Errorf("profile %+v read back %q as a different tree", opts, text)
		}
	}
}

func TestFormat(t *testing.T) {
	var b bytes.Buffer
	if err := FormatAll(&b, []Value{Sym("a"), Sym("b")}, Options{Compact: true}); err != nil {
		t.Fatalf("FormatAll() error = %v", err)
	}
	if got := b.String(); got != "a\nb\n" {
		t.Errorf("FormatAll() = %q, want %q", got, "a\nb\n")
	}

	err := Format(failingWriter{}, sample(), DefaultOptions())
	var ioe *ferrors.IOError
	if !errors.As(err, &ioe) {
		t.Errorf("Format() error = %v, want IOError", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }
