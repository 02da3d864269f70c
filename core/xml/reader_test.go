package xml

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/unicode"

	ferrors "github.com/oxur/fermata/core/errors"
)

func mustReader(t *testing.T, src string) *Reader {
	t.Helper()
	r, err := NewReader([]byte(src))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	return r
}

// collect reads every event up to EOF, dropping whitespace-only text.
func collect(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.Kind == EventEOF {
			return out
		}
		if ev.Kind == EventText && len(ev.Text) > 0 && isSpace(ev.Text) {
			continue
		}
		out = append(out, ev)
	}
}

func isSpace(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\n' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

func TestReaderDistinguishesEmptyElements(t *testing.T) {
	r := mustReader(t, `<?xml version="1.0"?>
<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 4.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">
<!-- comment -->
<a x="1"><b/><c></c><d>text</d></a>`)

	events := collect(t, r)
	want := []struct {
		kind EventKind
		name string
	}{
		{EventStart, "a"},
		{EventEmpty, "b"},
		{EventStart, "c"},
		{EventEnd, "c"},
		{EventStart, "d"},
		{EventText, ""},
		{EventEnd, "d"},
		{EventEnd, "a"},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		if events[i].Kind != w.kind || events[i].Name != w.name {
			t.Errorf("event %d = %s %q, want %s %q", i, events[i].Kind, events[i].Name, w.kind, w.name)
		}
	}
	if got := events[0].Attr("x"); got != "1" {
		t.Errorf("Attr(x) = %q, want %q", got, "1")
	}
	if got := events[5].Text; got != "text" {
		t.Errorf("Text = %q, want %q", got, "text")
	}
}

func TestReaderPositions(t *testing.T) {
	r := mustReader(t, "<a>\n  <b/>\n</a>")
	if _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Next(); err != nil { // whitespace
		t.Fatal(err)
	}
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Name != "b" || ev.Pos.Line != 2 || ev.Pos.Column != 3 {
		t.Errorf("b at %v, want 2:3", ev.Pos)
	}
}

func TestReaderNamespacedAttributes(t *testing.T) {
	r := mustReader(t, `<opus xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="op.xml" xml:lang="de"/>`)
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if got := ev.Attr("xlink:href"); got != "op.xml" {
		t.Errorf("xlink:href = %q", got)
	}
	if got := ev.Attr("xml:lang"); got != "de" {
		t.Errorf("xml:lang = %q", got)
	}
	if len(ev.Attrs) != 2 {
		t.Errorf("namespace declarations should be dropped, got %+v", ev.Attrs)
	}
}

func TestReaderSyntaxError(t *testing.T) {
	r := mustReader(t, "<a><b></a>")
	var err error
	for err == nil {
		var ev Event
		ev, err = r.Next()
		if ev.Kind == EventEOF {
			break
		}
	}
	if !errors.Is(err, ferrors.ErrXMLSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if _, ok := ferrors.PositionOf(err); !ok {
		t.Error("syntax error should carry a position")
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"text", "<t>sharp</t>", "sharp", true},
		{"entities", "<t>a &amp; b</t>", "a & b", true},
		{"self-closing", "<t/>", "", false},
		{"open-close", "<t></t>", "", false},
		{"whitespace only", "<t>  </t>", "", false},
		{"nested element skipped", "<t>a<x>ignored</x>b</t>", "ab", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustReader(t, tt.src)
			start, err := r.Next()
			if err != nil {
				t.Fatal(err)
			}
			got, ok, err := r.ReadOptionalText(start)
			if err != nil {
				t.Fatalf("ReadOptionalText failed: %v", err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ReadOptionalText() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			if ev, _ := r.Next(); ev.Kind != EventEOF {
				t.Errorf("reader not positioned after element, next = %s %q", ev.Kind, ev.Name)
			}
		})
	}
}

func TestSkipNestedSameName(t *testing.T) {
	r := mustReader(t, `<root><harmony><harmony><root-step>C</root-step></harmony></harmony><after/></root>`)
	if _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	h, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Skip(h); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Name != "after" || ev.Kind != EventEmpty {
		t.Errorf("after Skip got %s %q, want empty after", ev.Kind, ev.Name)
	}
}

func TestAttributeLookup(t *testing.T) {
	r := mustReader(t, `<repeat direction="backward" times="2" winged="x"/>`)
	ev, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ev.RequiredAttr("location"); !errors.Is(err, ferrors.ErrMissingAttribute) {
		t.Errorf("RequiredAttr(location) error = %v, want missing attribute", err)
	} else {
		var ma *ferrors.MissingAttributeError
		errors.As(err, &ma)
		if ma.Attribute != "location" || ma.Element != "repeat" {
			t.Errorf("MissingAttributeError = %+v", ma)
		}
	}

	times, err := OptionalAttrAs(ev, "times", ParseInt)
	if err != nil || times == nil || *times != 2 {
		t.Errorf("OptionalAttrAs(times) = %v, %v", times, err)
	}
	absent, err := OptionalAttrAs(ev, "missing", ParseInt)
	if err != nil || absent != nil {
		t.Errorf("OptionalAttrAs(missing) = %v, %v; want nil, nil", absent, err)
	}
	if _, err := OptionalAttrAs(ev, "winged", ParseInt); !errors.Is(err, ferrors.ErrInvalidValue) {
		t.Errorf("OptionalAttrAs(winged) error = %v, want invalid value", err)
	}
}

func TestNonUTF8Declaration(t *testing.T) {
	src := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><w>`), 0xE9)
	src = append(src, []byte(`</w>`)...)
	r, err := NewReader(src)
	if err != nil {
		t.Fatal(err)
	}
	start, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	text, err := r.ReadText(start)
	if err != nil {
		t.Fatal(err)
	}
	if text != "é" {
		t.Errorf("ReadText = %q, want %q", text, "é")
	}
}

func TestUTF16WithBOM(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-16"?><w a="ü">café</w>`
	for _, tc := range []struct {
		name  string
		order unicode.Endianness
	}{
		{"little endian", unicode.LittleEndian},
		{"big endian", unicode.BigEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := unicode.UTF16(tc.order, unicode.UseBOM).NewEncoder().Bytes([]byte(src))
			if err != nil {
				t.Fatal(err)
			}
			r, err := NewReader(data)
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			start, err := r.Next()
			if err != nil {
				t.Fatal(err)
			}
			if got, _ := start.Attrs.Get("a"); got != "ü" {
				t.Errorf("attribute a = %q, want %q", got, "ü")
			}
			text, err := r.ReadText(start)
			if err != nil {
				t.Fatal(err)
			}
			if text != "café" {
				t.Errorf("ReadText = %q, want %q", text, "café")
			}
		})
	}
}
