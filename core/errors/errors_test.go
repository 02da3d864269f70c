package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestTypedErrors(t *testing.T) {
	pos := Position{Offset: 42, Line: 3, Column: 7}
	tests := []struct {
		name     string
		err      Positioned
		wantMsg  string
		wantBase error
	}{
		{
			name:     "missing element",
			err:      NewMissingElement("part-name", "score-part", pos),
			wantMsg:  "3:7: missing required element <part-name> in <score-part>",
			wantBase: ErrMissingElement,
		},
		{
			name:     "missing attribute",
			err:      NewMissingAttribute("number", "measure", pos),
			wantMsg:  `3:7: missing required attribute "number" on <measure>`,
			wantBase: ErrMissingAttribute,
		},
		{
			name:     "invalid value",
			err:      NewInvalidValue("bar-style", "thick", pos),
			wantMsg:  `3:7: invalid value "thick" for bar-style`,
			wantBase: ErrInvalidValue,
		},
		{
			name:     "undefined reference",
			err:      NewUndefinedReference("part", "P2", pos),
			wantMsg:  `3:7: undefined part reference "P2"`,
			wantBase: ErrUndefinedReference,
		},
		{
			name:     "unexpected element",
			err:      &UnexpectedElementError{Element: "html", Expected: "score-partwise", Pos: pos},
			wantMsg:  "3:7: unexpected element <html>, expected <score-partwise>",
			wantBase: ErrUnexpectedElement,
		},
		{
			name:     "unsupported",
			err:      Unsupported("score-timewise documents are not yet supported", pos),
			wantMsg:  "3:7: score-timewise documents are not yet supported",
			wantBase: ErrUnsupported,
		},
		{
			name:     "syntax",
			err:      &XMLSyntaxError{Pos: pos, Err: io.ErrUnexpectedEOF},
			wantMsg:  "3:7: malformed XML: unexpected EOF",
			wantBase: ErrXMLSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantBase)
			}
			if got := tt.err.Position(); got != pos {
				t.Errorf("Position() = %v, want %v", got, pos)
			}
		})
	}
}

func TestInvalidValueWrapsCause(t *testing.T) {
	cause := fmt.Errorf("strconv: bad digit")
	err := &InvalidValueError{Field: "octave", Value: "x", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("InvalidValueError should unwrap to its cause")
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Error("InvalidValueError should unwrap to ErrInvalidValue")
	}
}

func TestPositionOf(t *testing.T) {
	inner := NewMissingAttribute("id", "part", Position{Line: 9, Column: 2})
	wrapped := Wrap(inner, "decoding score")

	pos, ok := PositionOf(wrapped)
	if !ok {
		t.Fatal("PositionOf() found no position through wrapping")
	}
	if pos.Line != 9 || pos.Column != 2 {
		t.Errorf("PositionOf() = %v, want 9:2", pos)
	}

	if _, ok := PositionOf(errors.New("plain")); ok {
		t.Error("PositionOf() should not find a position on a plain error")
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Line: 1, Column: 1}, "1:1"},
		{Position{Offset: 17}, "offset 17"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIOError(t *testing.T) {
	err := NewIO("write", "out.musicxml", io.ErrShortWrite)
	if got, want := err.Error(), "failed to write out.musicxml: short write"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrIO) || !errors.Is(err, io.ErrShortWrite) {
		t.Error("IOError should unwrap to ErrIO and its cause")
	}

	noPath := NewIO("write", "", io.ErrClosedPipe)
	if got, want := noPath.Error(), "failed to write: io: read/write on closed pipe"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	base := ErrInvalidValue
	if got := Wrapf(base, "field %s", "step"); !Is(got, base) {
		t.Errorf("Wrapf() lost the wrapped error: %v", got)
	}
	var target *MissingElementError
	if !As(Wrap(NewMissingElement("a", "b", Position{}), "x"), &target) {
		t.Error("As() failed through Wrap")
	}
}
