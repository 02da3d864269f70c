package musicxml

import (
	"io"
	"strconv"
	"strings"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// MusicXML 4.0 partwise document type.
const (
	partwisePublicID = "-//Recordare//DTD MusicXML 4.0 Partwise//EN"
	partwiseSystemID = "http://www.musicxml.org/dtds/partwise.dtd"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	indent      string
	declaration bool
	doctype     bool
}

func newEncodeConfig(opts []EncodeOption) encodeConfig {
	cfg := encodeConfig{indent: "  ", declaration: true, doctype: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIndent sets the indentation unit. The empty string writes the
// document on one line.
func WithIndent(indent string) EncodeOption {
	return func(c *encodeConfig) { c.indent = indent }
}

// WithDeclaration controls the leading XML declaration. It is on by default.
func WithDeclaration(on bool) EncodeOption {
	return func(c *encodeConfig) { c.declaration = on }
}

// WithDoctype controls the MusicXML DOCTYPE. It is on by default.
func WithDoctype(on bool) EncodeOption {
	return func(c *encodeConfig) { c.doctype = on }
}

type encoder struct {
	w   *xml.Writer
	err error
}

// fail records a score that cannot be written, such as a note without
// content. Only the first failure is kept.
func (e *encoder) fail(field string) {
	if e.err == nil {
		e.err = &ferrors.InvalidValueError{Field: field, Value: "<nil>"}
	}
}

func (e *encoder) finish() error {
	if e.err != nil {
		return e.err
	}
	if err := e.w.Flush(); err != nil {
		return ferrors.NewIO("write", "", err)
	}
	return nil
}

// Encode writes score as a partwise MusicXML document.
//
// Children are emitted in schema order. A write failure is returned as an
// *errors.IOError; a score holding a nil union value yields an
// *errors.InvalidValueError and nothing useful should be assumed about the
// partial output.
func Encode(w io.Writer, score *ir.ScorePartwise, opts ...EncodeOption) error {
	if score == nil {
		return &ferrors.InvalidValueError{Field: "score-partwise", Value: "<nil>"}
	}
	cfg := newEncodeConfig(opts)
	e := &encoder{w: xml.NewWriter(w, xml.WithIndent(cfg.indent))}
	if cfg.declaration {
		e.w.Declaration()
	}
	if cfg.doctype {
		e.w.Doctype("score-partwise", partwisePublicID, partwiseSystemID)
	}
	e.scorePartwise(score)
	return e.finish()
}

// EncodeToString is Encode into a string.
func EncodeToString(score *ir.ScorePartwise, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(&b, score, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// EncodeAttributes writes a lone <attributes> element. The declaration and
// doctype options are ignored.
func EncodeAttributes(w io.Writer, at *ir.Attributes, opts ...EncodeOption) error {
	if at == nil {
		return &ferrors.InvalidValueError{Field: "attributes", Value: "<nil>"}
	}
	cfg := newEncodeConfig(opts)
	e := &encoder{w: xml.NewWriter(w, xml.WithIndent(cfg.indent))}
	e.attributes(at)
	return e.finish()
}

func (e *encoder) text(name, s string, attrs xml.Attrs) {
	e.w.TextElement(name, s, attrs)
}

func (e *encoder) optText(name, s string) {
	if s != "" {
		e.w.TextElement(name, s, nil)
	}
}

func (e *encoder) float(name string, f float64) {
	e.w.TextElement(name, xml.FormatFloat(f), nil)
}

func (e *encoder) optFloat(name string, f *float64) {
	if f != nil {
		e.float(name, *f)
	}
}

func (e *encoder) int(name string, n int) {
	e.w.TextElement(name, strconv.Itoa(n), nil)
}

func (e *encoder) optInt(name string, n *int) {
	if n != nil {
		e.int(name, *n)
	}
}

func (e *encoder) optUint8(name string, n *uint8) {
	if n != nil {
		e.int(name, int(*n))
	}
}

func (e *encoder) flag(name string, on bool) {
	if on {
		e.w.Empty(name, nil)
	}
}

// textOrEmpty writes <name>s</name>, or <name/> when s is empty.
func (e *encoder) textOrEmpty(name, s string, attrs xml.Attrs) {
	if s == "" {
		e.w.Empty(name, attrs)
		return
	}
	e.w.TextElement(name, s, attrs)
}

func position(a xml.Attrs, p ir.Position) xml.Attrs {
	return a.Float("default-x", p.DefaultX).
		Float("default-y", p.DefaultY).
		Float("relative-x", p.RelativeX).
		Float("relative-y", p.RelativeY)
}

func font(a xml.Attrs, f ir.Font) xml.Attrs {
	return a.Str("font-family", f.FontFamily).
		Str("font-style", f.FontStyle.String()).
		Str("font-size", f.FontSize).
		Str("font-weight", f.FontWeight.String())
}

func printStyle(a xml.Attrs, ps ir.PrintStyle) xml.Attrs {
	return font(position(a, ps.Position), ps.Font).Str("color", ps.Color)
}

func emptyPlacement(a xml.Attrs, ep ir.EmptyPlacement) xml.Attrs {
	return printStyle(a, ep.PrintStyle).Str("placement", ep.Placement.String())
}

func formattedText(a xml.Attrs, ft ir.FormattedText) xml.Attrs {
	return printStyle(a, ft.PrintStyle).
		Str("justify", ft.Justify.String()).
		Str("halign", ft.Halign.String()).
		Str("valign", ft.Valign.String()).
		Int("underline", ft.Underline).
		Int("overline", ft.Overline).
		Int("line-through", ft.LineThrough).
		Float("rotation", ft.Rotation).
		Str("letter-spacing", ft.LetterSpacing).
		Str("line-height", ft.LineHeight).
		Str("xml:lang", ft.Lang).
		Str("xml:space", ft.Space).
		Str("enclosure", ft.Enclosure.String()).
		Str("id", ft.ID)
}

func trillSound(a xml.Attrs, ts ir.TrillSound) xml.Attrs {
	return a.Str("start-note", ts.StartNote.String()).
		Str("trill-step", ts.TrillStep.String()).
		Str("two-note-turn", ts.TwoNoteTurn.String()).
		Str("accelerate", ts.Accelerate.String()).
		Float("beats", ts.Beats).
		Float("second-beat", ts.SecondBeat).
		Float("last-beat", ts.LastBeat)
}

func emptyTrillSound(a xml.Attrs, ets ir.EmptyTrillSound) xml.Attrs {
	a = printStyle(a, ets.PrintStyle).Str("placement", ets.Placement.String())
	return trillSound(a, ets.TrillSound)
}

// printStyleAlign is print-style plus halign and valign, shared by most
// direction-type elements.
func printStyleAlign(a xml.Attrs, ps ir.PrintStyle, h ir.LeftCenterRight, v ir.Valign) xml.Attrs {
	return printStyle(a, ps).Str("halign", h.String()).Str("valign", v.String())
}
