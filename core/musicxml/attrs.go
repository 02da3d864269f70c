package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// attrReader extracts the attributes of one element. The first failure is
// kept and later lookups return zero values, so a decode function can read
// every attribute and check Err once.
type attrReader struct {
	ev  xml.Event
	err error
}

func attrsOf(ev xml.Event) *attrReader {
	return &attrReader{ev: ev}
}

// Err returns the first attribute error.
func (a *attrReader) Err() error {
	return a.err
}

func (a *attrReader) str(name string) string {
	return a.ev.Attr(name)
}

func (a *attrReader) optStr(name string) *string {
	v, ok := a.ev.OptionalAttr(name)
	if !ok {
		return nil
	}
	return &v
}

func (a *attrReader) required(name string) string {
	if a.err != nil {
		return ""
	}
	v, err := a.ev.RequiredAttr(name)
	if err != nil {
		a.err = err
	}
	return v
}

func optional[T any](a *attrReader, name string, parse func(string) (T, error)) *T {
	if a.err != nil {
		return nil
	}
	v, err := xml.OptionalAttrAs(a.ev, name, parse)
	if err != nil {
		a.err = err
		return nil
	}
	return v
}

// enum reads an optional vocabulary attribute; absent is the zero value.
func enum[T any](a *attrReader, name string, parse func(string) (T, error)) T {
	var zero T
	if a.err != nil {
		return zero
	}
	v, err := xml.EnumAttr(a.ev, name, parse)
	if err != nil {
		a.err = err
		return zero
	}
	return v
}

// requiredEnum reads a vocabulary attribute that must be present.
func requiredEnum[T any](a *attrReader, name string, parse func(string) (T, error)) T {
	var zero T
	if a.err != nil {
		return zero
	}
	v, err := xml.RequiredAttrAs(a.ev, name, parse)
	if err != nil {
		a.err = err
		return zero
	}
	return v
}

func (a *attrReader) float(name string) *float64 { return optional(a, name, xml.ParseFloat) }
func (a *attrReader) integer(name string) *int { return optional(a, name, xml.ParseInt) }
func (a *attrReader) small(name string) *uint8 { return optional(a, name, xml.ParseUint8) }

func (a *attrReader) yesNo(name string) ir.YesNo {
	return enum(a, name, ir.ParseYesNo)
}

func (a *attrReader) placement() ir.AboveBelow {
	return enum(a, "placement", ir.ParseAboveBelow)
}

func (a *attrReader) halign() ir.LeftCenterRight {
	return enum(a, "halign", ir.ParseLeftCenterRight)
}

func (a *attrReader) valign() ir.Valign {
	return enum(a, "valign", ir.ParseValign)
}

func (a *attrReader) justify() ir.LeftCenterRight {
	return enum(a, "justify", ir.ParseLeftCenterRight)
}

func (a *attrReader) lineType() ir.LineType {
	return enum(a, "line-type", ir.ParseLineType)
}

func (a *attrReader) position() ir.Position {
	return ir.Position{
		DefaultX:  a.float("default-x"),
		DefaultY:  a.float("default-y"),
		RelativeX: a.float("relative-x"),
		RelativeY: a.float("relative-y"),
	}
}

func (a *attrReader) font() ir.Font {
	return ir.Font{
		FontFamily: a.str("font-family"),
		FontStyle:  enum(a, "font-style", ir.ParseFontStyle),
		FontSize:   a.str("font-size"),
		FontWeight: enum(a, "font-weight", ir.ParseFontWeight),
	}
}

func (a *attrReader) printStyle() ir.PrintStyle {
	return ir.PrintStyle{
		Position: a.position(),
		Font:     a.font(),
		Color:    a.str("color"),
	}
}

func (a *attrReader) emptyPlacement() ir.EmptyPlacement {
	return ir.EmptyPlacement{PrintStyle: a.printStyle(), Placement: a.placement()}
}

func (a *attrReader) formattedText(value string) ir.FormattedText {
	return ir.FormattedText{
		Value:         value,
		PrintStyle:    a.printStyle(),
		Justify:       a.justify(),
		Halign:        a.halign(),
		Valign:        a.valign(),
		Underline:     a.integer("underline"),
		Overline:      a.integer("overline"),
		LineThrough:   a.integer("line-through"),
		Rotation:      a.float("rotation"),
		LetterSpacing: a.str("letter-spacing"),
		LineHeight:    a.str("line-height"),
		Lang:          a.str("xml:lang"),
		Space:         a.str("xml:space"),
		Enclosure:     enum(a, "enclosure", ir.ParseEnclosureShape),
		ID:            a.str("id"),
	}
}

func (a *attrReader) trillSound() ir.TrillSound {
	return ir.TrillSound{
		StartNote:   enum(a, "start-note", ir.ParseStartNote),
		TrillStep:   enum(a, "trill-step", ir.ParseTrillStep),
		TwoNoteTurn: enum(a, "two-note-turn", ir.ParseTwoNoteTurn),
		Accelerate:  a.yesNo("accelerate"),
		Beats:       a.float("beats"),
		SecondBeat:  a.float("second-beat"),
		LastBeat:    a.float("last-beat"),
	}
}

func (a *attrReader) emptyTrillSound() ir.EmptyTrillSound {
	return ir.EmptyTrillSound{
		PrintStyle: a.printStyle(),
		Placement:  a.placement(),
		TrillSound: a.trillSound(),
	}
}
