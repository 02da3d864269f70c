package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// notations writes each category in a fixed order. Interleaving across
// categories in the source document is not kept.
func (e *encoder) notations(n *ir.Notations) {
	a := xml.Attrs{}.Str("print-object", n.PrintObject.String()).Str("id", n.ID)
	if n.IsEmpty() {
		e.w.Empty("notations", a)
		return
	}
	e.w.Start("notations", a)
	for _, t := range n.Tied {
		e.w.Empty("tied", e.spanAttrs(t.Type.String(), t.Number, t.LineType, t.Position, t.Placement, t.Orientation, t.Color, t.ID))
	}
	for _, s := range n.Slurs {
		e.w.Empty("slur", e.spanAttrs(s.Type.String(), s.Number, s.LineType, s.Position, s.Placement, s.Orientation, s.Color, s.ID))
	}
	for _, t := range n.Tuplets {
		e.tuplet(t)
	}
	for _, g := range n.Glissandos {
		e.glissando("glissando", g)
	}
	for _, s := range n.Slides {
		e.glissando("slide", ir.Glissando(s))
	}
	for _, o := range n.Ornaments {
		e.ornaments(o)
	}
	for _, t := range n.Technical {
		e.technical(t)
	}
	for _, ar := range n.Articulations {
		e.articulations(ar)
	}
	for _, d := range n.Dynamics {
		e.dynamics(d)
	}
	for _, f := range n.Fermatas {
		e.fermata(f)
	}
	for _, ar := range n.Arpeggiates {
		a := xml.Attrs{}.Uint8("number", ar.Number).
			Str("direction", ar.Direction.String()).
			Str("unbroken", ar.Unbroken.String())
		a = position(a, ar.Position).
			Str("placement", ar.Placement.String()).
			Str("color", ar.Color).
			Str("id", ar.ID)
		e.w.Empty("arpeggiate", a)
	}
	for _, na := range n.NonArpeggiates {
		a := xml.Attrs{}.Req("type", na.Type.String()).Uint8("number", na.Number)
		a = position(a, na.Position).
			Str("placement", na.Placement.String()).
			Str("color", na.Color).
			Str("id", na.ID)
		e.w.Empty("non-arpeggiate", a)
	}
	for _, am := range n.AccidentalMarks {
		e.accidentalMark(am)
	}
	for _, on := range n.OtherNotations {
		a := xml.Attrs{}.
			Req("type", on.Type.String()).
			Uint8("number", on.Number).
			Str("print-object", on.PrintObject.String())
		a = printStyle(a, on.PrintStyle).
			Str("placement", on.Placement.String()).
			Str("smufl", on.Smufl).
			Str("id", on.ID)
		e.textOrEmpty("other-notation", on.Value, a)
	}
	e.w.End("notations")
}

// spanAttrs builds the attributes shared by tied and slur.
func (e *encoder) spanAttrs(typ string, number *uint8, lt ir.LineType, pos ir.Position,
	placement ir.AboveBelow, orientation ir.OverUnder, color, id string) xml.Attrs {
	a := xml.Attrs{}.Req("type", typ).Uint8("number", number).Str("line-type", lt.String())
	return position(a, pos).
		Str("placement", placement.String()).
		Str("orientation", orientation.String()).
		Str("color", color).
		Str("id", id)
}

func (e *encoder) tuplet(t ir.Tuplet) {
	a := xml.Attrs{}.
		Req("type", t.Type.String()).
		Uint8("number", t.Number).
		Str("bracket", t.Bracket.String()).
		Str("show-number", t.ShowNumber.String()).
		Str("show-type", t.ShowType.String()).
		Str("line-shape", t.LineShape.String())
	a = position(a, t.Position).Str("placement", t.Placement.String()).Str("id", t.ID)
	if t.Actual == nil && t.Normal == nil {
		e.w.Empty("tuplet", a)
		return
	}
	e.w.Start("tuplet", a)
	if t.Actual != nil {
		e.tupletPortion("tuplet-actual", t.Actual)
	}
	if t.Normal != nil {
		e.tupletPortion("tuplet-normal", t.Normal)
	}
	e.w.End("tuplet")
}

func (e *encoder) tupletPortion(name string, tp *ir.TupletPortion) {
	if tp.Number == nil && tp.Type == 0 && tp.Dots == 0 {
		e.w.Empty(name, nil)
		return
	}
	e.w.Start(name, nil)
	e.optInt("tuplet-number", tp.Number)
	if tp.Type != 0 {
		e.text("tuplet-type", tp.Type.String(), nil)
	}
	for i := 0; i < tp.Dots; i++ {
		e.w.Empty("tuplet-dot", nil)
	}
	e.w.End(name)
}

func (e *encoder) glissando(name string, g ir.Glissando) {
	a := xml.Attrs{}.
		Req("type", g.Type.String()).
		Uint8("number", g.Number).
		Str("line-type", g.LineType.String())
	a = printStyle(a, g.PrintStyle).Str("id", g.ID)
	e.textOrEmpty(name, g.Text, a)
}

// fermata writes an absent shape as an empty element.
func (e *encoder) fermata(f ir.Fermata) {
	a := printStyle(xml.Attrs{}.Str("type", f.Type.String()), f.PrintStyle).Str("id", f.ID)
	e.textOrEmpty("fermata", f.Shape.String(), a)
}

func (e *encoder) accidentalMark(am ir.AccidentalMark) {
	a := xml.Attrs{}.
		Str("placement", am.Placement.String()).
		Str("parentheses", am.Parentheses.String()).
		Str("bracket", am.Bracket.String()).
		Str("size", am.Size.String()).
		Str("smufl", am.Smufl)
	a = printStyle(a, am.PrintStyle).Str("id", am.ID)
	e.text("accidental-mark", am.Value.String(), a)
}

func (e *encoder) dynamics(d *ir.Dynamics) {
	a := printStyle(nil, d.PrintStyle).
		Str("placement", d.Placement.String()).
		Str("halign", d.Halign.String()).
		Str("valign", d.Valign.String()).
		Str("enclosure", d.Enclosure.String()).
		Str("id", d.ID)
	if len(d.Marks) == 0 {
		e.w.Empty("dynamics", a)
		return
	}
	e.w.Start("dynamics", a)
	for _, m := range d.Marks {
		if m.Kind != 0 {
			e.w.Empty(m.Kind.String(), nil)
			continue
		}
		e.textOrEmpty("other-dynamics", m.Other, nil)
	}
	e.w.End("dynamics")
}
