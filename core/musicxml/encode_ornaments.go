package musicxml

import (
	"strconv"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) ornaments(o *ir.Ornaments) {
	a := xml.Attrs{}.Str("id", o.ID)
	if len(o.Items) == 0 {
		e.w.Empty("ornaments", a)
		return
	}
	e.w.Start("ornaments", a)
	for _, item := range o.Items {
		switch v := item.(type) {
		case *ir.TrillMark:
			e.w.Empty("trill-mark", emptyTrillSound(nil, v.EmptyTrillSound))
		case *ir.Turn:
			e.w.Empty(v.Kind.String(), emptyTrillSound(xml.Attrs{}.Str("slash", v.Slash.String()), v.EmptyTrillSound))
		case *ir.Shake:
			e.w.Empty("shake", emptyTrillSound(nil, v.EmptyTrillSound))
		case *ir.WavyLine:
			e.wavyLine(v)
		case *ir.Mordent:
			name := "mordent"
			if v.Inverted {
				name = "inverted-mordent"
			}
			a := xml.Attrs{}.
				Str("long", v.Long.String()).
				Str("approach", v.Approach.String()).
				Str("departure", v.Departure.String())
			e.w.Empty(name, emptyTrillSound(a, v.EmptyTrillSound))
		case *ir.Schleifer:
			e.w.Empty("schleifer", emptyPlacement(nil, v.EmptyPlacement))
		case *ir.Tremolo:
			a := xml.Attrs{}.Str("type", v.Type.String())
			a = printStyle(a, v.PrintStyle).Str("placement", v.Placement.String()).Str("smufl", v.Smufl)
			e.text("tremolo", strconv.Itoa(v.Marks), a)
		case *ir.Haydn:
			e.w.Empty("haydn", emptyTrillSound(nil, v.EmptyTrillSound))
		case *ir.OtherOrnament:
			a := printStyle(nil, v.PrintStyle).Str("placement", v.Placement.String()).Str("smufl", v.Smufl)
			e.textOrEmpty("other-ornament", v.Value, a)
		case *ir.AccidentalMark:
			e.accidentalMark(*v)
		default:
			e.fail("ornaments")
		}
	}
	e.w.End("ornaments")
}

func (e *encoder) wavyLine(wl *ir.WavyLine) {
	a := xml.Attrs{}.Req("type", wl.Type.String()).Uint8("number", wl.Number)
	a = position(a, wl.Position).
		Str("placement", wl.Placement.String()).
		Str("color", wl.Color).
		Str("smufl", wl.Smufl)
	e.w.Empty("wavy-line", trillSound(a, wl.TrillSound))
}
