package musicxml

import (
	"strconv"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func placed(ps ir.PrintStyle, placement ir.AboveBelow) xml.Attrs {
	return printStyle(nil, ps).Str("placement", placement.String())
}

func (e *encoder) technical(t *ir.Technical) {
	a := xml.Attrs{}.Str("id", t.ID)
	if len(t.Items) == 0 {
		e.w.Empty("technical", a)
		return
	}
	e.w.Start("technical", a)
	for _, item := range t.Items {
		switch v := item.(type) {
		case *ir.TechnicalMark:
			e.w.Empty(v.Kind.String(), emptyPlacement(nil, v.EmptyPlacement).Str("smufl", v.Smufl))
		case *ir.Harmonic:
			e.harmonic(v)
		case *ir.Fingering:
			a := xml.Attrs{}.
				Str("substitution", v.Substitution.String()).
				Str("alternate", v.Alternate.String())
			a = printStyle(a, v.PrintStyle).Str("placement", v.Placement.String())
			e.textOrEmpty("fingering", v.Value, a)
		case *ir.Pluck:
			e.textOrEmpty("pluck", v.Value, placed(v.PrintStyle, v.Placement))
		case *ir.Fret:
			e.text("fret", strconv.Itoa(v.Value), font(nil, v.Font).Str("color", v.Color))
		case *ir.StringNumber:
			e.text("string", strconv.Itoa(int(v.Value)), placed(v.PrintStyle, v.Placement))
		case *ir.HammerOn:
			e.hammerPull("hammer-on", v.HammerPull)
		case *ir.PullOff:
			e.hammerPull("pull-off", v.HammerPull)
		case *ir.Bend:
			e.bend(v)
		case *ir.Tap:
			a := xml.Attrs{}.Str("hand", v.Hand.String())
			a = printStyle(a, v.PrintStyle).Str("placement", v.Placement.String())
			e.textOrEmpty("tap", v.Value, a)
		case *ir.HeelToe:
			name := "heel"
			if v.Toe {
				name = "toe"
			}
			a := xml.Attrs{}.Str("substitution", v.Substitution.String())
			e.w.Empty(name, printStyle(a, v.PrintStyle).Str("placement", v.Placement.String()))
		case *ir.Hole:
			e.w.Start("hole", placed(v.PrintStyle, v.Placement))
			e.optText("hole-type", v.HoleType)
			e.holeClosed("hole-closed", v.HoleClosed)
			e.optText("hole-shape", v.HoleShape)
			e.w.End("hole")
		case *ir.Arrow:
			e.arrow(v)
		case *ir.Handbell:
			e.text("handbell", v.Value.String(), placed(v.PrintStyle, v.Placement))
		case *ir.HarmonMute:
			e.w.Start("harmon-mute", placed(v.PrintStyle, v.Placement))
			e.holeClosed("harmon-closed", v.Closed)
			e.w.End("harmon-mute")
		case *ir.OtherTechnical:
			e.textOrEmpty("other-technical", v.Value, placed(v.PrintStyle, v.Placement).Str("smufl", v.Smufl))
		default:
			e.fail("technical")
		}
	}
	e.w.End("technical")
}

func (e *encoder) harmonic(h *ir.Harmonic) {
	a := xml.Attrs{}.Str("print-object", h.PrintObject.String())
	a = printStyle(a, h.PrintStyle).Str("placement", h.Placement.String())
	if !h.Natural && !h.Artificial && h.Pitch == 0 {
		e.w.Empty("harmonic", a)
		return
	}
	e.w.Start("harmonic", a)
	e.flag("natural", h.Natural)
	e.flag("artificial", h.Artificial)
	if h.Pitch != 0 {
		e.w.Empty(h.Pitch.String(), nil)
	}
	e.w.End("harmonic")
}

func (e *encoder) hammerPull(name string, hp ir.HammerPull) {
	a := xml.Attrs{}.Req("type", hp.Type.String()).Uint8("number", hp.Number)
	a = printStyle(a, hp.PrintStyle).Str("placement", hp.Placement.String())
	e.textOrEmpty(name, hp.Value, a)
}

func (e *encoder) bend(b *ir.Bend) {
	a := xml.Attrs{}.Str("shape", b.Shape.String())
	a = printStyle(a, b.PrintStyle).
		Str("accelerate", b.Accelerate.String()).
		Float("beats", b.Beats).
		Float("first-beat", b.FirstBeat).
		Float("last-beat", b.LastBeat)
	e.w.Start("bend", a)
	e.float("bend-alter", b.Alter)
	switch {
	case b.PreBend:
		e.w.Empty("pre-bend", nil)
	case b.Release != nil:
		e.w.Empty("release", xml.Attrs{}.Float("offset", b.Release.Offset))
	}
	e.optText("with-bar", b.WithBar)
	e.w.End("bend")
}

func (e *encoder) holeClosed(name string, hc ir.HoleClosed) {
	e.text(name, hc.Value.String(), xml.Attrs{}.Str("location", hc.Location.String()))
}

func (e *encoder) arrow(ar *ir.Arrow) {
	e.w.Start("arrow", placed(ar.PrintStyle, ar.Placement).Str("smufl", ar.Smufl))
	if ar.Circular != 0 {
		e.text("circular-arrow", ar.Circular.String(), nil)
	} else {
		e.text("arrow-direction", ar.Direction.String(), nil)
		if ar.Style != 0 {
			e.text("arrow-style", ar.Style.String(), nil)
		}
		e.flag("arrowhead", ar.Arrowhead)
	}
	e.w.End("arrow")
}
