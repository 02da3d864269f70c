package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) direction(d *ir.Direction) {
	e.w.Start("direction", xml.Attrs{}.
		Str("placement", d.Placement.String()).
		Str("directive", d.Directive.String()).
		Str("id", d.ID))
	for _, dt := range d.Types {
		e.directionType(dt)
	}
	if off := d.Offset; off != nil {
		e.text("offset", xml.FormatFloat(off.Value), xml.Attrs{}.Str("sound", off.Sound.String()))
	}
	e.optText("voice", d.Voice)
	e.optUint8("staff", d.Staff)
	if s := d.Sound; s != nil {
		e.sound(s)
	}
	e.w.End("direction")
}

func (e *encoder) directionType(dt *ir.DirectionType) {
	e.w.Start("direction-type", xml.Attrs{}.Str("id", dt.ID))
	for _, el := range dt.Elements {
		switch v := el.(type) {
		case *ir.Rehearsal:
			e.text("rehearsal", v.Value, formattedText(nil, v.FormattedText))
		case *ir.Words:
			e.text("words", v.Value, formattedText(nil, v.FormattedText))
		case *ir.Symbol:
			e.text("symbol", v.Value, formattedText(nil, v.FormattedText))
		case *ir.Segno:
			e.w.Empty("segno", printStyleAlign(nil, v.PrintStyle, v.Halign, v.Valign).Str("smufl", v.Smufl).Str("id", v.ID))
		case *ir.Coda:
			e.w.Empty("coda", printStyleAlign(nil, v.PrintStyle, v.Halign, v.Valign).Str("smufl", v.Smufl).Str("id", v.ID))
		case *ir.Wedge:
			a := xml.Attrs{}.
				Req("type", v.Type.String()).
				Uint8("number", v.Number).
				Float("spread", v.Spread).
				Str("niente", v.Niente.String()).
				Str("line-type", v.LineType.String())
			e.w.Empty("wedge", position(a, v.Position).Str("color", v.Color).Str("id", v.ID))
		case *ir.Dynamics:
			e.dynamics(v)
		case *ir.Dashes:
			a := xml.Attrs{}.Req("type", v.Type.String()).Uint8("number", v.Number)
			e.w.Empty("dashes", position(a, v.Position).Str("color", v.Color).Str("id", v.ID))
		case *ir.Bracket:
			a := xml.Attrs{}.
				Req("type", v.Type.String()).
				Uint8("number", v.Number).
				Req("line-end", v.LineEnd.String()).
				Float("end-length", v.EndLength).
				Str("line-type", v.LineType.String())
			e.w.Empty("bracket", position(a, v.Position).Str("color", v.Color).Str("id", v.ID))
		case *ir.Pedal:
			a := xml.Attrs{}.
				Req("type", v.Type.String()).
				Uint8("number", v.Number).
				Str("line", v.Line.String()).
				Str("sign", v.Sign.String()).
				Str("abbreviated", v.Abbreviated.String())
			e.w.Empty("pedal", printStyleAlign(a, v.PrintStyle, v.Halign, v.Valign).Str("id", v.ID))
		case *ir.Metronome:
			e.metronome(v)
		case *ir.OctaveShift:
			a := xml.Attrs{}.
				Req("type", v.Type.String()).
				Uint8("number", v.Number).
				Int("size", v.Size).
				Float("dash-length", v.DashLength).
				Float("space-length", v.SpaceLength)
			e.w.Empty("octave-shift", printStyle(a, v.PrintStyle).Str("id", v.ID))
		case *ir.DirectionMark:
			e.w.Empty(v.Kind.String(), printStyleAlign(nil, v.PrintStyle, v.Halign, v.Valign).Str("id", v.ID))
		case *ir.StringMute:
			a := xml.Attrs{}.Req("type", v.Type.String())
			e.w.Empty("string-mute", printStyleAlign(a, v.PrintStyle, v.Halign, v.Valign).Str("id", v.ID))
		case *ir.StaffDivide:
			a := xml.Attrs{}.Req("type", v.Type.String())
			e.w.Empty("staff-divide", printStyleAlign(a, v.PrintStyle, v.Halign, v.Valign).Str("id", v.ID))
		case *ir.OtherDirection:
			a := xml.Attrs{}.Str("print-object", v.PrintObject.String())
			a = printStyleAlign(a, v.PrintStyle, v.Halign, v.Valign).Str("smufl", v.Smufl).Str("id", v.ID)
			e.textOrEmpty("other-direction", v.Value, a)
		default:
			e.fail("direction-type")
		}
	}
	e.w.End("direction-type")
}

func (e *encoder) metronome(m *ir.Metronome) {
	a := xml.Attrs{}.
		Str("parentheses", m.Parentheses.String()).
		Str("justify", m.Justify.String())
	e.w.Start("metronome", printStyleAlign(a, m.PrintStyle, m.Halign, m.Valign).Str("id", m.ID))
	e.beatUnit(m.BeatUnit, m.BeatUnitDots)
	switch r := m.Rate.(type) {
	case *ir.PerMinute:
		e.text("per-minute", r.Value, font(nil, r.Font))
	case *ir.BeatUnitRate:
		e.beatUnit(r.BeatUnit, r.BeatUnitDots)
	default:
		e.fail("metronome")
	}
	e.w.End("metronome")
}

func (e *encoder) beatUnit(unit ir.NoteTypeValue, dots int) {
	e.text("beat-unit", unit.String(), nil)
	for i := 0; i < dots; i++ {
		e.w.Empty("beat-unit-dot", nil)
	}
}

func (e *encoder) sound(s *ir.Sound) {
	e.w.Empty("sound", xml.Attrs{}.
		Float("tempo", s.Tempo).
		Float("dynamics", s.Dynamics).
		Str("dacapo", s.Dacapo.String()).
		Str("segno", s.Segno).
		Str("dalsegno", s.Dalsegno).
		Str("coda", s.Coda).
		Str("tocoda", s.Tocoda).
		Float("divisions", s.Divisions).
		Str("forward-repeat", s.ForwardRepeat.String()).
		Str("fine", s.Fine).
		Str("time-only", s.TimeOnly).
		Str("pizzicato", s.Pizzicato.String()).
		Float("pan", s.Pan).
		Float("elevation", s.Elevation).
		Str("damper-pedal", s.DamperPedal).
		Str("soft-pedal", s.SoftPedal).
		Str("sostenuto-pedal", s.SostenutoPedal).
		Str("id", s.ID))
}
