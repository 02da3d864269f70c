package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) part(p *ir.Part) {
	if len(p.Measures) == 0 {
		e.w.Empty("part", xml.Attrs{}.Req("id", p.ID))
		return
	}
	e.w.Start("part", xml.Attrs{}.Req("id", p.ID))
	for _, m := range p.Measures {
		e.measure(m)
	}
	e.w.End("part")
}

func (e *encoder) measure(m *ir.Measure) {
	a := xml.Attrs{}.
		Req("number", m.Number).
		Str("text", m.Text).
		Str("implicit", m.Implicit.String()).
		Str("non-controlling", m.NonControlling.String()).
		Float("width", m.Width).
		Str("id", m.ID)
	if len(m.Content) == 0 {
		e.w.Empty("measure", a)
		return
	}
	e.w.Start("measure", a)
	for _, md := range m.Content {
		switch v := md.(type) {
		case *ir.Note:
			e.note(v)
		case *ir.Backup:
			e.w.Start("backup", nil)
			e.float("duration", v.Duration)
			e.w.End("backup")
		case *ir.Forward:
			e.w.Start("forward", nil)
			e.float("duration", v.Duration)
			e.optText("voice", v.Voice)
			e.optUint8("staff", v.Staff)
			e.w.End("forward")
		case *ir.Direction:
			e.direction(v)
		case *ir.Attributes:
			e.attributes(v)
		case *ir.Barline:
			e.barline(v)
		default:
			e.fail("measure")
		}
	}
	e.w.End("measure")
}
