package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) articulations(ar *ir.Articulations) {
	a := xml.Attrs{}.Str("id", ar.ID)
	if len(ar.Items) == 0 {
		e.w.Empty("articulations", a)
		return
	}
	e.w.Start("articulations", a)
	for _, item := range ar.Items {
		switch v := item.(type) {
		case *ir.ArticulationMark:
			e.w.Empty(v.Kind.String(), emptyPlacement(nil, v.EmptyPlacement))
		case *ir.StrongAccent:
			e.w.Empty("strong-accent", emptyPlacement(xml.Attrs{}.Str("type", v.Type.String()), v.EmptyPlacement))
		case *ir.JazzArticulation:
			a := xml.Attrs{}.
				Str("line-shape", v.LineShape.String()).
				Str("line-type", v.LineType.String()).
				Str("line-length", v.LineLength.String())
			e.w.Empty(v.Kind.String(), printStyle(a, v.PrintStyle).Str("placement", v.Placement.String()))
		case *ir.BreathMark:
			e.textOrEmpty("breath-mark", v.Value.String(), placed(v.PrintStyle, v.Placement))
		case *ir.Caesura:
			e.textOrEmpty("caesura", v.Value.String(), placed(v.PrintStyle, v.Placement))
		case *ir.OtherArticulation:
			e.textOrEmpty("other-articulation", v.Value, placed(v.PrintStyle, v.Placement).Str("smufl", v.Smufl))
		default:
			e.fail("articulations")
		}
	}
	e.w.End("articulations")
}
