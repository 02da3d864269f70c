package musicxml

import (
	"strings"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) articulations(start xml.Event) (*ir.Articulations, error) {
	ar := &ir.Articulations{ID: start.Attr("id")}
	err := d.children(start, func(ev xml.Event) error {
		el, err := d.articulation(ev)
		if err != nil || el == nil {
			return err
		}
		ar.Items = append(ar.Items, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}

// articulation decodes one child of articulations. It returns nil after
// skipping an unsupported child.
func (d *decoder) articulation(ev xml.Event) (ir.ArticulationElement, error) {
	if kind, err := ir.ParseArticulationKind(ev.Name); err == nil {
		a := attrsOf(ev)
		m := &ir.ArticulationMark{Kind: kind, EmptyPlacement: a.emptyPlacement()}
		return finishEmpty(d, ev, a, m)
	}
	if kind, err := ir.ParseJazzKind(ev.Name); err == nil {
		a := attrsOf(ev)
		j := &ir.JazzArticulation{
			Kind:       kind,
			LineShape:  enum(a, "line-shape", ir.ParseLineShape),
			LineType:   a.lineType(),
			LineLength: enum(a, "line-length", ir.ParseLineLength),
			PrintStyle: a.printStyle(),
			Placement:  a.placement(),
		}
		return finishEmpty(d, ev, a, j)
	}
	switch ev.Name {
	case "strong-accent":
		a := attrsOf(ev)
		s := &ir.StrongAccent{Type: enum(a, "type", ir.ParseUpDown), EmptyPlacement: a.emptyPlacement()}
		return finishEmpty(d, ev, a, s)
	case "breath-mark":
		return d.breathMark(ev)
	case "caesura":
		return d.caesura(ev)
	case "other-articulation":
		a := attrsOf(ev)
		o := &ir.OtherArticulation{PrintStyle: a.printStyle(), Placement: a.placement(), Smufl: a.str("smufl")}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		o.Value = s
		return o, err
	}
	return nil, d.skip("articulations", ev)
}

// breathMark and caesura allow empty content, which leaves Value zero.
func (d *decoder) breathMark(ev xml.Event) (*ir.BreathMark, error) {
	a := attrsOf(ev)
	b := &ir.BreathMark{PrintStyle: a.printStyle(), Placement: a.placement()}
	if err := a.Err(); err != nil {
		return nil, err
	}
	s, ok, err := d.r.ReadOptionalText(ev)
	if err != nil || !ok {
		return b, err
	}
	if b.Value, err = ir.ParseBreathMarkValue(strings.TrimSpace(s)); err != nil {
		return nil, invalid(ev, s, nil)
	}
	return b, nil
}

func (d *decoder) caesura(ev xml.Event) (*ir.Caesura, error) {
	a := attrsOf(ev)
	c := &ir.Caesura{PrintStyle: a.printStyle(), Placement: a.placement()}
	if err := a.Err(); err != nil {
		return nil, err
	}
	s, ok, err := d.r.ReadOptionalText(ev)
	if err != nil || !ok {
		return c, err
	}
	if c.Value, err = ir.ParseCaesuraValue(strings.TrimSpace(s)); err != nil {
		return nil, invalid(ev, s, nil)
	}
	return c, nil
}
