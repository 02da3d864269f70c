package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) ornaments(start xml.Event) (*ir.Ornaments, error) {
	o := &ir.Ornaments{ID: start.Attr("id")}
	err := d.children(start, func(ev xml.Event) error {
		el, err := d.ornament(ev)
		if err != nil || el == nil {
			return err
		}
		o.Items = append(o.Items, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ornament decodes one child of ornaments. It returns nil after skipping an
// unsupported child.
func (d *decoder) ornament(ev xml.Event) (ir.OrnamentElement, error) {
	if kind, err := ir.ParseTurnKind(ev.Name); err == nil {
		return d.turn(ev, kind)
	}
	switch ev.Name {
	case "trill-mark":
		a := attrsOf(ev)
		tm := &ir.TrillMark{EmptyTrillSound: a.emptyTrillSound()}
		return finishEmpty(d, ev, a, tm)
	case "shake":
		a := attrsOf(ev)
		s := &ir.Shake{EmptyTrillSound: a.emptyTrillSound()}
		return finishEmpty(d, ev, a, s)
	case "haydn":
		a := attrsOf(ev)
		h := &ir.Haydn{EmptyTrillSound: a.emptyTrillSound()}
		return finishEmpty(d, ev, a, h)
	case "wavy-line":
		wl, err := d.wavyLine(ev)
		if err != nil {
			return nil, err
		}
		return wl, nil
	case "mordent", "inverted-mordent":
		a := attrsOf(ev)
		m := &ir.Mordent{
			Inverted:        ev.Name == "inverted-mordent",
			Long:            a.yesNo("long"),
			Approach:        enum(a, "approach", ir.ParseAboveBelow),
			Departure:       enum(a, "departure", ir.ParseAboveBelow),
			EmptyTrillSound: a.emptyTrillSound(),
		}
		return finishEmpty(d, ev, a, m)
	case "schleifer":
		a := attrsOf(ev)
		s := &ir.Schleifer{EmptyPlacement: a.emptyPlacement()}
		return finishEmpty(d, ev, a, s)
	case "tremolo":
		return d.tremolo(ev)
	case "other-ornament":
		a := attrsOf(ev)
		oo := &ir.OtherOrnament{PrintStyle: a.printStyle(), Placement: a.placement(), Smufl: a.str("smufl")}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		oo.Value = s
		return oo, err
	case "accidental-mark":
		am, err := d.accidentalMark(ev)
		if err != nil {
			return nil, err
		}
		return &am, nil
	}
	return nil, d.skip("ornaments", ev)
}

// finishEmpty completes an element whose content is attributes only.
func finishEmpty[T any](d *decoder, ev xml.Event, a *attrReader, v T) (T, error) {
	var zero T
	if err := a.Err(); err != nil {
		return zero, err
	}
	return v, d.ignore(ev)
}

func (d *decoder) turn(ev xml.Event, kind ir.TurnKind) (*ir.Turn, error) {
	a := attrsOf(ev)
	t := &ir.Turn{Kind: kind, Slash: a.yesNo("slash"), EmptyTrillSound: a.emptyTrillSound()}
	return finishEmpty(d, ev, a, t)
}

func (d *decoder) wavyLine(ev xml.Event) (*ir.WavyLine, error) {
	a := attrsOf(ev)
	wl := &ir.WavyLine{
		Type:       requiredEnum(a, "type", ir.ParseStartStopContinue),
		Number:     a.small("number"),
		Position:   a.position(),
		Placement:  a.placement(),
		Color:      a.str("color"),
		Smufl:      a.str("smufl"),
		TrillSound: a.trillSound(),
	}
	return finishEmpty(d, ev, a, wl)
}

func (d *decoder) tremolo(ev xml.Event) (*ir.Tremolo, error) {
	a := attrsOf(ev)
	t := &ir.Tremolo{
		Type:       enum(a, "type", ir.ParseTremoloType),
		PrintStyle: a.printStyle(),
		Placement:  a.placement(),
		Smufl:      a.str("smufl"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	marks, err := d.intText(ev)
	if err != nil {
		return nil, err
	}
	if marks < 0 || marks > 8 {
		return nil, invalid(ev, xml.FormatFloat(float64(marks)), nil)
	}
	t.Marks = marks
	return t, nil
}
