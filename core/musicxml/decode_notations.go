package musicxml

import (
	"strings"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) notations(start xml.Event) (*ir.Notations, error) {
	a := attrsOf(start)
	n := &ir.Notations{PrintObject: a.yesNo("print-object"), ID: a.str("id")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "tied":
			t, err := d.tied(ev)
			n.Tied = append(n.Tied, t)
			return err
		case "slur":
			s, err := d.slur(ev)
			n.Slurs = append(n.Slurs, s)
			return err
		case "tuplet":
			t, err := d.tuplet(ev)
			n.Tuplets = append(n.Tuplets, t)
			return err
		case "glissando":
			g, err := d.glissando(ev)
			n.Glissandos = append(n.Glissandos, g)
			return err
		case "slide":
			g, err := d.glissando(ev)
			n.Slides = append(n.Slides, ir.Slide(g))
			return err
		case "ornaments":
			o, err := d.ornaments(ev)
			n.Ornaments = append(n.Ornaments, o)
			return err
		case "technical":
			t, err := d.technical(ev)
			n.Technical = append(n.Technical, t)
			return err
		case "articulations":
			ar, err := d.articulations(ev)
			n.Articulations = append(n.Articulations, ar)
			return err
		case "dynamics":
			dy, err := d.dynamics(ev)
			n.Dynamics = append(n.Dynamics, dy)
			return err
		case "fermata":
			f, err := d.fermata(ev)
			n.Fermatas = append(n.Fermatas, f)
			return err
		case "arpeggiate":
			ar, err := d.arpeggiate(ev)
			n.Arpeggiates = append(n.Arpeggiates, ar)
			return err
		case "non-arpeggiate":
			na, err := d.nonArpeggiate(ev)
			n.NonArpeggiates = append(n.NonArpeggiates, na)
			return err
		case "accidental-mark":
			am, err := d.accidentalMark(ev)
			n.AccidentalMarks = append(n.AccidentalMarks, am)
			return err
		case "other-notation":
			on, err := d.otherNotation(ev)
			n.OtherNotations = append(n.OtherNotations, on)
			return err
		}
		return d.skip("notations", ev)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (d *decoder) tied(ev xml.Event) (ir.Tied, error) {
	a := attrsOf(ev)
	t := ir.Tied{
		Type:        requiredEnum(a, "type", ir.ParseTiedType),
		Number:      a.small("number"),
		LineType:    a.lineType(),
		Position:    a.position(),
		Placement:   a.placement(),
		Orientation: enum(a, "orientation", ir.ParseOverUnder),
		Color:       a.str("color"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return t, err
	}
	return t, d.ignore(ev)
}

func (d *decoder) slur(ev xml.Event) (ir.Slur, error) {
	a := attrsOf(ev)
	s := ir.Slur{
		Type:        requiredEnum(a, "type", ir.ParseStartStopContinue),
		Number:      a.small("number"),
		LineType:    a.lineType(),
		Position:    a.position(),
		Placement:   a.placement(),
		Orientation: enum(a, "orientation", ir.ParseOverUnder),
		Color:       a.str("color"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return s, err
	}
	return s, d.ignore(ev)
}

func (d *decoder) tuplet(start xml.Event) (ir.Tuplet, error) {
	a := attrsOf(start)
	t := ir.Tuplet{
		Type:       requiredEnum(a, "type", ir.ParseStartStop),
		Number:     a.small("number"),
		Bracket:    a.yesNo("bracket"),
		ShowNumber: enum(a, "show-number", ir.ParseShowTuplet),
		ShowType:   enum(a, "show-type", ir.ParseShowTuplet),
		LineShape:  enum(a, "line-shape", ir.ParseLineShape),
		Position:   a.position(),
		Placement:  a.placement(),
		ID:         a.str("id"),
	}
	if err := a.Err(); err != nil {
		return t, err
	}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "tuplet-actual":
			t.Actual, err = d.tupletPortion(ev)
		case "tuplet-normal":
			t.Normal, err = d.tupletPortion(ev)
		default:
			err = d.skip("tuplet", ev)
		}
		return err
	})
	return t, err
}

func (d *decoder) tupletPortion(start xml.Event) (*ir.TupletPortion, error) {
	tp := &ir.TupletPortion{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "tuplet-number":
			tp.Number, err = d.optIntText(ev)
		case "tuplet-type":
			tp.Type, err = enumText(d, ev, ir.ParseNoteTypeValue)
		case "tuplet-dot":
			tp.Dots++
			err = d.ignore(ev)
		default:
			err = d.skip(start.Name, ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return tp, nil
}

// glissando decodes glissando and slide, which share a content model.
func (d *decoder) glissando(ev xml.Event) (ir.Glissando, error) {
	a := attrsOf(ev)
	g := ir.Glissando{
		Type:       requiredEnum(a, "type", ir.ParseStartStop),
		Number:     a.small("number"),
		LineType:   a.lineType(),
		PrintStyle: a.printStyle(),
		ID:         a.str("id"),
	}
	if err := a.Err(); err != nil {
		return g, err
	}
	s, err := d.text(ev)
	g.Text = s
	return g, err
}

func fermataAttrs(ev xml.Event) (ir.Fermata, error) {
	a := attrsOf(ev)
	f := ir.Fermata{
		Type:       enum(a, "type", ir.ParseUprightInverted),
		PrintStyle: a.printStyle(),
		ID:         a.str("id"),
	}
	return f, a.Err()
}

func (d *decoder) fermata(ev xml.Event) (ir.Fermata, error) {
	if ev.Kind == xml.EventEmpty {
		return fermataFromEmpty(ev)
	}
	return d.fermataFromStart(ev)
}

// fermataFromEmpty handles <fermata/>. The shape stays absent in every
// context; the encoder writes an absent shape back as an empty element.
func fermataFromEmpty(ev xml.Event) (ir.Fermata, error) {
	return fermataAttrs(ev)
}

// fermataFromStart handles <fermata>shape</fermata>. An empty pair means the
// same as the self-closing form.
func (d *decoder) fermataFromStart(ev xml.Event) (ir.Fermata, error) {
	f, err := fermataAttrs(ev)
	if err != nil {
		return f, err
	}
	s, ok, err := d.r.ReadOptionalText(ev)
	if err != nil || !ok {
		return f, err
	}
	shape, err := ir.ParseFermataShape(strings.TrimSpace(s))
	if err != nil {
		return f, invalid(ev, s, nil)
	}
	f.Shape = shape
	return f, nil
}

func (d *decoder) arpeggiate(ev xml.Event) (ir.Arpeggiate, error) {
	a := attrsOf(ev)
	ar := ir.Arpeggiate{
		Number:    a.small("number"),
		Direction: enum(a, "direction", ir.ParseUpDown),
		Unbroken:  a.yesNo("unbroken"),
		Position:  a.position(),
		Placement: a.placement(),
		Color:     a.str("color"),
		ID:        a.str("id"),
	}
	if err := a.Err(); err != nil {
		return ar, err
	}
	return ar, d.ignore(ev)
}

func (d *decoder) nonArpeggiate(ev xml.Event) (ir.NonArpeggiate, error) {
	a := attrsOf(ev)
	na := ir.NonArpeggiate{
		Type:      requiredEnum(a, "type", ir.ParseTopBottom),
		Number:    a.small("number"),
		Position:  a.position(),
		Placement: a.placement(),
		Color:     a.str("color"),
		ID:        a.str("id"),
	}
	if err := a.Err(); err != nil {
		return na, err
	}
	return na, d.ignore(ev)
}

func (d *decoder) accidentalMark(ev xml.Event) (ir.AccidentalMark, error) {
	a := attrsOf(ev)
	am := ir.AccidentalMark{
		Placement:   a.placement(),
		Parentheses: a.yesNo("parentheses"),
		Bracket:     a.yesNo("bracket"),
		Size:        enum(a, "size", ir.ParseSymbolSize),
		Smufl:       a.str("smufl"),
		PrintStyle:  a.printStyle(),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return am, err
	}
	v, err := enumText(d, ev, ir.ParseAccidentalValue)
	am.Value = v
	return am, err
}

func (d *decoder) otherNotation(ev xml.Event) (ir.OtherNotation, error) {
	a := attrsOf(ev)
	on := ir.OtherNotation{
		Type:        requiredEnum(a, "type", ir.ParseStartStopSingle),
		Number:      a.small("number"),
		PrintObject: a.yesNo("print-object"),
		PrintStyle:  a.printStyle(),
		Placement:   a.placement(),
		Smufl:       a.str("smufl"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return on, err
	}
	s, err := d.text(ev)
	on.Value = s
	return on, err
}

func (d *decoder) dynamics(start xml.Event) (*ir.Dynamics, error) {
	a := attrsOf(start)
	dy := &ir.Dynamics{
		PrintStyle: a.printStyle(),
		Placement:  a.placement(),
		Halign:     a.halign(),
		Valign:     a.valign(),
		Enclosure:  enum(a, "enclosure", ir.ParseEnclosureShape),
		ID:         a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		if ev.Name == "other-dynamics" {
			s, err := d.text(ev)
			dy.Marks = append(dy.Marks, ir.DynamicMark{Other: s})
			return err
		}
		kind, err := ir.ParseDynamicKind(ev.Name)
		if err != nil {
			return d.skip("dynamics", ev)
		}
		dy.Marks = append(dy.Marks, ir.DynamicMark{Kind: kind})
		return d.ignore(ev)
	})
	if err != nil {
		return nil, err
	}
	return dy, nil
}
