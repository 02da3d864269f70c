package musicxml

import (
	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) technical(start xml.Event) (*ir.Technical, error) {
	t := &ir.Technical{ID: start.Attr("id")}
	err := d.children(start, func(ev xml.Event) error {
		el, err := d.technicalElement(ev)
		if err != nil || el == nil {
			return err
		}
		t.Items = append(t.Items, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// technicalElement decodes one child of technical. It returns nil after
// skipping an unsupported child.
func (d *decoder) technicalElement(ev xml.Event) (ir.TechnicalElement, error) {
	if kind, err := ir.ParseTechnicalMarkKind(ev.Name); err == nil {
		a := attrsOf(ev)
		m := &ir.TechnicalMark{Kind: kind, EmptyPlacement: a.emptyPlacement(), Smufl: a.str("smufl")}
		return finishEmpty(d, ev, a, m)
	}
	switch ev.Name {
	case "harmonic":
		return d.harmonic(ev)
	case "fingering":
		a := attrsOf(ev)
		f := &ir.Fingering{
			Substitution: a.yesNo("substitution"),
			Alternate:    a.yesNo("alternate"),
			PrintStyle:   a.printStyle(),
			Placement:    a.placement(),
		}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		f.Value = s
		return f, err
	case "pluck":
		a := attrsOf(ev)
		p := &ir.Pluck{PrintStyle: a.printStyle(), Placement: a.placement()}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		p.Value = s
		return p, err
	case "fret":
		a := attrsOf(ev)
		f := &ir.Fret{Font: a.font(), Color: a.str("color")}
		if err := a.Err(); err != nil {
			return nil, err
		}
		n, err := d.intText(ev)
		f.Value = n
		return f, err
	case "string":
		a := attrsOf(ev)
		s := &ir.StringNumber{PrintStyle: a.printStyle(), Placement: a.placement()}
		if err := a.Err(); err != nil {
			return nil, err
		}
		n, err := d.uint8Text(ev)
		s.Value = n
		return s, err
	case "hammer-on", "pull-off":
		hp, err := d.hammerPull(ev)
		if err != nil {
			return nil, err
		}
		if ev.Name == "pull-off" {
			return &ir.PullOff{HammerPull: hp}, nil
		}
		return &ir.HammerOn{HammerPull: hp}, nil
	case "bend":
		return d.bend(ev)
	case "tap":
		a := attrsOf(ev)
		t := &ir.Tap{Hand: enum(a, "hand", ir.ParseLeftRight), PrintStyle: a.printStyle(), Placement: a.placement()}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		t.Value = s
		return t, err
	case "heel", "toe":
		a := attrsOf(ev)
		h := &ir.HeelToe{
			Toe:          ev.Name == "toe",
			Substitution: a.yesNo("substitution"),
			PrintStyle:   a.printStyle(),
			Placement:    a.placement(),
		}
		return finishEmpty(d, ev, a, h)
	case "hole":
		return d.hole(ev)
	case "arrow":
		return d.arrow(ev)
	case "handbell":
		a := attrsOf(ev)
		h := &ir.Handbell{PrintStyle: a.printStyle(), Placement: a.placement()}
		if err := a.Err(); err != nil {
			return nil, err
		}
		v, err := enumText(d, ev, ir.ParseHandbellValue)
		h.Value = v
		return h, err
	case "harmon-mute":
		return d.harmonMute(ev)
	case "other-technical":
		a := attrsOf(ev)
		o := &ir.OtherTechnical{PrintStyle: a.printStyle(), Placement: a.placement(), Smufl: a.str("smufl")}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		o.Value = s
		return o, err
	}
	return nil, d.skip("technical", ev)
}

func (d *decoder) harmonic(start xml.Event) (*ir.Harmonic, error) {
	a := attrsOf(start)
	h := &ir.Harmonic{
		PrintObject: a.yesNo("print-object"),
		PrintStyle:  a.printStyle(),
		Placement:   a.placement(),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		if ev.Name == "natural" {
			h.Natural = true
			return d.ignore(ev)
		}
		if ev.Name == "artificial" {
			h.Artificial = true
			return d.ignore(ev)
		}
		p, err := ir.ParseHarmonicPitch(ev.Name)
		if err != nil {
			return d.skip("harmonic", ev)
		}
		h.Pitch = p
		return d.ignore(ev)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (d *decoder) hammerPull(ev xml.Event) (ir.HammerPull, error) {
	a := attrsOf(ev)
	hp := ir.HammerPull{
		Type:       requiredEnum(a, "type", ir.ParseStartStop),
		Number:     a.small("number"),
		PrintStyle: a.printStyle(),
		Placement:  a.placement(),
	}
	if err := a.Err(); err != nil {
		return hp, err
	}
	s, err := d.text(ev)
	hp.Value = s
	return hp, err
}

func (d *decoder) bend(start xml.Event) (*ir.Bend, error) {
	a := attrsOf(start)
	b := &ir.Bend{
		Shape:      enum(a, "shape", ir.ParseBendShape),
		PrintStyle: a.printStyle(),
		Accelerate: a.yesNo("accelerate"),
		Beats:      a.float("beats"),
		FirstBeat:  a.float("first-beat"),
		LastBeat:   a.float("last-beat"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	sawAlter := false
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "bend-alter":
			b.Alter, err = d.floatText(ev)
			sawAlter = true
		case "pre-bend":
			b.PreBend, err = d.presence(ev)
		case "release":
			var off *float64
			if off, err = xml.OptionalAttrAs(ev, "offset", xml.ParseFloat); err == nil {
				b.Release = &ir.BendRelease{Offset: off}
				err = d.ignore(ev)
			}
		case "with-bar":
			b.WithBar, err = d.text(ev)
		default:
			err = d.skip("bend", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawAlter {
		return nil, missing("bend-alter", "bend", start)
	}
	return b, nil
}

func (d *decoder) hole(start xml.Event) (*ir.Hole, error) {
	a := attrsOf(start)
	h := &ir.Hole{PrintStyle: a.printStyle(), Placement: a.placement()}
	if err := a.Err(); err != nil {
		return nil, err
	}
	sawClosed := false
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "hole-type":
			h.HoleType, err = d.text(ev)
		case "hole-closed":
			h.HoleClosed, err = d.holeClosed(ev)
			sawClosed = true
		case "hole-shape":
			h.HoleShape, err = d.text(ev)
		default:
			err = d.skip("hole", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawClosed {
		return nil, missing("hole-closed", "hole", start)
	}
	return h, nil
}

// holeClosed reads hole-closed and harmon-closed. Neither has a schema
// default for its value, so empty content is an error.
func (d *decoder) holeClosed(ev xml.Event) (ir.HoleClosed, error) {
	loc, err := xml.EnumAttr(ev, "location", ir.ParseHoleClosedLocation)
	if err != nil {
		return ir.HoleClosed{}, err
	}
	v, err := enumText(d, ev, ir.ParseHoleClosedValue)
	if err != nil {
		return ir.HoleClosed{}, err
	}
	return ir.HoleClosed{Value: v, Location: loc}, nil
}

func (d *decoder) arrow(start xml.Event) (*ir.Arrow, error) {
	a := attrsOf(start)
	ar := &ir.Arrow{PrintStyle: a.printStyle(), Placement: a.placement(), Smufl: a.str("smufl")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "arrow-direction":
			ar.Direction, err = enumText(d, ev, ir.ParseArrowDirection)
		case "arrow-style":
			ar.Style, err = enumText(d, ev, ir.ParseArrowStyle)
		case "arrowhead":
			ar.Arrowhead, err = d.presence(ev)
		case "circular-arrow":
			ar.Circular, err = enumText(d, ev, ir.ParseCircularArrow)
		default:
			err = d.skip("arrow", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if ar.Direction == 0 && ar.Circular == 0 {
		return nil, ferrors.NewMissingElement("arrow-direction", "arrow", start.Pos)
	}
	return ar, nil
}

func (d *decoder) harmonMute(start xml.Event) (*ir.HarmonMute, error) {
	a := attrsOf(start)
	hm := &ir.HarmonMute{PrintStyle: a.printStyle(), Placement: a.placement()}
	if err := a.Err(); err != nil {
		return nil, err
	}
	sawClosed := false
	err := d.children(start, func(ev xml.Event) error {
		if ev.Name != "harmon-closed" {
			return d.skip("harmon-mute", ev)
		}
		var err error
		hm.Closed, err = d.holeClosed(ev)
		sawClosed = true
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawClosed {
		return nil, missing("harmon-closed", "harmon-mute", start)
	}
	return hm, nil
}
