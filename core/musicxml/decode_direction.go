package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// direction returns nil, without error, when every direction-type it holds
// was skipped. A direction dropped that way while carrying offset, voice,
// staff or sound is itself reported to the skip handler under measure, as
// its remaining content can not be written back without a direction-type.
func (d *decoder) direction(start xml.Event) (*ir.Direction, error) {
	a := attrsOf(start)
	dir := &ir.Direction{
		Placement: a.placement(),
		Directive: a.yesNo("directive"),
		ID:        a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	sawType := false
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "direction-type":
			sawType = true
			var dt *ir.DirectionType
			if dt, err = d.directionType(ev); err == nil && dt != nil {
				dir.Types = append(dir.Types, dt)
			}
		case "offset":
			oa := attrsOf(ev)
			off := &ir.Offset{Sound: oa.yesNo("sound")}
			if err = oa.Err(); err != nil {
				return err
			}
			if off.Value, err = d.floatText(ev); err == nil {
				dir.Offset = off
			}
		case "voice":
			dir.Voice, err = d.trimmedText(ev)
		case "staff":
			dir.Staff, err = d.optUint8Text(ev)
		case "sound":
			dir.Sound, err = d.sound(ev)
		default:
			err = d.skip("direction", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawType {
		return nil, missing("direction-type", "direction", start)
	}
	if len(dir.Types) == 0 {
		// Every direction-type was unsupported.
		if dir.Offset != nil || dir.Voice != "" || dir.Staff != nil || dir.Sound != nil {
			d.report("measure", start)
		}
		return nil, nil
	}
	return dir, nil
}

// directionType returns nil when every child was unsupported, so a
// direction-type holding only, say, harp-pedals is dropped whole.
func (d *decoder) directionType(start xml.Event) (*ir.DirectionType, error) {
	dt := &ir.DirectionType{ID: start.Attr("id")}
	err := d.children(start, func(ev xml.Event) error {
		el, err := d.directionTypeElement(ev)
		if err != nil || el == nil {
			return err
		}
		dt.Elements = append(dt.Elements, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(dt.Elements) == 0 {
		return nil, nil
	}
	return dt, nil
}

func (d *decoder) directionTypeElement(ev xml.Event) (ir.DirectionTypeElement, error) {
	if kind, err := ir.ParseDirectionMarkKind(ev.Name); err == nil {
		a := attrsOf(ev)
		m := &ir.DirectionMark{Kind: kind, PrintStyle: a.printStyle(), Halign: a.halign(), Valign: a.valign(), ID: a.str("id")}
		return finishEmpty(d, ev, a, m)
	}
	switch ev.Name {
	case "rehearsal", "words", "symbol":
		a := attrsOf(ev)
		ft := a.formattedText("")
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		if err != nil {
			return nil, err
		}
		ft.Value = s
		switch ev.Name {
		case "rehearsal":
			return &ir.Rehearsal{FormattedText: ft}, nil
		case "words":
			return &ir.Words{FormattedText: ft}, nil
		}
		return &ir.Symbol{FormattedText: ft}, nil
	case "segno":
		a := attrsOf(ev)
		s := &ir.Segno{PrintStyle: a.printStyle(), Halign: a.halign(), Valign: a.valign(), Smufl: a.str("smufl"), ID: a.str("id")}
		return finishEmpty(d, ev, a, s)
	case "coda":
		a := attrsOf(ev)
		c := &ir.Coda{PrintStyle: a.printStyle(), Halign: a.halign(), Valign: a.valign(), Smufl: a.str("smufl"), ID: a.str("id")}
		return finishEmpty(d, ev, a, c)
	case "wedge":
		a := attrsOf(ev)
		w := &ir.Wedge{
			Type:     requiredEnum(a, "type", ir.ParseWedgeType),
			Number:   a.small("number"),
			Spread:   a.float("spread"),
			Niente:   a.yesNo("niente"),
			LineType: a.lineType(),
			Position: a.position(),
			Color:    a.str("color"),
			ID:       a.str("id"),
		}
		return finishEmpty(d, ev, a, w)
	case "dynamics":
		return d.dynamics(ev)
	case "dashes":
		a := attrsOf(ev)
		ds := &ir.Dashes{
			Type:     requiredEnum(a, "type", ir.ParseStartStopContinue),
			Number:   a.small("number"),
			Position: a.position(),
			Color:    a.str("color"),
			ID:       a.str("id"),
		}
		return finishEmpty(d, ev, a, ds)
	case "bracket":
		a := attrsOf(ev)
		b := &ir.Bracket{
			Type:      requiredEnum(a, "type", ir.ParseStartStopContinue),
			Number:    a.small("number"),
			LineEnd:   requiredEnum(a, "line-end", ir.ParseLineEnd),
			EndLength: a.float("end-length"),
			LineType:  a.lineType(),
			Position:  a.position(),
			Color:     a.str("color"),
			ID:        a.str("id"),
		}
		return finishEmpty(d, ev, a, b)
	case "pedal":
		a := attrsOf(ev)
		p := &ir.Pedal{
			Type:        requiredEnum(a, "type", ir.ParsePedalType),
			Number:      a.small("number"),
			Line:        a.yesNo("line"),
			Sign:        a.yesNo("sign"),
			Abbreviated: a.yesNo("abbreviated"),
			PrintStyle:  a.printStyle(),
			Halign:      a.halign(),
			Valign:      a.valign(),
			ID:          a.str("id"),
		}
		return finishEmpty(d, ev, a, p)
	case "metronome":
		return d.metronome(ev)
	case "octave-shift":
		a := attrsOf(ev)
		o := &ir.OctaveShift{
			Type:        requiredEnum(a, "type", ir.ParseOctaveShiftType),
			Number:      a.small("number"),
			Size:        a.integer("size"),
			DashLength:  a.float("dash-length"),
			SpaceLength: a.float("space-length"),
			PrintStyle:  a.printStyle(),
			ID:          a.str("id"),
		}
		return finishEmpty(d, ev, a, o)
	case "string-mute":
		a := attrsOf(ev)
		s := &ir.StringMute{
			Type:       requiredEnum(a, "type", ir.ParseOnOff),
			PrintStyle: a.printStyle(),
			Halign:     a.halign(),
			Valign:     a.valign(),
			ID:         a.str("id"),
		}
		return finishEmpty(d, ev, a, s)
	case "staff-divide":
		a := attrsOf(ev)
		s := &ir.StaffDivide{
			Type:       requiredEnum(a, "type", ir.ParseStaffDivideSymbol),
			PrintStyle: a.printStyle(),
			Halign:     a.halign(),
			Valign:     a.valign(),
			ID:         a.str("id"),
		}
		return finishEmpty(d, ev, a, s)
	case "other-direction":
		a := attrsOf(ev)
		o := &ir.OtherDirection{
			PrintObject: a.yesNo("print-object"),
			PrintStyle:  a.printStyle(),
			Halign:      a.halign(),
			Valign:      a.valign(),
			Smufl:       a.str("smufl"),
			ID:          a.str("id"),
		}
		if err := a.Err(); err != nil {
			return nil, err
		}
		s, err := d.text(ev)
		o.Value = s
		return o, err
	}
	return nil, d.skip("direction-type", ev)
}

// metronome supports the beat-unit forms. The metronome-note forms have no
// beat-unit child and fail as a missing element.
func (d *decoder) metronome(start xml.Event) (*ir.Metronome, error) {
	a := attrsOf(start)
	m := &ir.Metronome{
		Parentheses: a.yesNo("parentheses"),
		Justify:     a.justify(),
		PrintStyle:  a.printStyle(),
		Halign:      a.halign(),
		Valign:      a.valign(),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	units := 0
	var second *ir.BeatUnitRate
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "beat-unit":
			v, err := enumText(d, ev, ir.ParseNoteTypeValue)
			if err != nil {
				return err
			}
			units++
			if units == 1 {
				m.BeatUnit = v
			} else {
				second = &ir.BeatUnitRate{BeatUnit: v}
			}
			return nil
		case "beat-unit-dot":
			if units > 1 {
				second.BeatUnitDots++
			} else {
				m.BeatUnitDots++
			}
			return d.ignore(ev)
		case "per-minute":
			pa := attrsOf(ev)
			pm := &ir.PerMinute{Font: pa.font()}
			if err := pa.Err(); err != nil {
				return err
			}
			s, err := d.text(ev)
			pm.Value = s
			m.Rate = pm
			return err
		}
		return d.skip("metronome", ev)
	})
	if err != nil {
		return nil, err
	}
	if units == 0 {
		return nil, missing("beat-unit", "metronome", start)
	}
	if second != nil {
		m.Rate = second
	}
	if m.Rate == nil {
		return nil, missing("per-minute", "metronome", start)
	}
	return m, nil
}

func (d *decoder) sound(ev xml.Event) (*ir.Sound, error) {
	a := attrsOf(ev)
	s := &ir.Sound{
		Tempo:          a.float("tempo"),
		Dynamics:       a.float("dynamics"),
		Dacapo:         a.yesNo("dacapo"),
		Segno:          a.str("segno"),
		Dalsegno:       a.str("dalsegno"),
		Coda:           a.str("coda"),
		Tocoda:         a.str("tocoda"),
		Divisions:      a.float("divisions"),
		ForwardRepeat:  a.yesNo("forward-repeat"),
		Fine:           a.str("fine"),
		TimeOnly:       a.str("time-only"),
		Pizzicato:      a.yesNo("pizzicato"),
		Pan:            a.float("pan"),
		Elevation:      a.float("elevation"),
		DamperPedal:    a.str("damper-pedal"),
		SoftPedal:      a.str("soft-pedal"),
		SostenutoPedal: a.str("sostenuto-pedal"),
		ID:             a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	// Children of sound (instrument-change, midi-*, play, swing) are not kept.
	err := d.children(ev, func(c xml.Event) error {
		return d.skip("sound", c)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
