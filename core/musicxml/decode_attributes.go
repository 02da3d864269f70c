package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) attributes(start xml.Event) (*ir.Attributes, error) {
	at := &ir.Attributes{}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "divisions":
			at.Divisions, err = d.optFloatText(ev)
		case "key":
			var k *ir.Key
			if k, err = d.key(ev); err == nil {
				at.Keys = append(at.Keys, k)
			}
		case "time":
			var t *ir.Time
			if t, err = d.time(ev); err == nil {
				at.Times = append(at.Times, t)
			}
		case "staves":
			at.Staves, err = d.optUint8Text(ev)
		case "part-symbol":
			at.PartSymbol, err = d.partSymbol(ev)
		case "instruments":
			at.Instruments, err = d.optIntText(ev)
		case "clef":
			var c *ir.Clef
			if c, err = d.clef(ev); err == nil {
				at.Clefs = append(at.Clefs, c)
			}
		case "transpose":
			var t *ir.Transpose
			if t, err = d.transpose(ev); err == nil {
				at.Transposes = append(at.Transposes, t)
			}
		case "measure-style":
			var ms *ir.MeasureStyle
			if ms, err = d.measureStyle(ev); err == nil && ms != nil {
				at.MeasureStyles = append(at.MeasureStyles, ms)
			}
		default:
			err = d.skip("attributes", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return at, nil
}

func keyAttrs(ev xml.Event) (*ir.Key, error) {
	a := attrsOf(ev)
	k := &ir.Key{
		Number:      a.small("number"),
		PrintStyle:  a.printStyle(),
		PrintObject: a.yesNo("print-object"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return k, nil
}

func (d *decoder) key(ev xml.Event) (*ir.Key, error) {
	if ev.Kind == xml.EventEmpty {
		return keyFromEmpty(ev)
	}
	return d.keyFromStart(ev)
}

// keyFromEmpty handles <key/>. The schema requires fifths, so an empty key
// falls back to the key of no sharps or flats with the mode left absent.
func keyFromEmpty(ev xml.Event) (*ir.Key, error) {
	k, err := keyAttrs(ev)
	if err != nil {
		return nil, err
	}
	k.Content = &ir.TraditionalKey{}
	return k, nil
}

func (d *decoder) keyFromStart(start xml.Event) (*ir.Key, error) {
	k, err := keyAttrs(start)
	if err != nil {
		return nil, err
	}
	trad := &ir.TraditionalKey{}
	var steps []ir.KeyStep
	err = d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "cancel":
			c := &ir.Cancel{}
			if c.Location, err = xml.EnumAttr(ev, "location", ir.ParseCancelLocation); err != nil {
				return err
			}
			if c.Fifths, err = d.int8Text(ev); err == nil {
				trad.Cancel = c
			}
		case "fifths":
			trad.Fifths, err = d.int8Text(ev)
		case "mode":
			trad.Mode, err = enumText(d, ev, ir.ParseMode)
		case "key-step":
			var s ir.Step
			if s, err = enumText(d, ev, ir.ParseStep); err == nil {
				steps = append(steps, ir.KeyStep{Step: s})
			}
		case "key-alter":
			if len(steps) == 0 {
				return missing("key-step", "key", ev)
			}
			steps[len(steps)-1].Alter, err = d.floatText(ev)
		case "key-accidental":
			if len(steps) == 0 {
				return missing("key-step", "key", ev)
			}
			ka := &ir.KeyAccidental{Smufl: ev.Attr("smufl")}
			if ka.Value, err = enumText(d, ev, ir.ParseAccidentalValue); err == nil {
				steps[len(steps)-1].Accidental = ka
			}
		case "key-octave":
			a := attrsOf(ev)
			ko := ir.KeyOctave{Number: requiredEnum(a, "number", xml.ParseInt), Cancel: a.yesNo("cancel")}
			if err = a.Err(); err != nil {
				return err
			}
			if ko.Octave, err = d.uint8Text(ev); err == nil {
				k.Octaves = append(k.Octaves, ko)
			}
		default:
			err = d.skip("key", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(steps) > 0 {
		k.Content = &ir.NonTraditionalKey{Steps: steps}
	} else {
		k.Content = trad
	}
	return k, nil
}

func (d *decoder) time(start xml.Event) (*ir.Time, error) {
	a := attrsOf(start)
	t := &ir.Time{
		Number:      a.small("number"),
		Symbol:      enum(a, "symbol", ir.ParseTimeSymbol),
		Separator:   enum(a, "separator", ir.ParseTimeSeparator),
		PrintStyle:  a.printStyle(),
		Halign:      a.halign(),
		Valign:      a.valign(),
		PrintObject: a.yesNo("print-object"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	var measured *ir.MeasuredTime
	var senza *ir.SenzaMisura
	pendingBeats := false
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "beats":
			s, err := d.trimmedText(ev)
			if err != nil {
				return err
			}
			if pendingBeats {
				return missing("beat-type", "time", ev)
			}
			if measured == nil {
				measured = &ir.MeasuredTime{}
			}
			measured.Signatures = append(measured.Signatures, ir.TimeSignature{Beats: s})
			pendingBeats = true
			return nil
		case "beat-type":
			s, err := d.trimmedText(ev)
			if err != nil {
				return err
			}
			if !pendingBeats {
				return missing("beats", "time", ev)
			}
			measured.Signatures[len(measured.Signatures)-1].BeatType = s
			pendingBeats = false
			return nil
		case "senza-misura":
			s, err := d.text(ev)
			senza = &ir.SenzaMisura{Value: s}
			return err
		}
		return d.skip("time", ev)
	})
	if err != nil {
		return nil, err
	}
	switch {
	case pendingBeats:
		return nil, missing("beat-type", "time", start)
	case measured != nil:
		t.Content = measured
	case senza != nil:
		t.Content = senza
	default:
		return nil, missing("beats", "time", start)
	}
	return t, nil
}

func (d *decoder) partSymbol(ev xml.Event) (*ir.PartSymbol, error) {
	a := attrsOf(ev)
	ps := &ir.PartSymbol{
		TopStaff:    a.small("top-staff"),
		BottomStaff: a.small("bottom-staff"),
		Position:    a.position(),
		Color:       a.str("color"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	v, err := enumText(d, ev, ir.ParseGroupSymbolValue)
	if err != nil {
		return nil, err
	}
	ps.Value = v
	return ps, nil
}

func (d *decoder) clef(start xml.Event) (*ir.Clef, error) {
	a := attrsOf(start)
	c := &ir.Clef{
		Number:       a.small("number"),
		Additional:   a.yesNo("additional"),
		Size:         enum(a, "size", ir.ParseSymbolSize),
		AfterBarline: a.yesNo("after-barline"),
		PrintStyle:   a.printStyle(),
		PrintObject:  a.yesNo("print-object"),
		ID:           a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "sign":
			c.Sign, err = enumText(d, ev, ir.ParseClefSign)
		case "line":
			c.Line, err = d.optIntText(ev)
		case "clef-octave-change":
			c.OctaveChange, err = d.optIntText(ev)
		default:
			err = d.skip("clef", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if c.Sign == 0 {
		return nil, missing("sign", "clef", start)
	}
	return c, nil
}

func (d *decoder) transpose(start xml.Event) (*ir.Transpose, error) {
	a := attrsOf(start)
	t := &ir.Transpose{Number: a.small("number"), ID: a.str("id")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	var chromatic *float64
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "diatonic":
			t.Diatonic, err = d.optIntText(ev)
		case "chromatic":
			chromatic, err = d.optFloatText(ev)
		case "octave-change":
			t.OctaveChange, err = d.optIntText(ev)
		case "double":
			var above ir.YesNo
			if above, err = xml.EnumAttr(ev, "above", ir.ParseYesNo); err == nil {
				t.Double = &ir.Double{Above: above}
				err = d.ignore(ev)
			}
		default:
			err = d.skip("transpose", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if chromatic == nil {
		return nil, missing("chromatic", "transpose", start)
	}
	t.Chromatic = *chromatic
	return t, nil
}

// measureStyle returns nil when the style is one the IR does not represent
// (beat-repeat, slash).
func (d *decoder) measureStyle(start xml.Event) (*ir.MeasureStyle, error) {
	a := attrsOf(start)
	ms := &ir.MeasureStyle{Number: a.small("number"), Font: a.font(), Color: a.str("color"), ID: a.str("id")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "multiple-rest":
			use, err := xml.EnumAttr(ev, "use-symbols", ir.ParseYesNo)
			if err != nil {
				return err
			}
			n, err := d.intText(ev)
			ms.Content = &ir.MultipleRest{Value: n, UseSymbols: use}
			return err
		case "measure-repeat":
			ra := attrsOf(ev)
			mr := &ir.MeasureRepeat{Type: requiredEnum(ra, "type", ir.ParseStartStop), Slashes: ra.integer("slashes")}
			if err := ra.Err(); err != nil {
				return err
			}
			s, err := d.trimmedText(ev)
			mr.Value = s
			ms.Content = mr
			return err
		}
		return d.skip("measure-style", ev)
	})
	if err != nil {
		return nil, err
	}
	if ms.Content == nil {
		return nil, nil
	}
	return ms, nil
}
