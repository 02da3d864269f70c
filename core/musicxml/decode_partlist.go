package musicxml

import (
	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (d *decoder) partListElement(start xml.Event) (ir.PartList, error) {
	var pl ir.PartList
	err := d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "score-part":
			sp, err := d.scorePart(ev)
			if err != nil {
				return err
			}
			pl.Items = append(pl.Items, sp)
			return nil
		case "part-group":
			pg, err := d.partGroup(ev)
			if err != nil {
				return err
			}
			pl.Items = append(pl.Items, pg)
			return nil
		}
		return d.skip("part-list", ev)
	})
	return pl, err
}

func (d *decoder) partGroup(start xml.Event) (*ir.PartGroup, error) {
	a := attrsOf(start)
	pg := &ir.PartGroup{
		Type:   requiredEnum(a, "type", ir.ParseStartStop),
		Number: a.str("number"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "group-name":
			pg.GroupName, err = d.text(ev)
		case "group-abbreviation":
			pg.GroupAbbreviation, err = d.text(ev)
		case "group-symbol":
			ga := attrsOf(ev)
			gs := &ir.GroupSymbol{Position: ga.position(), Color: ga.str("color")}
			if err = ga.Err(); err != nil {
				return err
			}
			if gs.Value, err = enumText(d, ev, ir.ParseGroupSymbolValue); err == nil {
				pg.GroupSymbol = gs
			}
		case "group-barline":
			gb := &ir.GroupBarline{Color: ev.Attr("color")}
			if gb.Value, err = enumText(d, ev, ir.ParseGroupBarlineValue); err == nil {
				pg.GroupBarline = gb
			}
		case "group-time":
			pg.GroupTime, err = d.presence(ev)
		default:
			err = d.skip("part-group", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func (d *decoder) scorePart(start xml.Event) (*ir.ScorePart, error) {
	id, err := start.RequiredAttr("id")
	if err != nil {
		return nil, err
	}
	sp := &ir.ScorePart{ID: id}
	sawName := false

	err = d.children(start, func(ev xml.Event) error {
		switch ev.Name {
		case "part-name":
			pn, err := d.partName(ev)
			sp.PartName = pn
			sawName = true
			return err
		case "part-abbreviation":
			pn, err := d.partName(ev)
			sp.PartAbbreviation = &pn
			return err
		case "group":
			s, err := d.text(ev)
			sp.Groups = append(sp.Groups, s)
			return err
		case "score-instrument":
			si, err := d.scoreInstrument(ev)
			if err != nil {
				return err
			}
			sp.ScoreInstruments = append(sp.ScoreInstruments, si)
			return nil
		case "midi-device":
			a := attrsOf(ev)
			md := ir.MidiDevice{ID: a.str("id"), Port: a.integer("port")}
			if err := a.Err(); err != nil {
				return err
			}
			s, err := d.text(ev)
			md.Value = s
			sp.MidiDevices = append(sp.MidiDevices, md)
			return err
		case "midi-instrument":
			mi, err := d.midiInstrument(ev)
			if err != nil {
				return err
			}
			sp.MidiInstruments = append(sp.MidiInstruments, mi)
			return nil
		}
		return d.skip("score-part", ev)
	})
	if err != nil {
		return nil, err
	}
	if !sawName {
		return nil, ferrors.NewMissingElement("part-name", "score-part", start.Pos)
	}
	return sp, nil
}

func (d *decoder) partName(ev xml.Event) (ir.PartName, error) {
	a := attrsOf(ev)
	pn := ir.PartName{
		PrintStyle:  a.printStyle(),
		PrintObject: a.yesNo("print-object"),
		Justify:     a.justify(),
	}
	if err := a.Err(); err != nil {
		return pn, err
	}
	s, err := d.text(ev)
	pn.Value = s
	return pn, err
}

func (d *decoder) scoreInstrument(start xml.Event) (*ir.ScoreInstrument, error) {
	id, err := start.RequiredAttr("id")
	if err != nil {
		return nil, err
	}
	si := &ir.ScoreInstrument{ID: id}
	sawName := false
	err = d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "instrument-name":
			si.InstrumentName, err = d.text(ev)
			sawName = true
		case "instrument-abbreviation":
			si.InstrumentAbbreviation, err = d.text(ev)
		case "instrument-sound":
			si.InstrumentSound, err = d.trimmedText(ev)
		case "solo":
			si.Solo, err = d.presence(ev)
		case "ensemble":
			var s string
			if s, err = d.trimmedText(ev); err == nil {
				si.Ensemble = &s
			}
		case "virtual-instrument":
			vi := &ir.VirtualInstrument{}
			err = d.children(ev, func(c xml.Event) error {
				var err error
				switch c.Name {
				case "virtual-library":
					vi.Library, err = d.text(c)
				case "virtual-name":
					vi.Name, err = d.text(c)
				default:
					err = d.skip("virtual-instrument", c)
				}
				return err
			})
			si.VirtualInstrument = vi
		default:
			err = d.skip("score-instrument", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawName {
		return nil, missing("instrument-name", "score-instrument", start)
	}
	return si, nil
}

func (d *decoder) midiInstrument(start xml.Event) (*ir.MidiInstrument, error) {
	id, err := start.RequiredAttr("id")
	if err != nil {
		return nil, err
	}
	mi := &ir.MidiInstrument{ID: id}
	err = d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "midi-channel":
			mi.MidiChannel, err = d.optIntText(ev)
		case "midi-name":
			mi.MidiName, err = d.text(ev)
		case "midi-bank":
			mi.MidiBank, err = d.optIntText(ev)
		case "midi-program":
			mi.MidiProgram, err = d.optIntText(ev)
		case "midi-unpitched":
			mi.MidiUnpitched, err = d.optIntText(ev)
		case "volume":
			mi.Volume, err = d.optFloatText(ev)
		case "pan":
			mi.Pan, err = d.optFloatText(ev)
		case "elevation":
			mi.Elevation, err = d.optFloatText(ev)
		default:
			err = d.skip("midi-instrument", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return mi, nil
}
