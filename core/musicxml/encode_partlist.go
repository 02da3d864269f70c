package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) partList(pl ir.PartList) {
	e.w.Start("part-list", nil)
	for _, item := range pl.Items {
		switch it := item.(type) {
		case *ir.ScorePart:
			e.scorePart(it)
		case *ir.PartGroup:
			e.partGroup(it)
		default:
			e.fail("part-list")
		}
	}
	e.w.End("part-list")
}

func (e *encoder) partGroup(pg *ir.PartGroup) {
	a := xml.Attrs{}.Req("type", pg.Type.String()).Str("number", pg.Number)
	if pg.GroupName == "" && pg.GroupAbbreviation == "" && pg.GroupSymbol == nil &&
		pg.GroupBarline == nil && !pg.GroupTime {
		e.w.Empty("part-group", a)
		return
	}
	e.w.Start("part-group", a)
	e.optText("group-name", pg.GroupName)
	e.optText("group-abbreviation", pg.GroupAbbreviation)
	if gs := pg.GroupSymbol; gs != nil {
		e.text("group-symbol", gs.Value.String(), position(nil, gs.Position).Str("color", gs.Color))
	}
	if gb := pg.GroupBarline; gb != nil {
		e.text("group-barline", gb.Value.String(), xml.Attrs{}.Str("color", gb.Color))
	}
	e.flag("group-time", pg.GroupTime)
	e.w.End("part-group")
}

func partNameAttrs(pn ir.PartName) xml.Attrs {
	return printStyle(nil, pn.PrintStyle).
		Str("print-object", pn.PrintObject.String()).
		Str("justify", pn.Justify.String())
}

func (e *encoder) scorePart(sp *ir.ScorePart) {
	e.w.Start("score-part", xml.Attrs{}.Req("id", sp.ID))
	e.text("part-name", sp.PartName.Value, partNameAttrs(sp.PartName))
	if pa := sp.PartAbbreviation; pa != nil {
		e.text("part-abbreviation", pa.Value, partNameAttrs(*pa))
	}
	for _, g := range sp.Groups {
		e.text("group", g, nil)
	}
	for _, si := range sp.ScoreInstruments {
		e.scoreInstrument(si)
	}
	for _, md := range sp.MidiDevices {
		a := xml.Attrs{}.Str("id", md.ID).Int("port", md.Port)
		e.textOrEmpty("midi-device", md.Value, a)
	}
	for _, mi := range sp.MidiInstruments {
		e.midiInstrument(mi)
	}
	e.w.End("score-part")
}

func (e *encoder) scoreInstrument(si *ir.ScoreInstrument) {
	e.w.Start("score-instrument", xml.Attrs{}.Req("id", si.ID))
	e.text("instrument-name", si.InstrumentName, nil)
	e.optText("instrument-abbreviation", si.InstrumentAbbreviation)
	e.optText("instrument-sound", si.InstrumentSound)
	switch {
	case si.Solo:
		e.w.Empty("solo", nil)
	case si.Ensemble != nil:
		e.textOrEmpty("ensemble", *si.Ensemble, nil)
	}
	if vi := si.VirtualInstrument; vi != nil {
		if vi.Library == "" && vi.Name == "" {
			e.w.Empty("virtual-instrument", nil)
		} else {
			e.w.Start("virtual-instrument", nil)
			e.optText("virtual-library", vi.Library)
			e.optText("virtual-name", vi.Name)
			e.w.End("virtual-instrument")
		}
	}
	e.w.End("score-instrument")
}

func (e *encoder) midiInstrument(mi *ir.MidiInstrument) {
	e.w.Start("midi-instrument", xml.Attrs{}.Req("id", mi.ID))
	e.optInt("midi-channel", mi.MidiChannel)
	e.optText("midi-name", mi.MidiName)
	e.optInt("midi-bank", mi.MidiBank)
	e.optInt("midi-program", mi.MidiProgram)
	e.optInt("midi-unpitched", mi.MidiUnpitched)
	e.optFloat("volume", mi.Volume)
	e.optFloat("pan", mi.Pan)
	e.optFloat("elevation", mi.Elevation)
	e.w.End("midi-instrument")
}
