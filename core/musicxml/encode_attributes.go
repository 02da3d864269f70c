package musicxml

import (
	"strconv"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) attributes(at *ir.Attributes) {
	e.w.Start("attributes", nil)
	e.optFloat("divisions", at.Divisions)
	for _, k := range at.Keys {
		e.key(k)
	}
	for _, t := range at.Times {
		e.time(t)
	}
	e.optUint8("staves", at.Staves)
	if ps := at.PartSymbol; ps != nil {
		a := xml.Attrs{}.Uint8("top-staff", ps.TopStaff).Uint8("bottom-staff", ps.BottomStaff)
		e.text("part-symbol", ps.Value.String(), position(a, ps.Position).Str("color", ps.Color))
	}
	e.optInt("instruments", at.Instruments)
	for _, c := range at.Clefs {
		e.clef(c)
	}
	for _, t := range at.Transposes {
		e.transpose(t)
	}
	for _, ms := range at.MeasureStyles {
		e.measureStyle(ms)
	}
	e.w.End("attributes")
}

func (e *encoder) key(k *ir.Key) {
	a := xml.Attrs{}.Uint8("number", k.Number)
	a = printStyle(a, k.PrintStyle).Str("print-object", k.PrintObject.String()).Str("id", k.ID)
	e.w.Start("key", a)
	switch c := k.Content.(type) {
	case *ir.TraditionalKey:
		if cn := c.Cancel; cn != nil {
			e.text("cancel", strconv.Itoa(int(cn.Fifths)), xml.Attrs{}.Str("location", cn.Location.String()))
		}
		e.int("fifths", int(c.Fifths))
		if c.Mode != 0 {
			e.text("mode", c.Mode.String(), nil)
		}
	case *ir.NonTraditionalKey:
		for _, s := range c.Steps {
			e.text("key-step", s.Step.String(), nil)
			e.float("key-alter", s.Alter)
			if ka := s.Accidental; ka != nil {
				e.text("key-accidental", ka.Value.String(), xml.Attrs{}.Str("smufl", ka.Smufl))
			}
		}
	default:
		e.fail("key")
	}
	for _, ko := range k.Octaves {
		e.text("key-octave", strconv.Itoa(int(ko.Octave)), xml.Attrs{}.
			Req("number", strconv.Itoa(ko.Number)).
			Str("cancel", ko.Cancel.String()))
	}
	e.w.End("key")
}

func (e *encoder) time(t *ir.Time) {
	a := xml.Attrs{}.
		Uint8("number", t.Number).
		Str("symbol", t.Symbol.String()).
		Str("separator", t.Separator.String())
	a = printStyleAlign(a, t.PrintStyle, t.Halign, t.Valign).
		Str("print-object", t.PrintObject.String()).
		Str("id", t.ID)
	e.w.Start("time", a)
	switch c := t.Content.(type) {
	case *ir.MeasuredTime:
		for _, sig := range c.Signatures {
			e.text("beats", sig.Beats, nil)
			e.text("beat-type", sig.BeatType, nil)
		}
	case *ir.SenzaMisura:
		e.textOrEmpty("senza-misura", c.Value, nil)
	default:
		e.fail("time")
	}
	e.w.End("time")
}

func (e *encoder) clef(c *ir.Clef) {
	a := xml.Attrs{}.
		Uint8("number", c.Number).
		Str("additional", c.Additional.String()).
		Str("size", c.Size.String()).
		Str("after-barline", c.AfterBarline.String())
	a = printStyle(a, c.PrintStyle).Str("print-object", c.PrintObject.String()).Str("id", c.ID)
	e.w.Start("clef", a)
	e.text("sign", c.Sign.String(), nil)
	e.optInt("line", c.Line)
	e.optInt("clef-octave-change", c.OctaveChange)
	e.w.End("clef")
}

func (e *encoder) transpose(t *ir.Transpose) {
	e.w.Start("transpose", xml.Attrs{}.Uint8("number", t.Number).Str("id", t.ID))
	e.optInt("diatonic", t.Diatonic)
	e.float("chromatic", t.Chromatic)
	e.optInt("octave-change", t.OctaveChange)
	if t.Double != nil {
		e.w.Empty("double", xml.Attrs{}.Str("above", t.Double.Above.String()))
	}
	e.w.End("transpose")
}

func (e *encoder) measureStyle(ms *ir.MeasureStyle) {
	a := font(xml.Attrs{}.Uint8("number", ms.Number), ms.Font).Str("color", ms.Color).Str("id", ms.ID)
	e.w.Start("measure-style", a)
	switch c := ms.Content.(type) {
	case *ir.MultipleRest:
		e.text("multiple-rest", strconv.Itoa(c.Value), xml.Attrs{}.Str("use-symbols", c.UseSymbols.String()))
	case *ir.MeasureRepeat:
		ra := xml.Attrs{}.Req("type", c.Type.String()).Int("slashes", c.Slashes)
		e.textOrEmpty("measure-repeat", c.Value, ra)
	default:
		e.fail("measure-style")
	}
	e.w.End("measure-style")
}

func (e *encoder) barline(b *ir.Barline) {
	a := xml.Attrs{}.
		Str("location", b.Location.String()).
		Str("segno", b.Segno).
		Str("coda", b.Coda).
		Float("divisions", b.Divisions).
		Str("id", b.ID)
	if b.BarStyle == nil && b.WavyLine == nil && b.SegnoMark == nil && b.CodaMark == nil &&
		len(b.Fermatas) == 0 && b.Ending == nil && b.Repeat == nil {
		e.w.Empty("barline", a)
		return
	}
	e.w.Start("barline", a)
	if bs := b.BarStyle; bs != nil {
		e.text("bar-style", bs.Value.String(), xml.Attrs{}.Str("color", bs.Color))
	}
	if b.WavyLine != nil {
		e.wavyLine(b.WavyLine)
	}
	if s := b.SegnoMark; s != nil {
		e.w.Empty("segno", printStyleAlign(nil, s.PrintStyle, s.Halign, s.Valign).Str("smufl", s.Smufl).Str("id", s.ID))
	}
	if c := b.CodaMark; c != nil {
		e.w.Empty("coda", printStyleAlign(nil, c.PrintStyle, c.Halign, c.Valign).Str("smufl", c.Smufl).Str("id", c.ID))
	}
	for _, f := range b.Fermatas {
		e.fermata(f)
	}
	if en := b.Ending; en != nil {
		ea := xml.Attrs{}.
			Req("number", en.Number).
			Req("type", en.Type.String()).
			Str("print-object", en.PrintObject.String())
		ea = printStyle(ea, en.PrintStyle).
			Float("end-length", en.EndLength).
			Float("text-x", en.TextX).
			Float("text-y", en.TextY)
		e.textOrEmpty("ending", en.Text, ea)
	}
	if r := b.Repeat; r != nil {
		e.w.Empty("repeat", xml.Attrs{}.
			Req("direction", r.Direction.String()).
			Int("times", r.Times).
			Str("after-jump", r.AfterJump.String()).
			Str("winged", r.Winged.String()))
	}
	e.w.End("barline")
}
