package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

func (e *encoder) note(n *ir.Note) {
	a := printStyle(nil, n.PrintStyle).
		Str("print-object", n.PrintObject.String()).
		Str("print-dot", n.PrintDot.String()).
		Str("print-spacing", n.PrintSpacing.String()).
		Str("print-lyric", n.PrintLyric.String()).
		Float("dynamics", n.Dynamics).
		Float("end-dynamics", n.EndDynamics).
		Float("attack", n.Attack).
		Float("release", n.Release).
		Str("pizzicato", n.Pizzicato.String()).
		Str("id", n.ID)
	e.w.Start("note", a)

	switch c := n.Content.(type) {
	case *ir.GraceNote:
		g := c.Grace
		e.w.Empty("grace", xml.Attrs{}.
			Float("steal-time-previous", g.StealTimePrevious).
			Float("steal-time-following", g.StealTimeFollowing).
			Float("make-time", g.MakeTime).
			Str("slash", g.Slash.String()))
		e.flag("cue", c.Cue)
		e.fullNote(c.Full)
		e.ties(c.Ties)
	case *ir.CueNote:
		e.w.Empty("cue", nil)
		e.fullNote(c.Full)
		e.float("duration", c.Duration)
	case *ir.RegularNote:
		e.fullNote(c.Full)
		e.float("duration", c.Duration)
		e.ties(c.Ties)
	default:
		e.fail("note")
	}

	for _, id := range n.Instruments {
		e.w.Empty("instrument", xml.Attrs{}.Req("id", id))
	}
	e.optText("voice", n.Voice)
	if t := n.Type; t != nil {
		e.text("type", t.Value.String(), xml.Attrs{}.Str("size", t.Size.String()))
	}
	for _, d := range n.Dots {
		e.w.Empty("dot", emptyPlacement(nil, d))
	}
	if acc := n.Accidental; acc != nil {
		e.accidental(acc)
	}
	if tm := n.TimeModification; tm != nil {
		e.w.Start("time-modification", nil)
		e.int("actual-notes", tm.ActualNotes)
		e.int("normal-notes", tm.NormalNotes)
		if tm.NormalType != 0 {
			e.text("normal-type", tm.NormalType.String(), nil)
		}
		for i := 0; i < tm.NormalDots; i++ {
			e.w.Empty("normal-dot", nil)
		}
		e.w.End("time-modification")
	}
	if s := n.Stem; s != nil {
		e.text("stem", s.Value.String(), position(nil, s.Position).Str("color", s.Color))
	}
	if nh := n.Notehead; nh != nil {
		a := xml.Attrs{}.
			Str("filled", nh.Filled.String()).
			Str("parentheses", nh.Parentheses.String())
		a = font(a, nh.Font).Str("color", nh.Color).Str("smufl", nh.Smufl)
		e.text("notehead", nh.Value.String(), a)
	}
	e.optUint8("staff", n.Staff)
	for _, b := range n.Beams {
		e.beam(b)
	}
	for _, nt := range n.Notations {
		e.notations(nt)
	}
	for _, l := range n.Lyrics {
		e.lyric(l)
	}
	e.w.End("note")
}

func (e *encoder) fullNote(f ir.FullNote) {
	e.flag("chord", f.Chord)
	switch c := f.Content.(type) {
	case *ir.Pitch:
		e.w.Start("pitch", nil)
		e.text("step", c.Step.String(), nil)
		e.optFloat("alter", c.Alter)
		e.int("octave", int(c.Octave))
		e.w.End("pitch")
	case *ir.Unpitched:
		e.displayPosition("unpitched", nil, c.DisplayStep, c.DisplayOctave)
	case *ir.Rest:
		e.displayPosition("rest", xml.Attrs{}.Str("measure", c.Measure.String()), c.DisplayStep, c.DisplayOctave)
	default:
		e.fail("full-note")
	}
}

func (e *encoder) displayPosition(name string, a xml.Attrs, step ir.Step, octave *uint8) {
	if step == 0 && octave == nil {
		e.w.Empty(name, a)
		return
	}
	e.w.Start(name, a)
	if step != 0 {
		e.text("display-step", step.String(), nil)
	}
	e.optUint8("display-octave", octave)
	e.w.End(name)
}

func (e *encoder) ties(ties []ir.Tie) {
	for _, t := range ties {
		e.w.Empty("tie", xml.Attrs{}.Req("type", t.Type.String()).Str("time-only", t.TimeOnly))
	}
}

func (e *encoder) accidental(acc *ir.Accidental) {
	a := xml.Attrs{}.
		Str("cautionary", acc.Cautionary.String()).
		Str("editorial", acc.Editorial.String()).
		Str("parentheses", acc.Parentheses.String()).
		Str("bracket", acc.Bracket.String()).
		Str("size", acc.Size.String()).
		Str("smufl", acc.Smufl)
	e.text("accidental", acc.Value.String(), printStyle(a, acc.PrintStyle))
}

// beam always writes number, including the default 1.
func (e *encoder) beam(b ir.Beam) {
	number := b.Number
	if number == 0 {
		number = 1
	}
	a := xml.Attrs{}.
		Uint8("number", &number).
		Str("repeater", b.Repeater.String()).
		Str("fan", b.Fan.String()).
		Str("color", b.Color).
		Str("id", b.ID)
	e.text("beam", b.Value.String(), a)
}

func (e *encoder) lyric(l *ir.Lyric) {
	a := xml.Attrs{}.
		Str("number", l.Number).
		Str("name", l.Name).
		Str("justify", l.Justify.String())
	a = position(a, l.Position).
		Str("placement", l.Placement.String()).
		Str("color", l.Color).
		Str("print-object", l.PrintObject.String()).
		Str("time-only", l.TimeOnly).
		Str("id", l.ID)
	e.w.Start("lyric", a)
	switch c := l.Content.(type) {
	case *ir.SyllabicText:
		if c.Syllabic != 0 {
			e.text("syllabic", c.Syllabic.String(), nil)
		}
		e.lyricText(c.Text)
		for _, ext := range c.Extensions {
			el := ext.Elision
			e.text("elision", el.Value, font(nil, el.Font).Str("color", el.Color).Str("smufl", el.Smufl))
			if ext.Syllabic != 0 {
				e.text("syllabic", ext.Syllabic.String(), nil)
			}
			e.lyricText(ext.Text)
		}
		if c.Extend != nil {
			e.extend(*c.Extend)
		}
	case *ir.ExtendOnly:
		e.extend(c.Extend)
	case *ir.Laughing:
		e.w.Empty("laughing", nil)
	case *ir.Humming:
		e.w.Empty("humming", nil)
	default:
		e.fail("lyric")
	}
	e.flag("end-line", l.EndLine)
	e.flag("end-paragraph", l.EndParagraph)
	e.w.End("lyric")
}

func (e *encoder) lyricText(t ir.LyricText) {
	e.text("text", t.Value, font(nil, t.Font).Str("color", t.Color).Str("xml:lang", t.Lang))
}

func (e *encoder) extend(x ir.Extend) {
	e.w.Empty("extend", printStyle(xml.Attrs{}.Str("type", x.Type.String()), x.PrintStyle))
}
