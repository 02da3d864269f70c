package musicxml

import (
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// noteBuilder accumulates the children of a note until its end tag, when
// build picks the variant.
type noteBuilder struct {
	grace    *ir.Grace
	cue      bool
	chord    bool
	content  ir.FullNoteContent
	duration *float64
	ties     []ir.Tie
}

func (b *noteBuilder) build(start xml.Event) (ir.NoteContent, error) {
	if b.content == nil {
		return nil, missing("pitch", "note", start)
	}
	full := ir.FullNote{Chord: b.chord, Content: b.content}
	switch {
	case b.grace != nil:
		return &ir.GraceNote{Grace: *b.grace, Cue: b.cue, Full: full, Ties: b.ties}, nil
	case b.cue:
		if b.duration == nil {
			return nil, missing("duration", "note", start)
		}
		return &ir.CueNote{Full: full, Duration: *b.duration}, nil
	default:
		if b.duration == nil {
			return nil, missing("duration", "note", start)
		}
		return &ir.RegularNote{Full: full, Duration: *b.duration, Ties: b.ties}, nil
	}
}

func (d *decoder) note(start xml.Event) (*ir.Note, error) {
	a := attrsOf(start)
	n := &ir.Note{
		PrintStyle:   a.printStyle(),
		PrintObject:  a.yesNo("print-object"),
		PrintDot:     a.yesNo("print-dot"),
		PrintSpacing: a.yesNo("print-spacing"),
		PrintLyric:   a.yesNo("print-lyric"),
		Dynamics:     a.float("dynamics"),
		EndDynamics:  a.float("end-dynamics"),
		Attack:       a.float("attack"),
		Release:      a.float("release"),
		Pizzicato:    a.yesNo("pizzicato"),
		ID:           a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	var b noteBuilder
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "grace":
			b.grace, err = d.grace(ev)
		case "cue":
			b.cue, err = d.presence(ev)
		case "chord":
			b.chord, err = d.presence(ev)
		case "pitch":
			b.content, err = d.pitch(ev)
		case "unpitched":
			b.content, err = d.unpitched(ev)
		case "rest":
			b.content, err = d.rest(ev)
		case "duration":
			b.duration, err = d.optFloatText(ev)
		case "tie":
			ta := attrsOf(ev)
			tie := ir.Tie{Type: requiredEnum(ta, "type", ir.ParseStartStop), TimeOnly: ta.str("time-only")}
			if err = ta.Err(); err == nil {
				b.ties = append(b.ties, tie)
				err = d.ignore(ev)
			}
		case "instrument":
			var id string
			if id, err = ev.RequiredAttr("id"); err == nil {
				n.Instruments = append(n.Instruments, id)
				err = d.ignore(ev)
			}
		case "voice":
			n.Voice, err = d.trimmedText(ev)
		case "type":
			n.Type, err = d.noteType(ev)
		case "dot":
			da := attrsOf(ev)
			dot := da.emptyPlacement()
			if err = da.Err(); err == nil {
				n.Dots = append(n.Dots, dot)
				err = d.ignore(ev)
			}
		case "accidental":
			n.Accidental, err = d.accidental(ev)
		case "time-modification":
			n.TimeModification, err = d.timeModification(ev)
		case "stem":
			n.Stem, err = d.stem(ev)
		case "notehead":
			n.Notehead, err = d.notehead(ev)
		case "staff":
			n.Staff, err = d.optUint8Text(ev)
		case "beam":
			var bm ir.Beam
			if bm, err = d.beam(ev); err == nil {
				n.Beams = append(n.Beams, bm)
			}
		case "notations":
			var nt *ir.Notations
			if nt, err = d.notations(ev); err == nil {
				n.Notations = append(n.Notations, nt)
			}
		case "lyric":
			var l *ir.Lyric
			if l, err = d.lyric(ev); err == nil {
				n.Lyrics = append(n.Lyrics, l)
			}
		default:
			err = d.skip("note", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if n.Content, err = b.build(start); err != nil {
		return nil, err
	}
	return n, nil
}

func (d *decoder) grace(ev xml.Event) (*ir.Grace, error) {
	a := attrsOf(ev)
	g := &ir.Grace{
		StealTimePrevious:  a.float("steal-time-previous"),
		StealTimeFollowing: a.float("steal-time-following"),
		MakeTime:           a.float("make-time"),
		Slash:              a.yesNo("slash"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return g, d.ignore(ev)
}

func (d *decoder) pitch(start xml.Event) (*ir.Pitch, error) {
	p := &ir.Pitch{}
	var sawStep, sawOctave bool
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "step":
			p.Step, err = enumText(d, ev, ir.ParseStep)
			sawStep = true
		case "alter":
			p.Alter, err = d.optFloatText(ev)
		case "octave":
			p.Octave, err = d.uint8Text(ev)
			sawOctave = true
		default:
			err = d.skip("pitch", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawStep {
		return nil, missing("step", "pitch", start)
	}
	if !sawOctave {
		return nil, missing("octave", "pitch", start)
	}
	return p, nil
}

// displayPosition reads the display-step/display-octave pair shared by
// unpitched and rest.
func (d *decoder) displayPosition(start xml.Event, step *ir.Step, octave **uint8) error {
	return d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "display-step":
			*step, err = enumText(d, ev, ir.ParseStep)
		case "display-octave":
			*octave, err = d.optUint8Text(ev)
		default:
			err = d.skip(start.Name, ev)
		}
		return err
	})
}

func (d *decoder) unpitched(start xml.Event) (*ir.Unpitched, error) {
	u := &ir.Unpitched{}
	if err := d.displayPosition(start, &u.DisplayStep, &u.DisplayOctave); err != nil {
		return nil, err
	}
	return u, nil
}

func (d *decoder) rest(start xml.Event) (*ir.Rest, error) {
	measure, err := xml.EnumAttr(start, "measure", ir.ParseYesNo)
	if err != nil {
		return nil, err
	}
	r := &ir.Rest{Measure: measure}
	if err := d.displayPosition(start, &r.DisplayStep, &r.DisplayOctave); err != nil {
		return nil, err
	}
	return r, nil
}

func (d *decoder) noteType(ev xml.Event) (*ir.NoteType, error) {
	size, err := xml.EnumAttr(ev, "size", ir.ParseSymbolSize)
	if err != nil {
		return nil, err
	}
	v, err := enumText(d, ev, ir.ParseNoteTypeValue)
	if err != nil {
		return nil, err
	}
	return &ir.NoteType{Value: v, Size: size}, nil
}

func (d *decoder) accidental(ev xml.Event) (*ir.Accidental, error) {
	a := attrsOf(ev)
	acc := &ir.Accidental{
		Cautionary:  a.yesNo("cautionary"),
		Editorial:   a.yesNo("editorial"),
		Parentheses: a.yesNo("parentheses"),
		Bracket:     a.yesNo("bracket"),
		Size:        enum(a, "size", ir.ParseSymbolSize),
		Smufl:       a.str("smufl"),
		PrintStyle:  a.printStyle(),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	v, err := enumText(d, ev, ir.ParseAccidentalValue)
	if err != nil {
		return nil, err
	}
	acc.Value = v
	return acc, nil
}

func (d *decoder) timeModification(start xml.Event) (*ir.TimeModification, error) {
	tm := &ir.TimeModification{}
	var sawActual, sawNormal bool
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "actual-notes":
			tm.ActualNotes, err = d.intText(ev)
			sawActual = true
		case "normal-notes":
			tm.NormalNotes, err = d.intText(ev)
			sawNormal = true
		case "normal-type":
			tm.NormalType, err = enumText(d, ev, ir.ParseNoteTypeValue)
		case "normal-dot":
			tm.NormalDots++
			err = d.ignore(ev)
		default:
			err = d.skip("time-modification", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sawActual {
		return nil, missing("actual-notes", "time-modification", start)
	}
	if !sawNormal {
		return nil, missing("normal-notes", "time-modification", start)
	}
	return tm, nil
}

func (d *decoder) stem(ev xml.Event) (*ir.Stem, error) {
	a := attrsOf(ev)
	s := &ir.Stem{Position: a.position(), Color: a.str("color")}
	if err := a.Err(); err != nil {
		return nil, err
	}
	v, err := enumText(d, ev, ir.ParseStemValue)
	if err != nil {
		return nil, err
	}
	s.Value = v
	return s, nil
}

func (d *decoder) notehead(ev xml.Event) (*ir.Notehead, error) {
	a := attrsOf(ev)
	nh := &ir.Notehead{
		Filled:      a.yesNo("filled"),
		Parentheses: a.yesNo("parentheses"),
		Font:        a.font(),
		Color:       a.str("color"),
		Smufl:       a.str("smufl"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	v, err := enumText(d, ev, ir.ParseNoteheadValue)
	if err != nil {
		return nil, err
	}
	nh.Value = v
	return nh, nil
}

// beam applies the schema default of 1 for a missing number.
func (d *decoder) beam(ev xml.Event) (ir.Beam, error) {
	a := attrsOf(ev)
	b := ir.Beam{
		Number:   1,
		Repeater: a.yesNo("repeater"),
		Fan:      enum(a, "fan", ir.ParseFan),
		Color:    a.str("color"),
		ID:       a.str("id"),
	}
	if n := a.small("number"); n != nil {
		b.Number = *n
	}
	if err := a.Err(); err != nil {
		return b, err
	}
	v, err := enumText(d, ev, ir.ParseBeamValue)
	b.Value = v
	return b, err
}

// lyricBuilder tracks the syllable sequence of a lyric. A syllabic or
// elision seen before a text element applies to that text.
type lyricBuilder struct {
	syllabic    *ir.SyllabicText
	pendingSyl  ir.Syllabic
	pendingElis *ir.Elision
	extend      *ir.Extend
	other       ir.LyricContent
}

func (b *lyricBuilder) text(t ir.LyricText) {
	if b.syllabic == nil {
		b.syllabic = &ir.SyllabicText{Syllabic: b.pendingSyl, Text: t}
	} else {
		ext := ir.SyllabicExtension{Syllabic: b.pendingSyl, Text: t}
		if b.pendingElis != nil {
			ext.Elision = *b.pendingElis
		}
		b.syllabic.Extensions = append(b.syllabic.Extensions, ext)
	}
	b.pendingSyl = 0
	b.pendingElis = nil
}

func (b *lyricBuilder) build(start xml.Event) (ir.LyricContent, error) {
	switch {
	case b.syllabic != nil:
		b.syllabic.Extend = b.extend
		return b.syllabic, nil
	case b.extend != nil:
		return &ir.ExtendOnly{Extend: *b.extend}, nil
	case b.other != nil:
		return b.other, nil
	}
	return nil, missing("text", "lyric", start)
}

func (d *decoder) lyric(start xml.Event) (*ir.Lyric, error) {
	a := attrsOf(start)
	l := &ir.Lyric{
		Number:      a.str("number"),
		Name:        a.str("name"),
		Justify:     a.justify(),
		Position:    a.position(),
		Placement:   a.placement(),
		Color:       a.str("color"),
		PrintObject: a.yesNo("print-object"),
		TimeOnly:    a.str("time-only"),
		ID:          a.str("id"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	var b lyricBuilder
	err := d.children(start, func(ev xml.Event) error {
		var err error
		switch ev.Name {
		case "syllabic":
			b.pendingSyl, err = enumText(d, ev, ir.ParseSyllabic)
		case "text":
			var t ir.LyricText
			if t, err = d.lyricText(ev); err == nil {
				b.text(t)
			}
		case "elision":
			ea := attrsOf(ev)
			el := &ir.Elision{Font: ea.font(), Color: ea.str("color"), Smufl: ea.str("smufl")}
			if err = ea.Err(); err != nil {
				return err
			}
			if el.Value, err = d.text(ev); err == nil {
				b.pendingElis = el
			}
		case "extend":
			ea := attrsOf(ev)
			ext := &ir.Extend{Type: enum(ea, "type", ir.ParseStartStopContinue), PrintStyle: ea.printStyle()}
			if err = ea.Err(); err == nil {
				b.extend = ext
				err = d.ignore(ev)
			}
		case "laughing":
			b.other = &ir.Laughing{}
			err = d.ignore(ev)
		case "humming":
			b.other = &ir.Humming{}
			err = d.ignore(ev)
		case "end-line":
			l.EndLine, err = d.presence(ev)
		case "end-paragraph":
			l.EndParagraph, err = d.presence(ev)
		default:
			err = d.skip("lyric", ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if l.Content, err = b.build(start); err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decoder) lyricText(ev xml.Event) (ir.LyricText, error) {
	a := attrsOf(ev)
	t := ir.LyricText{Font: a.font(), Color: a.str("color"), Lang: a.str("xml:lang")}
	if err := a.Err(); err != nil {
		return t, err
	}
	s, err := d.text(ev)
	t.Value = s
	return t, err
}
