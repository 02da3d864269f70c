package musicxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
)

// wrap places measure content inside a minimal one-part score.
func wrap(measure string) string {
	return `<score-partwise version="4.0"><part-list><score-part id="P1"><part-name>Piano</part-name></score-part></part-list>` +
		`<part id="P1"><measure number="1">` + measure + `</measure></part></score-partwise>`
}

func firstContent(t *testing.T, doc string) ir.MusicData {
	t.Helper()
	score, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	content := score.Parts[0].Measures[0].Content
	if len(content) == 0 {
		t.Fatal("measure has no content")
	}
	return content[0]
}

func firstNote(t *testing.T, doc string) *ir.Note {
	t.Helper()
	n, ok := firstContent(t, doc).(*ir.Note)
	if !ok {
		t.Fatalf("first content is %T, want *ir.Note", firstContent(t, doc))
	}
	return n
}

func TestDecodeMinimalScore(t *testing.T) {
	doc := `<score-partwise version="4.0"><part-list><score-part id="P1"><part-name>Piano</part-name></score-part></part-list><part id="P1"><measure number="1"/></part></score-partwise>`
	score, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	if score.Version != "4.0" {
		t.Errorf("Version = %q, want %q", score.Version, "4.0")
	}
	if len(score.Parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(score.Parts))
	}
	p := score.Parts[0]
	if p.ID != "P1" || len(p.Measures) != 1 {
		t.Fatalf("part = %+v", p)
	}
	if m := p.Measures[0]; m.Number != "1" || len(m.Content) != 0 {
		t.Errorf("measure = %+v, want number 1 and no content", m)
	}
	sp, ok := score.PartList.Lookup("P1")
	if !ok || sp.PartName.Value != "Piano" {
		t.Errorf("Lookup(P1) = %+v, %v", sp, ok)
	}
}

func TestDecodeVersionDefault(t *testing.T) {
	doc := strings.Replace(wrap(""), ` version="4.0"`, "", 1)
	score, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	if score.Version != ir.DefaultVersion {
		t.Errorf("Version = %q, want %q", score.Version, ir.DefaultVersion)
	}
}

func TestDecodePitchAndAccidental(t *testing.T) {
	n := firstNote(t, wrap(`<note><pitch><step>F</step><alter>1</alter><octave>4</octave></pitch><duration>1</duration><accidental>sharp</accidental></note>`))
	p, ok := n.Full().Content.(*ir.Pitch)
	if !ok {
		t.Fatalf("content = %T, want *ir.Pitch", n.Full().Content)
	}
	if p.Step != ir.StepF || p.Octave != 4 || p.Alter == nil || *p.Alter != 1 {
		t.Errorf("pitch = %+v", p)
	}
	if n.Accidental == nil || n.Accidental.Value != ir.AccidentalSharp {
		t.Errorf("accidental = %+v, want sharp", n.Accidental)
	}
	rn, ok := n.Content.(*ir.RegularNote)
	if !ok || rn.Duration != 1 {
		t.Errorf("content = %+v, want regular note of duration 1", n.Content)
	}
}

func TestDecodeBarline(t *testing.T) {
	md := firstContent(t, wrap(`<barline location="right"><bar-style>light-heavy</bar-style><repeat direction="backward" times="2"/></barline>`))
	b, ok := md.(*ir.Barline)
	if !ok {
		t.Fatalf("content = %T, want *ir.Barline", md)
	}
	if b.Location != ir.LocationRight {
		t.Errorf("Location = %v, want right", b.Location)
	}
	if b.BarStyle == nil || b.BarStyle.Value != ir.BarStyleLightHeavy {
		t.Errorf("BarStyle = %+v, want light-heavy", b.BarStyle)
	}
	if b.Repeat == nil || b.Repeat.Direction != ir.RepeatBackward || b.Repeat.Times == nil || *b.Repeat.Times != 2 {
		t.Errorf("Repeat = %+v, want backward x2", b.Repeat)
	}
}

func TestDecodeFermataShape(t *testing.T) {
	tests := []struct {
		name  string
		xml   string
		shape ir.FermataShape
	}{
		{"self-closing", `<fermata type="upright"/>`, 0},
		{"empty pair", `<fermata type="upright"></fermata>`, 0},
		{"normal", `<fermata type="upright">normal</fermata>`, ir.FermataShapeNormal},
		{"angled", `<fermata>angled</fermata>`, ir.FermataShapeAngled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := firstNote(t, wrap(`<note><rest/><duration>4</duration><notations>`+tt.xml+`</notations></note>`))
			f := n.Notations[0].Fermatas[0]
			if f.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", f.Shape, tt.shape)
			}
		})
	}

	// The barline context follows the same rule.
	b := firstContent(t, wrap(`<barline><fermata type="inverted"/></barline>`)).(*ir.Barline)
	if got := b.Fermatas[0]; got.Shape != 0 || got.Type != ir.Inverted {
		t.Errorf("barline fermata = %+v, want inverted with no shape", got)
	}
}

func TestDecodeSkipsUnknownElements(t *testing.T) {
	doc := `<score-partwise>
  <future-header><deep><deeper/></deep></future-header>
  <part-list><score-part id="P1"><part-name>Flute</part-name><part-name-display><display-text>Fl.</display-text></part-name-display></score-part></part-list>
  <part id="P1">
    <measure number="1">
      <print new-system="yes"/>
      <harmony><root><root-step>C</root-step></root></harmony>
      <note><pitch><step>C</step><octave>5</octave><microtone/></pitch><duration>4</duration><play><mute>on</mute></play></note>
      <direction><direction-type><harp-pedals><pedal-tuning/></harp-pedals></direction-type></direction>
    </measure>
  </part>
</score-partwise>`
	type skip struct{ parent, element string }
	var skipped []skip
	score, err := ParseScore(doc, WithSkipHandler(func(parent, element string, _ ferrors.Position) {
		skipped = append(skipped, skip{parent, element})
	}))
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	content := score.Parts[0].Measures[0].Content
	if len(content) != 1 {
		t.Fatalf("got %d content items, want only the note", len(content))
	}
	if _, ok := content[0].(*ir.Note); !ok {
		t.Errorf("content[0] = %T, want *ir.Note", content[0])
	}

	want := []skip{
		{"score-partwise", "future-header"},
		{"score-part", "part-name-display"},
		{"measure", "print"},
		{"measure", "harmony"},
		{"pitch", "microtone"},
		{"note", "play"},
		{"direction-type", "harp-pedals"},
	}
	if len(skipped) != len(want) {
		t.Fatalf("skipped = %v, want %v", skipped, want)
	}
	for i := range want {
		if skipped[i] != want[i] {
			t.Errorf("skipped[%d] = %v, want %v", i, skipped[i], want[i])
		}
	}
}

func TestDecodeUndefinedPart(t *testing.T) {
	doc := `<score-partwise><part-list><score-part id="P1"><part-name>A</part-name></score-part></part-list>` +
		`<part id="P1"><measure number="1"/></part><part id="P2"><measure number="1"/></part></score-partwise>`
	_, err := ParseScore(doc)
	var ref *ferrors.UndefinedReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("error = %v, want UndefinedReferenceError", err)
	}
	if ref.ReferenceType != "part" || ref.ID != "P2" {
		t.Errorf("got %s %q, want part P2", ref.ReferenceType, ref.ID)
	}
	if !ref.Pos.IsValid() {
		t.Errorf("position %v is not set", ref.Pos)
	}
}

func TestDecodeMissingElements(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		element string
		parent  string
	}{
		{
			"part-name",
			`<score-partwise><part-list><score-part id="P1"/></part-list></score-partwise>`,
			"part-name", "score-part",
		},
		{"part-list", `<score-partwise></score-partwise>`, "part-list", "score-partwise"},
		{"pitch", wrap(`<note><duration>1</duration></note>`), "pitch", "note"},
		{"duration", wrap(`<note><rest/></note>`), "duration", "note"},
		{"hole-closed", wrap(`<note><rest/><duration>1</duration><notations><technical><hole><hole-type>1</hole-type></hole></technical></notations></note>`), "hole-closed", "hole"},
		{"step", wrap(`<note><pitch><octave>4</octave></pitch><duration>1</duration></note>`), "step", "pitch"},
		{"clef sign", wrap(`<attributes><clef><line>2</line></clef></attributes>`), "sign", "clef"},
		{"beat-type", wrap(`<attributes><time><beats>3</beats></time></attributes>`), "beat-type", "time"},
		{"chromatic", wrap(`<attributes><transpose><diatonic>-1</diatonic></transpose></attributes>`), "chromatic", "transpose"},
		{"direction-type", wrap(`<direction><staff>1</staff></direction>`), "direction-type", "direction"},
		{"beat-unit", wrap(`<direction><direction-type><metronome><per-minute>60</per-minute></metronome></direction-type></direction>`), "beat-unit", "metronome"},
		{"per-minute", wrap(`<direction><direction-type><metronome><beat-unit>quarter</beat-unit></metronome></direction-type></direction>`), "per-minute", "metronome"},
		{"key-step", wrap(`<attributes><key><key-alter>1</key-alter></key></attributes>`), "key-step", "key"},
		{"actual-notes", wrap(`<note><rest/><duration>1</duration><time-modification><normal-notes>2</normal-notes></time-modification></note>`), "actual-notes", "time-modification"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScore(tt.doc)
			var me *ferrors.MissingElementError
			if !errors.As(err, &me) {
				t.Fatalf("error = %v, want MissingElementError", err)
			}
			if me.Element != tt.element || me.Parent != tt.parent {
				t.Errorf("got %s in %s, want %s in %s", me.Element, me.Parent, tt.element, tt.parent)
			}
		})
	}
}

func TestDecodeMissingAttributes(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		attribute string
		element   string
	}{
		{
			"measure number",
			`<score-partwise><part-list><score-part id="P1"><part-name>A</part-name></score-part></part-list><part id="P1"><measure/></part></score-partwise>`,
			"number", "measure",
		},
		{"score-part id", `<score-partwise><part-list><score-part><part-name>A</part-name></score-part></part-list></score-partwise>`, "id", "score-part"},
		{"tie type", wrap(`<note><rest/><duration>1</duration><tie/></note>`), "type", "tie"},
		{"repeat direction", wrap(`<barline><repeat/></barline>`), "direction", "repeat"},
		{"ending number", wrap(`<barline><ending type="start"/></barline>`), "number", "ending"},
		{"wedge type", wrap(`<direction><direction-type><wedge/></direction-type></direction>`), "type", "wedge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScore(tt.doc)
			var ma *ferrors.MissingAttributeError
			if !errors.As(err, &ma) {
				t.Fatalf("error = %v, want MissingAttributeError", err)
			}
			if ma.Attribute != tt.attribute || ma.Element != tt.element {
				t.Errorf("got %s on %s, want %s on %s", ma.Attribute, ma.Element, tt.attribute, tt.element)
			}
		})
	}
}

func TestDecodeInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		value string
	}{
		{"step", wrap(`<note><pitch><step>H</step><octave>4</octave></pitch><duration>1</duration></note>`), "step", "H"},
		{"octave", wrap(`<note><pitch><step>C</step><octave>high</octave></pitch><duration>1</duration></note>`), "octave", "high"},
		{"bar-style", wrap(`<barline><bar-style>wiggly</bar-style></barline>`), "bar-style", "wiggly"},
		{"placement", wrap(`<direction placement="sideways"><direction-type><words>x</words></direction-type></direction>`), "placement", "sideways"},
		{"fermata", wrap(`<note><rest/><duration>1</duration><notations><fermata>round</fermata></notations></note>`), "fermata", "round"},
		{"tremolo", wrap(`<note><rest/><duration>1</duration><notations><ornaments><tremolo>9</tremolo></ornaments></notations></note>`), "tremolo", "9"},
		{"hole-closed", wrap(`<note><rest/><duration>1</duration><notations><technical><hole><hole-closed/></hole></technical></notations></note>`), "hole-closed", ""},
		{"beam", wrap(`<note><rest/><duration>1</duration><beam number="x">begin</beam></note>`), "number", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScore(tt.doc)
			var iv *ferrors.InvalidValueError
			if !errors.As(err, &iv) {
				t.Fatalf("error = %v, want InvalidValueError", err)
			}
			if iv.Field != tt.field || iv.Value != tt.value {
				t.Errorf("got %s=%q, want %s=%q", iv.Field, iv.Value, tt.field, tt.value)
			}
		})
	}
}

func TestDecodeRoots(t *testing.T) {
	t.Run("timewise", func(t *testing.T) {
		_, err := ParseScore(`<score-timewise version="4.0"><part-list/></score-timewise>`)
		var oe *ferrors.OtherError
		if !errors.As(err, &oe) {
			t.Fatalf("error = %v, want OtherError", err)
		}
		if !errors.Is(err, ferrors.ErrUnsupported) {
			t.Errorf("error %v does not wrap ErrUnsupported", err)
		}
	})
	t.Run("wrong root", func(t *testing.T) {
		_, err := ParseScore(`<opus/>`)
		var ue *ferrors.UnexpectedElementError
		if !errors.As(err, &ue) {
			t.Fatalf("error = %v, want UnexpectedElementError", err)
		}
		if ue.Element != "opus" || ue.Expected != "score-partwise" {
			t.Errorf("got %+v", ue)
		}
	})
	t.Run("no root", func(t *testing.T) {
		_, err := ParseScore(`<?xml version="1.0"?>`)
		if !errors.Is(err, ferrors.ErrXMLSyntax) {
			t.Errorf("error = %v, want XML syntax error", err)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := ParseScore(`<score-partwise><part-list></score-partwise>`)
		var se *ferrors.XMLSyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want XMLSyntaxError", err)
		}
	})
}

func TestDecodeReadError(t *testing.T) {
	_, err := Decode(failingReader{})
	var ioe *ferrors.IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("error = %v, want IOError", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestDecodeNoteVariants(t *testing.T) {
	t.Run("grace", func(t *testing.T) {
		n := firstNote(t, wrap(`<note><grace slash="yes"/><pitch><step>D</step><octave>5</octave></pitch><tie type="start"/><type>eighth</type></note>`))
		g, ok := n.Content.(*ir.GraceNote)
		if !ok {
			t.Fatalf("content = %T, want *ir.GraceNote", n.Content)
		}
		if g.Grace.Slash != ir.Yes || len(g.Ties) != 1 || g.Ties[0].Type != ir.Start {
			t.Errorf("grace note = %+v", g)
		}
	})
	t.Run("cue", func(t *testing.T) {
		n := firstNote(t, wrap(`<note><cue/><rest/><duration>2</duration></note>`))
		c, ok := n.Content.(*ir.CueNote)
		if !ok || c.Duration != 2 {
			t.Fatalf("content = %+v, want cue note of duration 2", n.Content)
		}
	})
	t.Run("chord unpitched", func(t *testing.T) {
		n := firstNote(t, wrap(`<note><chord/><unpitched><display-step>E</display-step><display-octave>4</display-octave></unpitched><duration>1</duration></note>`))
		full := n.Full()
		u, ok := full.Content.(*ir.Unpitched)
		if !full.Chord || !ok || u.DisplayStep != ir.StepE || *u.DisplayOctave != 4 {
			t.Errorf("full note = %+v", full)
		}
	})
	t.Run("beam default number", func(t *testing.T) {
		n := firstNote(t, wrap(`<note><rest/><duration>1</duration><beam>begin</beam><beam number="2">forward hook</beam></note>`))
		if len(n.Beams) != 2 {
			t.Fatalf("got %d beams", len(n.Beams))
		}
		if n.Beams[0].Number != 1 || n.Beams[1].Number != 2 || n.Beams[1].Value != ir.BeamForwardHook {
			t.Errorf("beams = %+v", n.Beams)
		}
	})
}

func TestDecodeLyric(t *testing.T) {
	n := firstNote(t, wrap(`<note><pitch><step>C</step><octave>4</octave></pitch><duration>1</duration>
<lyric number="1"><syllabic>begin</syllabic><text>Glo</text><elision>_</elision><syllabic>end</syllabic><text>ri</text><extend type="start"/><end-line/></lyric>
<lyric number="2"><extend/></lyric>
<lyric number="3"><humming/></lyric></note>`))
	if len(n.Lyrics) != 3 {
		t.Fatalf("got %d lyrics, want 3", len(n.Lyrics))
	}
	st, ok := n.Lyrics[0].Content.(*ir.SyllabicText)
	if !ok {
		t.Fatalf("lyric 1 = %T", n.Lyrics[0].Content)
	}
	if st.Syllabic != ir.SyllabicBegin || st.Text.Value != "Glo" {
		t.Errorf("first syllable = %+v", st)
	}
	if len(st.Extensions) != 1 || st.Extensions[0].Elision.Value != "_" || st.Extensions[0].Syllabic != ir.SyllabicEnd || st.Extensions[0].Text.Value != "ri" {
		t.Errorf("extensions = %+v", st.Extensions)
	}
	if st.Extend == nil || st.Extend.Type != ir.StartStopContinueStart || !n.Lyrics[0].EndLine {
		t.Errorf("extend = %+v, end-line = %v", st.Extend, n.Lyrics[0].EndLine)
	}
	if _, ok := n.Lyrics[1].Content.(*ir.ExtendOnly); !ok {
		t.Errorf("lyric 2 = %T, want *ir.ExtendOnly", n.Lyrics[1].Content)
	}
	if _, ok := n.Lyrics[2].Content.(*ir.Humming); !ok {
		t.Errorf("lyric 3 = %T, want *ir.Humming", n.Lyrics[2].Content)
	}
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name   string
		xml    string
		fifths int8
		mode   ir.Mode
	}{
		{"self-closing", `<key/>`, 0, 0},
		{"no fifths", `<key><mode>minor</mode></key>`, 0, ir.ModeMinor},
		{"d major", `<key><fifths>2</fifths><mode>major</mode></key>`, 2, ir.ModeMajor},
		{"flats", `<key><cancel>2</cancel><fifths>-3</fifths></key>`, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := firstContent(t, wrap(`<attributes>`+tt.xml+`</attributes>`)).(*ir.Attributes)
			tk, ok := at.Keys[0].Content.(*ir.TraditionalKey)
			if !ok {
				t.Fatalf("key = %T, want *ir.TraditionalKey", at.Keys[0].Content)
			}
			if tk.Fifths != tt.fifths || tk.Mode != tt.mode {
				t.Errorf("key = %+v, want fifths %d mode %v", tk, tt.fifths, tt.mode)
			}
		})
	}

	at := firstContent(t, wrap(`<attributes><key><key-step>F</key-step><key-alter>1</key-alter><key-step>B</key-step><key-alter>-1</key-alter><key-accidental>flat</key-accidental><key-octave number="1">5</key-octave></key></attributes>`)).(*ir.Attributes)
	ntk, ok := at.Keys[0].Content.(*ir.NonTraditionalKey)
	if !ok || len(ntk.Steps) != 2 {
		t.Fatalf("key = %+v", at.Keys[0].Content)
	}
	if ntk.Steps[1].Step != ir.StepB || ntk.Steps[1].Alter != -1 || ntk.Steps[1].Accidental.Value != ir.AccidentalFlat {
		t.Errorf("second step = %+v", ntk.Steps[1])
	}
	if len(at.Keys[0].Octaves) != 1 || at.Keys[0].Octaves[0].Octave != 5 {
		t.Errorf("octaves = %+v", at.Keys[0].Octaves)
	}
}

func TestDecodeAttributes(t *testing.T) {
	at := firstContent(t, wrap(`<attributes>
<divisions>480</divisions>
<time symbol="common"><beats>4</beats><beat-type>4</beat-type></time>
<time><beats>3+2</beats><beat-type>8</beat-type><beats>2</beats><beat-type>4</beat-type></time>
<time><senza-misura/></time>
<staves>2</staves>
<clef number="1"><sign>G</sign><line>2</line></clef>
<clef number="2"><sign>F</sign><line>4</line><clef-octave-change>-1</clef-octave-change></clef>
<transpose><diatonic>-1</diatonic><chromatic>-2</chromatic><double above="yes"/></transpose>
<measure-style><multiple-rest use-symbols="no">4</multiple-rest></measure-style>
<measure-style><slash type="start"/></measure-style>
</attributes>`)).(*ir.Attributes)

	if at.Divisions == nil || *at.Divisions != 480 {
		t.Errorf("Divisions = %v", at.Divisions)
	}
	if len(at.Times) != 3 {
		t.Fatalf("got %d times, want 3", len(at.Times))
	}
	if at.Times[0].Symbol != ir.TimeSymbolCommon {
		t.Errorf("time symbol = %v", at.Times[0].Symbol)
	}
	mt := at.Times[1].Content.(*ir.MeasuredTime)
	if len(mt.Signatures) != 2 || mt.Signatures[0].Beats != "3+2" || mt.Signatures[1].BeatType != "4" {
		t.Errorf("composite signatures = %+v", mt.Signatures)
	}
	if _, ok := at.Times[2].Content.(*ir.SenzaMisura); !ok {
		t.Errorf("third time = %T, want *ir.SenzaMisura", at.Times[2].Content)
	}
	if len(at.Clefs) != 2 || at.Clefs[1].Sign != ir.ClefF || *at.Clefs[1].OctaveChange != -1 {
		t.Errorf("clefs = %+v", at.Clefs)
	}
	if tr := at.Transposes[0]; tr.Chromatic != -2 || tr.Double == nil || tr.Double.Above != ir.Yes {
		t.Errorf("transpose = %+v", tr)
	}
	if len(at.MeasureStyles) != 1 {
		t.Fatalf("got %d measure styles, want 1 (slash is dropped)", len(at.MeasureStyles))
	}
	if mr, ok := at.MeasureStyles[0].Content.(*ir.MultipleRest); !ok || mr.Value != 4 || mr.UseSymbols != ir.No {
		t.Errorf("measure style = %+v", at.MeasureStyles[0].Content)
	}
}

func TestDecodeEmptyForms(t *testing.T) {
	tests := []struct {
		name         string
		empty, start string
	}{
		{"measure", `<measure number="7" width="120"/>`, `<measure number="7" width="120"></measure>`},
		{"barline", `<barline location="left" segno="s1"/>`, `<barline location="left" segno="s1"></barline>`},
		{"key", `<attributes><key number="1"/></attributes>`, `<attributes><key number="1"></key></attributes>`},
		{"fermata", `<note><rest/><duration>1</duration><notations><fermata type="inverted"/></notations></note>`,
			`<note><rest/><duration>1</duration><notations><fermata type="inverted"></fermata></notations></note>`},
	}
	doc := func(content string) string {
		if strings.HasPrefix(content, "<measure") {
			return `<score-partwise version="4.0"><part-list><score-part id="P1"><part-name>Piano</part-name></score-part></part-list>` +
				`<part id="P1">` + content + `</part></score-partwise>`
		}
		return wrap(content)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseScore(doc(tt.empty))
			if err != nil {
				t.Fatalf("ParseScore(empty) error = %v", err)
			}
			b, err := ParseScore(doc(tt.start))
			if err != nil {
				t.Fatalf("ParseScore(start) error = %v", err)
			}
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("empty and start forms differ (-empty +start):\n%s", diff)
			}
		})
	}
}

func TestDecodeDirection(t *testing.T) {
	md := firstContent(t, wrap(`<direction placement="above">
<direction-type><words font-weight="bold">Allegro</words></direction-type>
<direction-type><metronome parentheses="no"><beat-unit>quarter</beat-unit><beat-unit-dot/><per-minute>120</per-minute></metronome></direction-type>
<direction-type><dynamics><mf/><other-dynamics>sfmp</other-dynamics></dynamics></direction-type>
<direction-type><harp-pedals/></direction-type>
<offset sound="yes">-2</offset>
<staff>1</staff>
<sound tempo="120"><midi-instrument id="x"/></sound>
</direction>`))
	d, ok := md.(*ir.Direction)
	if !ok {
		t.Fatalf("content = %T, want *ir.Direction", md)
	}
	if d.Placement != ir.Above || len(d.Types) != 3 {
		t.Fatalf("direction = %+v", d)
	}
	w := d.Types[0].Elements[0].(*ir.Words)
	if w.Value != "Allegro" || w.FontWeight != ir.FontWeightBold {
		t.Errorf("words = %+v", w)
	}
	m := d.Types[1].Elements[0].(*ir.Metronome)
	pm, ok := m.Rate.(*ir.PerMinute)
	if m.BeatUnit != ir.NoteTypeQuarter || m.BeatUnitDots != 1 || !ok || pm.Value != "120" {
		t.Errorf("metronome = %+v rate %+v", m, m.Rate)
	}
	dy := d.Types[2].Elements[0].(*ir.Dynamics)
	if len(dy.Marks) != 2 || dy.Marks[0].Kind != ir.DynamicMF || dy.Marks[1].Other != "sfmp" {
		t.Errorf("dynamics = %+v", dy.Marks)
	}
	if d.Offset == nil || d.Offset.Value != -2 || d.Offset.Sound != ir.Yes {
		t.Errorf("offset = %+v", d.Offset)
	}
	if d.Sound == nil || *d.Sound.Tempo != 120 {
		t.Errorf("sound = %+v", d.Sound)
	}

	// A direction whose only content is unsupported disappears.
	score, err := ParseScore(wrap(`<direction><direction-type><harp-pedals/></direction-type></direction>`))
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	if n := len(score.Parts[0].Measures[0].Content); n != 0 {
		t.Errorf("got %d content items, want 0", n)
	}
}

func TestDecodeDroppedDirectionReported(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"types only", `<direction><direction-type><harp-pedals/></direction-type></direction>`,
			[]string{"direction-type/harp-pedals"}},
		{"with sound", `<direction><direction-type><harp-pedals/></direction-type><staff>2</staff><sound tempo="90"/></direction>`,
			[]string{"direction-type/harp-pedals", "measure/direction"}},
		{"with offset", `<direction><direction-type><harp-pedals/></direction-type><offset>3</offset></direction>`,
			[]string{"direction-type/harp-pedals", "measure/direction"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			score, err := ParseScore(wrap(tt.doc), WithSkipHandler(func(parent, element string, _ ferrors.Position) {
				got = append(got, parent+"/"+element)
			}))
			if err != nil {
				t.Fatalf("ParseScore() error = %v", err)
			}
			if n := len(score.Parts[0].Measures[0].Content); n != 0 {
				t.Errorf("got %d content items, want 0", n)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("skipped mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMetronomeBeatUnitRate(t *testing.T) {
	md := firstContent(t, wrap(`<direction><direction-type><metronome><beat-unit>half</beat-unit><beat-unit>quarter</beat-unit><beat-unit-dot/></metronome></direction-type></direction>`))
	m := md.(*ir.Direction).Types[0].Elements[0].(*ir.Metronome)
	r, ok := m.Rate.(*ir.BeatUnitRate)
	if !ok {
		t.Fatalf("rate = %T, want *ir.BeatUnitRate", m.Rate)
	}
	if m.BeatUnit != ir.NoteTypeHalf || m.BeatUnitDots != 0 || r.BeatUnit != ir.NoteTypeQuarter || r.BeatUnitDots != 1 {
		t.Errorf("metronome = %+v, rate = %+v", m, r)
	}
}

func TestDecodeNotations(t *testing.T) {
	n := firstNote(t, wrap(`<note><pitch><step>C</step><octave>4</octave></pitch><duration>1</duration><notations>
<tied type="start"/><slur type="start" number="1" placement="above"/>
<tuplet type="start" bracket="yes"><tuplet-actual><tuplet-number>3</tuplet-number><tuplet-type>eighth</tuplet-type></tuplet-actual></tuplet>
<slide type="start">sl</slide>
<ornaments><trill-mark/><turn slash="yes"/><inverted-mordent long="yes"/><wavy-line type="start"/><tremolo type="single">3</tremolo><accidental-mark>sharp</accidental-mark></ornaments>
<technical><up-bow/><fingering>3</fingering><string>2</string><fret>5</fret><hammer-on type="start">H</hammer-on><bend><bend-alter>2</bend-alter><release/></bend><arrow><circular-arrow>clockwise</circular-arrow></arrow></technical>
<articulations><accent/><strong-accent type="up"/><falloff/><breath-mark/><caesura>curved</caesura></articulations>
<arpeggiate direction="up"/>
</notations></note>`))
	nt := n.Notations[0]
	if len(nt.Tied) != 1 || len(nt.Slurs) != 1 || nt.Slurs[0].Placement != ir.Above {
		t.Errorf("tied/slurs = %+v / %+v", nt.Tied, nt.Slurs)
	}
	if tp := nt.Tuplets[0]; tp.Actual == nil || *tp.Actual.Number != 3 || tp.Actual.Type != ir.NoteTypeEighth {
		t.Errorf("tuplet = %+v", tp)
	}
	if len(nt.Slides) != 1 || nt.Slides[0].Text != "sl" {
		t.Errorf("slides = %+v", nt.Slides)
	}

	orn := nt.Ornaments[0].Items
	if len(orn) != 6 {
		t.Fatalf("got %d ornaments, want 6", len(orn))
	}
	if tu := orn[1].(*ir.Turn); tu.Kind != ir.TurnNormal || tu.Slash != ir.Yes {
		t.Errorf("turn = %+v", tu)
	}
	if m := orn[2].(*ir.Mordent); !m.Inverted || m.Long != ir.Yes {
		t.Errorf("mordent = %+v", m)
	}
	if tr := orn[4].(*ir.Tremolo); tr.Marks != 3 || tr.Type != ir.TremoloTypeSingle {
		t.Errorf("tremolo = %+v", tr)
	}

	tech := nt.Technical[0].Items
	if len(tech) != 7 {
		t.Fatalf("got %d technical items, want 7", len(tech))
	}
	if tm := tech[0].(*ir.TechnicalMark); tm.Kind != ir.TechnicalUpBow {
		t.Errorf("technical mark = %+v", tm)
	}
	if b := tech[5].(*ir.Bend); b.Alter != 2 || b.Release == nil {
		t.Errorf("bend = %+v", b)
	}
	if ar := tech[6].(*ir.Arrow); ar.Circular != ir.CircularArrowClockwise {
		t.Errorf("arrow = %+v", ar)
	}

	arts := nt.Articulations[0].Items
	if len(arts) != 5 {
		t.Fatalf("got %d articulations, want 5", len(arts))
	}
	if j := arts[2].(*ir.JazzArticulation); j.Kind != ir.JazzFalloff {
		t.Errorf("jazz = %+v", j)
	}
	if b := arts[3].(*ir.BreathMark); b.Value != 0 {
		t.Errorf("empty breath-mark value = %v, want absent", b.Value)
	}
	if c := arts[4].(*ir.Caesura); c.Value != ir.CaesuraCurved {
		t.Errorf("caesura = %v", c.Value)
	}
	if nt.Arpeggiates[0].Direction != ir.Up {
		t.Errorf("arpeggiate = %+v", nt.Arpeggiates[0])
	}
}

func TestDecodeHeader(t *testing.T) {
	doc := `<score-partwise version="3.1">
<work><work-number>Op. 1</work-number><work-title>Sonata</work-title><opus xlink:href="opus.xml" xmlns:xlink="http://www.w3.org/1999/xlink"/></work>
<movement-title>Allegro</movement-title>
<identification>
  <creator type="composer">Anon</creator>
  <encoding><software>fermata</software><encoding-date>2024-01-01</encoding-date><supports type="yes" element="accidental"/></encoding>
  <miscellaneous><miscellaneous-field name="key">value</miscellaneous-field></miscellaneous>
</identification>
<defaults>
  <scaling><millimeters>7</millimeters><tenths>40</tenths></scaling>
  <page-layout><page-height>1683</page-height><page-width>1190</page-width>
    <page-margins type="both"><left-margin>70</left-margin><right-margin>70</right-margin><top-margin>88</top-margin><bottom-margin>88</bottom-margin></page-margins>
  </page-layout>
  <lyric-language xml:lang="de"/>
</defaults>
<credit page="1"><credit-type>title</credit-type><credit-words justify="center" font-size="24">Sonata</credit-words></credit>
<part-list>
  <part-group type="start" number="1"><group-symbol>bracket</group-symbol><group-barline>yes</group-barline></part-group>
  <score-part id="P1"><part-name>Violin</part-name>
    <score-instrument id="P1-I1"><instrument-name>Violin</instrument-name><solo/></score-instrument>
    <midi-instrument id="P1-I1"><midi-channel>1</midi-channel><midi-program>41</midi-program><volume>80</volume></midi-instrument>
  </score-part>
  <part-group type="stop" number="1"/>
</part-list>
</score-partwise>`
	score, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	if score.Version != "3.1" || score.MovementTitle != "Allegro" {
		t.Errorf("version %q title %q", score.Version, score.MovementTitle)
	}
	if score.Work == nil || score.Work.WorkTitle != "Sonata" || score.Work.Opus == nil || score.Work.Opus.Href != "opus.xml" {
		t.Errorf("work = %+v", score.Work)
	}
	id := score.Identification
	if len(id.Creators) != 1 || id.Creators[0].Type != "composer" {
		t.Errorf("creators = %+v", id.Creators)
	}
	if id.Encoding == nil || id.Encoding.Dates[0] != "2024-01-01" || id.Encoding.Supports[0].Type != ir.Yes {
		t.Errorf("encoding = %+v", id.Encoding)
	}
	if id.Miscellaneous[0].Name != "key" {
		t.Errorf("miscellaneous = %+v", id.Miscellaneous)
	}
	def := score.Defaults
	if def.Scaling.Millimeters != 7 || def.PageLayout.PageMargins[0].Type != ir.MarginsBoth || def.LyricLanguages[0].Lang != "de" {
		t.Errorf("defaults = %+v", def)
	}
	if c := score.Credits[0]; *c.Page != 1 || c.Words[0].Value != "Sonata" || c.Words[0].FontSize != "24" {
		t.Errorf("credit = %+v", c)
	}
	if len(score.PartList.Items) != 3 {
		t.Fatalf("got %d part-list items, want 3", len(score.PartList.Items))
	}
	pg := score.PartList.Items[0].(*ir.PartGroup)
	if pg.Type != ir.Start || pg.GroupSymbol.Value != ir.GroupSymbolBracket {
		t.Errorf("part group = %+v", pg)
	}
	sp := score.PartList.Items[1].(*ir.ScorePart)
	if !sp.ScoreInstruments[0].Solo || *sp.MidiInstruments[0].MidiProgram != 41 {
		t.Errorf("score part = %+v", sp)
	}
}
