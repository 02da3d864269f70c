package musicxml

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// compact writes a bare document on one line.
var compact = []EncodeOption{WithIndent(""), WithDeclaration(false), WithDoctype(false)}

func encodeCompact(t *testing.T, score *ir.ScorePartwise) string {
	t.Helper()
	out, err := EncodeToString(score, compact...)
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	return strings.TrimSuffix(out, "\n")
}

func roundTrip(t *testing.T, doc string) (*ir.ScorePartwise, *ir.ScorePartwise) {
	t.Helper()
	first, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	out, err := EncodeToString(first)
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	second, err := ParseScore(out)
	if err != nil {
		t.Fatalf("ParseScore(encoded) error = %v\n%s", err, out)
	}
	return first, second
}

func TestEncodeMinimalScore(t *testing.T) {
	doc := `<score-partwise version="4.0"><part-list><score-part id="P1"><part-name>Piano</part-name></score-part></part-list><part id="P1"><measure number="1"/></part></score-partwise>`
	score, err := ParseScore(doc)
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	if got := encodeCompact(t, score); got != doc {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, doc)
	}
}

func TestEncodeHeader(t *testing.T) {
	out, err := EncodeToString(&ir.ScorePartwise{})
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], `<?xml version="1.0"`) {
		t.Errorf("line 1 = %q, want XML declaration", lines[0])
	}
	if want := `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 4.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`; lines[1] != want {
		t.Errorf("line 2 = %q, want %q", lines[1], want)
	}
	if lines[2] != `<score-partwise version="4.0">` {
		t.Errorf("line 3 = %q, want the root with the default version", lines[2])
	}
	if !strings.HasSuffix(out, "</score-partwise>\n") {
		t.Errorf("output does not end with the closing root and a newline:\n%s", out)
	}
}

func TestEncodePitchAndAccidental(t *testing.T) {
	score, err := ParseScore(wrap(`<note><pitch><step>F</step><alter>1</alter><octave>4</octave></pitch><duration>1</duration><accidental>sharp</accidental></note>`))
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	got := encodeCompact(t, score)
	for _, want := range []string{
		`<pitch><step>F</step><alter>1</alter><octave>4</octave></pitch>`,
		`<accidental>sharp</accidental>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s:\n%s", want, got)
		}
	}
}

func TestEncodeBarlineRoundTrip(t *testing.T) {
	src := `<barline location="right"><bar-style>light-heavy</bar-style><repeat direction="backward" times="2"/></barline>`
	first, second := roundTrip(t, wrap(src))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
	if got := encodeCompact(t, first); !strings.Contains(got, src) {
		t.Errorf("output does not reproduce %s:\n%s", src, got)
	}
}

func TestEncodeFermataForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"self-closing stays empty", `<fermata type="upright"/>`, `<fermata type="upright"/>`},
		{"empty pair becomes self-closing", `<fermata type="upright"></fermata>`, `<fermata type="upright"/>`},
		{"shape keeps text", `<fermata type="upright">normal</fermata>`, `<fermata type="upright">normal</fermata>`},
		{"no type", `<fermata>square</fermata>`, `<fermata>square</fermata>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ParseScore(wrap(`<note><rest/><duration>1</duration><notations>` + tt.src + `</notations></note>`))
			if err != nil {
				t.Fatalf("ParseScore() error = %v", err)
			}
			got := encodeCompact(t, score)
			if !strings.Contains(got, `<notations>`+tt.want+`</notations>`) {
				t.Errorf("output = %s, want it to contain %s", got, tt.want)
			}
		})
	}

	t.Run("barline", func(t *testing.T) {
		score, err := ParseScore(wrap(`<barline><fermata type="inverted"/><fermata>normal</fermata></barline>`))
		if err != nil {
			t.Fatalf("ParseScore() error = %v", err)
		}
		want := `<barline><fermata type="inverted"/><fermata>normal</fermata></barline>`
		if got := encodeCompact(t, score); !strings.Contains(got, want) {
			t.Errorf("output = %s, want it to contain %s", got, want)
		}
	})
}

func TestEncodeRoundTripFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/rich.musicxml")
	if err != nil {
		t.Fatal(err)
	}
	first, second := roundTrip(t, string(data))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}

	out, err := EncodeToString(first)
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	if res := xml.Validate([]byte(out)); !res.Valid {
		t.Errorf("encoded output is not well formed: %v", res.Errors)
	}
}

func TestEncodeElementOrder(t *testing.T) {
	data, err := os.ReadFile("testdata/rich.musicxml")
	if err != nil {
		t.Fatal(err)
	}
	score, err := ParseScoreBytes(data)
	if err != nil {
		t.Fatalf("ParseScoreBytes() error = %v", err)
	}
	out, err := EncodeToString(score)
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	doc, err := xml.Parse([]byte(out))
	if err != nil {
		t.Fatalf("xml.Parse() error = %v", err)
	}

	tests := []struct {
		xpath string
		want  []string
	}{
		{"/score-partwise", []string{"work", "movement-number", "movement-title", "identification", "defaults", "credit", "part-list", "part"}},
		{"/score-partwise/identification", []string{"creator", "rights", "encoding", "miscellaneous"}},
		{"/score-partwise/part-list", []string{"part-group", "score-part", "part-group"}},
		{"/score-partwise/part-list/score-part", []string{"part-name", "part-abbreviation", "score-instrument", "midi-instrument"}},
		{"//measure[@number='1']/attributes", []string{"divisions", "key", "time", "staves", "clef", "clef"}},
		{"//measure[@number='1']/note[1]", []string{"pitch", "duration", "tie", "voice", "type", "stem", "staff", "notations", "lyric"}},
		{"//measure[@number='1']/note[1]/notations", []string{"tied", "slur", "articulations", "fermata"}},
		{"//measure[@number='1']/note[3]", []string{"pitch", "duration", "voice", "type", "accidental", "stem", "staff", "beam", "notations"}},
		{"//measure[@number='1']/direction[1]", []string{"direction-type", "direction-type", "staff", "sound"}},
		{"//measure[@number='2']/barline", []string{"bar-style", "ending", "repeat"}},
	}
	for _, tt := range tests {
		t.Run(tt.xpath, func(t *testing.T) {
			n, err := doc.XPathFirst(tt.xpath)
			if err != nil {
				t.Fatalf("XPathFirst() error = %v", err)
			}
			if n == nil {
				t.Fatalf("no node at %s", tt.xpath)
			}
			if diff := cmp.Diff(tt.want, n.ChildNames()); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if n, _ := doc.Count("//fermata[not(node())]"); n != 1 {
		t.Errorf("got %d empty fermatas, want 1", n)
	}
	if n, _ := doc.XPathFirst("//fermata[. = 'normal']"); n == nil || n.Attr("type") != "upright" {
		t.Errorf("shaped fermata not written as text content")
	}
}

func TestEncodeAttributes(t *testing.T) {
	at := &ir.Attributes{
		Divisions: ir.Float64(4),
		Keys:      []*ir.Key{{Content: &ir.TraditionalKey{Fifths: 2, Mode: ir.ModeMajor}}},
		Times: []*ir.Time{{Content: &ir.MeasuredTime{Signatures: []ir.TimeSignature{
			{Beats: "6", BeatType: "8"},
		}}}},
		Clefs: []*ir.Clef{{Sign: ir.ClefG, Line: ir.Int(2)}},
	}
	var b bytes.Buffer
	if err := EncodeAttributes(&b, at, WithIndent("")); err != nil {
		t.Fatalf("EncodeAttributes() error = %v", err)
	}
	want := `<attributes><divisions>4</divisions><key><fifths>2</fifths><mode>major</mode></key>` +
		`<time><beats>6</beats><beat-type>8</beat-type></time><clef><sign>G</sign><line>2</line></clef></attributes>` + "\n"
	if got := b.String(); got != want {
		t.Errorf("EncodeAttributes() =\n%q\nwant\n%q", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	score, err := ParseScore(wrap(`<backup><duration>2</duration></backup>`))
	if err != nil {
		t.Fatalf("ParseScore() error = %v", err)
	}
	out, err := EncodeToString(score, WithDeclaration(false), WithDoctype(false), WithIndent("\t"))
	if err != nil {
		t.Fatalf("EncodeToString() error = %v", err)
	}
	if !strings.Contains(out, "\n\t\t\t<backup>\n\t\t\t\t<duration>2</duration>\n\t\t\t</backup>") {
		t.Errorf("backup not indented with tabs:\n%s", out)
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("nil score", func(t *testing.T) {
		err := Encode(&bytes.Buffer{}, nil)
		var iv *ferrors.InvalidValueError
		if !errors.As(err, &iv) {
			t.Errorf("error = %v, want InvalidValueError", err)
		}
	})
	t.Run("nil note content", func(t *testing.T) {
		score := &ir.ScorePartwise{
			PartList: ir.PartList{Items: []ir.PartListItem{&ir.ScorePart{ID: "P1", PartName: ir.PartName{Value: "A"}}}},
			Parts: []*ir.Part{{ID: "P1", Measures: []*ir.Measure{{
				Number:  "1",
				Content: []ir.MusicData{&ir.Note{}},
			}}}},
		}
		err := Encode(&bytes.Buffer{}, score)
		var iv *ferrors.InvalidValueError
		if !errors.As(err, &iv) {
			t.Fatalf("error = %v, want InvalidValueError", err)
		}
		if iv.Field != "note" {
			t.Errorf("Field = %q, want %q", iv.Field, "note")
		}
	})
	t.Run("write failure", func(t *testing.T) {
		err := Encode(failingWriter{}, &ir.ScorePartwise{})
		var ioe *ferrors.IOError
		if !errors.As(err, &ioe) {
			t.Fatalf("error = %v, want IOError", err)
		}
		if ioe.Operation != "write" {
			t.Errorf("Operation = %q, want %q", ioe.Operation, "write")
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }
