package musicxml

import (
	"os"
	"testing"

	"github.com/antchfx/xmlquery"

	ferrors "github.com/oxur/fermata/core/errors"
)

func TestMatrixVersion(t *testing.T) {
	if got := Supported().Version; got != MatrixVersion {
		t.Errorf("Supported().Version = %q, want %q", got, MatrixVersion)
	}
	if got := Skipped().Version; got != MatrixVersion {
		t.Errorf("Skipped().Version = %q, want %q", got, MatrixVersion)
	}
}

func TestMatrixDisjoint(t *testing.T) {
	supported := Supported()
	skipped := Skipped()
	for _, parent := range skipped.Parents() {
		for _, child := range skipped.Elements[parent] {
			if supported.Contains(parent, child) {
				t.Errorf("%s/%s is both supported and skipped", parent, child)
			}
		}
	}
}

func TestMatrixContains(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"note", "pitch", true},
		{"ornaments", "inverted-turn", true},
		{"technical", "up-bow", true},
		{"articulations", "falloff", true},
		{"dynamics", "sfz", true},
		{"direction-type", "damp", true},
		{"backup", "duration", true},
		{"forward", "voice", true},
		{"forward", "staff", true},
		{"backup", "voice", false},
		{"measure", "harmony", false},
		{"nonexistent", "note", false},
	}
	m := Supported()
	for _, tt := range tests {
		if got := m.Contains(tt.parent, tt.child); got != tt.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

// TestMatrixCoversFixture checks every element of the sample score against
// the supported set, and that decoding it skips nothing.
func TestMatrixCoversFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/rich.musicxml")
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open("testdata/rich.musicxml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := xmlquery.Parse(f)
	if err != nil {
		t.Fatalf("xmlquery.Parse() error = %v", err)
	}

	m := Supported()
	for _, n := range xmlquery.Find(doc, "//*/*") {
		if !m.Contains(n.Parent.Data, n.Data) {
			t.Errorf("%s/%s is not in the supported matrix", n.Parent.Data, n.Data)
		}
	}

	var skipped []string
	_, err = ParseScoreBytes(data, WithSkipHandler(func(parent, element string, _ ferrors.Position) {
		skipped = append(skipped, parent+"/"+element)
	}))
	if err != nil {
		t.Fatalf("ParseScoreBytes() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped %v, want nothing", skipped)
	}
}

func TestMatrixSkippedAreReported(t *testing.T) {
	tests := []struct {
		parent, child string
		doc           string
	}{
		{"measure", "harmony", wrap(`<harmony><root><root-step>C</root-step></root><kind>major</kind></harmony>`)},
		{"measure", "figured-bass", wrap(`<figured-bass><figure><figure-number>6</figure-number></figure></figured-bass>`)},
		{"measure", "print", wrap(`<print new-page="yes"/>`)},
		{"note", "play", wrap(`<note><rest/><duration>1</duration><play><mute>on</mute></play></note>`)},
		{"attributes", "staff-details", wrap(`<attributes><staff-details><staff-lines>5</staff-lines></staff-details></attributes>`)},
		{"time", "interchangeable", wrap(`<attributes><time><beats>2</beats><beat-type>4</beat-type><interchangeable><beats>4</beats><beat-type>8</beat-type></interchangeable></time></attributes>`)},
		{"measure-style", "slash", wrap(`<attributes><measure-style><slash type="start"/></measure-style></attributes>`)},
		{"direction-type", "harp-pedals", wrap(`<direction><direction-type><harp-pedals/></direction-type></direction>`)},
		{"sound", "swing", wrap(`<direction><direction-type><words>swing</words></direction-type><sound><swing><straight/></swing></sound></direction>`)},
	}
	skipped := Skipped()
	for _, tt := range tests {
		t.Run(tt.parent+"/"+tt.child, func(t *testing.T) {
			if !skipped.Contains(tt.parent, tt.child) {
				t.Fatalf("%s/%s is not listed as skipped", tt.parent, tt.child)
			}
			reported := false
			_, err := ParseScore(tt.doc, WithSkipHandler(func(parent, element string, _ ferrors.Position) {
				if parent == tt.parent && element == tt.child {
					reported = true
				}
			}))
			if err != nil {
				t.Fatalf("ParseScore() error = %v", err)
			}
			if !reported {
				t.Errorf("%s/%s was not reported", tt.parent, tt.child)
			}
		})
	}
}
