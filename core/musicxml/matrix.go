package musicxml

import (
	"sort"

	"github.com/oxur/fermata/core/ir"
)

// MatrixVersion identifies the supported element set. It changes whenever
// an element moves between Supported and Skipped.
const MatrixVersion = "4.0-subset.1"

// Matrix maps a parent element name to the child element names in a set.
type Matrix struct {
	Version  string
	Elements map[string][]string
}

// Contains reports whether child of parent is in the set.
func (m Matrix) Contains(parent, child string) bool {
	for _, c := range m.Elements[parent] {
		if c == child {
			return true
		}
	}
	return false
}

// Parents returns the parent names in sorted order.
func (m Matrix) Parents() []string {
	out := make([]string, 0, len(m.Elements))
	for p := range m.Elements {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func tokens(field string, extra ...string) []string {
	v, ok := ir.VocabularyFor(field)
	if !ok {
		panic("musicxml: no vocabulary for " + field)
	}
	return append(v.Tokens(), extra...)
}

var (
	displayChildren = []string{"display-step", "display-octave"}
	tupletPortion   = []string{"tuplet-number", "tuplet-type", "tuplet-dot"}
	marginChildren  = []string{"left-margin", "right-margin", "top-margin", "bottom-margin"}
)

// Supported returns the elements the decoder reads and the encoder writes.
func Supported() Matrix {
	return Matrix{Version: MatrixVersion, Elements: map[string][]string{
		"score-partwise": {"work", "movement-number", "movement-title", "identification", "defaults", "credit", "part-list", "part"},
		"work":           {"work-number", "work-title", "opus"},
		"identification": {"creator", "rights", "encoding", "source", "relation", "miscellaneous"},
		"miscellaneous":  {"miscellaneous-field"},
		"encoding":       {"encoding-date", "encoder", "software", "encoding-description", "supports"},
		"defaults": {"scaling", "page-layout", "system-layout", "staff-layout", "appearance",
			"music-font", "word-font", "lyric-font", "lyric-language"},
		"scaling":            {"millimeters", "tenths"},
		"page-layout":        {"page-height", "page-width", "page-margins"},
		"page-margins":       marginChildren,
		"system-layout":      {"system-margins", "system-distance", "top-system-distance"},
		"system-margins":     marginChildren[:2],
		"staff-layout":       {"staff-distance"},
		"appearance":         {"line-width", "note-size", "distance"},
		"credit":             {"credit-type", "credit-words", "credit-image"},
		"part-list":          {"part-group", "score-part"},
		"part-group":         {"group-name", "group-abbreviation", "group-symbol", "group-barline", "group-time"},
		"score-part":         {"part-name", "part-abbreviation", "group", "score-instrument", "midi-device", "midi-instrument"},
		"score-instrument":   {"instrument-name", "instrument-abbreviation", "instrument-sound", "solo", "ensemble", "virtual-instrument"},
		"virtual-instrument": {"virtual-library", "virtual-name"},
		"midi-instrument": {"midi-channel", "midi-name", "midi-bank", "midi-program", "midi-unpitched",
			"volume", "pan", "elevation"},
		"part":    {"measure"},
		"measure": {"note", "backup", "forward", "direction", "attributes", "barline"},
		"backup":  {"duration"},
		"forward": {"duration", "voice", "staff"},
		"note": {"grace", "cue", "chord", "pitch", "unpitched", "rest", "duration", "tie", "instrument",
			"voice", "type", "dot", "accidental", "time-modification", "stem", "notehead", "staff",
			"beam", "notations", "lyric"},
		"pitch":             {"step", "alter", "octave"},
		"unpitched":         displayChildren,
		"rest":              displayChildren,
		"time-modification": {"actual-notes", "normal-notes", "normal-type", "normal-dot"},
		"lyric": {"syllabic", "text", "elision", "extend", "laughing", "humming",
			"end-line", "end-paragraph"},
		"notations": {"tied", "slur", "tuplet", "glissando", "slide", "ornaments", "technical",
			"articulations", "dynamics", "fermata", "arpeggiate", "non-arpeggiate",
			"accidental-mark", "other-notation"},
		"tuplet":        {"tuplet-actual", "tuplet-normal"},
		"tuplet-actual": tupletPortion,
		"tuplet-normal": tupletPortion,
		"ornaments": tokens("turn", "trill-mark", "shake", "haydn", "wavy-line", "mordent",
			"inverted-mordent", "schleifer", "tremolo", "other-ornament", "accidental-mark"),
		"technical": tokens("technical", "harmonic", "fingering", "pluck", "fret", "string",
			"hammer-on", "pull-off", "bend", "tap", "heel", "toe", "hole", "arrow", "handbell",
			"harmon-mute", "other-technical"),
		"harmonic":      tokens("harmonic-pitch", "natural", "artificial"),
		"bend":          {"bend-alter", "pre-bend", "release", "with-bar"},
		"hole":          {"hole-type", "hole-closed", "hole-shape"},
		"arrow":         {"arrow-direction", "arrow-style", "arrowhead", "circular-arrow"},
		"harmon-mute":   {"harmon-closed"},
		"articulations": append(tokens("articulation", "strong-accent", "breath-mark", "caesura", "other-articulation"), tokens("jazz-articulation")...),
		"dynamics":      tokens("dynamics", "other-dynamics"),
		"direction":     {"direction-type", "offset", "voice", "staff", "sound"},
		"direction-type": tokens("direction-type", "rehearsal", "segno", "coda", "words", "symbol",
			"wedge", "dynamics", "dashes", "bracket", "pedal", "metronome", "octave-shift",
			"string-mute", "staff-divide", "other-direction"),
		"metronome": {"beat-unit", "beat-unit-dot", "per-minute"},
		"attributes": {"divisions", "key", "time", "staves", "part-symbol", "instruments", "clef",
			"transpose", "measure-style"},
		"key": {"cancel", "fifths", "mode", "key-step", "key-alter", "key-accidental", "key-octave"},
		"time":          {"beats", "beat-type", "senza-misura"},
		"clef":          {"sign", "line", "clef-octave-change"},
		"transpose":     {"diatonic", "chromatic", "octave-change", "double"},
		"measure-style": {"multiple-rest", "measure-repeat"},
		"barline":       {"bar-style", "wavy-line", "segno", "coda", "fermata", "ending", "repeat"},
	}}
}

// Skipped returns the elements the decoder deliberately discards. Each is
// reported to a SkipHandler when one is installed.
func Skipped() Matrix {
	return Matrix{Version: MatrixVersion, Elements: map[string][]string{
		"measure": {"harmony", "figured-bass", "print", "sound", "listening", "grouping", "link",
			"bookmark"},
		"note":          {"footnote", "level", "notehead-text", "play", "listen"},
		"score-part":    {"identification", "part-link", "part-name-display", "part-abbreviation-display", "player"},
		"part-group":    {"group-name-display", "group-abbreviation-display", "footnote", "level"},
		"attributes":    {"staff-details", "directive", "footnote", "level", "for-part"},
		"time":          {"interchangeable"},
		"measure-style": {"beat-repeat", "slash"},
		"credit":        {"credit-symbol", "link", "bookmark"},
		"direction": {"footnote", "level", "listening"},
		"direction-type": {"harp-pedals", "image", "principal-voice", "percussion",
			"accordion-registration", "scordatura"},
		"metronome": {"metronome-note", "metronome-relation", "metronome-arrows"},
		"sound":     {"instrument-change", "midi-device", "midi-instrument", "play", "swing", "offset"},
		"barline":   {"footnote", "level"},
		"defaults":  {"concert-score"},
	}}
}
