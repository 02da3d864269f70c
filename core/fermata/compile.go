package fermata

import (
	"strconv"
	"strings"

	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/sexpr"
)

// naturalFifths places each natural tonic on the circle of fifths, as the
// key signature of its major key.
var naturalFifths = map[byte]int{
	'f': -1, 'c': 0, 'g': 1, 'd': 2, 'a': 3, 'e': 4, 'b': 5,
}

// modeOffsets moves a major key signature to the same tonic in another mode.
var modeOffsets = map[ir.Mode]int{
	ir.ModeMajor:      0,
	ir.ModeIonian:     0,
	ir.ModeMinor:      -3,
	ir.ModeAeolian:    -3,
	ir.ModeDorian:     -2,
	ir.ModePhrygian:   -4,
	ir.ModeLydian:     1,
	ir.ModeMixolydian: -1,
	ir.ModeLocrian:    -5,
}

var sharpSuffixes = []string{"#", "s", "-sharp", "sharp"}
var flatSuffixes = []string{"b", "-flat", "flat"}

type clefSpec struct {
	sign   ir.ClefSign
	line   int // 0 when the sign takes no line
	octave int
}

var namedClefs = map[string]clefSpec{
	"treble":        {ir.ClefG, 2, 0},
	"bass":          {ir.ClefF, 4, 0},
	"alto":          {ir.ClefC, 3, 0},
	"tenor":         {ir.ClefC, 4, 0},
	"soprano":       {ir.ClefC, 1, 0},
	"mezzo-soprano": {ir.ClefC, 2, 0},
	"baritone":      {ir.ClefF, 3, 0},
	"percussion":    {ir.ClefPercussion, 0, 0},
	"tab":           {ir.ClefTab, 5, 0},
	"treble-8vb":    {ir.ClefG, 2, -1},
	"treble-8va":    {ir.ClefG, 2, 1},
	"bass-8vb":      {ir.ClefF, 4, -1},
	"french":        {ir.ClefG, 1, 0},
	"sub-bass":      {ir.ClefF, 5, 0},
	"none":          {ir.ClefNone, 0, 0},
}

// CompileString reads Fermata source and compiles every form in it.
func CompileString(name, src string) ([]*ir.Attributes, error) {
	forms, err := sexpr.Read(name, src)
	if err != nil {
		return nil, err
	}
	return Compile(forms)
}

// Compile compiles a sequence of top-level forms. An attributes form
// becomes one Attributes node; a bare key, time or clef form becomes an
// Attributes node holding just that signature.
func Compile(forms []sexpr.Value) ([]*ir.Attributes, error) {
	out := make([]*ir.Attributes, 0, len(forms))
	for _, f := range forms {
		l, ok := f.(*sexpr.List)
		if !ok {
			return nil, compileErr(InvalidForm, "", f, "top-level value is not a form")
		}
		var at *ir.Attributes
		var err error
		switch l.Head() {
		case "attributes":
			at, err = CompileAttributes(l)
		default:
			at = &ir.Attributes{}
			err = addSignature(at, l)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, at)
	}
	return out, nil
}

// CompileAttributes compiles
//
//	(attributes [:divisions n] [:staves n] form...)
//
// where each form is a key, time or clef form.
func CompileAttributes(v sexpr.Value) (*ir.Attributes, error) {
	l, err := expectForm(v, "attributes")
	if err != nil {
		return nil, err
	}
	a, err := parseArgs(l, "divisions", "staves")
	if err != nil {
		return nil, err
	}
	at := &ir.Attributes{}
	if d, ok := a.keywords["divisions"]; ok {
		n, isNum := d.(*sexpr.Number)
		if !isNum {
			return nil, compileErr(InvalidArgument, a.form, d, "divisions must be a number")
		}
		f, err := n.Float()
		if err != nil || f <= 0 {
			return nil, compileErr(InvalidArgument, a.form, d, "divisions must be positive, found %s", n.Text)
		}
		at.Divisions = ir.Float64(f)
	}
	staves, err := a.optionalInt("staves")
	if err != nil {
		return nil, err
	}
	if staves != nil {
		if *staves < 1 || *staves > 255 {
			return nil, compileErr(InvalidArgument, a.form, a.keywords["staves"], "staves %d out of range 1..255", *staves)
		}
		at.Staves = ir.Uint8(uint8(*staves))
	}
	for _, p := range a.positional {
		child, ok := p.(*sexpr.List)
		if !ok {
			return nil, compileErr(InvalidForm, a.form, p, "expected a key, time or clef form")
		}
		if err := addSignature(at, child); err != nil {
			return nil, err
		}
	}
	return at, nil
}

func addSignature(at *ir.Attributes, l *sexpr.List) error {
	switch l.Head() {
	case "key":
		k, err := CompileKey(l)
		if err != nil {
			return err
		}
		at.Keys = append(at.Keys, k)
	case "time":
		t, err := CompileTime(l)
		if err != nil {
			return err
		}
		at.Times = append(at.Times, t)
	case "clef":
		c, err := CompileClef(l)
		if err != nil {
			return err
		}
		at.Clefs = append(at.Clefs, c)
	default:
		return compileErr(UnknownForm, l.Head(), l, "expected attributes, key, time or clef")
	}
	return nil
}

// CompileKey compiles a key signature. The tonic form
//
//	(key <tonic> [<mode>] [:staff n])
//
// takes a tonic such as c, f#, fs, f-sharp, bb or b-flat and a mode that
// defaults to major. The explicit form is
//
//	(key :fifths n [:mode m] [:staff n])
func CompileKey(v sexpr.Value) (*ir.Key, error) {
	l, err := expectForm(v, "key")
	if err != nil {
		return nil, err
	}
	a, err := parseArgs(l, "fifths", "mode", "staff")
	if err != nil {
		return nil, err
	}
	staff, err := a.staff()
	if err != nil {
		return nil, err
	}

	var mode ir.Mode
	var modeAt sexpr.Value
	if m, ok := a.keywords["mode"]; ok {
		modeAt = m
	}
	if a.has("fifths") {
		if len(a.positional) > 0 {
			return nil, compileErr(InvalidForm, a.form, a.positional[0], "a tonic cannot be combined with :fifths")
		}
		fifths, err := a.intArg("fifths", a.keywords["fifths"])
		if err != nil {
			return nil, err
		}
		if modeAt != nil {
			if mode, err = a.mode(modeAt); err != nil {
				return nil, err
			}
		}
		return a.key(fifths, mode, staff, a.keywords["fifths"])
	}

	switch len(a.positional) {
	case 0:
		return nil, compileErr(MissingArgument, a.form, a.at(), "no tonic")
	case 1:
	case 2:
		if modeAt != nil {
			return nil, compileErr(InvalidForm, a.form, modeAt, "mode given twice")
		}
		modeAt = a.positional[1]
	default:
		return nil, compileErr(InvalidForm, a.form, a.positional[2], "too many arguments")
	}

	mode = ir.ModeMajor
	if modeAt != nil {
		if mode, err = a.mode(modeAt); err != nil {
			return nil, err
		}
	}
	offset, ok := modeOffsets[mode]
	if !ok {
		return nil, compileErr(UnknownMode, a.form, modeAt, "mode %s has no tonic", mode)
	}
	tonic, err := a.wordArg("tonic", a.positional[0])
	if err != nil {
		return nil, err
	}
	fifths, ok := tonicFifths(tonic)
	if !ok {
		return nil, compileErr(InvalidKey, a.form, a.positional[0], "unknown tonic %q", tonic)
	}
	return a.key(fifths+offset, mode, staff, a.positional[0])
}

func (a *formArgs) mode(v sexpr.Value) (ir.Mode, error) {
	name, err := a.wordArg("mode", v)
	if err != nil {
		return 0, err
	}
	m, perr := ir.ParseMode(strings.ToLower(name))
	if perr != nil {
		return 0, compileErr(UnknownMode, a.form, v, "unknown mode %q", name)
	}
	return m, nil
}

func (a *formArgs) key(fifths int, mode ir.Mode, staff *uint8, at sexpr.Value) (*ir.Key, error) {
	if fifths < -7 || fifths > 7 {
		return nil, compileErr(InvalidKey, a.form, at, "%d fifths is outside -7..7", fifths)
	}
	return &ir.Key{
		Number:  staff,
		Content: &ir.TraditionalKey{Fifths: int8(fifths), Mode: mode},
	}, nil
}

// tonicFifths returns the major key signature of a tonic name.
func tonicFifths(name string) (int, bool) {
	name = strings.ToLower(name)
	if name == "" {
		return 0, false
	}
	fifths, ok := naturalFifths[name[0]]
	if !ok {
		return 0, false
	}
	rest := name[1:]
	switch {
	case rest == "":
		return fifths, true
	case contains(sharpSuffixes, rest):
		return fifths + 7, true
	case contains(flatSuffixes, rest):
		return fifths - 7, true
	}
	return 0, false
}

// CompileTime compiles a time signature:
//
//	(time 3 4)
//	(time common) (time cut) (time senza-misura)
//	(time :beats "3+2" :beat-type 8 [:staff n])
func CompileTime(v sexpr.Value) (*ir.Time, error) {
	l, err := expectForm(v, "time")
	if err != nil {
		return nil, err
	}
	a, err := parseArgs(l, "beats", "beat-type", "staff")
	if err != nil {
		return nil, err
	}
	staff, err := a.staff()
	if err != nil {
		return nil, err
	}
	t := &ir.Time{Number: staff}

	var beats, beatType sexpr.Value
	switch {
	case a.has("beats") || a.has("beat-type"):
		if len(a.positional) > 0 {
			return nil, compileErr(InvalidForm, a.form, a.positional[0], "positional beats cannot be combined with :beats")
		}
		var ok bool
		if beats, ok = a.keywords["beats"]; !ok {
			return nil, compileErr(MissingArgument, a.form, a.at(), "no :beats")
		}
		if beatType, ok = a.keywords["beat-type"]; !ok {
			return nil, compileErr(MissingArgument, a.form, a.at(), "no :beat-type")
		}
	case len(a.positional) == 0:
		return nil, compileErr(MissingArgument, a.form, a.at(), "no time signature")
	case len(a.positional) == 1:
		name, _ := word(a.positional[0])
		switch name {
		case "common":
			t.Symbol = ir.TimeSymbolCommon
			t.Content = measured("4", "4")
		case "cut":
			t.Symbol = ir.TimeSymbolCut
			t.Content = measured("2", "2")
		case "senza-misura":
			t.Content = &ir.SenzaMisura{}
		default:
			return nil, compileErr(InvalidTime, a.form, a.positional[0], "expected common, cut, senza-misura or beats and beat-type")
		}
		return t, nil
	case len(a.positional) == 2:
		beats, beatType = a.positional[0], a.positional[1]
	default:
		return nil, compileErr(InvalidForm, a.form, a.positional[2], "too many arguments")
	}

	b, err := a.beats(beats)
	if err != nil {
		return nil, err
	}
	bt, err := a.beatType(beatType)
	if err != nil {
		return nil, err
	}
	t.Content = measured(b, bt)
	return t, nil
}

func measured(beats, beatType string) *ir.MeasuredTime {
	return &ir.MeasuredTime{Signatures: []ir.TimeSignature{{Beats: beats, BeatType: beatType}}}
}

// beats accepts a positive count or an additive count such as "3+2+2".
func (a *formArgs) beats(v sexpr.Value) (string, error) {
	if s, ok := v.(*sexpr.String); ok && strings.Contains(s.Value, "+") {
		parts := strings.Split(s.Value, "+")
		for i, p := range parts {
			n, ok := integerText(sexpr.Str(p))
			if !ok {
				return "", compileErr(InvalidTime, a.form, v, "beats %q is not a sum of positive integers", s.Value)
			}
			parts[i] = n
		}
		return strings.Join(parts, "+"), nil
	}
	n, ok := integerText(v)
	if !ok {
		return "", compileErr(InvalidTime, a.form, v, "beats must be a positive integer")
	}
	return n, nil
}

func (a *formArgs) beatType(v sexpr.Value) (string, error) {
	text, ok := integerText(v)
	if !ok {
		return "", compileErr(InvalidTime, a.form, v, "beat-type must be a positive integer")
	}
	n, _ := strconv.Atoi(text)
	if n > 1024 || n&(n-1) != 0 {
		return "", compileErr(InvalidTime, a.form, v, "beat-type %d is not a power of two up to 1024", n)
	}
	return text, nil
}

// CompileClef compiles a clef by name, such as (clef treble) or
// (clef bass-8vb :staff 2), or by sign:
//
//	(clef :sign g :line 2 [:octave-change -1] [:staff n])
//
// A named clef takes :line and :octave-change as overrides.
func CompileClef(v sexpr.Value) (*ir.Clef, error) {
	l, err := expectForm(v, "clef")
	if err != nil {
		return nil, err
	}
	a, err := parseArgs(l, "sign", "line", "octave-change", "staff")
	if err != nil {
		return nil, err
	}
	staff, err := a.staff()
	if err != nil {
		return nil, err
	}
	c := &ir.Clef{Number: staff}

	switch {
	case len(a.positional) > 1:
		return nil, compileErr(InvalidForm, a.form, a.positional[1], "too many arguments")
	case len(a.positional) == 1:
		if a.has("sign") {
			return nil, compileErr(InvalidForm, a.form, a.keywords["sign"], "a clef name cannot be combined with :sign")
		}
		name, err := a.wordArg("clef", a.positional[0])
		if err != nil {
			return nil, err
		}
		spec, ok := namedClefs[strings.ToLower(name)]
		if !ok {
			return nil, compileErr(InvalidClef, a.form, a.positional[0], "unknown clef %q", name)
		}
		c.Sign = spec.sign
		if spec.line != 0 {
			c.Line = ir.Int(spec.line)
		}
		if spec.octave != 0 {
			c.OctaveChange = ir.Int(spec.octave)
		}
	case a.has("sign"):
		sign, err := a.wordArg("sign", a.keywords["sign"])
		if err != nil {
			return nil, err
		}
		s, perr := ir.ParseClefSign(sign)
		if perr != nil {
			s, perr = ir.ParseClefSign(strings.ToUpper(sign))
		}
		if perr != nil {
			return nil, compileErr(InvalidClef, a.form, a.keywords["sign"], "unknown clef sign %q", sign)
		}
		c.Sign = s
	default:
		return nil, compileErr(MissingArgument, a.form, a.at(), "no clef name or :sign")
	}

	line, err := a.optionalInt("line")
	if err != nil {
		return nil, err
	}
	if line != nil {
		c.Line = line
	}
	octave, err := a.optionalInt("octave-change")
	if err != nil {
		return nil, err
	}
	if octave != nil {
		c.OctaveChange = octave
	}
	return c, nil
}
