package ir

// Controlled vocabularies. Each type below has exactly one table; the
// String method and the Parse function both read it, so the XML token
// written by the encoder is always one the decoder accepts.
//
// The zero value of every type means the attribute or element was absent.

// YesNo is the MusicXML boolean.
type YesNo int

// YesNo values.
const (
	Yes YesNo = iota + 1
	No
)

var yesNoVocab = newVocabulary("yes-no", map[YesNo]string{
	Yes: "yes",
	No:  "no",
})

func (v YesNo) String() string { return yesNoVocab.format(v) }

// ParseYesNo parses a yes-no token.
func ParseYesNo(s string) (YesNo, error) { return yesNoVocab.parse(s) }

// AboveBelow places a mark relative to the staff or note.
type AboveBelow int

// AboveBelow values.
const (
	Above AboveBelow = iota + 1
	Below
)

var aboveBelowVocab = newVocabulary("placement", map[AboveBelow]string{
	Above: "above",
	Below: "below",
})

func (v AboveBelow) String() string { return aboveBelowVocab.format(v) }

// ParseAboveBelow parses a placement token.
func ParseAboveBelow(s string) (AboveBelow, error) { return aboveBelowVocab.parse(s) }

// UpDown is a vertical direction.
type UpDown int

// UpDown values.
const (
	Up UpDown = iota + 1
	Down
)

var upDownVocab = newVocabulary("up-down", map[UpDown]string{
	Up:   "up",
	Down: "down",
})

func (v UpDown) String() string { return upDownVocab.format(v) }

// ParseUpDown parses a up-down token.
func ParseUpDown(s string) (UpDown, error) { return upDownVocab.parse(s) }

// OverUnder is the orientation of a slur or tie curve.
type OverUnder int

// OverUnder values.
const (
	Over OverUnder = iota + 1
	Under
)

var overUnderVocab = newVocabulary("orientation", map[OverUnder]string{
	Over:  "over",
	Under: "under",
})

func (v OverUnder) String() string { return overUnderVocab.format(v) }

// ParseOverUnder parses a orientation token.
func ParseOverUnder(s string) (OverUnder, error) { return overUnderVocab.parse(s) }

// StartStop marks the two ends of a spanner.
type StartStop int

// StartStop values.
const (
	Start StartStop = iota + 1
	Stop
)

var startStopVocab = newVocabulary("start-stop", map[StartStop]string{
	Start: "start",
	Stop:  "stop",
})

func (v StartStop) String() string { return startStopVocab.format(v) }

// ParseStartStop parses a start-stop token.
func ParseStartStop(s string) (StartStop, error) { return startStopVocab.parse(s) }

// StartStopContinue marks spanner ends and interruptions.
type StartStopContinue int

// StartStopContinue values.
const (
	StartStopContinueStart StartStopContinue = iota + 1
	StartStopContinueStop
	StartStopContinueContinue
)

var startStopContinueVocab = newVocabulary("start-stop-continue", map[StartStopContinue]string{
	StartStopContinueStart:    "start",
	StartStopContinueStop:     "stop",
	StartStopContinueContinue: "continue",
})

func (v StartStopContinue) String() string { return startStopContinueVocab.format(v) }

// ParseStartStopContinue parses a start-stop-continue token.
func ParseStartStopContinue(s string) (StartStopContinue, error) { return startStopContinueVocab.parse(s) }

// StartStopSingle is used by other-notation.
type StartStopSingle int

// StartStopSingle values.
const (
	StartStopSingleStart StartStopSingle = iota + 1
	StartStopSingleStop
	StartStopSingleSingle
)

var startStopSingleVocab = newVocabulary("start-stop-single", map[StartStopSingle]string{
	StartStopSingleStart:  "start",
	StartStopSingleStop:   "stop",
	StartStopSingleSingle: "single",
})

func (v StartStopSingle) String() string { return startStopSingleVocab.format(v) }

// ParseStartStopSingle parses a start-stop-single token.
func ParseStartStopSingle(s string) (StartStopSingle, error) { return startStopSingleVocab.parse(s) }

// StartStopDiscontinue is the type of an ending.
type StartStopDiscontinue int

// StartStopDiscontinue values.
const (
	StartStopDiscontinueStart StartStopDiscontinue = iota + 1
	StartStopDiscontinueStop
	StartStopDiscontinueDiscontinue
)

var startStopDiscontinueVocab = newVocabulary("start-stop-discontinue", map[StartStopDiscontinue]string{
	StartStopDiscontinueStart:       "start",
	StartStopDiscontinueStop:        "stop",
	StartStopDiscontinueDiscontinue: "discontinue",
})

func (v StartStopDiscontinue) String() string { return startStopDiscontinueVocab.format(v) }

// ParseStartStopDiscontinue parses a start-stop-discontinue token.
func ParseStartStopDiscontinue(s string) (StartStopDiscontinue, error) { return startStopDiscontinueVocab.parse(s) }

// TiedType is the type of a tied notation.
type TiedType int

// TiedType values.
const (
	TiedTypeStart TiedType = iota + 1
	TiedTypeStop
	TiedTypeContinue
	TiedTypeLetRing
)

var tiedTypeVocab = newVocabulary("tied-type", map[TiedType]string{
	TiedTypeStart:    "start",
	TiedTypeStop:     "stop",
	TiedTypeContinue: "continue",
	TiedTypeLetRing:  "let-ring",
})

func (v TiedType) String() string { return tiedTypeVocab.format(v) }

// ParseTiedType parses a tied-type token.
func ParseTiedType(s string) (TiedType, error) { return tiedTypeVocab.parse(s) }

// LineType is the stroke of a line.
type LineType int

// LineType values.
const (
	LineTypeSolid LineType = iota + 1
	LineTypeDashed
	LineTypeDotted
	LineTypeWavy
)

var lineTypeVocab = newVocabulary("line-type", map[LineType]string{
	LineTypeSolid:  "solid",
	LineTypeDashed: "dashed",
	LineTypeDotted: "dotted",
	LineTypeWavy:   "wavy",
})

func (v LineType) String() string { return lineTypeVocab.format(v) }

// ParseLineType parses a line-type token.
func ParseLineType(s string) (LineType, error) { return lineTypeVocab.parse(s) }

// LineShape distinguishes straight from curved tuplet brackets.
type LineShape int

// LineShape values.
const (
	LineShapeStraight LineShape = iota + 1
	LineShapeCurved
)

var lineShapeVocab = newVocabulary("line-shape", map[LineShape]string{
	LineShapeStraight: "straight",
	LineShapeCurved:   "curved",
})

func (v LineShape) String() string { return lineShapeVocab.format(v) }

// ParseLineShape parses a line-shape token.
func ParseLineShape(s string) (LineShape, error) { return lineShapeVocab.parse(s) }

// LineEnd is the hook at the end of a bracket.
type LineEnd int

// LineEnd values.
const (
	LineEndUp LineEnd = iota + 1
	LineEndDown
	LineEndBoth
	LineEndArrow
	LineEndNone
)

var lineEndVocab = newVocabulary("line-end", map[LineEnd]string{
	LineEndUp:    "up",
	LineEndDown:  "down",
	LineEndBoth:  "both",
	LineEndArrow: "arrow",
	LineEndNone:  "none",
})

func (v LineEnd) String() string { return lineEndVocab.format(v) }

// ParseLineEnd parses a line-end token.
func ParseLineEnd(s string) (LineEnd, error) { return lineEndVocab.parse(s) }

// LineLength sizes jazz articulations.
type LineLength int

// LineLength values.
const (
	LineLengthShort LineLength = iota + 1
	LineLengthMedium
	LineLengthLong
)

var lineLengthVocab = newVocabulary("line-length", map[LineLength]string{
	LineLengthShort:  "short",
	LineLengthMedium: "medium",
	LineLengthLong:   "long",
})

func (v LineLength) String() string { return lineLengthVocab.format(v) }

// ParseLineLength parses a line-length token.
func ParseLineLength(s string) (LineLength, error) { return lineLengthVocab.parse(s) }

// LeftCenterRight is a horizontal alignment.
type LeftCenterRight int

// LeftCenterRight values.
const (
	LeftCenterRightLeft LeftCenterRight = iota + 1
	LeftCenterRightCenter
	LeftCenterRightRight
)

var leftCenterRightVocab = newVocabulary("justify", map[LeftCenterRight]string{
	LeftCenterRightLeft:   "left",
	LeftCenterRightCenter: "center",
	LeftCenterRightRight:  "right",
})

func (v LeftCenterRight) String() string { return leftCenterRightVocab.format(v) }

// ParseLeftCenterRight parses a justify token.
func ParseLeftCenterRight(s string) (LeftCenterRight, error) { return leftCenterRightVocab.parse(s) }

// LeftRight names a hand or side.
type LeftRight int

// LeftRight values.
const (
	LeftRightLeft LeftRight = iota + 1
	LeftRightRight
)

var leftRightVocab = newVocabulary("left-right", map[LeftRight]string{
	LeftRightLeft:  "left",
	LeftRightRight: "right",
})

func (v LeftRight) String() string { return leftRightVocab.format(v) }

// ParseLeftRight parses a left-right token.
func ParseLeftRight(s string) (LeftRight, error) { return leftRightVocab.parse(s) }

// Valign is a vertical alignment.
type Valign int

// Valign values.
const (
	ValignTop Valign = iota + 1
	ValignMiddle
	ValignBottom
	ValignBaseline
)

var valignVocab = newVocabulary("valign", map[Valign]string{
	ValignTop:      "top",
	ValignMiddle:   "middle",
	ValignBottom:   "bottom",
	ValignBaseline: "baseline",
})

func (v Valign) String() string { return valignVocab.format(v) }

// ParseValign parses a valign token.
func ParseValign(s string) (Valign, error) { return valignVocab.parse(s) }

// FontStyle is normal or italic.
type FontStyle int

// FontStyle values.
const (
	FontStyleNormal FontStyle = iota + 1
	FontStyleItalic
)

var fontStyleVocab = newVocabulary("font-style", map[FontStyle]string{
	FontStyleNormal: "normal",
	FontStyleItalic: "italic",
})

func (v FontStyle) String() string { return fontStyleVocab.format(v) }

// ParseFontStyle parses a font-style token.
func ParseFontStyle(s string) (FontStyle, error) { return fontStyleVocab.parse(s) }

// FontWeight is normal or bold.
type FontWeight int

// FontWeight values.
const (
	FontWeightNormal FontWeight = iota + 1
	FontWeightBold
)

var fontWeightVocab = newVocabulary("font-weight", map[FontWeight]string{
	FontWeightNormal: "normal",
	FontWeightBold:   "bold",
})

func (v FontWeight) String() string { return fontWeightVocab.format(v) }

// ParseFontWeight parses a font-weight token.
func ParseFontWeight(s string) (FontWeight, error) { return fontWeightVocab.parse(s) }

// EnclosureShape is the frame drawn around text.
type EnclosureShape int

// EnclosureShape values.
const (
	EnclosureShapeRectangle EnclosureShape = iota + 1
	EnclosureShapeSquare
	EnclosureShapeOval
	EnclosureShapeCircle
	EnclosureShapeBracket
	EnclosureShapeInvertedBracket
	EnclosureShapeTriangle
	EnclosureShapeDiamond
	EnclosureShapePentagon
	EnclosureShapeHexagon
	EnclosureShapeHeptagon
	EnclosureShapeOctagon
	EnclosureShapeNonagon
	EnclosureShapeDecagon
	EnclosureShapeNone
)

var enclosureShapeVocab = newVocabulary("enclosure", map[EnclosureShape]string{
	EnclosureShapeRectangle:       "rectangle",
	EnclosureShapeSquare:          "square",
	EnclosureShapeOval:            "oval",
	EnclosureShapeCircle:          "circle",
	EnclosureShapeBracket:         "bracket",
	EnclosureShapeInvertedBracket: "inverted-bracket",
	EnclosureShapeTriangle:        "triangle",
	EnclosureShapeDiamond:         "diamond",
	EnclosureShapePentagon:        "pentagon",
	EnclosureShapeHexagon:         "hexagon",
	EnclosureShapeHeptagon:        "heptagon",
	EnclosureShapeOctagon:         "octagon",
	EnclosureShapeNonagon:         "nonagon",
	EnclosureShapeDecagon:         "decagon",
	EnclosureShapeNone:            "none",
})

func (v EnclosureShape) String() string { return enclosureShapeVocab.format(v) }

// ParseEnclosureShape parses a enclosure token.
func ParseEnclosureShape(s string) (EnclosureShape, error) { return enclosureShapeVocab.parse(s) }

// Step is a diatonic pitch name.
type Step int

// Step values.
const (
	StepA Step = iota + 1
	StepB
	StepC
	StepD
	StepE
	StepF
	StepG
)

var stepVocab = newVocabulary("step", map[Step]string{
	StepA: "A",
	StepB: "B",
	StepC: "C",
	StepD: "D",
	StepE: "E",
	StepF: "F",
	StepG: "G",
})

func (v Step) String() string { return stepVocab.format(v) }

// ParseStep parses a step token.
func ParseStep(s string) (Step, error) { return stepVocab.parse(s) }

// NoteTypeValue is the graphic duration of a note.
type NoteTypeValue int

// NoteTypeValue values.
const (
	NoteType1024th NoteTypeValue = iota + 1
	NoteType512th
	NoteType256th
	NoteType128th
	NoteType64th
	NoteType32nd
	NoteType16th
	NoteTypeEighth
	NoteTypeQuarter
	NoteTypeHalf
	NoteTypeWhole
	NoteTypeBreve
	NoteTypeLong
	NoteTypeMaxima
)

var noteTypeValueVocab = newVocabulary("note-type-value", map[NoteTypeValue]string{
	NoteType1024th:  "1024th",
	NoteType512th:   "512th",
	NoteType256th:   "256th",
	NoteType128th:   "128th",
	NoteType64th:    "64th",
	NoteType32nd:    "32nd",
	NoteType16th:    "16th",
	NoteTypeEighth:  "eighth",
	NoteTypeQuarter: "quarter",
	NoteTypeHalf:    "half",
	NoteTypeWhole:   "whole",
	NoteTypeBreve:   "breve",
	NoteTypeLong:    "long",
	NoteTypeMaxima:  "maxima",
})

func (v NoteTypeValue) String() string { return noteTypeValueVocab.format(v) }

// ParseNoteTypeValue parses a note-type-value token.
func ParseNoteTypeValue(s string) (NoteTypeValue, error) { return noteTypeValueVocab.parse(s) }

// SymbolSize is the size of a note or clef symbol.
type SymbolSize int

// SymbolSize values.
const (
	SymbolSizeFull SymbolSize = iota + 1
	SymbolSizeCue
	SymbolSizeGraceCue
	SymbolSizeLarge
)

var symbolSizeVocab = newVocabulary("size", map[SymbolSize]string{
	SymbolSizeFull:     "full",
	SymbolSizeCue:      "cue",
	SymbolSizeGraceCue: "grace-cue",
	SymbolSizeLarge:    "large",
})

func (v SymbolSize) String() string { return symbolSizeVocab.format(v) }

// ParseSymbolSize parses a size token.
func ParseSymbolSize(s string) (SymbolSize, error) { return symbolSizeVocab.parse(s) }

// AccidentalValue is an accidental glyph.
type AccidentalValue int

// AccidentalValue values.
const (
	AccidentalSharp AccidentalValue = iota + 1
	AccidentalNatural
	AccidentalFlat
	AccidentalDoubleSharp
	AccidentalSharpSharp
	AccidentalFlatFlat
	AccidentalNaturalSharp
	AccidentalNaturalFlat
	AccidentalQuarterFlat
	AccidentalQuarterSharp
	AccidentalThreeQuartersFlat
	AccidentalThreeQuartersSharp
	AccidentalSharpDown
	AccidentalSharpUp
	AccidentalNaturalDown
	AccidentalNaturalUp
	AccidentalFlatDown
	AccidentalFlatUp
	AccidentalDoubleSharpDown
	AccidentalDoubleSharpUp
	AccidentalFlatFlatDown
	AccidentalFlatFlatUp
	AccidentalArrowDown
	AccidentalArrowUp
	AccidentalTripleSharp
	AccidentalTripleFlat
	AccidentalSlashQuarterSharp
	AccidentalSlashSharp
	AccidentalSlashFlat
	AccidentalDoubleSlashFlat
	AccidentalSharp1
	AccidentalSharp2
	AccidentalSharp3
	AccidentalSharp5
	AccidentalFlat1
	AccidentalFlat2
	AccidentalFlat3
	AccidentalFlat4
	AccidentalSori
	AccidentalKoron
	AccidentalOther
)

var accidentalValueVocab = newVocabulary("accidental-value", map[AccidentalValue]string{
	AccidentalSharp:              "sharp",
	AccidentalNatural:            "natural",
	AccidentalFlat:               "flat",
	AccidentalDoubleSharp:        "double-sharp",
	AccidentalSharpSharp:         "sharp-sharp",
	AccidentalFlatFlat:           "flat-flat",
	AccidentalNaturalSharp:       "natural-sharp",
	AccidentalNaturalFlat:        "natural-flat",
	AccidentalQuarterFlat:        "quarter-flat",
	AccidentalQuarterSharp:       "quarter-sharp",
	AccidentalThreeQuartersFlat:  "three-quarters-flat",
	AccidentalThreeQuartersSharp: "three-quarters-sharp",
	AccidentalSharpDown:          "sharp-down",
	AccidentalSharpUp:            "sharp-up",
	AccidentalNaturalDown:        "natural-down",
	AccidentalNaturalUp:          "natural-up",
	AccidentalFlatDown:           "flat-down",
	AccidentalFlatUp:             "flat-up",
	AccidentalDoubleSharpDown:    "double-sharp-down",
	AccidentalDoubleSharpUp:      "double-sharp-up",
	AccidentalFlatFlatDown:       "flat-flat-down",
	AccidentalFlatFlatUp:         "flat-flat-up",
	AccidentalArrowDown:          "arrow-down",
	AccidentalArrowUp:            "arrow-up",
	AccidentalTripleSharp:        "triple-sharp",
	AccidentalTripleFlat:         "triple-flat",
	AccidentalSlashQuarterSharp:  "slash-quarter-sharp",
	AccidentalSlashSharp:         "slash-sharp",
	AccidentalSlashFlat:          "slash-flat",
	AccidentalDoubleSlashFlat:    "double-slash-flat",
	AccidentalSharp1:             "sharp-1",
	AccidentalSharp2:             "sharp-2",
	AccidentalSharp3:             "sharp-3",
	AccidentalSharp5:             "sharp-5",
	AccidentalFlat1:              "flat-1",
	AccidentalFlat2:              "flat-2",
	AccidentalFlat3:              "flat-3",
	AccidentalFlat4:              "flat-4",
	AccidentalSori:               "sori",
	AccidentalKoron:              "koron",
	AccidentalOther:              "other",
})

func (v AccidentalValue) String() string { return accidentalValueVocab.format(v) }

// ParseAccidentalValue parses a accidental-value token.
func ParseAccidentalValue(s string) (AccidentalValue, error) { return accidentalValueVocab.parse(s) }

// StemValue is a stem direction.
type StemValue int

// StemValue values.
const (
	StemDown StemValue = iota + 1
	StemUp
	StemDouble
	StemNone
)

var stemValueVocab = newVocabulary("stem-value", map[StemValue]string{
	StemDown:   "down",
	StemUp:     "up",
	StemDouble: "double",
	StemNone:   "none",
})

func (v StemValue) String() string { return stemValueVocab.format(v) }

// ParseStemValue parses a stem-value token.
func ParseStemValue(s string) (StemValue, error) { return stemValueVocab.parse(s) }

// NoteheadValue is a notehead shape.
type NoteheadValue int

// NoteheadValue values.
const (
	NoteheadSlash NoteheadValue = iota + 1
	NoteheadTriangle
	NoteheadDiamond
	NoteheadSquare
	NoteheadCross
	NoteheadX
	NoteheadCircleX
	NoteheadInvertedTriangle
	NoteheadArrowDown
	NoteheadArrowUp
	NoteheadCircled
	NoteheadSlashed
	NoteheadBackSlashed
	NoteheadNormal
	NoteheadCluster
	NoteheadCircleDot
	NoteheadLeftTriangle
	NoteheadRectangle
	NoteheadNone
	NoteheadDo
	NoteheadRe
	NoteheadMi
	NoteheadFa
	NoteheadFaUp
	NoteheadSo
	NoteheadLa
	NoteheadTi
	NoteheadOther
)

var noteheadValueVocab = newVocabulary("notehead-value", map[NoteheadValue]string{
	NoteheadSlash:            "slash",
	NoteheadTriangle:         "triangle",
	NoteheadDiamond:          "diamond",
	NoteheadSquare:           "square",
	NoteheadCross:            "cross",
	NoteheadX:                "x",
	NoteheadCircleX:          "circle-x",
	NoteheadInvertedTriangle: "inverted triangle",
	NoteheadArrowDown:        "arrow down",
	NoteheadArrowUp:          "arrow up",
	NoteheadCircled:          "circled",
	NoteheadSlashed:          "slashed",
	NoteheadBackSlashed:      "back slashed",
	NoteheadNormal:           "normal",
	NoteheadCluster:          "cluster",
	NoteheadCircleDot:        "circle dot",
	NoteheadLeftTriangle:     "left triangle",
	NoteheadRectangle:        "rectangle",
	NoteheadNone:             "none",
	NoteheadDo:               "do",
	NoteheadRe:               "re",
	NoteheadMi:               "mi",
	NoteheadFa:               "fa",
	NoteheadFaUp:             "fa up",
	NoteheadSo:               "so",
	NoteheadLa:               "la",
	NoteheadTi:               "ti",
	NoteheadOther:            "other",
})

func (v NoteheadValue) String() string { return noteheadValueVocab.format(v) }

// ParseNoteheadValue parses a notehead-value token.
func ParseNoteheadValue(s string) (NoteheadValue, error) { return noteheadValueVocab.parse(s) }

// BeamValue is the role of a note within a beam.
type BeamValue int

// BeamValue values.
const (
	BeamBegin BeamValue = iota + 1
	BeamContinue
	BeamEnd
	BeamForwardHook
	BeamBackwardHook
)

var beamValueVocab = newVocabulary("beam-value", map[BeamValue]string{
	BeamBegin:        "begin",
	BeamContinue:     "continue",
	BeamEnd:          "end",
	BeamForwardHook:  "forward hook",
	BeamBackwardHook: "backward hook",
})

func (v BeamValue) String() string { return beamValueVocab.format(v) }

// ParseBeamValue parses a beam-value token.
func ParseBeamValue(s string) (BeamValue, error) { return beamValueVocab.parse(s) }

// Fan describes feathered beams.
type Fan int

// Fan values.
const (
	FanAccel Fan = iota + 1
	FanRit
	FanNone
)

var fanVocab = newVocabulary("fan", map[Fan]string{
	FanAccel: "accel",
	FanRit:   "rit",
	FanNone:  "none",
})

func (v Fan) String() string { return fanVocab.format(v) }

// ParseFan parses a fan token.
func ParseFan(s string) (Fan, error) { return fanVocab.parse(s) }

// Syllabic is the position of a lyric syllable within its word.
type Syllabic int

// Syllabic values.
const (
	SyllabicSingle Syllabic = iota + 1
	SyllabicBegin
	SyllabicEnd
	SyllabicMiddle
)

var syllabicVocab = newVocabulary("syllabic", map[Syllabic]string{
	SyllabicSingle: "single",
	SyllabicBegin:  "begin",
	SyllabicEnd:    "end",
	SyllabicMiddle: "middle",
})

func (v Syllabic) String() string { return syllabicVocab.format(v) }

// ParseSyllabic parses a syllabic token.
func ParseSyllabic(s string) (Syllabic, error) { return syllabicVocab.parse(s) }

// UprightInverted is the orientation of a fermata.
type UprightInverted int

// UprightInverted values.
const (
	Upright UprightInverted = iota + 1
	Inverted
)

var uprightInvertedVocab = newVocabulary("fermata-type", map[UprightInverted]string{
	Upright:  "upright",
	Inverted: "inverted",
})

func (v UprightInverted) String() string { return uprightInvertedVocab.format(v) }

// ParseUprightInverted parses a fermata-type token.
func ParseUprightInverted(s string) (UprightInverted, error) { return uprightInvertedVocab.parse(s) }

// FermataShape is the drawn shape of a fermata. The zero value is the empty
// element, which MusicXML reads as the normal shape.
type FermataShape int

// FermataShape values.
const (
	FermataShapeNormal FermataShape = iota + 1
	FermataShapeAngled
	FermataShapeSquare
	FermataShapeDoubleAngled
	FermataShapeDoubleSquare
	FermataShapeDoubleDot
	FermataShapeHalfCurve
	FermataShapeCurlew
)

var fermataShapeVocab = newVocabulary("fermata-shape", map[FermataShape]string{
	FermataShapeNormal:       "normal",
	FermataShapeAngled:       "angled",
	FermataShapeSquare:       "square",
	FermataShapeDoubleAngled: "double-angled",
	FermataShapeDoubleSquare: "double-square",
	FermataShapeDoubleDot:    "double-dot",
	FermataShapeHalfCurve:    "half-curve",
	FermataShapeCurlew:       "curlew",
})

func (v FermataShape) String() string { return fermataShapeVocab.format(v) }

// ParseFermataShape parses a fermata-shape token.
func ParseFermataShape(s string) (FermataShape, error) { return fermataShapeVocab.parse(s) }

// BarStyle is the appearance of a barline.
type BarStyle int

// BarStyle values.
const (
	BarStyleRegular BarStyle = iota + 1
	BarStyleDotted
	BarStyleDashed
	BarStyleHeavy
	BarStyleLightLight
	BarStyleLightHeavy
	BarStyleHeavyLight
	BarStyleHeavyHeavy
	BarStyleTick
	BarStyleShort
	BarStyleNone
)

var barStyleVocab = newVocabulary("bar-style", map[BarStyle]string{
	BarStyleRegular:    "regular",
	BarStyleDotted:     "dotted",
	BarStyleDashed:     "dashed",
	BarStyleHeavy:      "heavy",
	BarStyleLightLight: "light-light",
	BarStyleLightHeavy: "light-heavy",
	BarStyleHeavyLight: "heavy-light",
	BarStyleHeavyHeavy: "heavy-heavy",
	BarStyleTick:       "tick",
	BarStyleShort:      "short",
	BarStyleNone:       "none",
})

func (v BarStyle) String() string { return barStyleVocab.format(v) }

// ParseBarStyle parses a bar-style token.
func ParseBarStyle(s string) (BarStyle, error) { return barStyleVocab.parse(s) }

// RightLeftMiddle is the location of a barline in its measure.
type RightLeftMiddle int

// RightLeftMiddle values.
const (
	LocationRight RightLeftMiddle = iota + 1
	LocationLeft
	LocationMiddle
)

var rightLeftMiddleVocab = newVocabulary("location", map[RightLeftMiddle]string{
	LocationRight:  "right",
	LocationLeft:   "left",
	LocationMiddle: "middle",
})

func (v RightLeftMiddle) String() string { return rightLeftMiddleVocab.format(v) }

// ParseRightLeftMiddle parses a location token.
func ParseRightLeftMiddle(s string) (RightLeftMiddle, error) { return rightLeftMiddleVocab.parse(s) }

// BackwardForward is the direction of a repeat sign.
type BackwardForward int

// BackwardForward values.
const (
	RepeatBackward BackwardForward = iota + 1
	RepeatForward
)

var backwardForwardVocab = newVocabulary("direction", map[BackwardForward]string{
	RepeatBackward: "backward",
	RepeatForward:  "forward",
})

func (v BackwardForward) String() string { return backwardForwardVocab.format(v) }

// ParseBackwardForward parses a direction token.
func ParseBackwardForward(s string) (BackwardForward, error) { return backwardForwardVocab.parse(s) }

// Winged describes the wings drawn on a repeat sign.
type Winged int

// Winged values.
const (
	WingedNone Winged = iota + 1
	WingedStraight
	WingedCurved
	WingedDoubleStraight
	WingedDoubleCurved
)

var wingedVocab = newVocabulary("winged", map[Winged]string{
	WingedNone:           "none",
	WingedStraight:       "straight",
	WingedCurved:         "curved",
	WingedDoubleStraight: "double-straight",
	WingedDoubleCurved:   "double-curved",
})

func (v Winged) String() string { return wingedVocab.format(v) }

// ParseWinged parses a winged token.
func ParseWinged(s string) (Winged, error) { return wingedVocab.parse(s) }

// ClefSign is the symbol of a clef.
type ClefSign int

// ClefSign values.
const (
	ClefG ClefSign = iota + 1
	ClefF
	ClefC
	ClefPercussion
	ClefTab
	ClefJianpu
	ClefNone
)

var clefSignVocab = newVocabulary("sign", map[ClefSign]string{
	ClefG:          "G",
	ClefF:          "F",
	ClefC:          "C",
	ClefPercussion: "percussion",
	ClefTab:        "TAB",
	ClefJianpu:     "jianpu",
	ClefNone:       "none",
})

func (v ClefSign) String() string { return clefSignVocab.format(v) }

// ParseClefSign parses a sign token.
func ParseClefSign(s string) (ClefSign, error) { return clefSignVocab.parse(s) }

// Mode is the mode of a traditional key.
type Mode int

// Mode values.
const (
	ModeMajor Mode = iota + 1
	ModeMinor
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeAeolian
	ModeIonian
	ModeLocrian
	ModeNone
)

var modeVocab = newVocabulary("mode", map[Mode]string{
	ModeMajor:      "major",
	ModeMinor:      "minor",
	ModeDorian:     "dorian",
	ModePhrygian:   "phrygian",
	ModeLydian:     "lydian",
	ModeMixolydian: "mixolydian",
	ModeAeolian:    "aeolian",
	ModeIonian:     "ionian",
	ModeLocrian:    "locrian",
	ModeNone:       "none",
})

func (v Mode) String() string { return modeVocab.format(v) }

// ParseMode parses a mode token.
func ParseMode(s string) (Mode, error) { return modeVocab.parse(s) }

// TimeSymbol is how a time signature is drawn.
type TimeSymbol int

// TimeSymbol values.
const (
	TimeSymbolCommon TimeSymbol = iota + 1
	TimeSymbolCut
	TimeSymbolSingleNumber
	TimeSymbolNote
	TimeSymbolDottedNote
	TimeSymbolNormal
)

var timeSymbolVocab = newVocabulary("time-symbol", map[TimeSymbol]string{
	TimeSymbolCommon:       "common",
	TimeSymbolCut:          "cut",
	TimeSymbolSingleNumber: "single-number",
	TimeSymbolNote:         "note",
	TimeSymbolDottedNote:   "dotted-note",
	TimeSymbolNormal:       "normal",
})

func (v TimeSymbol) String() string { return timeSymbolVocab.format(v) }

// ParseTimeSymbol parses a time-symbol token.
func ParseTimeSymbol(s string) (TimeSymbol, error) { return timeSymbolVocab.parse(s) }

// TimeSeparator is the mark between beats and beat-type.
type TimeSeparator int

// TimeSeparator values.
const (
	TimeSeparatorNone TimeSeparator = iota + 1
	TimeSeparatorHorizontal
	TimeSeparatorDiagonal
	TimeSeparatorVertical
	TimeSeparatorAdjacent
)

var timeSeparatorVocab = newVocabulary("time-separator", map[TimeSeparator]string{
	TimeSeparatorNone:       "none",
	TimeSeparatorHorizontal: "horizontal",
	TimeSeparatorDiagonal:   "diagonal",
	TimeSeparatorVertical:   "vertical",
	TimeSeparatorAdjacent:   "adjacent",
})

func (v TimeSeparator) String() string { return timeSeparatorVocab.format(v) }

// ParseTimeSeparator parses a time-separator token.
func ParseTimeSeparator(s string) (TimeSeparator, error) { return timeSeparatorVocab.parse(s) }

// WedgeType is the role of a hairpin element.
type WedgeType int

// WedgeType values.
const (
	WedgeCrescendo WedgeType = iota + 1
	WedgeDiminuendo
	WedgeStop
	WedgeContinue
)

var wedgeTypeVocab = newVocabulary("wedge-type", map[WedgeType]string{
	WedgeCrescendo:  "crescendo",
	WedgeDiminuendo: "diminuendo",
	WedgeStop:       "stop",
	WedgeContinue:   "continue",
})

func (v WedgeType) String() string { return wedgeTypeVocab.format(v) }

// ParseWedgeType parses a wedge-type token.
func ParseWedgeType(s string) (WedgeType, error) { return wedgeTypeVocab.parse(s) }

// PedalType is the role of a pedal mark.
type PedalType int

// PedalType values.
const (
	PedalStart PedalType = iota + 1
	PedalStop
	PedalSostenuto
	PedalChange
	PedalContinue
	PedalDiscontinue
	PedalResume
)

var pedalTypeVocab = newVocabulary("pedal-type", map[PedalType]string{
	PedalStart:       "start",
	PedalStop:        "stop",
	PedalSostenuto:   "sostenuto",
	PedalChange:      "change",
	PedalContinue:    "continue",
	PedalDiscontinue: "discontinue",
	PedalResume:      "resume",
})

func (v PedalType) String() string { return pedalTypeVocab.format(v) }

// ParsePedalType parses a pedal-type token.
func ParsePedalType(s string) (PedalType, error) { return pedalTypeVocab.parse(s) }

// OctaveShiftType is the role of an octave-shift element.
type OctaveShiftType int

// OctaveShiftType values.
const (
	OctaveShiftUp OctaveShiftType = iota + 1
	OctaveShiftDown
	OctaveShiftStop
	OctaveShiftContinue
)

var octaveShiftTypeVocab = newVocabulary("octave-shift-type", map[OctaveShiftType]string{
	OctaveShiftUp:       "up",
	OctaveShiftDown:     "down",
	OctaveShiftStop:     "stop",
	OctaveShiftContinue: "continue",
})

func (v OctaveShiftType) String() string { return octaveShiftTypeVocab.format(v) }

// ParseOctaveShiftType parses a octave-shift-type token.
func ParseOctaveShiftType(s string) (OctaveShiftType, error) { return octaveShiftTypeVocab.parse(s) }

// GroupSymbolValue is the symbol joining staves of a part group.
type GroupSymbolValue int

// GroupSymbolValue values.
const (
	GroupSymbolNone GroupSymbolValue = iota + 1
	GroupSymbolBrace
	GroupSymbolLine
	GroupSymbolBracket
	GroupSymbolSquare
)

var groupSymbolValueVocab = newVocabulary("group-symbol", map[GroupSymbolValue]string{
	GroupSymbolNone:    "none",
	GroupSymbolBrace:   "brace",
	GroupSymbolLine:    "line",
	GroupSymbolBracket: "bracket",
	GroupSymbolSquare:  "square",
})

func (v GroupSymbolValue) String() string { return groupSymbolValueVocab.format(v) }

// ParseGroupSymbolValue parses a group-symbol token.
func ParseGroupSymbolValue(s string) (GroupSymbolValue, error) { return groupSymbolValueVocab.parse(s) }

// GroupBarlineValue says whether barlines connect across a group.
type GroupBarlineValue int

// GroupBarlineValue values.
const (
	GroupBarlineYes GroupBarlineValue = iota + 1
	GroupBarlineNo
	GroupBarlineMensurstrich
)

var groupBarlineValueVocab = newVocabulary("group-barline", map[GroupBarlineValue]string{
	GroupBarlineYes:          "yes",
	GroupBarlineNo:           "no",
	GroupBarlineMensurstrich: "Mensurstrich",
})

func (v GroupBarlineValue) String() string { return groupBarlineValueVocab.format(v) }

// ParseGroupBarlineValue parses a group-barline token.
func ParseGroupBarlineValue(s string) (GroupBarlineValue, error) { return groupBarlineValueVocab.parse(s) }

// ShowTuplet controls which tuplet numbers or types are displayed.
type ShowTuplet int

// ShowTuplet values.
const (
	ShowTupletActual ShowTuplet = iota + 1
	ShowTupletBoth
	ShowTupletNone
)

var showTupletVocab = newVocabulary("show-tuplet", map[ShowTuplet]string{
	ShowTupletActual: "actual",
	ShowTupletBoth:   "both",
	ShowTupletNone:   "none",
})

func (v ShowTuplet) String() string { return showTupletVocab.format(v) }

// ParseShowTuplet parses a show-tuplet token.
func ParseShowTuplet(s string) (ShowTuplet, error) { return showTupletVocab.parse(s) }

// TremoloType distinguishes single-note tremolos from two-note and unmeasured ones.
type TremoloType int

// TremoloType values.
const (
	TremoloTypeStart TremoloType = iota + 1
	TremoloTypeStop
	TremoloTypeSingle
	TremoloTypeUnmeasured
)

var tremoloTypeVocab = newVocabulary("tremolo-type", map[TremoloType]string{
	TremoloTypeStart:      "start",
	TremoloTypeStop:       "stop",
	TremoloTypeSingle:     "single",
	TremoloTypeUnmeasured: "unmeasured",
})

func (v TremoloType) String() string { return tremoloTypeVocab.format(v) }

// ParseTremoloType parses a tremolo-type token.
func ParseTremoloType(s string) (TremoloType, error) { return tremoloTypeVocab.parse(s) }

// TrillStep is the interval of a trill.
type TrillStep int

// TrillStep values.
const (
	TrillStepWhole TrillStep = iota + 1
	TrillStepHalf
	TrillStepUnison
)

var trillStepVocab = newVocabulary("trill-step", map[TrillStep]string{
	TrillStepWhole:  "whole",
	TrillStepHalf:   "half",
	TrillStepUnison: "unison",
})

func (v TrillStep) String() string { return trillStepVocab.format(v) }

// ParseTrillStep parses a trill-step token.
func ParseTrillStep(s string) (TrillStep, error) { return trillStepVocab.parse(s) }

// StartNote is the first note of a trill.
type StartNote int

// StartNote values.
const (
	StartNoteUpper StartNote = iota + 1
	StartNoteMain
	StartNoteBelow
)

var startNoteVocab = newVocabulary("start-note", map[StartNote]string{
	StartNoteUpper: "upper",
	StartNoteMain:  "main",
	StartNoteBelow: "below",
})

func (v StartNote) String() string { return startNoteVocab.format(v) }

// ParseStartNote parses a start-note token.
func ParseStartNote(s string) (StartNote, error) { return startNoteVocab.parse(s) }

// TwoNoteTurn is the ending of a trill.
type TwoNoteTurn int

// TwoNoteTurn values.
const (
	TwoNoteTurnWhole TwoNoteTurn = iota + 1
	TwoNoteTurnHalf
	TwoNoteTurnNone
)

var twoNoteTurnVocab = newVocabulary("two-note-turn", map[TwoNoteTurn]string{
	TwoNoteTurnWhole: "whole",
	TwoNoteTurnHalf:  "half",
	TwoNoteTurnNone:  "none",
})

func (v TwoNoteTurn) String() string { return twoNoteTurnVocab.format(v) }

// ParseTwoNoteTurn parses a two-note-turn token.
func ParseTwoNoteTurn(s string) (TwoNoteTurn, error) { return twoNoteTurnVocab.parse(s) }

// TopBottom is the end a non-arpeggiate bracket applies to.
type TopBottom int

// TopBottom values.
const (
	TopBottomTop TopBottom = iota + 1
	TopBottomBottom
)

var topBottomVocab = newVocabulary("top-bottom", map[TopBottom]string{
	TopBottomTop:    "top",
	TopBottomBottom: "bottom",
})

func (v TopBottom) String() string { return topBottomVocab.format(v) }

// ParseTopBottom parses a top-bottom token.
func ParseTopBottom(s string) (TopBottom, error) { return topBottomVocab.parse(s) }

// BreathMarkValue is the glyph of a breath mark. The zero value is the empty
// element.
type BreathMarkValue int

// BreathMarkValue values.
const (
	BreathMarkComma BreathMarkValue = iota + 1
	BreathMarkTick
	BreathMarkUpbow
	BreathMarkSalzedo
)

var breathMarkValueVocab = newVocabulary("breath-mark-value", map[BreathMarkValue]string{
	BreathMarkComma:   "comma",
	BreathMarkTick:    "tick",
	BreathMarkUpbow:   "upbow",
	BreathMarkSalzedo: "salzedo",
})

func (v BreathMarkValue) String() string { return breathMarkValueVocab.format(v) }

// ParseBreathMarkValue parses a breath-mark-value token.
func ParseBreathMarkValue(s string) (BreathMarkValue, error) { return breathMarkValueVocab.parse(s) }

// CaesuraValue is the glyph of a caesura. The zero value is the empty element.
type CaesuraValue int

// CaesuraValue values.
const (
	CaesuraNormal CaesuraValue = iota + 1
	CaesuraThick
	CaesuraShort
	CaesuraCurved
	CaesuraSingle
)

var caesuraValueVocab = newVocabulary("caesura-value", map[CaesuraValue]string{
	CaesuraNormal: "normal",
	CaesuraThick:  "thick",
	CaesuraShort:  "short",
	CaesuraCurved: "curved",
	CaesuraSingle: "single",
})

func (v CaesuraValue) String() string { return caesuraValueVocab.format(v) }

// ParseCaesuraValue parses a caesura-value token.
func ParseCaesuraValue(s string) (CaesuraValue, error) { return caesuraValueVocab.parse(s) }

// NoteSizeType names the note class an appearance size applies to.
type NoteSizeType int

// NoteSizeType values.
const (
	NoteSizeCue NoteSizeType = iota + 1
	NoteSizeGrace
	NoteSizeGraceCue
	NoteSizeLarge
)

var noteSizeTypeVocab = newVocabulary("note-size-type", map[NoteSizeType]string{
	NoteSizeCue:      "cue",
	NoteSizeGrace:    "grace",
	NoteSizeGraceCue: "grace-cue",
	NoteSizeLarge:    "large",
})

func (v NoteSizeType) String() string { return noteSizeTypeVocab.format(v) }

// ParseNoteSizeType parses a note-size-type token.
func ParseNoteSizeType(s string) (NoteSizeType, error) { return noteSizeTypeVocab.parse(s) }

// MarginType selects the pages page-margins apply to.
type MarginType int

// MarginType values.
const (
	MarginsOdd MarginType = iota + 1
	MarginsEven
	MarginsBoth
)

var marginTypeVocab = newVocabulary("margin-type", map[MarginType]string{
	MarginsOdd:  "odd",
	MarginsEven: "even",
	MarginsBoth: "both",
})

func (v MarginType) String() string { return marginTypeVocab.format(v) }

// ParseMarginType parses a margin-type token.
func ParseMarginType(s string) (MarginType, error) { return marginTypeVocab.parse(s) }

// StaffDivideSymbol is the arrow of a staff division.
type StaffDivideSymbol int

// StaffDivideSymbol values.
const (
	StaffDivideDown StaffDivideSymbol = iota + 1
	StaffDivideUp
	StaffDivideUpDown
)

var staffDivideSymbolVocab = newVocabulary("staff-divide-symbol", map[StaffDivideSymbol]string{
	StaffDivideDown:   "down",
	StaffDivideUp:     "up",
	StaffDivideUpDown: "up-down",
})

func (v StaffDivideSymbol) String() string { return staffDivideSymbolVocab.format(v) }

// ParseStaffDivideSymbol parses a staff-divide-symbol token.
func ParseStaffDivideSymbol(s string) (StaffDivideSymbol, error) { return staffDivideSymbolVocab.parse(s) }

// OnOff is the state of a string mute.
type OnOff int

// OnOff values.
const (
	On OnOff = iota + 1
	Off
)

var onOffVocab = newVocabulary("on-off", map[OnOff]string{
	On:  "on",
	Off: "off",
})

func (v OnOff) String() string { return onOffVocab.format(v) }

// ParseOnOff parses a on-off token.
func ParseOnOff(s string) (OnOff, error) { return onOffVocab.parse(s) }

// HoleClosedValue says how far a wind hole is covered.
type HoleClosedValue int

// HoleClosedValue values.
const (
	HoleClosedYes HoleClosedValue = iota + 1
	HoleClosedNo
	HoleClosedHalf
)

var holeClosedValueVocab = newVocabulary("hole-closed-value", map[HoleClosedValue]string{
	HoleClosedYes:  "yes",
	HoleClosedNo:   "no",
	HoleClosedHalf: "half",
})

func (v HoleClosedValue) String() string { return holeClosedValueVocab.format(v) }

// ParseHoleClosedValue parses a hole-closed-value token.
func ParseHoleClosedValue(s string) (HoleClosedValue, error) { return holeClosedValueVocab.parse(s) }

// HoleClosedLocation names the covered part of a half-closed hole.
type HoleClosedLocation int

// HoleClosedLocation values.
const (
	HoleLocationRight HoleClosedLocation = iota + 1
	HoleLocationBottom
	HoleLocationLeft
	HoleLocationTop
)

var holeClosedLocationVocab = newVocabulary("hole-closed-location", map[HoleClosedLocation]string{
	HoleLocationRight:  "right",
	HoleLocationBottom: "bottom",
	HoleLocationLeft:   "left",
	HoleLocationTop:    "top",
})

func (v HoleClosedLocation) String() string { return holeClosedLocationVocab.format(v) }

// ParseHoleClosedLocation parses a hole-closed-location token.
func ParseHoleClosedLocation(s string) (HoleClosedLocation, error) { return holeClosedLocationVocab.parse(s) }

// HandbellValue is a handbell technique.
type HandbellValue int

// HandbellValue values.
const (
	HandbellBelltree HandbellValue = iota + 1
	HandbellDamp
	HandbellEcho
	HandbellGyro
	HandbellHandMartellato
	HandbellMalletLift
	HandbellMalletTable
	HandbellMartellato
	HandbellMartellatoLift
	HandbellMutedMartellato
	HandbellPluckLift
	HandbellSwing
)

var handbellValueVocab = newVocabulary("handbell-value", map[HandbellValue]string{
	HandbellBelltree:        "belltree",
	HandbellDamp:            "damp",
	HandbellEcho:            "echo",
	HandbellGyro:            "gyro",
	HandbellHandMartellato:  "hand martellato",
	HandbellMalletLift:      "mallet lift",
	HandbellMalletTable:     "mallet table",
	HandbellMartellato:      "martellato",
	HandbellMartellatoLift:  "martellato lift",
	HandbellMutedMartellato: "muted martellato",
	HandbellPluckLift:       "pluck lift",
	HandbellSwing:           "swing",
})

func (v HandbellValue) String() string { return handbellValueVocab.format(v) }

// ParseHandbellValue parses a handbell-value token.
func ParseHandbellValue(s string) (HandbellValue, error) { return handbellValueVocab.parse(s) }

// ArrowDirection is the direction of an arrow.
type ArrowDirection int

// ArrowDirection values.
const (
	ArrowDirectionLeft ArrowDirection = iota + 1
	ArrowDirectionUp
	ArrowDirectionRight
	ArrowDirectionDown
	ArrowDirectionNorthwest
	ArrowDirectionNortheast
	ArrowDirectionSoutheast
	ArrowDirectionSouthwest
	ArrowDirectionLeftRight
	ArrowDirectionUpDown
	ArrowDirectionNorthwestSoutheast
	ArrowDirectionNortheastSouthwest
	ArrowDirectionOther
)

var arrowDirectionVocab = newVocabulary("arrow-direction", map[ArrowDirection]string{
	ArrowDirectionLeft:               "left",
	ArrowDirectionUp:                 "up",
	ArrowDirectionRight:              "right",
	ArrowDirectionDown:               "down",
	ArrowDirectionNorthwest:          "northwest",
	ArrowDirectionNortheast:          "northeast",
	ArrowDirectionSoutheast:          "southeast",
	ArrowDirectionSouthwest:          "southwest",
	ArrowDirectionLeftRight:          "left right",
	ArrowDirectionUpDown:             "up down",
	ArrowDirectionNorthwestSoutheast: "northwest southeast",
	ArrowDirectionNortheastSouthwest: "northeast southwest",
	ArrowDirectionOther:              "other",
})

func (v ArrowDirection) String() string { return arrowDirectionVocab.format(v) }

// ParseArrowDirection parses a arrow-direction token.
func ParseArrowDirection(s string) (ArrowDirection, error) { return arrowDirectionVocab.parse(s) }

// ArrowStyle is the style of an arrow.
type ArrowStyle int

// ArrowStyle values.
const (
	ArrowStyleSingle ArrowStyle = iota + 1
	ArrowStyleDouble
	ArrowStyleFilled
	ArrowStyleHollow
	ArrowStylePaired
	ArrowStyleCombined
	ArrowStyleOther
)

var arrowStyleVocab = newVocabulary("arrow-style", map[ArrowStyle]string{
	ArrowStyleSingle:   "single",
	ArrowStyleDouble:   "double",
	ArrowStyleFilled:   "filled",
	ArrowStyleHollow:   "hollow",
	ArrowStylePaired:   "paired",
	ArrowStyleCombined: "combined",
	ArrowStyleOther:    "other",
})

func (v ArrowStyle) String() string { return arrowStyleVocab.format(v) }

// ParseArrowStyle parses a arrow-style token.
func ParseArrowStyle(s string) (ArrowStyle, error) { return arrowStyleVocab.parse(s) }

// CircularArrow is the rotation of a circular arrow.
type CircularArrow int

// CircularArrow values.
const (
	CircularArrowClockwise CircularArrow = iota + 1
	CircularArrowAnticlockwise
)

var circularArrowVocab = newVocabulary("circular-arrow", map[CircularArrow]string{
	CircularArrowClockwise:     "clockwise",
	CircularArrowAnticlockwise: "anticlockwise",
})

func (v CircularArrow) String() string { return circularArrowVocab.format(v) }

// ParseCircularArrow parses a circular-arrow token.
func ParseCircularArrow(s string) (CircularArrow, error) { return circularArrowVocab.parse(s) }

// BendShape is how a guitar bend is drawn.
type BendShape int

// BendShape values.
const (
	BendShapeAngled BendShape = iota + 1
	BendShapeCurved
)

var bendShapeVocab = newVocabulary("bend-shape", map[BendShape]string{
	BendShapeAngled: "angled",
	BendShapeCurved: "curved",
})

func (v BendShape) String() string { return bendShapeVocab.format(v) }

// ParseBendShape parses a bend-shape token.
func ParseBendShape(s string) (BendShape, error) { return bendShapeVocab.parse(s) }

// HarmonicPitch names the note a harmonic symbol is attached to.
type HarmonicPitch int

// HarmonicPitch values.
const (
	HarmonicPitchBasePitch HarmonicPitch = iota + 1
	HarmonicPitchTouchingPitch
	HarmonicPitchSoundingPitch
)

var harmonicPitchVocab = newVocabulary("harmonic-pitch", map[HarmonicPitch]string{
	HarmonicPitchBasePitch:     "base-pitch",
	HarmonicPitchTouchingPitch: "touching-pitch",
	HarmonicPitchSoundingPitch: "sounding-pitch",
})

func (v HarmonicPitch) String() string { return harmonicPitchVocab.format(v) }

// ParseHarmonicPitch parses a harmonic-pitch token.
func ParseHarmonicPitch(s string) (HarmonicPitch, error) { return harmonicPitchVocab.parse(s) }

// CancelLocation places key cancellation naturals.
type CancelLocation int

// CancelLocation values.
const (
	CancelLocationLeft CancelLocation = iota + 1
	CancelLocationRight
	CancelLocationBeforeBarline
)

var cancelLocationVocab = newVocabulary("cancel-location", map[CancelLocation]string{
	CancelLocationLeft:          "left",
	CancelLocationRight:         "right",
	CancelLocationBeforeBarline: "before-barline",
})

func (v CancelLocation) String() string { return cancelLocationVocab.format(v) }

// ParseCancelLocation parses a cancel-location token.
func ParseCancelLocation(s string) (CancelLocation, error) { return cancelLocationVocab.parse(s) }

// DynamicKind is a predefined dynamic mark.
type DynamicKind int

// DynamicKind values.
const (
	DynamicP DynamicKind = iota + 1
	DynamicPP
	DynamicPPP
	DynamicPPPP
	DynamicPPPPP
	DynamicPPPPPP
	DynamicF
	DynamicFF
	DynamicFFF
	DynamicFFFF
	DynamicFFFFF
	DynamicFFFFFF
	DynamicMP
	DynamicMF
	DynamicSF
	DynamicSFP
	DynamicSFPP
	DynamicFP
	DynamicRF
	DynamicRFZ
	DynamicSFZ
	DynamicSFFZ
	DynamicFZ
	DynamicN
	DynamicPF
	DynamicSFZP
)

var dynamicKindVocab = newVocabulary("dynamics", map[DynamicKind]string{
	DynamicP:      "p",
	DynamicPP:     "pp",
	DynamicPPP:    "ppp",
	DynamicPPPP:   "pppp",
	DynamicPPPPP:  "ppppp",
	DynamicPPPPPP: "pppppp",
	DynamicF:      "f",
	DynamicFF:     "ff",
	DynamicFFF:    "fff",
	DynamicFFFF:   "ffff",
	DynamicFFFFF:  "fffff",
	DynamicFFFFFF: "ffffff",
	DynamicMP:     "mp",
	DynamicMF:     "mf",
	DynamicSF:     "sf",
	DynamicSFP:    "sfp",
	DynamicSFPP:   "sfpp",
	DynamicFP:     "fp",
	DynamicRF:     "rf",
	DynamicRFZ:    "rfz",
	DynamicSFZ:    "sfz",
	DynamicSFFZ:   "sffz",
	DynamicFZ:     "fz",
	DynamicN:      "n",
	DynamicPF:     "pf",
	DynamicSFZP:   "sfzp",
})

func (v DynamicKind) String() string { return dynamicKindVocab.format(v) }

// ParseDynamicKind parses a dynamics token.
func ParseDynamicKind(s string) (DynamicKind, error) { return dynamicKindVocab.parse(s) }
