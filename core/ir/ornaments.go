package ir

// Ornaments is one ornaments element. Items keeps the document order, with
// accidental marks following the ornament they modify.
type Ornaments struct {
	Items []OrnamentElement
	ID    string
}

// OrnamentElement is one child of ornaments: *TrillMark, *Turn, *Shake,
// *WavyLine, *Mordent, *Schleifer, *Tremolo, *Haydn, *OtherOrnament or
// *AccidentalMark.
type OrnamentElement interface {
	ornamentElement()
}

func (*TrillMark) ornamentElement()      {}
func (*Turn) ornamentElement()           {}
func (*Shake) ornamentElement()          {}
func (*WavyLine) ornamentElement()       {}
func (*Mordent) ornamentElement()        {}
func (*Schleifer) ornamentElement()      {}
func (*Tremolo) ornamentElement()        {}
func (*Haydn) ornamentElement()          {}
func (*OtherOrnament) ornamentElement()  {}
func (*AccidentalMark) ornamentElement() {}

// TrillSound is the trill-sound attribute group.
type TrillSound struct {
	StartNote   StartNote
	TrillStep   TrillStep
	TwoNoteTurn TwoNoteTurn
	Accelerate  YesNo
	Beats       *float64
	SecondBeat  *float64
	LastBeat    *float64
}

// EmptyTrillSound is an empty element with print-style, placement and
// trill-sound attributes.
type EmptyTrillSound struct {
	PrintStyle
	Placement AboveBelow
	TrillSound
}

// TrillMark is the tr sign.
type TrillMark struct {
	EmptyTrillSound
}

// TurnKind selects which of the turn elements a Turn is.
type TurnKind int

// TurnKind values.
const (
	TurnNormal TurnKind = iota + 1
	TurnDelayed
	TurnInverted
	TurnDelayedInverted
	TurnVertical
	TurnInvertedVertical
)

var turnKindVocab = newVocabulary("turn", map[TurnKind]string{
	TurnNormal:           "turn",
	TurnDelayed:          "delayed-turn",
	TurnInverted:         "inverted-turn",
	TurnDelayedInverted:  "delayed-inverted-turn",
	TurnVertical:         "vertical-turn",
	TurnInvertedVertical: "inverted-vertical-turn",
})

func (v TurnKind) String() string { return turnKindVocab.format(v) }

// ParseTurnKind parses a turn element name.
func ParseTurnKind(s string) (TurnKind, error) { return turnKindVocab.parse(s) }

// Turn is any of the turn ornaments. Slash does not apply to vertical turns.
type Turn struct {
	Kind  TurnKind
	Slash YesNo
	EmptyTrillSound
}

// Shake is a shake ornament.
type Shake struct {
	EmptyTrillSound
}

// Haydn is a Haydn ornament.
type Haydn struct {
	EmptyTrillSound
}

// WavyLine is a trill extension line. It also appears on barlines.
type WavyLine struct {
	Type   StartStopContinue
	Number *uint8
	Position
	Placement AboveBelow
	Color     string
	Smufl     string
	TrillSound
}

// Mordent is a mordent or, when Inverted, an inverted mordent.
type Mordent struct {
	Inverted  bool
	Long      YesNo
	Approach  AboveBelow
	Departure AboveBelow
	EmptyTrillSound
}

// Schleifer is a slide ornament.
type Schleifer struct {
	EmptyPlacement
}

// Tremolo is a tremolo ornament with 0 to 8 marks.
type Tremolo struct {
	Marks int
	Type  TremoloType
	PrintStyle
	Placement AboveBelow
	Smufl     string
}

// OtherOrnament is an ornament not otherwise described.
type OtherOrnament struct {
	Value string
	PrintStyle
	Placement AboveBelow
	Smufl     string
}
