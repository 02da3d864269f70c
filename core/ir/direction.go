package ir

// Direction is a musical indication not attached to a specific note.
type Direction struct {
	Placement AboveBelow
	Directive YesNo
	ID        string

	Types  []*DirectionType
	Offset *Offset
	Voice  string
	Staff  *uint8
	Sound  *Sound
}

// DirectionType is one direction-type element. Its Elements are all of one
// kind except that words and symbols may mix.
type DirectionType struct {
	ID       string
	Elements []DirectionTypeElement
}

// DirectionTypeElement is one child of direction-type.
type DirectionTypeElement interface {
	directionTypeElement()
}

func (*Rehearsal) directionTypeElement()      {}
func (*Segno) directionTypeElement()          {}
func (*Coda) directionTypeElement()           {}
func (*Words) directionTypeElement()          {}
func (*Symbol) directionTypeElement()         {}
func (*Wedge) directionTypeElement()          {}
func (*Dynamics) directionTypeElement()       {}
func (*Dashes) directionTypeElement()         {}
func (*Bracket) directionTypeElement()        {}
func (*Pedal) directionTypeElement()          {}
func (*Metronome) directionTypeElement()      {}
func (*OctaveShift) directionTypeElement()    {}
func (*DirectionMark) directionTypeElement()  {}
func (*StringMute) directionTypeElement()     {}
func (*StaffDivide) directionTypeElement()    {}
func (*OtherDirection) directionTypeElement() {}

// Rehearsal is a rehearsal mark.
type Rehearsal struct {
	FormattedText
}

// Words is a text direction.
type Words struct {
	FormattedText
}

// Symbol is a SMuFL glyph shown as a direction; Value is the glyph name.
type Symbol struct {
	FormattedText
}

// Segno is a segno sign.
type Segno struct {
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	Smufl  string
	ID     string
}

// Coda is a coda sign.
type Coda struct {
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	Smufl  string
	ID     string
}

// Wedge is one end of a crescendo or diminuendo hairpin.
type Wedge struct {
	Type     WedgeType
	Number   *uint8
	Spread   *float64
	Niente   YesNo
	LineType LineType
	Position
	Color string
	ID    string
}

// Dashes is one end of a dashed line, as after "cresc.".
type Dashes struct {
	Type   StartStopContinue
	Number *uint8
	Position
	Color string
	ID    string
}

// Bracket is one end of a bracket line.
type Bracket struct {
	Type      StartStopContinue
	Number    *uint8
	LineEnd   LineEnd
	EndLength *float64
	LineType  LineType
	Position
	Color string
	ID    string
}

// Pedal is a piano pedal mark.
type Pedal struct {
	Type        PedalType
	Number      *uint8
	Line        YesNo
	Sign        YesNo
	Abbreviated YesNo
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	ID     string
}

// Metronome is a beat-unit metronome mark.
type Metronome struct {
	BeatUnit     NoteTypeValue
	BeatUnitDots int
	Rate         MetronomeRate

	Parentheses YesNo
	Justify     LeftCenterRight
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	ID     string
}

// MetronomeRate is *PerMinute or *BeatUnitRate.
type MetronomeRate interface {
	metronomeRate()
}

func (*PerMinute) metronomeRate()    {}
func (*BeatUnitRate) metronomeRate() {}

// PerMinute is a beats-per-minute value, kept as text ("120", "c. 60").
type PerMinute struct {
	Value string
	Font
}

// BeatUnitRate equates the first beat unit with a second one.
type BeatUnitRate struct {
	BeatUnit     NoteTypeValue
	BeatUnitDots int
}

// OctaveShift is one end of an 8va or 8vb line. Size is absent when the
// document relies on the default of 8.
type OctaveShift struct {
	Type        OctaveShiftType
	Number      *uint8
	Size        *int
	DashLength  *float64
	SpaceLength *float64
	PrintStyle
	ID string
}

// DirectionMarkKind names the empty direction-type elements.
type DirectionMarkKind int

// DirectionMarkKind values.
const (
	DirectionDamp DirectionMarkKind = iota + 1
	DirectionDampAll
	DirectionEyeglasses
)

var directionMarkKindVocab = newVocabulary("direction-type", map[DirectionMarkKind]string{
	DirectionDamp:       "damp",
	DirectionDampAll:    "damp-all",
	DirectionEyeglasses: "eyeglasses",
})

func (v DirectionMarkKind) String() string { return directionMarkKindVocab.format(v) }

// ParseDirectionMarkKind parses a damp, damp-all or eyeglasses element name.
func ParseDirectionMarkKind(s string) (DirectionMarkKind, error) {
	return directionMarkKindVocab.parse(s)
}

// DirectionMark is a damp, damp-all or eyeglasses sign.
type DirectionMark struct {
	Kind DirectionMarkKind
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	ID     string
}

// StringMute turns a string mute on or off.
type StringMute struct {
	Type OnOff
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	ID     string
}

// StaffDivide is a staff division arrow.
type StaffDivide struct {
	Type StaffDivideSymbol
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	ID     string
}

// OtherDirection is a direction not otherwise described.
type OtherDirection struct {
	Value       string
	PrintObject YesNo
	PrintStyle
	Halign LeftCenterRight
	Valign Valign
	Smufl  string
	ID     string
}

// Offset shifts a direction from its position in the measure, in divisions.
type Offset struct {
	Value float64
	Sound YesNo
}

// Sound holds playback attributes of a direction. Child elements of sound
// are not represented.
type Sound struct {
	Tempo          *float64
	Dynamics       *float64
	Dacapo         YesNo
	Segno          string
	Dalsegno       string
	Coda           string
	Tocoda         string
	Divisions      *float64
	ForwardRepeat  YesNo
	Fine           string
	TimeOnly       string
	Pizzicato      YesNo
	Pan            *float64
	Elevation      *float64
	DamperPedal    string
	SoftPedal      string
	SostenutoPedal string
	ID             string
}
