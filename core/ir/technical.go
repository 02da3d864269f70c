package ir

// Technical is one technical element, holding performance indications in
// document order.
type Technical struct {
	Items []TechnicalElement
	ID    string
}

// TechnicalElement is one child of technical.
type TechnicalElement interface {
	technicalElement()
}

func (*TechnicalMark) technicalElement()  {}
func (*Harmonic) technicalElement()       {}
func (*Fingering) technicalElement()      {}
func (*Pluck) technicalElement()          {}
func (*Fret) technicalElement()           {}
func (*StringNumber) technicalElement()   {}
func (*HammerOn) technicalElement()       {}
func (*PullOff) technicalElement()        {}
func (*Bend) technicalElement()           {}
func (*Tap) technicalElement()            {}
func (*HeelToe) technicalElement()        {}
func (*Hole) technicalElement()           {}
func (*Arrow) technicalElement()          {}
func (*Handbell) technicalElement()       {}
func (*HarmonMute) technicalElement()     {}
func (*OtherTechnical) technicalElement() {}

// TechnicalMarkKind names the technical elements that carry only placement,
// print-style and smufl attributes.
type TechnicalMarkKind int

// TechnicalMarkKind values.
const (
	TechnicalUpBow TechnicalMarkKind = iota + 1
	TechnicalDownBow
	TechnicalOpenString
	TechnicalThumbPosition
	TechnicalDoubleTongue
	TechnicalTripleTongue
	TechnicalStopped
	TechnicalSnapPizzicato
	TechnicalFingernails
	TechnicalBrassBend
	TechnicalFlip
	TechnicalSmear
	TechnicalOpen
	TechnicalHalfMuted
	TechnicalGolpe
)

var technicalMarkKindVocab = newVocabulary("technical", map[TechnicalMarkKind]string{
	TechnicalUpBow:         "up-bow",
	TechnicalDownBow:       "down-bow",
	TechnicalOpenString:    "open-string",
	TechnicalThumbPosition: "thumb-position",
	TechnicalDoubleTongue:  "double-tongue",
	TechnicalTripleTongue:  "triple-tongue",
	TechnicalStopped:       "stopped",
	TechnicalSnapPizzicato: "snap-pizzicato",
	TechnicalFingernails:   "fingernails",
	TechnicalBrassBend:     "brass-bend",
	TechnicalFlip:          "flip",
	TechnicalSmear:         "smear",
	TechnicalOpen:          "open",
	TechnicalHalfMuted:     "half-muted",
	TechnicalGolpe:         "golpe",
})

func (v TechnicalMarkKind) String() string { return technicalMarkKindVocab.format(v) }

// ParseTechnicalMarkKind parses a technical element name.
func ParseTechnicalMarkKind(s string) (TechnicalMarkKind, error) {
	return technicalMarkKindVocab.parse(s)
}

// TechnicalMark is an empty technical indication such as up-bow or stopped.
type TechnicalMark struct {
	Kind TechnicalMarkKind
	EmptyPlacement
	Smufl string
}

// Harmonic is a natural or artificial harmonic.
type Harmonic struct {
	Natural    bool
	Artificial bool
	Pitch      HarmonicPitch
	PrintObject YesNo
	PrintStyle
	Placement AboveBelow
}

// Fingering is a fingering indication.
type Fingering struct {
	Value        string
	Substitution YesNo
	Alternate    YesNo
	PrintStyle
	Placement AboveBelow
}

// Pluck is a plucking fingering such as p, i, m or a.
type Pluck struct {
	Value string
	PrintStyle
	Placement AboveBelow
}

// Fret is a fret number for fretted instruments.
type Fret struct {
	Value int
	Font
	Color string
}

// StringNumber is the string element: the string a note is played on.
type StringNumber struct {
	Value uint8
	PrintStyle
	Placement AboveBelow
}

// HammerPull is the content shared by hammer-on and pull-off.
type HammerPull struct {
	Value  string
	Type   StartStop
	Number *uint8
	PrintStyle
	Placement AboveBelow
}

// HammerOn is a hammer-on.
type HammerOn struct {
	HammerPull
}

// PullOff is a pull-off.
type PullOff struct {
	HammerPull
}

// Bend is a guitar bend.
type Bend struct {
	Alter   float64
	PreBend bool
	Release *BendRelease
	WithBar string
	Shape   BendShape
	PrintStyle
	Accelerate YesNo
	Beats      *float64
	FirstBeat  *float64
	LastBeat   *float64
}

// BendRelease marks the release of a bend.
type BendRelease struct {
	Offset *float64
}

// Tap is a tap on a fretboard.
type Tap struct {
	Value string
	Hand  LeftRight
	PrintStyle
	Placement AboveBelow
}

// HeelToe is an organ pedal heel or, when Toe, toe mark.
type HeelToe struct {
	Toe          bool
	Substitution YesNo
	PrintStyle
	Placement AboveBelow
}

// Hole is a woodwind or brass fingering hole.
type Hole struct {
	HoleType   string
	HoleClosed HoleClosed
	HoleShape  string
	PrintStyle
	Placement AboveBelow
}

// HoleClosed says how far a hole is covered.
type HoleClosed struct {
	Value    HoleClosedValue
	Location HoleClosedLocation
}

// Arrow is a straight or circular arrow.
type Arrow struct {
	// Circular is set for circular arrows; otherwise Direction is required.
	Circular  CircularArrow
	Direction ArrowDirection
	Style     ArrowStyle
	Arrowhead bool
	PrintStyle
	Placement AboveBelow
	Smufl     string
}

// Handbell is a handbell technique.
type Handbell struct {
	Value HandbellValue
	PrintStyle
	Placement AboveBelow
}

// HarmonMute is a harmon mute position.
type HarmonMute struct {
	Closed HoleClosed
	PrintStyle
	Placement AboveBelow
}

// OtherTechnical is a technical indication not otherwise described.
type OtherTechnical struct {
	Value string
	PrintStyle
	Placement AboveBelow
	Smufl     string
}
