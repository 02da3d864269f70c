package ir

// Notations holds the notations attached to a note. MusicXML allows the
// children in any order; the IR groups them by kind, and they are written
// in the order the fields are declared here.
type Notations struct {
	PrintObject YesNo
	ID          string

	Tied            []Tied
	Slurs           []Slur
	Tuplets         []Tuplet
	Glissandos      []Glissando
	Slides          []Slide
	Ornaments       []*Ornaments
	Technical       []*Technical
	Articulations   []*Articulations
	Dynamics        []*Dynamics
	Fermatas        []Fermata
	Arpeggiates     []Arpeggiate
	NonArpeggiates  []NonArpeggiate
	AccidentalMarks []AccidentalMark
	OtherNotations  []OtherNotation
}

// IsEmpty reports whether n has no children.
func (n *Notations) IsEmpty() bool {
	return len(n.Tied) == 0 && len(n.Slurs) == 0 && len(n.Tuplets) == 0 &&
		len(n.Glissandos) == 0 && len(n.Slides) == 0 && len(n.Ornaments) == 0 &&
		len(n.Technical) == 0 && len(n.Articulations) == 0 && len(n.Dynamics) == 0 &&
		len(n.Fermatas) == 0 && len(n.Arpeggiates) == 0 && len(n.NonArpeggiates) == 0 &&
		len(n.AccidentalMarks) == 0 && len(n.OtherNotations) == 0
}

// Tied is a notated tie.
type Tied struct {
	Type        TiedType
	Number      *uint8
	LineType    LineType
	Position
	Placement   AboveBelow
	Orientation OverUnder
	Color       string
	ID          string
}

// Slur is one end or a continuation of a slur.
type Slur struct {
	Type        StartStopContinue
	Number      *uint8
	LineType    LineType
	Position
	Placement   AboveBelow
	Orientation OverUnder
	Color       string
	ID          string
}

// Tuplet is the visual bracket and number of a tuplet.
type Tuplet struct {
	Type       StartStop
	Number     *uint8
	Bracket    YesNo
	ShowNumber ShowTuplet
	ShowType   ShowTuplet
	LineShape  LineShape
	Position
	Placement  AboveBelow
	ID         string

	Actual *TupletPortion
	Normal *TupletPortion
}

// TupletPortion is the tuplet-actual or tuplet-normal display.
type TupletPortion struct {
	Number *int
	Type   NoteTypeValue
	Dots   int
}

// Glissando is a glissando line between notes.
type Glissando struct {
	Type     StartStop
	Number   *uint8
	LineType LineType
	Text     string
	PrintStyle
	ID string
}

// Slide is a slide line between notes.
type Slide struct {
	Type     StartStop
	Number   *uint8
	LineType LineType
	Text     string
	PrintStyle
	ID string
}

// Fermata is a fermata sign. A zero Shape is the empty element.
type Fermata struct {
	Shape FermataShape
	Type  UprightInverted
	PrintStyle
	ID string
}

// Arpeggiate is an arpeggio sign on a chord.
type Arpeggiate struct {
	Number    *uint8
	Direction UpDown
	Unbroken  YesNo
	Position
	Placement AboveBelow
	Color     string
	ID        string
}

// NonArpeggiate is a bracket showing a chord is not arpeggiated.
type NonArpeggiate struct {
	Type      TopBottom
	Number    *uint8
	Position
	Placement AboveBelow
	Color     string
	ID        string
}

// AccidentalMark is an accidental shown as a notation or ornament.
type AccidentalMark struct {
	Value       AccidentalValue
	Placement   AboveBelow
	Parentheses YesNo
	Bracket     YesNo
	Size        SymbolSize
	Smufl       string
	PrintStyle
	ID string
}

// OtherNotation is a notation not otherwise described.
type OtherNotation struct {
	Value       string
	Type        StartStopSingle
	Number      *uint8
	PrintObject YesNo
	PrintStyle
	Placement AboveBelow
	Smufl     string
	ID        string
}

// Dynamics is a group of dynamic marks. It appears both as a notation and
// as a direction type.
type Dynamics struct {
	Marks []DynamicMark
	PrintStyle
	Placement AboveBelow
	Halign    LeftCenterRight
	Valign    Valign
	Enclosure EnclosureShape
	ID        string
}

// DynamicMark is a predefined mark, or an other-dynamics text when Kind is
// zero.
type DynamicMark struct {
	Kind  DynamicKind
	Other string
}
