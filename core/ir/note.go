package ir

// Note is a single note, chord member, rest or grace note.
type Note struct {
	// Content is the variant-specific part: *RegularNote, *GraceNote or *CueNote.
	Content NoteContent

	Instruments      []string // instrument IDs
	Voice            string
	Type             *NoteType
	Dots             []EmptyPlacement
	Accidental       *Accidental
	TimeModification *TimeModification
	Stem             *Stem
	Notehead         *Notehead
	Staff            *uint8
	Beams            []Beam
	Notations        []*Notations
	Lyrics           []*Lyric

	PrintStyle
	PrintObject  YesNo
	PrintDot     YesNo
	PrintSpacing YesNo
	PrintLyric   YesNo
	Dynamics     *float64
	EndDynamics  *float64
	Attack       *float64
	Release      *float64
	Pizzicato    YesNo
	ID           string
}

// Full returns the shared full-note part of any variant.
func (n *Note) Full() *FullNote {
	switch c := n.Content.(type) {
	case *RegularNote:
		return &c.Full
	case *GraceNote:
		return &c.Full
	case *CueNote:
		return &c.Full
	}
	return nil
}

// NoteContent is *RegularNote, *GraceNote or *CueNote.
type NoteContent interface {
	noteContent()
}

func (*RegularNote) noteContent() {}
func (*GraceNote) noteContent()   {}
func (*CueNote) noteContent()     {}

// RegularNote is a note with a duration.
type RegularNote struct {
	Full     FullNote
	Duration float64
	Ties     []Tie
}

// GraceNote takes no time of its own. A cue grace note carries no ties.
type GraceNote struct {
	Grace Grace
	Cue   bool
	Full  FullNote
	Ties  []Tie
}

// CueNote is a small note that does not sound.
type CueNote struct {
	Full     FullNote
	Duration float64
}

// Grace holds the grace element's attributes.
type Grace struct {
	StealTimePrevious  *float64
	StealTimeFollowing *float64
	MakeTime           *float64
	Slash              YesNo
}

// FullNote is the part shared by every note variant.
type FullNote struct {
	Chord   bool
	Content FullNoteContent
}

// FullNoteContent is *Pitch, *Unpitched or *Rest.
type FullNoteContent interface {
	fullNoteContent()
}

func (*Pitch) fullNoteContent()     {}
func (*Unpitched) fullNoteContent() {}
func (*Rest) fullNoteContent()      {}

// Pitch is a sounding pitch. Octave 4 starts at middle C.
type Pitch struct {
	Step   Step
	Alter  *float64
	Octave uint8
}

// Unpitched is a note without a definite pitch, optionally displayed on a
// staff position.
type Unpitched struct {
	DisplayStep   Step
	DisplayOctave *uint8
}

// Rest is a rest, optionally displayed on a staff position.
type Rest struct {
	Measure       YesNo
	DisplayStep   Step
	DisplayOctave *uint8
}

// Tie is the playback tie element. Notated ties are Tied notations.
type Tie struct {
	Type     StartStop
	TimeOnly string
}

// NoteType is the graphic note type.
type NoteType struct {
	Value NoteTypeValue
	Size  SymbolSize
}

// Accidental is a displayed accidental.
type Accidental struct {
	Value       AccidentalValue
	Cautionary  YesNo
	Editorial   YesNo
	Parentheses YesNo
	Bracket     YesNo
	Size        SymbolSize
	Smufl       string
	PrintStyle
}

// TimeModification expresses a tuplet ratio: ActualNotes in the time of
// NormalNotes.
type TimeModification struct {
	ActualNotes int
	NormalNotes int
	NormalType  NoteTypeValue
	NormalDots  int
}

// Stem is the stem direction and position.
type Stem struct {
	Value StemValue
	Position
	Color string
}

// Notehead is the notehead shape.
type Notehead struct {
	Value       NoteheadValue
	Filled      YesNo
	Parentheses YesNo
	Font
	Color string
	Smufl string
}

// Beam is one beam level on a note.
type Beam struct {
	Value BeamValue
	// Number is the beam level, 1 for the outermost beam.
	Number   uint8
	Repeater YesNo
	Fan      Fan
	Color    string
	ID       string
}

// Lyric is one lyric line attached to a note.
type Lyric struct {
	Number      string
	Name        string
	Justify     LeftCenterRight
	Position
	Placement   AboveBelow
	Color       string
	PrintObject YesNo
	TimeOnly    string
	ID          string

	Content      LyricContent
	EndLine      bool
	EndParagraph bool
}

// LyricContent is *SyllabicText, *ExtendOnly, *Laughing or *Humming.
type LyricContent interface {
	lyricContent()
}

func (*SyllabicText) lyricContent() {}
func (*ExtendOnly) lyricContent()   {}
func (*Laughing) lyricContent()     {}
func (*Humming) lyricContent()      {}

// SyllabicText is a syllable, optionally joined to further syllables by
// elisions, and optionally extended.
type SyllabicText struct {
	Syllabic   Syllabic
	Text       LyricText
	Extensions []SyllabicExtension
	Extend     *Extend
}

// LyricText is the text of one syllable.
type LyricText struct {
	Value string
	Font
	Color string
	Lang  string // xml:lang
}

// SyllabicExtension is an elision followed by another syllable.
type SyllabicExtension struct {
	Elision  Elision
	Syllabic Syllabic
	Text     LyricText
}

// Elision joins two syllables on one note.
type Elision struct {
	Value string
	Font
	Color string
	Smufl string
}

// Extend is a lyric extension line.
type Extend struct {
	Type StartStopContinue
	PrintStyle
}

// ExtendOnly is a lyric consisting of an extension line alone.
type ExtendOnly struct {
	Extend Extend
}

// Laughing marks laughter in a lyric.
type Laughing struct{}

// Humming marks humming in a lyric.
type Humming struct{}
