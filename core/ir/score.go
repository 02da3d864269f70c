package ir

// DefaultVersion is the MusicXML version assumed when a document omits one.
const DefaultVersion = "4.0"

// ScorePartwise is the root of a partwise score.
type ScorePartwise struct {
	// Version is the MusicXML version attribute.
	Version string

	Work           *Work
	MovementNumber string
	MovementTitle  string
	Identification *Identification
	Defaults       *Defaults
	Credits        []*Credit

	// PartList declares every part; each Part.ID must match one of its
	// ScorePart entries.
	PartList PartList

	Parts []*Part
}

// Work identifies the larger work a score belongs to.
type Work struct {
	WorkNumber string
	WorkTitle  string
	Opus       *Opus
}

// Opus links to an opus document.
type Opus struct {
	Href string // xlink:href
}

// Identification holds creator, rights and encoding metadata.
type Identification struct {
	Creators      []TypedText
	Rights        []TypedText
	Encoding      *Encoding
	Source        string
	Relations     []TypedText
	Miscellaneous []MiscellaneousField
}

// Encoding describes how the document was produced. Entries of the same kind
// keep their relative order.
type Encoding struct {
	Dates        []string
	Encoders     []TypedText
	Software     []string
	Descriptions []string
	Supports     []Supports
}

// Supports declares whether the encoding uses an optional element or
// attribute.
type Supports struct {
	Type      YesNo
	Element   string
	Attribute string
	Value     string
}

// MiscellaneousField is a name/value pair not covered elsewhere.
type MiscellaneousField struct {
	Name  string
	Value string
}

// Defaults holds score-wide layout and font defaults.
type Defaults struct {
	Scaling        *Scaling
	PageLayout     *PageLayout
	SystemLayout   *SystemLayout
	StaffLayouts   []StaffLayout
	Appearance     *Appearance
	MusicFont      *Font
	WordFont       *Font
	LyricFonts     []LyricFont
	LyricLanguages []LyricLanguage
}

// Scaling relates tenths to millimeters.
type Scaling struct {
	Millimeters float64
	Tenths      float64
}

// PageLayout sets page size and margins. Height and width appear together.
type PageLayout struct {
	PageHeight  *float64
	PageWidth   *float64
	PageMargins []PageMargins
}

// PageMargins are the margins of odd, even or both pages.
type PageMargins struct {
	Type   MarginType
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// SystemLayout sets system margins and distances.
type SystemLayout struct {
	SystemMargins     *SystemMargins
	SystemDistance    *float64
	TopSystemDistance *float64
}

// SystemMargins are the left and right system margins.
type SystemMargins struct {
	Left  float64
	Right float64
}

// StaffLayout sets the distance above one staff.
type StaffLayout struct {
	Number        *uint8
	StaffDistance *float64
}

// Appearance holds line widths, note sizes and distances.
type Appearance struct {
	LineWidths []LineWidth
	NoteSizes  []NoteSize
	Distances  []Distance
}

// LineWidth is the width of one kind of line, in tenths.
type LineWidth struct {
	Type  string
	Value float64
}

// NoteSize is the size of one note class as a percentage of a regular note.
type NoteSize struct {
	Type  NoteSizeType
	Value float64
}

// Distance is a named layout distance, in tenths.
type Distance struct {
	Type  string
	Value float64
}

// LyricFont is the font for the lyric lines with a given number and name.
type LyricFont struct {
	Number string
	Name   string
	Font
}

// LyricLanguage is the language of the lyric lines with a given number and name.
type LyricLanguage struct {
	Number string
	Name   string
	Lang   string // xml:lang
}

// Credit is text or an image shown on a page of the score.
type Credit struct {
	Page  *int
	ID    string
	Types []string
	// A credit holds either an image or one or more words.
	Image *Image
	Words []FormattedText
}

// Image references an external graphic.
type Image struct {
	Source string
	Type   string
	Height *float64
	Width  *float64
	Position
	Halign LeftCenterRight
	Valign Valign
	ID     string
}
