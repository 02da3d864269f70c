package ir

// Position holds the MusicXML position attributes, in tenths.
type Position struct {
	DefaultX  *float64
	DefaultY  *float64
	RelativeX *float64
	RelativeY *float64
}

// IsZero reports whether no position attribute is set.
func (p Position) IsZero() bool {
	return p.DefaultX == nil && p.DefaultY == nil && p.RelativeX == nil && p.RelativeY == nil
}

// Font holds the font attribute group.
type Font struct {
	FontFamily string
	FontStyle  FontStyle
	// FontSize is either a CSS size name or a point size, kept as written.
	FontSize   string
	FontWeight FontWeight
}

// IsZero reports whether no font attribute is set.
func (f Font) IsZero() bool {
	return f == Font{}
}

// PrintStyle is the position, font and color attribute group.
type PrintStyle struct {
	Position
	Font
	Color string
}

// EmptyPlacement is an element with only print-style and placement attributes.
type EmptyPlacement struct {
	PrintStyle
	Placement AboveBelow
}

// FormattedText is text carrying the text-formatting attribute group.
type FormattedText struct {
	Value string
	PrintStyle
	Justify       LeftCenterRight
	Halign        LeftCenterRight
	Valign        Valign
	Underline     *int
	Overline      *int
	LineThrough   *int
	Rotation      *float64
	LetterSpacing string
	LineHeight    string
	Lang          string // xml:lang
	Space         string // xml:space
	Enclosure     EnclosureShape
	ID            string
}

// TypedText is text with an optional type attribute, as used by creator,
// rights and encoder.
type TypedText struct {
	Type  string
	Value string
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Uint8 returns a pointer to v.
func Uint8(v uint8) *uint8 { return &v }
