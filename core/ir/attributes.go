package ir

// Attributes holds key, time, clef and transposition changes for a measure
// position. Keys, Times, Clefs and Transposes may each hold one entry per
// staff, told apart by their Number.
type Attributes struct {
	Divisions     *float64
	Keys          []*Key
	Times         []*Time
	Staves        *uint8
	PartSymbol    *PartSymbol
	Instruments   *int
	Clefs         []*Clef
	Transposes    []*Transpose
	MeasureStyles []*MeasureStyle
}

// Key is a key signature.
type Key struct {
	Number  *uint8
	Content KeyContent
	Octaves []KeyOctave

	PrintStyle
	PrintObject YesNo
	ID          string
}

// KeyContent is *TraditionalKey or *NonTraditionalKey.
type KeyContent interface {
	keyContent()
}

func (*TraditionalKey) keyContent()    {}
func (*NonTraditionalKey) keyContent() {}

// TraditionalKey is a key on the circle of fifths.
type TraditionalKey struct {
	Cancel *Cancel
	Fifths int8
	Mode   Mode
}

// Cancel shows the naturals cancelling a previous key.
type Cancel struct {
	Fifths   int8
	Location CancelLocation
}

// NonTraditionalKey lists altered steps explicitly.
type NonTraditionalKey struct {
	Steps []KeyStep
}

// KeyStep is one altered step of a non-traditional key.
type KeyStep struct {
	Step       Step
	Alter      float64
	Accidental *KeyAccidental
}

// KeyAccidental overrides the accidental shown for a key step.
type KeyAccidental struct {
	Value AccidentalValue
	Smufl string
}

// KeyOctave places one accidental of the key signature in an octave.
type KeyOctave struct {
	Number int
	Octave uint8
	Cancel YesNo
}

// Time is a time signature.
type Time struct {
	Number    *uint8
	Symbol    TimeSymbol
	Separator TimeSeparator
	Content   TimeContent

	PrintStyle
	Halign      LeftCenterRight
	Valign      Valign
	PrintObject YesNo
	ID          string
}

// TimeContent is *MeasuredTime or *SenzaMisura.
type TimeContent interface {
	timeContent()
}

func (*MeasuredTime) timeContent() {}
func (*SenzaMisura) timeContent()  {}

// MeasuredTime is one or more beats/beat-type pairs, as in composite meters.
type MeasuredTime struct {
	Signatures []TimeSignature
}

// TimeSignature is one beats/beat-type pair. Beats may be additive ("3+2").
type TimeSignature struct {
	Beats    string
	BeatType string
}

// SenzaMisura is an unmeasured time signature, optionally showing a symbol.
type SenzaMisura struct {
	Value string
}

// PartSymbol is the symbol joining the staves of a multi-staff part.
type PartSymbol struct {
	Value       GroupSymbolValue
	TopStaff    *uint8
	BottomStaff *uint8
	Position
	Color string
}

// Clef is a clef.
type Clef struct {
	Number       *uint8
	Additional   YesNo
	Size         SymbolSize
	AfterBarline YesNo
	PrintStyle
	PrintObject YesNo
	ID          string

	Sign         ClefSign
	Line         *int
	OctaveChange *int
}

// Transpose gives the interval from written to sounding pitch.
type Transpose struct {
	Number       *uint8
	ID           string
	Diatonic     *int
	Chromatic    float64
	OctaveChange *int
	Double       *Double
}

// Double indicates octave doubling in a transposition.
type Double struct {
	Above YesNo
}

// MeasureStyle is a multi-measure rest or measure repeat indication.
type MeasureStyle struct {
	Number *uint8
	Font
	Color   string
	ID      string
	Content MeasureStyleContent
}

// MeasureStyleContent is *MultipleRest or *MeasureRepeat.
type MeasureStyleContent interface {
	measureStyleContent()
}

func (*MultipleRest) measureStyleContent()  {}
func (*MeasureRepeat) measureStyleContent() {}

// MultipleRest is a multi-measure rest spanning Value measures.
type MultipleRest struct {
	Value      int
	UseSymbols YesNo
}

// MeasureRepeat starts or stops a measure repeat. Value is the number of
// measures repeated and is empty on the stop element.
type MeasureRepeat struct {
	Type    StartStop
	Value   string
	Slashes *int
}
