package ir

// Barline is a barline with its repeats, endings and signs.
type Barline struct {
	Location  RightLeftMiddle
	Segno     string
	Coda      string
	Divisions *float64
	ID        string

	BarStyle  *BarStyleColor
	WavyLine  *WavyLine
	SegnoMark *Segno
	CodaMark  *Coda
	// Fermatas holds at most two entries.
	Fermatas []Fermata
	Ending   *Ending
	Repeat   *Repeat
}

// BarStyleColor is the bar-style element.
type BarStyleColor struct {
	Value BarStyle
	Color string
}

// Ending is one end of a volta bracket.
type Ending struct {
	Number      string
	Type        StartStopDiscontinue
	Text        string
	PrintObject YesNo
	PrintStyle
	EndLength *float64
	TextX     *float64
	TextY     *float64
}

// Repeat is a repeat sign.
type Repeat struct {
	Direction BackwardForward
	Times     *int
	AfterJump YesNo
	Winged    Winged
}
