package ir

// Part holds the measures of one declared part.
type Part struct {
	ID       string
	Measures []*Measure
}

// Measure is one measure of a part.
type Measure struct {
	// Number is the measure label. It need not be numeric ("0", "1a").
	Number         string
	Text           string
	Implicit       YesNo
	NonControlling YesNo
	Width          *float64
	ID             string

	// Content is in document order; Backup and Forward entries move the time
	// cursor relative to their neighbours.
	Content []MusicData
}

// MusicData is one entry of a measure: *Note, *Backup, *Forward, *Direction,
// *Attributes or *Barline.
type MusicData interface {
	musicData()
}

func (*Note) musicData()       {}
func (*Backup) musicData()     {}
func (*Forward) musicData()    {}
func (*Direction) musicData()  {}
func (*Attributes) musicData() {}
func (*Barline) musicData()    {}

// Backup moves the time cursor back by Duration divisions.
type Backup struct {
	Duration float64
}

// Forward moves the time cursor ahead by Duration divisions.
type Forward struct {
	Duration float64
	Voice    string
	Staff    *uint8
}
