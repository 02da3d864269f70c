package ir

// PartList is the ordered list of parts and part groups. The order defines
// default staff and bracket ordering and is preserved on encode.
type PartList struct {
	Items []PartListItem
}

// ScoreParts returns the ScorePart entries in order.
func (pl PartList) ScoreParts() []*ScorePart {
	var out []*ScorePart
	for _, item := range pl.Items {
		if sp, ok := item.(*ScorePart); ok {
			out = append(out, sp)
		}
	}
	return out
}

// Lookup returns the ScorePart with the given ID.
func (pl PartList) Lookup(id string) (*ScorePart, bool) {
	for _, sp := range pl.ScoreParts() {
		if sp.ID == id {
			return sp, true
		}
	}
	return nil, false
}

// PartListItem is a ScorePart or a PartGroup.
type PartListItem interface {
	partListItem()
}

func (*ScorePart) partListItem() {}
func (*PartGroup) partListItem() {}

// PartGroup starts or stops a bracketed group of parts.
type PartGroup struct {
	Type   StartStop
	Number string

	GroupName         string
	GroupAbbreviation string
	GroupSymbol       *GroupSymbol
	GroupBarline      *GroupBarline
	GroupTime         bool
}

// GroupSymbol is the symbol drawn at the start of a group.
type GroupSymbol struct {
	Value GroupSymbolValue
	Position
	Color string
}

// GroupBarline says whether barlines are connected across the group.
type GroupBarline struct {
	Value GroupBarlineValue
	Color string
}

// ScorePart declares one part.
type ScorePart struct {
	ID string

	PartName         PartName
	PartAbbreviation *PartName
	Groups           []string
	ScoreInstruments []*ScoreInstrument
	MidiDevices      []MidiDevice
	MidiInstruments  []*MidiInstrument
}

// PartName is a part name or abbreviation with its display attributes.
type PartName struct {
	Value string
	PrintStyle
	PrintObject YesNo
	Justify     LeftCenterRight
}

// ScoreInstrument describes one instrument within a part.
type ScoreInstrument struct {
	ID                     string
	InstrumentName         string
	InstrumentAbbreviation string
	InstrumentSound        string
	// Solo and Ensemble are exclusive. Ensemble holds the ensemble size, which
	// may be empty.
	Solo              bool
	Ensemble          *string
	VirtualInstrument *VirtualInstrument
}

// VirtualInstrument names a software instrument.
type VirtualInstrument struct {
	Library string
	Name    string
}

// MidiDevice names the MIDI device for an instrument.
type MidiDevice struct {
	ID    string
	Port  *int
	Value string
}

// MidiInstrument holds MIDI playback settings for an instrument.
type MidiInstrument struct {
	ID            string
	MidiChannel   *int
	MidiName      string
	MidiBank      *int
	MidiProgram   *int
	MidiUnpitched *int
	Volume        *float64
	Pan           *float64
	Elevation     *float64
}
