package ir

// Articulations is one articulations element, in document order.
type Articulations struct {
	Items []ArticulationElement
	ID    string
}

// ArticulationElement is one child of articulations.
type ArticulationElement interface {
	articulationElement()
}

func (*ArticulationMark) articulationElement()  {}
func (*StrongAccent) articulationElement()      {}
func (*JazzArticulation) articulationElement()  {}
func (*BreathMark) articulationElement()        {}
func (*Caesura) articulationElement()           {}
func (*OtherArticulation) articulationElement() {}

// ArticulationKind names the articulations that carry only placement and
// print-style attributes.
type ArticulationKind int

// ArticulationKind values.
const (
	ArticulationAccent ArticulationKind = iota + 1
	ArticulationStaccato
	ArticulationTenuto
	ArticulationDetachedLegato
	ArticulationStaccatissimo
	ArticulationSpiccato
	ArticulationStress
	ArticulationUnstress
	ArticulationSoftAccent
)

var articulationKindVocab = newVocabulary("articulation", map[ArticulationKind]string{
	ArticulationAccent:         "accent",
	ArticulationStaccato:       "staccato",
	ArticulationTenuto:         "tenuto",
	ArticulationDetachedLegato: "detached-legato",
	ArticulationStaccatissimo:  "staccatissimo",
	ArticulationSpiccato:       "spiccato",
	ArticulationStress:         "stress",
	ArticulationUnstress:       "unstress",
	ArticulationSoftAccent:     "soft-accent",
})

func (v ArticulationKind) String() string { return articulationKindVocab.format(v) }

// ParseArticulationKind parses an articulation element name.
func ParseArticulationKind(s string) (ArticulationKind, error) {
	return articulationKindVocab.parse(s)
}

// ArticulationMark is an empty articulation such as accent or staccato.
type ArticulationMark struct {
	Kind ArticulationKind
	EmptyPlacement
}

// StrongAccent is a marcato; Type is the direction of the wedge.
type StrongAccent struct {
	Type UpDown
	EmptyPlacement
}

// JazzKind names the jazz-style line articulations.
type JazzKind int

// JazzKind values.
const (
	JazzScoop JazzKind = iota + 1
	JazzPlop
	JazzDoit
	JazzFalloff
)

var jazzKindVocab = newVocabulary("jazz-articulation", map[JazzKind]string{
	JazzScoop:   "scoop",
	JazzPlop:    "plop",
	JazzDoit:    "doit",
	JazzFalloff: "falloff",
})

func (v JazzKind) String() string { return jazzKindVocab.format(v) }

// ParseJazzKind parses a jazz articulation element name.
func ParseJazzKind(s string) (JazzKind, error) { return jazzKindVocab.parse(s) }

// JazzArticulation is a scoop, plop, doit or falloff.
type JazzArticulation struct {
	Kind       JazzKind
	LineShape  LineShape
	LineType   LineType
	LineLength LineLength
	PrintStyle
	Placement AboveBelow
}

// BreathMark is a breath mark. A zero Value is the empty element.
type BreathMark struct {
	Value BreathMarkValue
	PrintStyle
	Placement AboveBelow
}

// Caesura is a caesura. A zero Value is the empty element.
type Caesura struct {
	Value CaesuraValue
	PrintStyle
	Placement AboveBelow
}

// OtherArticulation is an articulation not otherwise described.
type OtherArticulation struct {
	Value string
	PrintStyle
	Placement AboveBelow
	Smufl     string
}
