package musicxml

import (
	"errors"
	"io"
	"strings"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/xml"
)

// SkipHandler is called for every element the decoder discards, with the
// name of its parent and its position.
type SkipHandler func(parent, element string, pos ferrors.Position)

// DecodeOption configures Decode.
type DecodeOption func(*decoder)

// WithSkipHandler installs a handler that is told about skipped elements.
func WithSkipHandler(h SkipHandler) DecodeOption {
	return func(d *decoder) { d.onSkip = h }
}

type decoder struct {
	r        *xml.Reader
	onSkip   SkipHandler
	partList *ir.PartList
}

// Decode reads a partwise MusicXML document from r.
//
// Decoding stops at the first error. Every returned error carries the
// position of the offending element; see package errors for the types.
func Decode(r io.Reader, opts ...DecodeOption) (*ir.ScorePartwise, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ferrors.NewIO("read", "", err)
	}
	return ParseScoreBytes(data, opts...)
}

// ParseScore decodes a MusicXML document held in a string.
func ParseScore(doc string, opts ...DecodeOption) (*ir.ScorePartwise, error) {
	return ParseScoreBytes([]byte(doc), opts...)
}

// ParseScoreBytes decodes a MusicXML document held in memory.
func ParseScoreBytes(data []byte, opts ...DecodeOption) (*ir.ScorePartwise, error) {
	r, err := xml.NewReader(data)
	if err != nil {
		return nil, err
	}
	d := &decoder{r: r}
	for _, opt := range opts {
		opt(d)
	}
	return d.document()
}

var errNoRoot = errors.New("document has no root element")

func (d *decoder) document() (*ir.ScorePartwise, error) {
	for {
		ev, err := d.r.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case xml.EventEOF:
			return nil, &ferrors.XMLSyntaxError{Pos: ev.Pos, Err: errNoRoot}
		case xml.EventStart, xml.EventEmpty:
			switch ev.Name {
			case "score-partwise":
				return d.scorePartwise(ev)
			case "score-timewise":
				return nil, ferrors.Unsupported("score-timewise documents are not supported", ev.Pos)
			default:
				return nil, &ferrors.UnexpectedElementError{Element: ev.Name, Expected: "score-partwise", Pos: ev.Pos}
			}
		}
	}
}

// children calls fn for each child element of start. fn must consume the
// child completely, by decoding or skipping it. Character data between
// children is ignored.
func (d *decoder) children(start xml.Event, fn func(xml.Event) error) error {
	if start.Kind == xml.EventEmpty {
		return nil
	}
	for {
		ev, err := d.r.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xml.EventStart, xml.EventEmpty:
			if err := fn(ev); err != nil {
				return err
			}
		case xml.EventEnd:
			return nil
		case xml.EventEOF:
			return &ferrors.XMLSyntaxError{Pos: ev.Pos, Err: io.ErrUnexpectedEOF}
		}
	}
}

// skip discards an unsupported child of parent.
func (d *decoder) skip(parent string, ev xml.Event) error {
	d.report(parent, ev)
	return d.r.Skip(ev)
}

// report tells the skip handler that ev, already consumed, was left out of
// the IR.
func (d *decoder) report(parent string, ev xml.Event) {
	if d.onSkip != nil {
		d.onSkip(parent, ev.Name, ev.Pos)
	}
}

// ignore discards a child without reporting it. It is used for children that
// are represented elsewhere, such as the text of an element that also has
// attributes the IR keeps.
func (d *decoder) ignore(ev xml.Event) error {
	return d.r.Skip(ev)
}

func (d *decoder) text(ev xml.Event) (string, error) {
	return d.r.ReadText(ev)
}

func (d *decoder) trimmedText(ev xml.Event) (string, error) {
	s, err := d.r.ReadText(ev)
	return strings.TrimSpace(s), err
}

func invalid(ev xml.Event, value string, err error) error {
	return &ferrors.InvalidValueError{Field: ev.Name, Value: value, Pos: ev.Pos, Err: err}
}

func (d *decoder) floatText(ev xml.Event) (float64, error) {
	s, err := d.trimmedText(ev)
	if err != nil {
		return 0, err
	}
	f, err := xml.ParseFloat(s)
	if err != nil {
		return 0, invalid(ev, s, err)
	}
	return f, nil
}

func (d *decoder) optFloatText(ev xml.Event) (*float64, error) {
	f, err := d.floatText(ev)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (d *decoder) intText(ev xml.Event) (int, error) {
	s, err := d.trimmedText(ev)
	if err != nil {
		return 0, err
	}
	n, err := xml.ParseInt(s)
	if err != nil {
		return 0, invalid(ev, s, err)
	}
	return n, nil
}

func (d *decoder) optIntText(ev xml.Event) (*int, error) {
	n, err := d.intText(ev)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (d *decoder) uint8Text(ev xml.Event) (uint8, error) {
	s, err := d.trimmedText(ev)
	if err != nil {
		return 0, err
	}
	n, err := xml.ParseUint8(s)
	if err != nil {
		return 0, invalid(ev, s, err)
	}
	return n, nil
}

func (d *decoder) optUint8Text(ev xml.Event) (*uint8, error) {
	n, err := d.uint8Text(ev)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (d *decoder) int8Text(ev xml.Event) (int8, error) {
	s, err := d.trimmedText(ev)
	if err != nil {
		return 0, err
	}
	n, err := xml.ParseInt8(s)
	if err != nil {
		return 0, invalid(ev, s, err)
	}
	return n, nil
}

// enumText reads an element whose text is a vocabulary token.
func enumText[T any](d *decoder, ev xml.Event, parse func(string) (T, error)) (T, error) {
	var zero T
	s, err := d.trimmedText(ev)
	if err != nil {
		return zero, err
	}
	v, err := parse(s)
	if err != nil {
		var iv *ferrors.InvalidValueError
		if errors.As(err, &iv) {
			err = iv.Err
		}
		return zero, invalid(ev, s, err)
	}
	return v, nil
}

// presence reads an element that carries meaning only by being present.
func (d *decoder) presence(ev xml.Event) (bool, error) {
	return true, d.ignore(ev)
}

func missing(element, parent string, start xml.Event) error {
	return ferrors.NewMissingElement(element, parent, start.Pos)
}
