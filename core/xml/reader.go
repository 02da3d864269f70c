// Package xml provides the streaming XML primitives the MusicXML codec is
// built on: an event Reader over encoding/xml that distinguishes self-closing
// elements from open/close pairs, typed attribute lookup with positioned
// errors, and a Writer with an attribute builder.
//
// Security Notes:
//   - External entities are never fetched: encoding/xml does not resolve them
//     and the Reader installs an empty entity map.
//   - A DOCTYPE is consumed as an opaque directive.
package xml

import (
	"bytes"
	stdxml "encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	ferrors "github.com/oxur/fermata/core/errors"
)

// EventKind classifies a reader event.
type EventKind int

// Event kinds.
const (
	EventStart EventKind = iota + 1 // <tag ...>
	EventEmpty                      // <tag .../>
	EventEnd                        // </tag>
	EventText                       // character data
	EventEOF                        // end of input
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEmpty:
		return "empty"
	case EventEnd:
		return "end"
	case EventText:
		return "text"
	case EventEOF:
		return "eof"
	}
	return "unknown"
}

// Event is one step of the XML stream.
type Event struct {
	Kind  EventKind
	Name  string // element name for Start, Empty and End
	Attrs Attrs  // attributes for Start and Empty, in document order
	Text  string // character data for Text
	Pos   ferrors.Position
}

// IsElement reports whether the event opens an element (Start or Empty).
func (e Event) IsElement() bool {
	return e.Kind == EventStart || e.Kind == EventEmpty
}

const (
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

var encodingDecl = regexp.MustCompile(`^\s*<\?xml[^>]*encoding\s*=\s*["']([A-Za-z0-9._-]+)["']`)

// Reader produces Events from an in-memory document.
//
// The whole input is held so the Reader can tell <a/> from <a></a>, which
// encoding/xml reports identically. No tree is built.
type Reader struct {
	data []byte
	dec  *stdxml.Decoder
	pos  ferrors.Position
	eof  bool
}

// NewReader returns a Reader over data. UTF-16 documents with a byte order
// mark and documents declaring a non-UTF-8 encoding are transcoded up front.
func NewReader(data []byte) (*Reader, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if hasUTF16BOM(data) {
		converted, err := io.ReadAll(transform.NewReader(bytes.NewReader(data),
			unicode.BOMOverride(unicode.UTF8.NewDecoder())))
		if err != nil {
			return nil, &ferrors.XMLSyntaxError{Err: err}
		}
		data = converted
	} else if m := encodingDecl.FindSubmatch(data); m != nil {
		label := strings.ToLower(string(m[1]))
		if label != "utf-8" && label != "utf8" {
			rd, err := charset.NewReaderLabel(label, bytes.NewReader(data))
			if err != nil {
				return nil, &ferrors.XMLSyntaxError{Err: err}
			}
			converted, err := io.ReadAll(rd)
			if err != nil {
				return nil, &ferrors.XMLSyntaxError{Err: err}
			}
			data = converted
		}
	}
	dec := stdxml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.Entity = map[string]string{}
	// Input is already UTF-8 at this point; the declaration's label is stale.
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }
	return &Reader{data: data, dec: dec, pos: ferrors.Position{Line: 1, Column: 1}}, nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xff, 0xfe}) || bytes.HasPrefix(data, []byte{0xfe, 0xff})
}

// Position returns the position of the most recent event.
func (r *Reader) Position() ferrors.Position {
	return r.pos
}

func (r *Reader) mark() {
	line, col := r.dec.InputPos()
	r.pos = ferrors.Position{Offset: r.dec.InputOffset(), Line: line, Column: col}
}

// Next returns the next event. Comments, processing instructions and
// directives (the declaration, DOCTYPE) are consumed silently.
func (r *Reader) Next() (Event, error) {
	if r.eof {
		return Event{Kind: EventEOF, Pos: r.pos}, nil
	}
	for {
		r.mark()
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			r.eof = true
			return Event{Kind: EventEOF, Pos: r.pos}, nil
		}
		if err != nil {
			return Event{}, &ferrors.XMLSyntaxError{Pos: r.pos, Err: err}
		}

		switch t := tok.(type) {
		case stdxml.StartElement:
			ev := Event{Kind: EventStart, Name: t.Name.Local, Attrs: convertAttrs(t.Attr), Pos: r.pos}
			if r.selfClosing() {
				ev.Kind = EventEmpty
				// The decoder synthesizes the matching end element next.
				if _, err := r.dec.Token(); err != nil {
					return Event{}, &ferrors.XMLSyntaxError{Pos: r.pos, Err: err}
				}
			}
			return ev, nil
		case stdxml.EndElement:
			return Event{Kind: EventEnd, Name: t.Name.Local, Pos: r.pos}, nil
		case stdxml.CharData:
			return Event{Kind: EventText, Text: string(t), Pos: r.pos}, nil
		default:
			// Comment, ProcInst, Directive.
			continue
		}
	}
}

func (r *Reader) selfClosing() bool {
	end := r.dec.InputOffset()
	return end >= 2 && end <= int64(len(r.data)) && r.data[end-2] == '/' && r.data[end-1] == '>'
}

func convertAttrs(in []stdxml.Attr) Attrs {
	if len(in) == 0 {
		return nil
	}
	out := make(Attrs, 0, len(in))
	for _, a := range in {
		var name string
		switch a.Name.Space {
		case "":
			name = a.Name.Local
		case "xmlns":
			continue
		case xmlNamespace, "xml":
			name = "xml:" + a.Name.Local
		case xlinkNamespace, "xlink":
			name = "xlink:" + a.Name.Local
		default:
			name = a.Name.Local
		}
		if name == "xmlns" {
			continue
		}
		out = append(out, Attr{Name: name, Value: a.Value})
	}
	return out
}

// ReadText accumulates character data until the end tag matching start.
// Nested elements are skipped. An Empty start yields "".
func (r *Reader) ReadText(start Event) (string, error) {
	if start.Kind == EventEmpty {
		return "", nil
	}
	var b strings.Builder
	for {
		ev, err := r.Next()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case EventText:
			b.WriteString(ev.Text)
		case EventStart:
			if err := r.Skip(ev); err != nil {
				return "", err
			}
		case EventEnd:
			return b.String(), nil
		case EventEOF:
			return "", &ferrors.XMLSyntaxError{Pos: ev.Pos, Err: io.ErrUnexpectedEOF}
		}
	}
}

// ReadOptionalText is ReadText reporting false when the element had no text,
// whether it was written self-closing or as an empty pair.
func (r *Reader) ReadOptionalText(start Event) (string, bool, error) {
	text, err := r.ReadText(start)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(text) == "" {
		return "", false, nil
	}
	return text, true, nil
}

// Skip discards everything up to and including the end tag matching start.
func (r *Reader) Skip(start Event) error {
	if start.Kind != EventStart {
		return nil
	}
	depth := 1
	for depth > 0 {
		ev, err := r.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventStart:
			depth++
		case EventEnd:
			depth--
		case EventEOF:
			return &ferrors.XMLSyntaxError{Pos: ev.Pos, Err: io.ErrUnexpectedEOF}
		}
	}
	return nil
}
