// Package errors provides the typed error values shared by the Fermata codecs.
//
// Every decoder failure is one of a small set of structs, each carrying the
// reader position where it was detected and unwrapping to a sentinel so that
// callers can branch with errors.Is or pull out the structure with errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure category.
var (
	// ErrXMLSyntax indicates the input was not well-formed XML.
	ErrXMLSyntax = errors.New("xml syntax error")
	// ErrMissingElement indicates a required child element was absent.
	ErrMissingElement = errors.New("missing element")
	// ErrMissingAttribute indicates a required attribute was absent.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrInvalidValue indicates a token or number that could not be interpreted.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUndefinedReference indicates an ID that refers to nothing.
	ErrUndefinedReference = errors.New("undefined reference")
	// ErrUnexpectedElement indicates an element that cannot appear where it was found.
	ErrUnexpectedElement = errors.New("unexpected element")
	// ErrUnsupported indicates a valid construct that is not implemented.
	ErrUnsupported = errors.New("unsupported")
	// ErrIO indicates a failure of the underlying reader or writer.
	ErrIO = errors.New("i/o error")
)

// Position locates a diagnostic in the source text.
type Position struct {
	Offset int64 // byte offset from the start of the input
	Line   int   // 1-based line
	Column int   // 1-based column
}

// String renders the position as line:column.
func (p Position) String() string {
	if p.Line == 0 {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was recorded.
func (p Position) IsValid() bool {
	return p.Line > 0 || p.Offset > 0
}

// Positioned is implemented by errors that know where they happened.
type Positioned interface {
	error
	Position() Position
}

// PositionOf returns the position of the first Positioned error in err's chain.
func PositionOf(err error) (Position, bool) {
	var p Positioned
	if errors.As(err, &p) {
		return p.Position(), true
	}
	return Position{}, false
}

// XMLSyntaxError wraps a tokenizer failure.
type XMLSyntaxError struct {
	Pos Position
	Err error
}

func (e *XMLSyntaxError) Error() string {
	return fmt.Sprintf("%s: malformed XML: %v", e.Pos, e.Err)
}

func (e *XMLSyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrXMLSyntax, e.Err}
	}
	return []error{ErrXMLSyntax}
}

func (e *XMLSyntaxError) Position() Position { return e.Pos }

// MissingElementError reports a required child that never appeared.
type MissingElementError struct {
	Element string // the missing child
	Parent  string // the element that required it
	Pos     Position
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%s: missing required element <%s> in <%s>", e.Pos, e.Element, e.Parent)
}

func (e *MissingElementError) Unwrap() error { return ErrMissingElement }

func (e *MissingElementError) Position() Position { return e.Pos }

// MissingAttributeError reports a required attribute that was not present.
type MissingAttributeError struct {
	Attribute string
	Element   string
	Pos       Position
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: missing required attribute %q on <%s>", e.Pos, e.Attribute, e.Element)
}

func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }

func (e *MissingAttributeError) Position() Position { return e.Pos }

// InvalidValueError reports a value outside the field's vocabulary or range.
type InvalidValueError struct {
	Field string // element or attribute name
	Value string // the offending text
	Pos   Position
	Err   error // parse failure, if any
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid value %q for %s: %v", e.Pos, e.Value, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: invalid value %q for %s", e.Pos, e.Value, e.Field)
}

func (e *InvalidValueError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidValue, e.Err}
	}
	return []error{ErrInvalidValue}
}

func (e *InvalidValueError) Position() Position { return e.Pos }

// UndefinedReferenceError reports an ID with no definition.
type UndefinedReferenceError struct {
	ReferenceType string // e.g. "part"
	ID            string
	Pos           Position
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("%s: undefined %s reference %q", e.Pos, e.ReferenceType, e.ID)
}

func (e *UndefinedReferenceError) Unwrap() error { return ErrUndefinedReference }

func (e *UndefinedReferenceError) Position() Position { return e.Pos }

// UnexpectedElementError reports an element in the wrong place, such as a
// document whose root is not a score.
type UnexpectedElementError struct {
	Element  string
	Expected string
	Pos      Position
}

func (e *UnexpectedElementError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: unexpected element <%s>, expected <%s>", e.Pos, e.Element, e.Expected)
	}
	return fmt.Sprintf("%s: unexpected element <%s>", e.Pos, e.Element)
}

func (e *UnexpectedElementError) Unwrap() error { return ErrUnexpectedElement }

func (e *UnexpectedElementError) Position() Position { return e.Pos }

// OtherError is the catch-all decoder failure.
type OtherError struct {
	Message string
	Pos     Position
	Err     error // e.g. ErrUnsupported
}

func (e *OtherError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *OtherError) Unwrap() error { return e.Err }

func (e *OtherError) Position() Position { return e.Pos }

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Helper functions for creating common errors

// NewMissingElement creates a MissingElementError.
func NewMissingElement(element, parent string, pos Position) *MissingElementError {
	return &MissingElementError{Element: element, Parent: parent, Pos: pos}
}

// NewMissingAttribute creates a MissingAttributeError.
func NewMissingAttribute(attribute, element string, pos Position) *MissingAttributeError {
	return &MissingAttributeError{Attribute: attribute, Element: element, Pos: pos}
}

// NewInvalidValue creates an InvalidValueError.
func NewInvalidValue(field, value string, pos Position) *InvalidValueError {
	return &InvalidValueError{Field: field, Value: value, Pos: pos}
}

// NewUndefinedReference creates an UndefinedReferenceError.
func NewUndefinedReference(refType, id string, pos Position) *UndefinedReferenceError {
	return &UndefinedReferenceError{ReferenceType: refType, ID: id, Pos: pos}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Unsupported creates an OtherError for a recognized but unimplemented construct.
func Unsupported(message string, pos Position) *OtherError {
	return &OtherError{Message: message, Pos: pos, Err: ErrUnsupported}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
