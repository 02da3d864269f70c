package xml

import (
	"strconv"
	"strings"

	ferrors "github.com/oxur/fermata/core/errors"
)

// Attr is a single name="value" pair. Prefixed names keep their prefix
// ("xml:lang", "xlink:href").
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. On the writing side its methods form a
// builder: each returns the extended list and skips absent values.
type Attrs []Attr

// Get returns the named attribute's value.
func (a Attrs) Get(name string) (string, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}

// Attr returns the named attribute, or "" when absent.
func (e Event) Attr(name string) string {
	v, _ := e.Attrs.Get(name)
	return v
}

// RequiredAttr returns the named attribute or a MissingAttributeError naming
// both the attribute and the owning element.
func (e Event) RequiredAttr(name string) (string, error) {
	v, ok := e.Attrs.Get(name)
	if !ok {
		return "", ferrors.NewMissingAttribute(name, e.Name, e.Pos)
	}
	return v, nil
}

// OptionalAttr returns the named attribute and whether it was present.
func (e Event) OptionalAttr(name string) (string, bool) {
	return e.Attrs.Get(name)
}

// OptionalAttrAs parses the named attribute with parse. It returns nil when the
// attribute is absent and an InvalidValueError when parse fails.
func OptionalAttrAs[T any](e Event, name string, parse func(string) (T, error)) (*T, error) {
	raw, ok := e.Attrs.Get(name)
	if !ok {
		return nil, nil
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, &ferrors.InvalidValueError{Field: name, Value: raw, Pos: e.Pos, Err: unwrapInvalid(err)}
	}
	return &v, nil
}

// RequiredAttrAs is OptionalAttrAs for an attribute that must be present.
func RequiredAttrAs[T any](e Event, name string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, err := e.RequiredAttr(name)
	if err != nil {
		return zero, err
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return zero, &ferrors.InvalidValueError{Field: name, Value: raw, Pos: e.Pos, Err: unwrapInvalid(err)}
	}
	return v, nil
}

// EnumAttr parses an optional enumerated attribute, returning the zero value
// when it is absent.
func EnumAttr[T any](e Event, name string, parse func(string) (T, error)) (T, error) {
	var zero T
	v, err := OptionalAttrAs(e, name, parse)
	if err != nil || v == nil {
		return zero, err
	}
	return *v, nil
}

// unwrapInvalid drops a vocabulary InvalidValueError so the attribute-level
// error does not nest a second copy of the same field and value.
func unwrapInvalid(err error) error {
	var iv *ferrors.InvalidValueError
	if ferrors.As(err, &iv) {
		return iv.Err
	}
	return err
}

// ParseFloat parses an XML decimal.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseInt parses an XML integer.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseUint8 parses a small non-negative integer such as a staff number.
func ParseUint8(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	return uint8(n), err
}

// ParseInt8 parses a small signed integer such as a key's fifths.
func ParseInt8(s string) (int8, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 8)
	return int8(n), err
}

// FormatFloat renders a decimal without a trailing ".0" for whole numbers.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Str appends name=value unless value is empty.
func (a Attrs) Str(name, value string) Attrs {
	if value == "" {
		return a
	}
	return append(a, Attr{Name: name, Value: value})
}

// Req appends name=value unconditionally.
func (a Attrs) Req(name, value string) Attrs {
	return append(a, Attr{Name: name, Value: value})
}

// Float appends a decimal attribute when v is set.
func (a Attrs) Float(name string, v *float64) Attrs {
	if v == nil {
		return a
	}
	return append(a, Attr{Name: name, Value: FormatFloat(*v)})
}

// Int appends an integer attribute when v is set.
func (a Attrs) Int(name string, v *int) Attrs {
	if v == nil {
		return a
	}
	return append(a, Attr{Name: name, Value: strconv.Itoa(*v)})
}

// Uint8 appends a small integer attribute when v is set.
func (a Attrs) Uint8(name string, v *uint8) Attrs {
	if v == nil {
		return a
	}
	return append(a, Attr{Name: name, Value: strconv.Itoa(int(*v))})
}
