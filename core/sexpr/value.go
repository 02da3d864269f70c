// Package sexpr provides the generic S-expression tree used by the Fermata
// surface syntax, a reader for it and a text formatter.
//
// A tree holds lists, symbols, keywords (":name"), strings and numbers. The
// package knows nothing about music; package fermata gives the tree meaning.
package sexpr

import (
	"strconv"

	ferrors "github.com/oxur/fermata/core/errors"
)

// Value is a node of an S-expression tree: *List, *Symbol, *Keyword,
// *String or *Number.
type Value interface {
	// Position is where the value started in its source, or the zero
	// Position for a value built in code.
	Position() ferrors.Position
	value()
}

// List is a parenthesized sequence.
type List struct {
	Items []Value
	Pos   ferrors.Position
}

// Symbol is a bare name such as major or treble-8vb.
type Symbol struct {
	Name string
	Pos  ferrors.Position
}

// Keyword is a name introduced by a colon. Name excludes the colon.
type Keyword struct {
	Name string
	Pos  ferrors.Position
}

// String is a quoted string. Value is unescaped.
type String struct {
	Value string
	Pos   ferrors.Position
}

// Number keeps its source text so formatting reproduces it.
type Number struct {
	Text string
	Pos  ferrors.Position
}

func (v *List) Position() ferrors.Position    { return v.Pos }
func (v *Symbol) Position() ferrors.Position  { return v.Pos }
func (v *Keyword) Position() ferrors.Position { return v.Pos }
func (v *String) Position() ferrors.Position  { return v.Pos }
func (v *Number) Position() ferrors.Position  { return v.Pos }

func (*List) value()    {}
func (*Symbol) value()  {}
func (*Keyword) value() {}
func (*String) value()  {}
func (*Number) value()  {}

// NewList builds a list from items.
func NewList(items ...Value) *List { return &List{Items: items} }

// Sym builds a symbol.
func Sym(name string) *Symbol { return &Symbol{Name: name} }

// Kw builds a keyword; name excludes the colon.
func Kw(name string) *Keyword { return &Keyword{Name: name} }

// Str builds a string.
func Str(s string) *String { return &String{Value: s} }

// Int builds an integer number.
func Int(n int) *Number { return &Number{Text: strconv.Itoa(n)} }

// Float builds a number in its shortest decimal form, without a trailing
// ".0" for whole values.
func Float(f float64) *Number { return &Number{Text: strconv.FormatFloat(f, 'f', -1, 64)} }

// Float parses the number as a float64.
func (v *Number) Float() (float64, error) {
	return strconv.ParseFloat(v.Text, 64)
}

// Int parses the number as an int. Numbers with a fraction or exponent
// fail.
func (v *Number) Int() (int, error) {
	return strconv.Atoi(v.Text)
}

// Head returns the symbol name of a list's first item, or "" when the list
// is empty or starts with something else.
func (v *List) Head() string {
	if len(v.Items) == 0 {
		return ""
	}
	if s, ok := v.Items[0].(*Symbol); ok {
		return s.Name
	}
	return ""
}

// Equal reports whether a and b are the same tree, ignoring positions.
// Numbers compare by value, so 1.50 equals 1.5.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *Keyword:
		y, ok := b.(*Keyword)
		return ok && x.Name == y.Name
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Number:
		y, ok := b.(*Number)
		if !ok {
			return false
		}
		if x.Text == y.Text {
			return true
		}
		fx, errx := x.Float()
		fy, erry := y.Float()
		return errx == nil && erry == nil && fx == fy
	}
	return a == nil && b == nil
}
