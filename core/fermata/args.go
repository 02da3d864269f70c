package fermata

import (
	"strconv"
	"strings"

	"github.com/oxur/fermata/core/sexpr"
)

// formArgs splits the arguments of a form into positional values and
// keyword values.
type formArgs struct {
	form       string
	list       *sexpr.List
	positional []sexpr.Value
	keywords   map[string]sexpr.Value
}

// expectForm checks that v is a list headed by name.
func expectForm(v sexpr.Value, name string) (*sexpr.List, error) {
	l, ok := v.(*sexpr.List)
	if !ok {
		return nil, compileErr(InvalidForm, name, v, "expected a list")
	}
	if head := l.Head(); head != name {
		return nil, compileErr(InvalidForm, name, v, "expected (%s ...), found (%s ...)", name, head)
	}
	return l, nil
}

// parseArgs reads the items after the head of l. Every keyword must be one
// of allowed, appear once and be followed by a value.
func parseArgs(l *sexpr.List, allowed ...string) (*formArgs, error) {
	a := &formArgs{form: l.Head(), list: l, keywords: make(map[string]sexpr.Value)}
	items := l.Items[1:]
	for i := 0; i < len(items); i++ {
		kw, ok := items[i].(*sexpr.Keyword)
		if !ok {
			a.positional = append(a.positional, items[i])
			continue
		}
		if !contains(allowed, kw.Name) {
			return nil, compileErr(InvalidForm, a.form, kw, "unknown keyword :%s", kw.Name)
		}
		if _, dup := a.keywords[kw.Name]; dup {
			return nil, compileErr(InvalidForm, a.form, kw, "duplicate keyword :%s", kw.Name)
		}
		if i+1 == len(items) {
			return nil, compileErr(MissingArgument, a.form, kw, "no value for :%s", kw.Name)
		}
		if _, isKw := items[i+1].(*sexpr.Keyword); isKw {
			return nil, compileErr(MissingArgument, a.form, kw, "no value for :%s", kw.Name)
		}
		a.keywords[kw.Name] = items[i+1]
		i++
	}
	return a, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (a *formArgs) has(name string) bool {
	_, ok := a.keywords[name]
	return ok
}

// at returns the position to blame when an argument is missing.
func (a *formArgs) at() sexpr.Value { return a.list }

// word returns the text of a symbol or string.
func word(v sexpr.Value) (string, bool) {
	switch x := v.(type) {
	case *sexpr.Symbol:
		return x.Name, true
	case *sexpr.String:
		return x.Value, true
	}
	return "", false
}

func (a *formArgs) wordArg(name string, v sexpr.Value) (string, error) {
	s, ok := word(v)
	if !ok {
		return "", compileErr(InvalidArgument, a.form, v, "%s must be a symbol or string", name)
	}
	return s, nil
}

func (a *formArgs) intArg(name string, v sexpr.Value) (int, error) {
	n, ok := v.(*sexpr.Number)
	if !ok {
		return 0, compileErr(InvalidArgument, a.form, v, "%s must be a number", name)
	}
	i, err := n.Int()
	if err != nil {
		return 0, compileErr(InvalidArgument, a.form, v, "%s must be an integer, found %s", name, n.Text)
	}
	return i, nil
}

// optionalInt returns the integer keyword argument name, or nil if absent.
func (a *formArgs) optionalInt(name string) (*int, error) {
	v, ok := a.keywords[name]
	if !ok {
		return nil, nil
	}
	i, err := a.intArg(name, v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// staff returns the :staff argument as a staff number in 1..255.
func (a *formArgs) staff() (*uint8, error) {
	n, err := a.optionalInt("staff")
	if err != nil || n == nil {
		return nil, err
	}
	if *n < 1 || *n > 255 {
		return nil, compileErr(InvalidArgument, a.form, a.keywords["staff"], "staff %d out of range 1..255", *n)
	}
	s := uint8(*n)
	return &s, nil
}

// integerText returns the decimal text of a positive integer, given as a
// number or a string.
func integerText(v sexpr.Value) (string, bool) {
	var text string
	switch x := v.(type) {
	case *sexpr.Number:
		text = x.Text
	case *sexpr.String:
		text = strings.TrimSpace(x.Value)
	default:
		return "", false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}
