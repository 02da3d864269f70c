// Package fermata maps the IR to and from the Fermata S-expression syntax.
//
// The printer renders any IR node as a form
//
//	(tag :keyword value ... child ...)
//
// where the tag is the node's element name, keyword arguments hold its
// scalar fields and children follow as nested forms. The compiler goes the
// other way for a small set of attribute forms: key, time, clef and
// attributes.
package fermata

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	ferrors "github.com/oxur/fermata/core/errors"
	"github.com/oxur/fermata/core/ir"
	"github.com/oxur/fermata/core/sexpr"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// childTags names the children of slice fields whose element type says
// little on its own. Keys are "Type.Field".
var childTags = map[string]string{
	"Identification.Creators":  "creator",
	"Identification.Rights":    "rights",
	"Identification.Relations": "relation",
	"Encoding.Encoders":        "encoder",
	"Credit.Words":             "credit-words",
	"Note.Dots":                "dot",
}

// ScoreForm returns the Fermata form of a score, or nil for a nil score.
func ScoreForm(score *ir.ScorePartwise) sexpr.Value {
	if score == nil {
		return nil
	}
	return Form(score)
}

// Form returns the Fermata form of an IR node. v is a struct or a pointer
// to one; scalars come back as atoms and nil as nil.
func Form(v any) sexpr.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() != reflect.Struct {
		return atom(rv)
	}
	return structForm(kebab(rv.Type().Name()), rv)
}

// Print writes the Fermata form of score to w.
func Print(w io.Writer, score *ir.ScorePartwise, opts sexpr.Options) error {
	if score == nil {
		return &ferrors.InvalidValueError{Field: "score-partwise", Value: "<nil>"}
	}
	return sexpr.Format(w, ScoreForm(score), opts)
}

// PrintString returns the Fermata text of score without a trailing newline.
func PrintString(score *ir.ScorePartwise, opts sexpr.Options) string {
	if score == nil {
		return ""
	}
	return sexpr.FormatString(ScoreForm(score), opts)
}

type formBuilder struct {
	args     []sexpr.Value
	children []sexpr.Value
}

func structForm(tag string, rv reflect.Value) *sexpr.List {
	var b formBuilder
	b.fields(rv)
	items := make([]sexpr.Value, 0, 1+len(b.args)+len(b.children))
	items = append(items, sexpr.Sym(tag))
	items = append(items, b.args...)
	items = append(items, b.children...)
	return sexpr.NewList(items...)
}

// fields adds the fields of a struct value in declaration order. Embedded
// structs are flattened into the enclosing form.
func (b *formBuilder) fields(rv reflect.Value) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			b.fields(fv)
			continue
		}
		b.field(t.Name()+"."+f.Name, kebab(f.Name), fv)
	}
}

func (b *formBuilder) arg(name string, v sexpr.Value) {
	b.args = append(b.args, sexpr.Kw(name), v)
}

func (b *formBuilder) field(key, name string, fv reflect.Value) {
	if isEnum(fv.Type()) {
		if fv.Int() != 0 {
			b.arg(name, atom(fv))
		}
		return
	}
	switch fv.Kind() {
	case reflect.String:
		if fv.String() != "" {
			b.arg(name, atom(fv))
		}
	case reflect.Bool:
		if fv.Bool() {
			b.arg(name, atom(fv))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		b.arg(name, atom(fv))
	case reflect.Pointer:
		if fv.IsNil() {
			return
		}
		elem := fv.Elem()
		if elem.Kind() == reflect.Struct {
			b.children = append(b.children, structForm(name, elem))
			return
		}
		// A present optional scalar prints even when it is empty.
		b.arg(name, atom(elem))
	case reflect.Struct:
		if !fv.IsZero() {
			b.children = append(b.children, structForm(name, fv))
		}
	case reflect.Interface:
		if child := Form(fv.Interface()); child != nil {
			b.children = append(b.children, child)
		}
	case reflect.Slice:
		b.slice(key, name, fv)
	}
}

func (b *formBuilder) slice(key, name string, fv reflect.Value) {
	if fv.Len() == 0 {
		return
	}
	if isScalar(fv.Type().Elem()) {
		items := make([]sexpr.Value, fv.Len())
		for i := range items {
			items[i] = atom(fv.Index(i))
		}
		b.arg(name, sexpr.NewList(items...))
		return
	}
	tag, renamed := childTags[key]
	for i := 0; i < fv.Len(); i++ {
		ev := fv.Index(i)
		for ev.Kind() == reflect.Pointer || ev.Kind() == reflect.Interface {
			if ev.IsNil() {
				break
			}
			ev = ev.Elem()
		}
		if ev.Kind() != reflect.Struct {
			continue
		}
		t := tag
		if !renamed {
			t = kebab(ev.Type().Name())
		}
		b.children = append(b.children, structForm(t, ev))
	}
}

func isEnum(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return t.PkgPath() != "" && t.Implements(stringerType)
	}
	return false
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// atom renders a scalar: enums and booleans as symbols, text as a string,
// numbers in their shortest form.
func atom(v reflect.Value) sexpr.Value {
	if isEnum(v.Type()) {
		return sexpr.Sym(v.Interface().(fmt.Stringer).String())
	}
	switch v.Kind() {
	case reflect.String:
		return sexpr.Str(v.String())
	case reflect.Bool:
		if v.Bool() {
			return sexpr.Sym("true")
		}
		return sexpr.Sym("false")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &sexpr.Number{Text: fmt.Sprint(v.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &sexpr.Number{Text: fmt.Sprint(v.Uint())}
	case reflect.Float32, reflect.Float64:
		return sexpr.Float(v.Float())
	}
	return sexpr.Str(fmt.Sprint(v.Interface()))
}

// kebab turns a Go identifier into an element-style name: DefaultX becomes
// default-x and ID becomes id.
func kebab(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			endsAcronym := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || endsAcronym {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
