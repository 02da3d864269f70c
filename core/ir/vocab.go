package ir

import (
	"fmt"
	"sort"

	ferrors "github.com/oxur/fermata/core/errors"
)

// Vocabulary describes one controlled-value table. Every enumeration in the
// package has exactly one, shared by the decoder, the encoder, the printer and
// the compiler.
type Vocabulary interface {
	// Field is the XML element or attribute name the values belong to.
	Field() string
	// Tokens lists every canonical token in value order.
	Tokens() []string
	// Check verifies that every value formats and parses back to itself.
	Check() error
}

type vocabulary[T ~int] struct {
	field  string
	names  map[T]string
	values map[string]T
}

var registry []Vocabulary

// newVocabulary builds a table and registers it for Vocabularies. Tokens
// must be unique and non-empty; the zero value of T is reserved for "absent".
func newVocabulary[T ~int](field string, names map[T]string) *vocabulary[T] {
	v := &vocabulary[T]{field: field, names: names, values: make(map[string]T, len(names))}
	for val, tok := range names {
		if val == 0 || tok == "" {
			panic(fmt.Sprintf("ir: vocabulary %s: zero value or empty token", field))
		}
		if _, dup := v.values[tok]; dup {
			panic(fmt.Sprintf("ir: vocabulary %s: duplicate token %q", field, tok))
		}
		v.values[tok] = val
	}
	registry = append(registry, v)
	return v
}

func (v *vocabulary[T]) format(x T) string {
	return v.names[x]
}

func (v *vocabulary[T]) parse(s string) (T, error) {
	if x, ok := v.values[s]; ok {
		return x, nil
	}
	return 0, &ferrors.InvalidValueError{Field: v.field, Value: s}
}

func (v *vocabulary[T]) sorted() []T {
	out := make([]T, 0, len(v.names))
	for x := range v.names {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (v *vocabulary[T]) Field() string { return v.field }

func (v *vocabulary[T]) Tokens() []string {
	vals := v.sorted()
	out := make([]string, len(vals))
	for i, x := range vals {
		out[i] = v.names[x]
	}
	return out
}

func (v *vocabulary[T]) Check() error {
	vals := v.sorted()
	for i, x := range vals {
		if int(x) != i+1 {
			return fmt.Errorf("%s: values are not contiguous from 1 (found %d at %d)", v.field, x, i)
		}
		back, err := v.parse(v.format(x))
		if err != nil {
			return fmt.Errorf("%s: %w", v.field, err)
		}
		if back != x {
			return fmt.Errorf("%s: %q parsed to %d, want %d", v.field, v.format(x), back, x)
		}
	}
	return nil
}

// Vocabularies returns every registered table.
func Vocabularies() []Vocabulary {
	out := make([]Vocabulary, len(registry))
	copy(out, registry)
	return out
}

// VocabularyFor returns the table registered for field.
func VocabularyFor(field string) (Vocabulary, bool) {
	for _, v := range registry {
		if v.Field() == field {
			return v, true
		}
	}
	return nil, false
}
