package sexpr

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/oxur/fermata/core/encoding"
	ferrors "github.com/oxur/fermata/core/errors"
)

// ErrSyntax is the sentinel wrapped by every SyntaxError.
var ErrSyntax = errors.New("sexpr syntax error")

// SyntaxError reports malformed source text.
type SyntaxError struct {
	Name    string
	Pos     ferrors.Position
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s:%s: %s", e.Name, e.Pos, e.Message)
}

// Position implements errors.Positioned.
func (e *SyntaxError) Position() ferrors.Position { return e.Pos }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// fileGrammar is a sequence of top-level values.
//
//nolint:govet // participle grammar tags are not standard struct tags
type fileGrammar struct {
	Values []*nodeGrammar `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type nodeGrammar struct {
	Pos     lexer.Position
	List    *listGrammar `  @@`
	Keyword *string      `| @Keyword`
	String  *string      `| @String`
	Atom    *string      `| @Atom`
}

//nolint:govet // participle grammar tags are not standard struct tags
type listGrammar struct {
	Items []*nodeGrammar `"(" @@* ")"`
}

// sexprLexer tokenizes S-expression source. Numbers and symbols share the
// Atom token; an atom is a Number only when all of it matches numberText,
// so 16th stays one symbol.
var sexprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Keyword", Pattern: `:[^\s()";:]+`},
	{Name: "Atom", Pattern: `[^\s()";:]+`},
	{Name: "Punct", Pattern: `[()]`},
})

var numberText = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

var sexprParser = participle.MustBuild[fileGrammar](
	participle.Lexer(sexprLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Read parses every top-level value in src. name labels positions in
// errors and is usually the file name.
func Read(name, src string) ([]Value, error) {
	file, err := sexprParser.ParseString(name, src)
	if err != nil {
		return nil, syntaxError(name, err)
	}
	values := make([]Value, 0, len(file.Values))
	for _, n := range file.Values {
		v, err := n.value(name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadOne parses src, which must hold exactly one value.
func ReadOne(name, src string) (Value, error) {
	values, err := Read(name, src)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, &SyntaxError{Name: name, Message: fmt.Sprintf("expected one value, found %d", len(values))}
	}
	return values[0], nil
}

func syntaxError(name string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Name: name, Pos: position(perr.Position()), Message: perr.Message()}
	}
	return &SyntaxError{Name: name, Message: err.Error()}
}

func position(p lexer.Position) ferrors.Position {
	return ferrors.Position{Offset: int64(p.Offset), Line: p.Line, Column: p.Column}
}

func (n *nodeGrammar) value(name string) (Value, error) {
	pos := position(n.Pos)
	switch {
	case n.List != nil:
		l := &List{Pos: pos, Items: make([]Value, 0, len(n.List.Items))}
		for _, item := range n.List.Items {
			v, err := item.value(name)
			if err != nil {
				return nil, err
			}
			l.Items = append(l.Items, v)
		}
		return l, nil
	case n.Keyword != nil:
		return &Keyword{Name: (*n.Keyword)[1:], Pos: pos}, nil
	case n.String != nil:
		text, err := encoding.UnquoteString(*n.String)
		if err != nil {
			return nil, &SyntaxError{Name: name, Pos: pos, Message: fmt.Sprintf("invalid string literal %s", *n.String)}
		}
		return &String{Value: text, Pos: pos}, nil
	case numberText.MatchString(*n.Atom):
		return &Number{Text: *n.Atom, Pos: pos}, nil
	default:
		return &Symbol{Name: *n.Atom, Pos: pos}, nil
	}
}
