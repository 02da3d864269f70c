package xml

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	ferrors "github.com/oxur/fermata/core/errors"
)

// Document is a parsed XML tree for inspection and XPath queries. The codecs
// never build one; it serves tooling and tests.
type Document struct {
	root *xmlquery.Node
}

// Node represents an XML node (element, text, attribute, etc.).
type Node struct {
	node *xmlquery.Node
}

// ValidationResult contains the result of XML validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Pos     ferrors.Position
	Message string
}

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Validate checks well-formedness by streaming data through a Reader, so
// the reported position matches what the decoder would report.
func Validate(data []byte) ValidationResult {
	result := ValidationResult{Valid: true}
	r, err := NewReader(data)
	if err != nil {
		return ValidationResult{Errors: []ValidationError{{Message: err.Error()}}}
	}
	sawRoot := false
	for {
		ev, err := r.Next()
		if err != nil {
			result.Valid = false
			pos, _ := ferrors.PositionOf(err)
			result.Errors = append(result.Errors, ValidationError{Pos: pos, Message: err.Error()})
			return result
		}
		if ev.Kind == EventEOF {
			break
		}
		if ev.IsElement() {
			sawRoot = true
		}
	}
	if !sawRoot {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{Pos: r.Position(), Message: "document has no root element"})
	}
	return result
}

// Root returns the root element of the document.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// XPath executes an XPath query and returns matching nodes.
func (d *Document) XPath(expr string) ([]*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	nodes, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result, nil
}

// XPathFirst executes an XPath query and returns the first matching node.
func (d *Document) XPathFirst(expr string) (*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	node, err := xmlquery.Query(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	if node == nil {
		return nil, nil
	}
	return &Node{node: node}, nil
}

// Count evaluates a node-set expression and returns its size.
func (d *Document) Count(expr string) (int, error) {
	compiled, err := xpath.Compile("count(" + expr + ")")
	if err != nil {
		return 0, fmt.Errorf("invalid xpath: %w", err)
	}
	v := compiled.Evaluate(xmlquery.CreateXPathNavigator(d.root))
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("xpath count returned %T", v)
	}
	return int(f), nil
}

// Name returns the element name.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	return n.node.Data
}

// Text returns all text content of the node and its descendants.
func (n *Node) Text() string {
	if n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// Children returns the child element nodes.
func (n *Node) Children() []*Node {
	if n.node == nil {
		return nil
	}

	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// ChildNames returns the names of the child elements in document order.
func (n *Node) ChildNames() []string {
	var names []string
	for _, c := range n.Children() {
		names = append(names, c.Name())
	}
	return names
}

// Attr returns the value of a specific attribute.
func (n *Node) Attr(name string) string {
	if n.node == nil {
		return ""
	}
	return n.node.SelectAttr(name)
}
