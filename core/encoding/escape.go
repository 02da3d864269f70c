// Package encoding provides the text escaping shared by the XML writer and
// the S-expression formatter.
package encoding

import (
	"strconv"
	"strings"
)

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#xD;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"\r", "&#xD;",
		"\n", "&#xA;",
		"\t", "&#x9;",
	)
)

// EscapeXMLText escapes text content. Quotes are left alone; carriage returns
// become character references so end-of-line normalization cannot drop them.
func EscapeXMLText(s string) string {
	if !strings.ContainsAny(s, "&<>\r") {
		return s
	}
	return textEscaper.Replace(s)
}

// EscapeXMLAttr escapes text for use in a double-quoted XML attribute.
// Whitespace characters that attribute-value normalization would fold into
// spaces are written as character references.
func EscapeXMLAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"\r\n\t") {
		return s
	}
	return attrEscaper.Replace(s)
}

// QuoteString renders s as a double-quoted S-expression string literal.
// Only backslash, quote and control characters are escaped; other runes are
// written verbatim.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				b.WriteString(strings.Repeat("0", 4-len(hex)))
				b.WriteString(hex)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// UnquoteString reverses QuoteString. The input must include the quotes.
func UnquoteString(s string) (string, error) {
	return strconv.Unquote(s)
}
