package model

import (
	"strings"

	"github.com/odooscan/odooscan/internal/pyast"
)

// Render turns an expression fragment into a short stable string for
// default values and decorator arguments. It is intentionally lossy for
// composite expressions: calls, lambdas, lists and tuples collapse to
// placeholders so signatures stay short and diffable.
func Render(e pyast.Expr) string {
	switch e.Kind() {
	case pyast.Identifier:
		return e.Ident()
	case pyast.Call, pyast.Lambda:
		return "<Call()>"
	case pyast.List:
		return "<List()>"
	case pyast.Tuple:
		return "<Tuple()>"
	case pyast.Constant:
		if s, ok := e.StringValue(); ok {
			return pyRepr(s)
		}
		// Numbers, True/False, None render as written.
		return e.Text()
	}
	return e.Text()
}

// pyRepr renders a string the way Python's repr() does: single-quoted
// unless the value contains a single quote and no double quote.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}
	var sb strings.Builder
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
