package lib

import "fmt"

type tokenType int

const (
	tokenTypeIllegal tokenType = iota
	tokenTypeEOF
	tokenTypeNumber
	tokenTypePlus
	tokenTypeMinus
	tokenTypeSlash
	tokenTypeAsterisk
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	value    int64
	raw      []rune
	location charLocation
}

// Binding strength of a token when it appears in operator position. Anything
// that is not an arithmetic operator is 0 so it never extends an expression.
func (t token) precedence() int {
	switch t.tokType {
	case tokenTypePlus, tokenTypeMinus:
		return 1
	case tokenTypeAsterisk, tokenTypeSlash:
		return 2
	default:
		return 0
	}
}

func tokenString(tok token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeIllegal:
		return fmt.Sprintf("illegal: %q", string(tok.raw))
	case tokenTypeEOF:
		return "EOF"
	case tokenTypeNumber:
		return fmt.Sprintf("number: %d", tok.value)
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeSlash:
		return "/"
	case tokenTypeAsterisk:
		return "*"
	default:
		return "?"
	}
}
