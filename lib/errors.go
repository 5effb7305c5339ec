package lib

import "fmt"

type ErrorKind int

const (
	ErrorKindUnexpectedToken ErrorKind = iota
	ErrorKindMalformedLiteral
	ErrorKindUnsupportedUnaryOperand
	ErrorKindDivisionByZero
	ErrorKindNumericOverflow
	ErrorKindInvalidTree
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnexpectedToken:
		return "UnexpectedToken"
	case ErrorKindMalformedLiteral:
		return "MalformedLiteral"
	case ErrorKindUnsupportedUnaryOperand:
		return "UnsupportedUnaryOperand"
	case ErrorKindDivisionByZero:
		return "DivisionByZero"
	case ErrorKindNumericOverflow:
		return "NumericOverflow"
	case ErrorKindInvalidTree:
		return "InvalidTree"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Fault is implemented by every error the parser and evaluator produce.
type Fault interface {
	error
	Kind() ErrorKind
}

// ParseError is returned by Parse when the input cannot be turned into a tree.
// These are ordinary user errors.
type ParseError struct {
	kind ErrorKind
	tok  token
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Kind() ErrorKind {
	return e.kind
}

// Location returns the 1-based line and column of the offending token.
func (e *ParseError) Location() (line int, col int) {
	return e.tok.location.line, e.tok.location.col
}

func parseErrorf(kind ErrorKind, tok token, msg string, args ...interface{}) *ParseError {
	return &ParseError{kind: kind, tok: tok, Msg: fmt.Sprintf(msg, args...)}
}

// EvalError is an arithmetic fault hit while evaluating a well formed tree.
type EvalError struct {
	kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Msg
}

func (e *EvalError) Kind() ErrorKind {
	return e.kind
}

// InvalidTreeError means the tree handed to Eval could never have come out of
// Parse, e.g. a BinaryExpression with an operator outside the four arithmetic
// ones. It signals a bug in whatever built the tree, not bad input.
type InvalidTreeError struct {
	Reason string
}

func (e *InvalidTreeError) Error() string {
	return "Invalid expression tree: " + e.Reason
}

func (e *InvalidTreeError) Kind() ErrorKind {
	return ErrorKindInvalidTree
}
