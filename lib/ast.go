package lib

import (
	"fmt"
	"strconv"
)

type binaryExprOpType int

const (
	BinaryExprOpAdd binaryExprOpType = iota
	BinaryExprOpSubtract
	BinaryExprOpMultiply
	BinaryExprOpDivide
)

func (op binaryExprOpType) String() string {
	switch op {
	case BinaryExprOpAdd:
		return "+"
	case BinaryExprOpSubtract:
		return "-"
	case BinaryExprOpMultiply:
		return "*"
	case BinaryExprOpDivide:
		return "/"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Expression is a node in a parsed expression tree. Every node is owned by
// exactly one parent and the tree is never modified after Parse returns it.
type Expression interface {
	fmt.Stringer
	isExpression()
}

func (n NumberLiteral) isExpression()    {}
func (b BinaryExpression) isExpression() {}

type NumberLiteral struct {
	Value int64
}

func (n NumberLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    binaryExprOpType
}

func (b BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
