package lib

import (
	"fmt"
	"math"
)

// Eval computes the value of a tree produced by Parse. Overflow and division
// by zero come back as *EvalError. A tree holding an unknown operator comes
// back as *InvalidTreeError.
func Eval(expr Expression) (int64, error) {
	switch typed := expr.(type) {
	case NumberLiteral:
		return typed.Value, nil
	case BinaryExpression:
		return evalBinary(typed)
	default:
		return 0, &InvalidTreeError{Reason: fmt.Sprintf("unknown node %T", expr)}
	}
}

func evalBinary(b BinaryExpression) (int64, error) {
	left, err := Eval(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := Eval(b.Right)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case BinaryExprOpAdd:
		return add(left, right)
	case BinaryExprOpSubtract:
		return subtract(left, right)
	case BinaryExprOpMultiply:
		return multiply(left, right)
	case BinaryExprOpDivide:
		return divide(left, right)
	default:
		return 0, &InvalidTreeError{Reason: fmt.Sprintf("unknown binary operator %d", int(b.Op))}
	}
}

func add(a int64, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, overflow(a, BinaryExprOpAdd, b)
	}
	return a + b, nil
}

func subtract(a int64, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, overflow(a, BinaryExprOpSubtract, b)
	}
	return a - b, nil
}

func multiply(a int64, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	result := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || result/b != a {
		return 0, overflow(a, BinaryExprOpMultiply, b)
	}
	return result, nil
}

// Truncates toward zero.
func divide(a int64, b int64) (int64, error) {
	if b == 0 {
		return 0, &EvalError{
			kind: ErrorKindDivisionByZero,
			Msg:  fmt.Sprintf("Division by zero in %d / %d", a, b),
		}
	}
	if a == math.MinInt64 && b == -1 {
		return 0, overflow(a, BinaryExprOpDivide, b)
	}
	return a / b, nil
}

func overflow(a int64, op binaryExprOpType, b int64) *EvalError {
	return &EvalError{
		kind: ErrorKindNumericOverflow,
		Msg:  fmt.Sprintf("Integer overflow in %d %s %d", a, op, b),
	}
}
