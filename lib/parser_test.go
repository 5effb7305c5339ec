package lib

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func num(n int64) Expression { return NumberLiteral{Value: n} }

func bin(l Expression, op binaryExprOpType, r Expression) Expression {
	return BinaryExpression{Left: l, Right: r, Op: op}
}

func requireTree(t *testing.T, text string, expected Expression) {
	expr, err := Parse(text)
	require.NoError(t, err, text)
	require.Equal(t, expected, expr, spew.Sdump(expr))
}

func requireParseError(t *testing.T, text string, kind ErrorKind) *ParseError {
	_, err := Parse(text)
	require.Error(t, err, text)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "%s: %T", text, err)
	require.Equal(t, kind, parseErr.Kind(), parseErr.Error())
	return parseErr
}

func TestParseSingleNumber(t *testing.T) {
	requireTree(t, "5", num(5))
}

func TestParseMultiplicationBeforeAddition(t *testing.T) {
	requireTree(t, "1 * 2 + 3 * 4", bin(
		bin(num(1), BinaryExprOpMultiply, num(2)),
		BinaryExprOpAdd,
		bin(num(3), BinaryExprOpMultiply, num(4))))
}

func TestParseHigherPrecedenceOnRight(t *testing.T) {
	requireTree(t, "1 + 2 * 3", bin(
		num(1),
		BinaryExprOpAdd,
		bin(num(2), BinaryExprOpMultiply, num(3))))
}

func TestParseLeftAssociative(t *testing.T) {
	requireTree(t, "10 - 2 - 3", bin(
		bin(num(10), BinaryExprOpSubtract, num(2)),
		BinaryExprOpSubtract,
		num(3)))

	requireTree(t, "8 / 4 * 2", bin(
		bin(num(8), BinaryExprOpDivide, num(4)),
		BinaryExprOpMultiply,
		num(2)))
}

func TestParseMixedChain(t *testing.T) {
	// 1 - 2 * 3 / 4 + 5  =>  ((1 - ((2 * 3) / 4)) + 5)
	requireTree(t, "1 - 2 * 3 / 4 + 5", bin(
		bin(
			num(1),
			BinaryExprOpSubtract,
			bin(bin(num(2), BinaryExprOpMultiply, num(3)), BinaryExprOpDivide, num(4))),
		BinaryExprOpAdd,
		num(5)))
}

func TestParseUnaryMinus(t *testing.T) {
	requireTree(t, "-5 + 3", bin(num(-5), BinaryExprOpAdd, num(3)))
	requireTree(t, "- 5", num(-5))
	requireTree(t, "1 - -2", bin(num(1), BinaryExprOpSubtract, num(-2)))
	requireTree(t, "2*-3", bin(num(2), BinaryExprOpMultiply, num(-3)))
}

func TestParseString(t *testing.T) {
	expr, err := Parse("1 * 2 + 3 * 4")
	require.NoError(t, err)
	require.Equal(t, "((1 * 2) + (3 * 4))", expr.String())
}

func TestParseLeadingOperator(t *testing.T) {
	parseErr := requireParseError(t, "+1", ErrorKindUnexpectedToken)
	require.Equal(t, "Unexpected <1:1 -> +> at expression start", parseErr.Error())
}

func TestParseEmpty(t *testing.T) {
	parseErr := requireParseError(t, "", ErrorKindUnexpectedToken)
	require.Contains(t, parseErr.Error(), "EOF")
	requireParseError(t, "   ", ErrorKindUnexpectedToken)
}

func TestParseMissingRightOperand(t *testing.T) {
	parseErr := requireParseError(t, "1 +", ErrorKindUnexpectedToken)
	line, col := parseErr.Location()
	require.Equal(t, 1, line)
	require.Equal(t, 4, col)

	requireParseError(t, "1 * * 2", ErrorKindUnexpectedToken)
}

func TestParseTrailingInput(t *testing.T) {
	requireParseError(t, "1 2", ErrorKindUnexpectedToken)
	parseErr := requireParseError(t, "1 + 2 $", ErrorKindUnexpectedToken)
	require.Contains(t, parseErr.Error(), `illegal: "$"`)
}

func TestParseIllegalCharacter(t *testing.T) {
	requireParseError(t, "(1 + 2)", ErrorKindUnexpectedToken)
	requireParseError(t, "1 + x", ErrorKindUnexpectedToken)
}

func TestParseUnsupportedUnaryOperand(t *testing.T) {
	requireParseError(t, "--1", ErrorKindUnsupportedUnaryOperand)
	requireParseError(t, "-", ErrorKindUnsupportedUnaryOperand)
	requireParseError(t, "-(1)", ErrorKindUnsupportedUnaryOperand)
	requireParseError(t, "3 * -x", ErrorKindUnsupportedUnaryOperand)
}

func TestParseMalformedLiteral(t *testing.T) {
	requireParseError(t, "1.5 + 2", ErrorKindMalformedLiteral)
	requireParseError(t, "2 * 3.", ErrorKindMalformedLiteral)
}

func TestParseLiteralOverflow(t *testing.T) {
	requireParseError(t, "99999999999999999999", ErrorKindNumericOverflow)
	requireParseError(t, "1 + 99999999999999999999", ErrorKindNumericOverflow)
}

func TestParseIsRepeatable(t *testing.T) {
	first, err := Parse("4 - 3 * -2")
	require.NoError(t, err)
	second, err := Parse("4 - 3 * -2")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
