package lib

// Parse turns a single arithmetic expression into a tree. The whole input
// must be consumed; anything left over after a complete expression is an
// error.
func Parse(text string) (Expression, error) {
	window, err := newTokenWindow(newLexer(text))
	if err != nil {
		return nil, err
	}
	p := parser{window: window}
	return p.scan()
}

type parser struct {
	window *tokenWindow
}

func (p *parser) scan() (Expression, error) {
	expr, err := p.scanExpr(0)
	if err != nil {
		return nil, err
	}

	next := p.window.lookahead
	if next.tokType != tokenTypeEOF {
		return nil, parseErrorf(
			ErrorKindUnexpectedToken, next,
			"Expecting end of input but got <%s>", tokenString(next))
	}
	return expr, nil
}

/*
Precedence climbing. An operator only joins the expression being built when
it binds tighter than minPrecedence, and its right hand side is parsed with
the operator's own precedence as the new minimum. That makes equal
precedence operators fold to the left:

	10 - 2 - 3    =>    ((10 - 2) - 3)
	1 + 2 * 3     =>    (1 + (2 * 3))

On return, current is the last token of the expression and lookahead is the
first token that did not belong to it.
*/
func (p *parser) scanExpr(minPrecedence int) (Expression, error) {
	left, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	for {
		opToken := p.window.lookahead
		if opToken.tokType == tokenTypeEOF || opToken.precedence() <= minPrecedence {
			break
		}

		opType, isOp := getExprBinaryOpType(opToken)
		if !isOp {
			break
		}

		// operator becomes current, then the first token of the right operand
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.scanExpr(opToken.precedence())
		if err != nil {
			return nil, err
		}

		left = BinaryExpression{
			Left:  left,
			Right: right,
			Op:    opType,
		}
	}

	return left, nil
}

func (p *parser) scanPrimary() (Expression, error) {
	tok := p.window.current

	// Number literals
	if tok.tokType == tokenTypeNumber {
		return NumberLiteral{Value: tok.value}, nil
	}

	// Unary minus, only directly in front of a literal
	if tok.tokType == tokenTypeMinus {
		operand := p.window.lookahead
		if operand.tokType != tokenTypeNumber {
			return nil, parseErrorf(
				ErrorKindUnsupportedUnaryOperand, operand,
				"Unary minus must be followed by a number but got <%s>", tokenString(operand))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NumberLiteral{Value: -operand.value}, nil
	}

	// Not recognized so it must be a syntax error
	return nil, parseErrorf(
		ErrorKindUnexpectedToken, tok,
		"Unexpected <%s> at expression start", tokenString(tok))
}

func (p *parser) advance() error {
	return p.window.advance()
}

func getExprBinaryOpType(tok token) (binaryExprOpType, bool) {
	switch tok.tokType {
	case tokenTypePlus:
		return BinaryExprOpAdd, true
	case tokenTypeMinus:
		return BinaryExprOpSubtract, true
	case tokenTypeAsterisk:
		return BinaryExprOpMultiply, true
	case tokenTypeSlash:
		return BinaryExprOpDivide, true
	}

	return 0, false
}
