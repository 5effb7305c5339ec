package lib

import (
	"errors"
	"strconv"
)

type charInfo struct {
	ch       rune
	location charLocation
}

// Scans the whole input and hands every token, including the final EOF, to
// emit. Stops at the first error.
func lex(text string, emit func(token)) error {
	l := newLexer(text)
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		emit(tok)
		if tok.tokType == tokenTypeEOF {
			return nil
		}
	}
}

type lexer struct {
	text             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
}

func newLexer(text string) *lexer {
	runes := []rune(text)
	return &lexer{
		text:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{location: l.currentLocation}, false
	}
	return charInfo{ch: l.text[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

// Returns the next token. Once the input is used up every call returns EOF.
func (l *lexer) next() (token, error) {
	l.eatWhitespace()

	chInfo, ok := l.advance()
	if !ok {
		return token{tokType: tokenTypeEOF, location: chInfo.location}, nil
	}

	switch ch := chInfo.ch; ch {
	case '+':
		return token{tokType: tokenTypePlus, location: chInfo.location}, nil
	case '-':
		return token{tokType: tokenTypeMinus, location: chInfo.location}, nil
	case '/':
		return token{tokType: tokenTypeSlash, location: chInfo.location}, nil
	case '*':
		return token{tokType: tokenTypeAsterisk, location: chInfo.location}, nil
	default:
		if isDigit(ch) {
			return l.scanNumber(chInfo)
		}
		return token{tokType: tokenTypeIllegal, raw: []rune{ch}, location: chInfo.location}, nil
	}
}

func (l *lexer) eatWhitespace() {
	for {
		next, ok := l.peek(0)
		if !ok || !isWhitespace(next.ch) {
			return
		}
		_, _ = l.advance()
	}
}

// Reads the rest of a number whose first digit has already been consumed.
// Only characters that belong to the literal are consumed, so whatever ends
// it is still there for the next call.
func (l *lexer) scanNumber(first charInfo) (token, error) {
	start := l.currentCharIndex - 1
	hasDecimal := false

	for {
		next, ok := l.peek(0)
		if !ok || !isNumberChar(next.ch) {
			break
		}
		hasDecimal = hasDecimal || next.ch == '.'
		_, _ = l.advance()
	}

	raw := l.text[start:l.currentCharIndex]
	tok := token{tokType: tokenTypeNumber, raw: raw, location: first.location}

	if hasDecimal {
		return token{}, parseErrorf(
			ErrorKindMalformedLiteral, tok,
			"Malformed number <%d:%d -> %s>: only integers are supported",
			tok.location.line, tok.location.col, string(raw))
	}

	value, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token{}, parseErrorf(
				ErrorKindNumericOverflow, tok,
				"Number <%d:%d -> %s> does not fit in 64 bits",
				tok.location.line, tok.location.col, string(raw))
		}
		return token{}, parseErrorf(
			ErrorKindMalformedLiteral, tok,
			"Malformed number <%d:%d -> %s>: %s",
			tok.location.line, tok.location.col, string(raw), err.Error())
	}
	tok.value = value
	return tok, nil
}

func isWhitespace(ch rune) bool {
	return ch == ' ' ||
		ch == '\t' ||
		ch == '\r' ||
		ch == '\n'
}

// Digits plus '.', so that "1.5" is read as one (rejected) literal instead of
// a number followed by garbage.
func isNumberChar(ch rune) bool {
	return isDigit(ch) || ch == '.'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
