package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single lexical element of an expression.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Op is the operator for TokenOperator tokens.
	Op Operator
	// Value is the number for TokenNumber tokens.
	Value float64
}

// String returns the token as it could appear in source text.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenOperator:
		return t.Op.String()
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return "Token(" + strconv.Itoa(int(t.Kind)) + ")"
	}
}

// TokenKind identifies the kind of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a decimal number.
	TokenNumber
	// TokenOperator is one of + - * /. Minus is the same token whether it is
	// used as a unary or binary operator.
	TokenOperator
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operator is an arithmetic operator.
type Operator int8

const (
	// OpAdd is addition, +.
	OpAdd Operator = iota
	// OpSub is subtraction, or negation in operand position, -.
	OpSub
	// OpMul is multiplication, *.
	OpMul
	// OpDiv is division, /.
	OpDiv
)

// Operators contains the runes which are lexed as operators, in the order of
// the Operator constants.
const Operators = "+-*/"

func (op Operator) String() string {
	if op < 0 || int(op) >= len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op : op+1]
}

// Num returns a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// Op returns an operator token.
func Op(op Operator) Token {
	return Token{Kind: TokenOperator, Op: op}
}

var (
	// LeftParen and RightParen are the parenthesis tokens.
	LeftParen  = Token{Kind: TokenLeftParen}
	RightParen = Token{Kind: TokenRightParen}
)

// compact removes all whitespace from src.
func compact(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// Tokenize converts an expression into tokens. Whitespace is removed before
// scanning, so it never separates tokens. The first invalid character or
// number stops the scan, and no tokens are returned with the error.
func Tokenize(src string) ([]Token, error) {
	return lex(compact(src))
}

// lex scans src, which must already be free of whitespace.
func lex(src string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case '0' <= c && c <= '9', c == '.':
			j := i + 1
			for j < len(src) && ('0' <= src[j] && src[j] <= '9' || src[j] == '.') {
				j++
			}
			v, err := scanNum(src[i:j])
			if err != nil {
				return nil, err
			}
			toks = append(toks, Num(v))
			i = j
		case c == '(':
			toks = append(toks, LeftParen)
			i++
		case c == ')':
			toks = append(toks, RightParen)
			i++
		default:
			if k := strings.IndexByte(Operators, c); k >= 0 {
				toks = append(toks, Op(Operator(k)))
				i++
				continue
			}
			// Decode the whole rune so that it shows up in the error message.
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, &CharacterError{Char: r}
		}
	}
	return toks, nil
}

// scanNum parses a run of digits and decimal points.
func scanNum(lit string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// A long enough run of digits overflows to infinity, which is the
		// correctly rounded value anyway.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &NumberError{Literal: lit, Err: err}
	}
	return v, nil
}
