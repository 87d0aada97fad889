package calc

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind classifies the ways evaluating an expression can fail.
type ErrorKind int8

const (
	// NoError is the kind of nil and of errors not produced by this package.
	NoError ErrorKind = iota
	// EmptyExpression means the input was empty after removing whitespace.
	EmptyExpression
	// InvalidCharacter means the input contained a rune that is not a digit,
	// decimal point, operator, or parenthesis.
	InvalidCharacter
	// InvalidNumber means a run of digits and decimal points was not a valid
	// number, e.g. "1.2.3" or ".".
	InvalidNumber
	// UnexpectedEnd means the input ended where an operand was required.
	UnexpectedEnd
	// UnexpectedToken means a token that cannot begin an operand appeared
	// where an operand was required.
	UnexpectedToken
	// UnclosedParen means an open parenthesis was not followed by its close
	// parenthesis.
	UnclosedParen
	// DivisionByZero means a divisor evaluated to zero.
	DivisionByZero
	// TrailingTokens means a complete expression was followed by more tokens.
	TrailingTokens
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind
//go:generate go mod tidy

// Error is an error resulting from invalid input or invalid arithmetic. Every
// error returned by this package implements Error.
type Error interface {
	error
	// Kind returns the classification of the error.
	Kind() ErrorKind
}

// KindOf returns the kind of the first Error in err's chain, or NoError if
// there is none.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return NoError
}

// EmptyExpressionError indicates input with nothing but whitespace.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Kind() ErrorKind {
	return EmptyExpression
}

// CharacterError indicates a rune that does not belong to any token.
type CharacterError struct {
	// Char is the invalid rune.
	Char rune
}

func (err *CharacterError) Error() string {
	return "invalid character " + strconv.QuoteRune(err.Char)
}

func (err *CharacterError) Kind() ErrorKind {
	return InvalidCharacter
}

// NumberError indicates a malformed number literal. It unwraps to the error
// from strconv.
type NumberError struct {
	// Literal is the run of digits and decimal points that was scanned.
	Literal string
	// Err is the parsing error.
	Err error
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Literal)
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Kind() ErrorKind {
	return InvalidNumber
}

// UnexpectedEndError indicates that the input ended where an operand was
// expected, e.g. "2+" or "(".
type UnexpectedEndError struct{}

func (err *UnexpectedEndError) Error() string {
	return "unexpected end of expression"
}

func (err *UnexpectedEndError) Kind() ErrorKind {
	return UnexpectedEnd
}

// TokenError indicates a token that cannot begin an operand, found where an
// operand was expected.
type TokenError struct {
	// Token is the token that was found.
	Token Token
}

func (err *TokenError) Error() string {
	return "unexpected token " + strconv.Quote(err.Token.String())
}

func (err *TokenError) Kind() ErrorKind {
	return UnexpectedToken
}

// BracketError indicates an open parenthesis with no matching close.
type BracketError struct {
	// Found is the token found in place of the close parenthesis, or nil if
	// the input ended.
	Found *Token
}

func (err *BracketError) Error() string {
	if err.Found == nil {
		return "missing closing parenthesis"
	}
	return "missing closing parenthesis, found " + strconv.Quote(err.Found.String())
}

func (err *BracketError) Kind() ErrorKind {
	return UnclosedParen
}

// DivisionError indicates a division by zero.
type DivisionError struct {
	// Dividend is the value that was to be divided.
	Dividend float64
}

func (err *DivisionError) Error() string {
	return "division by zero"
}

func (err *DivisionError) Kind() ErrorKind {
	return DivisionByZero
}

// TrailingError indicates tokens left over after a complete expression, as in
// "2+3)" or "2(3)".
type TrailingError struct {
	// Tokens are the unconsumed tokens.
	Tokens []Token
}

func (err *TrailingError) Error() string {
	s := make([]string, len(err.Tokens))
	for i, t := range err.Tokens {
		s[i] = t.String()
	}
	return "unexpected tokens after expression: " + strings.Join(s, " ")
}

func (err *TrailingError) Kind() ErrorKind {
	return TrailingTokens
}

var (
	_ Error = (*EmptyExpressionError)(nil)
	_ Error = (*CharacterError)(nil)
	_ Error = (*NumberError)(nil)
	_ Error = (*UnexpectedEndError)(nil)
	_ Error = (*TokenError)(nil)
	_ Error = (*BracketError)(nil)
	_ Error = (*DivisionError)(nil)
	_ Error = (*TrailingError)(nil)
)
