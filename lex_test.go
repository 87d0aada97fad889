package calc

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		kind   ErrorKind
	}{
		// spaces
		{"", nil, NoError},
		{" \t \r\n ", nil, NoError},
		{"  ", nil, NoError},
		// numbers
		{"0", []Token{Num(0)}, NoError},
		{"9876543210", []Token{Num(9876543210)}, NoError},
		{"1 0", []Token{Num(10)}, NoError},
		{"1.0", []Token{Num(1)}, NoError},
		{"1.", []Token{Num(1)}, NoError},
		{".1", []Token{Num(0.1)}, NoError},
		{"3 . 1 4", []Token{Num(3.14)}, NoError},
		{"-1", []Token{Op(OpSub), Num(1)}, NoError},
		{"1.1.1", nil, InvalidNumber},
		{".", nil, InvalidNumber},
		{"..", nil, InvalidNumber},
		{"2+.", nil, InvalidNumber},
		{"1e1", nil, InvalidCharacter},
		// operators
		{"+", []Token{Op(OpAdd)}, NoError},
		{"+-*/", []Token{Op(OpAdd), Op(OpSub), Op(OpMul), Op(OpDiv)}, NoError},
		{"--", []Token{Op(OpSub), Op(OpSub)}, NoError},
		{"1+0", []Token{Num(1), Op(OpAdd), Num(0)}, NoError},
		{"1 * 0", []Token{Num(1), Op(OpMul), Num(0)}, NoError},
		// parens
		{"()", []Token{LeftParen, RightParen}, NoError},
		{"(1)", []Token{LeftParen, Num(1), RightParen}, NoError},
		{")(", []Token{RightParen, LeftParen}, NoError},
		{
			"(2.5 + 3) * -4",
			[]Token{LeftParen, Num(2.5), Op(OpAdd), Num(3), RightParen, Op(OpMul), Op(OpSub), Num(4)},
			NoError,
		},
		// erroneous symbols
		{"$", nil, InvalidCharacter},
		{"1+$", nil, InvalidCharacter},
		{"[1]", nil, InvalidCharacter},
		{"x", nil, InvalidCharacter},
		{"2^3", nil, InvalidCharacter},
		{"1×2", nil, InvalidCharacter},
		{"1,5", nil, InvalidCharacter},
	}

	for _, c := range cases {
		t.Run(strconv.Quote(c.src), func(t *testing.T) {
			got, err := Tokenize(c.src)
			if k := KindOf(err); k != c.kind {
				t.Fatalf("scanning %q: want error kind %v, got %v (%v)", c.src, c.kind, k, err)
			}
			if err != nil && got != nil {
				t.Errorf("scanning %q: got tokens %v along with error %v", c.src, got, err)
			}
			if diff := cmp.Diff(c.tokens, got); diff != "" {
				t.Errorf("scanning %q: wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexErrorDetails(t *testing.T) {
	_, err := Tokenize("2 + π")
	var ce *CharacterError
	if !errors.As(err, &ce) {
		t.Fatalf("want *CharacterError, got %#v", err)
	}
	if ce.Char != 'π' {
		t.Errorf("want invalid rune π, got %q", ce.Char)
	}

	_, err = Tokenize("1 + 1.2.3 * 4")
	var ne *NumberError
	if !errors.As(err, &ne) {
		t.Fatalf("want *NumberError, got %#v", err)
	}
	if ne.Literal != "1.2.3" {
		t.Errorf("want literal 1.2.3, got %q", ne.Literal)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("%v should unwrap to strconv.ErrSyntax", err)
	}
}

func TestLexHugeNumber(t *testing.T) {
	src := "1"
	for i := 0; i < 400; i++ {
		src += "0"
	}
	got, err := Tokenize(src)
	if err != nil {
		t.Fatalf("scanning 1e400: %v", err)
	}
	if len(got) != 1 || !math.IsInf(got[0].Value, 1) {
		t.Errorf("want one +Inf token, got %v", got)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Num(2), "2"},
		{Num(2.5), "2.5"},
		{Num(1e21), "1000000000000000000000"},
		{Op(OpAdd), "+"},
		{Op(OpSub), "-"},
		{Op(OpMul), "*"},
		{Op(OpDiv), "/"},
		{LeftParen, "("},
		{RightParen, ")"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("%#v: want %q, got %q", c.tok, c.want, got)
		}
	}
}

func TestOperatorsMatchConstants(t *testing.T) {
	for i, r := range Operators {
		toks, err := Tokenize(string(r))
		if err != nil {
			t.Fatalf("lexing %c: %v", r, err)
		}
		if want := Op(Operator(i)); len(toks) != 1 || toks[0] != want {
			t.Errorf("lexing %c: want %v, got %v", r, want, toks)
		}
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		k    interface{ String() string }
		want string
	}{
		{TokenNumber, "Number"},
		{TokenOperator, "Operator"},
		{TokenLeftParen, "LeftParen"},
		{TokenRightParen, "RightParen"},
		{TokenKind(9), "TokenKind(9)"},
		{NoError, "NoError"},
		{UnclosedParen, "UnclosedParen"},
		{TrailingTokens, "TrailingTokens"},
		{ErrorKind(-1), "ErrorKind(-1)"},
		{nodeNum, "Num"},
		{nodeDiv, "Div"},
		{nodeKind(7), "nodeKind(7)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("%#v: want %q, got %q", c.k, c.want, got)
		}
	}
}
