package calc

// Expression = Term
// Term       = Factor { ('+' | '-') Factor }
// Factor     = Primary { ('*' | '/') Primary }
// Primary    = num | '(' Expression ')' | '-' Primary

// builder combines operands as the parser recognizes them. The evaluator
// builds float64 results directly; the tree builder builds nodes.
type builder[T any] interface {
	num(v float64) T
	neg(x T) T
	binary(op Operator, l, r T) (T, error)
}

// parser is a recursive descent parser over a token slice. Tokens are
// consumed by reslicing from the front, so the caller's slice is untouched.
type parser[T any] struct {
	toks []Token
	b    builder[T]
}

// parse parses an entire expression from toks. Tokens remaining after the
// expression are an error.
func parse[T any](toks []Token, b builder[T]) (T, error) {
	p := parser[T]{toks: toks, b: b}
	r, err := p.expression()
	if err != nil {
		return r, err
	}
	if len(p.toks) != 0 {
		var zero T
		return zero, &TrailingError{Tokens: append([]Token(nil), p.toks...)}
	}
	return r, nil
}

// next consumes the first token. Panics if there are no tokens.
func (p *parser[T]) next() Token {
	tok := p.toks[0]
	p.toks = p.toks[1:]
	return tok
}

// peekOp returns the operator at the front of the stream without consuming
// it. ok is false if the stream is empty or starts with something else.
func (p *parser[T]) peekOp() (op Operator, ok bool) {
	if len(p.toks) == 0 || p.toks[0].Kind != TokenOperator {
		return 0, false
	}
	return p.toks[0].Op, true
}

func (p *parser[T]) expression() (T, error) {
	return p.term()
}

func (p *parser[T]) term() (T, error) {
	return p.chain(p.factor, OpAdd, OpSub)
}

func (p *parser[T]) factor() (T, error) {
	return p.chain(p.primary, OpMul, OpDiv)
}

// chain parses a left-associative sequence of operands joined by either of
// two operators. Any other token ends the chain without being consumed.
func (p *parser[T]) chain(operand func() (T, error), a, b Operator) (T, error) {
	var zero T
	l, err := operand()
	if err != nil {
		return zero, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || op != a && op != b {
			return l, nil
		}
		p.next()
		r, err := operand()
		if err != nil {
			return zero, err
		}
		l, err = p.b.binary(op, l, r)
		if err != nil {
			return zero, err
		}
	}
}

func (p *parser[T]) primary() (T, error) {
	var zero T
	if len(p.toks) == 0 {
		return zero, &UnexpectedEndError{}
	}
	tok := p.next()
	switch tok.Kind {
	case TokenNumber:
		return p.b.num(tok.Value), nil
	case TokenLeftParen:
		x, err := p.expression()
		if err != nil {
			return zero, err
		}
		if len(p.toks) == 0 {
			return zero, &BracketError{}
		}
		if end := p.next(); end.Kind != TokenRightParen {
			return zero, &BracketError{Found: &end}
		}
		return x, nil
	case TokenOperator:
		// Minus in operand position is negation. -2*-3 -> (-2) * (-3)
		if tok.Op == OpSub {
			x, err := p.primary()
			if err != nil {
				return zero, err
			}
			return p.b.neg(x), nil
		}
	}
	return zero, &TokenError{Token: tok}
}

// Parse parses an expression into a tree without evaluating it. Parse reports
// the same errors as Eval except DivisionByZero, which is reported when the
// tree is evaluated.
func Parse(src string) (*Expr, error) {
	src = compact(src)
	if src == "" {
		return nil, &EmptyExpressionError{}
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	n, err := parse[*node](toks, treeBuilder{})
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}
