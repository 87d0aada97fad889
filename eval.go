package calc

// Eval evaluates an arithmetic expression. The expression is parsed and
// evaluated in a single pass with no intermediate tree. Eval holds no state
// between calls and is safe for concurrent use.
func Eval(src string) (float64, error) {
	src = compact(src)
	if src == "" {
		return 0, &EmptyExpressionError{}
	}
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	return EvalTokens(toks)
}

// EvalTokens evaluates a tokenized expression. toks is not modified. An empty
// token list is an UnexpectedEnd error rather than EmptyExpression, since
// there is no source text to be empty.
func EvalTokens(toks []Token) (float64, error) {
	return parse[float64](toks, evaluator{})
}

// evaluator is the builder that computes values as they are parsed.
type evaluator struct{}

func (evaluator) num(v float64) float64 {
	return v
}

func (evaluator) neg(x float64) float64 {
	return -x
}

func (evaluator) binary(op Operator, l, r float64) (float64, error) {
	return apply(op, l, r)
}

// apply computes l op r. A zero divisor, of either sign, is an error.
func apply(op Operator, l, r float64) (float64, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, &DivisionError{Dividend: l}
		}
		return l / r, nil
	default:
		panic("calc: invalid operator " + op.String())
	}
}

// Eval evaluates the parsed expression. Evaluation is left to right, so the
// result and any error are the same as from calling Eval on the source. The
// zero Expr is an empty expression.
func (e *Expr) Eval() (float64, error) {
	if e == nil || e.n == nil {
		return 0, &EmptyExpressionError{}
	}
	return e.n.eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return apply(n.kind.operator(), l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}
