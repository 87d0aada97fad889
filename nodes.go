package calc

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression, created by Parse. An Expr is immutable and may
// be evaluated concurrently. The zero Expr is empty.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// val is the value of a nodeNum.
	val float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // val
	nodeNeg // negate left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// binkinds maps operators to the node kinds of their binary expressions.
var binkinds = [...]nodeKind{
	OpAdd: nodeAdd,
	OpSub: nodeSub,
	OpMul: nodeMul,
	OpDiv: nodeDiv,
}

// operator returns the operator of a binary node kind.
func (k nodeKind) operator() Operator {
	for op, b := range binkinds {
		if b == k {
			return Operator(op)
		}
	}
	panic("calc: no operator for node kind " + k.String())
}

// treeBuilder is the builder that constructs syntax trees.
type treeBuilder struct{}

func (treeBuilder) num(v float64) *node {
	return &node{kind: nodeNum, val: v}
}

func (treeBuilder) neg(x *node) *node {
	return &node{kind: nodeNeg, left: x}
}

func (treeBuilder) binary(op Operator, l, r *node) (*node, error) {
	return &node{kind: binkinds[op], left: l, right: r}, nil
}

// String creates a fully parenthesized representation of the parsed
// expression. The result parses to the same tree, unless it contains a number
// too large to be finite. An empty Expr formats as "".
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return ""
	}
	return e.n.String()
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'f', -1, 64))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.operator().String())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
