// Package calc implements a float64 arithmetic expression evaluator.
//
// Expressions use the four binary operators + - * /, parentheses, unary
// negation, and decimal numbers. Whitespace anywhere in the input is
// ignored, so "1 2" is the number 12. Multiplication and division bind more
// tightly than addition and subtraction, and all binary operators are left
// associative. Unary minus binds more tightly than any binary operator:
// "-2*-3" is 6 and "--5" is 5.
//
// Eval is the usual entry point. It parses and evaluates in one pass without
// building a syntax tree. Parse builds a tree instead, which can be printed or
// evaluated repeatedly.
//
// Every error returned for invalid input implements Error, and KindOf reports
// which kind of failure it was.
package calc
