// Package brzozowski matches whole strings against regular expressions
// using Brzozowski derivatives.
//
// A pattern is built from single runes, '|' (alternation), '*' (Kleene
// star), parentheses, the explicit concatenation operator '·' and the
// markers 'ε' (empty string) and '∅' (no string). Adjacent operands are
// concatenated implicitly:
//
//	tree, err := brzozowski.Parse("(c|b)at")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree.IsMatch("bat") // true
//
// Parsed trees can also be embedded in generated Go code with Compile.
package brzozowski

import (
	"fmt"

	"github.com/KromDaniel/brzozowski/expr"
	"github.com/KromDaniel/brzozowski/internal/cache"
	"github.com/KromDaniel/brzozowski/internal/grammar"
	"github.com/KromDaniel/brzozowski/internal/syntax"
)

// Expr is a parsed regular expression tree.
type Expr = expr.Expr

// Error is the error returned for rejected patterns; see ErrorKind.
type Error = syntax.Error

// ErrorKind classifies a syntax error.
type ErrorKind = syntax.ErrorKind

const (
	UnbalancedParentheses = syntax.UnbalancedParentheses
	InsufficientOperands  = syntax.InsufficientOperands
	MalformedExpression   = syntax.MalformedExpression
)

// Sentinels for errors.Is.
var (
	ErrUnbalancedParentheses = syntax.ErrUnbalancedParentheses
	ErrInsufficientOperands  = syntax.ErrInsufficientOperands
	ErrMalformedExpression   = syntax.ErrMalformedExpression
)

var patterns = cache.New(cache.DefaultCapacity)

// Parse parses pattern with the shunting-yard pipeline: concatenation
// operators are inserted, the result is converted to postfix, and the
// postfix form is assembled into a tree. Errors are *Error values.
func Parse(pattern string) (*Expr, error) {
	return syntax.Parse(pattern)
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *Expr {
	tree, err := Parse(pattern)
	if err != nil {
		panic(fmt.Sprintf("brzozowski: Parse(%q): %v", pattern, err))
	}
	return tree
}

// ParseStrict parses pattern with the recursive grammar parser. It
// accepts the same patterns as Parse except that it rejects an explicit
// '·', and it reports errors with the line and column of the offending
// token.
func ParseStrict(pattern string) (*Expr, error) {
	return grammar.Parse(pattern)
}

// MatchString reports whether pattern matches the whole of input. Parsed
// patterns are kept in a shared LRU cache, so repeated calls with the same
// pattern parse it once.
func MatchString(pattern, input string) (bool, error) {
	tree, err := patterns.GetOrParse(pattern, syntax.Parse)
	if err != nil {
		return false, err
	}
	return tree.IsMatch(input), nil
}
