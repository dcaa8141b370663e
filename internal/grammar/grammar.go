// Package grammar is a strict, grammar-driven parser for patterns.
//
// It accepts the well-formed subset of what the shunting-yard pipeline in
// internal/syntax accepts and builds the same trees for it, but rejects
// inputs that the pipeline tolerates or reports vaguely (empty groups,
// dangling operators, explicit '·') with the line and column of the
// offending token.
//
//	pattern     = alternation
//	alternation = sequence { "|" sequence }
//	sequence    = factor { factor }
//	factor      = atom { "*" }
//	atom        = symbol | "(" alternation ")"
package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/KromDaniel/brzozowski/expr"
)

type alternation struct {
	Head *sequence   `parser:"@@"`
	Tail []*sequence `parser:"( '|' @@ )*"`
}

type sequence struct {
	Factors []*factor `parser:"@@+"`
}

type factor struct {
	Atom  *atom    `parser:"@@"`
	Stars []string `parser:"@'*'*"`
}

type atom struct {
	Symbol *string      `parser:"  @Symbol"`
	Group  *alternation `parser:"| '(' @@ ')'"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Operator", Pattern: `[|()*]`},
	{Name: "Symbol", Pattern: `[^|()*·]`},
})

var parser = participle.MustBuild[alternation](
	participle.Lexer(patternLexer),
)

// Parse parses pattern into an expression tree. The empty pattern is
// Epsilon.
func Parse(pattern string) (*expr.Expr, error) {
	if pattern == "" {
		return expr.Epsilon(), nil
	}
	ast, err := parser.ParseString("pattern", pattern)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	return ast.build(), nil
}

func (a *alternation) build() *expr.Expr {
	e := a.Head.build()
	for _, s := range a.Tail {
		e = expr.Union(e, s.build())
	}
	return e
}

func (s *sequence) build() *expr.Expr {
	e := s.Factors[0].build()
	for _, f := range s.Factors[1:] {
		e = expr.Concat(e, f.build())
	}
	return e
}

func (f *factor) build() *expr.Expr {
	e := f.Atom.build()
	for range f.Stars {
		e = expr.Kleene(e)
	}
	return e
}

func (a *atom) build() *expr.Expr {
	if a.Group != nil {
		return a.Group.build()
	}
	c := []rune(*a.Symbol)[0]
	switch c {
	case expr.EpsilonRune:
		return expr.Epsilon()
	case expr.EmptyRune:
		return expr.Empty()
	}
	return expr.Term(c)
}
