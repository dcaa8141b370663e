// Package syntax turns pattern text into expression trees.
//
// Parsing runs in three stages:
//
//	pattern --Augment--> infix tokens --ToPostfix--> postfix tokens --Build--> *expr.Expr
//
// Augmentation makes implicit concatenation explicit by inserting '·'
// tokens, ToPostfix reorders the tokens with the shunting-yard algorithm and
// Build folds the postfix sequence into a tree.
package syntax

import (
	"unicode/utf8"

	"github.com/KromDaniel/brzozowski/expr"
)

// Operator tokens.
const (
	LParen = '('
	RParen = ')'
	Union  = expr.UnionRune
	Concat = expr.ConcatRune
	Kleene = expr.KleeneRune
)

// needsConcat reports whether a '·' belongs between the adjacent tokens
// prev and curr.
func needsConcat(prev, curr rune) bool {
	switch prev {
	case LParen, Union:
		return false
	}
	switch curr {
	case Union, RParen, Kleene:
		return false
	}
	return true
}

// Augmenter lazily augments a rune sequence one token per call to Next,
// keeping only the previous token in memory.
//
// An Augmenter is single-use: once Next reports the end of the sequence it
// keeps doing so. Start over with a fresh Augmenter.
type Augmenter struct {
	src func() (rune, bool)

	prev, curr    rune
	index         int
	checkPrevCurr bool
	complete      bool
	yieldCurr     bool
}

// NewAugmenter returns an Augmenter pulling runes from src until src
// reports false.
func NewAugmenter(src func() (rune, bool)) *Augmenter {
	return &Augmenter{src: src}
}

// AugmentString returns an Augmenter over the runes of s.
func AugmentString(s string) *Augmenter {
	return NewAugmenter(func() (rune, bool) {
		if s == "" {
			return 0, false
		}
		c, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		return c, true
	})
}

// AugmentRunes returns an Augmenter over src.
func AugmentRunes(src []rune) *Augmenter {
	return NewAugmenter(func() (rune, bool) {
		if len(src) == 0 {
			return 0, false
		}
		c := src[0]
		src = src[1:]
		return c, true
	})
}

// Next returns the next augmented token, or false at the end of the
// sequence. An empty source yields a single ε.
func (a *Augmenter) Next() (rune, bool) {
	if a.complete {
		return 0, false
	}
	if a.yieldCurr {
		a.yieldCurr = false
		return a.curr, true
	}
	c, ok := a.src()
	if !ok {
		a.complete = true
		if a.index == 0 {
			return expr.EpsilonRune, true
		}
		return 0, false
	}
	if a.index > 0 {
		a.prev = a.curr
	}
	a.curr = c
	a.index++
	if a.index > 1 {
		a.checkPrevCurr = true
	}
	if a.checkPrevCurr && needsConcat(a.prev, a.curr) {
		a.yieldCurr = true
		return Concat, true
	}
	return a.curr, true
}

// All drains a into a slice.
func (a *Augmenter) All() []rune {
	var out []rune
	for {
		c, ok := a.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// AugmentEager augments a whole rune slice at once. It produces exactly
// what an Augmenter produces for the same input.
func AugmentEager(src []rune) []rune {
	if len(src) == 0 {
		return []rune{expr.EpsilonRune}
	}
	dst := make([]rune, 0, 2*len(src))
	for i, c := range src {
		if i > 0 && needsConcat(src[i-1], c) {
			dst = append(dst, Concat)
		}
		dst = append(dst, c)
	}
	return dst
}
