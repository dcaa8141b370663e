package expr

import "strings"

// String renders e in canonical form: operators are written explicitly
// (· for concatenation) and no parentheses are inserted, so the output is
// not always reparseable to the same tree. Use Infix for that.
func (e *Expr) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e *Expr) writeTo(b *strings.Builder) {
	switch e.Op {
	case OpEmpty:
		b.WriteRune(EmptyRune)
	case OpEpsilon:
		b.WriteRune(EpsilonRune)
	case OpTerm:
		b.WriteRune(e.Rune)
	case OpConcat:
		e.Left.writeTo(b)
		b.WriteRune(ConcatRune)
		e.Right.writeTo(b)
	case OpUnion:
		e.Left.writeTo(b)
		b.WriteRune(UnionRune)
		e.Right.writeTo(b)
	case OpKleene:
		e.Left.writeTo(b)
		b.WriteRune(KleeneRune)
	}
}

// Binding strength of each node kind when written in infix form.
const (
	precUnion = iota + 1
	precConcat
	precKleene
	precAtom
)

func (e *Expr) prec() int {
	switch e.Op {
	case OpUnion:
		return precUnion
	case OpConcat:
		return precConcat
	case OpKleene:
		return precKleene
	}
	return precAtom
}

// Infix renders e as a pattern using implicit concatenation and only the
// parentheses needed for the pattern to parse back into the same tree.
// Both binary operators associate to the left, so a right operand of equal
// precedence is parenthesised.
func (e *Expr) Infix() string {
	var b strings.Builder
	e.writeInfix(&b)
	return b.String()
}

func (e *Expr) writeInfix(b *strings.Builder) {
	switch e.Op {
	case OpConcat, OpUnion:
		p := e.prec()
		e.Left.writeOperand(b, e.Left.prec() < p)
		if e.Op == OpUnion {
			b.WriteRune(UnionRune)
		}
		e.Right.writeOperand(b, e.Right.prec() <= p)
	case OpKleene:
		e.Left.writeOperand(b, !e.Left.IsLeaf())
		b.WriteRune(KleeneRune)
	default:
		e.writeTo(b)
	}
}

func (e *Expr) writeOperand(b *strings.Builder, paren bool) {
	if paren {
		b.WriteByte('(')
	}
	e.writeInfix(b)
	if paren {
		b.WriteByte(')')
	}
}
