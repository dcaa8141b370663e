package expr

// Nulled returns an expression that simplifies to Epsilon if the language
// of e contains the empty string, and to Empty otherwise.
func (e *Expr) Nulled() *Expr {
	switch e.Op {
	case OpEpsilon, OpKleene:
		return epsilon
	case OpConcat:
		return Concat(e.Left.Nulled(), e.Right.Nulled())
	case OpUnion:
		return Union(e.Left.Nulled(), e.Right.Nulled())
	}
	return empty
}

// Simplify performs one pass of local rewriting that removes Empty and
// Epsilon operands and collapses nested stars:
//
//	∅·x = x·∅ = ∅    ε·x = x·ε = x
//	∅|x = x|∅ = x
//	(x*)* = x*       ∅* = ε* = ε
//
// A single pass may leave new opportunities behind; SimplifyToEnd repeats
// it until nothing changes.
func (e *Expr) Simplify() *Expr {
	switch e.Op {
	case OpConcat:
		switch {
		case e.Left.Op == OpEmpty, e.Right.Op == OpEmpty:
			return empty
		case e.Left.Op == OpEpsilon:
			return e.Right.Simplify()
		case e.Right.Op == OpEpsilon:
			return e.Left.Simplify()
		}
		return Concat(e.Left.Simplify(), e.Right.Simplify())
	case OpUnion:
		switch {
		case e.Left.Op == OpEmpty:
			return e.Right.Simplify()
		case e.Right.Op == OpEmpty:
			return e.Left.Simplify()
		}
		return Union(e.Left.Simplify(), e.Right.Simplify())
	case OpKleene:
		switch e.Left.Op {
		case OpKleene:
			return Kleene(e.Left.Left.Simplify())
		case OpEmpty, OpEpsilon:
			return epsilon
		}
		return Kleene(e.Left.Simplify())
	}
	return e
}

// SimplifyToEnd applies Simplify until the tree stops changing.
// No rewrite grows the tree, so the loop is bounded by its depth.
func (e *Expr) SimplifyToEnd() *Expr {
	prev, curr := e, e.Simplify()
	for !prev.Equal(curr) {
		prev, curr = curr, curr.Simplify()
	}
	return curr
}

// ContainsEpsilon reports whether the language of e contains the empty
// string.
func (e *Expr) ContainsEpsilon() bool {
	return e.Nulled().SimplifyToEnd().Op == OpEpsilon
}

// Nullable is shorthand for ContainsEpsilon.
func (e *Expr) Nullable() bool { return e.ContainsEpsilon() }

// Derivative returns the Brzozowski derivative of e with respect to c: an
// expression matching w exactly when e matches c followed by w.
//
// The result is not simplified. Repeated derivatives grow quickly, so
// callers stepping through an input should simplify after each step the
// way IsMatch does.
func (e *Expr) Derivative(c rune) *Expr {
	switch e.Op {
	case OpTerm:
		if e.Rune == c {
			return epsilon
		}
		return empty
	case OpConcat:
		return Union(
			Concat(e.Left.Derivative(c), e.Right),
			Concat(e.Left.Nulled(), e.Right.Derivative(c)),
		)
	case OpUnion:
		return Union(e.Left.Derivative(c), e.Right.Derivative(c))
	case OpKleene:
		return Concat(e.Left.Derivative(c), e)
	}
	return empty
}
