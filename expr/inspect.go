package expr

import "slices"

// Walk calls fn for e and each of its descendants in pre-order. If fn
// returns false the children of that node are skipped.
func (e *Expr) Walk(fn func(*Expr) bool) {
	if !fn(e) {
		return
	}
	switch e.Op {
	case OpConcat, OpUnion:
		e.Left.Walk(fn)
		e.Right.Walk(fn)
	case OpKleene:
		e.Left.Walk(fn)
	}
}

// Size returns the number of nodes in e.
func (e *Expr) Size() int {
	n := 0
	e.Walk(func(*Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (e *Expr) Depth() int {
	switch e.Op {
	case OpConcat, OpUnion:
		return 1 + max(e.Left.Depth(), e.Right.Depth())
	case OpKleene:
		return 1 + e.Left.Depth()
	}
	return 1
}

// Alphabet returns the distinct runes of the Term nodes of e in ascending
// order.
func (e *Expr) Alphabet() []rune {
	seen := make(map[rune]struct{})
	var runes []rune
	e.Walk(func(n *Expr) bool {
		if n.Op == OpTerm {
			if _, ok := seen[n.Rune]; !ok {
				seen[n.Rune] = struct{}{}
				runes = append(runes, n.Rune)
			}
		}
		return true
	})
	slices.Sort(runes)
	return runes
}

// Count returns the number of nodes of e with the given kind.
func (e *Expr) Count(op Op) int {
	n := 0
	e.Walk(func(x *Expr) bool {
		if x.Op == op {
			n++
		}
		return true
	})
	return n
}
