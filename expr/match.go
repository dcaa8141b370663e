package expr

// IsMatch reports whether e matches the whole of input.
//
// Each rune of input replaces the current expression by its simplified
// derivative; the input matches when the final expression is nullable.
// Invalid UTF-8 bytes are consumed as utf8.RuneError.
func (e *Expr) IsMatch(input string) bool {
	q := e
	for _, c := range input {
		q = q.step(c)
	}
	return q.ContainsEpsilon()
}

// MatchBytes is like IsMatch for a byte slice.
func (e *Expr) MatchBytes(input []byte) bool {
	return e.IsMatch(string(input))
}

// Trace returns the sequence of expressions visited while matching input:
// the first element is e itself and element i+1 is the simplified
// derivative of element i with respect to the i-th rune of input.
func (e *Expr) Trace(input string) []*Expr {
	steps := []*Expr{e}
	q := e
	for _, c := range input {
		q = q.step(c)
		steps = append(steps, q)
	}
	return steps
}

func (e *Expr) step(c rune) *Expr {
	return e.Derivative(c).SimplifyToEnd()
}

// MatchString is IsMatch under the name generated matchers use, so a
// parsed tree and a generated type satisfy the same interfaces.
func (e *Expr) MatchString(input string) bool {
	return e.IsMatch(input)
}
