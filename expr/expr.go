// Package expr implements regular expression trees and the Brzozowski
// derivative algebra used to match strings against them.
//
// A tree is built once (usually by brzozowski.Parse) and never modified
// afterwards. Every transform in this package returns a new tree and leaves
// its input untouched, so trees can be shared freely, including between
// goroutines.
//
//	re := brzozowski.MustParse("(c|b)at")
//	re.IsMatch("cat") // true
//	re.IsMatch("pat") // false
package expr

// Op is the kind of an expression node.
type Op uint8

const (
	OpEmpty   Op = iota // ∅, matches no strings
	OpEpsilon           // ε, matches only the empty string
	OpTerm              // a single rune
	OpConcat            // Left followed by Right
	OpUnion             // Left or Right
	OpKleene            // zero or more repetitions of Left
)

// Symbols used when rendering trees and in augmented/postfix token streams.
const (
	EpsilonRune = 'ε'
	EmptyRune   = '∅'
	ConcatRune  = '·'
	UnionRune   = '|'
	KleeneRune  = '*'
)

var opNames = [...]string{
	OpEmpty:   "Empty",
	OpEpsilon: "Epsilon",
	OpTerm:    "Term",
	OpConcat:  "Concat",
	OpUnion:   "Union",
	OpKleene:  "Kleene",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Op(?)"
}

// Expr is a node of a regular expression tree.
//
// Term nodes carry their rune in Rune. Concat and Union use Left and Right.
// Kleene keeps its base in Left. Epsilon and Empty have no children.
// Values must not be modified once they are reachable from a tree.
type Expr struct {
	Op    Op
	Rune  rune
	Left  *Expr
	Right *Expr
}

var (
	empty   = &Expr{Op: OpEmpty}
	epsilon = &Expr{Op: OpEpsilon}
)

// Empty returns the expression matching no strings.
func Empty() *Expr { return empty }

// Epsilon returns the expression matching only the empty string.
func Epsilon() *Expr { return epsilon }

// Term returns the expression matching the single rune c.
func Term(c rune) *Expr { return &Expr{Op: OpTerm, Rune: c} }

// Concat returns the concatenation of left and right.
func Concat(left, right *Expr) *Expr {
	return &Expr{Op: OpConcat, Left: left, Right: right}
}

// Union returns the alternation of left and right.
func Union(left, right *Expr) *Expr {
	return &Expr{Op: OpUnion, Left: left, Right: right}
}

// Kleene returns zero or more repetitions of base.
func Kleene(base *Expr) *Expr {
	return &Expr{Op: OpKleene, Left: base}
}

// Equal reports whether e and other are structurally identical trees.
func (e *Expr) Equal(other *Expr) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil || e.Op != other.Op {
		return false
	}
	switch e.Op {
	case OpTerm:
		return e.Rune == other.Rune
	case OpConcat, OpUnion:
		return e.Left.Equal(other.Left) && e.Right.Equal(other.Right)
	case OpKleene:
		return e.Left.Equal(other.Left)
	}
	return true
}

// IsLeaf reports whether e has no children.
func (e *Expr) IsLeaf() bool {
	switch e.Op {
	case OpConcat, OpUnion, OpKleene:
		return false
	}
	return true
}
