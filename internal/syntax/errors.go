package syntax

import "fmt"

// ErrorKind identifies why a pattern was rejected.
type ErrorKind uint8

const (
	// UnbalancedParentheses: a ')' without a matching '(' or a '(' that is
	// never closed.
	UnbalancedParentheses ErrorKind = iota + 1
	// InsufficientOperands: an operator found fewer operands than it takes.
	InsufficientOperands
	// MalformedExpression: the pattern did not reduce to exactly one tree.
	MalformedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case InsufficientOperands:
		return "insufficient operands"
	case MalformedExpression:
		return "malformed expression"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses, Pos: -1}
	ErrInsufficientOperands  = &Error{Kind: InsufficientOperands, Pos: -1}
	ErrMalformedExpression   = &Error{Kind: MalformedExpression, Pos: -1}
)

// Error is a pattern syntax error.
type Error struct {
	Kind ErrorKind
	// Pos is the index of the offending token in the token sequence the
	// failing stage consumed, or -1 when the error is not tied to a token.
	Pos int
	// Token is the offending token, zero when Pos is -1.
	Token rune
	Msg   string
}

func newError(kind ErrorKind, pos int, tok rune, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Token: tok, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at token %d (%q)", msg, e.Pos, e.Token)
	}
	return msg
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
