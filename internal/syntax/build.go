package syntax

import "github.com/KromDaniel/brzozowski/expr"

// Build folds a postfix token sequence into an expression tree.
//
// ε and ∅ become Epsilon and Empty, every other operand becomes a Term.
func Build(postfix []rune) (*expr.Expr, error) {
	var stack []*expr.Expr

	pop := func(i int, op rune, n int) ([]*expr.Expr, error) {
		if len(stack) < n {
			return nil, newError(InsufficientOperands, i, op,
				"%q needs %d operand(s), have %d", op, n, len(stack))
		}
		args := append([]*expr.Expr(nil), stack[len(stack)-n:]...)
		stack = stack[:len(stack)-n]
		return args, nil
	}

	for i, c := range postfix {
		switch c {
		case Kleene:
			args, err := pop(i, c, 1)
			if err != nil {
				return nil, err
			}
			stack = append(stack, expr.Kleene(args[0]))
		case Concat, Union:
			args, err := pop(i, c, 2)
			if err != nil {
				return nil, err
			}
			if c == Concat {
				stack = append(stack, expr.Concat(args[0], args[1]))
			} else {
				stack = append(stack, expr.Union(args[0], args[1]))
			}
		case expr.EpsilonRune:
			stack = append(stack, expr.Epsilon())
		case expr.EmptyRune:
			stack = append(stack, expr.Empty())
		default:
			stack = append(stack, expr.Term(c))
		}
	}

	if len(stack) != 1 {
		return nil, newError(MalformedExpression, -1, 0,
			"expected exactly one expression, have %d", len(stack))
	}
	return stack[0], nil
}

// Parse runs the full pipeline on pattern.
func Parse(pattern string) (*expr.Expr, error) {
	postfix, err := ToPostfix(AugmentString(pattern).All())
	if err != nil {
		return nil, err
	}
	return Build(postfix)
}
