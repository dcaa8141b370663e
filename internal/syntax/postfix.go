package syntax

// precedence maps operator tokens to their binding strength; higher binds
// tighter. '(' has the lowest rank so that no operator is popped past it.
var precedence = map[rune]int{
	LParen: 0,
	Union:  1,
	Concat: 2,
	Kleene: 3,
}

// IsOperator reports whether c is an operator token. Every other rune is an
// operand.
func IsOperator(c rune) bool {
	if c == RParen {
		return true
	}
	_, ok := precedence[c]
	return ok
}

// ToPostfix converts an augmented infix token sequence to postfix order
// using the shunting-yard algorithm.
func ToPostfix(infix []rune) ([]rune, error) {
	var stack []rune
	output := make([]rune, 0, len(infix))

	for i, c := range infix {
		switch {
		case !IsOperator(c):
			output = append(output, c)
		case c == LParen:
			stack = append(stack, c)
		case c == RParen:
			for len(stack) > 0 && stack[len(stack)-1] != LParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, newError(UnbalancedParentheses, i, c, "no matching '('")
			}
			stack = stack[:len(stack)-1]
		default:
			for len(stack) > 0 && precedence[stack[len(stack)-1]] >= precedence[c] {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top == LParen {
			return nil, newError(UnbalancedParentheses, -1, 0, "unclosed '('")
		}
		output = append(output, top)
		stack = stack[:len(stack)-1]
	}
	return output, nil
}
