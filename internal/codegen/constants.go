// Package codegen provides code generation helpers and constants.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// ExprPath is the import path generated code uses for expression trees.
const ExprPath = "github.com/KromDaniel/brzozowski/expr"

// Identifiers used in generated code
const (
	InputName    = "input"
	CompiledName = "Compiled"
	ExprSuffix   = "Expr"
)

// Methods generated on the pattern type.
const (
	MatchStringName = "MatchString"
	MatchBytesName  = "MatchBytes"
	PatternName     = "Pattern"
	ExprName        = "Expr"
)

// ExprVarName returns the name of the package-level variable holding the
// tree for the pattern type name.
func ExprVarName(name string) string {
	return LowerFirst(name) + ExprSuffix
}

// CompiledVarName returns the name of the ready-to-use value of the
// pattern type name.
func CompiledVarName(name string) string {
	return CompiledName + name
}

// LowerFirst converts the first rune of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
