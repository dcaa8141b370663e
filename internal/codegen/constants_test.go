package codegen

import "testing"

func TestVarNames(t *testing.T) {
	tests := []struct {
		name     string
		exprVar  string
		compiled string
	}{
		{"Cat", "catExpr", "CompiledCat"},
		{"URL", "uRLExpr", "CompiledURL"},
		{"x", "xExpr", "Compiledx"},
		{"Żółw", "żółwExpr", "CompiledŻółw"},
		{"_Cat", "_CatExpr", "Compiled_Cat"},
	}

	for _, tt := range tests {
		if got := ExprVarName(tt.name); got != tt.exprVar {
			t.Errorf("ExprVarName(%q) = %q, want %q", tt.name, got, tt.exprVar)
		}
		if got := CompiledVarName(tt.name); got != tt.compiled {
			t.Errorf("CompiledVarName(%q) = %q, want %q", tt.name, got, tt.compiled)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"X", "x"},
		{"Żółw", "żółw"},
		{"_Cat", "_Cat"},
		{"Ωmega", "ωmega"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
