package expr_test

import (
	"strings"
	"testing"

	"github.com/KromDaniel/brzozowski/expr"
)

func TestIsMatch(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		expected bool
	}{
		{"", "", true},
		{"", "a", false},
		{"a", "", false},
		{"a", "b", false},
		{"a", "a", true},
		{"a|b", "", false},
		{"a|b", "a", true},
		{"a|b", "c", false},
		{"a*", "", true},
		{"a*", "aaa", true},
		{"a*", "aaaa", true},
		{"a*", "b", false},
		{"a*", "aab", false},
		{"a*b*", "", true},
		{"a*b*", "aabb", true},
		{"a*b*", "aabba", false},
		{"(a*)*", "", true},
		{"(a*)*", "aa", true},
		{"(a|b)*", "", true},
		{"(a|b)*", "ab", true},
		{"(a|b)*", "aa", true},
		{"(a|b)*", "bb", true},
		{"(a|b)*", "abab", true},
		{"(c|b)at", "cat", true},
		{"(c|b)at", "bat", true},
		{"(c|b)at", "pat", false},
		{"(c|b)at", "ca", false},
		{"(c|b)at", "cats", false},
		{"(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)(k)(l)", "abcdefghijkl", true},
		{"(ba*n*(a*n)b*a)", "banana", true},
		{"b(a*)(na)*", "banana", true},
		{"ba*(n|a)*", "banana", true},
		{"∅", "", false},
		{"a|∅", "a", true},
		{"aε", "a", true},
		{"żółw*", "żółwww", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			e := mustParse(t, tt.pattern)
			if got := e.IsMatch(tt.input); got != tt.expected {
				t.Errorf("IsMatch(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.expected)
			}
			if got := e.MatchBytes([]byte(tt.input)); got != tt.expected {
				t.Errorf("MatchBytes(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsMatchLongInput(t *testing.T) {
	e := mustParse(t, "(ab|a)*b")
	input := strings.Repeat("ab", 2000) + "b"
	if !e.IsMatch(input) {
		t.Errorf("IsMatch on %d runes = false, want true", len(input))
	}
	if e.IsMatch(input + "a") {
		t.Error("IsMatch with trailing a = true, want false")
	}
}

func TestTrace(t *testing.T) {
	e := mustParse(t, "(c|b)at")
	steps := e.Trace("cat")
	want := []string{"c|b·a·t", "a·t", "t", "ε"}
	if len(steps) != len(want) {
		t.Fatalf("Trace() returned %d steps, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if got := s.String(); got != want[i] {
			t.Errorf("step %d = %q, want %q", i, got, want[i])
		}
	}
	for i, s := range steps[1:] {
		if !s.Simplify().Equal(s) {
			t.Errorf("step %d = %v is not simplified", i+1, s)
		}
	}

	dead := e.Trace("x")
	if got := dead[len(dead)-1]; got.Op != expr.OpEmpty {
		t.Errorf("Trace(\"x\") ends in %v, want ∅", got)
	}
}
