package brzozowski_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/brzozowski/pkg/brzozowski"
)

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"(c|b)at", "c|b·a·t"},
		{"a*", "a*"},
		{"", "ε"},
		{"a·b", "a·b"},
		{"∅|ε", "∅|ε"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tree, err := brzozowski.Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := tree.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
		kind    brzozowski.ErrorKind
	}{
		{"(a", brzozowski.ErrUnbalancedParentheses, brzozowski.UnbalancedParentheses},
		{"a)", brzozowski.ErrUnbalancedParentheses, brzozowski.UnbalancedParentheses},
		{"*", brzozowski.ErrInsufficientOperands, brzozowski.InsufficientOperands},
		{"a|", brzozowski.ErrInsufficientOperands, brzozowski.InsufficientOperands},
		{"()", brzozowski.ErrMalformedExpression, brzozowski.MalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := brzozowski.Parse(tt.pattern)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
			var synErr *brzozowski.Error
			if !errors.As(err, &synErr) || synErr.Kind != tt.kind {
				t.Errorf("Parse(%q) error kind = %v, want %v", tt.pattern, synErr, tt.kind)
			}

			if _, err := brzozowski.MatchString(tt.pattern, "a"); !errors.Is(err, tt.want) {
				t.Errorf("MatchString(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if !brzozowski.MustParse("ba*n").IsMatch("baaan") {
		t.Error("MustParse(ba*n) does not match baaan")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustParse((a) did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "unbalanced parentheses") {
			t.Errorf("unexpected panic %v", r)
		}
	}()
	brzozowski.MustParse("(a")
}

func TestParseStrict(t *testing.T) {
	for _, pattern := range []string{"(c|b)at", "ba*(n|a)*", "(a|b)*abb", "ε|a"} {
		strict, err := brzozowski.ParseStrict(pattern)
		if err != nil {
			t.Fatalf("ParseStrict(%q) error: %v", pattern, err)
		}
		loose := brzozowski.MustParse(pattern)
		if !strict.Equal(loose) {
			t.Errorf("ParseStrict(%q) = %s, Parse = %s", pattern, strict, loose)
		}
	}

	for _, pattern := range []string{"a·b", "(a", "a||b", "()"} {
		if _, err := brzozowski.ParseStrict(pattern); err == nil {
			t.Errorf("ParseStrict(%q) succeeded", pattern)
		}
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(c|b)at", "cat", true},
		{"(c|b)at", "bat", true},
		{"(c|b)at", "rat", false},
		{"(ba*n*(a*n)b*a)", "banana", true},
		{"a*", "", true},
		{"a", "", false},
		{"", "", true},
		{"", "a", false},
		{"∅", "", false},
		{"(a|b)*abb", "babaabb", true},
		{"(a|b)*abb", "babaab", false},
		{"żółw*", "żółwww", true},
	}

	for _, tt := range tests {
		// Twice, the second call is served from the cache.
		for i := 0; i < 2; i++ {
			got, err := brzozowski.MatchString(tt.pattern, tt.input)
			if err != nil {
				t.Fatalf("MatchString(%q, %q) error: %v", tt.pattern, tt.input, err)
			}
			if got != tt.want {
				t.Errorf("MatchString(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	res, err := brzozowski.Analyze("(c|b)at")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if res.Postfix != "cb|a·t·" {
		t.Errorf("Postfix = %q", res.Postfix)
	}
	if strings.Join(res.FeatureLabels, ",") != "Alternation,Concatenation" {
		t.Errorf("FeatureLabels = %v", res.FeatureLabels)
	}

	strict, err := brzozowski.AnalyzeStrict("(c|b)at")
	if err != nil {
		t.Fatalf("AnalyzeStrict() error: %v", err)
	}
	if strict.Tree != res.Tree || strict.Augmented != "" {
		t.Errorf("AnalyzeStrict() = %+v", strict)
	}

	if _, err := brzozowski.Analyze("a)"); !errors.Is(err, brzozowski.ErrUnbalancedParentheses) {
		t.Errorf("Analyze(a)) error = %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    brzozowski.Options
		wantErr bool
	}{
		{"valid", brzozowski.Options{Pattern: "a", Name: "A", OutputFile: "a.go", Package: "p"}, false},
		{"empty pattern is epsilon", brzozowski.Options{Name: "A", OutputFile: "a.go", Package: "p"}, false},
		{"missing name", brzozowski.Options{Pattern: "a", OutputFile: "a.go", Package: "p"}, true},
		{"missing output", brzozowski.Options{Pattern: "a", Name: "A", Package: "p"}, true},
		{"missing package", brzozowski.Options{Pattern: "a", Name: "A", OutputFile: "a.go"}, true},
		{"multibyte name", brzozowski.Options{Pattern: "a", Name: "Żółw", OutputFile: "a.go", Package: "p"}, false},
		{"underscore name", brzozowski.Options{Pattern: "a", Name: "_Cat", OutputFile: "a.go", Package: "p"}, false},
		{"name not an identifier", brzozowski.Options{Pattern: "a", Name: "my-pattern", OutputFile: "a.go", Package: "p"}, true},
		{"name is a keyword", brzozowski.Options{Pattern: "a", Name: "func", OutputFile: "a.go", Package: "p"}, true},
		{"package not an identifier", brzozowski.Options{Pattern: "a", Name: "A", OutputFile: "a.go", Package: "my pkg"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "banana.go")

	err := brzozowski.Compile(brzozowski.Options{
		Pattern:        "(ba*n*(a*n)b*a)",
		Name:           "Banana",
		OutputFile:     out,
		Package:        "fruit",
		TestFileInputs: []string{"banana", "bandana"},
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if !strings.Contains(string(src), "package fruit") || !strings.Contains(string(src), "var CompiledBanana = Banana{}") {
		t.Errorf("unexpected generated code:\n%s", src)
	}

	// Test inputs imply a test file.
	testSrc, err := os.ReadFile(filepath.Join(dir, "banana_test.go"))
	if err != nil {
		t.Fatalf("generated test file missing: %v", err)
	}
	if !strings.Contains(string(testSrc), `{"banana", true}`) || !strings.Contains(string(testSrc), `{"bandana", false}`) {
		t.Errorf("unexpected generated test:\n%s", testSrc)
	}
}

func TestCompileErrors(t *testing.T) {
	dir := t.TempDir()

	err := brzozowski.Compile(brzozowski.Options{Pattern: "(a", Name: "A", OutputFile: filepath.Join(dir, "a.go"), Package: "p"})
	if !errors.Is(err, brzozowski.ErrUnbalancedParentheses) {
		t.Errorf("Compile((a) error = %v", err)
	}

	err = brzozowski.Compile(brzozowski.Options{Pattern: "a·b", Name: "A", OutputFile: filepath.Join(dir, "a.go"), Package: "p", Strict: true})
	if err == nil {
		t.Error("strict Compile(a·b) succeeded")
	}

	if err := brzozowski.Compile(brzozowski.Options{Pattern: "a"}); err == nil {
		t.Error("Compile with empty options succeeded")
	}
}
