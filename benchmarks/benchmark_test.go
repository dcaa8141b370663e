package benchmarks_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/wasilibs/go-re2"

	"github.com/KromDaniel/brzozowski/benchmarks/generated"
	"github.com/KromDaniel/brzozowski/internal/randgen"
	"github.com/KromDaniel/brzozowski/internal/syntax"
	"github.com/KromDaniel/brzozowski/pkg/brzozowski"
)

const bananaPattern = "(ba*n*(a*n)b*a)"

var bananaInputs = []string{
	"banana",
	"bnbnba",
	"baaannaaanbba",
	"bandana",
	"",
}

func TestGeneratedBananaIsCurrent(t *testing.T) {
	if generated.CompiledBanana.Pattern() != bananaPattern {
		t.Fatalf("generated pattern = %q", generated.CompiledBanana.Pattern())
	}
	want := brzozowski.MustParse(bananaPattern)
	if !generated.CompiledBanana.Expr().Equal(want) {
		t.Errorf("generated tree %s, parsed %s", generated.CompiledBanana.Expr(), want)
	}
	for _, in := range bananaInputs {
		if got := generated.CompiledBanana.MatchString(in); got != want.IsMatch(in) {
			t.Errorf("MatchString(%q) = %v", in, got)
		}
	}
}

// Banana benchmarks - derivative matcher parsing on every call
func BenchmarkBananaParseAndMatch(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range bananaInputs {
			tree, _ := brzozowski.Parse(bananaPattern)
			tree.IsMatch(input)
		}
	}
}

// Banana benchmarks - cached parse through MatchString
func BenchmarkBananaMatchString(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range bananaInputs {
			brzozowski.MatchString(bananaPattern, input)
		}
	}
}

// Banana benchmarks - generated code
func BenchmarkBananaGenerated(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range bananaInputs {
			generated.CompiledBanana.MatchString(input)
		}
	}
}

// Banana benchmarks - Standard regexp
func BenchmarkBananaStdRegexp(b *testing.B) {
	re := regexp.MustCompile("^" + bananaPattern + "$")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range bananaInputs {
			re.MatchString(input)
		}
	}
}

// Banana benchmarks - RE2
func BenchmarkBananaRE2(b *testing.B) {
	re := re2.MustCompile("^" + bananaPattern + "$")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range bananaInputs {
			re.MatchString(input)
		}
	}
}

var suite = []struct {
	name    string
	pattern string
	input   string
}{
	{"Words", "(c|b|r)at(s|ε)", "cats"},
	{"AbbSuffix", "(a|b)*abb", strings.Repeat("ab", 32) + "abb"},
	{"Alternating", "(ab|ba)*", strings.Repeat("ab", 64)},
	{"NestedStar", "((a|b)*c)*", strings.Repeat("aabbc", 16)},
	{"LongMiss", "a*b", strings.Repeat("a", 256)},
}

func BenchmarkSuite(b *testing.B) {
	for _, tc := range suite {
		tree := brzozowski.MustParse(tc.pattern)
		b.Run(tc.name+"/Brzozowski", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tree.IsMatch(tc.input)
			}
		})

		anchored, ok := syntax.RegexpEquivalent(tc.pattern)
		if !ok {
			continue
		}
		std := regexp.MustCompile(anchored)
		b.Run(tc.name+"/StdRegexp", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				std.MatchString(tc.input)
			}
		})
		ref := re2.MustCompile(anchored)
		b.Run(tc.name+"/RE2", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ref.MatchString(tc.input)
			}
		})
	}
}

func BenchmarkAugment(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{10, 100, 1000, 10000, 100000} {
		input := randgen.Runes(rng, n)

		b.Run(fmt.Sprintf("Eager/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				syntax.AugmentEager(input)
			}
		})
		b.Run(fmt.Sprintf("Lazy/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				syntax.AugmentRunes(input).All()
			}
		})
	}
}

func BenchmarkParseRandomPatterns(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	patterns := make([]string, 64)
	for i := range patterns {
		patterns[i] = randgen.Pattern(rng, "abc", 6)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range patterns {
			brzozowski.Parse(p)
		}
	}
}
