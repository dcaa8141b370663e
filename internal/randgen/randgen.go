// Package randgen generates random patterns, trees and inputs for tests and
// benchmarks. All generators take an explicit *rand.Rand so callers can use
// a fixed seed and get reproducible runs.
package randgen

import (
	"io"
	"math/rand"

	"github.com/KromDaniel/brzozowski/expr"
)

// TreeConfig controls Tree.
type TreeConfig struct {
	// Alphabet holds the runes used for Term leaves. Default "ab".
	Alphabet string
	// MaxDepth bounds the depth of the tree. Default 5.
	MaxDepth int
	// Markers allows Epsilon and Empty leaves.
	Markers bool
	// NoNestedKleene keeps a Kleene node from having a Kleene base.
	NoNestedKleene bool
}

func (c TreeConfig) withDefaults() TreeConfig {
	if c.Alphabet == "" {
		c.Alphabet = "ab"
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 5
	}
	return c
}

// Tree returns a random expression tree.
func Tree(rng *rand.Rand, cfg TreeConfig) *expr.Expr {
	cfg = cfg.withDefaults()
	return tree(rng, cfg, []rune(cfg.Alphabet), 1)
}

func tree(rng *rand.Rand, cfg TreeConfig, alphabet []rune, depth int) *expr.Expr {
	if depth >= cfg.MaxDepth || rng.Intn(3) == 0 {
		if cfg.Markers {
			switch rng.Intn(6) {
			case 0:
				return expr.Epsilon()
			case 1:
				return expr.Empty()
			}
		}
		return expr.Term(alphabet[rng.Intn(len(alphabet))])
	}
	switch rng.Intn(3) {
	case 0:
		return expr.Concat(tree(rng, cfg, alphabet, depth+1), tree(rng, cfg, alphabet, depth+1))
	case 1:
		return expr.Union(tree(rng, cfg, alphabet, depth+1), tree(rng, cfg, alphabet, depth+1))
	}
	base := tree(rng, cfg, alphabet, depth+1)
	for cfg.NoNestedKleene && base.Op == expr.OpKleene {
		base = tree(rng, cfg, alphabet, depth+1)
	}
	return expr.Kleene(base)
}

// Pattern returns a random well-formed pattern over alphabet that only
// uses concatenation, alternation, star and parentheses, so that it means
// the same thing to this package's parser and to the regexp package.
func Pattern(rng *rand.Rand, alphabet string, maxDepth int) string {
	return Tree(rng, TreeConfig{
		Alphabet:       alphabet,
		MaxDepth:       maxDepth,
		NoNestedKleene: true,
	}).Infix()
}

// String returns a string of up to maxLen runes drawn from alphabet.
func String(rng *rand.Rand, alphabet string, maxLen int) string {
	runes := []rune(alphabet)
	out := make([]rune, rng.Intn(maxLen+1))
	for i := range out {
		out[i] = runes[rng.Intn(len(runes))]
	}
	return string(out)
}

// Runes returns n runes drawn uniformly from the valid Unicode scalar
// values.
func Runes(rng *rand.Rand, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		for {
			r := rune(rng.Intn(0x110000))
			if r < 0xD800 || r > 0xDFFF {
				out[i] = r
				break
			}
		}
	}
	return out
}

// LineReader generates newline-separated random lines over an alphabet.
// Every matchEvery-th line is the fixed line match, so a test knows how
// many lines equal to it to expect.
type LineReader struct {
	match      []byte
	alphabet   string
	maxLen     int
	matchEvery int
	lines      int
	emitted    int
	pending    []byte
	rng        *rand.Rand
}

// NewLineReader returns a reader producing lines lines in total.
func NewLineReader(match, alphabet string, maxLen, matchEvery, lines int) *LineReader {
	if matchEvery < 1 {
		matchEvery = 1
	}
	return &LineReader{
		match:      []byte(match),
		alphabet:   alphabet,
		maxLen:     maxLen,
		matchEvery: matchEvery,
		lines:      lines,
		rng:        rand.New(rand.NewSource(42)),
	}
}

func (r *LineReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.pending) == 0 {
			if r.emitted == r.lines {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			if r.emitted%r.matchEvery == 0 {
				r.pending = append(r.pending, r.match...)
			} else {
				r.pending = append(r.pending, String(r.rng, r.alphabet, r.maxLen)...)
			}
			r.pending = append(r.pending, '\n')
			r.emitted++
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}

// PlantedLines returns the number of lines equal to the planted match line.
// Random lines can equal it too, so this is a lower bound on the lines a
// matcher for it accepts.
func (r *LineReader) PlantedLines() int {
	return (r.lines + r.matchEvery - 1) / r.matchEvery
}
