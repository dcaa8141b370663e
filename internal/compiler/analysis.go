package compiler

import (
	"sort"
	"unicode/utf8"

	"github.com/KromDaniel/brzozowski/expr"
	"github.com/KromDaniel/brzozowski/internal/grammar"
	"github.com/KromDaniel/brzozowski/internal/syntax"
)

// Feature labels reported by AnalyzePattern.
const (
	LabelAlternation   = "Alternation"
	LabelConcatenation = "Concatenation"
	LabelKleene        = "Kleene"
	LabelNestedKleene  = "NestedKleene"
	LabelEpsilon       = "Epsilon"
	LabelEmptySet      = "EmptySet"
	LabelMultibyte     = "Multibyte"
)

// AnalysisResult describes a parsed pattern.
type AnalysisResult struct {
	// FeatureLabels are derived from the tree (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	Augmented string `json:"augmented,omitempty"`
	Postfix   string `json:"postfix,omitempty"`
	Tree      string `json:"tree"`
	Infix     string `json:"infix"`
	Size      int    `json:"size"`
	Depth     int    `json:"depth"`
	Alphabet  string `json:"alphabet"`
	Nullable  bool   `json:"nullable"`
}

// AnalyzePattern parses pattern and describes it. With strict set the
// grammar parser is used and the token forms are left empty.
func AnalyzePattern(pattern string, strict bool) (*AnalysisResult, error) {
	if strict {
		tree, err := grammar.Parse(pattern)
		if err != nil {
			return nil, err
		}
		result := analyzeTree(tree)
		return &result, nil
	}

	augmented := syntax.AugmentString(pattern).All()
	postfix, err := syntax.ToPostfix(augmented)
	if err != nil {
		return nil, err
	}
	tree, err := syntax.Build(postfix)
	if err != nil {
		return nil, err
	}
	result := analyzeTree(tree)
	result.Augmented = string(augmented)
	result.Postfix = string(postfix)
	return &result, nil
}

func analyzeTree(e *expr.Expr) AnalysisResult {
	return AnalysisResult{
		FeatureLabels: deriveFeatureLabels(e),
		Tree:          e.String(),
		Infix:         e.Infix(),
		Size:          e.Size(),
		Depth:         e.Depth(),
		Alphabet:      string(e.Alphabet()),
		Nullable:      e.Nullable(),
	}
}

// deriveFeatureLabels extracts feature labels from the tree.
// Labels are sorted alphabetically.
func deriveFeatureLabels(e *expr.Expr) []string {
	seen := make(map[string]bool)
	var walk func(n *expr.Expr, underKleene bool)
	walk = func(n *expr.Expr, underKleene bool) {
		switch n.Op {
		case expr.OpUnion:
			seen[LabelAlternation] = true
		case expr.OpConcat:
			seen[LabelConcatenation] = true
		case expr.OpKleene:
			seen[LabelKleene] = true
			if underKleene {
				seen[LabelNestedKleene] = true
			}
			walk(n.Left, true)
			return
		case expr.OpEpsilon:
			seen[LabelEpsilon] = true
		case expr.OpEmpty:
			seen[LabelEmptySet] = true
		case expr.OpTerm:
			if n.Rune >= utf8.RuneSelf {
				seen[LabelMultibyte] = true
			}
			return
		}
		if n.Left != nil {
			walk(n.Left, underKleene)
		}
		if n.Right != nil {
			walk(n.Right, underKleene)
		}
	}
	walk(e, false)

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
