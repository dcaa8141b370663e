package brzozowski

import (
	"github.com/KromDaniel/brzozowski/internal/compiler"
)

// AnalysisResult describes a pattern without generating code.
type AnalysisResult = compiler.AnalysisResult

// Analyze parses pattern and reports the intermediate token forms, tree
// statistics and feature labels. Labels are sorted alphabetically for
// deterministic comparison.
//
// Example:
//
//	result, err := brzozowski.Analyze("(c|b)at")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Postfix)       // cb|a·t·
//	fmt.Println(result.FeatureLabels) // [Alternation Concatenation]
func Analyze(pattern string) (*AnalysisResult, error) {
	return compiler.AnalyzePattern(pattern, false)
}

// AnalyzeStrict is like Analyze but parses with ParseStrict. The
// augmented and postfix forms are left empty.
func AnalyzeStrict(pattern string) (*AnalysisResult, error) {
	return compiler.AnalyzePattern(pattern, true)
}
