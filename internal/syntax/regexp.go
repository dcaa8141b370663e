package syntax

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/KromDaniel/brzozowski/expr"
)

// regexpMeta holds the runes the regexp package treats specially beyond
// the operators shared with this package.
const regexpMeta = `\.+?[]{}^$`

// RegexpEquivalent returns a pattern for the regexp package that matches
// exactly the whole strings pattern matches, or false when pattern uses
// something regexp reads differently (ε, ∅, an explicit '·', regexp
// metacharacters) or rejects (such as "a**"). Patterns that are not valid
// UTF-8 or contain U+FFFD are refused too.
func RegexpEquivalent(pattern string) (string, bool) {
	if !utf8.ValidString(pattern) || strings.ContainsRune(pattern, utf8.RuneError) {
		return "", false
	}
	if strings.ContainsAny(pattern, regexpMeta) ||
		strings.ContainsRune(pattern, expr.EpsilonRune) ||
		strings.ContainsRune(pattern, expr.EmptyRune) ||
		strings.ContainsRune(pattern, Concat) {
		return "", false
	}
	anchored := "^(?:" + pattern + ")$"
	if _, err := regexp.Compile(anchored); err != nil {
		return "", false
	}
	return anchored, true
}
