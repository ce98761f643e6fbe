// Package tex provides the small LaTeX text utilities the report
// writer depends on: escaping reserved characters, normalizing a
// solution string into a display-math block, and repairing truncated
// \boxed brace groups.
package tex

import (
	"regexp"
	"strings"
)

// escapeRe matches the characters LaTeX reserves in running text.
var escapeRe = regexp.MustCompile(`([&%$#_{}])`)

// Escape prefixes each LaTeX-reserved character (& % $ # _ { }) with
// a backslash. All other characters are passed through unchanged.
func Escape(s string) string {
	return escapeRe.ReplaceAllString(s, `\${1}`)
}

// unwrapRes are the recognized math-delimiter pairs, tried in order.
// Each substitution applies to the result of the previous one, so a
// $$-wrapped $-wrapped string unwraps fully while the reverse nesting
// of two pairs tried earlier in the list survives. Intent for nested
// delimiters is ambiguous upstream; the order-dependent behavior is
// kept as-is.
var unwrapRes = []*regexp.Regexp{
	regexp.MustCompile(`^\\\[(.*)\\\]$`),
	regexp.MustCompile(`^\\\((.*)\\\)$`),
	regexp.MustCompile(`^\$\$(.*)\$\$$`),
	regexp.MustCompile(`^\$(.*)\$$`),
}

// DisplayMath normalizes a solution string into a single display-math
// block. Any recognized delimiter pair already wrapping the string is
// stripped first, then the result is wrapped as `\[ ... \]`. Applying
// DisplayMath to its own output yields the same block.
func DisplayMath(s string) string {
	s = strings.TrimSpace(s)
	for _, re := range unwrapRes {
		s = strings.TrimSpace(re.ReplaceAllString(s, "${1}"))
	}
	return `\[ ` + s + ` \]`
}

// RepairBoxedBraces balances the grouping braces of a solution that
// contains a \boxed answer. Upstream refinement sometimes truncates
// the closing braces of a multi-line \boxed expression; when more
// braces open than close, the missing closers are appended. The
// reverse imbalance and interior mismatches are left untouched.
func RepairBoxedBraces(s string) string {
	if !strings.Contains(s, `\boxed{`) {
		return s
	}
	opens := strings.Count(s, "{")
	closes := strings.Count(s, "}")
	if opens > closes {
		s += strings.Repeat("}", opens-closes)
	}
	return s
}
