// Package answer turns a retrieved section into display text.
package answer

import (
	"regexp"
	"strings"
)

// NoInformation is returned when there is no context to format.
const NoInformation = "I couldn't find relevant information to answer your question."

var (
	newlineRun    = regexp.MustCompile(`\n+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

var bulletMarkers = []string{"•", "-"}

// Format normalizes whitespace in context and sets bullet lines apart. The
// newline pass runs before the general whitespace pass, so by the time lines
// are re-split every newline has already become a space and only a context
// that opens with a bullet gets the leading break. A context made only of
// whitespace formats to "".
func Format(context string) string {
	if context == "" {
		return NoInformation
	}

	normalized := newlineRun.ReplaceAllString(context, "\n")
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if rest, ok := strings.CutPrefix(trimmed, marker); ok {
				lines[i] = "\n" + marker + " " + strings.TrimSpace(rest)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
