package services

import (
	"regexp"
	"strings"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

// listMarkerPattern matches leading list markers: numbering ("1.", "2)"),
// bullets ("-", "*", "•") and the whitespace around them.
var listMarkerPattern = regexp.MustCompile(`^\s*(?:\d+\s*[.):]|[-*•·]+)\s*`)

// stripListMarker removes a leading list marker and surrounding markdown
// emphasis from a line
func stripListMarker(line string) string {
	line = strings.TrimSpace(line)
	line = listMarkerPattern.ReplaceAllString(line, "")
	line = strings.Trim(line, "*_ \t")
	return strings.TrimSpace(line)
}

// ParseNames converts the raw model reply into name/tagline pairs.
//
// The reply is split into non-empty trimmed lines; consecutive lines are
// paired as (name, tagline) after stripping list markers. At most five
// pairs are kept; fewer are accepted as-is. A trailing name without a
// tagline keeps an empty tagline rather than being dropped - partial data
// beats data loss here.
//
// Pure function: identical input always yields identical output.
func ParseNames(text string) []models.NameSuggestion {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := stripListMarker(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}

	suggestions := make([]models.NameSuggestion, 0, models.ExpectedNameCount)
	for i := 0; i < len(lines) && len(suggestions) < models.ExpectedNameCount; i += 2 {
		suggestion := models.NameSuggestion{Name: lines[i]}
		if i+1 < len(lines) {
			suggestion.Tagline = lines[i+1]
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}
