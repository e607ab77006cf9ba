package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns a human-readable English name for a language tag.
// Returns "Unknown" for empty input and the uppercased tag when the tag
// cannot be resolved.
func DisplayName(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "Unknown"
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return strings.ToUpper(trimmed)
	}
	name := display.English.Languages().Name(parsed)
	if strings.TrimSpace(name) == "" {
		return strings.ToUpper(trimmed)
	}
	return name
}
