package projection

import (
	"regexp"
	"strings"
)

// bulletMarker matches one leading bullet glyph with its surrounding space.
var bulletMarker = regexp.MustCompile(`^\s*[•\-*]\s*`)

// SplitDescriptionLines splits free text into display lines. Blank lines
// are dropped and at most one leading bullet marker (•, - or *) is removed
// from each line. Line order is kept as written.
func SplitDescriptionLines(description string) []string {
	lines := []string{}
	if strings.TrimSpace(description) == "" {
		return lines
	}
	for _, raw := range strings.Split(description, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
