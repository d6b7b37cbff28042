// Package ingestion loads resume and job description text from files and URLs
// and normalizes it before analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerWhitespace = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun    = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, whitespace and blank-line runs while
// keeping headings, bullets and indentation intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Markdown headings lose their indentation.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := ""
	if n := len(line) - len(trimmed); n > 0 {
		indent = strings.Repeat(" ", n)
	}
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + innerWhitespace.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
