// Package postprocessors applies optional cleanup passes to rendered
// documents. The aggregation pipeline's default output is byte-stable;
// these passes only run when explicitly requested.
package postprocessors

import (
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// CleanMarkdown tidies a rendered markdown document: runs of three or more
// newlines collapse to a single blank line, and every heading that directly
// follows a content line gains a preceding blank line.
func CleanMarkdown(content string) string {
	content = blankRuns.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i > 0 && strings.HasPrefix(line, "#") &&
			strings.TrimSpace(lines[i-1]) != "" && !strings.HasPrefix(lines[i-1], "#") {
			out = append(out, "")
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
