package services

import (
	"regexp"
	"strings"
)

// UncategorizedSection names the implicit bucket for content that appears
// before the first heading, or when a body has no headings at all.
const UncategorizedSection = "Uncategorized"

var (
	// headingPattern matches an ATX heading: one to six '#' characters,
	// at least one whitespace character, then non-empty text.
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// anyHeadingPattern matches a heading of any depth. Used by the
	// top-level extractor, which inspects the depth itself.
	anyHeadingPattern = regexp.MustCompile(`^(#+)\s+(.+)$`)
)

// ParseSections splits a release body into sections keyed by heading text.
//
// Headings of any depth (1-6) act as section dividers; the heading text,
// trimmed, becomes the section name. Non-blank, non-heading lines are kept
// verbatim under the current section. Blank lines are dropped, and heading
// lines themselves are never retained as content. Sections that end up with
// no content are removed, so a body containing only headings yields an
// empty index.
func ParseSections(body string) map[string][]string {
	sections := map[string][]string{UncategorizedSection: {}}
	current := UncategorizedSection

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			current = strings.TrimSpace(m[2])
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
			continue
		}

		if strings.TrimSpace(line) != "" {
			sections[current] = append(sections[current], line)
		}
	}

	for name, lines := range sections {
		if len(lines) == 0 {
			delete(sections, name)
		}
	}

	return sections
}

// ExtractTopLevelSections splits content on depth-1 and depth-2 headings
// only. Deeper headings and blank lines are kept as content, so a section
// preserves its internal structure. The aggregation pipeline itself uses
// ParseSections, which treats headings of any depth as dividers; this
// shallow rule serves the section-preview surface.
//
// A repeated section name keeps the content of its last occurrence.
func ExtractTopLevelSections(content string) map[string][]string {
	sections := make(map[string][]string)
	current := UncategorizedSection
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			sections[current] = buf
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")

		m := anyHeadingPattern.FindStringSubmatch(line)
		if m != nil && len(m[1]) <= 2 {
			flush()
			current = strings.TrimSpace(m[2])
			buf = nil
			continue
		}

		buf = append(buf, line)
	}
	flush()

	return sections
}
