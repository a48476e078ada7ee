package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	body := `# Features

- Added new feature 1
- Added new feature 2

# Bug Fixes

- Fixed bug 1
- Fixed bug 2

# Documentation

- Updated docs`

	sections := ParseSections(body)

	require.Len(t, sections, 3)
	assert.Equal(t, []string{"- Added new feature 1", "- Added new feature 2"}, sections["Features"])
	assert.Equal(t, []string{"- Fixed bug 1", "- Fixed bug 2"}, sections["Bug Fixes"])
	assert.Equal(t, []string{"- Updated docs"}, sections["Documentation"])
}

func TestParseSections_ContentBeforeFirstHeading(t *testing.T) {
	body := "Intro line\n\n# Features\n- Feature A"

	sections := ParseSections(body)

	require.Len(t, sections, 2)
	assert.Equal(t, []string{"Intro line"}, sections[UncategorizedSection])
	assert.Equal(t, []string{"- Feature A"}, sections["Features"])
}

func TestParseSections_NoHeadings(t *testing.T) {
	sections := ParseSections("Just some notes\nacross two lines")

	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Just some notes", "across two lines"}, sections[UncategorizedSection])
}

func TestParseSections_HeadingsOnly(t *testing.T) {
	// A body with headings but no prose yields an empty index.
	sections := ParseSections("# Features\n\n## Bug Fixes\n\n### Notes")

	assert.Empty(t, sections)
}

func TestParseSections_EmptyBody(t *testing.T) {
	assert.Empty(t, ParseSections(""))
	assert.Empty(t, ParseSections("\n\n\n"))
}

func TestParseSections_AllDepthsDivide(t *testing.T) {
	// Headings of any depth (1-6) switch the current section.
	body := "# Top\ntop line\n### Deep\ndeep line\n###### Deepest\ndeepest line"

	sections := ParseSections(body)

	require.Len(t, sections, 3)
	assert.Equal(t, []string{"top line"}, sections["Top"])
	assert.Equal(t, []string{"deep line"}, sections["Deep"])
	assert.Equal(t, []string{"deepest line"}, sections["Deepest"])
}

func TestParseSections_HeadingNameTrimmed(t *testing.T) {
	sections := ParseSections("#   Features   \n- x")

	_, ok := sections["Features"]
	assert.True(t, ok)
}

func TestParseSections_NonHeadingHashLines(t *testing.T) {
	// '#' without a following space is content, not a heading.
	body := "# Features\n#not-a-heading\n####### seven hashes"

	sections := ParseSections(body)

	require.Len(t, sections, 1)
	assert.Equal(t, []string{"#not-a-heading", "####### seven hashes"}, sections["Features"])
}

func TestParseSections_ContentKeptVerbatim(t *testing.T) {
	// Lines are not markdown-stripped and keep interior whitespace.
	body := "# Features\n- **bold** change  with  spacing"

	sections := ParseSections(body)

	assert.Equal(t, []string{"- **bold** change  with  spacing"}, sections["Features"])
}

func TestExtractTopLevelSections(t *testing.T) {
	body := `# Features

- Feature A

### Details

- nested detail

## Bug Fixes
- Fix B`

	sections := ExtractTopLevelSections(body)

	require.Len(t, sections, 2)
	// The depth-3 heading stays inside the Features section.
	assert.Contains(t, sections["Features"], "### Details")
	assert.Contains(t, sections["Features"], "- Feature A")
	assert.Contains(t, sections["Features"], "- nested detail")
	assert.Equal(t, []string{"- Fix B"}, sections["Bug Fixes"])
}

func TestExtractTopLevelSections_KeepsBlankLines(t *testing.T) {
	sections := ExtractTopLevelSections("# A\nline one\n\nline two")

	assert.Equal(t, []string{"line one", "", "line two"}, sections["A"])
}

func TestExtractTopLevelSections_UncategorizedPrefix(t *testing.T) {
	sections := ExtractTopLevelSections("intro\n## A\ncontent")

	assert.Equal(t, []string{"intro"}, sections[UncategorizedSection])
	assert.Equal(t, []string{"content"}, sections["A"])
}
