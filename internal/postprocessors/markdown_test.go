package postprocessors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdown_CollapsesBlankRuns(t *testing.T) {
	out := CleanMarkdown("# Title\n\n\n\ncontent")

	assert.Equal(t, "# Title\n\ncontent", out)
}

func TestCleanMarkdown_InsertsBlankBeforeHeading(t *testing.T) {
	out := CleanMarkdown("some content\n## Section")

	assert.Equal(t, "some content\n\n## Section", out)
}

func TestCleanMarkdown_AdjacentHeadingsUntouched(t *testing.T) {
	in := "# Title\n## Section"

	assert.Equal(t, in, CleanMarkdown(in))
}

func TestCleanMarkdown_AlreadyClean(t *testing.T) {
	in := "# Title\n\n## Section\n\n- item\n"

	assert.Equal(t, in, CleanMarkdown(in))
}

func TestCleanMarkdown_Empty(t *testing.T) {
	assert.Empty(t, CleanMarkdown(""))
}
