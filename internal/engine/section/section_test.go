package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/txxt/internal/textdoc"
)

const sampleDoc = `Author        Jane Doe

1. Purpose
Some prose.

1.1. Details
More prose.

OVERVIEW
Text under the uppercase header.

: Appendix
Closing words.
`

func TestIndex_FindsAllThreeDialectsInOrder(t *testing.T) {
	lines, _ := textdoc.Split(sampleDoc)

	sections := Index(lines)
	require.Len(t, sections, 4)

	require.Equal(t, KindNumbered, sections[0].Kind)
	require.Equal(t, "Purpose", sections[0].Title)
	require.Equal(t, "1", sections[0].NumberingPrefix)
	require.Equal(t, 1, sections[0].Level)
	require.Equal(t, 2, sections[0].LineIndex)

	require.Equal(t, KindNumbered, sections[1].Kind)
	require.Equal(t, "1.1", sections[1].NumberingPrefix)
	require.Equal(t, 2, sections[1].Level)

	require.Equal(t, KindUppercase, sections[2].Kind)
	require.Equal(t, "OVERVIEW", sections[2].Title)
	require.Equal(t, 1, sections[2].Level)

	require.Equal(t, KindAlternative, sections[3].Kind)
	require.Equal(t, "Appendix", sections[3].Title)

	for i := 1; i < len(sections); i++ {
		require.Greater(t, sections[i].LineIndex, sections[i-1].LineIndex)
	}
}

func TestIndex_NoSections_ReturnsEmpty(t *testing.T) {
	lines, _ := textdoc.Split("just prose\nmore prose\n")
	require.Empty(t, Index(lines))
}

func TestIndex_SkipsHeadersInsideCodeBlocks(t *testing.T) {
	doc := "1. Real Section\n\n    1. Indented sample\n     OVERVIEW\n\nAfter the block.\n"
	lines, _ := textdoc.Split(doc)

	sections := Index(lines)
	require.Len(t, sections, 1)
	require.Equal(t, "Real Section", sections[0].Title)
}

func TestIndex_LevelTracksPrefixDepth(t *testing.T) {
	lines, _ := textdoc.Split("1. Top\n\n1.2.3. Deep\n")

	sections := Index(lines)
	require.Len(t, sections, 2)
	require.Equal(t, 1, sections[0].Level)
	require.Equal(t, 3, sections[1].Level)
}
