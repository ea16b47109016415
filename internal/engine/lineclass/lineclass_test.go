package lineclass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_CoversEveryKind(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Kind
	}{
		{"blank empty", "", Blank},
		{"blank whitespace", "   \t", Blank},
		{"numbered section", "1. Introduction", NumberedSection},
		{"numbered section nested", "2.1.3. Details", NumberedSection},
		{"uppercase section", "OVERVIEW", UppercaseSection},
		{"uppercase section with spaces", "TABLE OF CONTENTS", UppercaseSection},
		{"uppercase section with hyphen", "NON-GOALS", UppercaseSection},
		{"alternative section", ": Getting Started", AlternativeSection},
		{"metadata", "Author     John Doe", Metadata},
		{"metadata multiword key", "Last Updated  2025-03-13", Metadata},
		{"bullet list", "- item", ListBullet},
		{"bullet list indented", "  - item", ListBullet},
		{"numbered list indented", "  1. item", ListNumbered},
		{"lettered list", "  a. item", ListLettered},
		{"roman list", "  iv. item", ListRoman},
		{"code exactly four spaces", "    x := 1", Code},
		{"quote", "> quoted", Quote},
		{"nested quote", ">> deeper", QuoteNested},
		{"plain text", "just some prose", Text},
		{"numeric prose", "Version 1.0 shipped", Text},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.line), "line %q", tc.line)
		})
	}
}

func TestClassify_RomanWinsOverLettered(t *testing.T) {
	// "i." and "x." are valid lettered items too; roman is checked first.
	require.Equal(t, ListRoman, Classify("  i. first"))
	require.Equal(t, ListRoman, Classify("  x. tenth"))
	require.Equal(t, ListLettered, Classify("  b. second"))
}

func TestClassify_SectionWinsOverMetadata(t *testing.T) {
	// An ALL-CAPS line with interior space runs satisfies both patterns.
	require.Equal(t, UppercaseSection, Classify("API  DESIGN"))
}

func TestClassify_SectionWinsOverNumberedList(t *testing.T) {
	// Unindented "1. x" is a section; the list variant needs context the
	// classifier does not have, and the precedence order is fixed.
	require.Equal(t, NumberedSection, Classify("1. Hello"))
	require.Equal(t, ListNumbered, Classify(" 1. Hello"))
}

func TestClassify_FiveSpacesIsNotACodeStart(t *testing.T) {
	require.NotEqual(t, Code, Classify("     deeper"))
	require.True(t, ContinuesCode("     deeper"))
	require.True(t, ContinuesCode("    start"))
	require.False(t, ContinuesCode("   three"))
}

func TestParseNumberedPrefix_SplitsPrefixAndTitle(t *testing.T) {
	prefix, rest, ok := ParseNumberedPrefix("2.1. Component Design")
	require.True(t, ok)
	require.Equal(t, "2.1", prefix)
	require.Equal(t, "Component Design", rest)

	_, _, ok = ParseNumberedPrefix("no prefix here")
	require.False(t, ok)
}

func TestParseMetadata_SplitsOnFirstDoubleSpace(t *testing.T) {
	key, value, ok := ParseMetadata("Last Updated   2025-03-13")
	require.True(t, ok)
	require.Equal(t, "Last Updated", key)
	require.Equal(t, "2025-03-13", value)

	_, _, ok = ParseMetadata("not metadata")
	require.False(t, ok)
}
