package textdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_LF_RoundTripsUnchanged(t *testing.T) {
	input := "one\ntwo\n\nthree\n"

	lines, style := Split(input)
	require.Equal(t, []string{"one", "two", "", "three"}, lines)
	require.Equal(t, "\n", style.Newline)
	require.True(t, style.HasTrailingNewline)
	require.Equal(t, input, Join(lines, style))
}

func TestSplit_CRLF_RoundTripsUnchanged(t *testing.T) {
	input := "one\r\ntwo\r\n"

	lines, style := Split(input)
	require.Equal(t, []string{"one", "two"}, lines)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, input, Join(lines, style))
}

func TestSplit_NoTrailingNewline_RoundTripsUnchanged(t *testing.T) {
	input := "one\ntwo"

	lines, style := Split(input)
	require.False(t, style.HasTrailingNewline)
	require.Equal(t, input, Join(lines, style))
}

func TestSplit_EmptyDocument_YieldsNoLines(t *testing.T) {
	lines, style := Split("")
	require.Empty(t, lines)
	require.Equal(t, "", Join(lines, style))
}

func TestSplit_SingleNewline_RoundTripsUnchanged(t *testing.T) {
	lines, style := Split("\n")
	require.Equal(t, []string{""}, lines)
	require.Equal(t, "\n", Join(lines, style))
}
