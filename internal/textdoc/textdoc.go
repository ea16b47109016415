// Package textdoc handles the line-array view of a document snapshot.
//
// Every engine operation derives a fresh line slice from the input string,
// transforms it, and joins it back. The original newline style (LF or CRLF)
// and the presence of a trailing newline are captured once and restored on
// join so a round trip without edits is byte-identical.
package textdoc

import "strings"

// Style captures formatting details needed for stable rewriting.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// DetectStyle inspects content and returns its newline style.
//
// A document containing at least one CRLF is treated as CRLF throughout;
// mixed-ending documents are normalized to the detected style on join.
func DetectStyle(content string) Style {
	s := Style{Newline: "\n"}
	if strings.Contains(content, "\r\n") {
		s.Newline = "\r\n"
	}
	s.HasTrailingNewline = strings.HasSuffix(content, "\n")
	return s
}

// Split returns the document's lines (without line terminators) and its
// detected style. A trailing newline does not produce a final empty line.
func Split(content string) ([]string, Style) {
	style := DetectStyle(content)

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	if normalized == "" && content == "" {
		return []string{}, style
	}
	return strings.Split(normalized, "\n"), style
}

// Join reassembles lines into a document using the captured style.
func Join(lines []string, style Style) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, style.Newline)
	if style.HasTrailingNewline {
		out += style.Newline
	}
	return out
}
