// Package toc generates, locates and replaces the table-of-contents
// block of a document.
package toc

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/txxt/internal/engine/lineclass"
	"git.home.luguber.info/inful/txxt/internal/engine/section"
)

// Header is the literal marker line that opens a table-of-contents block.
const Header = "TABLE OF CONTENTS"

var underlineRe = regexp.MustCompile(`^-{2,}$`)

// Block locates an existing table-of-contents block. Start is the header
// line; End is the exclusive end of the block (the terminating blank
// line, or len(lines) when the block runs to end of document).
type Block struct {
	Start int
	End   int
}

// Generate renders the TOC lines for the given sections: the header, a
// dashed rule, one blank, then one entry per section in document order.
// Entries below level 1 are indented four spaces. An empty section list
// yields nil, which callers treat as "nothing to do".
func Generate(sections []section.Section) []string {
	if len(sections) == 0 {
		return nil
	}

	lines := []string{Header, strings.Repeat("-", len(Header)), ""}
	for _, s := range sections {
		var entry string
		switch s.Kind {
		case section.KindNumbered:
			entry = s.NumberingPrefix + ". " + s.Title
		case section.KindAlternative:
			entry = ": " + s.Title
		default:
			entry = s.Title
		}
		if s.Level > 1 {
			entry = "    " + entry
		}
		lines = append(lines, entry)
	}
	return lines
}

// Locate finds an existing TOC block. The block starts at a line whose
// trimmed text equals Header and extends to the next blank line that is
// immediately followed by a recognized section line, or to end of
// document.
func Locate(lines []string) (Block, bool) {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == Header {
			start = i
			break
		}
	}
	if start < 0 {
		return Block{}, false
	}

	// Skip the block's own preamble (dashed rule plus one blank) so the
	// blank before the first entry is never mistaken for the terminator:
	// numbered entries classify as section lines themselves.
	scanFrom := start + 1
	if scanFrom < len(lines) && underlineRe.MatchString(strings.TrimSpace(lines[scanFrom])) {
		scanFrom++
	}
	if scanFrom < len(lines) && lineclass.Classify(lines[scanFrom]) == lineclass.Blank {
		scanFrom++
	}

	for i := scanFrom; i < len(lines); i++ {
		if lineclass.Classify(lines[i]) != lineclass.Blank {
			continue
		}
		if i+1 < len(lines) && lineclass.Classify(lines[i+1]).IsSection() {
			return Block{Start: start, End: i}, true
		}
	}
	return Block{Start: start, End: len(lines)}, true
}

// Apply rewrites lines so they carry exactly one up-to-date TOC for
// sections. An existing block is replaced in place; otherwise the TOC is
// inserted at the best position: after the leading metadata run, after a
// title underline, at line 3, or at end of document, in that order of
// preference. The returned slice is freshly allocated.
func Apply(lines []string, sections []section.Section) []string {
	generated := Generate(sections)
	if generated == nil {
		return append([]string(nil), lines...)
	}

	if block, ok := Locate(lines); ok {
		out := make([]string, 0, len(lines)-(block.End-block.Start)+len(generated))
		out = append(out, lines[:block.Start]...)
		out = append(out, generated...)
		out = append(out, lines[block.End:]...)
		return out
	}

	at := insertionLine(lines)
	out := make([]string, 0, len(lines)+len(generated)+1)
	out = append(out, lines[:at]...)
	out = append(out, generated...)
	// Exactly one blank separates the block from what follows; do not
	// stack a second one onto an existing blank line.
	if at >= len(lines) || strings.TrimSpace(lines[at]) != "" {
		out = append(out, "")
	}
	out = append(out, lines[at:]...)
	return out
}

// insertionLine picks where a fresh TOC goes when the document has none.
func insertionLine(lines []string) int {
	if at, ok := afterMetadataRun(lines); ok {
		return at
	}
	if at, ok := afterTitle(lines); ok {
		return at
	}
	if len(lines) > 3 {
		return 3
	}
	return len(lines)
}

// afterMetadataRun returns the line after the first blank following the
// document's leading metadata run.
func afterMetadataRun(lines []string) (int, bool) {
	i := 0
	for i < len(lines) && lineclass.Classify(lines[i]) == lineclass.Metadata {
		i++
	}
	if i == 0 {
		return 0, false
	}
	for j := i; j < len(lines); j++ {
		if lineclass.Classify(lines[j]) == lineclass.Blank {
			return j + 1, true
		}
	}
	return len(lines), true
}

// afterTitle returns the line after the first blank following a title,
// where a title is any line directly underlined with dashes.
func afterTitle(lines []string) (int, bool) {
	for i := 0; i+1 < len(lines); i++ {
		if lineclass.Classify(lines[i]) == lineclass.Blank {
			continue
		}
		if !underlineRe.MatchString(strings.TrimSpace(lines[i+1])) {
			return 0, false
		}
		for j := i + 2; j < len(lines); j++ {
			if lineclass.Classify(lines[j]) == lineclass.Blank {
				return j + 1, true
			}
		}
		return len(lines), true
	}
	return 0, false
}
