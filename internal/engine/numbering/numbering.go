// Package numbering repairs literal repeated markers in numbered,
// lettered and roman runs.
//
// Authors commonly write every item of a list (or every sibling section)
// as "1." (or "a.", or "i.") and expect the tool to count for them. Fix
// detects such runs and rewrites them to a strictly increasing sequence.
// Detection goes through the line classifier, never raw digit matching,
// so numeric prose like "Version 1.0" is left alone. A repeated "i." run
// is roman under the classifier's precedence and counts i, ii, iii.
package numbering

import (
	"regexp"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/txxt/internal/engine/lineclass"
)

// Result reports the rewritten lines and how many of them actually
// changed.
type Result struct {
	Lines        []string
	LinesChanged int
}

// run is a candidate sequence of sibling marker-prefixed lines.
type run struct {
	indexes []int  // line indexes, in order
	marker  string // shared literal prefix, e.g. "1", "2.1", "a", "i"
	indent  int
	kind    lineclass.Kind
	mixed   bool // markers differ; not a literal repeated run
}

// Fix scans lines for contiguous runs of list items (numbered, lettered
// or roman) or numbered section headers at one nesting depth whose
// markers are all the same literal, and renumbers each such run from the
// start of its alphabet (1, a, i). Blank lines terminate a run; comment
// lines (leading '#') pass through without breaking one. Everything else
// resets run tracking and is emitted unchanged.
func Fix(lines []string) Result {
	out := append([]string(nil), lines...)
	changed := 0

	var current *run
	flush := func() {
		if current != nil {
			changed += renumber(out, current)
			current = nil
		}
	}

	inCode := false
	for i, line := range lines {
		kind := lineclass.Classify(line)

		if inCode {
			if kind == lineclass.Blank || lineclass.ContinuesCode(line) {
				flush()
				continue
			}
			inCode = false
		}
		if kind == lineclass.Code {
			flush()
			inCode = true
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(line, " "), "#") {
			// Comments annotate a list without splitting it.
			continue
		}
		if kind == lineclass.Blank {
			flush()
			continue
		}
		if !repairable(kind) {
			flush()
			continue
		}

		prefix, _, ok := parseMarker(line, kind)
		if !ok {
			flush()
			continue
		}
		indent := lineclass.Indent(line)

		if current != nil && (current.kind != kind || current.indent != indent || depth(current.marker) != depth(prefix)) {
			flush()
		}
		if current == nil {
			current = &run{marker: prefix, indent: indent, kind: kind}
		} else if prefix != current.marker {
			current.mixed = true
		}
		current.indexes = append(current.indexes, i)
	}
	flush()

	return Result{Lines: out, LinesChanged: changed}
}

// renumber rewrites one run in place and returns the count of lines
// whose rendered marker actually changed. Runs of a single line, runs
// whose markers were not a repeated literal, and runs longer than their
// marker alphabet are left untouched.
func renumber(lines []string, r *run) int {
	if r.mixed || len(r.indexes) < 2 {
		return 0
	}

	head := ""
	if i := strings.LastIndex(r.marker, "."); i >= 0 {
		head = r.marker[:i+1]
	}
	if _, ok := renderMarker(r.kind, head, len(r.indexes)-1); !ok {
		return 0
	}

	changed := 0
	for seq, idx := range r.indexes {
		line := lines[idx]
		prefix, rest, ok := parseMarker(line, r.kind)
		if !ok {
			continue
		}
		next, _ := renderMarker(r.kind, head, seq)
		if next == prefix {
			continue
		}
		indent := line[:lineclass.Indent(line)]
		sep := separatorAfterPrefix(line, prefix)
		lines[idx] = indent + next + "." + sep + rest
		changed++
	}
	return changed
}

var (
	letterMarkerRe = regexp.MustCompile(`^([a-z]+)\.\s+(\S.*)$`)
	romanMarkers   = []string{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x"}
)

// repairable reports whether kind carries a marker Fix can count.
func repairable(k lineclass.Kind) bool {
	switch k {
	case lineclass.ListNumbered, lineclass.NumberedSection,
		lineclass.ListLettered, lineclass.ListRoman:
		return true
	}
	return false
}

// parseMarker splits a line of the given kind into its marker literal
// and the item text.
func parseMarker(line string, kind lineclass.Kind) (marker, rest string, ok bool) {
	if kind == lineclass.ListLettered || kind == lineclass.ListRoman {
		m := letterMarkerRe.FindStringSubmatch(strings.TrimLeft(line, " "))
		if m == nil {
			return "", "", false
		}
		return m[1], m[2], true
	}
	return lineclass.ParseNumberedPrefix(line)
}

// renderMarker produces the marker for position seq of a run. ok is
// false when the run has outgrown the marker alphabet ("z" for lettered
// items, "x" for roman).
func renderMarker(kind lineclass.Kind, head string, seq int) (string, bool) {
	switch kind {
	case lineclass.ListLettered:
		if seq >= 26 {
			return "", false
		}
		return string(rune('a' + seq)), true
	case lineclass.ListRoman:
		if seq >= len(romanMarkers) {
			return "", false
		}
		return romanMarkers[seq], true
	default:
		return head + strconv.Itoa(seq+1), true
	}
}

// depth counts the dot-separated components of a marker.
func depth(marker string) int {
	return strings.Count(marker, ".") + 1
}

// separatorAfterPrefix recovers the original whitespace between the
// marker's dot and the item text so renumbering never reflows a line.
func separatorAfterPrefix(line, prefix string) string {
	trimmed := strings.TrimLeft(line, " ")
	after := trimmed[len(prefix)+1:]
	return after[:len(after)-len(strings.TrimLeft(after, " \t"))]
}
