// Package format is the whole-document reformatter.
//
// Formatting is a single forward pass that tracks the current block kind
// so continuation lines (code bodies, quoted text) are never reshaped as
// if they started a new construct. The pass is idempotent: formatting an
// already-formatted document returns it unchanged.
package format

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/txxt/internal/engine/lineclass"
	"git.home.luguber.info/inful/txxt/internal/engine/toc"
)

// MetadataKeyWidth is the fixed column the metadata value starts at.
// Keys longer than the column keep a two-space separator so the line
// still classifies as metadata.
const MetadataKeyWidth = 14

var titleUnderlineRe = regexp.MustCompile(`^-{2,}$`)

// Document reformats text line by line:
//
//   - trailing whitespace is trimmed everywhere;
//   - leading metadata lines are realigned to MetadataKeyWidth;
//   - section headers get exactly one blank line before (except at
//     document start) and after, collapsing any extras;
//   - list, code and quote lines pass through verbatim.
func Document(lines []string) []string {
	metaStart, metaEnd := metadataRegion(lines)
	out := make([]string, 0, len(lines))

	// An existing TOC block is layout, not content: its header and
	// entries classify as section lines but must never attract the
	// blank-line rules.
	tocBlock, hasTOC := toc.Locate(lines)

	inCode := false
	pendingSectionBlank := false

	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")

		if hasTOC && i >= tocBlock.Start && i < tocBlock.End {
			if pendingSectionBlank {
				out = append(out, "")
				pendingSectionBlank = false
			}
			out = append(out, line)
			continue
		}

		kind := lineclass.Classify(line)

		if inCode {
			if kind == lineclass.Blank || lineclass.ContinuesCode(line) {
				out = append(out, line)
				continue
			}
			inCode = false
		}

		if pendingSectionBlank {
			if kind == lineclass.Blank {
				continue
			}
			out = append(out, "")
			pendingSectionBlank = false
		}

		switch {
		case kind == lineclass.Code:
			inCode = true
			out = append(out, line)

		case i >= metaStart && i < metaEnd && kind == lineclass.Metadata:
			out = append(out, alignMetadata(line))

		case kind.IsSection():
			for len(out) > 0 && out[len(out)-1] == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, line)
			// A dash underline directly below means this is the document
			// title, not a section; keep the pair adjacent.
			if i+1 >= len(lines) || !titleUnderlineRe.MatchString(strings.TrimSpace(lines[i+1])) {
				pendingSectionBlank = true
			}

		default:
			out = append(out, line)
		}
	}

	if pendingSectionBlank {
		out = append(out, "")
	}
	return out
}

// alignMetadata left-pads the value so the key column has a fixed width.
func alignMetadata(line string) string {
	key, value, ok := lineclass.ParseMetadata(line)
	if !ok {
		return line
	}
	width := MetadataKeyWidth
	if len(key)+2 > width {
		width = len(key) + 2
	}
	return key + strings.Repeat(" ", width-len(key)) + value
}

// metadataRegion bounds the document's leading metadata block:
// consecutive metadata lines at the top, optionally after a title and
// its dash underline. Double-spaced prose later in the body must never
// be realigned, so the region is computed once up front instead of
// trusting the classifier on every line.
func metadataRegion(lines []string) (start, end int) {
	i := 0
	if i+1 < len(lines) &&
		lineclass.Classify(lines[i]) != lineclass.Blank &&
		titleUnderlineRe.MatchString(strings.TrimSpace(lines[i+1])) {
		i += 2
	}
	for i < len(lines) && lineclass.Classify(lines[i]) == lineclass.Blank {
		i++
	}
	start = i
	for i < len(lines) && lineclass.Classify(lines[i]) == lineclass.Metadata {
		i++
	}
	return start, i
}
