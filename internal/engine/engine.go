// Package engine exposes the document structure operations to hosts.
//
// Every operation takes the document as an immutable string snapshot and
// returns a new string (or diagnostics); nothing is mutated in place and
// no state survives a call. Hosts own the live document and are
// responsible for serializing edits against it.
package engine

import (
	"context"

	"git.home.luguber.info/inful/txxt/internal/engine/footnote"
	"git.home.luguber.info/inful/txxt/internal/engine/format"
	"git.home.luguber.info/inful/txxt/internal/engine/numbering"
	"git.home.luguber.info/inful/txxt/internal/engine/refcheck"
	"git.home.luguber.info/inful/txxt/internal/engine/section"
	"git.home.luguber.info/inful/txxt/internal/engine/toc"
	"git.home.luguber.info/inful/txxt/internal/textdoc"
)

// Status reports how an operation concluded.
type Status string

const (
	// StatusOK means the operation applied normally.
	StatusOK Status = "ok"
	// StatusNoStructure means the document had nothing the operation
	// works on (e.g. a TOC was requested with zero sections). The input
	// is returned unchanged; this is a no-op, not an error.
	StatusNoStructure Status = "no-structure"
)

// FormatDocument reformats text. Idempotent.
func FormatDocument(text string) string {
	lines, style := textdoc.Split(text)
	return textdoc.Join(format.Document(lines), style)
}

// GenerateTOC inserts or replaces the table-of-contents block. With zero
// sections the input comes back unchanged with StatusNoStructure.
func GenerateTOC(text string) (string, Status) {
	lines, style := textdoc.Split(text)
	sections := section.Index(lines)

	// Lines of an existing TOC block classify as sections themselves;
	// drop them so the block never indexes its own entries.
	if block, ok := toc.Locate(lines); ok {
		filtered := sections[:0]
		for _, s := range sections {
			if s.LineIndex >= block.Start && s.LineIndex < block.End {
				continue
			}
			filtered = append(filtered, s)
		}
		sections = filtered
	}

	if len(sections) == 0 {
		return text, StatusNoStructure
	}
	return textdoc.Join(toc.Apply(lines, sections), style), StatusOK
}

// NumberFootnotes renumbers footnote declarations and references into
// one consistent 1..N sequence. Zero declarations is a no-op.
func NumberFootnotes(text string) (string, Status) {
	lines, _ := textdoc.Split(text)
	decls := footnote.FindDeclarations(lines)
	if len(decls) == 0 {
		return text, StatusNoStructure
	}
	return footnote.Rewrite(text, footnote.BuildRenumberMap(decls)), StatusOK
}

// NumberingResult is the outcome of FixNumbering.
type NumberingResult struct {
	Text         string
	LinesChanged int
}

// FixNumbering repairs literal repeated numbering runs.
func FixNumbering(text string) NumberingResult {
	lines, style := textdoc.Split(text)
	fixed := numbering.Fix(lines)
	return NumberingResult{
		Text:         textdoc.Join(fixed.Lines, style),
		LinesChanged: fixed.LinesChanged,
	}
}

// FullFormat runs the composed pipeline: reformat, then TOC, then
// footnotes. TOC placement depends on post-format section positions;
// footnote renumbering is layout-independent and goes last.
func FullFormat(text string) string {
	out := FormatDocument(text)
	out, _ = GenerateTOC(out)
	out, _ = NumberFootnotes(out)
	return out
}

// CheckReferences validates every `see:` reference in text against
// baseDir using fs (nil selects the OS filesystem).
func CheckReferences(ctx context.Context, text, baseDir string, fs refcheck.FileSystem, maxConcurrent int) (refcheck.Result, error) {
	return refcheck.NewChecker(fs, maxConcurrent).Check(ctx, text, baseDir)
}
