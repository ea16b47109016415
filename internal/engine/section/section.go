// Package section builds an ordered index of the section headers in a
// document.
package section

import (
	"strings"

	"git.home.luguber.info/inful/txxt/internal/engine/lineclass"
)

// Kind names the section dialect a header was written in.
type Kind string

const (
	KindNumbered    Kind = "numbered"
	KindUppercase   Kind = "uppercase"
	KindAlternative Kind = "alternative"
)

// Section is one header found in a document.
//
// Level is the dot depth of the numbering prefix plus one for numbered
// sections ("2.1." has level 2) and always 1 for the other dialects.
type Section struct {
	Title           string
	NumberingPrefix string
	Level           int
	LineIndex       int
	Kind            Kind
}

// Index scans lines in a single forward pass and returns every section
// header in document order. One pass over the classifier keeps the
// precedence rules in one place and makes duplicate line indexes
// impossible by construction. Lines inside an open code block are
// skipped so indented sample documents do not contribute phantom
// headers.
func Index(lines []string) []Section {
	var sections []Section
	inCode := false

	for i, line := range lines {
		kind := lineclass.Classify(line)

		if inCode {
			if kind == lineclass.Blank || lineclass.ContinuesCode(line) {
				continue
			}
			inCode = false
		}
		if kind == lineclass.Code {
			inCode = true
			continue
		}

		switch kind {
		case lineclass.NumberedSection:
			prefix, title, ok := lineclass.ParseNumberedPrefix(line)
			if !ok {
				continue
			}
			sections = append(sections, Section{
				Title:           title,
				NumberingPrefix: prefix,
				Level:           strings.Count(prefix, ".") + 1,
				LineIndex:       i,
				Kind:            KindNumbered,
			})
		case lineclass.UppercaseSection:
			sections = append(sections, Section{
				Title:     strings.TrimSpace(line),
				Level:     1,
				LineIndex: i,
				Kind:      KindUppercase,
			})
		case lineclass.AlternativeSection:
			title := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ":"))
			sections = append(sections, Section{
				Title:     title,
				Level:     1,
				LineIndex: i,
				Kind:      KindAlternative,
			})
		}
	}
	return sections
}
