// Package lineclass classifies a single physical line into one structural
// kind of the txxt plain-text convention.
//
// Several constructs overlap textually (a roman "i." is also a valid
// lettered item, an unindented "1. Title" is both a section and a list
// item). Classification therefore follows one fixed precedence order,
// which is the single source of truth for every consumer:
//
//	Blank > Section (numbered, uppercase, alternative) > Metadata >
//	List (roman, lettered, numbered, bullet) > Code > Quote > Text
//
// Roman is checked before lettered so "i." through "x." never classify
// as single-letter items. Sections win over metadata, so a short
// ALL-CAPS line with interior runs of spaces is a section header.
package lineclass

import (
	"regexp"
	"strings"
)

// Kind identifies the structural role of one line.
type Kind int

const (
	Blank Kind = iota
	NumberedSection
	UppercaseSection
	AlternativeSection
	Metadata
	ListRoman
	ListLettered
	ListNumbered
	ListBullet
	Code
	QuoteNested
	Quote
	Text
)

var kindNames = map[Kind]string{
	Blank:              "blank",
	NumberedSection:    "numbered-section",
	UppercaseSection:   "uppercase-section",
	AlternativeSection: "alternative-section",
	Metadata:           "metadata",
	ListRoman:          "roman-list",
	ListLettered:       "lettered-list",
	ListNumbered:       "numbered-list",
	ListBullet:         "bullet-list",
	Code:               "code",
	QuoteNested:        "nested-quote",
	Quote:              "quote",
	Text:               "text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsSection reports whether k is one of the three section dialects.
func (k Kind) IsSection() bool {
	return k == NumberedSection || k == UppercaseSection || k == AlternativeSection
}

// IsList reports whether k is one of the four list item variants.
func (k Kind) IsList() bool {
	return k == ListRoman || k == ListLettered || k == ListNumbered || k == ListBullet
}

var (
	numberedSectionRe    = regexp.MustCompile(`^\d+(\.\d+)*\.\s+\S.*$`)
	uppercaseSectionRe   = regexp.MustCompile(`^[A-Z][A-Z\s-]+$`)
	alternativeSectionRe = regexp.MustCompile(`^:\s+\S.*$`)
	metadataRe           = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]+\s{2,}[A-Za-z0-9].*$`)
	romanListRe          = regexp.MustCompile(`^\s*(i|ii|iii|iv|v|vi|vii|viii|ix|x)\.\s+\S.*$`)
	letteredListRe       = regexp.MustCompile(`^\s*[a-z]\.\s+\S.*$`)
	numberedListRe       = regexp.MustCompile(`^\s*\d+\.\s+\S.*$`)
	bulletListRe         = regexp.MustCompile(`^\s*-\s+\S.*$`)
	quoteRe              = regexp.MustCompile(`^>\s+`)
	nestedQuoteRe        = regexp.MustCompile(`^>>\s+`)

	numberedPrefixRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.\s+(\S.*)$`)
	metadataSplitRe  = regexp.MustCompile(`^([A-Za-z][A-Za-z\s]*?)\s{2,}([A-Za-z0-9].*)$`)
)

// Classify maps one line to its Kind under the package precedence order.
func Classify(line string) Kind {
	if strings.TrimSpace(line) == "" {
		return Blank
	}
	switch {
	case numberedSectionRe.MatchString(line):
		return NumberedSection
	case uppercaseSectionRe.MatchString(line):
		return UppercaseSection
	case alternativeSectionRe.MatchString(line):
		return AlternativeSection
	case metadataRe.MatchString(line):
		return Metadata
	case romanListRe.MatchString(line):
		return ListRoman
	case letteredListRe.MatchString(line):
		return ListLettered
	case numberedListRe.MatchString(line):
		return ListNumbered
	case bulletListRe.MatchString(line):
		return ListBullet
	case isCodeStart(line):
		return Code
	case nestedQuoteRe.MatchString(line):
		return QuoteNested
	case quoteRe.MatchString(line):
		return Quote
	default:
		return Text
	}
}

// isCodeStart requires an indent of exactly 4 spaces. Deeper indents only
// continue an open code block; see ContinuesCode.
func isCodeStart(line string) bool {
	return strings.HasPrefix(line, "    ") && !strings.HasPrefix(line, "     ")
}

// ContinuesCode reports whether line belongs to an already-open code
// block: anything indented 4 or more spaces.
func ContinuesCode(line string) bool {
	return strings.HasPrefix(line, "    ")
}

// Indent returns the number of leading space characters.
func Indent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// ParseNumberedPrefix splits a numbered line (section header or list
// item, after removing indentation) into its dotted numeric prefix and
// the remaining title text. ok is false when the line carries no such
// prefix.
func ParseNumberedPrefix(line string) (prefix, rest string, ok bool) {
	m := numberedPrefixRe.FindStringSubmatch(strings.TrimLeft(line, " "))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ParseMetadata splits a metadata line into key and value. The key may
// contain single interior spaces; the separator is the first run of two
// or more spaces.
func ParseMetadata(line string) (key, value string, ok bool) {
	if Classify(line) != Metadata {
		return "", "", false
	}
	m := metadataSplitRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimRight(m[1], " \t"), m[2], true
}
