// Package footnote renumbers bracket-labeled footnotes so declarations
// and inline references share one consistent 1..N sequence.
package footnote

import (
	"regexp"
	"strconv"
)

var (
	declarationRe = regexp.MustCompile(`^\[(\d+)\]\s+(.+)$`)
	labelRe       = regexp.MustCompile(`\[(\d+)\]`)
)

// Declaration is one footnote body line, in physical document order.
type Declaration struct {
	OriginalLabel string
	Body          string
	LineIndex     int
}

// FindDeclarations returns every declaration line in appearance order.
// A marker without its closing bracket simply does not match; malformed
// input is never an error.
func FindDeclarations(lines []string) []Declaration {
	var decls []Declaration
	for i, line := range lines {
		m := declarationRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		decls = append(decls, Declaration{
			OriginalLabel: m[1],
			Body:          m[2],
			LineIndex:     i,
		})
	}
	return decls
}

// BuildRenumberMap assigns new labels "1".."N" by the order declarations
// physically appear, not by their numeric value: declarations found as
// 3, 1, 2 remap to 3→1, 1→2, 2→3. A label declared twice keeps the
// number of its first declaration.
func BuildRenumberMap(decls []Declaration) map[string]string {
	remap := make(map[string]string, len(decls))
	next := 1
	for _, d := range decls {
		if _, seen := remap[d.OriginalLabel]; seen {
			continue
		}
		remap[d.OriginalLabel] = strconv.Itoa(next)
		next++
	}
	return remap
}

// Rewrite substitutes every [label] occurrence, declarations and inline
// references alike, in a single regex pass with a map lookup per match.
// A sequential per-key replace would re-match labels it just produced
// (rewriting 1→2 and then 2→3 turns an original 1 into 3); the single
// pass cannot. Labels absent from the map pass through untouched.
func Rewrite(text string, remap map[string]string) string {
	if len(remap) == 0 {
		return text
	}
	return labelRe.ReplaceAllStringFunc(text, func(match string) string {
		old := match[1 : len(match)-1]
		if renamed, ok := remap[old]; ok {
			return "[" + renamed + "]"
		}
		return match
	})
}
