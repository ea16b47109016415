// Package refcheck validates `see:` cross-document references against
// the filesystem and the target documents' section headers.
//
// Resolution touches the filesystem, so checks for independent
// references run concurrently under a semaphore, but the diagnostic list
// always comes back in original textual order. Missing files and missing
// anchors are diagnostics, never errors.
package refcheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/txxt/internal/engine/lineclass"
	"git.home.luguber.info/inful/txxt/internal/engine/section"
	"git.home.luguber.info/inful/txxt/internal/textdoc"
)

var referenceRe = regexp.MustCompile(`see:\s+([^#\s]+)(?:#([\w-]+))?`)

const defaultMaxConcurrent = 8

// Reference is one `see:` occurrence, in physical order.
type Reference struct {
	TargetPath string
	Anchor     string
	Line       int // 0-based line of the `see:` keyword
	StartCol   int
	EndCol     int
}

// Severity of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies the diagnostic class.
type Code string

const (
	CodeTargetMissing Code = "reference-target-missing"
	CodeAnchorMissing Code = "anchor-missing"
)

// Diagnostic is one finding attached to a reference.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Message   string
	Reference Reference
}

// Result is the outcome of one check pass.
type Result struct {
	Diagnostics     []Diagnostic
	ReferencesFound int
}

// FileSystem is the host-supplied view of the filesystem. Only the
// reference checker performs I/O; the rest of the engine is pure.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) (string, error)
}

// OSFileSystem backs FileSystem with the process filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Checker resolves references with bounded concurrency.
type Checker struct {
	fs  FileSystem
	sem chan struct{}
}

// NewChecker creates a checker over fs. maxConcurrent bounds parallel
// filesystem lookups; values below 1 fall back to the default.
func NewChecker(fs FileSystem, maxConcurrent int) *Checker {
	if fs == nil {
		fs = OSFileSystem{}
	}
	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Checker{fs: fs, sem: make(chan struct{}, maxConcurrent)}
}

// FindReferences returns every `see:` occurrence in text, in order.
func FindReferences(text string) []Reference {
	var refs []Reference
	for _, m := range referenceRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		line := strings.Count(text[:start], "\n")
		lineStart := strings.LastIndexByte(text[:start], '\n') + 1

		ref := Reference{
			TargetPath: text[m[2]:m[3]],
			Line:       line,
			StartCol:   start - lineStart,
			EndCol:     end - lineStart,
		}
		if m[4] >= 0 {
			ref.Anchor = text[m[4]:m[5]]
		}
		refs = append(refs, ref)
	}
	return refs
}

// Check resolves every reference in text against baseDir. Diagnostics
// preserve original reference order regardless of resolution order.
func (c *Checker) Check(ctx context.Context, text, baseDir string) (Result, error) {
	refs := FindReferences(text)
	result := Result{ReferencesFound: len(refs)}
	if len(refs) == 0 {
		return result, nil
	}

	perRef := make([][]Diagnostic, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		select {
		case c.sem <- struct{}{}:
		case <-ctx.Done():
			return result, ctx.Err()
		}
		wg.Add(1)
		go func(i int, ref Reference) {
			defer wg.Done()
			defer func() { <-c.sem }()
			perRef[i] = c.resolve(ref, baseDir)
		}(i, ref)
	}
	wg.Wait()

	for _, diags := range perRef {
		result.Diagnostics = append(result.Diagnostics, diags...)
	}
	return result, ctx.Err()
}

// resolve produces the diagnostics for a single reference.
func (c *Checker) resolve(ref Reference, baseDir string) []Diagnostic {
	path := ref.TargetPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	if !c.fs.Exists(path) {
		return []Diagnostic{{
			Severity:  SeverityError,
			Code:      CodeTargetMissing,
			Message:   fmt.Sprintf("referenced document not found: %s", ref.TargetPath),
			Reference: ref,
		}}
	}
	if ref.Anchor == "" {
		return nil
	}

	target, err := c.fs.ReadFile(path)
	if err != nil {
		return []Diagnostic{{
			Severity:  SeverityError,
			Code:      CodeTargetMissing,
			Message:   fmt.Sprintf("cannot read referenced document %s: %v", ref.TargetPath, err),
			Reference: ref,
		}}
	}

	if !anchorMatches(target, ref.Anchor) {
		return []Diagnostic{{
			Severity:  SeverityError,
			Code:      CodeAnchorMissing,
			Message:   fmt.Sprintf("anchor %q not found in %s", ref.Anchor, ref.TargetPath),
			Reference: ref,
		}}
	}
	return nil
}

var titleCaser = cases.Title(language.English)

// anchorMatches tries the four anchor heuristics in order, first match
// wins: an exact numbered-section prefix for all-numeric anchors, an
// exact uppercase-section line, an exact alternative-section line, then
// a case-insensitive substring against any section header.
func anchorMatches(target, anchor string) bool {
	lines, _ := textdoc.Split(target)
	segments := strings.Split(anchor, "-")
	words := strings.Join(segments, " ")

	if allNumeric(segments) {
		prefixRe := regexp.MustCompile(`^` + strings.Join(segments, `\.`) + `\.\s+\S`)
		for _, line := range lines {
			if prefixRe.MatchString(line) {
				return true
			}
		}
	}

	upper := strings.ToUpper(words)
	for _, line := range lines {
		if strings.TrimSpace(line) == upper && lineclass.Classify(line) == lineclass.UppercaseSection {
			return true
		}
	}

	alternative := ": " + titleCaser.String(words)
	for _, line := range lines {
		if strings.TrimSpace(line) == alternative {
			return true
		}
	}

	needle := strings.ToLower(words)
	for _, s := range section.Index(lines) {
		title := strings.ToLower(s.Title)
		if strings.Contains(title, needle) || strings.Contains(title, strings.ToLower(anchor)) {
			return true
		}
	}
	return false
}

func allNumeric(segments []string) bool {
	for _, seg := range segments {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
