// Package lint is the host-side wrapper around the engine: it walks
// files and directories, gates on file type, and turns engine results
// into presentable issues. Presentation stays out of the engine.
package lint

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/txxt/internal/engine"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
	"git.home.luguber.info/inful/txxt/internal/util/sets"
)

// Config controls a lint run.
type Config struct {
	Quiet         bool     // suppress warnings, keep errors
	Format        string   // "text" or "json"
	Extensions    []string // file suffixes treated as txxt documents
	MaxConcurrent int      // reference-check parallelism per document
}

// Linter performs lint operations on txxt files.
type Linter struct {
	cfg  *Config
	exts sets.Set[string]
}

// NewLinter creates a linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".txxt"}
	}
	return &Linter{cfg: cfg, exts: sets.New(exts...)}
}

// IsDocFile reports whether path has a txxt document extension.
func (l *Linter) IsDocFile(path string) bool {
	return l.exts.Has(strings.ToLower(filepath.Ext(path)))
}

// LintPath lints a file or, recursively, a directory. Linting a single
// file of the wrong type is an UnsupportedDocument error; wrong-type
// files inside a directory are silently skipped.
func (l *Linter) LintPath(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, txxterrors.ReadError(path, err)
	}

	result := &Result{Issues: []Issue{}}
	if info.IsDir() {
		err = l.lintDirectory(ctx, path, result)
	} else {
		if !l.IsDocFile(path) {
			return nil, txxterrors.UnsupportedDocument(path)
		}
		result.FilesTotal = 1
		err = l.lintFile(ctx, path, result)
	}
	return result, err
}

// lintDirectory recursively lints all txxt files in a directory,
// skipping hidden entries.
func (l *Linter) lintDirectory(ctx context.Context, dirPath string, result *Result) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && d.Name() != "." {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !l.IsDocFile(path) {
			return nil
		}
		result.FilesTotal++
		return l.lintFile(ctx, path, result)
	})
}

// lintFile runs the formatting and reference rules on one file.
func (l *Linter) lintFile(ctx context.Context, path string, result *Result) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return txxterrors.ReadError(path, err)
	}
	text := string(data)

	if engine.FormatDocument(text) != text {
		result.add(Issue{
			FilePath: path,
			Severity: SeverityWarning,
			Rule:     "not-formatted",
			Message:  "document is not in canonical format (run `txxt fmt --write`)",
		}, l.cfg.Quiet)
	}

	check, err := engine.CheckReferences(ctx, text, filepath.Dir(path), nil, l.cfg.MaxConcurrent)
	if err != nil {
		return txxterrors.InternalError("reference check failed", err).WithContext("path", path)
	}
	result.ReferencesFound += check.ReferencesFound
	for _, diag := range check.Diagnostics {
		result.add(Issue{
			FilePath: path,
			Line:     diag.Reference.Line + 1,
			Severity: Severity(diag.Severity),
			Rule:     string(diag.Code),
			Message:  diag.Message,
		}, l.cfg.Quiet)
	}
	return nil
}
