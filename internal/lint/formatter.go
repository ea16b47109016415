package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter renders lint results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, path string) error
}

// NewFormatter selects a formatter by name; unknown names fall back to
// text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter renders results as human-readable text.
type TextFormatter struct{}

// Format outputs results grouped per file with a trailing summary.
func (f *TextFormatter) Format(w io.Writer, result *Result, path string) error {
	if _, err := fmt.Fprintf(w, "Checking txxt documents in: %s\n", path); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}

	for _, issue := range result.Issues {
		location := issue.FilePath
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
		}
		if _, err := fmt.Fprintf(w, "%-7s %s  %s (%s)\n", issue.Severity, location, issue.Message, issue.Rule); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d files scanned, %d references, %d errors, %d warnings\n",
		result.FilesTotal, result.ReferencesFound, result.ErrorCount(), result.WarningCount())
	return err
}

// JSONFormatter renders results as a single JSON document.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, result *Result, path string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Path string `json:"path"`
		*Result
	}{Path: path, Result: result})
}
