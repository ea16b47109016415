package lint

// Severity of an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding in one file.
type Issue struct {
	FilePath string   `json:"file"`
	Line     int      `json:"line,omitempty"` // 1-based; 0 when file-level
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
}

// Result aggregates a lint run.
type Result struct {
	Issues          []Issue `json:"issues"`
	FilesTotal      int     `json:"files_total"`
	ReferencesFound int     `json:"references_found"`
}

// add appends issue unless quiet mode filters it out.
func (r *Result) add(issue Issue, quiet bool) {
	if quiet && issue.Severity == SeverityWarning {
		return
	}
	r.Issues = append(r.Issues, issue)
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity issues.
func (r *Result) WarningCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
