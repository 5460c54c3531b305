package bemgen

import (
	"encoding/json"
	"io"
	"time"
)

// DetermineOutputFormat selects the output format. Unknown formats fall
// back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputSummary:
		return OutputSummary
	case OutputFull:
		return OutputFull
	case OutputJSON:
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, opts ReportOptions) error {
	reporter := NewReporter(w, opts)

	switch format {
	case OutputSummary:
		reporter.PrintStatistics(*result)

	case OutputFull:
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		return WriteJSON(w, result)

	default:
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues        int `json:"total_issues"`
	Errors             int `json:"errors"`
	Warnings           int `json:"warnings"`
	Truncated          int `json:"truncated"`
	ManifestsScanned   int `json:"manifests_scanned"`
	StylesheetsScanned int `json:"stylesheets_scanned"`
	ClassesRendered    int `json:"classes_rendered"`
	ClassesDefined     int `json:"classes_defined"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *CheckResult) JSONOutput {
	var errors, warnings int
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}

		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.File,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	warningList := result.Warnings
	if warningList == nil {
		warningList = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:        len(result.Issues),
			Errors:             errors,
			Warnings:           warnings,
			Truncated:          result.TruncatedCount,
			ManifestsScanned:   result.ManifestsScanned,
			StylesheetsScanned: result.StylesheetsScanned,
			ClassesRendered:    result.ClassesRendered,
			ClassesDefined:     result.ClassesDefined,
		},
		Issues:   issues,
		Warnings: warningList,
	}
}
