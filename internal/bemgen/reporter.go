package bemgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReportOptions controls issue formatting
type ReportOptions struct {
	UseColors       bool // Force color output (default: auto-detect)
	PrintLines      bool // Show source lines with issues
	PrintLinterName bool // Show (bemcheck) suffix
}

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled. An explicit flag
// wins, then FORCE_COLOR / GITHUB_ACTIONS, then TTY detection on stdout.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintIssues outputs issues in golangci-lint format, sorted by position
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.File != issues[j].Pos.File {
			return issues[i].Pos.File < issues[j].Pos.File
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: file:line:col: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.String() + ":"

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	style := StyleRed
	if issue.Severity == SeverityWarning {
		style = StyleYellow
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(style, issue.Text, r.useColors),
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the rune column.
// Tabs in the prefix are kept so the caret lines up with the source line.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	runes := []rune(sourceLine)
	prefixLen := column - 1
	if prefixLen > len(runes) {
		prefixLen = len(runes)
	}

	var padding strings.Builder
	for _, ch := range runes[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result CheckResult) {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	summary := pluralizeCount(len(result.Issues), "issue", "issues")
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errors, "error", "errors")+", "+
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	fmt.Fprintln(r.w, "")
	if len(details) > 0 {
		fmt.Fprintf(r.w, "%s (%s):\n", summary, strings.Join(details, "; "))
	} else {
		fmt.Fprintf(r.w, "%s:\n", summary)
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", LinterName, len(result.Issues))
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// PrintStatistics outputs check statistics
func (r *Reporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "BEM Check Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	fmt.Fprintf(r.w, "Manifests Scanned:   %d\n", result.ManifestsScanned)
	fmt.Fprintf(r.w, "Stylesheets Scanned: %d\n", result.StylesheetsScanned)
	fmt.Fprintf(r.w, "Classes Rendered:    %d\n", result.ClassesRendered)
	fmt.Fprintf(r.w, "Classes Defined:     %d\n", result.ClassesDefined)
	fmt.Fprintf(r.w, "Undefined Classes:   %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Unrendered Classes:  %d\n", result.WarningCount)

	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
