package bemgen

// Issue represents a single check violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bemcheck"
	Text        string   `json:"Text"`        // "class \"tile--huge\" is not defined in any stylesheet"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the manifest or stylesheet
	Pos         Position `json:"Pos"`
}

// LinterName is reported as the origin of every issue.
const LinterName = "bemcheck"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueUndefinedClass  = "class %q rendered by %s is not defined in any stylesheet"
	IssueUnrenderedClass = "stylesheet class %q of block %q is never rendered"
)
