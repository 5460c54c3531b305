package bemgen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yacobolo/bemto"
)

// Check renders every manifest and compares the produced classes with the
// classes defined in the stylesheets.
//
// A rendered class missing from every stylesheet is an error. With
// ReportUnused, a stylesheet class whose block is declared in a manifest but
// which no block or call renders is a warning.
func Check(config CheckConfig) (*CheckResult, error) {
	logger := loggerOrDiscard(config.Logger)
	cfg := separatorsOrDefault(config.Separators)

	// Step 1: Load and render manifests
	manifests, err := LoadManifests(config.Manifests, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}

	rendered, _, err := RenderAll(manifests, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render manifests: %w", err)
	}

	// Step 2: Collect stylesheet classes
	styles, stats, warnings, err := LoadStylesheets(config.Stylesheets, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stylesheets: %w", err)
	}

	defined := make(map[string]StyleClass, len(styles))
	for _, sc := range styles {
		if _, ok := defined[sc.Name]; !ok {
			defined[sc.Name] = sc
		}
	}

	// Step 3: Analyze
	result := analyzeClasses(rendered, defined, styles, config, cfg.Separators())
	result.ManifestsScanned = len(manifests)
	result.StylesheetsScanned = stats.FilesScanned
	result.ClassesDefined = len(defined)
	result.Warnings = append(result.Warnings, warnings...)

	logger.Debug("check complete",
		slog.Int("errors", result.ErrorCount),
		slog.Int("warnings", result.WarningCount))

	// Step 4: Apply issue limiting if configured
	if config.MaxIssues > 0 || config.MaxSame > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config.MaxIssues, config.MaxSame)
	}

	return result, nil
}

func analyzeClasses(rendered []RenderedClass, defined map[string]StyleClass, styles []StyleClass, config CheckConfig, sep bemto.Separators) *CheckResult {
	result := &CheckResult{}

	renderedTokens := make(map[string]bool)
	declaredBlocks := make(map[string]bool)
	reported := make(map[string]bool)

	for _, rc := range rendered {
		tokens := strings.Fields(rc.Value)
		if len(tokens) > 0 && rc.Call == "" {
			declaredBlocks[tokens[0]] = true
		}

		for _, token := range tokens {
			renderedTokens[token] = true
			if _, ok := defined[token]; ok {
				continue
			}

			key := rc.Pos.String() + "|" + token
			if reported[key] {
				continue
			}
			reported[key] = true

			origin := "block " + quote(rc.Block)
			if rc.Call != "" {
				origin = "call " + quote(rc.Call)
			}
			result.Issues = append(result.Issues, Issue{
				FromLinter:  LinterName,
				Text:        fmt.Sprintf(IssueUndefinedClass, token, origin),
				Severity:    SeverityError,
				SourceLines: sourceLines(rc.SourceLine),
				Pos:         rc.Pos,
			})
			result.ErrorCount++
		}
	}
	result.ClassesRendered = len(renderedTokens)

	if config.ReportUnused {
		for _, sc := range styles {
			if renderedTokens[sc.Name] {
				continue
			}
			if defined[sc.Name].Pos != sc.Pos {
				continue
			}
			block := SplitClass(sc.Name, sep).Block
			if !declaredBlocks[block] {
				continue
			}
			result.Issues = append(result.Issues, Issue{
				FromLinter:  LinterName,
				Text:        fmt.Sprintf(IssueUnrenderedClass, sc.Name, block),
				Severity:    SeverityWarning,
				SourceLines: sourceLines(sc.SourceLine),
				Pos:         sc.Pos,
			})
			result.WarningCount++
		}
	}

	return result
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

func sourceLines(line string) []string {
	if line == "" {
		return nil
	}
	return []string{line}
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, maxIssues, maxSame int) ([]Issue, int) {
	originalCount := len(issues)

	if maxIssues > 0 && len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}

	if maxSame > 0 {
		issues = deduplicateSameIssues(issues, maxSame)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
