package bemgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/bemto"
)

const checkManifest = `blocks:
  - block: tile--big
    calls:
      - "--active"
      - title--huge
`

func writeCheckFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ui.bemto.yaml"), []byte(checkManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tile.css"), []byte(sampleCSS), 0o644))
	return dir
}

func TestCheck(t *testing.T) {
	dir := writeCheckFixtures(t)

	result, err := Check(CheckConfig{
		Manifests:   []string{filepath.Join(dir, "*.bemto.yaml")},
		Stylesheets: []string{filepath.Join(dir, "*.css")},
		Separators:  bemto.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ManifestsScanned)
	assert.Equal(t, 1, result.StylesheetsScanned)
	assert.Equal(t, 6, result.ClassesDefined)
	// tile, tile--big, tile--active, tile__title, tile__title--huge
	assert.Equal(t, 5, result.ClassesRendered)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 0, result.WarningCount)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, LinterName, issue.FromLinter)
	assert.Equal(t, `class "tile__title--huge" rendered by call "title--huge" is not defined in any stylesheet`, issue.Text)
	assert.Equal(t, 5, issue.Pos.Line)
	assert.Equal(t, 9, issue.Pos.Column)
	assert.Equal(t, []string{"      - title--huge"}, issue.SourceLines)
}

func TestCheckReportUnused(t *testing.T) {
	dir := writeCheckFixtures(t)

	result, err := Check(CheckConfig{
		Manifests:    []string{filepath.Join(dir, "*.bemto.yaml")},
		Stylesheets:  []string{filepath.Join(dir, "*.css")},
		ReportUnused: true,
	})
	require.NoError(t, err)

	var unused []string
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			unused = append(unused, issue.Text)
		}
	}
	assert.Equal(t, []string{
		`stylesheet class "tile__title--small" of block "tile" is never rendered`,
		`stylesheet class "tile--dark" of block "tile" is never rendered`,
	}, unused)
	assert.Equal(t, 2, result.WarningCount)
}

func TestCheckLimits(t *testing.T) {
	dir := writeCheckFixtures(t)

	result, err := Check(CheckConfig{
		Manifests:    []string{filepath.Join(dir, "*.bemto.yaml")},
		Stylesheets:  []string{filepath.Join(dir, "*.css")},
		ReportUnused: true,
		MaxIssues:    2,
	})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestCheckMissingManifests(t *testing.T) {
	_, err := Check(CheckConfig{
		Manifests:   []string{filepath.Join(t.TempDir(), "*.yaml")},
		Stylesheets: []string{"*.css"},
	})
	require.ErrorIs(t, err, ErrNoManifests)
}

func TestDeduplicateSameIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "a"},
	}

	got, truncated := limitIssues(issues, 0, 1)
	assert.Equal(t, []Issue{{Text: "a"}, {Text: "b"}}, got)
	assert.Equal(t, 2, truncated)
}
