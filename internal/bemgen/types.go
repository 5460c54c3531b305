package bemgen

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/yacobolo/bemto"
)

// Position locates a node in a manifest or stylesheet. Line and Column are
// 1-based; Column counts runes.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Manifest is a decoded manifest file.
type Manifest struct {
	Path   string
	Blocks []BlockDecl
	Lines  []string // Raw file lines for issue context
}

// BlockDecl declares one block and the calls rendered from it.
type BlockDecl struct {
	Shorthand any    // Decoded "block" value; must be a string to render
	Name      string // Optional Go identifier stem ("Tile")
	Calls     []CallDecl
	Pos       Position
}

// CallDecl is one call argument of a block.
type CallDecl struct {
	Arg   bemto.Arg // nil renders the block itself
	Label string    // Human-readable argument: "--active", "{&element: title, --dark: false}"
	Pos   Position
}

// RenderedClass is one rendered class string.
type RenderedClass struct {
	GoName     string   // "TileActive"
	Value      string   // "tile tile--big tile--active xs-4"
	Block      string   // Block shorthand: "tile--big.xs-4"
	Call       string   // Call label, empty for the block itself
	Pos        Position // Where the block or call is declared
	SourceLine string   // Manifest line at Pos
}

// GenerateConfig holds generator configuration
type GenerateConfig struct {
	Manifests   []string      // Glob patterns: ["ui/**/*.bemto.yaml"]
	OutputDir   string        // "internal/web/ui"
	OutputFile  string        // "classes.gen.go"
	PackageName string        // "ui"
	Separators  *bemto.Config // nil uses bemto.DefaultConfig()
	Logger      *slog.Logger  // nil discards
}

// GenerateResult contains generation stats
type GenerateResult struct {
	ManifestsScanned   int
	ConstantsGenerated int
	OutputPath         string
	Warnings           []string
}

// CheckConfig holds checker configuration
type CheckConfig struct {
	Manifests    []string      // Glob patterns for manifests
	Stylesheets  []string      // Glob patterns for CSS files
	Separators   *bemto.Config // nil uses bemto.DefaultConfig()
	ReportUnused bool          // Warn about stylesheet classes of declared blocks that are never rendered
	MaxIssues    int           // 0 = unlimited
	MaxSame      int           // 0 = unlimited
	Logger       *slog.Logger  // nil discards
}

// CheckResult contains checker analysis results
type CheckResult struct {
	Issues             []Issue
	ManifestsScanned   int
	StylesheetsScanned int
	ClassesRendered    int // Unique class tokens produced by all manifests
	ClassesDefined     int // Unique classes found in stylesheets
	ErrorCount         int
	WarningCount       int
	TruncatedCount     int // Issues removed due to limits
	Warnings           []string
}

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format
	OutputJSON OutputFormat = "json"
)

func separatorsOrDefault(cfg *bemto.Config) *bemto.Config {
	if cfg == nil {
		return bemto.DefaultConfig()
	}
	return cfg
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
