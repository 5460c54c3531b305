package bemgen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/bemto"
)

// StyleClass is a class selector found in a stylesheet.
type StyleClass struct {
	Name       string   // "tile__title--small"
	Pos        Position // First occurrence
	SourceLine string
}

// BEMName is a class name split into its BEM parts.
type BEMName struct {
	Block    string
	Element  string
	Modifier string
}

// lexState tracks the position of the lexer in the input. Columns count
// runes, matching the positions yaml.v3 reports for manifests.
type lexState struct {
	line   int
	column int
}

func (s *lexState) advance(text []byte) {
	for _, c := range string(text) {
		if c == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
}

// ParseStylesheet returns every class used in a selector of content, in order
// of first occurrence. Compound selectors (.a.b), selector lists and classes
// inside :not(), :is() and :where() are all included.
func ParseStylesheet(content string, filename string) []StyleClass {
	lines := strings.Split(content, "\n")
	lexer := css.NewLexer(parse.NewInputString(content))
	state := lexState{line: 1, column: 1}

	seen := make(map[string]bool)
	var classes []StyleClass

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if tt != css.DelimToken || len(text) == 0 || text[0] != '.' {
			state.advance(text)
			continue
		}

		pos := Position{File: filename, Line: state.line, Column: state.column}
		state.advance(text)

		tt, text = lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		state.advance(text)

		if tt != css.IdentToken {
			continue
		}

		name := string(text)
		if seen[name] {
			continue
		}
		seen[name] = true

		sourceLine := ""
		if pos.Line <= len(lines) {
			sourceLine = lines[pos.Line-1]
		}
		classes = append(classes, StyleClass{Name: name, Pos: pos, SourceLine: sourceLine})
	}

	return classes
}

// parseStylesheetFile reads and parses a single stylesheet.
func parseStylesheetFile(path string) ([]StyleClass, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseStylesheet(string(content), path), nil
}

// LoadStylesheets expands patterns and parses every matched stylesheet.
// Unreadable files are reported as warnings.
func LoadStylesheets(patterns []string, logger *slog.Logger) ([]StyleClass, ScanStats, []string, error) {
	logger = loggerOrDiscard(logger)

	files, stats, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, stats, nil, err
	}

	var all []StyleClass
	var warnings []string
	for _, file := range files {
		logger.Debug("parsing stylesheet", slog.String("path", file))

		classes, err := parseStylesheetFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		all = append(all, classes...)
	}

	return all, stats, warnings, nil
}

// SplitClass decomposes a class name with the given separators. The longer
// separator is cut first so that "_" and "__" (or "-" and "--") can coexist.
func SplitClass(name string, sep bemto.Separators) BEMName {
	var n BEMName

	if len(sep.Element) >= len(sep.Modifier) {
		block, rest, hasElement := strings.Cut(name, sep.Element)
		if hasElement {
			n.Block = block
			n.Element, n.Modifier, _ = strings.Cut(rest, sep.Modifier)
		} else {
			n.Block, n.Modifier, _ = strings.Cut(name, sep.Modifier)
		}
		return n
	}

	base, mod, _ := strings.Cut(name, sep.Modifier)
	n.Modifier = mod
	n.Block, n.Element, _ = strings.Cut(base, sep.Element)
	return n
}
