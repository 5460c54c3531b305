package bemgen

import (
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputFile is the generated file name when GenerateConfig.OutputFile is empty.
const DefaultOutputFile = "classes.gen.go"

// allClassesVar names the generated lookup map. No constant may take it.
const allClassesVar = "AllClasses"

// Generate is the main entry point
func Generate(config GenerateConfig) (*GenerateResult, error) {
	logger := loggerOrDiscard(config.Logger)
	cfg := separatorsOrDefault(config.Separators)
	result := &GenerateResult{}

	// 1. Load manifests
	manifests, err := LoadManifests(config.Manifests, logger)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	result.ManifestsScanned = len(manifests)

	// 2. Render every block and call
	classes, warnings, err := RenderAll(manifests, cfg)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	result.Warnings = warnings
	result.ConstantsGenerated = len(classes)

	sep := cfg.Separators()
	logger.Debug("rendered classes",
		slog.Int("constants", len(classes)),
		slog.String("element_separator", sep.Element),
		slog.String("modifier_separator", sep.Modifier))

	// 3. Write Go file
	path, err := WriteGoFile(classes, config)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.OutputPath = path

	return result, nil
}

// WriteGoFile writes one constant per rendered class and an AllClasses map
// to OutputDir/OutputFile and returns the written path.
func WriteGoFile(classes []RenderedClass, config GenerateConfig) (string, error) {
	src, err := GenerateSource(classes, config.PackageName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := config.OutputFile
	if name == "" {
		name = DefaultOutputFile
	}
	path := filepath.Join(config.OutputDir, name)

	// #nosec G306 - generated source is meant to be committed
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// GenerateSource returns gofmt-ed Go source for classes.
func GenerateSource(classes []RenderedClass, packageName string) ([]byte, error) {
	if packageName == "" {
		packageName = "ui"
	}

	var b strings.Builder
	b.WriteString("// Code generated by bemto. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)

	if len(classes) > 0 {
		b.WriteString("const (\n")
		for _, c := range classes {
			fmt.Fprintf(&b, "\t// %s %s.\n", c.GoName, describe(c))
			fmt.Fprintf(&b, "\t%s = %q\n", c.GoName, c.Value)
		}
		b.WriteString(")\n\n")
	}

	fmt.Fprintf(&b, "// %s maps every generated constant name to its class string.\n", allClassesVar)
	fmt.Fprintf(&b, "var %s = map[string]string{\n", allClassesVar)
	for _, c := range classes {
		fmt.Fprintf(&b, "\t%q: %s,\n", c.GoName, c.GoName)
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// describe renders the doc comment body of a constant.
func describe(c RenderedClass) string {
	where := fmt.Sprintf("%s:%d", filepath.ToSlash(c.Pos.File), c.Pos.Line)
	if c.Call == "" {
		return fmt.Sprintf("is block %q (%s)", c.Block, where)
	}
	return fmt.Sprintf("is %q on block %q (%s)", c.Call, c.Block, where)
}
