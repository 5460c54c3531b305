package bemgen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/yacobolo/bemto"
	"gopkg.in/yaml.v3"
)

type rawManifest struct {
	Blocks []yaml.Node `yaml:"blocks"`
}

type rawBlock struct {
	Block yaml.Node   `yaml:"block"`
	Name  string      `yaml:"name"`
	Calls []yaml.Node `yaml:"calls"`
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data, path)
}

// ParseManifest decodes manifest content. Mapping order of flag calls and
// node positions are preserved.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, path, err)
	}

	m := &Manifest{
		Path:  path,
		Lines: strings.Split(string(data), "\n"),
	}

	for i := range raw.Blocks {
		node := resolveAlias(&raw.Blocks[i])
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s:%d: block entry must be a mapping", ErrInvalidManifest, path, node.Line)
		}

		var rb rawBlock
		if err := node.Decode(&rb); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %w", ErrInvalidManifest, path, node.Line, err)
		}

		decl := BlockDecl{
			Name: rb.Name,
			Pos:  Position{File: path, Line: node.Line, Column: node.Column},
		}
		if rb.Block.Kind != 0 {
			decl.Pos = Position{File: path, Line: rb.Block.Line, Column: rb.Block.Column}
			if err := rb.Block.Decode(&decl.Shorthand); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, decl.Pos, err)
			}
		}

		for j := range rb.Calls {
			call, err := decodeCall(&rb.Calls[j], path)
			if err != nil {
				return nil, err
			}
			decl.Calls = append(decl.Calls, call)
		}

		m.Blocks = append(m.Blocks, decl)
	}

	return m, nil
}

// decodeCall turns a call node into a bemto.Arg: strings become shorthands,
// null renders the block itself and mappings become ordered flag maps.
func decodeCall(n *yaml.Node, path string) (CallDecl, error) {
	n = resolveAlias(n)
	call := CallDecl{Pos: Position{File: path, Line: n.Line, Column: n.Column}}

	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			call.Arg = bemto.Shorthand(n.Value)
			call.Label = n.Value
			return call, nil
		case "!!null":
			return call, nil
		}
		return call, fmt.Errorf("%w: %s: %s is not a shorthand string", ErrInvalidCall, call.Pos, n.ShortTag())

	case yaml.MappingNode:
		flags := make(bemto.FlagMap, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], resolveAlias(n.Content[i+1])
			var value any
			if err := val.Decode(&value); err != nil {
				return call, fmt.Errorf("%w: %s: key %q: %w", ErrInvalidCall, call.Pos, key.Value, err)
			}
			flags = append(flags, bemto.Entry{Key: key.Value, Value: value})
		}
		call.Arg = flags
		call.Label = flagLabel(flags)
		return call, nil
	}

	return call, fmt.Errorf("%w: %s: expected a string or a mapping", ErrInvalidCall, call.Pos)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// flagLabel formats flags in flow-mapping style: {&element: title, --dark: false}
func flagLabel(flags bemto.FlagMap) string {
	parts := make([]string, 0, len(flags))
	for _, e := range flags {
		parts = append(parts, fmt.Sprintf("%s: %v", e.Key, e.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// LoadManifests expands patterns and decodes every matched manifest.
func LoadManifests(patterns []string, logger *slog.Logger) ([]*Manifest, error) {
	logger = loggerOrDiscard(logger)

	files, stats, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoManifests, strings.Join(patterns, ", "))
	}

	logger.Debug("manifests discovered",
		slog.Int("scanned", stats.FilesScanned),
		slog.Int("skipped", stats.FilesSkipped))

	manifests := make([]*Manifest, 0, len(files))
	for _, file := range files {
		logger.Debug("loading manifest", slog.String("path", file))
		m, err := LoadManifest(file)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
