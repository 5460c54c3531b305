package bemto

import "strings"

// ClassSpec describes one rendered entity.
type ClassSpec struct {
	Block     string
	Element   string // empty renders the block itself
	Modifiers []string
	Classes   []string
}

// Compose renders spec as "prefix prefix--mod... class..." using the current
// separators of c.
func (c *Config) Compose(spec ClassSpec) string {
	return compose(spec, c.Separators())
}

// Compose renders spec with the default Config.
func Compose(spec ClassSpec) string {
	return defaultConfig.Compose(spec)
}

func compose(spec ClassSpec, sep Separators) string {
	prefix := spec.Block
	if spec.Element != "" {
		prefix = spec.Block + sep.Element + spec.Element
	}

	parts := make([]string, 0, 1+len(spec.Modifiers)+len(spec.Classes))
	parts = append(parts, prefix)
	for _, mod := range spec.Modifiers {
		if mod != "" {
			parts = append(parts, prefix+sep.Modifier+mod)
		}
	}
	for _, class := range spec.Classes {
		if class != "" {
			parts = append(parts, class)
		}
	}
	return strings.Join(parts, " ")
}
