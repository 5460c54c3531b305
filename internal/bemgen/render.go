package bemgen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/yacobolo/bemto"
)

// RenderManifest renders every block of m and every call declared on it.
// Go names are stems only; RenderAll makes them unique.
func RenderManifest(m *Manifest, cfg *bemto.Config) ([]RenderedClass, error) {
	cfg = separatorsOrDefault(cfg)

	var out []RenderedClass
	for _, decl := range m.Blocks {
		b, err := cfg.FromValue(decl.Shorthand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", decl.Pos, err)
		}
		shorthand := fmt.Sprint(decl.Shorthand)

		stem := toGoName(decl.Name)
		if stem == "" {
			stem = toGoName(cfg.Parse(shorthand).Entity)
		}

		out = append(out, RenderedClass{
			GoName:     goIdent(stem),
			Value:      b.String(),
			Block:      shorthand,
			Pos:        decl.Pos,
			SourceLine: m.line(decl.Pos.Line),
		})

		for _, call := range decl.Calls {
			out = append(out, RenderedClass{
				GoName:     goIdent(stem + callStem(call.Arg, cfg)),
				Value:      b.Render(call.Arg),
				Block:      shorthand,
				Call:       call.Label,
				Pos:        call.Pos,
				SourceLine: m.line(call.Pos.Line),
			})
		}
	}
	return out, nil
}

// RenderAll renders all manifests and assigns unique Go names in
// declaration order. Renamed constants are reported as warnings.
func RenderAll(manifests []*Manifest, cfg *bemto.Config) ([]RenderedClass, []string, error) {
	var all []RenderedClass
	for _, m := range manifests {
		classes, err := RenderManifest(m, cfg)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, classes...)
	}
	warnings := assignGoNames(all)
	return all, warnings, nil
}

// callStem derives the Go name suffix of a call from its parsed parts.
func callStem(arg bemto.Arg, cfg *bemto.Config) string {
	var p bemto.Parsed
	switch a := arg.(type) {
	case bemto.Shorthand:
		p = cfg.Parse(string(a))
	case bemto.FlagMap:
		p = cfg.ParseFlags(a)
	default:
		return ""
	}

	parts := make([]string, 0, 1+len(p.Modifiers)+len(p.Classes))
	parts = append(parts, p.Entity)
	parts = append(parts, p.Modifiers...)
	parts = append(parts, p.Classes...)
	return toGoName(strings.Join(parts, " "))
}

// assignGoNames resolves collisions by adding numeric suffixes. The first
// declaration keeps its name; the lookup map name is reserved.
func assignGoNames(classes []RenderedClass) []string {
	var warnings []string
	taken := make(map[string]bool, len(classes)+1)
	taken[allClassesVar] = true

	for i := range classes {
		name := classes[i].GoName
		if !taken[name] {
			taken[name] = true
			continue
		}

		n := 2
		for taken[name+strconv.Itoa(n)] {
			n++
		}
		renamed := name + strconv.Itoa(n)
		taken[renamed] = true
		classes[i].GoName = renamed

		warnings = append(warnings, fmt.Sprintf(
			"Duplicate constant '%s' at %s renamed to '%s'",
			name, classes[i].Pos, renamed,
		))
	}
	return warnings
}

// toGoName converts a class-like string to PascalCase, splitting on every
// rune that is not a letter or digit.
func toGoName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	return strings.Join(parts, "")
}

// goIdent makes name a valid exported identifier.
func goIdent(name string) string {
	if name == "" {
		return "Class"
	}
	if unicode.IsDigit([]rune(name)[0]) {
		return "Class" + name
	}
	return name
}

func (m *Manifest) line(n int) string {
	if n < 1 || n > len(m.Lines) {
		return ""
	}
	return m.Lines[n-1]
}
