package bemto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		want      Parsed
	}{
		{
			name:      "entity only",
			shorthand: "title",
			want:      Parsed{Entity: "title"},
		},
		{
			name:      "entity with modifier and class",
			shorthand: "title--big.main",
			want:      Parsed{Entity: "title", Modifiers: []string{"big"}, Classes: []string{"main"}},
		},
		{
			name:      "order of first occurrence",
			shorthand: "tile--big.--active.col-xs-2.--dark.mb10",
			want: Parsed{
				Entity:    "tile",
				Modifiers: []string{"big", "active", "dark"},
				Classes:   []string{"col-xs-2", "mb10"},
			},
		},
		{
			name:      "leading modifier has no entity",
			shorthand: "--active.--dark",
			want:      Parsed{Modifiers: []string{"active", "dark"}},
		},
		{
			name:      "leading dot has no entity",
			shorthand: ".--active",
			want:      Parsed{Modifiers: []string{"active"}},
		},
		{
			name:      "empty tokens are skipped",
			shorthand: "tile..--a...b.",
			want:      Parsed{Entity: "tile", Modifiers: []string{"a"}, Classes: []string{"b"}},
		},
		{
			name:      "empty input",
			shorthand: "",
			want:      Parsed{},
		},
		{
			name:      "trailing separator on entity adds nothing",
			shorthand: "tile--",
			want:      Parsed{Entity: "tile"},
		},
		{
			name:      "bare separator token adds nothing",
			shorthand: "tile.--",
			want:      Parsed{Entity: "tile"},
		},
		{
			name:      "first token modifier ends at the next separator",
			shorthand: "tile--a--b",
			want:      Parsed{Entity: "tile", Modifiers: []string{"a"}},
		},
		{
			name:      "empty first token modifier before a second separator",
			shorthand: "tile----b.--c",
			want:      Parsed{Entity: "tile", Modifiers: []string{"c"}},
		},
		{
			name:      "duplicates are kept",
			shorthand: "tile--a.--a.x.x",
			want:      Parsed{Entity: "tile", Modifiers: []string{"a", "a"}, Classes: []string{"x", "x"}},
		},
		{
			name:      "conditional tokens",
			shorthand: "title.--active?true.--dark?false.shown?true.hidden?false",
			want:      Parsed{Entity: "title", Modifiers: []string{"active"}, Classes: []string{"shown"}},
		},
		{
			name:      "conditional on first token drops only the modifier",
			shorthand: "title--big?false.main",
			want:      Parsed{Entity: "title", Classes: []string{"main"}},
		},
		{
			name:      "unknown suffix is part of the name",
			shorthand: "title.--active?1.x?",
			want:      Parsed{Entity: "title", Modifiers: []string{"active?1"}, Classes: []string{"x?"}},
		},
		{
			name:      "suffix literal is case sensitive",
			shorthand: "title.x?False",
			want:      Parsed{Entity: "title", Classes: []string{"x?False"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConfig().Parse(tt.shorthand)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMirroredSeparators(t *testing.T) {
	p := mirroredConfig().Parse("title__big.main")

	assert.Equal(t, "title", p.Entity)
	assert.Equal(t, []string{"big"}, p.Modifiers)
	assert.Equal(t, []string{"main"}, p.Classes)
}

func TestParseIsDeterministic(t *testing.T) {
	cfg := NewConfig()
	inputs := []string{"tile--big.--a.b", ".--x..y", "title.--z?false", ""}

	for _, in := range inputs {
		assert.Equal(t, cfg.Parse(in), cfg.Parse(in), in)
	}
}

func TestParseTokens(t *testing.T) {
	got := NewConfig().ParseTokens([]string{"title--big", "--active", "main"})
	assert.Equal(t, Parsed{
		Entity:    "title",
		Modifiers: []string{"big", "active"},
		Classes:   []string{"main"},
	}, got)

	assert.Equal(t, Parsed{}, NewConfig().ParseTokens(nil))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags FlagMap
		want  Parsed
	}{
		{
			name:  "element and flags",
			flags: FlagMap{Element("title"), Flag("--active", true), Flag("--dark", false)},
			want:  Parsed{Entity: "title", Modifiers: []string{"active"}},
		},
		{
			name:  "key order is output order",
			flags: FlagMap{Flag("b", true), Flag("--z", true), Flag("a", true), Flag("--y", true)},
			want:  Parsed{Modifiers: []string{"z", "y"}, Classes: []string{"b", "a"}},
		},
		{
			name:  "element key position does not matter",
			flags: FlagMap{Flag("--on", true), Element("logo")},
			want:  Parsed{Entity: "logo", Modifiers: []string{"on"}},
		},
		{
			name: "non-bool values are excluded",
			flags: FlagMap{
				{Key: "--a", Value: "true"},
				{Key: "b", Value: 1},
				{Key: "c", Value: nil},
			},
			want: Parsed{},
		},
		{
			name:  "non-string element is ignored",
			flags: FlagMap{{Key: ElementKey, Value: true}, Flag("x", true)},
			want:  Parsed{Classes: []string{"x"}},
		},
		{
			name:  "empty map",
			flags: FlagMap{},
			want:  Parsed{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewConfig().ParseFlags(tt.flags))
		})
	}
}

func TestSplitCondition(t *testing.T) {
	tests := []struct {
		token   string
		name    string
		include bool
	}{
		{"active", "active", true},
		{"active?true", "active", true},
		{"active?false", "active", false},
		{"active?", "active?", true},
		{"active?TRUE", "active?TRUE", true},
		{"?false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			name, include := splitCondition(tt.token)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.include, include)
		})
	}
}
