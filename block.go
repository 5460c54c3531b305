package bemto

import (
	"fmt"
	"strings"
)

// Arg is the argument of Block.Render: either a Shorthand or a FlagMap.
type Arg interface {
	isArg()
}

// Shorthand is a dotted call argument such as "title--small.--active".
type Shorthand string

func (Shorthand) isArg() {}
func (FlagMap) isArg()   {}

// Block renders class strings for one block. Its name, modifiers and plain
// classes are fixed when the block is created.
type Block struct {
	cfg     *Config
	name    string
	mods    []string
	classes []string
}

// New parses shorthand into a Block bound to c.
func (c *Config) New(shorthand string) *Block {
	p := c.Parse(shorthand)
	return &Block{
		cfg:     c,
		name:    p.Entity,
		mods:    p.Modifiers,
		classes: p.Classes,
	}
}

// FromValue is New for loosely typed input, e.g. a decoded YAML scalar. It
// fails with ErrInvalidArgument unless v is a string.
func (c *Config) FromValue(v any) (*Block, error) {
	switch s := v.(type) {
	case string:
		return c.New(s), nil
	case Shorthand:
		return c.New(string(s)), nil
	default:
		return nil, fmt.Errorf("%w: block shorthand must be a string, got %T", ErrInvalidArgument, v)
	}
}

// New creates a Block bound to the default Config.
func New(shorthand string) *Block {
	return defaultConfig.New(shorthand)
}

// FromValue creates a Block bound to the default Config from loosely typed input.
func FromValue(v any) (*Block, error) {
	return defaultConfig.FromValue(v)
}

// Render returns the class string for arg:
//
//   - nil renders the block with its own modifiers and classes;
//   - a Shorthand starting with the modifier separator amends the block;
//   - any other Shorthand declares an element;
//   - a FlagMap declares an element named by its ElementKey entry.
//
// Element renders never include the block's own modifiers or classes.
func (b *Block) Render(arg Arg) string {
	sep := b.cfg.Separators()

	switch a := arg.(type) {
	case Shorthand:
		s := string(a)
		if strings.HasPrefix(s, sep.Modifier) {
			mods, classes := parseWithoutEntity(strings.Split(s, "."), sep)
			return compose(ClassSpec{
				Block:     b.name,
				Modifiers: concat(b.mods, mods),
				Classes:   concat(b.classes, classes),
			}, sep)
		}
		p := parseTokens(strings.Split(s, "."), sep)
		return compose(ClassSpec{
			Block:     b.name,
			Element:   p.Entity,
			Modifiers: p.Modifiers,
			Classes:   p.Classes,
		}, sep)

	case FlagMap:
		p := parseFlags(a, sep)
		return compose(ClassSpec{
			Block:     b.name,
			Element:   p.Entity,
			Modifiers: p.Modifiers,
			Classes:   p.Classes,
		}, sep)

	default:
		return compose(ClassSpec{
			Block:     b.name,
			Modifiers: b.mods,
			Classes:   b.classes,
		}, sep)
	}
}

// Of renders a shorthand call argument.
func (b *Block) Of(shorthand string) string {
	return b.Render(Shorthand(shorthand))
}

// String renders the block itself.
func (b *Block) String() string {
	return b.Render(nil)
}

// concat returns a fresh slice so the block's own state is never aliased.
func concat(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
