package bemto

import "strings"

// ElementKey is the reserved FlagMap key whose string value names the element.
const ElementKey = "&element"

// Conditional suffixes recognized at the end of a token.
const (
	suffixTrue  = "?true"
	suffixFalse = "?false"
)

// Parsed is the structured form of a shorthand.
type Parsed struct {
	Entity    string   // "title" in "title--big.main"; may be empty
	Modifiers []string // ["big"]
	Classes   []string // ["main"], emitted verbatim
}

// Entry is one key of a FlagMap. Value is a bool for flags and a string for
// ElementKey; anything else is treated as false.
type Entry struct {
	Key   string
	Value any
}

// FlagMap is an ordered mapping from modifier or class tokens to inclusion
// flags. Entry order is output order.
type FlagMap []Entry

// Flag returns an entry that includes key when on is true.
func Flag(key string, on bool) Entry {
	return Entry{Key: key, Value: on}
}

// Element returns the entry naming the element of a FlagMap.
func Element(name string) Entry {
	return Entry{Key: ElementKey, Value: name}
}

// Parse parses a dotted shorthand such as "title--big.--active.col-xs-2".
func (c *Config) Parse(shorthand string) Parsed {
	return parseTokens(strings.Split(shorthand, "."), c.Separators())
}

// ParseTokens parses an already split shorthand. The first token carries the
// entity name and an optional modifier, which ends at the next modifier
// separator; every later token is a modifier or a plain class.
func (c *Config) ParseTokens(tokens []string) Parsed {
	return parseTokens(tokens, c.Separators())
}

// ParseFlags parses a FlagMap. ElementKey sets the entity, every other key is
// classified like a shorthand token and kept iff its value is true.
func (c *Config) ParseFlags(flags FlagMap) Parsed {
	return parseFlags(flags, c.Separators())
}

// Parse parses shorthand with the default Config.
func Parse(shorthand string) Parsed {
	return defaultConfig.Parse(shorthand)
}

// ParseTokens parses tokens with the default Config.
func ParseTokens(tokens []string) Parsed {
	return defaultConfig.ParseTokens(tokens)
}

// ParseFlags parses flags with the default Config.
func ParseFlags(flags FlagMap) Parsed {
	return defaultConfig.ParseFlags(flags)
}

func parseTokens(tokens []string, sep Separators) Parsed {
	var p Parsed
	if len(tokens) == 0 {
		return p
	}

	head, include := splitCondition(tokens[0])
	entity, rest, _ := strings.Cut(head, sep.Modifier)
	mod, _, _ := strings.Cut(rest, sep.Modifier)
	p.Entity = entity
	if mod != "" && include {
		p.Modifiers = append(p.Modifiers, mod)
	}

	mods, classes := parseWithoutEntity(tokens[1:], sep)
	p.Modifiers = append(p.Modifiers, mods...)
	p.Classes = classes
	return p
}

// parseWithoutEntity classifies every token as a modifier or a plain class.
func parseWithoutEntity(tokens []string, sep Separators) (mods, classes []string) {
	for _, token := range tokens {
		name, include := splitCondition(token)
		if !include {
			continue
		}
		if isMod, value := classify(name, sep); isMod {
			mods = append(mods, value)
		} else if value != "" {
			classes = append(classes, value)
		}
	}
	return mods, classes
}

func parseFlags(flags FlagMap, sep Separators) Parsed {
	var p Parsed
	for _, e := range flags {
		if e.Key == ElementKey {
			if name, ok := e.Value.(string); ok {
				p.Entity = name
			}
			continue
		}
		if on, ok := e.Value.(bool); !ok || !on {
			continue
		}
		if isMod, value := classify(e.Key, sep); isMod {
			p.Modifiers = append(p.Modifiers, value)
		} else if value != "" {
			p.Classes = append(p.Classes, value)
		}
	}
	return p
}

// classify reports whether token is a modifier and returns its name with the
// separator prefix removed. A bare separator yields no modifier.
func classify(token string, sep Separators) (isMod bool, name string) {
	if rest, ok := strings.CutPrefix(token, sep.Modifier); ok {
		return rest != "", rest
	}
	return false, token
}

// splitCondition strips a trailing "?true" or "?false". Other suffixes stay
// part of the name.
func splitCondition(token string) (name string, include bool) {
	if name, ok := strings.CutSuffix(token, suffixFalse); ok {
		return name, false
	}
	if name, ok := strings.CutSuffix(token, suffixTrue); ok {
		return name, true
	}
	return token, true
}
