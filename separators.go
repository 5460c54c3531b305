package bemto

import "sync"

// Default separators, as advised by https://en.bem.info/method/naming-convention/.
const (
	DefaultElementSeparator  = "__"
	DefaultModifierSeparator = "--"
)

// Separators is the pair of tokens placed between a block and its element
// ("tile__title") and between an entity and its modifier ("tile--big").
type Separators struct {
	Element  string
	Modifier string
}

// Config holds the separators read by every parse and compose call.
//
// A Config is safe for concurrent use. Blocks created from a Config keep a
// reference to it and observe later separator changes on each render.
type Config struct {
	mu  sync.RWMutex
	sep Separators
}

// NewConfig returns a Config with the default separators.
func NewConfig() *Config {
	return &Config{
		sep: Separators{
			Element:  DefaultElementSeparator,
			Modifier: DefaultModifierSeparator,
		},
	}
}

var defaultConfig = NewConfig()

// DefaultConfig returns the process-wide Config used by the package-level
// functions.
func DefaultConfig() *Config {
	return defaultConfig
}

// Separators returns a snapshot of the current separators.
func (c *Config) Separators() Separators {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sep
}

// SetSeparators replaces each separator that is non-empty in s. Empty fields
// leave the current value untouched.
func (c *Config) SetSeparators(s Separators) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if validSeparator(s.Element) {
		c.sep.Element = s.Element
	}
	if validSeparator(s.Modifier) {
		c.sep.Modifier = s.Modifier
	}
}

// SetElementSeparator replaces the element separator if value is non-empty.
func (c *Config) SetElementSeparator(value string) {
	c.SetSeparators(Separators{Element: value})
}

// SetModifierSeparator replaces the modifier separator if value is non-empty.
func (c *Config) SetModifierSeparator(value string) {
	c.SetSeparators(Separators{Modifier: value})
}

// SetFromValues applies separators from loosely typed input such as a decoded
// YAML mapping. Recognized keys are "element" and "modifier"; values that are
// not non-empty strings are ignored field by field.
func (c *Config) SetFromValues(values map[string]any) {
	var s Separators
	if v, ok := values["element"].(string); ok {
		s.Element = v
	}
	if v, ok := values["modifier"].(string); ok {
		s.Modifier = v
	}
	c.SetSeparators(s)
}

func validSeparator(s string) bool {
	return len(s) > 0
}

// SetSeparators updates the default Config. See Config.SetSeparators.
func SetSeparators(s Separators) {
	defaultConfig.SetSeparators(s)
}

// SetElementSeparator updates the element separator of the default Config.
func SetElementSeparator(value string) {
	defaultConfig.SetElementSeparator(value)
}

// SetModifierSeparator updates the modifier separator of the default Config.
func SetModifierSeparator(value string) {
	defaultConfig.SetModifierSeparator(value)
}

// CurrentSeparators returns the separators of the default Config.
func CurrentSeparators() Separators {
	return defaultConfig.Separators()
}
