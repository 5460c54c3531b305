// Package bemto builds BEM class-name strings from a compact dotted shorthand.
//
// A block is declared once and then rendered, amended or used as the root of
// elements:
//
//	tile := bemto.New("tile--big.col-xs-2")
//	tile.String()                      // "tile tile--big col-xs-2"
//	tile.Of("--active")                // "tile tile--big tile--active col-xs-2"
//	tile.Of("title--small.--accent")   // "tile__title tile__title--small tile__title--accent"
//
// # Shorthand
//
// Tokens are separated by dots. The first token names the entity and may
// carry one modifier after the modifier separator. Later tokens starting with
// the modifier separator are modifiers, all others are plain classes copied
// verbatim. A token ending in "?false" is dropped and "?true" is kept, which
// makes conditional classes easy to build with fmt.Sprintf("--open?%t", open).
//
// # Flag maps
//
// The same information can be given as an ordered FlagMap:
//
//	tile.Render(bemto.FlagMap{
//		bemto.Element("title"),
//		bemto.Flag("--active", true),
//		bemto.Flag("--dark", false),
//	}) // "tile__title tile__title--active"
//
// # Separators
//
// Separators default to "__" (element) and "--" (modifier) and live in a
// Config. The package-level functions use DefaultConfig; tests and
// applications that need isolated conventions create their own with
// NewConfig. Separator changes apply to blocks created earlier, since every
// render reads the current values.
//
// # CLI Tool
//
// The bemto command renders shorthands, generates Go constants from a YAML
// manifest and checks rendered classes against stylesheets:
//
//	go install github.com/yacobolo/bemto/cmd/bemto@latest
package bemto
