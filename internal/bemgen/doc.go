// Package bemgen implements the tooling behind the bemto command: YAML
// manifests of blocks and calls, Go constant generation, and a checker that
// compares rendered classes with the classes defined in stylesheets.
//
// # Manifests
//
//	blocks:
//	  - block: tile--big.xs-4
//	    name: Tile
//	    calls:
//	      - "--active"                  # TileActive = "tile tile--big tile--active xs-4"
//	      - title--small                # TileTitleSmall = "tile__title tile__title--small"
//	      - "&element": logo            # TileLogoDark = "tile__logo tile__logo--dark"
//	        "--dark": true
//
// Mapping calls keep their key order. The "&element" key must be quoted in
// YAML because a bare "&" starts an anchor.
package bemgen
