// Package level loads puzzle definitions from YAML and turns them into
// games.
//
// A level document names the puzzle, sets a default bottle capacity and
// lists the bottles bottom first:
//
//	name: sortpuz-119
//	capacity: 4
//	bottles:
//	  - [lorange, pink, pink, brown]
//	  - {capacity: 6, contents: [red]}
//	  - []
//
// A bottle is either a plain list of color names or a mapping with its own
// capacity. Color names are matched case-insensitively (see
// bottle.ParseColor). Decoding is strict: unknown fields are errors.
//
// A few levels ship inside the package; Builtins lists them and Builtin
// loads one by name.
package level
