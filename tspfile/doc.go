// Package tspfile reads TSP-format coordinate files and writes tour
// listings.
//
// The accepted format is the classic line-oriented one:
//
//	NAME: berlin4
//	COMMENT: four corners
//	DIMENSION: 4
//	NODE_COORD_SECTION
//	1 0.0 0.0
//	2 0.0 1.0
//	3 1.0 1.0
//	4 1.0 0.0
//	EOF
//
// "KEY: VALUE" lines become header fields, three-column lines become city
// records, and everything is validated at construction: the declared
// DIMENSION must match the number of parsed coordinates, and identifiers
// must be unique. The result is a structured Instance ready for
// tspga.Evolve - never an ad-hoc map.
package tspfile
