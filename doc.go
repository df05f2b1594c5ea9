// Package chaosgame generates chaos-game fractals: a point repeatedly moves
// a fixed fraction of the way toward a vertex of a regular polygon, the
// vertex picked either at random or by the next symbol of a sequence.
//
// Random mode on a triangle draws the Sierpinski gasket; driving a square
// with a DNA stream (one vertex per base) draws its chaos-game
// representation.
//
// The library is organized bottom-up:
//
//	geometry/  - points, regular polygons, rotation, point-in-polygon
//	alphabet/  - symbol to vertex-index mapping and vertex labels
//	selector/  - vertex sources: uniform random (no repeats for n > 3) and sequence driven
//	attractor/ - the iteration engine and seed sampling
//	chaos/     - the two run modes behind functional options
//	sequence/  - symbol-stream reader (whitespace stripped, FASTA headers optional)
//
// Around it sit the application layers:
//
//	export/    - CSV and JSON writers for a run's points
//	store/     - SQLite run repository
//	server/    - Fiber JSON API
//	menu/      - Bubble Tea interactive menu
//	cli/       - command dispatcher used by cmd/chaosgame
//	config/, logging/ - YAML/env configuration and zap logging
//
// Quick start:
//
//	res, err := chaos.Game(3, 50000, chaos.WithSeed(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = export.WriteCSV(os.Stdout, res)
//
// Every run is single-threaded and owns its RNG; concurrent runs share no
// state.
package chaosgame
