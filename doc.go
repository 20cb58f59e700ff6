// Package unitgraph is a toolkit for the Hadwiger–Nelson problem: it builds
// unit-distance graphs from symbolic planar coordinates, composes rigidly
// transformed copies of them, and bounds their chromatic numbers with a SAT
// colorability oracle.
//
// The pipeline, one package per stage:
//
//	coords/    — "{x, y}" lines with nested Sqrt[...] expressions → points
//	geom/      — points, rigid transforms, unit-circle intersections
//	builder/   — points → unit-distance graph (ε-tolerant, grid-indexed); gadgets
//	core/      — immutable int-indexed simple graph, subgraphs, coloring checks
//	compose/   — union of transformed copies with cross-copy edge accounting
//	sat/       — CNF, DIMACS, Solver interface, gophersat backend
//	coloring/  — the colorability oracle: graph + k → SAT (with witness) | UNSAT
//	chromatic/ — upward k search, brackets, breakthrough checks
//	strategy/  — greedy expansion, sampled minimal subgraph, vertex criticality
//
// Ambient packages: config/ (viper), logging/ (zap), metrics/ (Prometheus),
// runlog/ (YAML run records). The unitgraph command lives in cmd/unitgraph.
//
// Quick example (the Moser spindle):
//
//	g, _ := builder.UnitDistance(builder.MoserSpindle())
//	res, _ := chromatic.Search(ctx, coloring.New(sat.NewGophersat()), g)
//	fmt.Println(g, res) // Graph(V=7, E=11) χ = 4
//
// A result is only ever reported as χ = k when k is SAT with a verified
// witness and every smaller k is UNSAT. Timeouts and the search cap produce
// brackets, never lower-bound claims.
package unitgraph
