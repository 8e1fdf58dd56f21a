// Package builder generates edge lists for canonical graph families, ready
// to pass to core.NewGraph. It backs tests, benchmarks and examples with
// graphs whose distances are known in closed form.
//
// Constructors (vertices are 0..n-1 unless noted):
//
//	Path(n)              0–1–…–(n-1); diameter n-1
//	Cycle(n)             Path(n) plus (n-1)–0; diameter ⌊n/2⌋
//	Star(n)              center 0, leaves 1..n-1; every leaf pair at distance 2
//	Complete(n)          every pair i<j; every distance 1
//	Grid(rows, cols)     4-neighborhood, vertex r*cols+c; distance = Manhattan
//	RandomSparse(n, p)   each pair i<j kept with probability p (needs RNG)
//
// Usage:
//
//	edges, err := builder.Build(builder.Grid(30, 30))
//	g, err := core.NewGraph(edges)
//
//	edges, err = builder.Build(builder.RandomSparse(1000, 0.01), builder.WithSeed(7))
//
// Determinism:
//
//	Edges are emitted in a fixed order (i ascending, then j ascending);
//	RandomSparse is reproducible for a fixed seed.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource; all wrapped
//	with the constructor name. Constructors never panic.
package builder
