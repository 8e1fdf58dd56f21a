// Package avgdist estimates the average shortest-path distance of an
// unweighted, undirected graph by sampling vertex pairs and measuring each
// pair with breadth-first search.
//
// What is avgdist?
//
//	A small, dependency-light toolkit organized as one package per concern:
//		• core/       — immutable index-based Graph built from an edge list
//		• bfs/        — reachability order and BFS shortest-path distances
//		• edgelist/   — "u,v" edge-list reader (plain, .gz, .zst, sharded globs)
//		• sampler/    — best-effort distinct-pair rejection sampler
//		• estimate/   — the pipeline: reach → sample → measure → aggregate
//		• report/     — text, yaml and json rendering of a run
//		• config/     — defaults and YAML configuration
//		• builder/    — canonical graph families for tests and benchmarks
//		• converters/ — core.Graph → gonum/graph adapter
//
// Data flow:
//
//	edgelist → core.NewGraph → bfs.Reachable → sampler.Sample
//	         → bfs.ShortestPath (per pair, in parallel) → report
//
// Quick ASCII example:
//
//	3 ── 0 ── 1 ── 2
//	          │
//	          4
//
// has 10 vertex pairs with total distance 18, so its average distance is 1.8.
//
//	go install github.com/katalvlaran/avgdist/cmd/avgdist@latest
//	avgdist fb-pages-company_edges.txt
package avgdist
