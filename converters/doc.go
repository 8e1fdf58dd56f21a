// Package converters provides adapters between core.Graph and
// gonum/graph, so avgdist graphs can be handed to gonum algorithms
// (path, topo, community) and checked against them.
//
// Self-loops are dropped because gonum simple graphs reject them, and
// parallel edges collapse into one gonum edge. Neither changes any
// shortest-path distance.
package converters
