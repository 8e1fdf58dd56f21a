package bfs

import "strconv"

// Distance is the result of a shortest-path query: either a finite number
// of edges or unreachable. The zero value is Unreachable().
type Distance struct {
	hops      int
	reachable bool
}

// Unreachable returns the "no path" distance.
func Unreachable() Distance { return Distance{} }

// Finite returns a distance of n edges. Negative n yields Unreachable().
func Finite(n int) Distance {
	if n < 0 {
		return Unreachable()
	}
	return Distance{hops: n, reachable: true}
}

// Hops returns the edge count and true, or 0 and false when unreachable.
func (d Distance) Hops() (int, bool) { return d.hops, d.reachable }

// IsReachable reports whether a path exists.
func (d Distance) IsReachable() bool { return d.reachable }

// String renders the hop count, or "unreachable".
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}
	return strconv.Itoa(d.hops)
}
