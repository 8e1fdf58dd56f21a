package bfs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/avgdist/bfs"
	"github.com/katalvlaran/avgdist/builder"
	"github.com/katalvlaran/avgdist/core"
)

// buildSample returns
//
//	3 ── 0 ── 1 ── 2
//	          │
//	          4
func buildSample(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 3}, {U: 1, V: 4}})
	require.NoError(t, err)
	return g
}

// buildChain returns the path 0–1–…–(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges, err := builder.Build(builder.Path(n))
	require.NoError(t, err)
	g, err := core.NewGraph(edges)
	require.NoError(t, err)
	return g
}

func TestReachable_VisitsEachVertexOnce(t *testing.T) {
	g := buildSample(t)
	order := bfs.Reachable(g, 0)
	require.Len(t, order, 5)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, order, "frontier order follows sorted neighbors")

	seen := map[int]bool{}
	for _, v := range order {
		require.False(t, seen[v], "vertex %d visited twice", v)
		seen[v] = true
	}
}

func TestReachable_OutOfRangeStart(t *testing.T) {
	g := buildSample(t)
	assert.Empty(t, bfs.Reachable(g, 5))
	assert.Empty(t, bfs.Reachable(g, -1))
	assert.Empty(t, bfs.Reachable(nil, 0))
}

func TestReachable_IsolatedVertex(t *testing.T) {
	// 1 and 2 exist only because 3 does.
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, bfs.Reachable(g, 1))
}

func TestReachable_Disconnected(t *testing.T) {
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, bfs.Reachable(g, 0))
	assert.ElementsMatch(t, []int{2, 3}, bfs.Reachable(g, 3))
}

func TestReachable_LoopsAndParallelEdges(t *testing.T) {
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 0}, {U: 0, V: 1}, {U: 0, V: 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, bfs.Reachable(g, 0))
}

func TestShortestPath_Sample(t *testing.T) {
	g := buildSample(t)
	assert.Equal(t, bfs.Finite(2), bfs.ShortestPath(g, 0, 2))
	assert.Equal(t, bfs.Finite(3), bfs.ShortestPath(g, 3, 4))
	assert.Equal(t, bfs.Finite(1), bfs.ShortestPath(g, 4, 1))
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := buildSample(t)
	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, bfs.Finite(0), bfs.ShortestPath(g, v, v))
	}
}

func TestShortestPath_OutOfRange(t *testing.T) {
	g := buildSample(t)
	assert.False(t, bfs.ShortestPath(g, 0, 9).IsReachable())
	assert.False(t, bfs.ShortestPath(g, 9, 0).IsReachable())
	assert.False(t, bfs.ShortestPath(g, 9, 9).IsReachable(), "range check precedes the start == end shortcut")
	assert.False(t, bfs.ShortestPath(nil, 0, 0).IsReachable())
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	d := bfs.ShortestPath(g, 0, 3)
	hops, ok := d.Hops()
	assert.False(t, ok)
	assert.Zero(t, hops)
	assert.Equal(t, "unreachable", d.String())
}

func TestShortestPath_Chain(t *testing.T) {
	g := buildChain(t, 50)
	assert.Equal(t, bfs.Finite(49), bfs.ShortestPath(g, 0, 49))
	assert.Equal(t, bfs.Finite(20), bfs.ShortestPath(g, 30, 10))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, bfs.Unreachable(), bfs.Distance{}, "zero value is unreachable")
	assert.Equal(t, bfs.Unreachable(), bfs.Finite(-1))
	assert.Equal(t, "7", bfs.Finite(7).String())
	hops, ok := bfs.Finite(7).Hops()
	assert.True(t, ok)
	assert.Equal(t, 7, hops)
}

func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildSample(t)
	_, err = bfs.Walk(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.Walk(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestWalk_DepthsAndPaths(t *testing.T) {
	g := buildSample(t)
	res, err := bfs.Walk(g, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 0, 1, 2, 4}, res.Order)
	assert.Equal(t, bfs.Finite(0), res.DistanceTo(3))
	assert.Equal(t, bfs.Finite(3), res.DistanceTo(4))

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 4}, path)

	path, err = res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, path)
}

func TestWalk_PathToUnreached(t *testing.T) {
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	res, err := bfs.Walk(g, 0)
	require.NoError(t, err)

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	_, err = res.PathTo(42)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	assert.False(t, res.DistanceTo(2).IsReachable())
}

func TestWalk_MaxDepth(t *testing.T) {
	g := buildChain(t, 10)
	res, err := bfs.Walk(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.Walk(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 10)
}

func TestWalk_Target(t *testing.T) {
	g := buildChain(t, 10)
	res, err := bfs.Walk(g, 0, bfs.WithTarget(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, bfs.Finite(3), res.DistanceTo(3))
}

func TestWalk_OnVisit(t *testing.T) {
	g := buildSample(t)
	var depths []int
	_, err := bfs.Walk(g, 0, bfs.WithOnVisit(func(_, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, 2}, depths, "depths are non-decreasing")

	stop := errors.New("stop")
	res, err := bfs.Walk(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestWalk_Cancellation(t *testing.T) {
	g := buildChain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Walk(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_ConcurrentSafety(t *testing.T) {
	g := buildChain(t, 200)
	var wg sync.WaitGroup
	got := make([]bfs.Distance, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = bfs.ShortestPath(g, i, 199)
		}(i)
	}
	wg.Wait()
	for i, d := range got {
		assert.Equal(t, bfs.Finite(199-i), d)
	}
}
