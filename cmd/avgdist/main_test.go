package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/avgdist/core"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeEdges(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

func TestRun_TextReport(t *testing.T) {
	p := writeEdges(t, "u,v\n0,1\n1,2\n0,3\n1,4\n")
	out, _, err := execute(t, p, "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "- BFS started from vertex 0 and visited 5 vertices.")
	assert.Contains(t, out, "- Computed distances for 10 pairs.")
	assert.Contains(t, out, "- Total combined distance: 18")
	assert.Contains(t, out, "- Estimated average shortest path distance: 1.8000")
	assert.Contains(t, out, "Run Completed.")
}

func TestRun_JSONAndMetrics(t *testing.T) {
	p := writeEdges(t, "u,v\n0,1\n1,2\n0,3\n1,4\n")
	metrics := filepath.Join(t.TempDir(), "avgdist.prom")
	out, _, err := execute(t, p, "-o", "json", "--metrics-file", metrics, "--workers", "4")
	require.NoError(t, err)

	var doc struct {
		Digest string `json:"digest"`
		Graph  struct {
			Vertices int `json:"vertices"`
		} `json:"graph"`
		Result struct {
			Counted int     `json:"counted"`
			Average float64 `json:"average"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Digest, 64)
	assert.Equal(t, 5, doc.Graph.Vertices)
	assert.Equal(t, 10, doc.Result.Counted)
	assert.InDelta(t, 1.8, doc.Result.Average, 1e-12)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "avgdist_pairs_sampled_total 10")
	assert.Contains(t, string(prom), `avgdist_runs_total{outcome="ok"} 1`)
}

func TestRun_MissingInput(t *testing.T) {
	out, _, err := execute(t, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Equal(t, exitInput, exitCode(err))
	assert.Contains(t, out, "Error: Could not read a valid edge list from the file.")
}

func TestRun_EmptyInput(t *testing.T) {
	p := writeEdges(t, "u,v\nnot,edges\n")
	out, _, err := execute(t, p)
	require.Error(t, err)
	assert.Equal(t, exitInput, exitCode(err))
	assert.Contains(t, out, "Error: The edge list is empty. Cannot proceed.")
}

func TestRun_VertexIndexTooLarge(t *testing.T) {
	p := writeEdges(t, "u,v\n0,1\n1,9223372036854775807\n")
	out, _, err := execute(t, p)
	require.Error(t, err)
	assert.Equal(t, exitInput, exitCode(err))
	assert.ErrorIs(t, err, core.ErrVertexRange)
	assert.Contains(t, out, "Error: The edge list names a vertex index too large to index.")
}

func TestRun_CancelledIsReported(t *testing.T) {
	p := writeEdges(t, "u,v\n0,1\n1,2\n0,3\n1,4\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{p})
	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, exitInternal, exitCode(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, stdout.String(), "- BFS started from vertex 0 and visited 5 vertices.")
	assert.Contains(t, stdout.String(), "Error: ")
	assert.Contains(t, stdout.String(), context.Canceled.Error())
	assert.NotContains(t, stdout.String(), "Run Completed.")
	assert.Contains(t, stderr.String(), "estimation aborted")
}

func TestShutdownSignals(t *testing.T) {
	assert.ElementsMatch(t, []os.Signal{os.Interrupt, syscall.SIGTERM}, shutdownSignals)
}

func TestRun_InsufficientReachable(t *testing.T) {
	// first edge is a loop on an otherwise isolated vertex
	p := writeEdges(t, "u,v\n5,5\n0,1\n")
	out, _, err := execute(t, p)
	require.NoError(t, err, "degenerate outcomes end cleanly")
	assert.Contains(t, out, "- BFS started from vertex 5 and visited 1 vertices.")
	assert.Contains(t, out, "Not enough visited vertices to form pairs (need at least 2).")
	assert.NotContains(t, out, "Run Completed.")
}

func TestRun_NoPairsFormed(t *testing.T) {
	// Two reachable vertices and a single draw: a pair forms only when the
	// two indices differ, so some seed in range must fail.
	p := writeEdges(t, "u,v\n0,1\n")
	var sawNoPairs bool
	for seed := 1; seed <= 64 && !sawNoPairs; seed++ {
		out, _, err := execute(t, p, "--samples", "1", "--attempt-factor", "1", "--seed", strconv.Itoa(seed))
		require.NoError(t, err)
		sawNoPairs = strings.Contains(out, "Could not form any distinct pairs.")
	}
	assert.True(t, sawNoPairs, "some seed draws the same index twice")
}

func TestRun_ScopeAllUnreachable(t *testing.T) {
	p := writeEdges(t, "u,v\n0,1\n2,3\n")
	out, _, err := execute(t, p, "--scope", "all", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable: 4")
	assert.Contains(t, out, "counted: 2")
}

func TestRun_ConfigFileAndFlagPrecedence(t *testing.T) {
	p := writeEdges(t, "0,1\n1,2\n")
	cfg := filepath.Join(t.TempDir(), "avgdist.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+p+"\nheader: false\nformat: yaml\n"), 0o644))

	out, _, err := execute(t, "--config", cfg, "--format", "json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "flag overrides file format")
	res := doc["result"].(map[string]any)
	assert.Equal(t, 3.0, res["reachable"], "header: false keeps the first edge")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "x.csv", "--samples", "0")
	require.Error(t, err)
	assert.Equal(t, -1, exitCode(err))

	_, _, err = execute(t, "a.csv", "b.csv")
	require.Error(t, err)
}
