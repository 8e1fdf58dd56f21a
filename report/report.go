// Package report renders estimation outcomes for humans (text) and
// machines (yaml, json).
//
// The text layout is a fixed banner, the BFS line, then either the summary
// (pairs counted, total distance, average to 4 decimal places) or exactly one
// explanatory message for a degenerate outcome.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/edgelist"
	"github.com/katalvlaran/avgdist/estimate"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported Format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates a format name; "" selects text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Report is everything known about one run. Any field may be empty when
// the run stopped early; Err holds the reason.
type Report struct {
	Input  string
	Digest string
	Graph  *core.Stats
	Result *estimate.Result
	Err    error
}

const rule = "--------------------------------------------------------"

// Messages for each degenerate outcome.
const (
	msgInputUnavailable = "Error: Could not read a valid edge list from the file."
	msgEmptyInput       = "Error: The edge list is empty. Cannot proceed."
	msgVertexRange      = "Error: The edge list names a vertex index too large to index."
	msgInsufficient     = "Not enough visited vertices to form pairs (need at least 2)."
	msgNoPairs          = "Could not form any distinct pairs."
	msgAllUnreachable   = "None of the selected pairs are reachable from each other."
)

// Explain returns the user-facing message for err, or "" for nil.
func Explain(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, edgelist.ErrInputUnavailable):
		return msgInputUnavailable
	case errors.Is(err, edgelist.ErrEmptyInput):
		return msgEmptyInput
	case errors.Is(err, core.ErrVertexRange):
		return msgVertexRange
	case errors.Is(err, estimate.ErrInsufficientReachable):
		return msgInsufficient
	case errors.Is(err, estimate.ErrNoPairsFormed):
		return msgNoPairs
	case errors.Is(err, estimate.ErrAllPairsUnreachable):
		return msgAllUnreachable
	}
	return "Error: " + err.Error()
}

// Write renders r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText, "":
		return writeText(w, r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(r)); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toDocument(r)); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// document is the structured form shared by yaml and json.
type document struct {
	Input   string           `json:"input,omitempty" yaml:"input,omitempty"`
	Digest  string           `json:"digest,omitempty" yaml:"digest,omitempty"`
	Graph   *core.Stats      `json:"graph,omitempty" yaml:"graph,omitempty"`
	Result  *estimate.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
	Message string           `json:"message,omitempty" yaml:"message,omitempty"`
}

func toDocument(r Report) document {
	d := document{Input: r.Input, Digest: r.Digest, Graph: r.Graph, Result: r.Result}
	if r.Err != nil {
		d.Error = r.Err.Error()
		d.Message = Explain(r.Err)
	}
	return d
}

// errWriter remembers the first write error so the text layout reads as
// a flat sequence of lines.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func writeText(w io.Writer, r Report) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n   Average Distance Between Two Vertices in a Graph\n%s\n", rule, rule)

	res := r.Result
	if res != nil {
		ew.printf("\n- BFS started from vertex %d and visited %d vertices.\n", res.Start, res.Reachable)
	}
	if r.Err != nil {
		ew.printf("%s\n", Explain(r.Err))
		return ew.err
	}
	if res == nil {
		return ew.err
	}

	ew.printf("- Computed distances for %d pairs.\n", res.Counted)
	ew.printf("- Total combined distance: %d\n", res.Total)
	ew.printf("- Estimated average shortest path distance: %.4f\n", res.Average)
	ew.printf("%s\nRun Completed.\n%s\n", rule, rule)
	return ew.err
}
