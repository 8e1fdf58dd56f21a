package edgelist

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"

	"github.com/katalvlaran/avgdist/core"
)

const digestSize = 32

// maxLine bounds the bytes kept for a single line. Longer lines are
// consumed and counted as skipped.
const maxLine = 1 << 20

// Parse reads an edge list from r.
func Parse(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ds := &Dataset{}
	h := blake3.New(digestSize, nil)
	if err := parseInto(ds, r, cfg, h); err != nil {
		return nil, err
	}
	return finish(ds, h)
}

// Load opens path and parses it, decompressing ".zst" and ".gz" files.
func Load(path string, opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ds := &Dataset{}
	h := blake3.New(digestSize, nil)
	if err := loadInto(ds, path, cfg, h); err != nil {
		return nil, err
	}
	return finish(ds, h)
}

// LoadGlob parses every regular file matching pattern, in lexical order,
// into a single Dataset. The header rule applies to each file.
func LoadGlob(pattern string, opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %v", ErrInputUnavailable, pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", ErrInputUnavailable, pattern)
	}
	sort.Strings(matches)

	ds := &Dataset{}
	h := blake3.New(digestSize, nil)
	for _, path := range matches {
		if err := loadInto(ds, path, cfg, h); err != nil {
			return nil, err
		}
	}
	return finish(ds, h)
}

// loadInto opens one file, picks a decompressor by extension and parses it.
func loadInto(ds *Dataset, path string, cfg config, h io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInputUnavailable, path, err)
		}
		defer dec.Close()
		r = dec
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInputUnavailable, path, err)
		}
		defer zr.Close()
		r = zr
	}

	ds.Sources = append(ds.Sources, path)
	if err := parseInto(ds, r, cfg, h); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseInto reads r line by line, appending accepted edges to ds and
// mirroring every byte read into h.
func parseInto(ds *Dataset, r io.Reader, cfg config, h io.Writer) error {
	br := bufio.NewReaderSize(io.TeeReader(r, h), 64*1024)

	first := true
	for {
		line, long, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInputUnavailable, err)
		}
		if first {
			first = false
			if cfg.header {
				continue
			}
		}
		ds.Lines++
		if long {
			ds.Skipped++
			continue
		}
		e, ok := parseLine(string(line))
		if !ok {
			ds.Skipped++
			continue
		}
		ds.Edges = append(ds.Edges, e)
	}
}

// readLine returns the next line including its terminator. A line longer
// than maxLine is drained and reported with long set and no content.
// io.EOF is returned only when no bytes remain.
func readLine(br *bufio.Reader) (line []byte, long bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		switch {
		case long:
		case len(line)+len(chunk) > maxLine:
			line, long = nil, true
		default:
			line = append(line, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && (len(line) > 0 || long) {
			return line, long, nil
		}
		return line, long, err
	}
}

// parseLine accepts exactly "<u>,<v>" after trimming the whole line.
func parseLine(line string) (core.Edge, bool) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok || strings.Contains(right, ",") {
		return core.Edge{}, false
	}
	u, ok := parseIndex(left)
	if !ok {
		return core.Edge{}, false
	}
	v, ok := parseIndex(right)
	if !ok {
		return core.Edge{}, false
	}
	return core.Edge{U: u, V: v}, true
}

// parseIndex parses a non-negative decimal index with an optional single
// leading '+'.
func parseIndex(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// finish stamps the digest and rejects datasets without edges.
func finish(ds *Dataset, h *blake3.Hasher) (*Dataset, error) {
	ds.Digest = hex.EncodeToString(h.Sum(nil))
	if len(ds.Edges) == 0 {
		return nil, ErrEmptyInput
	}
	return ds, nil
}
