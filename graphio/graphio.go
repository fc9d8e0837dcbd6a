// This file implements the interchange format: Write/Read over streams
// and Save/Load over filesystem paths.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// Sentinel errors returned by Read and Load. Parsing failures wrap one of
// these; vertex-range and weight failures wrap the core package's
// sentinels instead, so callers can distinguish a broken file from a
// structurally valid file describing an invalid graph.
var (
	// ErrNilGraph is returned by Write and Save when g == nil.
	ErrNilGraph = errors.New("graphio: nil graph")
	// ErrBadHeader is returned when the first non-blank line is not
	// two non-negative integers.
	ErrBadHeader = errors.New("graphio: malformed header")
	// ErrBadEdge is returned when an arc line is malformed or the
	// number of arc lines disagrees with the header.
	ErrBadEdge = errors.New("graphio: malformed edge")
)

// Write serializes g to w: the "n m" header followed by one "u v weight"
// line per arc, in ascending (from, to) order. Weights use the shortest
// decimal form that parses back to the identical float64.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, e := range g.Edges() {
		ws := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, ws); err != nil {
			return fmt.Errorf("graphio: write edge: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: flush: %w", err)
	}
	return nil
}

// Read parses the interchange format from r and builds the graph.
//
// The header must be exactly two non-negative integers; every arc line
// must be exactly three fields. Blank lines may appear anywhere and are
// skipped without affecting the arc count. Read fails if the stream holds
// more or fewer arc lines than the header declares.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// 1) Header: first non-blank line.
	var g *core.Graph
	declared := -1
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		n, m, err := parseHeader(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadHeader, lineNo, err)
		}
		g = core.New(n)
		declared = m
		break
	}
	if declared < 0 {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}

	// 2) Arc lines: exactly `declared` of them, blanks aside.
	seen := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if seen == declared {
			return nil, fmt.Errorf("%w: line %d: more than %d declared edges", ErrBadEdge, lineNo, declared)
		}
		u, v, weight, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadEdge, lineNo, err)
		}
		if err := g.AddEdge(u, v, weight); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if seen != declared {
		return nil, fmt.Errorf("%w: header declares %d edges, found %d", ErrBadEdge, declared, seen)
	}
	return g, nil
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	return nil
}

// Load reads the graph stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// parseHeader decodes the "n m" line.
func parseHeader(fields []string) (n, m int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want \"n m\", got %d fields", len(fields))
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("vertex count: %v", err)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("edge count: %v", err)
	}
	if n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("negative count n=%d m=%d", n, m)
	}
	return n, m, nil
}

// parseEdge decodes one "u v weight" line.
func parseEdge(fields []string) (u, v int, weight float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("want \"u v weight\", got %d fields", len(fields))
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("from vertex: %v", err)
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("to vertex: %v", err)
	}
	weight, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("weight: %v", err)
	}
	return u, v, weight, nil
}
