// Package hsio is the thin adapter between the textual PACE-style
// hypergraph format and the core's hgraph.Instance, plus result
// formatting for the CLI. Neither concern belongs in the core: parsing is
// just tokenizing a byte stream, and formatting is just rendering an
// already-computed solver.Result.
package hsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/findminhs/hgraph"
)

// Parse reads one hypergraph instance from r in the PACE-style text
// format: a header line "n m", followed by m lines each "d v1 v2 ... vd".
// Vertex ids are 0-based and must be in [0, n).
func Parse(r io.Reader) (*hgraph.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n, m, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	edgeLists := make([][]uint32, 0, m)
	for i := 0; i < m; i++ {
		edge, err := parseEdgeLine(sc, i)
		if err != nil {
			return nil, err
		}
		edgeLists = append(edgeLists, edge)
	}

	inst, err := hgraph.New(n, edgeLists)
	if err != nil {
		return nil, fmt.Errorf("hsio: %w", err)
	}
	return inst, nil
}

func parseHeader(sc *bufio.Scanner) (n, m int, err error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrMissingHeader, err)
		}
		return 0, 0, ErrMissingHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: want 2 tokens, got %d", ErrMalformedHeader, len(fields))
	}
	if len(fields) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrExtraHeaderTokens, sc.Text())
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	return n, m, nil
}

func parseEdgeLine(sc *bufio.Scanner, index int) ([]uint32, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrMissingEdgeLine, index, err)
		}
		return nil, fmt.Errorf("%w %d", ErrMissingEdgeLine, index)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w %d: empty line", ErrMalformedEdgeLine, index)
	}
	degree, err := strconv.Atoi(fields[0])
	if err != nil || degree < 0 {
		return nil, fmt.Errorf("%w %d: invalid degree %q", ErrMalformedEdgeLine, index, fields[0])
	}
	if len(fields) != degree+1 {
		return nil, fmt.Errorf("%w %d: declared degree %d, got %d vertex tokens", ErrMalformedEdgeLine, index, degree, len(fields)-1)
	}
	verts := make([]uint32, degree)
	for i, tok := range fields[1:] {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w %d: invalid vertex id %q", ErrMalformedEdgeLine, index, tok)
		}
		verts[i] = uint32(v)
	}
	return verts, nil
}
