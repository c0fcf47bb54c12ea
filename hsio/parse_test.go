package hsio_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/findminhs/hsio"
	"github.com/katalvlaran/findminhs/solver"
	"github.com/stretchr/testify/require"
)

func TestParse_Triangle(t *testing.T) {
	input := "3 3\n2 0 1\n2 1 2\n2 0 2\n"
	inst, err := hsio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, inst.NumNodes())
	require.Equal(t, 3, inst.NumEdges())
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, hsio.ErrMissingHeader)
}

func TestParse_ExtraHeaderTokens(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("3 3 7\n"))
	require.ErrorIs(t, err, hsio.ErrExtraHeaderTokens)
}

func TestParse_MalformedHeaderToken(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("x 3\n"))
	require.ErrorIs(t, err, hsio.ErrMalformedHeader)
}

func TestParse_MissingEdgeLine(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("2 2\n2 0 1\n"))
	require.ErrorIs(t, err, hsio.ErrMissingEdgeLine)
}

func TestParse_DegreeMismatch(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("3 1\n2 0 1 2\n"))
	require.ErrorIs(t, err, hsio.ErrMalformedEdgeLine)
}

func TestParse_ZeroDegreeRejectedByInstance(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("2 1\n0\n"))
	require.Error(t, err)
}

func TestParse_VertexOutOfRangeRejectedByInstance(t *testing.T) {
	_, err := hsio.Parse(strings.NewReader("2 1\n1 5\n"))
	require.Error(t, err)
}

func TestWriteText_And_WriteJSON(t *testing.T) {
	inst, err := hsio.Parse(strings.NewReader("3 3\n2 0 1\n2 1 2\n2 0 2\n"))
	require.NoError(t, err)

	result, hs := solver.Solve(inst, rand.New(rand.NewSource(1)), solver.Flags{})

	var textBuf bytes.Buffer
	require.NoError(t, hsio.WriteText(&textBuf, result, hs))
	require.Contains(t, textBuf.String(), "hitting set (size 2)")

	var jsonBuf bytes.Buffer
	require.NoError(t, hsio.WriteJSON(&jsonBuf, result, hs))
	require.Contains(t, jsonBuf.String(), `"hs_size":2`)
}
