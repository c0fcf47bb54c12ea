package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempInput(t *testing.T, contents string) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "findminhs-input-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	reopened, err := os.Open(f.Name())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	return reopened
}

func captureStdout(t *testing.T) (*os.File, func() string) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "findminhs-output-*.txt")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, func() string {
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(data)
	}
}

func TestRun_TextOutputOnTriangle(t *testing.T) {
	in := writeTempInput(t, "3 3\n2 0 1\n2 1 2\n2 0 2\n")
	out, read := captureStdout(t)

	code := run([]string{in.Name()}, nil, out)

	require.Equal(t, 0, code)
	require.Contains(t, read(), "hitting set (size 2)")
}

func TestRun_JSONOutput(t *testing.T) {
	in := writeTempInput(t, "3 3\n2 0 1\n2 1 2\n2 0 2\n")
	out, read := captureStdout(t)

	code := run([]string{"-format", "json", in.Name()}, nil, out)

	require.Equal(t, 0, code)
	require.True(t, strings.Contains(read(), `"hs_size":2`))
}

func TestRun_UnknownFormatIsAnError(t *testing.T) {
	in := writeTempInput(t, "2 1\n2 0 1\n")
	out, _ := captureStdout(t)

	code := run([]string{"-format", "yaml", in.Name()}, nil, out)

	require.NotEqual(t, 0, code)
}

func TestRun_MissingFileIsAnError(t *testing.T) {
	out, _ := captureStdout(t)

	code := run([]string{"/nonexistent/path/findminhs-test"}, nil, out)

	require.NotEqual(t, 0, code)
}

func TestRun_MalformedInputIsAnError(t *testing.T) {
	in := writeTempInput(t, "not a header\n")
	out, _ := captureStdout(t)

	code := run([]string{in.Name()}, nil, out)

	require.NotEqual(t, 0, code)
}
