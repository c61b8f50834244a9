package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGraph = `# five cities
5
0 1 4
0 2 2
1 2 1
1 3 5
2 3 8
2 4 10
3 4 2
`

func TestParseGraph(t *testing.T) {
	g, err := parseGraph(strings.NewReader(sampleGraph), true)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.Directed())
}

func TestParseGraph_Malformed(t *testing.T) {
	_, err := parseGraph(strings.NewReader(""), false)
	assert.Error(t, err)

	_, err = parseGraph(strings.NewReader("3\n0 1\n"), false)
	assert.Error(t, err)

	_, err = parseGraph(strings.NewReader("3\n0 9 1\n"), false)
	assert.Error(t, err)
}

func TestRun_DijkstraWithPath(t *testing.T) {
	tmp := t.TempDir() + "/g.txt"
	require.NoError(t, writeFile(tmp, sampleGraph))

	var out bytes.Buffer
	require.NoError(t, run("dijkstra", 0, 4, true, tmp, &out))
	assert.Equal(t, "0 4 2 9 11\npath: [0 1 3 4]\n", out.String())
}

func TestRun_Kruskal(t *testing.T) {
	tmp := t.TempDir() + "/g.txt"
	require.NoError(t, writeFile(tmp, "3\n0 1 1\n1 2 2\n0 2 3\n"))

	var out bytes.Buffer
	require.NoError(t, run("kruskal", 0, -1, false, tmp, &out))
	assert.Contains(t, out.String(), "total=3 spanning=true")
}

func TestRun_UnknownAlgo(t *testing.T) {
	tmp := t.TempDir() + "/g.txt"
	require.NoError(t, writeFile(tmp, "1\n"))

	var out bytes.Buffer
	assert.Error(t, run("a-star", 0, -1, false, tmp, &out))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
