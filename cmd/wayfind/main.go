// Command wayfind runs the engine's algorithms over a plain-text edge list.
//
// Input format (file or stdin): the first non-empty line holds the vertex
// count V; every following non-empty line holds one edge as three
// whitespace-separated fields "from to weight" with 0 ≤ from,to < V.
// Lines starting with '#' are comments.
//
// Usage:
//
//	wayfind --algo dijkstra --source 0 [--target 4] [--directed] [--input graph.txt]
//	wayfind --algo bellman-ford --source 0 --directed --input graph.txt
//	wayfind --algo floyd-warshall --input graph.txt
//	wayfind --algo kruskal --input graph.txt
//	wayfind --algo prim --source 0 --input graph.txt
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/olekrav/wayfind/bellmanford"
	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/dijkstra"
	"github.com/olekrav/wayfind/matrix"
	"github.com/olekrav/wayfind/mst"
)

func main() {
	var (
		algo     = pflag.String("algo", "dijkstra", "algorithm: dijkstra | bellman-ford | floyd-warshall | kruskal | prim")
		source   = pflag.Int("source", 0, "source vertex for dijkstra, bellman-ford and prim")
		target   = pflag.Int("target", -1, "optional target vertex: print the reconstructed path")
		directed = pflag.Bool("directed", false, "treat edges as one-way")
		input    = pflag.String("input", "-", "edge-list file, or - for stdin")
	)
	pflag.Parse()

	if err := run(*algo, *source, *target, *directed, *input, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wayfind:", err)
		os.Exit(1)
	}
}

func run(algo string, source, target int, directed bool, input string, out io.Writer) error {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	g, err := parseGraph(r, directed)
	if err != nil {
		return err
	}

	switch algo {
	case "dijkstra":
		res, err := dijkstra.Run(g, dijkstra.Source(source))
		if err != nil {
			return err
		}
		printDistances(out, res.Dist)
		return printPath(out, target, res.PathTo)
	case "bellman-ford":
		res, err := bellmanford.Run(g, bellmanford.Source(source))
		if errors.Is(err, bellmanford.ErrNegativeCycle) {
			fmt.Fprintln(out, "negative cycle reachable from source")
			return nil
		}
		if err != nil {
			return err
		}
		printDistances(out, res.Dist)
		return printPath(out, target, res.PathTo)
	case "floyd-warshall":
		d, err := matrix.AllPairs(g)
		if err != nil {
			return err
		}
		if bad := matrix.NegativeCycleVertices(d); len(bad) > 0 {
			fmt.Fprintln(out, "negative cycle through vertices:", bad)
			return nil
		}
		for i := 0; i < d.Order(); i++ {
			row, err := d.Row(i)
			if err != nil {
				return err
			}
			printDistances(out, row)
		}
		return nil
	case "kruskal", "prim":
		var res mst.Result
		if algo == "kruskal" {
			res, err = mst.Kruskal(g)
		} else {
			res, err = mst.Prim(g, source)
		}
		if err != nil {
			return err
		}
		for _, e := range res.Edges {
			fmt.Fprintf(out, "%d %d %g\n", e.From, e.To, e.Weight)
		}
		fmt.Fprintf(out, "total=%g spanning=%v\n", res.TotalWeight, res.IsSpanningTree)
		return nil
	default:
		return fmt.Errorf("unknown --algo %q", algo)
	}
}

// parseGraph reads "V" then "from to weight" lines into a core.Graph.
// The CLI always permits parallel edges and self-loops; the engines cope.
func parseGraph(r io.Reader, directed bool) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	var g *core.Graph
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if g == nil {
			// First significant line: the vertex count.
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: want a single vertex count, got %q", line, text)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex count: %w", line, err)
			}
			g, err = core.NewGraph(n,
				core.WithDirected(directed), core.WithLoops(), core.WithMultiEdges())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"from to weight\", got %q", line, text)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: from: %w", line, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: to: %w", line, err)
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: weight: %w", line, err)
		}
		if err := g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New("empty input: missing vertex count")
	}

	return g, nil
}

// printDistances writes one whitespace-separated distance row, rendering
// +Inf as "inf".
func printDistances(out io.Writer, dist []float64) {
	parts := make([]string, len(dist))
	for i, d := range dist {
		if math.IsInf(d, 1) {
			parts[i] = "inf"
		} else {
			parts[i] = strconv.FormatFloat(d, 'g', -1, 64)
		}
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
}

// printPath prints the reconstructed path to target when one was requested.
func printPath(out io.Writer, target int, pathTo func(int) ([]int, error)) error {
	if target < 0 {
		return nil
	}
	path, err := pathTo(target)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "path:", path)

	return nil
}
