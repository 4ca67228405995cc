package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/centrality/core"
)

// readEdgeList parses a whitespace-separated edge list into a graph:
//
//	# comment
//	u v        edge u–v with weight core.DefaultWeight
//	u v 2.5    edge u–v with weight 2.5 (weighted graphs only)
//	u          isolated vertex u
//
// Blank lines and lines starting with '#' are skipped. Parse and graph
// errors are reported with their 1-based line number.
func readEdgeList(r io.Reader, gopts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case 2:
			if err := g.AddEdge(fields[0], fields[1], core.DefaultWeight); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNo, fields[2], err)
			}
			if err = g.AddEdge(fields[0], fields[1], w); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("line %d: want 1-3 fields, got %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}

	return g, nil
}
