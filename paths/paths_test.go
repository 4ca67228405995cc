package paths_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/paths"
)

// TestFromSource_Errors verifies that invalid inputs and options are rejected.
func TestFromSource_Errors(t *testing.T) {
	// nil graph
	if _, err := paths.FromSource(nil, "A"); !errors.Is(err, paths.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	// empty source
	g := core.NewGraph()
	if _, err := paths.FromSource(g, ""); !errors.Is(err, paths.ErrEmptySource) {
		t.Errorf("empty source: want ErrEmptySource, got %v", err)
	}
	// source not found
	if _, err := paths.FromSource(g, "missing"); !errors.Is(err, paths.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	// negative epsilon is a violation
	g.AddVertex("A")
	if _, err := paths.FromSource(g, "A", paths.WithEpsilon(-1)); !errors.Is(err, paths.ErrOptionViolation) {
		t.Errorf("negative epsilon: want ErrOptionViolation, got %v", err)
	}
}

// TestFromSource_NegativeWeight verifies the upfront weight scan.
func TestFromSource_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", -2)
	if _, err := paths.FromSource(g, "A"); !errors.Is(err, paths.ErrNegativeWeight) {
		t.Errorf("negative weight: want ErrNegativeWeight, got %v", err)
	}
}

// TestFromSource_SingleVertex covers the trivial one-vertex graph.
func TestFromSource_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached() != 1 {
		t.Errorf("Reached = %d; want 1", res.Reached())
	}
	if d := res.Dist["A"]; d != 0 {
		t.Errorf("Dist[A] = %v; want 0", d)
	}
	if c := res.Count["A"]; c != 1 {
		t.Errorf("Count[A] = %v; want 1", c)
	}
}

// TestFromSource_DiamondCounts checks path counting through a diamond:
// two shortest A→D paths, one through each middle vertex.
func TestFromSource_DiamondCounts(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)

	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Dist["D"]; d != 2 {
		t.Errorf("Dist[D] = %v; want 2", d)
	}
	if c := res.Count["D"]; c != 2 {
		t.Errorf("Count[D] = %v; want 2", c)
	}
	preds := res.Pred["D"]
	if len(preds) != 2 {
		t.Fatalf("Pred[D] = %v; want two predecessors", preds)
	}
	seen := map[string]bool{preds[0]: true, preds[1]: true}
	if !seen["B"] || !seen["C"] {
		t.Errorf("Pred[D] = %v; want {B,C}", preds)
	}
}

// TestFromSource_DirectedReachability ensures directed edges are one-way
// and unreachable vertices are omitted entirely.
func TestFromSource_DirectedReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "A", 1)

	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached() != 2 {
		t.Errorf("Reached = %d; want 2 (A and B)", res.Reached())
	}
	if _, ok := res.Dist["C"]; ok {
		t.Errorf("Dist[C] present; C is unreachable from A and must be omitted")
	}
}

// TestFromSource_WeightedTies checks epsilon-tolerant tie counting on a
// weighted graph with two equal-cost routes.
func TestFromSource_WeightedTies(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "C", 2)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Dist["C"]; d != 2 {
		t.Errorf("Dist[C] = %v; want 2", d)
	}
	if c := res.Count["C"]; c != 2 {
		t.Errorf("Count[C] = %v; want 2 (direct and via B)", c)
	}
}

// TestFromSource_EpsilonTolerance verifies that near-ties within epsilon
// count as ties, and that WithEpsilon(0) restores exact comparison.
func TestFromSource_EpsilonTolerance(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		g.AddEdge("A", "C", 1.0)
		g.AddEdge("A", "B", 0.5)
		g.AddEdge("B", "C", 0.5+5e-11) // route longer by 5e-11
		return g
	}

	// default epsilon (1e-9) treats the two routes as tied
	res, err := paths.FromSource(build(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if c := res.Count["C"]; c != 2 {
		t.Errorf("default epsilon: Count[C] = %v; want 2", c)
	}

	// exact comparison sees a single shortest route
	res, err = paths.FromSource(build(), "A", paths.WithEpsilon(0))
	if err != nil {
		t.Fatal(err)
	}
	if c := res.Count["C"]; c != 1 {
		t.Errorf("epsilon 0: Count[C] = %v; want 1", c)
	}
}

// TestFromSource_OrderNonDecreasing verifies the visit-order contract on
// both engines.
func TestFromSource_OrderNonDecreasing(t *testing.T) {
	unweighted := core.NewGraph()
	unweighted.AddEdge("A", "B", 1)
	unweighted.AddEdge("B", "C", 1)
	unweighted.AddEdge("A", "D", 1)

	weighted := core.NewGraph(core.WithWeighted())
	weighted.AddEdge("A", "B", 3)
	weighted.AddEdge("B", "C", 1)
	weighted.AddEdge("A", "C", 5)

	for name, g := range map[string]*core.Graph{"bfs": unweighted, "dijkstra": weighted} {
		res, err := paths.FromSource(g, "A")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.Order[0] != "A" {
			t.Errorf("%s: Order[0] = %s; want A", name, res.Order[0])
		}
		prev := math.Inf(-1)
		for _, id := range res.Order {
			if res.Dist[id] < prev {
				t.Errorf("%s: Order not non-decreasing at %s", name, id)
			}
			prev = res.Dist[id]
		}
	}
}

// TestFromSource_EnginesAgreeOnUnitWeights runs BFS and Dijkstra over the
// same topology and expects identical distances and counts.
func TestFromSource_EnginesAgreeOnUnitWeights(t *testing.T) {
	edges := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}}

	unweighted := core.NewGraph()
	weighted := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		unweighted.AddEdge(e[0], e[1], 1)
		weighted.AddEdge(e[0], e[1], 1)
	}

	b, err := paths.FromSource(unweighted, "A")
	if err != nil {
		t.Fatal(err)
	}
	d, err := paths.FromSource(weighted, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b.Dist, d.Dist) {
		t.Errorf("Dist mismatch:\nbfs:      %v\ndijkstra: %v", b.Dist, d.Dist)
	}
	if !reflect.DeepEqual(b.Count, d.Count) {
		t.Errorf("Count mismatch:\nbfs:      %v\ndijkstra: %v", b.Count, d.Count)
	}
}

// TestFromSource_SelfLoopIgnored ensures loops never join shortest paths.
func TestFromSource_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddEdge("A", "A", 1)
	g.AddEdge("A", "B", 1)

	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if c := res.Count["B"]; c != 1 {
		t.Errorf("Count[B] = %v; want 1", c)
	}
	if c := res.Count["A"]; c != 1 {
		t.Errorf("Count[A] = %v; want 1 (loop must not inflate source count)", c)
	}
}

// TestPathTo covers reconstruction for reachable and unreachable targets.
func TestPathTo(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddVertex("Z")

	res, err := paths.FromSource(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if path, err = res.PathTo("A"); err != nil || !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("PathTo(A) = %v, %v; want [A], nil", path, err)
	}
	if _, err = res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z): expected error for unreachable target")
	}
}
