package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/centrality"
	"github.com/katalvlaran/centrality/core"
)

// ExampleCompute ranks the vertices of a three-vertex path: the middle
// vertex carries every shortest path between the endpoints.
func ExampleCompute() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", core.DefaultWeight)
	_ = g.AddEdge("B", "C", core.DefaultWeight)

	res, err := centrality.Compute(g, centrality.Betweenness)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range g.Vertices() {
		fmt.Printf("%s %.2f\n", id, res.Nodes[id])
	}
	// Output:
	// A 0.00
	// B 1.00
	// C 0.00
}

// ExampleParseKind resolves the CLI vocabulary to Kind values.
func ExampleParseKind() {
	k, _ := centrality.ParseKind("pagerank")
	fmt.Println(k)

	_, err := centrality.ParseKind("celebrity")
	fmt.Println(err)
	// Output:
	// pagerank
	// centrality: unknown centrality kind: "celebrity"
}
