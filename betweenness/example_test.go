package betweenness_test

import (
	"fmt"

	"github.com/katalvlaran/centrality/betweenness"
	"github.com/katalvlaran/centrality/gen"
)

// ExampleCentrality scores a star graph: the hub mediates every pair of
// leaves, the leaves mediate nothing.
func ExampleCentrality() {
	g, _ := gen.Star(5)

	scores, err := betweenness.Centrality(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("hub  %.2f\n", scores["v0"])
	fmt.Printf("leaf %.2f\n", scores["v1"])
	// Output:
	// hub  1.00
	// leaf 0.00
}

// ExampleEdgeCentrality scores the edges of a path: the middle edge
// carries the most pair traffic.
func ExampleEdgeCentrality() {
	g, _ := gen.Path(4)

	scores, err := betweenness.EdgeCentrality(g, betweenness.WithNormalized(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(scores[betweenness.EdgeKey{From: "v0", To: "v1"}])
	fmt.Println(scores[betweenness.EdgeKey{From: "v1", To: "v2"}])
	// Output:
	// 3
	// 4
}
