package paths_test

import (
	"fmt"

	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/paths"
)

// ExampleFromSource counts the shortest paths across a diamond: D sits
// two hops from A, reachable through either middle vertex.
func ExampleFromSource() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", core.DefaultWeight)
	_ = g.AddEdge("A", "C", core.DefaultWeight)
	_ = g.AddEdge("B", "D", core.DefaultWeight)
	_ = g.AddEdge("C", "D", core.DefaultWeight)

	res, err := paths.FromSource(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist:", res.Dist["D"])
	fmt.Println("paths:", res.Count["D"])
	// Output:
	// dist: 2
	// paths: 2
}

// ExampleResult_PathTo reconstructs one concrete shortest path.
func ExampleResult_PathTo() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	res, _ := paths.FromSource(g, "A")
	path, _ := res.PathTo("C")
	fmt.Println(path)
	// Output:
	// [A B C]
}
