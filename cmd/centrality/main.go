// Command centrality ranks the vertices (or edges) of an edge-list graph
// by a chosen centrality measure.
package main

func main() {
	Execute()
}
