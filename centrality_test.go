package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centrality"
	"github.com/katalvlaran/centrality/betweenness"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/degree"
	"github.com/katalvlaran/centrality/eigen"
	"github.com/katalvlaran/centrality/gen"
)

func TestKind_NamesRoundTrip(t *testing.T) {
	for _, k := range centrality.Kinds() {
		parsed, err := centrality.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := centrality.ParseKind("pagerank2")
	require.ErrorIs(t, err, centrality.ErrUnknownKind)
	_, err = centrality.ParseKind("")
	require.ErrorIs(t, err, centrality.ErrUnknownKind)
}

func TestKind_StringOutsideSet(t *testing.T) {
	require.Equal(t, "unknown", centrality.Kind(-1).String())
	require.Equal(t, "unknown", centrality.Kind(99).String())
}

func TestCompute_UnknownKind(t *testing.T) {
	g, err := gen.Path(3)
	require.NoError(t, err)

	_, err = centrality.Compute(g, centrality.Kind(99))
	require.ErrorIs(t, err, centrality.ErrUnknownKind)
}

func TestCompute_MatchesSubpackages(t *testing.T) {
	g, err := gen.Wheel(6)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.Degree)
	require.NoError(t, err)
	require.Equal(t, centrality.Degree, res.Kind)
	require.Nil(t, res.Edges)

	direct, err := degree.Centrality(g)
	require.NoError(t, err)
	require.Equal(t, direct, res.Nodes)
}

func TestCompute_EdgeBetweennessPopulatesEdges(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)

	res, err := centrality.Compute(g, centrality.EdgeBetweenness)
	require.NoError(t, err)
	require.Nil(t, res.Nodes)
	require.Len(t, res.Edges, 3)
	require.Contains(t, res.Edges, betweenness.EdgeKey{From: "v0", To: "v1"})
}

func TestCompute_OptionsReachMeasures(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)

	// normalization toggle flows into betweenness
	norm, err := centrality.Compute(g, centrality.Betweenness)
	require.NoError(t, err)
	raw, err := centrality.Compute(g, centrality.Betweenness, centrality.WithNormalized(false))
	require.NoError(t, err)
	require.InDelta(t, raw.Nodes["v1"]/3, norm.Nodes["v1"], 1e-12)

	// solver knobs flow into the eigen family
	_, err = centrality.Compute(g, centrality.PageRank, centrality.WithDamping(2))
	require.ErrorIs(t, err, eigen.ErrOptionViolation)
	_, err = centrality.Compute(g, centrality.Katz, centrality.WithMaxIter(-1))
	require.ErrorIs(t, err, eigen.ErrOptionViolation)
}

func TestCompute_NilGraphPropagates(t *testing.T) {
	_, err := centrality.Compute(nil, centrality.Closeness)
	require.Error(t, err)
	_, err = centrality.Compute(nil, centrality.Degree)
	require.ErrorIs(t, err, degree.ErrNilGraph)
}

// TestCompute_IsolatedVertexRoundTrip checks that adding and then
// removing a vertex that never gains an edge leaves every other vertex's
// score exactly where it was, for every measure.
func TestCompute_IsolatedVertexRoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, g.AddEdge("B", "C", core.DefaultWeight))
	require.NoError(t, g.AddEdge("C", "A", core.DefaultWeight))
	require.NoError(t, g.AddEdge("C", "D", core.DefaultWeight))

	baseline := make(map[centrality.Kind]*centrality.Result, len(centrality.Kinds()))
	for _, k := range centrality.Kinds() {
		res, err := centrality.Compute(g, k)
		require.NoError(t, err, "kind %s", k)
		baseline[k] = res
	}

	require.NoError(t, g.AddVertex("Q"))
	require.NoError(t, g.RemoveVertex("Q"))

	for _, k := range centrality.Kinds() {
		res, err := centrality.Compute(g, k)
		require.NoError(t, err, "kind %s", k)

		if k == centrality.EdgeBetweenness {
			require.Len(t, res.Edges, len(baseline[k].Edges), "kind %s", k)
			for key, want := range baseline[k].Edges {
				require.InDelta(t, want, res.Edges[key], 1e-9, "kind %s edge %v", k, key)
			}
			continue
		}
		require.Len(t, res.Nodes, len(baseline[k].Nodes), "kind %s", k)
		for id, want := range baseline[k].Nodes {
			require.InDelta(t, want, res.Nodes[id], 1e-9, "kind %s vertex %s", k, id)
		}
	}
}

func TestCompute_AllNodeKindsCoverEveryVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.DefaultWeight))
	require.NoError(t, g.AddEdge("B", "C", core.DefaultWeight))

	for _, k := range centrality.Kinds() {
		if k == centrality.EdgeBetweenness {
			continue
		}
		res, err := centrality.Compute(g, k)
		require.NoError(t, err, "kind %s", k)
		require.Len(t, res.Nodes, 3, "kind %s", k)
	}
}
