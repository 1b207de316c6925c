package scenario

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quadtree "github.com/rob05c/bbquadtree"
)

func TestRunFixture(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "fixture.yaml"))
	require.NoError(t, err)

	tree, results, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())
	require.IsType(t, &quadtree.Node[Item]{}, tree)

	got := make(map[string][]string)
	for _, r := range results {
		got[r.Query+"/"+r.Mode] = r.Names()
	}
	assert.Equal(t, map[string][]string{
		"west/query":        {"e"},
		"west-buckets/find": {"b", "e"},
		"corner/point":      {"a"},
		"around-g/query":    {"g"},
	}, got)
}

func TestResolveGeoJSON(t *testing.T) {
	s, err := Load(strings.NewReader(`
bounds: [0, 10, 0, 10]
capacity: 2
items:
  - name: tri
    geojson: '{"type":"Polygon","coordinates":[[[1,1],[4,1],[2,6],[1,1]]]}'
`))
	require.NoError(t, err)
	items, err := s.ResolveItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, quadtree.NewBoundingBox(1, 4, 1, 6), items[0].Box)
}

func TestEmptyGeometryCollection(t *testing.T) {
	s, err := Load(strings.NewReader(`
bounds: [0, 10, 0, 10]
capacity: 2
items:
  - name: nothing
    geojson: '{"type":"GeometryCollection","geometries":[]}'
  - {name: a, box: [1, 2, 1, 2]}
queries:
  - {name: all, box: [0, 10, 0, 10]}
`))
	require.NoError(t, err)
	tree, results, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	require.Len(t, results, 1)
	assert.Equal(t, []string{"a"}, results[0].Names())
}

func TestMaxDepth(t *testing.T) {
	s, err := Load(strings.NewReader(`
bounds: [0, 8, 0, 8]
capacity: 1
max_depth: 2
items:
  - {name: x, box: [1, 2, 1, 2]}
  - {name: y, box: [1, 2, 1, 2]}
  - {name: z, box: [1, 2, 1, 2]}
`))
	require.NoError(t, err)
	tree, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, tree.MaxDepth())
	assert.Equal(t, quadtree.Stats{Nodes: 2, Leaves: 7, Slots: 3, Depth: 2, Overfull: 1}, quadtree.StatsOf(tree))
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "bounds: [0, 1, 0, 1]\ncapacity: 1\ncolour: red\n",
			want: "field colour not found",
		},
		{
			name: "bounds",
			yaml: "bounds: [0, 1]\n",
			want: "bounds: box needs 4 values",
		},
		{
			name: "missing name",
			yaml: "bounds: [0, 1, 0, 1]\nitems:\n  - box: [0, 1, 0, 1]\n",
			want: "missing name",
		},
		{
			name: "duplicate name",
			yaml: "bounds: [0, 1, 0, 1]\nitems:\n  - {name: a, box: [0, 1, 0, 1]}\n  - {name: a, box: [0, 1, 0, 1]}\n",
			want: `duplicate name "a"`,
		},
		{
			name: "box and geojson",
			yaml: "bounds: [0, 1, 0, 1]\nitems:\n  - {name: a, box: [0, 1, 0, 1], geojson: '{}'}\n",
			want: "exactly one of box and geojson",
		},
		{
			name: "neither box nor geojson",
			yaml: "bounds: [0, 1, 0, 1]\nitems:\n  - {name: a}\n",
			want: "exactly one of box and geojson",
		},
		{
			name: "query box",
			yaml: "bounds: [0, 1, 0, 1]\nqueries:\n  - {name: q, box: [0, 1, 0]}\n",
			want: "query 0 (q): box needs 4 values",
		},
		{
			name: "point",
			yaml: "bounds: [0, 1, 0, 1]\nqueries:\n  - {name: q, point: [0], mode: point}\n",
			want: "point needs 2 values",
		},
		{
			name: "mode",
			yaml: "bounds: [0, 1, 0, 1]\nqueries:\n  - {name: q, box: [0, 1, 0, 1], mode: nearest}\n",
			want: `unknown mode "nearest"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRunBadGeoJSON(t *testing.T) {
	s, err := Load(strings.NewReader(`
bounds: [0, 1, 0, 1]
items:
  - {name: broken, geojson: 'not json'}
`))
	require.NoError(t, err)
	_, _, err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `item "broken": decoding geojson`)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening scenario")
}
