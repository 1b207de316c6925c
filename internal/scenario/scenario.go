// Package scenario loads a tree and a list of queries from YAML and runs
// the queries against the tree.
//
//	bounds: [-10, 10, -10, 10]
//	capacity: 4
//	items:
//	  - name: a
//	    box: [0, 1, 0, 1]
//	  - name: b
//	    geojson: '{"type":"Point","coordinates":[3,4]}'
//	queries:
//	  - name: near-a
//	    box: [0.5, 0.5, 0.5, 0.5]
//	    mode: find
//
// Boxes are minX, maxX, minY, maxY. A GeoJSON item is indexed by the bounds
// of its geometry.
package scenario

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"gopkg.in/yaml.v3"

	quadtree "github.com/rob05c/bbquadtree"
)

// Query modes.
const (
	// ModeQuery returns the distinct items whose box intersects the query box.
	ModeQuery = "query"
	// ModeFind returns the leaf buckets the query box falls in, unfiltered.
	ModeFind = "find"
	// ModePoint returns the distinct items whose box contains the query point.
	ModePoint = "point"
)

// Item is a named box stored in the tree.
type Item struct {
	Name string
	Box  quadtree.BoundingBox
}

func (i Item) BoundingBox() quadtree.BoundingBox {
	return i.Box
}

type Scenario struct {
	Bounds   []float64   `yaml:"bounds"`
	Capacity int         `yaml:"capacity"`
	MaxDepth int         `yaml:"max_depth,omitempty"`
	Items    []ItemSpec  `yaml:"items"`
	Queries  []QuerySpec `yaml:"queries"`
}

type ItemSpec struct {
	Name    string    `yaml:"name"`
	Box     []float64 `yaml:"box,omitempty"`
	GeoJSON string    `yaml:"geojson,omitempty"`
}

type QuerySpec struct {
	Name  string    `yaml:"name"`
	Box   []float64 `yaml:"box,omitempty"`
	Point []float64 `yaml:"point,omitempty"`
	Mode  string    `yaml:"mode,omitempty"`
}

// Result holds the items a query returned, in tree order.
type Result struct {
	Query string
	Mode  string
	Items []Item
}

// Names returns the names of the result items.
func (r Result) Names() []string {
	names := make([]string, len(r.Items))
	for i, item := range r.Items {
		names[i] = item.Name
	}
	return names
}

func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scenario")
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Validate checks the shape of the scenario. Box values themselves are not
// checked: inverted and empty boxes are legal, they just match nothing.
func (s *Scenario) Validate() error {
	if _, err := parseBox(s.Bounds); err != nil {
		return errors.Wrap(err, "bounds")
	}
	seen := make(map[string]bool, len(s.Items))
	for i, spec := range s.Items {
		if spec.Name == "" {
			return errors.Newf("item %d: missing name", i)
		}
		if seen[spec.Name] {
			return errors.Newf("item %d: duplicate name %q", i, spec.Name)
		}
		seen[spec.Name] = true
		if (spec.Box == nil) == (spec.GeoJSON == "") {
			return errors.Newf("item %q: exactly one of box and geojson is required", spec.Name)
		}
	}
	for i, q := range s.Queries {
		switch q.mode() {
		case ModeQuery, ModeFind:
			if _, err := parseBox(q.Box); err != nil {
				return errors.Wrapf(err, "query %d (%s)", i, q.Name)
			}
		case ModePoint:
			if len(q.Point) != 2 {
				return errors.Newf("query %d (%s): point needs 2 values, got %d", i, q.Name, len(q.Point))
			}
		default:
			return errors.Newf("query %d (%s): unknown mode %q", i, q.Name, q.Mode)
		}
	}
	return nil
}

func (q QuerySpec) mode() string {
	if q.Mode == "" {
		return ModeQuery
	}
	return q.Mode
}

func parseBox(v []float64) (quadtree.BoundingBox, error) {
	if len(v) != 4 {
		return quadtree.BoundingBox{}, errors.Newf("box needs 4 values (minX, maxX, minY, maxY), got %d", len(v))
	}
	return quadtree.NewBoundingBox(v[0], v[1], v[2], v[3]), nil
}

// ResolveItems resolves the item specs in file order.
func (s *Scenario) ResolveItems() ([]Item, error) {
	items := make([]Item, 0, len(s.Items))
	for _, spec := range s.Items {
		item := Item{Name: spec.Name}
		if spec.GeoJSON != "" {
			var g geom.T
			if err := geojson.Unmarshal([]byte(spec.GeoJSON), &g); err != nil {
				return nil, errors.Wrapf(err, "item %q: decoding geojson", spec.Name)
			}
			item.Box = quadtree.BoxOf(g)
		} else {
			box, err := parseBox(spec.Box)
			if err != nil {
				return nil, errors.Wrapf(err, "item %q", spec.Name)
			}
			item.Box = box
		}
		items = append(items, item)
	}
	return items, nil
}

// Build inserts the items, in file order, into an empty tree.
func (s *Scenario) Build() (quadtree.QuadTree[Item], error) {
	bounds, err := parseBox(s.Bounds)
	if err != nil {
		return nil, errors.Wrap(err, "bounds")
	}
	items, err := s.ResolveItems()
	if err != nil {
		return nil, err
	}
	var opts []quadtree.Option
	if s.MaxDepth > 0 {
		opts = append(opts, quadtree.WithMaxDepth(s.MaxDepth))
	}
	return quadtree.New[Item](bounds, s.Capacity, opts...).InsertMany(items), nil
}

// Run builds the tree and evaluates every query against it.
func (s *Scenario) Run() (quadtree.QuadTree[Item], []Result, error) {
	tree, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	results := make([]Result, 0, len(s.Queries))
	for _, q := range s.Queries {
		results = append(results, Evaluate(tree, q))
	}
	return tree, results, nil
}

// Evaluate runs a single validated query against tree.
func Evaluate(tree quadtree.QuadTree[Item], q QuerySpec) Result {
	r := Result{Query: q.Name, Mode: q.mode()}
	switch r.Mode {
	case ModeFind:
		box, _ := parseBox(q.Box)
		r.Items = tree.Find(box)
	case ModePoint:
		r.Items = quadtree.QueryPoint(quadtree.Point{X: q.Point[0], Y: q.Point[1]}, tree)
	default:
		box, _ := parseBox(q.Box)
		r.Items = quadtree.Query(box, tree)
	}
	return r
}
