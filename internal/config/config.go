// Package config holds the settings of the benchmark driver.
package config

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	quadtree "github.com/rob05c/bbquadtree"
)

// Config is read from a TOML file such as:
//
//	bounds = [50.0, 150.0, 50.0, 150.0]
//	capacity = 4
//	points = 1000000
//	queries = 100
//	query_size = 5.0
type Config struct {
	// Bounds is minX, maxX, minY, maxY of the root.
	Bounds   []float64 `toml:"bounds"`
	Capacity int       `toml:"capacity"`
	MaxDepth int       `toml:"max_depth"`
	// Points is the number of items inserted.
	Points int `toml:"points"`
	// ItemSize is the width and height of every inserted item.
	ItemSize float64 `toml:"item_size"`
	Queries  int     `toml:"queries"`
	// QuerySize is the half extent of each query window.
	QuerySize float64 `toml:"query_size"`
	Workers   int     `toml:"workers"`
	// Seed for the random generator; 0 picks one from the clock.
	Seed int64 `toml:"seed"`
}

func Default() Config {
	return Config{
		Bounds:    []float64{50.0, 150.0, 50.0, 150.0},
		Capacity:  4,
		MaxDepth:  quadtree.DefaultMaxDepth,
		Points:    1000000,
		ItemSize:  0.1,
		Queries:   100,
		QuerySize: 5.0,
		Workers:   runtime.NumCPU(),
	}
}

// Load reads path over the defaults. Keys the file sets replace the
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("%s: unknown keys %v", path, undecoded)
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

func (c Config) Validate() error {
	if len(c.Bounds) != 4 {
		return errors.Newf("bounds needs 4 values (minX, maxX, minY, maxY), got %d", len(c.Bounds))
	}
	if c.Bounds[0] >= c.Bounds[1] || c.Bounds[2] >= c.Bounds[3] {
		return errors.Newf("bounds %v are empty or inverted", c.Bounds)
	}
	if c.Capacity < 1 {
		return errors.Newf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.MaxDepth < 0 {
		return errors.Newf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Points < 0 || c.Queries < 0 {
		return errors.Newf("points (%d) and queries (%d) must not be negative", c.Points, c.Queries)
	}
	if c.ItemSize < 0 || c.QuerySize < 0 {
		return errors.Newf("item_size (%g) and query_size (%g) must not be negative", c.ItemSize, c.QuerySize)
	}
	if c.Workers < 1 {
		return errors.Newf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Box returns the root bounds. Call Validate first.
func (c Config) Box() quadtree.BoundingBox {
	return quadtree.NewBoundingBox(c.Bounds[0], c.Bounds[1], c.Bounds[2], c.Bounds[3])
}
