package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	quadtree "github.com/rob05c/bbquadtree"
	"github.com/rob05c/bbquadtree/internal/config"
)

type benchItem struct {
	id  int
	box quadtree.BoundingBox
}

func (i benchItem) BoundingBox() quadtree.BoundingBox {
	return i.box
}

type benchResult struct {
	Inserted   int
	Stats      quadtree.Stats
	InsertTime time.Duration
	Queries    int
	Found      int64
	QueryTime  time.Duration
}

func newBenchCmd(log *logrus.Logger) *cobra.Command {
	var configPath string
	flags := config.Default()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random insertions and window queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			f := cmd.Flags()
			if f.Changed("points") {
				cfg.Points = flags.Points
			}
			if f.Changed("queries") {
				cfg.Queries = flags.Queries
			}
			if f.Changed("capacity") {
				cfg.Capacity = flags.Capacity
			}
			if f.Changed("max-depth") {
				cfg.MaxDepth = flags.MaxDepth
			}
			if f.Changed("workers") {
				cfg.Workers = flags.Workers
			}
			if f.Changed("seed") {
				cfg.Seed = flags.Seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			_, err := runBench(cmd.Context(), log, cmd.OutOrStdout(), cfg)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "TOML file with benchmark settings")
	f.IntVar(&flags.Points, "points", flags.Points, "number of items to insert")
	f.IntVar(&flags.Queries, "queries", flags.Queries, "number of window queries")
	f.IntVar(&flags.Capacity, "capacity", flags.Capacity, "leaf capacity")
	f.IntVar(&flags.MaxDepth, "max-depth", flags.MaxDepth, "depth at which leaves stop subdividing")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "goroutines sharing the queries")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "random seed, 0 for a clock based one")
	return cmd
}

func runBench(
	ctx context.Context, log *logrus.Logger, out io.Writer, cfg config.Config,
) (benchResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	root := cfg.Box()
	items := make([]benchItem, cfg.Points)
	for i := range items {
		p := randomPoint(rng, root)
		items[i] = benchItem{id: i, box: quadtree.NewBoundingBox(p.X, p.X+cfg.ItemSize, p.Y, p.Y+cfg.ItemSize)}
	}
	log.WithFields(logrus.Fields{
		"points":    cfg.Points,
		"capacity":  cfg.Capacity,
		"max_depth": cfg.MaxDepth,
		"seed":      seed,
	}).Debug("generated items")

	var res benchResult
	start := time.Now()
	tree := quadtree.New[benchItem](root, cfg.Capacity, quadtree.WithMaxDepth(cfg.MaxDepth)).InsertMany(items)
	res.InsertTime = time.Since(start)
	res.Inserted = len(items)
	res.Stats = quadtree.StatsOf(tree)
	log.WithFields(logrus.Fields{
		"leaves":   res.Stats.Leaves,
		"nodes":    res.Stats.Nodes,
		"slots":    res.Stats.Slots,
		"depth":    res.Stats.Depth,
		"overfull": res.Stats.Overfull,
	}).Info("built tree")
	fmt.Fprintf(out, "inserted %s items (%s leaf slots) in %s.\n",
		humanize.Comma(int64(res.Inserted)), humanize.Comma(int64(res.Stats.Slots)), res.InsertTime)

	// The tree is never modified, so the workers share it without locking.
	var found atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	start = time.Now()
	for w := 0; w < cfg.Workers; w++ {
		n := cfg.Queries / cfg.Workers
		if w < cfg.Queries%cfg.Workers {
			n++
		}
		wrng := rand.New(rand.NewSource(seed + int64(w) + 1))
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				c := randomPoint(wrng, root)
				box := quadtree.NewBoundingBox(c.X-cfg.QuerySize, c.X+cfg.QuerySize, c.Y-cfg.QuerySize, c.Y+cfg.QuerySize)
				found.Add(int64(len(quadtree.Query(box, tree))))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.QueryTime = time.Since(start)
	res.Queries = cfg.Queries
	res.Found = found.Load()
	fmt.Fprintf(out, "queried %s items via %s queries on %d workers in %s.\n",
		humanize.Comma(res.Found), humanize.Comma(int64(res.Queries)), cfg.Workers, res.QueryTime)
	return res, nil
}

func randomPoint(rng *rand.Rand, b quadtree.BoundingBox) quadtree.Point {
	return quadtree.Point{
		X: b.Horizontal.Low + rng.Float64()*b.Width(),
		Y: b.Vertical.Low + rng.Float64()*b.Height(),
	}
}
