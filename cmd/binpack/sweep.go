package main

import (
	"fmt"
	"os"
	"strings"

	bp "github.com/packsmith/binpack"
	"github.com/urfave/cli/v2"
)

// sweepCommand runs every named heuristic and prints a leaderboard,
// instead of solve's single best-of-run report — useful for comparing
// flavors against each other on one instance.
var sweepCommand = &cli.Command{
	Name:    "sweep",
	Aliases: []string{"w"},
	Usage:   "Run every heuristic on one instance and report a leaderboard",
	Flags:   flagsSlice("capacity", "items", "heuristics", "time", "parallel", "seed"),
	Action:  sweepAction,
}

func sweepAction(c *cli.Context) error {
	capacity := c.Int("capacity")
	sizes, err := parseItems(c.String("items"))
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		return fmt.Errorf("no items given; pass --items 10,20,30")
	}

	items := bp.NewItemsFromInts(sizes)

	opts := bp.DefaultOptions()
	names := bp.HeuristicNames()
	if h := c.String("heuristics"); h != "" {
		names = strings.Split(h, ",")
	}
	if t := c.Duration("time"); t > 0 {
		opts.TimeMax = t
	}
	if s := c.Int64("seed"); s != 0 {
		opts.Seed = s
	}

	var results []bp.DriverResult
	if c.Bool("parallel") {
		results = bp.RunParallel(items, capacity, names, opts, nil)
	} else {
		results = bp.RunSequential(items, capacity, names, opts, nil)
	}

	renderResults(os.Stdout, results)
	return nil
}
