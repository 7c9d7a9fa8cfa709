package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	bp "github.com/packsmith/binpack"
	"github.com/urfave/cli/v2"
)

var solveCommand = &cli.Command{
	Name:    "solve",
	Aliases: []string{"s"},
	Usage:   "Pack a list of item sizes into the fewest bins of the given capacity",
	Flags:   flagsSlice("capacity", "items", "heuristics", "time", "parallel", "seed", "log-file"),
	Action:  solveAction,
}

func solveAction(c *cli.Context) error {
	capacity := c.Int("capacity")
	sizes, err := parseItems(c.String("items"))
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		return fmt.Errorf("no items given; pass --items 10,20,30")
	}

	opts := bp.DefaultOptions()
	if names := c.String("heuristics"); names != "" {
		opts.Heuristics = strings.Split(names, ",")
	}
	if t := c.Duration("time"); t > 0 {
		opts.TimeMax = t
	}
	opts.Parallel = c.Bool("parallel")
	if s := c.Int64("seed"); s != 0 {
		opts.Seed = s
	}

	items := bp.NewItemsFromInts(sizes)

	var jsonl *os.File
	if path := c.String("log-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		jsonl = f
	}

	start := time.Now()
	var packing bp.Packing
	var fitness int
	var status bp.Status
	if jsonl != nil {
		packing, fitness, status, err = bp.SolveWithLogging(capacity, items, opts, os.Stdout, jsonl)
	} else {
		packing, fitness, status, err = bp.Solve(capacity, items, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nsolved in %v\n", time.Since(start))
	renderPacking(os.Stdout, packing, fitness, bp.TheoreticalMinimum(items, capacity), status)
	return nil
}

func parseItems(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid item size %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
