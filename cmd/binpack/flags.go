package main

import "github.com/urfave/cli/v2"

// Centralized map of CLI flags, mirroring the teacher's appFlagsMap
// pattern: flag definitions live in one place and commands pick the subset
// they need via flagsSlice.
var appFlagsMap = map[string]cli.Flag{
	"capacity": &cli.IntFlag{
		Name:    "capacity",
		Aliases: []string{"c"},
		Usage:   "bin capacity",
		Value:   100,
	},
	"items": &cli.StringFlag{
		Name:    "items",
		Aliases: []string{"i"},
		Usage:   "comma-separated item sizes, eg: 10,20,30,40",
	},
	"heuristics": &cli.StringFlag{
		Name:    "heuristics",
		Aliases: []string{"H"},
		Usage:   "comma-separated heuristic names to try; empty means every registered heuristic",
	},
	"time": &cli.DurationFlag{
		Name:    "time",
		Aliases: []string{"t"},
		Usage:   "overall time budget",
		Value:   0,
	},
	"parallel": &cli.BoolFlag{
		Name:    "parallel",
		Aliases: []string{"p"},
		Usage:   "run heuristics concurrently instead of sequentially",
	},
	"seed": &cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed (0 derives one from the current time)",
	},
	"log-file": &cli.StringFlag{
		Name:  "log-file",
		Usage: "JSONL log file path; empty disables structured logging",
	},
}

func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
