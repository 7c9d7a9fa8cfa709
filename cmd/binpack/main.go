// Package main provides the CLI entrypoint for the binpack demo tool.
//
// flags.go centralizes the flag definitions shared across commands.
//
// solve.go implements the "solve" command: read an instance, run the
// configured heuristics, and report the single best packing found.
//
// sweep.go implements the "sweep" command: run every heuristic on one
// instance and report a leaderboard.
//
// report.go renders go-pretty tables for both commands.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "binpack",
		Usage: "A CLI demo for the binpack bin-packing search engine",
		Commands: []*cli.Command{
			solveCommand,
			sweepCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
