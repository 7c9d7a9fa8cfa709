package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	bp "github.com/packsmith/binpack"
)

// renderPacking prints a summary table of the winning packing: one row per
// bin plus a totals row, followed by the fitness-vs-target verdict.
func renderPacking(w io.Writer, packing bp.Packing, fitness, target int, status bp.Status) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Bin ID", "Items", "Load"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for i, bin := range packing {
		tw.AppendRow(table.Row{i + 1, bin.ID.String()[:8], fmt.Sprint(bin.Items), bin.Load})
	}
	tw.AppendFooter(table.Row{"", "", "bins used", fitness})
	tw.Render()

	fmt.Fprintf(w, "\ntheoretical minimum: %d   status: %s\n", target, status)
}

// renderResults prints the driver's per-heuristic leaderboard, sorted by
// fitness ascending.
func renderResults(w io.Writer, results []bp.DriverResult) {
	bp.SortResultsByFitness(results)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Heuristic", "Bins", "Status"})

	for _, r := range results {
		if r.Skipped {
			tw.AppendRow(table.Row{r.Heuristic, "-", "skipped"})
			continue
		}
		tw.AppendRow(table.Row{r.Heuristic, r.Fitness, "ok"})
	}
	tw.Render()
}
