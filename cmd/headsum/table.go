package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable draws one digest per row under a rounded header.
func renderTable(results [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Digest", "Path"})
	for _, r := range results {
		tw.AppendRow(table.Row{r[0], r[1]})
	}
	return tw.Render()
}
