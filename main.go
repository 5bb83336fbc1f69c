package main

import (
	"fmt"
	"os"

	"fjacquet/event-budget/cmd/analysis"
	"fjacquet/event-budget/cmd/export"
	"fjacquet/event-budget/cmd/initialize"
	"fjacquet/event-budget/cmd/item"
	"fjacquet/event-budget/cmd/project"
	"fjacquet/event-budget/cmd/report"
	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/cmd/suggest"
	"fjacquet/event-budget/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(initialize.Cmd)
	root.Cmd.AddCommand(project.Cmd)
	root.Cmd.AddCommand(item.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(analysis.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
