// Package summary prints the totals and sections of a budget
package summary

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/presentation"

	"github.com/spf13/cobra"
)

var totalsOnly bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show budget totals and lines",
	Long:  `Show the project, the income and expense totals, the estimated result and every budget line grouped by section.`,
	RunE:  summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&totalsOnly, "totals-only", false, "Only print the totals")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	s, err := root.LoadSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, presentation.RenderProject(s.Project()))
	fmt.Fprint(out, presentation.RenderSummary(s.Totals(), s.Currency()))
	if !totalsOnly {
		fmt.Fprintln(out)
		fmt.Fprint(out, presentation.RenderItems(s.Sections(), s.Currency()))
	}
	return nil
}
