// Package report renders a printable budget report
package report

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	budgetreport "fjacquet/event-budget/internal/report"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Render a printable budget report",
	Long: `Render the project, totals, every section and the sensitivity matrix as a
printable report. Formats: text, json, yaml.`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&format, "format", "text", "Report format: "+strings.Join(budgetreport.Formats, ", "))
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	s, err := root.LoadSession()
	if err != nil {
		return err
	}

	r, err := budgetreport.Build(s, time.Now())
	if err != nil {
		return err
	}
	data, err := root.GetContainer().GetReportGenerator().GenerateReport(r, format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := fileutils.WriteFileAtomic(output, data); err != nil {
		return &budgeterror.ExportError{Format: format, Target: output, Err: err}
	}
	root.Log.Info("Report written",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldFormat, format))
	fmt.Fprintln(cmd.OutOrStdout(), r.Title)
	return nil
}
