// Package export writes the budget lines to a CSV file
package export

import (
	"fmt"
	"path/filepath"

	"fjacquet/event-budget/cmd/root"
	budgetexport "fjacquet/event-budget/internal/export"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the budget lines to CSV",
	Long: `Export every budget line to CSV with the columns Kategori, Type, Navn,
Antall, Pris per enhet and Belop. The default file name is
budsjett_<project name>.csv in csv.output_dir.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	s, err := root.LoadSession()
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = filepath.Join(root.GetConfig().CSV.OutputDir, budgetexport.DefaultFileName(s.Project()))
	}
	if err := root.GetContainer().GetExporter().WriteFile(path, s.Items()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
