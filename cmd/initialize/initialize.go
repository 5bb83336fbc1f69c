// Package initialize creates a new budget document
package initialize

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

var (
	sample bool
	force  bool
	name   string
)

// Cmd represents the init command
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new budget document",
	Long: `Create a new budget document with the default project (a summer party
starting today). Use --sample to seed it with a starter budget for 50 people.`,
	RunE: initFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&sample, "sample", "s", false, "Seed the budget with sample lines")
	Cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing budget document")
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")
}

func initFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	documents := c.GetDocumentStore()
	if documents.Exists() && !force {
		return fmt.Errorf("budget document %s already exists (use --force to overwrite)", documents.Path())
	}

	s := c.NewSession()
	if name != "" {
		s.SetProjectField(models.ProjectName, name)
	}
	if sample {
		if _, err := s.ApplySuggestions(session.SampleDrafts(), true); err != nil {
			return err
		}
	}
	if err := c.SaveSession(s); err != nil {
		return err
	}

	root.Log.Info("Budget document created",
		logging.F(logging.FieldFile, documents.Path()),
		logging.F(logging.FieldCount, len(s.Items())))
	fmt.Fprintf(cmd.OutOrStdout(), "Opprettet %s (%s)\n", documents.Path(), s.Project().Name)
	return nil
}
