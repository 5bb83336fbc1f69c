// Package suggest asks Gemini for budget lines
package suggest

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/presentation"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

var (
	description string
	attendees   int
	replace     bool
	dryRun      bool
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest budget lines using Gemini model",
	Long: `Describe the event and the expected attendance; Gemini proposes income and
expense lines with realistic NOK prices. The lines are appended to the
budget, or replace it with --replace. A failed request leaves the budget
untouched. Requires ai.enabled and GEMINI_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Kind of event, e.g. \"Sommerfest for korpset\"")
	Cmd.Flags().IntVarP(&attendees, "attendees", "a", 0, "Expected attendees (default: budget.default_attendees)")
	Cmd.Flags().BoolVar(&replace, "replace", false, "Replace the whole budget with the suggestions")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the suggestions without saving them")
	_ = Cmd.MarkFlagRequired("description")
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	count := attendees
	if !cmd.Flags().Changed("attendees") {
		count = root.GetConfig().Budget.DefaultAttendees
	}

	drafts, err := root.GetContainer().GetSuggester().Suggest(cmd.Context(), description, count)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		preview := session.New(session.WithCurrency(root.GetConfig().Budget.Currency), session.WithProject(models.ProjectInfo{}))
		if _, err := preview.ApplySuggestions(drafts, true); err != nil {
			return err
		}
		fmt.Fprint(out, presentation.RenderItems(preview.Sections(), preview.Currency()))
		return nil
	}

	var added []models.BudgetItem
	s, err := root.UpdateSession(func(s *session.Session) error {
		var applyErr error
		added, applyErr = s.ApplySuggestions(drafts, replace)
		return applyErr
	})
	if err != nil {
		return err
	}

	root.Log.Info("Suggestions applied",
		logging.F(logging.FieldCount, len(added)),
		logging.F(logging.FieldAttendees, count))
	fmt.Fprintf(out, "La til %d poster\n\n", len(added))
	fmt.Fprint(out, presentation.RenderSummary(s.Totals(), s.Currency()))
	return nil
}
