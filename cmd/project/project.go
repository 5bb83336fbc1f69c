// Package project shows and edits the project details of a budget
package project

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/dateutils"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/presentation"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

var flagFields = map[string]models.ProjectField{
	"name":     models.ProjectName,
	"owner":    models.ProjectOwner,
	"start":    models.ProjectStartDate,
	"end":      models.ProjectEndDate,
	"location": models.ProjectLocation,
}

var values = map[string]*string{}

// Cmd represents the project command
var Cmd = &cobra.Command{
	Use:   "project",
	Short: "Show or edit the project details",
	Long: `Show the project details. Any of --name, --owner, --start, --end and
--location replaces that field and saves the budget. Dates are accepted as
2024-06-01, 01.06.2024 or 1.6.2024 and stored as ISO dates.`,
	RunE: projectFunc,
}

func init() {
	for _, flag := range []string{"name", "owner", "start", "end", "location"} {
		values[flag] = Cmd.Flags().String(flag, "", fmt.Sprintf("Set the project %s", flag))
	}
}

func projectFunc(cmd *cobra.Command, args []string) error {
	var changed []string
	for flag := range flagFields {
		if cmd.Flags().Changed(flag) {
			changed = append(changed, flag)
		}
	}

	var s *session.Session
	var err error
	if len(changed) == 0 {
		s, err = root.LoadSession()
	} else {
		s, err = root.UpdateSession(func(s *session.Session) error {
			for _, flag := range changed {
				value := *values[flag]
				if flag == "start" || flag == "end" {
					normalized, err := dateutils.NormalizeDate(value)
					if err != nil {
						return fmt.Errorf("invalid --%s: %w", flag, err)
					}
					value = normalized
				}
				s.SetProjectField(flagFields[flag], value)
			}
			p := s.Project()
			return dateutils.ValidateRange(p.StartDate, p.EndDate)
		})
		if err == nil {
			root.Log.Info("Project updated")
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), presentation.RenderProject(s.Project()))
	return nil
}
