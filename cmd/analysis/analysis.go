// Package analysis prints the sensitivity matrix of a budget
package analysis

import (
	"errors"
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/presentation"
	"fjacquet/event-budget/internal/sensitivity"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

var driverID string

// Cmd represents the sensitivity command
var Cmd = &cobra.Command{
	Use:     "sensitivity",
	Aliases: []string{"matrix"},
	Short:   "Project the result under attendance and price changes",
	Long: `Project the net result over a 5x5 grid of -20%, -10%, 0, +10% and +20%
changes in attendance (rows) and price (columns). The driver is a variable
income line; use --driver to pick one, otherwise the saved or first
candidate is used.`,
	Args: cobra.NoArgs,
	RunE: analysisFunc,
}

func init() {
	Cmd.Flags().StringVarP(&driverID, "driver", "d", "", "ID of the variable income line to analyze")
}

func analysisFunc(cmd *cobra.Command, args []string) error {
	var s *session.Session
	var err error
	if cmd.Flags().Changed("driver") {
		s, err = root.UpdateSession(func(s *session.Session) error {
			if selected := s.SelectDriver(driverID); selected != driverID {
				root.Log.Warn("Requested driver is not a variable income line",
					logging.F(logging.FieldDriverID, driverID))
			}
			return nil
		})
	} else {
		s, err = root.LoadSession()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	analysis, err := s.Analyze()
	if errors.Is(err, sensitivity.ErrNoDriver) {
		fmt.Fprint(out, presentation.RenderNoDriver())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, presentation.RenderMatrix(analysis, s.Currency()))
	return nil
}
