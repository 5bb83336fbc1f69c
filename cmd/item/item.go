// Package item adds, edits, removes and lists budget lines
package item

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/presentation"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

// Cmd represents the item command
var Cmd = &cobra.Command{
	Use:   "item",
	Short: "Manage budget lines",
	Long:  `Add, update, delete and list the income and expense lines of the budget.`,
}

var (
	addCategory  string
	addType      string
	addName      string
	addQuantity  string
	addUnitPrice string
	addAmount    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a budget line",
	Long: `Add a budget line. Fixed lines take --amount; variable lines take
--quantity and --price and their amount is always quantity times price.
Negative or non-numeric numbers are stored as 0.`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <field> <value>",
	Short: "Change one field of a budget line",
	Long: `Change one field of a budget line. Fields: name, quantity, unitPrice, amount.
quantity and unitPrice only apply to variable lines, amount only to fixed lines.`,
	Args: cobra.ExactArgs(3),
	RunE: updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a budget line",
	Args:    cobra.ExactArgs(1),
	RunE:    deleteFunc,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List budget lines by section",
	Args:    cobra.NoArgs,
	RunE:    listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "income or expense")
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "fixed or variable")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Line description")
	addCmd.Flags().StringVarP(&addQuantity, "quantity", "q", "", "Unit count (variable lines)")
	addCmd.Flags().StringVarP(&addUnitPrice, "price", "p", "", "Price per unit (variable lines)")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Total amount (fixed lines)")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("type")

	Cmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	category, err := models.ParseCategory(addCategory)
	if err != nil {
		return err
	}
	costType, err := models.ParseCostType(addType)
	if err != nil {
		return err
	}

	var added models.BudgetItem
	_, err = root.UpdateSession(func(s *session.Session) error {
		added = s.AddItem(category, costType)
		edits := []struct {
			flag  string
			field models.Field
			value string
		}{
			{"name", models.FieldName, addName},
			{"quantity", models.FieldQuantity, addQuantity},
			{"price", models.FieldUnitPrice, addUnitPrice},
			{"amount", models.FieldAmount, addAmount},
		}
		for _, e := range edits {
			if !cmd.Flags().Changed(e.flag) {
				continue
			}
			if !s.UpdateItem(added.ID, e.field, e.value) {
				root.Log.Warn("Flag does not apply to this line type",
					logging.F(logging.FieldField, e.flag),
					logging.F(logging.FieldCostType, costType))
			}
		}
		added, _ = s.Item(added.ID)
		return nil
	})
	if err != nil {
		return err
	}

	root.Log.Info("Budget line added",
		logging.F(logging.FieldItemID, added.ID),
		logging.F(logging.FieldCategory, category),
		logging.F(logging.FieldCostType, costType))
	fmt.Fprintln(cmd.OutOrStdout(), added.ID)
	return nil
}

func updateFunc(cmd *cobra.Command, args []string) error {
	id, rawField, value := args[0], args[1], args[2]
	field, err := models.ParseField(rawField)
	if err != nil {
		return err
	}

	var applied bool
	_, err = root.UpdateSession(func(s *session.Session) error {
		if _, ok := s.Item(id); !ok {
			return fmt.Errorf("no budget line with id %s", id)
		}
		applied = s.UpdateItem(id, field, value)
		return nil
	})
	if err != nil {
		return err
	}
	if !applied {
		return fmt.Errorf("field %s does not apply to line %s", field, id)
	}

	root.Log.Info("Budget line updated",
		logging.F(logging.FieldItemID, id),
		logging.F(logging.FieldField, field))
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	id := args[0]
	var removed bool
	if _, err := root.UpdateSession(func(s *session.Session) error {
		removed = s.DeleteItem(id)
		return nil
	}); err != nil {
		return err
	}
	if !removed {
		root.Log.Warn("No budget line to delete", logging.F(logging.FieldItemID, id))
		return nil
	}
	root.Log.Info("Budget line deleted", logging.F(logging.FieldItemID, id))
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, err := root.LoadSession()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), presentation.RenderItems(s.Sections(), s.Currency()))
	return nil
}
