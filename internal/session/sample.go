package session

import (
	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
)

// SampleDrafts returns the starter budget of a summer party for 50 people.
func SampleDrafts() []models.Draft {
	return []models.Draft{
		models.NewDraft(models.NewVariableItem("", "Deltakeravgift", models.CategoryIncome, decimal.NewFromInt(50), decimal.NewFromInt(1000))),
		models.NewDraft(models.NewFixedItem("", "Støtte fra kommune", models.CategoryIncome, decimal.NewFromInt(15000))),
		models.NewDraft(models.NewVariableItem("", "Mat og drikke", models.CategoryExpense, decimal.NewFromInt(50), decimal.NewFromInt(500))),
		models.NewDraft(models.NewFixedItem("", "Leie av lokale", models.CategoryExpense, decimal.NewFromInt(10000))),
	}
}
