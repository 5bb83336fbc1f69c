package aggregation

import (
	"testing"

	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleItems() []models.BudgetItem {
	return []models.BudgetItem{
		models.NewFixedItem("1", "Støtte fra kommune", models.CategoryIncome, d(15000)),
		models.NewVariableItem("2", "Deltakeravgift", models.CategoryIncome, d(50), d(1000)),
		models.NewFixedItem("3", "Leie av lokale", models.CategoryExpense, d(10000)),
		models.NewVariableItem("4", "Mat og drikke", models.CategoryExpense, d(50), d(500)),
	}
}

func TestSummarize(t *testing.T) {
	totals := Summarize(sampleItems())

	assert.True(t, totals.Income.Equal(d(65000)), "income %s", totals.Income)
	assert.True(t, totals.Expense.Equal(d(35000)), "expense %s", totals.Expense)
	assert.True(t, totals.Net.Equal(d(30000)), "net %s", totals.Net)
	assert.True(t, totals.IsSurplus())
	assert.Equal(t, OutcomeSurplus, totals.Outcome())
}

func TestSummarize_Empty(t *testing.T) {
	totals := Summarize(nil)

	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Net.IsZero())
	assert.True(t, totals.IsSurplus(), "zero is a surplus")
}

func TestSummarize_Deficit(t *testing.T) {
	items := []models.BudgetItem{
		models.NewFixedItem("1", "Leie", models.CategoryExpense, d(100)),
	}
	totals := Summarize(items)

	assert.True(t, totals.Net.Equal(d(-100)))
	assert.Equal(t, OutcomeDeficit, totals.Outcome())
}

func TestSectionTotal(t *testing.T) {
	items := sampleItems()

	assert.True(t, SectionTotal(items, models.CategoryIncome, models.CostTypeFixed).Equal(d(15000)))
	assert.True(t, SectionTotal(items, models.CategoryIncome, models.CostTypeVariable).Equal(d(50000)))
	assert.True(t, SectionTotal(items, models.CategoryExpense, models.CostTypeVariable).Equal(d(25000)))
}

func TestSections(t *testing.T) {
	sections := Sections(sampleItems())

	require.Len(t, sections, 4)
	assert.Equal(t, models.CategoryIncome, sections[0].Category)
	assert.Equal(t, models.CostTypeFixed, sections[0].Type)
	assert.Equal(t, models.CostTypeVariable, sections[3].Type)
	assert.Equal(t, models.CategoryExpense, sections[3].Category)
	require.Len(t, sections[3].Items, 1)
	assert.Equal(t, "Mat og drikke", sections[3].Items[0].Name)
	assert.True(t, sections[3].Total.Equal(d(25000)))
}
