// Package aggregation computes category totals and the net result of a
// budget. Every function is a pure fold over the item collection.
package aggregation

import (
	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
)

// Outcome classifies a net result.
type Outcome string

const (
	OutcomeSurplus Outcome = "surplus"
	OutcomeDeficit Outcome = "deficit"
)

// Totals is the headline summary of a budget.
type Totals struct {
	Income  decimal.Decimal `json:"totalIncome" yaml:"total_income"`
	Expense decimal.Decimal `json:"totalExpense" yaml:"total_expense"`
	Net     decimal.Decimal `json:"netResult" yaml:"net_result"`
}

// IsSurplus reports whether the budget breaks even or better. Zero counts as surplus.
func (t Totals) IsSurplus() bool {
	return !t.Net.IsNegative()
}

// Outcome returns surplus or deficit.
func (t Totals) Outcome() Outcome {
	if t.IsSurplus() {
		return OutcomeSurplus
	}
	return OutcomeDeficit
}

// TotalFor sums the amounts of every item in the category, fixed and variable alike.
func TotalFor(items []models.BudgetItem, category models.Category) decimal.Decimal {
	return models.SumAmounts(filter(items, func(item models.BudgetItem) bool {
		return item.Category == category
	}))
}

// SectionTotal sums the amounts of the items with the given category and cost type.
func SectionTotal(items []models.BudgetItem, category models.Category, costType models.CostType) decimal.Decimal {
	return models.SumAmounts(filter(items, func(item models.BudgetItem) bool {
		return item.Is(category, costType)
	}))
}

func filter(items []models.BudgetItem, keep func(models.BudgetItem) bool) []models.BudgetItem {
	var out []models.BudgetItem
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Summarize computes income, expense and net result.
func Summarize(items []models.BudgetItem) Totals {
	income := TotalFor(items, models.CategoryIncome)
	expense := TotalFor(items, models.CategoryExpense)
	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// Section is the slice of a budget sharing one category and cost type.
type Section struct {
	Category models.Category
	Type     models.CostType
	Items    []models.BudgetItem
	Total    decimal.Decimal
}

// Sections splits the budget into its four sections in display order:
// fixed income, variable income, fixed expense, variable expense. Item order
// inside a section follows the collection.
func Sections(items []models.BudgetItem) []Section {
	sections := make([]Section, 0, len(models.Categories)*len(models.CostTypes))
	for _, category := range models.Categories {
		for _, costType := range models.CostTypes {
			sectionItems := filter(items, func(item models.BudgetItem) bool {
				return item.Is(category, costType)
			})
			sections = append(sections, Section{
				Category: category,
				Type:     costType,
				Items:    sectionItems,
				Total:    models.SumAmounts(sectionItems),
			})
		}
	}
	return sections
}
