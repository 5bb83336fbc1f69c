package sensitivity

import "fjacquet/event-budget/internal/models"

// Candidates returns the lines that can drive the analysis: variable income
// lines, in collection order.
func Candidates(items []models.BudgetItem) []models.BudgetItem {
	var out []models.BudgetItem
	for _, item := range items {
		if item.Is(models.CategoryIncome, models.CostTypeVariable) {
			out = append(out, item)
		}
	}
	return out
}

// ResolveDriver applies the selection repair rule. A current id that names a
// candidate is kept; otherwise the first candidate is chosen; with no
// candidates the selection is cleared.
func ResolveDriver(items []models.BudgetItem, current string) string {
	candidates := Candidates(items)
	if len(candidates) == 0 {
		return ""
	}
	if current != "" {
		for _, c := range candidates {
			if c.ID == current {
				return current
			}
		}
	}
	return candidates[0].ID
}

func findCandidate(items []models.BudgetItem, id string) (models.BudgetItem, bool) {
	if id == "" {
		return models.BudgetItem{}, false
	}
	for _, c := range Candidates(items) {
		if c.ID == id {
			return c, true
		}
	}
	return models.BudgetItem{}, false
}
