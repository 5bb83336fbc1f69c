package sensitivity

import (
	"testing"

	"fjacquet/event-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	items := []models.BudgetItem{
		models.NewFixedItem("f", "Støtte", models.CategoryIncome, d(1)),
		ticket("a", 10, 100),
		models.NewVariableItem("e", "Mat", models.CategoryExpense, d(10), d(5)),
		ticket("b", 20, 50),
	}

	candidates := Candidates(items)
	require.Len(t, candidates, 2)
	assert.Equal(t, "a", candidates[0].ID)
	assert.Equal(t, "b", candidates[1].ID)
}

func TestResolveDriver(t *testing.T) {
	items := []models.BudgetItem{
		models.NewFixedItem("f", "Støtte", models.CategoryIncome, d(1)),
		ticket("a", 10, 100),
		ticket("b", 20, 50),
	}

	tests := []struct {
		name    string
		items   []models.BudgetItem
		current string
		want    string
	}{
		{"empty selection picks first candidate", items, "", "a"},
		{"valid selection is kept", items, "b", "b"},
		{"stale selection moves to first candidate", items, "gone", "a"},
		{"non-candidate selection is repaired", items, "f", "a"},
		{"no candidates clears selection", items[:1], "a", ""},
		{"empty budget", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDriver(tt.items, tt.current))
		})
	}
}

func TestQuantityMatch(t *testing.T) {
	driver := ticket("t", 50, 1000)

	assert.True(t, QuantityMatch(models.NewVariableItem("x", "", models.CategoryExpense, d(50), d(1)), driver))
	assert.False(t, QuantityMatch(models.NewVariableItem("y", "", models.CategoryExpense, d(49), d(1)), driver))
	assert.False(t, QuantityMatch(models.NewFixedItem("z", "", models.CategoryExpense, d(50)), driver))
}
