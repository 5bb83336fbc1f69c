package sensitivity

import "fjacquet/event-budget/internal/models"

// LinkRule decides whether a variable line scales with the driver's
// attendee count.
type LinkRule func(item, driver models.BudgetItem) bool

// QuantityMatch links a line when its quantity equals the driver's quantity
// exactly. Two unrelated lines that happen to share a quantity are linked
// too; swap the rule with WithLinkRule to use declared links instead.
func QuantityMatch(item, driver models.BudgetItem) bool {
	qty, ok := item.Quantity()
	if !ok {
		return false
	}
	base, _ := driver.Quantity()
	return qty.Equal(base)
}
