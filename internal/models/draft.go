package models

// Draft is a budget line that has not been given an id yet. Suggestions from
// the AI collaborator and records read from a document arrive as drafts.
type Draft struct {
	Item BudgetItem
}

// NewDraft wraps an item, dropping any id it carries.
func NewDraft(item BudgetItem) Draft {
	item = item.Clone()
	item.ID = ""
	return Draft{Item: item}
}

// WithID returns the draft as a stored item with the given id.
func (d Draft) WithID(id string) BudgetItem {
	item := d.Item.Clone()
	item.ID = id
	return item
}
