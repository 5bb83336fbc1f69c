// Package store owns the ordered collection of budget lines and the YAML
// budget document the command line tool keeps between runs.
package store

import (
	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds the budget lines in insertion order. It is not safe for
// concurrent use; a session owns exactly one store.
type Store struct {
	items  []models.BudgetItem
	newID  func() string
	logger logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  uuid.NewString,
		logger: logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a blank line of the given category and type and returns it.
// Variable lines start with zero quantity and unit price.
func (s *Store) Add(category models.Category, costType models.CostType) models.BudgetItem {
	id := s.newID()
	var item models.BudgetItem
	if costType == models.CostTypeVariable {
		item = models.NewVariableItem(id, "", category, decimal.Zero, decimal.Zero)
	} else {
		item = models.NewFixedItem(id, "", category, decimal.Zero)
	}
	s.items = append(s.items, item)

	s.logger.Debug("Budget item added",
		logging.F(logging.FieldItemID, id),
		logging.F(logging.FieldCategory, category),
		logging.F(logging.FieldCostType, costType))
	return item.Clone()
}

// Update sets one field of the line with the given id. Numeric input is
// coerced: anything non-numeric or negative becomes zero. It returns false
// when the id is unknown or the field does not apply to the line's type
// (amount on a variable line, quantity or unit price on a fixed line); the
// collection is left untouched in that case.
func (s *Store) Update(id string, field models.Field, value string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("Update ignored for unknown item", logging.F(logging.FieldItemID, id))
		return false
	}

	item := &s.items[idx]
	switch field {
	case models.FieldName:
		item.Name = value
	case models.FieldQuantity:
		if item.Variable == nil {
			return s.notApplicable(id, field)
		}
		item.Variable.Quantity = models.CoerceNonNegative(value)
	case models.FieldUnitPrice:
		if item.Variable == nil {
			return s.notApplicable(id, field)
		}
		item.Variable.UnitPrice = models.CoerceNonNegative(value)
	case models.FieldAmount:
		if item.Fixed == nil {
			return s.notApplicable(id, field)
		}
		item.Fixed.Amount = models.CoerceNonNegative(value)
	default:
		return s.notApplicable(id, field)
	}

	s.logger.Debug("Budget item updated",
		logging.F(logging.FieldItemID, id),
		logging.F(logging.FieldField, field))
	return true
}

func (s *Store) notApplicable(id string, field models.Field) bool {
	s.logger.Debug("Update ignored, field does not apply",
		logging.F(logging.FieldItemID, id),
		logging.F(logging.FieldField, field))
	return false
}

// Delete removes the line with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.logger.Debug("Budget item deleted", logging.F(logging.FieldItemID, id))
	return true
}

// Get returns a copy of the line with the given id.
func (s *Store) Get(id string) (models.BudgetItem, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.BudgetItem{}, false
	}
	return s.items[idx].Clone(), true
}

// Items returns a copy of every line in insertion order.
func (s *Store) Items() []models.BudgetItem {
	out := make([]models.BudgetItem, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

// Len returns the number of lines.
func (s *Store) Len() int {
	return len(s.items)
}

// TotalFor sums the amounts of every line in the category.
func (s *Store) TotalFor(category models.Category) decimal.Decimal {
	return aggregation.TotalFor(s.items, category)
}

// Insert appends drafts, giving each a fresh id, and returns the stored lines.
func (s *Store) Insert(drafts ...models.Draft) []models.BudgetItem {
	added := make([]models.BudgetItem, 0, len(drafts))
	for _, draft := range drafts {
		item := draft.WithID(s.newID())
		s.items = append(s.items, item)
		added = append(added, item.Clone())
	}
	s.logger.Debug("Budget items inserted", logging.F(logging.FieldCount, len(added)))
	return added
}

// Replace discards every line and inserts the drafts.
func (s *Store) Replace(drafts ...models.Draft) []models.BudgetItem {
	s.items = nil
	return s.Insert(drafts...)
}

// Restore loads previously stored lines, keeping their ids. Lines without an
// id get a fresh one.
func (s *Store) Restore(items []models.BudgetItem) {
	s.items = make([]models.BudgetItem, 0, len(items))
	for _, item := range items {
		item = item.Clone()
		if item.ID == "" {
			item.ID = s.newID()
		}
		s.items = append(s.items, item)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
