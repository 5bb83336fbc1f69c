// Package session is the single owner of a budget's mutable state: the item
// store, the project metadata and the selected sensitivity driver. Every
// mutation ends with the driver repair step so the selection can never point
// at a line that is not a candidate.
package session

import (
	"time"

	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/sensitivity"
	"fjacquet/event-budget/internal/store"

	"github.com/shopspring/decimal"
)

// Session holds one budget in memory.
type Session struct {
	items    *store.Store
	project  models.ProjectInfo
	currency string
	driverID string
	engine   *sensitivity.Engine
	logger   logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStore injects the item store.
func WithStore(s *store.Store) Option {
	return func(sess *Session) {
		if s != nil {
			sess.items = s
		}
	}
}

// WithEngine injects the sensitivity engine.
func WithEngine(e *sensitivity.Engine) Option {
	return func(sess *Session) {
		if e != nil {
			sess.engine = e
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger logging.Logger) Option {
	return func(sess *Session) {
		if logger != nil {
			sess.logger = logger
		}
	}
}

// WithCurrency sets the currency code the budget is kept in.
func WithCurrency(code string) Option {
	return func(sess *Session) {
		if code != "" {
			sess.currency = code
		}
	}
}

// WithProject sets the initial project metadata.
func WithProject(info models.ProjectInfo) Option {
	return func(sess *Session) {
		sess.project = info
	}
}

// New returns an empty session with the default project.
func New(opts ...Option) *Session {
	s := &Session{
		project:  models.DefaultProjectInfo(time.Now()),
		currency: models.DefaultCurrency,
		logger:   logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.items == nil {
		s.items = store.New(store.WithLogger(s.logger))
	}
	if s.engine == nil {
		s.engine = sensitivity.NewEngine(sensitivity.WithLogger(s.logger))
	}
	s.repairDriver()
	return s
}

// Project returns the project metadata.
func (s *Session) Project() models.ProjectInfo {
	return s.project
}

// Currency returns the budget's currency code.
func (s *Session) Currency() string {
	return s.currency
}

// SetProjectField replaces one project attribute.
func (s *Session) SetProjectField(field models.ProjectField, value string) {
	s.project = s.project.With(field, value)
}

// SetProject replaces the whole project record.
func (s *Session) SetProject(info models.ProjectInfo) {
	s.project = info
}

// Items returns a copy of every line in insertion order.
func (s *Session) Items() []models.BudgetItem {
	return s.items.Items()
}

// Item returns the line with the given id.
func (s *Session) Item(id string) (models.BudgetItem, bool) {
	return s.items.Get(id)
}

// AddItem appends a blank line.
func (s *Session) AddItem(category models.Category, costType models.CostType) models.BudgetItem {
	item := s.items.Add(category, costType)
	s.repairDriver()
	return item
}

// UpdateItem sets one field of a line; see store.Store.Update for coercion.
func (s *Session) UpdateItem(id string, field models.Field, value string) bool {
	ok := s.items.Update(id, field, value)
	s.repairDriver()
	return ok
}

// DeleteItem removes a line.
func (s *Session) DeleteItem(id string) bool {
	ok := s.items.Delete(id)
	s.repairDriver()
	return ok
}

// SelectDriver picks the sensitivity driver. An id that is not a variable
// income line is rejected and the current driver stays. It returns the id in
// effect.
func (s *Session) SelectDriver(id string) string {
	if isCandidate(s.items.Items(), id) {
		s.driverID = id
	}
	s.repairDriver()
	return s.driverID
}

func isCandidate(items []models.BudgetItem, id string) bool {
	for _, c := range sensitivity.Candidates(items) {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DriverID returns the selected driver, or "" when there is no candidate.
func (s *Session) DriverID() string {
	return s.driverID
}

// Candidates returns the lines that can be selected as driver.
func (s *Session) Candidates() []models.BudgetItem {
	return sensitivity.Candidates(s.items.Items())
}

// Totals recomputes the headline totals.
func (s *Session) Totals() aggregation.Totals {
	return aggregation.Summarize(s.items.Items())
}

// TotalFor sums one category.
func (s *Session) TotalFor(category models.Category) decimal.Decimal {
	return s.items.TotalFor(category)
}

// Sections recomputes the four category/type sections.
func (s *Session) Sections() []aggregation.Section {
	return aggregation.Sections(s.items.Items())
}

// Analyze runs the sensitivity analysis for the selected driver. It returns
// sensitivity.ErrNoDriver when the budget has no variable income line.
func (s *Session) Analyze() (*sensitivity.Analysis, error) {
	return s.engine.Analyze(s.items.Items(), s.driverID)
}

// ApplySuggestions adds suggested lines with fresh ids, or replaces the whole
// budget with them when replace is set. Every draft is validated first;
// a single invalid draft rejects the whole batch and leaves the session
// untouched.
func (s *Session) ApplySuggestions(drafts []models.Draft, replace bool) ([]models.BudgetItem, error) {
	for i, draft := range drafts {
		if err := draft.Item.Validate(); err != nil {
			return nil, &budgeterror.InvalidDraftError{Index: i, Err: err}
		}
	}

	var added []models.BudgetItem
	if replace {
		added = s.items.Replace(drafts...)
	} else {
		added = s.items.Insert(drafts...)
	}
	s.repairDriver()

	s.logger.Info("Applied budget suggestions",
		logging.F(logging.FieldCount, len(added)),
		logging.F(logging.FieldReplace, replace))
	return added, nil
}

// Restore loads previously saved state and repairs the driver selection.
func (s *Session) Restore(project models.ProjectInfo, items []models.BudgetItem, driverID string) {
	s.project = project
	s.items.Restore(items)
	s.driverID = driverID
	s.repairDriver()
}

func (s *Session) repairDriver() {
	next := sensitivity.ResolveDriver(s.items.Items(), s.driverID)
	if next != s.driverID {
		s.logger.Debug("Sensitivity driver repaired",
			logging.F(logging.FieldDriverID, next),
			logging.F(logging.FieldPreviousDriverID, s.driverID))
		s.driverID = next
	}
}
