// Package sensitivity projects the net result of a budget under joint
// changes of attendance and ticket price.
//
// One variable income line is the driver: its quantity is the attendee count
// and its unit price is the price under test. Other variable lines are either
// linked (they scale with attendees and contribute their unit price per
// person) or unlinked (their total stays put). The engine evaluates a fixed
// 5×5 grid of -20%, -10%, 0, +10% and +20% on both axes.
package sensitivity

import (
	"errors"

	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNoDriver is returned when the budget has no variable income line to
// drive the analysis.
var ErrNoDriver = errors.New("sensitivity: no driver available")

// StepCount is the size of each matrix axis.
const StepCount = 5

// CenterIndex is the position of the unperturbed step on both axes.
const CenterIndex = 2

// Steps are the relative perturbations applied on each axis, in matrix order.
var Steps = [StepCount]decimal.Decimal{
	decimal.RequireFromString("-0.20"),
	decimal.RequireFromString("-0.10"),
	decimal.Zero,
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.20"),
}

// Configuration is everything the projection needs, derived from the budget
// on every call and never stored.
type Configuration struct {
	DriverID      string
	DriverName    string
	BaseAttendees decimal.Decimal
	BasePrice     decimal.Decimal

	FixedIncome  decimal.Decimal
	FixedExpense decimal.Decimal

	LinkedIncome           []models.BudgetItem
	UnlinkedIncome         []models.BudgetItem
	LinkedExpense          []models.BudgetItem
	UnlinkedExpense        []models.BudgetItem
	LinkedIncomePerPerson  decimal.Decimal
	UnlinkedIncomeTotal    decimal.Decimal
	LinkedExpensePerPerson decimal.Decimal
	UnlinkedExpenseTotal   decimal.Decimal
}

// LinkedExpenseNames returns the names of the linked expense lines.
func (c Configuration) LinkedExpenseNames() []string {
	names := make([]string, 0, len(c.LinkedExpense))
	for _, item := range c.LinkedExpense {
		names = append(names, item.Name)
	}
	return names
}

// Project computes the result for one attendee count and price.
func (c Configuration) Project(attendees, price decimal.Decimal) decimal.Decimal {
	income := c.FixedIncome.
		Add(c.UnlinkedIncomeTotal).
		Add(attendees.Mul(price.Add(c.LinkedIncomePerPerson)))
	expense := c.FixedExpense.
		Add(c.UnlinkedExpenseTotal).
		Add(attendees.Mul(c.LinkedExpensePerPerson))
	return income.Sub(expense)
}

// Cell is one projected outcome.
type Cell struct {
	Attendees decimal.Decimal `json:"attendees" yaml:"attendees"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Result    decimal.Decimal `json:"result" yaml:"result"`
	Band      Band            `json:"band" yaml:"band"`
}

// Matrix is indexed [attendee step][price step].
type Matrix [StepCount][StepCount]Cell

// Center returns the unperturbed cell.
func (m Matrix) Center() Cell {
	return m[CenterIndex][CenterIndex]
}

// Analysis is a configuration together with its projection matrix.
type Analysis struct {
	Config Configuration
	Matrix Matrix
}

// Engine runs the analysis with a pluggable linkage rule.
type Engine struct {
	link   LinkRule
	logger logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLinkRule replaces the default QuantityMatch rule.
func WithLinkRule(rule LinkRule) Option {
	return func(e *Engine) {
		if rule != nil {
			e.link = rule
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine using QuantityMatch unless configured otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		link:   QuantityMatch,
		logger: logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configure derives the configuration for the given driver. The driver must be
// one of the candidates, otherwise ErrNoDriver is returned.
func (e *Engine) Configure(items []models.BudgetItem, driverID string) (Configuration, error) {
	driver, ok := findCandidate(items, driverID)
	if !ok {
		return Configuration{}, ErrNoDriver
	}

	baseAttendees, _ := driver.Quantity()
	basePrice, _ := driver.UnitPrice()

	cfg := Configuration{
		DriverID:               driver.ID,
		DriverName:             driver.Name,
		BaseAttendees:          baseAttendees,
		BasePrice:              basePrice,
		FixedIncome:            aggregation.SectionTotal(items, models.CategoryIncome, models.CostTypeFixed),
		FixedExpense:           aggregation.SectionTotal(items, models.CategoryExpense, models.CostTypeFixed),
		LinkedIncomePerPerson:  decimal.Zero,
		UnlinkedIncomeTotal:    decimal.Zero,
		LinkedExpensePerPerson: decimal.Zero,
		UnlinkedExpenseTotal:   decimal.Zero,
	}

	for _, item := range items {
		if !item.IsVariable() || item.ID == driver.ID {
			continue
		}
		price, _ := item.UnitPrice()
		linked := e.link(item, driver)

		switch {
		case item.Category == models.CategoryIncome && linked:
			cfg.LinkedIncome = append(cfg.LinkedIncome, item)
			cfg.LinkedIncomePerPerson = cfg.LinkedIncomePerPerson.Add(price)
		case item.Category == models.CategoryIncome:
			cfg.UnlinkedIncome = append(cfg.UnlinkedIncome, item)
			cfg.UnlinkedIncomeTotal = cfg.UnlinkedIncomeTotal.Add(item.Amount())
		case linked:
			cfg.LinkedExpense = append(cfg.LinkedExpense, item)
			cfg.LinkedExpensePerPerson = cfg.LinkedExpensePerPerson.Add(price)
		default:
			cfg.UnlinkedExpense = append(cfg.UnlinkedExpense, item)
			cfg.UnlinkedExpenseTotal = cfg.UnlinkedExpenseTotal.Add(item.Amount())
		}
	}

	e.logger.Debug("Sensitivity configuration derived",
		logging.F(logging.FieldDriverID, cfg.DriverID),
		logging.F(logging.FieldBaseCount, cfg.BaseAttendees.String()),
		logging.F(logging.FieldBasePrice, cfg.BasePrice.String()),
		logging.F(logging.FieldLinkedCount, len(cfg.LinkedIncome)+len(cfg.LinkedExpense)))
	return cfg, nil
}

// Analyze configures the driver and evaluates the full matrix.
func (e *Engine) Analyze(items []models.BudgetItem, driverID string) (*Analysis, error) {
	cfg, err := e.Configure(items, driverID)
	if err != nil {
		return nil, err
	}
	return &Analysis{Config: cfg, Matrix: BuildMatrix(cfg)}, nil
}

// BuildMatrix evaluates every step combination. Perturbed attendee counts and
// prices are rounded half-up before they enter the formula; results are not
// rounded.
func BuildMatrix(cfg Configuration) Matrix {
	var m Matrix
	one := decimal.NewFromInt(1)
	for row, a := range Steps {
		attendees := models.RoundHalfUp(cfg.BaseAttendees.Mul(one.Add(a)))
		for col, p := range Steps {
			price := models.RoundHalfUp(cfg.BasePrice.Mul(one.Add(p)))
			result := cfg.Project(attendees, price)
			m[row][col] = Cell{
				Attendees: attendees,
				Price:     price,
				Result:    result,
				Band:      Classify(result),
			}
		}
	}
	return m
}
