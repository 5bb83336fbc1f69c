package report

import (
	"errors"
	"time"

	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/export"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/presentation"
	"fjacquet/event-budget/internal/sensitivity"
	"fjacquet/event-budget/internal/session"
	"fjacquet/event-budget/internal/store"

	"github.com/shopspring/decimal"
)

// BudgetReport is the printable snapshot of a budget.
type BudgetReport struct {
	Title       string             `json:"title" yaml:"title"`
	GeneratedAt time.Time          `json:"generatedAt" yaml:"generated_at"`
	Currency    string             `json:"currency" yaml:"currency"`
	Project     models.ProjectInfo `json:"project" yaml:"project"`
	Totals      TotalsView         `json:"totals" yaml:"totals"`
	Sections    []SectionView      `json:"sections" yaml:"sections"`
	Sensitivity SensitivityView    `json:"sensitivity" yaml:"sensitivity"`

	sections []aggregation.Section
	totals   aggregation.Totals
	analysis *sensitivity.Analysis
}

// TotalsView holds the headline figures.
type TotalsView struct {
	Income  decimal.Decimal     `json:"income" yaml:"income"`
	Expense decimal.Decimal     `json:"expense" yaml:"expense"`
	Net     decimal.Decimal     `json:"net" yaml:"net"`
	Outcome aggregation.Outcome `json:"outcome" yaml:"outcome"`
}

// SectionView is one category/type block.
type SectionView struct {
	Title    string             `json:"title" yaml:"title"`
	Category models.Category    `json:"category" yaml:"category"`
	Type     models.CostType    `json:"type" yaml:"type"`
	Total    decimal.Decimal    `json:"total" yaml:"total"`
	Items    []store.ItemRecord `json:"items" yaml:"items"`
}

// SensitivityView is the analysis, or the reason it is missing.
type SensitivityView struct {
	Available      bool                 `json:"available" yaml:"available"`
	Message        string               `json:"message,omitempty" yaml:"message,omitempty"`
	DriverID       string               `json:"driverId,omitempty" yaml:"driver_id,omitempty"`
	DriverName     string               `json:"driverName,omitempty" yaml:"driver_name,omitempty"`
	BaseAttendees  decimal.Decimal      `json:"baseAttendees" yaml:"base_attendees"`
	BasePrice      decimal.Decimal      `json:"basePrice" yaml:"base_price"`
	LinkedExpenses []string             `json:"linkedExpenses,omitempty" yaml:"linked_expenses,omitempty"`
	Steps          []string             `json:"steps,omitempty" yaml:"steps,omitempty"`
	Matrix         [][]sensitivity.Cell `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// InsufficientData is the message reported when no driver is available.
const InsufficientData = "Sensitivitetsanalyse mangler data: legg til en variabel inntekt for å aktivere analysen."

// Build snapshots a session. Analysis failures other than a missing driver are
// returned as errors.
func Build(s *session.Session, now time.Time) (*BudgetReport, error) {
	totals := s.Totals()
	sections := s.Sections()

	r := &BudgetReport{
		Title:       export.PrintTitle(s.Project()),
		GeneratedAt: now,
		Currency:    s.Currency(),
		Project:     s.Project(),
		Totals: TotalsView{
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net,
			Outcome: totals.Outcome(),
		},
		sections: sections,
		totals:   totals,
	}

	for _, sec := range sections {
		r.Sections = append(r.Sections, SectionView{
			Title:    presentation.SectionTitle(sec.Category, sec.Type),
			Category: sec.Category,
			Type:     sec.Type,
			Total:    sec.Total,
			Items:    store.RecordsFromItems(sec.Items),
		})
	}

	analysis, err := s.Analyze()
	switch {
	case errors.Is(err, sensitivity.ErrNoDriver):
		r.Sensitivity = SensitivityView{Message: InsufficientData}
	case err != nil:
		return nil, err
	default:
		r.analysis = analysis
		r.Sensitivity = sensitivityView(analysis)
	}
	return r, nil
}

func sensitivityView(a *sensitivity.Analysis) SensitivityView {
	v := SensitivityView{
		Available:      true,
		DriverID:       a.Config.DriverID,
		DriverName:     a.Config.DriverName,
		BaseAttendees:  a.Config.BaseAttendees,
		BasePrice:      a.Config.BasePrice,
		LinkedExpenses: a.Config.LinkedExpenseNames(),
	}
	for i := 0; i < sensitivity.StepCount; i++ {
		v.Steps = append(v.Steps, presentation.FormatStep(i))
		row := make([]sensitivity.Cell, sensitivity.StepCount)
		copy(row, a.Matrix[i][:])
		v.Matrix = append(v.Matrix, row)
	}
	return v
}
