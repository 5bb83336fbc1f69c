package presentation

import (
	"fmt"
	"strings"

	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/dateutils"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/sensitivity"

	"github.com/charmbracelet/lipgloss"
)

// NoLinkedLines is shown when no expense line scales with attendance.
const NoLinkedLines = "ingen poster"

// SectionTitle returns the heading of a category/type section.
func SectionTitle(category models.Category, costType models.CostType) string {
	switch {
	case category == models.CategoryIncome && costType == models.CostTypeFixed:
		return "Faste inntekter"
	case category == models.CategoryIncome:
		return "Variable inntekter"
	case costType == models.CostTypeFixed:
		return "Faste kostnader"
	default:
		return "Variable kostnader"
	}
}

// OutcomeLabel returns the Norwegian label of an outcome.
func OutcomeLabel(outcome aggregation.Outcome) string {
	if outcome == aggregation.OutcomeSurplus {
		return "Overskudd"
	}
	return "Underskudd"
}

// RenderProject renders the project header block.
func RenderProject(p models.ProjectInfo) string {
	var b strings.Builder
	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = "Uten navn"
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")

	line := func(label, value string) {
		if value == "" {
			value = "–"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render(label+":"), value))
	}
	line("Ansvarlig", p.Owner)
	period := ""
	if p.StartDate != "" || p.EndDate != "" {
		period = p.StartDate + " – " + p.EndDate
		if days := dateutils.DaysBetween(p.StartDate, p.EndDate); days > 0 {
			period += fmt.Sprintf(" (%d dager)", days)
		}
	}
	line("Periode", period)
	line("Sted", p.Location)
	return b.String()
}

// RenderSummary renders the headline totals and the outcome.
func RenderSummary(totals aggregation.Totals, currency string) string {
	outcome := totals.Outcome()
	t := Table{
		Title:   "Budsjettoversikt",
		Headers: []string{"", "Beløp"},
		Rows: [][]string{
			{"Totale inntekter", FormatCurrency(totals.Income, currency)},
			{"Totale kostnader", FormatCurrency(totals.Expense, currency)},
			{SeparatorRow},
			{"Estimert resultat", FormatCurrency(totals.Net, currency)},
		},
		CellStyle: func(row, col int) (lipgloss.Style, bool) {
			if row == 3 && col == 1 {
				return OutcomeStyle(outcome), true
			}
			return lipgloss.Style{}, false
		},
	}
	return RenderTable(t) + "  " + OutcomeStyle(outcome).Render(OutcomeLabel(outcome)) + "\n"
}

// RenderSection renders the lines of one section with its total.
func RenderSection(section aggregation.Section, currency string) string {
	t := Table{Title: SectionTitle(section.Category, section.Type), LeftAligned: 2}
	variable := section.Type == models.CostTypeVariable
	if variable {
		t.Headers = []string{"ID", "Beskrivelse", "Antall", "Pris (" + currency + ")", "Totalt"}
	} else {
		t.Headers = []string{"ID", "Beskrivelse", "Totalt"}
	}

	for _, item := range section.Items {
		row := []string{item.ID, item.Name}
		if variable {
			qty, _ := item.Quantity()
			price, _ := item.UnitPrice()
			row = append(row, qty.String(), FormatNumber(price))
		}
		row = append(row, FormatNumber(item.Amount()))
		t.Rows = append(t.Rows, row)
	}

	sum := make([]string, len(t.Headers))
	sum[0] = "Sum"
	sum[len(sum)-1] = FormatCurrency(section.Total, currency)
	t.Rows = append(t.Rows, []string{SeparatorRow}, sum)
	return RenderTable(t)
}

// RenderItems renders every section in display order.
func RenderItems(sections []aggregation.Section, currency string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, RenderSection(s, currency))
	}
	return strings.Join(parts, "\n")
}

// RenderNoDriver renders the insufficient-data state of the analysis.
func RenderNoDriver() string {
	return titleStyle.Render("Sensitivitetsanalyse mangler data") + "\n" +
		mutedStyle.Render("Legg til en variabel inntekt (f.eks. Deltakeravgift) for å aktivere analysen.") + "\n"
}

// RenderMatrix renders the 5×5 projection with attendee steps as rows and
// price steps as columns.
func RenderMatrix(a *sensitivity.Analysis, currency string) string {
	cfg := a.Config
	headers := []string{"Deltakere \\ Pris"}
	for col := 0; col < sensitivity.StepCount; col++ {
		cell := a.Matrix[0][col]
		headers = append(headers, fmt.Sprintf("%s %s", FormatStep(col), FormatCurrency(cell.Price, currency)))
	}

	rows := make([][]string, 0, sensitivity.StepCount)
	for r := 0; r < sensitivity.StepCount; r++ {
		label := FormatStep(r)
		if r == sensitivity.CenterIndex {
			label = fmt.Sprintf("Nå (%s)", cfg.BaseAttendees.String())
		}
		row := []string{fmt.Sprintf("%s %s", a.Matrix[r][0].Attendees.String(), label)}
		for c := 0; c < sensitivity.StepCount; c++ {
			row = append(row, FormatCompact(a.Matrix[r][c].Result))
		}
		rows = append(rows, row)
	}

	t := Table{
		Title:   fmt.Sprintf("Sensitivitetsanalyse: %s", cfg.DriverName),
		Headers: headers,
		Rows:    rows,
		CellStyle: func(row, col int) (lipgloss.Style, bool) {
			if col == 0 {
				return lipgloss.Style{}, false
			}
			style := BandStyle(a.Matrix[row][col-1].Band)
			if row == sensitivity.CenterIndex && col-1 == sensitivity.CenterIndex {
				style = style.Bold(true).Underline(true)
			}
			return style, true
		},
	}

	var b strings.Builder
	b.WriteString(RenderTable(t))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(LinkedExplanation(cfg)))
	b.WriteString("\n  ")
	b.WriteString(surplusStyle.Render("Overskudd"))
	b.WriteString("  ")
	b.WriteString(deficitStyle.Render("Underskudd"))
	b.WriteString("\n")
	return b.String()
}

// LinkedExplanation describes which expense lines scale with attendance.
func LinkedExplanation(cfg sensitivity.Configuration) string {
	names := strings.Join(cfg.LinkedExpenseNames(), ", ")
	if names == "" {
		names = NoLinkedLines
	}
	return fmt.Sprintf("Linkede kostnader: Analysen antar at kostnaden for %s øker proporsjonalt med antall deltakere fordi de har samme antall (%s) i budsjettet.",
		names, cfg.BaseAttendees.String())
}
