// Package report renders printable budget reports.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/presentation"

	"gopkg.in/yaml.v3"
)

// Formats lists the supported report formats.
var Formats = []string{"text", "json", "yaml"}

// ReportGenerator provides functionality to generate budget reports in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &ReportGenerator{
		logger: logger.WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// GenerateReport renders the report in the specified format (text, json or yaml).
func (g *ReportGenerator) GenerateReport(report *BudgetReport, format string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot generate a nil report")
	}
	g.logger.Debug("Generating report", logging.F(logging.FieldFormat, format))

	switch format {
	case "text", "":
		return g.generateTextReport(report), nil
	case "json":
		return g.generateJSONReport(report)
	case "yaml", "yml":
		return g.generateYAMLReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(report *BudgetReport) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateYAMLReport(report *BudgetReport) ([]byte, error) {
	out, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateTextReport(report *BudgetReport) []byte {
	var b strings.Builder
	b.WriteString(report.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(report.Title))))
	b.WriteString("\n\n")
	b.WriteString(presentation.RenderProject(report.Project))
	b.WriteString("\n")
	b.WriteString(presentation.RenderSummary(report.totals, report.Currency))
	b.WriteString("\n")
	b.WriteString(presentation.RenderItems(report.sections, report.Currency))
	b.WriteString("\n")
	if report.analysis != nil {
		b.WriteString(presentation.RenderMatrix(report.analysis, report.Currency))
	} else {
		b.WriteString(presentation.RenderNoDriver())
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Generert %s\n", report.GeneratedAt.Format("2006-01-02 15:04")))
	return []byte(b.String())
}
