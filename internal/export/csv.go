// Package export writes a budget out of the session: CSV rows for
// spreadsheets and the file names used for printable copies.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// DefaultDelimiter separates CSV columns when none is configured.
const DefaultDelimiter = ','

// Row is one exported budget line. Quantity and unit price are empty for
// fixed lines and whenever they are zero.
type Row struct {
	Category  string `csv:"Kategori"`
	Type      string `csv:"Type"`
	Name      string `csv:"Navn"`
	Quantity  string `csv:"Antall"`
	UnitPrice string `csv:"Pris per enhet"`
	Amount    string `csv:"Belop"`
}

// RowFromItem converts a budget line into its CSV row.
func RowFromItem(item models.BudgetItem) Row {
	row := Row{
		Category: string(item.Category),
		Type:     string(item.Type),
		Name:     item.Name,
		Amount:   item.Amount().String(),
	}
	if qty, ok := item.Quantity(); ok {
		row.Quantity = nonZero(qty)
	}
	if price, ok := item.UnitPrice(); ok {
		row.UnitPrice = nonZero(price)
	}
	return row
}

func nonZero(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.String()
}

// CSVExporter writes budget lines as delimited text.
type CSVExporter struct {
	delimiter rune
	logger    logging.Logger
}

// NewCSVExporter returns an exporter using delimiter, or ',' when zero.
func NewCSVExporter(delimiter rune, logger logging.Logger) *CSVExporter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &CSVExporter{delimiter: delimiter, logger: logger}
}

// Delimiter returns the column separator in use.
func (e *CSVExporter) Delimiter() rune {
	return e.delimiter
}

// Write marshals items, header first, to w.
func (e *CSVExporter) Write(w io.Writer, items []models.BudgetItem) error {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, RowFromItem(item))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile writes items to path, creating parent directories as needed.
func (e *CSVExporter) WriteFile(path string, items []models.BudgetItem) error {
	e.logger.Info("Writing budget to CSV file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(items)),
		logging.F(logging.FieldDelimiter, string(e.delimiter)))

	file, err := fileutils.CreateFile(path)
	if err != nil {
		return &budgeterror.ExportError{Format: "csv", Target: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := e.Write(file, items); err != nil {
		return &budgeterror.ExportError{Format: "csv", Target: path, Err: err}
	}
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DefaultFileName returns budsjett_<project name>.csv with whitespace runs
// replaced by underscores.
func DefaultFileName(project models.ProjectInfo) string {
	return fmt.Sprintf("budsjett_%s.csv", whitespaceRun.ReplaceAllString(project.Name, "_"))
}

// UntitledName is used for printable copies of a budget without a usable name.
const UntitledName = "Uten navn"

// PrintTitle returns "Budsjett - <name>" where name keeps only letters,
// digits, whitespace and '-'.
func PrintTitle(project models.ProjectInfo) string {
	safe := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("æøåÆØÅ", r):
			return r
		case r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return r
		default:
			return -1
		}
	}, project.Name))
	if safe == "" {
		safe = UntitledName
	}
	return "Budsjett - " + safe
}
